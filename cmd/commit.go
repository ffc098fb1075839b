package cmd

import (
	"context"

	"github.com/olimci/pyname/pkg/git"
	"github.com/olimci/pyname/pkg/pyproject"
	"github.com/urfave/cli/v3"
)

const commitMessage = "Updating pyproject.toml"

type commitCommand struct{}

func (commitCommand) Configure(cmd *cli.Command) {
	cmd.Usage = "commit pyproject.toml"
	cmd.Flags = []cli.Flag{
		noDryRunFlag("run git commit instead of only logging it"),
	}
}

// Execute commits the working-tree pyproject.toml. It does not stage
// anything first.
func (commitCommand) Execute(ctx context.Context, inv *Invocation) error {
	if err := inv.expectNoArgs(); err != nil {
		return err
	}

	res, err := inv.Run(ctx, git.Commit(git.CommitOptions{Message: commitMessage}, pyproject.FileName))
	if err != nil {
		return err
	}
	if !res.Skipped {
		inv.Logger.Info("committed " + pyproject.FileName)
	}
	return nil
}
