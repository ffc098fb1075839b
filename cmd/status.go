package cmd

import (
	"context"
	"strings"

	"github.com/olimci/pyname/pkg/git"
	"github.com/olimci/pyname/pkg/pyproject"
	"github.com/urfave/cli/v3"
)

type statusCommand struct{}

func (statusCommand) Configure(cmd *cli.Command) {
	cmd.Usage = "check whether pyproject.toml has uncommitted changes"
}

// Execute is read-only and runs even in dry-run mode.
func (statusCommand) Execute(ctx context.Context, inv *Invocation) error {
	if err := inv.expectNoArgs(); err != nil {
		return err
	}

	res, err := inv.SafeRun(ctx, git.Status(git.StatusOptions{Porcelain: true}, pyproject.FileName))
	if err != nil {
		return err
	}

	if strings.TrimSpace(res.Stdout) != "" {
		inv.Logger.Warn(pyproject.FileName + " should be committed")
		return nil
	}
	inv.Logger.Info(pyproject.FileName + " is up to date")
	return nil
}
