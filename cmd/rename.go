package cmd

import (
	"context"
	"fmt"

	"github.com/olimci/pyname/pkg/pyproject"
	"github.com/olimci/pyname/pkg/runner"
	"github.com/olimci/pyname/pkg/textdiff"
	"github.com/urfave/cli/v3"
)

type renameCommand struct{}

func (renameCommand) Configure(cmd *cli.Command) {
	cmd.Usage = "rewrite the project name"
	cmd.ArgsUsage = "<new_name>"
	cmd.Flags = []cli.Flag{
		noDryRunFlag("write pyproject.toml instead of only showing the diff"),
	}
}

func (renameCommand) Execute(_ context.Context, inv *Invocation) error {
	args := inv.Cmd.Args().Slice()
	newName := inv.Cmd.Args().First()

	if newName == "" {
		return fmt.Errorf("rename requires a new name argument")
	}
	if len(args) > 1 {
		return fmt.Errorf("rename accepts exactly one new name argument")
	}

	doc, err := inv.LoadProject()
	if err != nil {
		return err
	}
	oldName, err := doc.Name()
	if err != nil {
		return err
	}

	renamed, err := doc.WithName(newName)
	if err != nil {
		return err
	}

	diff := textdiff.Unified("a/"+pyproject.FileName, "b/"+pyproject.FileName, doc.String(), renamed.String())
	for line := range diff {
		inv.Logger.Info("difference: " + line)
	}

	if oldName == newName {
		inv.Logger.Info("name is already " + newName + ", nothing to do")
		return nil
	}
	if inv.Policy != runner.Apply {
		inv.Logger.Info("dry run, not modifying " + pyproject.FileName)
		return nil
	}

	if err := renamed.Save(); err != nil {
		return err
	}
	inv.Logger.Info("renamed project", "from", oldName, "to", newName)
	return nil
}
