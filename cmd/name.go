package cmd

import (
	"context"

	"github.com/urfave/cli/v3"
)

type nameCommand struct{}

func (nameCommand) Configure(cmd *cli.Command) {
	cmd.Usage = "show the current project name"
}

func (nameCommand) Execute(_ context.Context, inv *Invocation) error {
	if err := inv.expectNoArgs(); err != nil {
		return err
	}

	doc, err := inv.LoadProject()
	if err != nil {
		return err
	}

	name, err := doc.Name()
	if err != nil {
		return err
	}

	inv.Logger.Info("current name", "name", name)
	return nil
}
