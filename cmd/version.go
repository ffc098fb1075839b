package cmd

import (
	"context"
	"fmt"

	"github.com/olimci/pyname/pkg/version"
	"github.com/urfave/cli/v3"
)

type versionCommand struct{}

func (versionCommand) Configure(cmd *cli.Command) {
	cmd.Aliases = []string{"v"}
	cmd.Usage = "show version"
}

func (versionCommand) Execute(_ context.Context, inv *Invocation) error {
	_, err := fmt.Fprintf(inv.Stdout, "pyname version %s\n", version.Version)
	return err
}
