package cmd

import (
	"strconv"
	"strings"

	"github.com/olimci/pyname/pkg/environ"
	"github.com/urfave/cli/v3"
)

const flagNoDryRun = "no-dry-run"

func noDryRunFlag(usage string) cli.Flag {
	return &cli.BoolFlag{
		Name:  flagNoDryRun,
		Usage: usage,
	}
}

func isVerbose(cmd *cli.Command) bool {
	if cmd == nil {
		return false
	}
	if cmd.Bool("verbose") {
		return true
	}
	root := cmd.Root()
	return root != nil && root.Bool("verbose")
}

func envBool(env environ.Env, key string) bool {
	v, err := strconv.ParseBool(strings.TrimSpace(env.Get(key)))
	return err == nil && v
}
