package cmd

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/olimci/pyname/pkg/environ"
	"github.com/olimci/pyname/pkg/logging"
	"github.com/olimci/pyname/pkg/runner"
	"github.com/olimci/pyname/pkg/version"
	"github.com/urfave/cli/v3"
)

// Commands:
// name
//   logs the current project.name of $PWD/pyproject.toml
//
// rename <new_name> [--no-dry-run]
//   logs a unified diff of the rename; writes the file only with --no-dry-run
//
// status
//   runs `git status --porcelain` on pyproject.toml (always, even in dry run)
//
// commit [--no-dry-run]
//   commits pyproject.toml; only logs the git command without --no-dry-run
//
// version
//   prints the pyname version

const envVerbose = "PYNAME_VERBOSE"

// Options injects the environment and I/O of an invocation. Zero fields
// fall back to the process environment, stdout/stderr and real exec.
type Options struct {
	Env    environ.Env
	Stdout io.Writer
	Stderr io.Writer
	Exec   runner.ExecFunc

	// Logger overrides the default console logger on Stderr.
	Logger *slog.Logger
	// Level controls the default logger; --verbose lowers it to debug.
	Level *slog.LevelVar
}

func (o Options) withDefaults() Options {
	if o.Env == nil {
		o.Env = environ.FromList(os.Environ())
	}
	if o.Stdout == nil {
		o.Stdout = os.Stdout
	}
	if o.Stderr == nil {
		o.Stderr = os.Stderr
	}
	if o.Level == nil {
		o.Level = new(slog.LevelVar)
	}
	if o.Logger == nil {
		o.Logger = logging.New(o.Stderr, o.Level)
	}
	return o
}

func Execute(ctx context.Context, args []string, opts Options) error {
	opts = opts.withDefaults()

	app := &cli.Command{
		Name:      "pyname",
		Usage:     "read and rewrite the project name in pyproject.toml",
		Version:   version.Version,
		Writer:    opts.Stdout,
		ErrWriter: opts.Stderr,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "log debug output, including every external command",
			},
		},
		Commands: DefaultRegistry().cliCommands(opts),
	}

	return app.Run(ctx, args)
}
