package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/olimci/pyname/pkg/environ"
	"github.com/olimci/pyname/pkg/pyproject"
	"github.com/olimci/pyname/pkg/runner"
	"github.com/urfave/cli/v3"
)

// Invocation is everything a command needs for a single run. It is built
// per invocation and dropped when the command returns.
type Invocation struct {
	Cmd    *cli.Command
	Env    environ.Env
	Logger *slog.Logger
	Policy runner.Policy
	Runner *runner.Runner
	Stdout io.Writer
}

func newInvocation(cmd *cli.Command, opts Options) *Invocation {
	if isVerbose(cmd) || envBool(opts.Env, envVerbose) {
		opts.Level.Set(slog.LevelDebug)
	}

	policy := runner.PolicyFor(cmd.Bool(flagNoDryRun))
	return &Invocation{
		Cmd:    cmd,
		Env:    opts.Env,
		Logger: opts.Logger,
		Policy: policy,
		Runner: runner.New(opts.Logger, policy, opts.Exec),
		Stdout: opts.Stdout,
	}
}

func (inv *Invocation) WorkDir() (string, error) {
	return inv.Env.WorkDir()
}

func (inv *Invocation) LoadProject() (*pyproject.Document, error) {
	dir, err := inv.WorkDir()
	if err != nil {
		return nil, err
	}
	return pyproject.Load(dir)
}

// SafeRun executes c in the working directory regardless of policy.
func (inv *Invocation) SafeRun(ctx context.Context, c runner.Command) (runner.Result, error) {
	dir, err := inv.WorkDir()
	if err != nil {
		return runner.Result{}, err
	}
	return inv.Runner.SafeRun(ctx, c, dir)
}

// Run executes c in the working directory only when the policy is Apply.
func (inv *Invocation) Run(ctx context.Context, c runner.Command) (runner.Result, error) {
	dir, err := inv.WorkDir()
	if err != nil {
		return runner.Result{}, err
	}
	return inv.Runner.Run(ctx, c, dir)
}

func (inv *Invocation) expectNoArgs() error {
	if inv.Cmd.Args().Len() > 0 {
		return fmt.Errorf("%s does not accept arguments", inv.Cmd.Name)
	}
	return nil
}
