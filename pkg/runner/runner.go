// Package runner executes external commands on behalf of a CLI invocation.
//
// SafeRun always executes and is meant for read-only commands. Run is gated
// by a Policy: under DryRun it logs the command line and returns without
// spawning anything.
package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
)

// Policy decides whether side-effecting commands are applied.
type Policy int

const (
	DryRun Policy = iota
	Apply
)

func (p Policy) String() string {
	switch p {
	case DryRun:
		return "dry-run"
	case Apply:
		return "apply"
	default:
		return fmt.Sprintf("Policy(%d)", int(p))
	}
}

// PolicyFor maps the --no-dry-run flag to a Policy.
func PolicyFor(noDryRun bool) Policy {
	if noDryRun {
		return Apply
	}
	return DryRun
}

// Command is a program and its argument vector.
type Command struct {
	Name string
	Args []string
}

func (c Command) Argv() []string {
	return append([]string{c.Name}, c.Args...)
}

func (c Command) String() string {
	parts := make([]string, 0, len(c.Args)+1)
	for _, arg := range c.Argv() {
		if arg == "" || strings.ContainsAny(arg, " \t\n\"'\\$") {
			arg = fmt.Sprintf("%q", arg)
		}
		parts = append(parts, arg)
	}
	return strings.Join(parts, " ")
}

// Result holds the captured output of a finished command.
type Result struct {
	Stdout  string
	Stderr  string
	Code    int
	Skipped bool
}

// ExternalCommandError reports a command that failed to start or exited
// non-zero. Captured output is kept for debugging.
type ExternalCommandError struct {
	Command Command
	Dir     string
	Code    int
	Stdout  string
	Stderr  string
	Err     error
}

func (e *ExternalCommandError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s in %s: %v", e.Command, e.Dir, e.Err)
	if out := strings.TrimSpace(e.Stdout); out != "" {
		fmt.Fprintf(&b, "\nstdout:\n%s", out)
	}
	if out := strings.TrimSpace(e.Stderr); out != "" {
		fmt.Fprintf(&b, "\nstderr:\n%s", out)
	}
	return b.String()
}

func (e *ExternalCommandError) Unwrap() error {
	return e.Err
}

// ExecFunc runs c in dir. A non-zero exit must be reported as an error.
type ExecFunc func(ctx context.Context, dir string, c Command) (Result, error)

// Exec runs c with exec.CommandContext, capturing stdout and stderr.
func Exec(ctx context.Context, dir string, c Command) (Result, error) {
	var stdout, stderr bytes.Buffer
	command := exec.CommandContext(ctx, c.Name, c.Args...)
	command.Dir = dir
	command.Stdout = &stdout
	command.Stderr = &stderr

	err := command.Run()
	res := Result{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}
	if err != nil {
		res.Code = -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			res.Code = exitErr.ExitCode()
		}
		return res, &ExternalCommandError{
			Command: c,
			Dir:     dir,
			Code:    res.Code,
			Stdout:  res.Stdout,
			Stderr:  res.Stderr,
			Err:     err,
		}
	}
	return res, nil
}

// Runner binds a logger, a policy, and an executor.
type Runner struct {
	logger *slog.Logger
	policy Policy
	exec   ExecFunc
}

// New returns a Runner. A nil exec uses Exec.
func New(logger *slog.Logger, policy Policy, exec ExecFunc) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	if exec == nil {
		exec = Exec
	}
	return &Runner{
		logger: logger,
		policy: policy,
		exec:   exec,
	}
}

// SafeRun executes c regardless of policy.
func (r *Runner) SafeRun(ctx context.Context, c Command, dir string) (Result, error) {
	r.logger.Debug("running command", "command", c.String(), "dir", dir)

	res, err := r.exec(ctx, dir, c)
	if err != nil {
		var cmdErr *ExternalCommandError
		if errors.As(err, &cmdErr) {
			return res, err
		}
		return res, &ExternalCommandError{
			Command: c,
			Dir:     dir,
			Code:    res.Code,
			Stdout:  res.Stdout,
			Stderr:  res.Stderr,
			Err:     err,
		}
	}
	return res, nil
}

// Run executes c only under Apply. Under DryRun it logs and reports a
// skipped result.
func (r *Runner) Run(ctx context.Context, c Command, dir string) (Result, error) {
	if r.policy != Apply {
		r.logger.Info("dry run, would run: "+c.String(), "dir", dir)
		return Result{Skipped: true}, nil
	}
	return r.SafeRun(ctx, c, dir)
}
