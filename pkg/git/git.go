// Package git builds argument vectors for the git CLI. It does not run
// anything; callers hand the result to a runner.
package git

import "github.com/olimci/pyname/pkg/runner"

const binary = "git"

type StatusOptions struct {
	Porcelain bool
}

type CommitOptions struct {
	Message string
}

// Status builds "git status [--porcelain] [-- paths...]".
func Status(opts StatusOptions, paths ...string) runner.Command {
	args := []string{"status"}
	if opts.Porcelain {
		args = append(args, "--porcelain")
	}
	return command(args, paths)
}

// Commit builds "git commit [--message msg] [-- paths...]". Paths are
// committed from the working tree; nothing is staged beforehand.
func Commit(opts CommitOptions, paths ...string) runner.Command {
	args := []string{"commit"}
	if opts.Message != "" {
		args = append(args, "--message", opts.Message)
	}
	return command(args, paths)
}

func command(args, paths []string) runner.Command {
	if len(paths) > 0 {
		args = append(args, "--")
		args = append(args, paths...)
	}
	return runner.Command{Name: binary, Args: args}
}
