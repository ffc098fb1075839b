package cmd

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
)

// Command is a single subcommand. Configure declares usage, flags and
// arguments on the cli command; Execute runs it for one invocation.
type Command interface {
	Configure(cmd *cli.Command)
	Execute(ctx context.Context, inv *Invocation) error
}

// Registry maps subcommand names to commands, in registration order.
type Registry struct {
	names    []string
	commands map[string]Command
}

func NewRegistry() *Registry {
	return &Registry{commands: make(map[string]Command)}
}

// DefaultRegistry holds every pyname subcommand.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register("name", nameCommand{})
	r.Register("rename", renameCommand{})
	r.Register("status", statusCommand{})
	r.Register("commit", commitCommand{})
	r.Register("version", versionCommand{})
	return r
}

// Register adds c under name. It panics if name is already registered.
func (r *Registry) Register(name string, c Command) {
	if _, exists := r.commands[name]; exists {
		panic(fmt.Sprintf("command %s already registered", name))
	}
	r.names = append(r.names, name)
	r.commands[name] = c
}

func (r *Registry) Lookup(name string) (Command, bool) {
	c, ok := r.commands[name]
	return c, ok
}

func (r *Registry) Names() []string {
	return append([]string(nil), r.names...)
}

// cliCommands builds the urfave command tree. Each action turns the parsed
// command into an Invocation before handing off.
func (r *Registry) cliCommands(opts Options) []*cli.Command {
	out := make([]*cli.Command, 0, len(r.names))
	for _, name := range r.names {
		c := r.commands[name]
		cc := &cli.Command{Name: name}
		c.Configure(cc)
		cc.Action = func(ctx context.Context, parsed *cli.Command) error {
			return c.Execute(ctx, newInvocation(parsed, opts))
		}
		out = append(out, cc)
	}
	return out
}
