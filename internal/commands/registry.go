// Package commands implements the fixed set of built-in commands: echo,
// pwd, cd, type, and exit.
package commands

import (
	"io"

	"github.com/gYonder/posh/internal/session"
)

// ExecutionEnv is the stdio a built-in runs against. The Executor wires
// these to the stage's position in its pipeline (inherited stdin, or the
// previous stage's pipe read end; stdout/stderr, or a redirection target).
type ExecutionEnv struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Command is one registered built-in.
type Command struct {
	Run         func(s *session.Session, env *ExecutionEnv, args []string) error
	Name        string
	Description string
	Usage       string
}

// Registry holds every built-in, keyed by name.
var Registry = make(map[string]*Command)

func Register(cmd *Command) {
	Registry[cmd.Name] = cmd
}

// Get looks up a built-in by name.
func Get(name string) (*Command, bool) {
	cmd, ok := Registry[name]
	return cmd, ok
}

// Names returns every registered built-in name.
func Names() []string {
	names := make([]string, 0, len(Registry))
	for name := range Registry {
		names = append(names, name)
	}
	return names
}
