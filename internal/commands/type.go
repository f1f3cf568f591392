package commands

import (
	"fmt"

	"github.com/gYonder/posh/internal/resolver"
	"github.com/gYonder/posh/internal/session"
)

func init() {
	Register(&Command{
		Name:        "type",
		Description: "Report whether a name is a built-in or an external executable",
		Usage:       "type name",
		Run:         typeCmd,
	})
}

func typeCmd(s *session.Session, env *ExecutionEnv, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("type: usage: type name")
	}

	for _, name := range args {
		if _, ok := Get(name); ok {
			fmt.Fprintf(env.Stdout, "%s is a shell builtin\n", name)
			continue
		}
		if path, ok := resolver.Resolve(name); ok {
			fmt.Fprintf(env.Stdout, "%s is %s\n", name, path)
			continue
		}
		fmt.Fprintf(env.Stderr, "%s not found\n", name)
	}
	return nil
}
