package commands

import (
	"fmt"
	"strings"

	"github.com/gYonder/posh/internal/session"
)

func init() {
	Register(&Command{
		Name:        "echo",
		Description: "Write arguments to standard output",
		Usage:       "echo [arg ...]",
		Run:         echo,
	})
}

func echo(s *session.Session, env *ExecutionEnv, args []string) error {
	fmt.Fprintln(env.Stdout, strings.Join(args, " "))
	return nil
}
