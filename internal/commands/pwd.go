package commands

import (
	"fmt"

	"github.com/gYonder/posh/internal/session"
)

func init() {
	Register(&Command{
		Name:        "pwd",
		Description: "Print the current working directory",
		Usage:       "pwd",
		Run:         pwd,
	})
}

func pwd(s *session.Session, env *ExecutionEnv, args []string) error {
	cwd, err := s.CWD()
	if err != nil {
		return fmt.Errorf("pwd: %w", err)
	}
	fmt.Fprintln(env.Stdout, cwd)
	return nil
}
