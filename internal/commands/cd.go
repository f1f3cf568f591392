package commands

import (
	"fmt"

	"github.com/gYonder/posh/internal/session"
)

func init() {
	Register(&Command{
		Name:        "cd",
		Description: "Change the working directory",
		Usage:       "cd [dir]\n\nSpecial arguments:\n  (none)  Home directory\n  -       Previous directory\n  ~       Home directory",
		Run:         cd,
	})
}

func cd(s *session.Session, env *ExecutionEnv, args []string) error {
	target := s.HomeDir
	switch {
	case len(args) == 0:
		// stays at HomeDir
	case args[0] == "-":
		if s.PreviousDir == "" {
			return fmt.Errorf("cd: OLDPWD not set")
		}
		target = s.PreviousDir
	case args[0] == "~":
		target = s.HomeDir
	default:
		target = args[0]
	}

	if err := s.Chdir(target); err != nil {
		return fmt.Errorf("cd: %s: No such file or directory", target)
	}
	return nil
}
