package commands

import (
	"fmt"
	"os"
	"strconv"

	"github.com/gYonder/posh/internal/session"
)

func init() {
	Register(&Command{
		Name:        "exit",
		Description: "Exit the shell",
		Usage:       "exit [code]",
		Run:         exitCmd,
	})
}

func exitCmd(s *session.Session, env *ExecutionEnv, args []string) error {
	code := 0
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("exit: %s: numeric argument required", args[0])
		}
		code = n
	}
	os.Exit(code)
	return nil
}
