// Package session holds the mutable state shared across one shell
// invocation: the home directory and the previous working directory used by
// "cd -". The current working directory itself is the process's own.
package session

import (
	"fmt"
	"os"
)

// Session is the state threaded through every built-in invocation.
type Session struct {
	HomeDir     string
	PreviousDir string
}

// New builds a Session rooted at the process's actual working directory
// and the invoking user's home directory.
func New() (*Session, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("session: resolve home directory: %w", err)
	}
	return &Session{HomeDir: home}, nil
}

// CWD returns the process's current working directory.
func (s *Session) CWD() (string, error) {
	return os.Getwd()
}

// Chdir changes the process's working directory, tracking the previous one
// so "cd -" can return to it.
func (s *Session) Chdir(path string) error {
	prev, err := os.Getwd()
	if err != nil {
		return err
	}
	if err := os.Chdir(path); err != nil {
		return err
	}
	s.PreviousDir = prev
	return nil
}
