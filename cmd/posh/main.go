// Command posh is a small interactive POSIX-flavored shell front-end.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gYonder/posh/internal/build"
	"github.com/gYonder/posh/internal/config"
	"github.com/gYonder/posh/internal/session"
	"github.com/gYonder/posh/internal/shell"

	// Register built-ins.
	_ "github.com/gYonder/posh/internal/commands"
)

func main() {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		fmt.Println(build.Version)
		os.Exit(0)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "posh: %v\n", err)
		os.Exit(1)
	}

	if cfg.HistoryFile != "" {
		os.MkdirAll(filepath.Dir(cfg.HistoryFile), 0700)
	}

	s, err := session.New()
	if err != nil {
		fmt.Fprintf(os.Stderr, "posh: %v\n", err)
		os.Exit(1)
	}

	sh, err := shell.New(s, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "posh: %v\n", err)
		os.Exit(1)
	}

	sh.Run()
}
