package shell

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/gYonder/posh/internal/config"
	"github.com/gYonder/posh/internal/session"
	"github.com/gYonder/posh/internal/ui"
)

// prompt is fixed: this shell has no prompt customization.
const prompt = "$ "

// Shell is the REPL driver: it reads a line, parses it into a Pipeline,
// and executes it, looping until EOF or "exit".
type Shell struct {
	Session *session.Session
	rl      *readline.Instance
}

// New builds a Shell wired to the given session and config.
func New(s *session.Session, cfg *config.Config) (*Shell, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:            prompt,
		HistoryFile:       cfg.HistoryFile,
		HistoryLimit:      cfg.HistorySize,
		HistorySearchFold: true,
		AutoComplete:      NewCompleter(),
		InterruptPrompt:   "^C",
		EOFPrompt:         "exit",
	})
	if err != nil {
		return nil, err
	}

	ui.SetColorEnabled(cfg.Color)

	return &Shell{Session: s, rl: rl}, nil
}

// Run executes the read-parse-execute loop until EOF or "exit".
func (sh *Shell) Run() {
	defer sh.rl.Close()

	for {
		line, err := sh.rl.Readline()
		switch {
		case errors.Is(err, readline.ErrInterrupt):
			// readline already printed InterruptPrompt ("^C"); the prompt
			// reissues on the next loop iteration.
			continue
		case errors.Is(err, io.EOF):
			// readline already printed EOFPrompt ("exit").
			return
		case err != nil:
			fmt.Fprintln(os.Stderr, ui.ErrorStyle.Render(err.Error()))
			os.Exit(1)
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		pipeline, err := Parse(line)
		if err != nil {
			fmt.Fprintln(os.Stderr, ui.ErrorStyle.Render(err.Error()))
			continue
		}
		if pipeline == nil {
			continue
		}

		if err := Execute(pipeline, sh.Session, os.Stdin, os.Stdout, os.Stderr); err != nil {
			fmt.Fprintln(os.Stderr, ui.ErrorStyle.Render(err.Error()))
		}
	}
}

