// Package shell implements the command pipeline front-end: the lexer,
// the redirection/pipeline parser, and the executor that wires together
// built-ins and external processes.
package shell

import (
	"fmt"
	"strings"
)

// RedirectMode is how a redirection target file is opened.
type RedirectMode int

const (
	Truncate RedirectMode = iota
	Append
)

// Redirection binds a stage's stdout or stderr to a file.
type Redirection struct {
	Path string
	Mode RedirectMode
}

// StagePosition describes where a Stage sits within its enclosing Pipeline.
type StagePosition int

const (
	PositionOnly StagePosition = iota
	PositionFirst
	PositionMiddle
	PositionLast
)

// Stage is one command within a Pipeline.
type Stage struct {
	Argv        []Word
	StdoutRedir *Redirection
	StderrRedir *Redirection
	Position    StagePosition
}

// Name returns the stage's command name (argv[0]'s value).
func (s *Stage) Name() string {
	return s.Argv[0].Value
}

// Args returns the stage's arguments (argv[1:] values), as plain strings.
func (s *Stage) Args() []string {
	args := make([]string, len(s.Argv)-1)
	for i, w := range s.Argv[1:] {
		args[i] = w.Value
	}
	return args
}

// Pipeline is an ordered, non-empty sequence of Stages.
type Pipeline struct {
	Stages []*Stage
}

var redirectOps = map[string]struct {
	fd   int
	mode RedirectMode
}{
	">":   {1, Truncate},
	"1>":  {1, Truncate},
	">>":  {1, Append},
	"1>>": {1, Append},
	"2>":  {2, Truncate},
	"2>>": {2, Append},
}

// Parse lexes a raw line and parses it into a Pipeline. An empty or
// all-whitespace line yields a nil Pipeline and a nil error.
func Parse(line string) (*Pipeline, error) {
	if strings.TrimSpace(line) == "" {
		return nil, nil
	}

	words := Lex(line)
	if len(words) == 0 {
		return nil, nil
	}

	segments := splitByPipe(words)
	pipeline := &Pipeline{Stages: make([]*Stage, 0, len(segments))}

	for i, seg := range segments {
		if len(seg) == 0 {
			return nil, fmt.Errorf("syntax error near unexpected token `|'")
		}
		stage, err := parseStage(seg)
		if err != nil {
			return nil, err
		}
		stage.Position = position(i, len(segments))
		pipeline.Stages = append(pipeline.Stages, stage)
	}

	return pipeline, nil
}

func position(i, n int) StagePosition {
	switch {
	case n == 1:
		return PositionOnly
	case i == 0:
		return PositionFirst
	case i == n-1:
		return PositionLast
	default:
		return PositionMiddle
	}
}

// splitByPipe splits a Word sequence on bare, unquoted "|" words — a quoted
// "|" is just a Word, never a separator.
func splitByPipe(words []Word) [][]Word {
	var segments [][]Word
	var current []Word
	for _, w := range words {
		if !w.Quoted && w.Value == "|" {
			segments = append(segments, current)
			current = nil
			continue
		}
		current = append(current, w)
	}
	return append(segments, current)
}

// parseStage scans one segment's Words left to right, pulling out
// redirection operators (each a standalone, unquoted Word) and their
// target filename, leaving the rest as argv.
func parseStage(words []Word) (*Stage, error) {
	stage := &Stage{}

	for i := 0; i < len(words); i++ {
		w := words[i]
		if w.Quoted {
			stage.Argv = append(stage.Argv, w)
			continue
		}

		op, recognized := redirectOps[w.Value]
		if !recognized {
			stage.Argv = append(stage.Argv, w)
			continue
		}

		if i+1 >= len(words) {
			return nil, fmt.Errorf("syntax error: missing filename after '%s'", w.Value)
		}
		target := words[i+1]
		i++

		redir := &Redirection{Path: target.Value, Mode: op.mode}
		switch op.fd {
		case 1:
			stage.StdoutRedir = redir
		case 2:
			stage.StderrRedir = redir
		}
	}

	if len(stage.Argv) == 0 {
		return nil, fmt.Errorf("syntax error: empty command")
	}

	return stage, nil
}
