package shell

import (
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/gYonder/posh/internal/commands"
	"github.com/gYonder/posh/internal/resolver"
	"github.com/gYonder/posh/internal/session"
)

// Execute runs a Pipeline to completion, wiring each stage's stdout to the
// next stage's stdin via os.Pipe. in/out/err are the stdio a single-stage
// (or the pipeline's first/last stage) inherits from the REPL.
//
// A failure local to one stage — a command that can't be resolved, a
// built-in that can't run in this position, a redirection file that won't
// open — aborts only that stage: the diagnostic goes to the inherited
// stderr (or, for a built-in's own error, to that stage's stderr sink) and
// downstream stages still run, reading an empty stdin from the closed pipe.
func Execute(p *Pipeline, s *session.Session, in io.Reader, out, errw io.Writer) error {
	n := len(p.Stages)

	pipes := make([]*os.File, n-1)   // read ends
	writers := make([]*os.File, n-1) // write ends
	for i := 0; i < n-1; i++ {
		r, w, err := os.Pipe()
		if err != nil {
			return fmt.Errorf("pipe: %w", err)
		}
		pipes[i] = r
		writers[i] = w
	}

	var procs []*exec.Cmd
	var openedFiles []*os.File

	for i, stage := range p.Stages {
		var stdin io.Reader = in
		if i > 0 {
			stdin = pipes[i-1]
		}

		// stdout: a non-last stage's pipe write end always shadows a
		// stdout redirection on that stage; only the terminal stage's
		// redirection (if any) is ever opened, and only once the stage is
		// confirmed to actually run.
		var stdout io.Writer = out
		last := i == n-1
		if !last {
			stdout = writers[i]
		}
		var stderr io.Writer = errw

		f := resolveStage(stage, last, errw)
		if f.willRun {
			if last && stage.StdoutRedir != nil {
				file, err := openRedirect(stage.StdoutRedir)
				if err != nil {
					fmt.Fprintln(errw, err)
					f.willRun = false
				} else {
					openedFiles = append(openedFiles, file)
					stdout = file
				}
			}
		}
		if f.willRun && stage.StderrRedir != nil {
			file, err := openRedirect(stage.StderrRedir)
			if err != nil {
				fmt.Fprintln(errw, err)
				f.willRun = false
			} else {
				openedFiles = append(openedFiles, file)
				stderr = file
			}
		}

		if f.willRun {
			if f.builtin != nil {
				env := &commands.ExecutionEnv{Stdin: stdin, Stdout: stdout, Stderr: stderr}
				if err := f.builtin.Run(s, env, stage.Args()); err != nil {
					fmt.Fprintln(stderr, err)
				}
			} else {
				proc := exec.Command(f.path, stage.Args()...)
				proc.Args[0] = stage.Name()
				proc.Stdin = stdin
				proc.Stdout = stdout
				proc.Stderr = stderr
				proc.Env = os.Environ()
				if err := proc.Start(); err != nil {
					fmt.Fprintf(errw, "%s: %v\n", stage.Name(), err)
				} else {
					procs = append(procs, proc)
				}
			}
		}

		// Release the parent's copy of every endpoint handed off to this
		// stage, whether or not it ran: a downstream reader blocks on
		// read-EOF forever unless this is done before the next iteration.
		if i > 0 {
			pipes[i-1].Close()
		}
		if !last {
			writers[i].Close()
		}
	}

	for _, proc := range procs {
		proc.Wait()
	}
	for _, f := range openedFiles {
		f.Close()
	}

	return nil
}

// stageResolution is the outcome of deciding what a stage will do, before
// any redirection file is opened: a built-in to invoke, an external's
// resolved path to spawn, or neither (the stage is aborted and its
// diagnostic already printed).
type stageResolution struct {
	builtin *commands.Command
	path    string
	willRun bool
}

// resolveStage decides whether a stage will actually run, printing its
// diagnostic to the inherited stderr if not. Resolution happens before any
// redirection file for the stage is opened, so a command that can't be
// found or a built-in refused for its pipeline position never truncates or
// creates a redirect target.
func resolveStage(stage *Stage, last bool, errw io.Writer) stageResolution {
	stageName := stage.Name()
	multiStage := stage.Position != PositionOnly
	nonLast := multiStage && !last

	cmd, isBuiltin := commands.Get(stageName)
	if isBuiltin {
		switch {
		case nonLast:
			fmt.Fprintf(errw, "built-in '%s' in a pipe: not supported\n", stageName)
			return stageResolution{}
		case multiStage && (stageName == "cd" || stageName == "exit"):
			// cd/exit mutate shell-wide state; running them in a piped
			// stage would need an isolated subshell this executor doesn't
			// fork.
			fmt.Fprintf(errw, "built-in '%s' in a pipe: not supported\n", stageName)
			return stageResolution{}
		default:
			return stageResolution{builtin: cmd, willRun: true}
		}
	}

	path, found := resolver.Resolve(stageName)
	if !found {
		fmt.Fprintf(errw, "%s: command not found\n", stageName)
		return stageResolution{}
	}
	return stageResolution{path: path, willRun: true}
}

func openRedirect(r *Redirection) (*os.File, error) {
	flags := os.O_CREATE | os.O_WRONLY
	if r.Mode == Append {
		flags |= os.O_APPEND
	} else {
		flags |= os.O_TRUNC
	}
	f, err := os.OpenFile(r.Path, flags, 0o644)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", r.Path, err)
	}
	return f, nil
}
