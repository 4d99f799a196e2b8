// Package app implements the interactive command interpreter.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"

	"go.trai.ch/bsh/internal/core/domain"
	"go.trai.ch/bsh/internal/core/ports"
	"go.trai.ch/bsh/internal/engine/registry"
	"go.trai.ch/zerr"
)

// Builtin names recognised by the dispatcher.
const (
	BuiltinExit       = "exit"
	BuiltinTasks      = "btasks"
	BuiltinTasksAlias = "ap"
	BuiltinCd         = "cd"
)

// App is the read-dispatch loop. It owns the background task registry and
// touches it only from the goroutine running Run.
type App struct {
	reader   ports.LineReader
	launcher ports.Launcher
	registry *registry.Registry
	renderer ports.Renderer
	logger   ports.Logger
	prompt   string
}

// New creates a new App instance.
func New(
	reader ports.LineReader,
	launcher ports.Launcher,
	reg *registry.Registry,
	renderer ports.Renderer,
	log ports.Logger,
	prompt string,
) *App {
	return &App{
		reader:   reader,
		launcher: launcher,
		registry: reg,
		renderer: renderer,
		logger:   log,
		prompt:   prompt,
	}
}

// Run reads and dispatches lines until the user exits or input ends.
// It returns nil after a clean exit. When input ends while tasks are still
// running it returns domain.ErrInputClosed.
func (a *App) Run(ctx context.Context) error {
	for {
		line, err := a.readLine(ctx)
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}

		switch {
		case errors.Is(err, domain.ErrInterrupted):
			continue
		case errors.Is(err, io.EOF):
			return a.closeInput()
		case err != nil:
			return err
		}

		if a.Dispatch(ctx, domain.Tokenize(line)) {
			return nil
		}
	}
}

type readResult struct {
	line string
	err  error
}

// readLine waits for the next line or for ctx to end, whichever comes first.
// A read blocked on a pipe cannot be interrupted, so it is left behind when
// ctx ends; the reader is closed to release the terminal.
func (a *App) readLine(ctx context.Context) (string, error) {
	done := make(chan readResult, 1)
	go func() {
		line, err := a.reader.ReadLine(a.prompt)
		done <- readResult{line: line, err: err}
	}()

	select {
	case res := <-done:
		return res.line, res.err
	case <-ctx.Done():
		_ = a.reader.Close()
		return "", ctx.Err()
	}
}

// Dispatch routes one command line. It reports true when the interpreter
// should terminate.
func (a *App) Dispatch(ctx context.Context, line domain.CommandLine) bool {
	if line.Empty() {
		return false
	}

	switch line.Name() {
	case BuiltinExit:
		return a.shutdown() == 0
	case BuiltinTasks, BuiltinTasksAlias:
		a.renderer.Tasks(a.registry.List())
	case BuiltinCd:
		if err := changeDir(line.Args()); err != nil {
			a.logger.Error(err)
		}
	default:
		if line.Background() {
			a.background(ctx, line.StripBackground())
			return false
		}
		a.foreground(ctx, line)
	}
	return false
}

// shutdown applies the exit gate: outstanding tasks are listed and exit is
// refused while any of them is still alive. It returns the number alive.
func (a *App) shutdown() int {
	outstanding, remaining := a.registry.Shutdown()
	a.renderer.Tasks(outstanding)
	if remaining > 0 {
		a.renderer.ShutdownRefused(remaining)
	}
	return remaining
}

// closeInput treats end of input as an exit attempt that cannot be retried.
func (a *App) closeInput() error {
	if remaining := a.shutdown(); remaining > 0 {
		return zerr.With(domain.ErrInputClosed, "remaining", remaining)
	}
	return nil
}

func (a *App) foreground(ctx context.Context, line domain.CommandLine) {
	completion, err := a.launcher.Foreground(ctx, line)
	if err != nil {
		a.logger.Error(err)
		if completion == nil {
			return
		}
	}

	if completion.ExitCode != 0 {
		a.logger.Warn(fmt.Sprintf("%s exited with status %d", line.Name(), completion.ExitCode))
	}
	a.renderer.Stats(completion.Usage)
}

func (a *App) background(ctx context.Context, line domain.CommandLine) {
	if line.Empty() {
		a.logger.Error(domain.ErrEmptyCommand)
		return
	}

	pid, err := a.launcher.Background(ctx, line)
	if err != nil {
		a.logger.Error(err)
		if pid <= 0 {
			return
		}
	}

	task := domain.Task{PID: pid, Name: line.Name()}
	slot, ok := a.registry.Add(task)
	if !ok {
		a.renderer.Untracked(pid, task.Name)
		return
	}
	a.renderer.Assigned(slot, pid)
}
