// Package shell provides the process launcher and liveness prober adapters.
package shell

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"os/exec"
	"syscall"
	"time"

	"go.trai.ch/bsh/internal/core/domain"
	"go.trai.ch/zerr"
	"golang.org/x/sys/unix"
)

// Launcher implements ports.Launcher using os/exec.
// Children share the interpreter's standard streams and working directory.
type Launcher struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

// NewLauncher creates a new Launcher wired to the given streams.
// Background tasks should receive *os.File streams so that no copying
// goroutine outlives the call.
func NewLauncher(stdin io.Reader, stdout, stderr io.Writer) *Launcher {
	return &Launcher{
		stdin:  stdin,
		stdout: stdout,
		stderr: stderr,
	}
}

// Foreground runs the command to completion and reports its resource usage.
// A non-zero exit status is not an error; it is carried in the completion.
func (l *Launcher) Foreground(ctx context.Context, line domain.CommandLine) (*domain.Completion, error) {
	if line.Empty() {
		return nil, domain.ErrEmptyCommand
	}

	cmd := exec.CommandContext(ctx, line.Name(), line.Args()...) //nolint:gosec // user provided command
	l.attach(cmd)

	started := time.Now()
	if err := cmd.Start(); err != nil {
		return nil, startError(err, line.Name())
	}

	waitErr := cmd.Wait()
	wall := time.Since(started)

	state := cmd.ProcessState
	if state == nil {
		return nil, zerr.With(zerr.Wrap(waitErr, domain.ErrWaitFailed.Error()), "command", line.Name())
	}

	var exitErr *exec.ExitError
	if waitErr != nil && !errors.As(waitErr, &exitErr) {
		return nil, zerr.With(zerr.Wrap(waitErr, domain.ErrWaitFailed.Error()), "command", line.Name())
	}

	completion := &domain.Completion{
		PID:      state.Pid(),
		ExitCode: exitCode(state.Sys()),
	}

	ru, ok := state.SysUsage().(*syscall.Rusage)
	if !ok || ru == nil {
		completion.Usage = domain.ResourceUsage{WallClock: wall}
		return completion, zerr.With(domain.ErrUsageUnavailable, "pid", completion.PID)
	}
	completion.Usage = usageFromRusage(ru, wall)

	return completion, nil
}

// Background starts the command and returns its pid without waiting.
// The child stays unreaped until a liveness probe collects it.
func (l *Launcher) Background(_ context.Context, line domain.CommandLine) (int, error) {
	if line.Empty() {
		return 0, domain.ErrEmptyCommand
	}

	// Not bound to the context: background tasks outlive the prompt cycle.
	cmd := exec.Command(line.Name(), line.Args()...) //nolint:gosec,noctx // user provided command
	l.attach(cmd)

	if err := cmd.Start(); err != nil {
		return 0, startError(err, line.Name())
	}

	pid := cmd.Process.Pid
	if err := cmd.Process.Release(); err != nil {
		return pid, zerr.With(zerr.Wrap(err, "failed to release process handle"), "pid", pid)
	}

	return pid, nil
}

func (l *Launcher) attach(cmd *exec.Cmd) {
	cmd.Stdin = l.stdin
	cmd.Stdout = l.stdout
	cmd.Stderr = l.stderr
}

// startError classifies a failure reported by exec.Cmd.Start.
func startError(err error, name string) error {
	sentinel := domain.ErrSpawnFailed
	switch {
	case errors.Is(err, exec.ErrNotFound),
		errors.Is(err, fs.ErrNotExist),
		errors.Is(err, fs.ErrPermission),
		errors.Is(err, unix.ENOEXEC):
		sentinel = domain.ErrCommandNotFound
	}
	return zerr.With(zerr.Wrap(err, sentinel.Error()), "command", name)
}

// exitCode extracts the exit status from a wait status. Processes killed by
// a signal report 128 plus the signal number, the way shells do.
func exitCode(sys any) int {
	status, ok := sys.(syscall.WaitStatus)
	if !ok {
		return -1
	}
	if status.Signaled() {
		return 128 + int(status.Signal())
	}
	return status.ExitStatus()
}
