package shell

import (
	"errors"

	"go.trai.ch/bsh/internal/core/domain"
	"go.trai.ch/zerr"
	"golang.org/x/sys/unix"
)

// Prober implements ports.LivenessProber with a non-blocking wait4.
// Probing an exited child also reaps it, so each exit is observed once.
type Prober struct{}

// NewProber creates a new Prober.
func NewProber() *Prober {
	return &Prober{}
}

// Probe reports whether the child with the given pid is still running.
// A pid that is no longer our child counts as exited.
func (p *Prober) Probe(pid int) (domain.ProbeResult, error) {
	if pid <= 0 {
		return domain.ProbeResult{}, zerr.With(zerr.New("refusing to probe a process group"), "pid", pid)
	}

	var status unix.WaitStatus
	for {
		wpid, err := unix.Wait4(pid, &status, unix.WNOHANG, nil)
		switch {
		case errors.Is(err, unix.EINTR):
			continue
		case errors.Is(err, unix.ECHILD):
			return domain.ProbeResult{State: domain.ProbeExited, ExitCode: -1}, nil
		case err != nil:
			return domain.ProbeResult{}, zerr.With(zerr.Wrap(err, "wait4 failed"), "pid", pid)
		case wpid == 0:
			return domain.ProbeResult{State: domain.ProbeRunning}, nil
		}
		return domain.ProbeResult{State: domain.ProbeExited, ExitCode: waitExitCode(status)}, nil
	}
}

func waitExitCode(status unix.WaitStatus) int {
	if status.Signaled() {
		return 128 + int(status.Signal())
	}
	return status.ExitStatus()
}
