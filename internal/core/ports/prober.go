package ports

import "go.trai.ch/bsh/internal/core/domain"

// LivenessProber checks whether a background process is still alive.
//
//go:generate mockgen -source=prober.go -destination=mocks/mock_prober.go -package=mocks
type LivenessProber interface {
	// Probe returns immediately. When it reports ProbeExited the process has
	// been reaped and its id must not be probed again.
	Probe(pid int) (domain.ProbeResult, error)
}
