package ports

import (
	"context"

	"go.trai.ch/bsh/internal/core/domain"
)

// Launcher starts external programs.
//
//go:generate mockgen -source=launcher.go -destination=mocks/mock_launcher.go -package=mocks
type Launcher interface {
	// Foreground runs the command attached to the terminal and blocks until it exits.
	// A non-zero exit status is not an error; it is reported in the Completion.
	Foreground(ctx context.Context, cmd domain.CommandLine) (*domain.Completion, error)

	// Background starts the command without waiting for it and returns its process id.
	// The caller owns reaping the process through a LivenessProber.
	Background(ctx context.Context, cmd domain.CommandLine) (int, error)
}
