// Package ports defines the core interfaces for the application.
package ports

import (
	"io"

	"go.trai.ch/bsh/internal/core/domain"
)

// Logger defines the interface for logging.
//
//go:generate mockgen -source=logger.go -destination=mocks/mock_logger.go -package=mocks
type Logger interface {
	Debug(msg string)
	Info(msg string)
	Warn(msg string)
	Error(err error)

	// TaskExited records at debug level that a background task was reaped.
	TaskExited(entry domain.TaskEntry, status int)

	// SetOutput redirects log output.
	SetOutput(w io.Writer)
	// SetJSON switches between JSON and pretty output.
	SetJSON(enable bool)
	// SetLevel sets the minimum level by name (debug, info, warn, error).
	SetLevel(level string) error
}
