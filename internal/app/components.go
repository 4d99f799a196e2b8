package app

import (
	"go.trai.ch/bsh/internal/core/domain"
	"go.trai.ch/bsh/internal/core/ports"
)

// Components contains all the initialized application components.
// This struct provides controlled access to components needed by the CLI layer.
type Components struct {
	App    *App
	Logger ports.Logger
	Config *domain.Config
	Reader ports.LineReader
}

// Close releases resources held by the components.
func (c *Components) Close() error {
	if c.Reader == nil {
		return nil
	}
	return c.Reader.Close()
}
