package ports

import "go.trai.ch/bsh/internal/core/domain"

// ConfigLoader defines the interface for loading the interpreter configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load finds the configuration starting at cwd and returns it, falling back
	// to defaults when no file exists.
	Load(cwd string) (*domain.Config, error)
}
