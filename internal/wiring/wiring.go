// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/bsh/internal/adapters/config"
	_ "go.trai.ch/bsh/internal/adapters/linear"
	_ "go.trai.ch/bsh/internal/adapters/logger"
	_ "go.trai.ch/bsh/internal/adapters/shell"
	_ "go.trai.ch/bsh/internal/adapters/terminal"
	// Register app and engine nodes.
	_ "go.trai.ch/bsh/internal/app"
	_ "go.trai.ch/bsh/internal/engine/registry"
)
