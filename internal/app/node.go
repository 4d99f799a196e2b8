package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/bsh/internal/adapters/config"   //nolint:depguard // Wired in app layer
	"go.trai.ch/bsh/internal/adapters/linear"   //nolint:depguard // Wired in app layer
	"go.trai.ch/bsh/internal/adapters/logger"   //nolint:depguard // Wired in app layer
	"go.trai.ch/bsh/internal/adapters/shell"    //nolint:depguard // Wired in app layer
	"go.trai.ch/bsh/internal/adapters/terminal" //nolint:depguard // Wired in app layer
	"go.trai.ch/bsh/internal/core/domain"
	"go.trai.ch/bsh/internal/core/ports"
	"go.trai.ch/bsh/internal/engine/registry"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			terminal.NodeID,
			shell.LauncherNodeID,
			registry.NodeID,
			linear.NodeID,
			logger.NodeID,
			config.SettingsNodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			config.SettingsNodeID,
			terminal.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	reader, err := graft.Dep[ports.LineReader](ctx)
	if err != nil {
		return nil, err
	}

	launcher, err := graft.Dep[ports.Launcher](ctx)
	if err != nil {
		return nil, err
	}

	reg, err := graft.Dep[*registry.Registry](ctx)
	if err != nil {
		return nil, err
	}

	renderer, err := graft.Dep[ports.Renderer](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	cfg, err := graft.Dep[*domain.Config](ctx)
	if err != nil {
		return nil, err
	}

	return New(reader, launcher, reg, renderer, log, PromptFor(cfg.Prompt)), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	cfg, err := graft.Dep[*domain.Config](ctx)
	if err != nil {
		return nil, err
	}

	reader, err := graft.Dep[ports.LineReader](ctx)
	if err != nil {
		return nil, err
	}

	if err := ApplyLogSettings(log, cfg); err != nil {
		return nil, err
	}

	return &Components{
		App:    app,
		Logger: log,
		Config: cfg,
		Reader: reader,
	}, nil
}
