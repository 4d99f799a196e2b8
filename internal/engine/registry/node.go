package registry

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/bsh/internal/adapters/config" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/bsh/internal/adapters/logger" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/bsh/internal/adapters/shell"  //nolint:depguard // Wired in engine wiring
	"go.trai.ch/bsh/internal/core/domain"
	"go.trai.ch/bsh/internal/core/ports"
)

// NodeID is the unique identifier for the registry Graft node.
const NodeID graft.ID = "engine.registry"

func init() {
	graft.Register(graft.Node[*Registry]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			shell.ProberNodeID,
			logger.NodeID,
			config.SettingsNodeID,
		},
		Run: func(ctx context.Context) (*Registry, error) {
			prober, err := graft.Dep[ports.LivenessProber](ctx)
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

			return New(cfg.Capacity, prober, log), nil
		},
	})
}
