package terminal

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"go.trai.ch/bsh/internal/adapters/config" //nolint:depguard // Wired in adapter wiring
	"go.trai.ch/bsh/internal/core/domain"
	"go.trai.ch/bsh/internal/core/ports"
)

// NodeID is the unique identifier for the line reader Graft node.
const NodeID graft.ID = "adapter.reader"

func init() {
	graft.Register(graft.Node[ports.LineReader]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.SettingsNodeID},
		Run: func(ctx context.Context) (ports.LineReader, error) {
			cfg, err := graft.Dep[*domain.Config](ctx)
			if err != nil {
				return nil, err
			}
			return New(os.Stdin, os.Stdout, os.Stderr, cfg.HistoryFile)
		},
	})
}
