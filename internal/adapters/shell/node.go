package shell

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"go.trai.ch/bsh/internal/core/ports"
)

const (
	// LauncherNodeID is the unique identifier for the launcher Graft node.
	LauncherNodeID graft.ID = "adapter.launcher"
	// ProberNodeID is the unique identifier for the liveness prober Graft node.
	ProberNodeID graft.ID = "adapter.prober"
)

func init() {
	graft.Register(graft.Node[ports.Launcher]{
		ID:        LauncherNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{},
		Run: func(_ context.Context) (ports.Launcher, error) {
			return NewLauncher(os.Stdin, os.Stdout, os.Stderr), nil
		},
	})

	graft.Register(graft.Node[ports.LivenessProber]{
		ID:        ProberNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{},
		Run: func(_ context.Context) (ports.LivenessProber, error) {
			return NewProber(), nil
		},
	})
}
