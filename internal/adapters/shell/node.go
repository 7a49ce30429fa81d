package shell

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/libtarget/internal/adapters/logger"
	"go.trai.ch/libtarget/internal/core/ports"
)

// NodeID is the unique identifier for the bundler runner Graft node.
const NodeID graft.ID = "adapter.bundler_runner"

func init() {
	graft.Register(graft.Node[ports.BundlerRunner]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.BundlerRunner, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewRunner(log), nil
		},
	})
}
