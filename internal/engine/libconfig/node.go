package libconfig

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/libtarget/internal/adapters/fs"                  //nolint:depguard // Wired in engine wiring
	"go.trai.ch/libtarget/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/libtarget/internal/adapters/webpack"            //nolint:depguard // Wired in engine wiring
	"go.trai.ch/libtarget/internal/core/domain"
	"go.trai.ch/libtarget/internal/core/ports"
)

// NodeID is the unique identifier for the orchestrator Graft node.
const NodeID graft.ID = "engine.libconfig"

func init() {
	graft.Register(graft.Node[*Orchestrator]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			fs.NodeID,
			webpack.NodeID,
			progrock.NodeID,
		},
		Run: func(ctx context.Context) (*Orchestrator, error) {
			fsys, err := graft.Dep[ports.FileSystem](ctx)
			if err != nil {
				return nil, err
			}

			provider, err := graft.Dep[ports.BaseConfigProvider](ctx)
			if err != nil {
				return nil, err
			}

			telemetry, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}

			return NewOrchestrator(fsys, provider, telemetry, domain.LibraryBuildContext()), nil
		},
	})
}
