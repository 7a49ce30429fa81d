package manifest

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/libtarget/internal/adapters/cas"
	"go.trai.ch/libtarget/internal/adapters/fs"
	"go.trai.ch/libtarget/internal/adapters/telemetry/progrock"
	"go.trai.ch/libtarget/internal/core/ports"
)

const (
	// EmitterNodeID is the unique identifier for the manifest writer Graft node.
	EmitterNodeID graft.ID = "adapter.manifest.writer"
	// RendererNodeID is the unique identifier for the manifest renderer Graft node.
	RendererNodeID graft.ID = "adapter.manifest.renderer"
)

func init() {
	graft.Register(graft.Node[ports.Emitter]{
		ID:        EmitterNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fs.HasherNodeID, cas.NodeID, progrock.NodeID},
		Run: func(ctx context.Context) (ports.Emitter, error) {
			hasher, err := graft.Dep[ports.Hasher](ctx)
			if err != nil {
				return nil, err
			}
			store, err := graft.Dep[ports.ManifestStore](ctx)
			if err != nil {
				return nil, err
			}
			telemetry, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}
			return NewWriter(hasher, store, telemetry), nil
		},
	})

	graft.Register(graft.Node[ports.Renderer]{
		ID:        RendererNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Renderer, error) {
			return NewRenderer(), nil
		},
	})
}
