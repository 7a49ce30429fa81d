package assets

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/libtarget/internal/core/ports"
)

// NodeID is the unique identifier for the runtime installer Graft node.
const NodeID graft.ID = "adapter.assets"

func init() {
	graft.Register(graft.Node[ports.RuntimeInstaller]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.RuntimeInstaller, error) {
			return NewInstaller(), nil
		},
	})
}
