package webpack

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/libtarget/internal/core/ports"
)

// NodeID is the unique identifier for the base config provider Graft node.
const NodeID graft.ID = "adapter.webpack"

func init() {
	graft.Register(graft.Node[ports.BaseConfigProvider]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.BaseConfigProvider, error) {
			return NewProvider(), nil
		},
	})
}
