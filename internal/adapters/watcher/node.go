package watcher

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/libtarget/internal/adapters/fs"
	"go.trai.ch/libtarget/internal/adapters/logger"
	"go.trai.ch/libtarget/internal/core/ports"
)

// NodeID is the unique identifier for the file watcher Graft node.
const NodeID graft.ID = "adapter.watcher"

func init() {
	graft.Register(graft.Node[ports.Watcher]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fs.WalkerNodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.Watcher, error) {
			walker, err := graft.Dep[*fs.Walker](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			w, err := NewWatcher(walker, log)
			if err != nil {
				return nil, err
			}
			return w, nil
		},
	})
}
