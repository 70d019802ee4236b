package store

import (
	"context"

	"github.com/grindlemire/graft"
	"go.frostpack.dev/frost/internal/core/ports"
)

// NodeID is the unique identifier for the freeze info store Graft node.
const NodeID graft.ID = "adapter.freeze_info_store"

func init() {
	graft.Register(graft.Node[ports.FreezeInfoStore]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.FreezeInfoStore, error) {
			store, err := NewStore()
			if err != nil {
				return nil, err
			}
			return store, nil
		},
	})
}
