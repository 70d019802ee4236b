package system

import (
	"context"

	"github.com/grindlemire/graft"
	"go.frostpack.dev/frost/internal/core/ports"
)

const (
	// AutostartNodeID is the unique identifier for the autostart Graft node.
	AutostartNodeID graft.ID = "adapter.autostart"
	// ShortcutsNodeID is the unique identifier for the shortcuts Graft node.
	ShortcutsNodeID graft.ID = "adapter.shortcuts"
	// LocatorNodeID is the unique identifier for the install locator Graft node.
	LocatorNodeID graft.ID = "adapter.install_locator"
)

func init() {
	graft.Register(graft.Node[ports.AutostartManager]{
		ID:        AutostartNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.AutostartManager, error) {
			return NewAutostart()
		},
	})

	graft.Register(graft.Node[ports.ShortcutManager]{
		ID:        ShortcutsNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ShortcutManager, error) {
			return NewShortcuts()
		},
	})

	graft.Register(graft.Node[ports.InstallLocator]{
		ID:        LocatorNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.InstallLocator, error) {
			return Locator{}, nil
		},
	})
}
