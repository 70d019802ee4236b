package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.frostpack.dev/frost/internal/adapters/archive"
	"go.frostpack.dev/frost/internal/adapters/config"
	"go.frostpack.dev/frost/internal/adapters/fs"
	"go.frostpack.dev/frost/internal/adapters/logger"
	"go.frostpack.dev/frost/internal/adapters/store"
	"go.frostpack.dev/frost/internal/adapters/system"
	"go.frostpack.dev/frost/internal/core/ports"
)

const (
	// NodeID is the unique identifier for the main App Graft node.
	NodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the Components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			fs.NodeID,
			store.NodeID,
			archive.NodeID,
			system.ShortcutsNodeID,
			system.AutostartNodeID,
			system.LocatorNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			loader, err := graft.Dep[ports.ConfigLoader](ctx)
			if err != nil {
				return nil, err
			}
			hasher, err := graft.Dep[ports.Hasher](ctx)
			if err != nil {
				return nil, err
			}
			infoStore, err := graft.Dep[ports.FreezeInfoStore](ctx)
			if err != nil {
				return nil, err
			}
			archiver, err := graft.Dep[ports.Archiver](ctx)
			if err != nil {
				return nil, err
			}
			shortcuts, err := graft.Dep[ports.ShortcutManager](ctx)
			if err != nil {
				return nil, err
			}
			autostart, err := graft.Dep[ports.AutostartManager](ctx)
			if err != nil {
				return nil, err
			}
			locator, err := graft.Dep[ports.InstallLocator](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return New(loader, hasher, infoStore, archiver, shortcuts, autostart, locator, log), nil
		},
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{NodeID, logger.NodeID},
		Run: func(ctx context.Context) (*Components, error) {
			application, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewComponents(application, log), nil
		},
	})
}
