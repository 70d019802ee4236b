// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.frostpack.dev/frost/internal/adapters/archive"
	_ "go.frostpack.dev/frost/internal/adapters/config"
	_ "go.frostpack.dev/frost/internal/adapters/fs"
	_ "go.frostpack.dev/frost/internal/adapters/logger"
	_ "go.frostpack.dev/frost/internal/adapters/store"
	_ "go.frostpack.dev/frost/internal/adapters/system"
	// Register app nodes.
	_ "go.frostpack.dev/frost/internal/app"
)
