// Package ports defines the core interfaces for the application.
package ports

import "go.frostpack.dev/frost/internal/core/domain"

// ConfigLoader defines the interface for loading the packaging configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration starting from the given working
	// directory and returns the validated manifest.
	Load(cwd string) (*domain.Manifest, error)

	// DiscoverRoot walks up from cwd to find the project root.
	// Returns the directory containing frost.yaml.
	DiscoverRoot(cwd string) (string, error)
}
