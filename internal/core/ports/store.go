package ports

import "go.frostpack.dev/frost/internal/core/domain"

// FreezeInfoStore defines the interface for storing and retrieving freeze run records.
//
//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type FreezeInfoStore interface {
	// Get retrieves the freeze info for a given bundle name.
	// Returns nil, nil if not found.
	Get(root, bundleName string) (*domain.FreezeInfo, error)

	// Put stores the freeze info.
	Put(root string, info domain.FreezeInfo) error
}
