package ports

import "go.frostpack.dev/frost/internal/core/domain"

// Hasher defines the interface for deterministic content hashing.
//
//go:generate mockgen -source=hasher.go -destination=mocks/mock_hasher.go -package=mocks
type Hasher interface {
	// ComputeFreezeHash computes a single hash representing the freeze
	// manifest definition, the installer version recorded into the bundle
	// metadata, and the content of the entry script and every declared
	// asset. Two runs over unchanged inputs produce the same hash.
	ComputeFreezeHash(m *domain.Manifest) (string, error)

	// ComputeTreeHash computes a hash over all files under dir, walking
	// in deterministic order.
	ComputeTreeHash(dir string) (string, error)
}
