package ports

import (
	"context"

	"go.frostpack.dev/frost/internal/core/domain"
)

// Archiver defines the interface for producing and consuming installer archives.
//
//go:generate mockgen -source=archiver.go -destination=mocks/mock_archiver.go -package=mocks
type Archiver interface {
	// Create writes a single self-contained installer archive at outPath
	// from the bundle directory, embedding the installer manifest under
	// domain.ArchiveManifestName. The manifest's compression selector
	// controls whether entries are deflated or stored.
	Create(ctx context.Context, bundleDir, outPath string, manifest *domain.InstallerManifest) error

	// ReadManifest extracts the embedded installer manifest without
	// unpacking the payload.
	ReadManifest(archivePath string) (*domain.InstallerManifest, error)

	// Extract unpacks the archive payload into destDir and returns the
	// install-dir relative paths of all extracted files.
	Extract(ctx context.Context, archivePath, destDir string) ([]string, error)
}
