package domain

import "path/filepath"

const (
	// FrostDirName is the name of the internal metadata directory.
	FrostDirName = ".frost"

	// StoreDirName is the name of the freeze info store directory.
	StoreDirName = "store"

	// DistDirName is the default directory for produced artifacts.
	DistDirName = "dist"

	// FrostFileName is the name of the project configuration file.
	FrostFileName = "frost.yaml"

	// BundleMetaName is the metadata file written into every bundle.
	BundleMetaName = "bundle.json"

	// ArchiveManifestName is the installer manifest entry embedded in the
	// installer archive. It always sits at the archive root.
	ArchiveManifestName = "frost-manifest.json"

	// DefaultCleanupFile is the user configuration file removed at
	// uninstall time when the manifest does not override the list.
	DefaultCleanupFile = "config.json"

	// DefaultAutostartArg is the argument appended to the autostart
	// command line so the application knows it started at login.
	DefaultAutostartArg = "--autostart"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644

	// ExecPerm is the permission for staged executables (rwxr-xr-x).
	ExecPerm = 0o755
)

// DefaultFrostPath returns the default root directory for frost metadata.
func DefaultFrostPath() string {
	return FrostDirName
}

// DefaultStorePath returns the default path for the freeze info store.
func DefaultStorePath() string {
	return filepath.Join(FrostDirName, StoreDirName)
}

// DefaultDistPath returns the default path for produced artifacts.
func DefaultDistPath() string {
	return DistDirName
}
