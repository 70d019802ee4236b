package domain

import "go.trai.ch/zerr"

var (
	// ErrConfigNotFound is returned when no frost.yaml can be discovered.
	ErrConfigNotFound = zerr.New("could not find frost.yaml")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrMissingEntryPoint is returned when the freeze manifest has no entry point.
	ErrMissingEntryPoint = zerr.New("freeze manifest is missing an entry point")

	// ErrMissingOutputName is returned when the freeze manifest has no output name.
	ErrMissingOutputName = zerr.New("freeze manifest is missing an output name")

	// ErrMissingAssetSource is returned when an asset rule has an empty source.
	ErrMissingAssetSource = zerr.New("asset rule is missing a source path")

	// ErrDuplicateAssetRule is returned when the same source is declared twice
	// for the same destination.
	ErrDuplicateAssetRule = zerr.New("duplicate asset rule")

	// ErrInvalidModuleName is returned when a hidden import or exclusion is
	// not an importable module name.
	ErrInvalidModuleName = zerr.New("invalid module name")

	// ErrEntryNotFound is returned when the entry script does not exist at freeze time.
	ErrEntryNotFound = zerr.New("entry script not found")

	// ErrAssetNotFound is returned when a declared asset path does not exist at freeze time.
	ErrAssetNotFound = zerr.New("declared asset not found")

	// ErrAssetDestEscapes is returned when an asset destination resolves outside the bundle.
	ErrAssetDestEscapes = zerr.New("asset destination escapes the bundle directory")

	// ErrModuleBothHiddenAndExcluded is returned when a module name appears in
	// both the hidden-import and exclusion lists.
	ErrModuleBothHiddenAndExcluded = zerr.New("module is both hidden-imported and excluded")

	// ErrInvalidAppID is returned when the installer app ID is not a GUID.
	ErrInvalidAppID = zerr.New("installer app ID is not a valid GUID")

	// ErrMissingAppName is returned when the installer manifest has no application name.
	ErrMissingAppName = zerr.New("installer manifest is missing an application name")

	// ErrMissingVersion is returned when the installer manifest has no version.
	ErrMissingVersion = zerr.New("installer manifest is missing a version")

	// ErrInvalidCompression is returned when the compression selector is unknown.
	ErrInvalidCompression = zerr.New("invalid compression, expected 'max' or 'none'")

	// ErrNoLanguages is returned when the installer offers no message sets.
	ErrNoLanguages = zerr.New("installer manifest declares no languages")

	// ErrUnsupportedLanguage is returned when a language is not a supported message set.
	ErrUnsupportedLanguage = zerr.New("unsupported language, expected 'en' or 'ru'")

	// ErrCleanupPathEscapes is returned when a cleanup file path leaves the install directory.
	ErrCleanupPathEscapes = zerr.New("cleanup file path escapes the install directory")

	// ErrBundleMetaMissing is returned when a bundle directory has no bundle.json.
	ErrBundleMetaMissing = zerr.New("bundle metadata not found, is this a frost bundle?")

	// ErrBundleMetaInvalid is returned when bundle.json cannot be decoded.
	ErrBundleMetaInvalid = zerr.New("failed to decode bundle metadata")

	// ErrBundleNameMismatch is returned when the packaged bundle was not
	// produced by the freeze manifest in effect.
	ErrBundleNameMismatch = zerr.New("bundle name does not match the freeze output name")

	// ErrBundleNotFound is returned when the bundle directory does not exist.
	ErrBundleNotFound = zerr.New("bundle directory not found")

	// ErrStoreCreateFailed is returned when the freeze info store directory cannot be created.
	ErrStoreCreateFailed = zerr.New("failed to create freeze info store directory")

	// ErrStoreReadFailed is returned when freeze info cannot be read.
	ErrStoreReadFailed = zerr.New("failed to read freeze info")

	// ErrStoreUnmarshalFailed is returned when freeze info cannot be unmarshaled.
	ErrStoreUnmarshalFailed = zerr.New("failed to unmarshal freeze info")

	// ErrStoreMarshalFailed is returned when freeze info cannot be marshaled.
	ErrStoreMarshalFailed = zerr.New("failed to marshal freeze info")

	// ErrStoreWriteFailed is returned when freeze info cannot be written.
	ErrStoreWriteFailed = zerr.New("failed to write freeze info")

	// ErrArchiveCreateFailed is returned when the installer archive cannot be produced.
	ErrArchiveCreateFailed = zerr.New("failed to create installer archive")

	// ErrArchiveReadFailed is returned when the installer archive cannot be opened.
	ErrArchiveReadFailed = zerr.New("failed to read installer archive")

	// ErrArchiveManifestMissing is returned when an archive carries no installer manifest.
	ErrArchiveManifestMissing = zerr.New("installer archive has no embedded manifest")

	// ErrArchiveEntryEscapes is returned when an archive entry path leaves the target directory.
	ErrArchiveEntryEscapes = zerr.New("archive entry escapes the target directory")

	// ErrInstallerNotFound is returned when the installer archive does not exist.
	ErrInstallerNotFound = zerr.New("installer archive not found")

	// ErrInstallDirFailed is returned when the install directory cannot be prepared.
	ErrInstallDirFailed = zerr.New("failed to prepare install directory")

	// ErrCopyFailed is returned when copying files into the install directory fails.
	ErrCopyFailed = zerr.New("failed to copy files")

	// ErrShortcutFailed is returned when a shortcut cannot be created or removed.
	ErrShortcutFailed = zerr.New("failed to manage shortcut")

	// ErrAutostartFailed is returned when the autostart entry cannot be written or removed.
	ErrAutostartFailed = zerr.New("failed to manage autostart entry")

	// ErrLaunchFailed is returned when the post-install launch action fails.
	ErrLaunchFailed = zerr.New("failed to launch installed application")

	// ErrNotInstalled is returned when uninstalling an application that is not installed.
	ErrNotInstalled = zerr.New("application is not installed")

	// ErrFileHashFailed is returned when hashing a file fails.
	ErrFileHashFailed = zerr.New("failed to hash file content")

	// ErrPathStatFailed is returned when stating a path fails.
	ErrPathStatFailed = zerr.New("failed to stat path")

	// ErrStepFailed is returned when a single pipeline step fails.
	ErrStepFailed = zerr.New("step execution failed")

	// ErrPipelineFailed is returned when a pipeline run fails.
	ErrPipelineFailed = zerr.New("pipeline execution failed")

	// ErrVerifyFailed is returned when configuration-consistency checks fail.
	ErrVerifyFailed = zerr.New("verification failed")
)
