// Package domain contains the core types of the frost packaging pipeline.
package domain

import (
	"regexp"
	"strings"

	"github.com/google/uuid"
	"go.trai.ch/zerr"
)

// AssetRule declares one file or directory to copy verbatim into the bundle.
type AssetRule struct {
	// Source is the path of the asset, relative to the project root.
	Source string
	// Dest is the bundle-relative directory the asset is copied into.
	// An empty Dest places the asset at the bundle root.
	Dest string
}

// FreezeManifest declares how the application tree is staged into a bundle.
// It is immutable after loading; the freeze step only reads it.
type FreezeManifest struct {
	// Entry is the application entry point, relative to the project root.
	Entry string
	// Output is the name of the bundle directory and the staged executable.
	Output string
	// Icon is the icon file shipped with the bundle.
	Icon string
	// Windowed suppresses the console window of the staged application.
	Windowed bool
	// NoCompress disables binary compression inside the bundle. Shipping
	// uncompressed binaries reduces false-positive antivirus detections.
	NoCompress bool
	// Assets are the data files copied verbatim into the bundle.
	Assets []AssetRule
	// HiddenImports lists module names the dependency scanner would miss.
	HiddenImports []string
	// Excludes lists module names that are forcibly left out of the bundle.
	Excludes []string
}

// Compression selects the installer archive compression policy.
type Compression string

const (
	// CompressionMax enables the strongest supported compression.
	CompressionMax Compression = "max"
	// CompressionNone stores files uncompressed. Used when compressed
	// installers trip antivirus heuristics.
	CompressionNone Compression = "none"
)

// Language identifies an installer message set.
type Language string

const (
	// LangEnglish is the English message set.
	LangEnglish Language = "en"
	// LangRussian is the Russian message set.
	LangRussian Language = "ru"
)

// TaskOption declares an optional install-time choice presented to the user.
type TaskOption struct {
	// Offered controls whether the task is available at all.
	Offered bool
	// Default is the pre-selected state of the task.
	Default bool
	// Description is the user-facing text, keyed by language.
	Description map[Language]string
}

// InstallerManifest declares the identity and behavior of the installer
// produced from a bundle.
type InstallerManifest struct {
	// AppID is the stable application GUID. It never changes across
	// releases so that upgrades land on the same install.
	AppID string
	// AppName is the display name of the application.
	AppName string
	// Version is the release version written into the installer.
	Version string
	// Publisher is the vendor display name.
	Publisher string
	// InstallDirName is the directory created under the per-user
	// application data root. Defaults to AppName.
	InstallDirName string
	// OutputName is the file name of the produced installer archive.
	OutputName string
	// Icon is the installer icon path, relative to the project root.
	Icon string
	// Compression selects the archive compression policy.
	Compression Compression
	// Languages are the offered message sets. Selecting either produces a
	// functionally identical install; only displayed text differs.
	Languages []Language
	// DesktopIcon is the optional desktop shortcut task.
	DesktopIcon TaskOption
	// Autostart is the optional login autostart task.
	Autostart TaskOption
	// AutostartArg is appended to the launch command registered for
	// autostart so the application knows it was started at login.
	AutostartArg string
	// LaunchAfterInstall runs the application when the install finishes.
	LaunchAfterInstall bool
	// CleanupFiles are install-dir relative files deleted at uninstall
	// time. Their absence at uninstall is not an error.
	CleanupFiles []string
}

// Manifest is the full frost.yaml configuration: one freeze manifest and one
// installer manifest, sharing a project root.
type Manifest struct {
	Root      string
	Freeze    FreezeManifest
	Installer InstallerManifest
}

var validModuleNameRegex = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_.]*$`)

// ValidModuleName reports whether name is an importable module name.
// Dotted submodule paths are allowed.
func ValidModuleName(name string) bool {
	if strings.HasSuffix(name, ".") || strings.Contains(name, "..") {
		return false
	}
	return validModuleNameRegex.MatchString(name)
}

// Validate checks the freeze manifest for structural problems.
// Filesystem existence is checked by the freeze step, not here.
func (m *FreezeManifest) Validate() error {
	if m.Entry == "" {
		return ErrMissingEntryPoint
	}
	if m.Output == "" {
		return ErrMissingOutputName
	}
	excluded := make(map[string]bool, len(m.Excludes))
	for _, name := range m.Excludes {
		if !ValidModuleName(name) {
			return zerr.With(ErrInvalidModuleName, "exclude", name)
		}
		excluded[name] = true
	}
	for _, name := range m.HiddenImports {
		if !ValidModuleName(name) {
			return zerr.With(ErrInvalidModuleName, "hidden_import", name)
		}
		if excluded[name] {
			return zerr.With(ErrModuleBothHiddenAndExcluded, "module", name)
		}
	}
	seen := make(map[string]bool, len(m.Assets))
	for _, rule := range m.Assets {
		if rule.Source == "" {
			return ErrMissingAssetSource
		}
		key := rule.Dest + "\x00" + rule.Source
		if seen[key] {
			err := zerr.With(ErrDuplicateAssetRule, "source", rule.Source)
			return zerr.With(err, "dest", rule.Dest)
		}
		seen[key] = true
	}
	return nil
}

// Validate checks the installer manifest for structural problems.
func (m *InstallerManifest) Validate() error {
	if _, err := uuid.Parse(m.AppID); err != nil {
		return zerr.With(ErrInvalidAppID, "app_id", m.AppID)
	}
	if m.AppName == "" {
		return ErrMissingAppName
	}
	if m.Version == "" {
		return ErrMissingVersion
	}
	switch m.Compression {
	case CompressionMax, CompressionNone:
	default:
		return zerr.With(ErrInvalidCompression, "compression", string(m.Compression))
	}
	if len(m.Languages) == 0 {
		return ErrNoLanguages
	}
	for _, lang := range m.Languages {
		switch lang {
		case LangEnglish, LangRussian:
		default:
			return zerr.With(ErrUnsupportedLanguage, "language", string(lang))
		}
	}
	for _, name := range m.CleanupFiles {
		if strings.Contains(name, "..") || strings.HasPrefix(name, "/") || strings.HasPrefix(name, "\\") {
			return zerr.With(ErrCleanupPathEscapes, "file", name)
		}
	}
	return nil
}

// InstallDir returns the manifest's install directory name, defaulting to
// the application name.
func (m *InstallerManifest) InstallDir() string {
	if m.InstallDirName != "" {
		return m.InstallDirName
	}
	return m.AppName
}

// HasLanguage reports whether lang is one of the offered message sets.
func (m *InstallerManifest) HasLanguage(lang Language) bool {
	for _, l := range m.Languages {
		if l == lang {
			return true
		}
	}
	return false
}
