package domain

import "time"

// BundleMeta is the metadata record written to bundle.json inside every
// bundle directory. It is the contract between the freeze step and the
// installer-build step: package refuses bundles whose recorded name does
// not match the freeze manifest in effect.
type BundleMeta struct {
	// Name is the bundle name, equal to the freeze manifest's output name.
	Name string `json:"name"`
	// Version is the installer manifest version at freeze time.
	Version string `json:"version"`
	// Entry is the staged entry point, relative to the bundle root.
	Entry string `json:"entry"`
	// Windowed records whether the application runs without a console.
	Windowed bool `json:"windowed"`
	// ContentHash is the deterministic hash of all staged files.
	ContentHash string `json:"content_hash"`
	// HiddenImports and Excludes are carried through for the record.
	HiddenImports []string `json:"hidden_imports,omitempty"`
	Excludes      []string `json:"excludes,omitempty"`
	// CreatedAt is when the freeze completed.
	CreatedAt time.Time `json:"created_at"`
}

// FreezeInfo records the outcome of a freeze run, keyed by bundle name.
// The pipeline skips an unchanged freeze when the stored input hash matches
// the current one.
type FreezeInfo struct {
	BundleName string    `json:"bundle_name"`
	InputHash  string    `json:"input_hash"`
	BundleHash string    `json:"bundle_hash"`
	Timestamp  time.Time `json:"timestamp"`
}

// InstallReceipt records what an install actually did, so uninstall can
// reverse exactly that. It is written next to the installed files.
type InstallReceipt struct {
	AppID           string    `json:"app_id"`
	AppName         string    `json:"app_name"`
	Version         string    `json:"version"`
	InstallDir      string    `json:"install_dir"`
	Files           []string  `json:"files"`
	DesktopShortcut bool      `json:"desktop_shortcut"`
	Autostart       bool      `json:"autostart"`
	Language        Language  `json:"language"`
	InstalledAt     time.Time `json:"installed_at"`
}

// ReceiptName is the install receipt file name inside the install directory.
const ReceiptName = ".frost-receipt.json"
