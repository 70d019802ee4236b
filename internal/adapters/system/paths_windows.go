//go:build windows

package system

import (
	"os"
	"path/filepath"
)

// defaultInstallRoot returns %LOCALAPPDATA%, matching the per-user install
// policy of the installer.
func defaultInstallRoot() (string, error) {
	if localAppData := os.Getenv("LOCALAPPDATA"); localAppData != "" {
		return localAppData, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, "AppData", "Local"), nil
}
