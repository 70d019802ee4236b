//go:build !windows

package system

import (
	"os"
	"path/filepath"
)

// defaultInstallRoot returns the XDG data home, the per-user equivalent of
// %LOCALAPPDATA%.
func defaultInstallRoot() (string, error) {
	if dataHome := os.Getenv("XDG_DATA_HOME"); dataHome != "" {
		return dataHome, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".local", "share"), nil
}
