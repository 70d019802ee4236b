// Package system manages the per-user pieces of an install: the install
// location, launcher shortcuts, and the login autostart entry.
package system

import (
	"os"
	"path/filepath"
)

// InstallRoot returns the per-user, non-privileged directory applications
// are installed under. No elevation is ever required to write here.
func InstallRoot() (string, error) {
	if dir := os.Getenv("FROST_INSTALL_ROOT"); dir != "" {
		return dir, nil
	}
	return defaultInstallRoot()
}

// InstallDirFor returns the install directory for the given application
// directory name.
func InstallDirFor(dirName string) (string, error) {
	root, err := InstallRoot()
	if err != nil {
		return "", err
	}
	return filepath.Join(root, dirName), nil
}

// Locator implements ports.InstallLocator on top of the per-user install root.
type Locator struct{}

// InstallDirFor resolves the install directory for dirName.
func (Locator) InstallDirFor(dirName string) (string, error) {
	return InstallDirFor(dirName)
}
