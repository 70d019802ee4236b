//go:build windows

package system

import (
	"errors"

	"go.frostpack.dev/frost/internal/core/domain"
	"go.trai.ch/zerr"
	"golang.org/x/sys/windows/registry"
)

// runKeyPath is the current user's Run key. Values under it are launched at
// login without elevation.
const runKeyPath = `Software\Microsoft\Windows\CurrentVersion\Run`

// Autostart manages the login autostart entry via the HKCU Run registry key.
type Autostart struct{}

// NewAutostart creates the registry-backed autostart manager.
func NewAutostart() (*Autostart, error) {
	return &Autostart{}, nil
}

// Enable registers command under the Run key. An existing value for the
// same name is overwritten, so repeated installs never duplicate entries.
func (a *Autostart) Enable(name, command string) error {
	key, _, err := registry.CreateKey(registry.CURRENT_USER, runKeyPath, registry.SET_VALUE)
	if err != nil {
		return zerr.Wrap(err, domain.ErrAutostartFailed.Error())
	}
	defer key.Close() //nolint:errcheck // Best effort close in defer

	if err := key.SetStringValue(name, command); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrAutostartFailed.Error()), "name", name)
	}
	return nil
}

// Disable removes the Run value for name. A missing value is not an error.
func (a *Autostart) Disable(name string) error {
	key, err := registry.OpenKey(registry.CURRENT_USER, runKeyPath, registry.SET_VALUE)
	if err != nil {
		// Key doesn't exist or can't be opened; nothing to remove.
		return nil
	}
	defer key.Close() //nolint:errcheck // Best effort close in defer

	if err := key.DeleteValue(name); err != nil {
		if errors.Is(err, registry.ErrNotExist) {
			return nil
		}
		return zerr.With(zerr.Wrap(err, domain.ErrAutostartFailed.Error()), "name", name)
	}
	return nil
}

// Enabled reports whether a Run value exists for name.
func (a *Autostart) Enabled(name string) (bool, error) {
	key, err := registry.OpenKey(registry.CURRENT_USER, runKeyPath, registry.QUERY_VALUE)
	if err != nil {
		return false, nil
	}
	defer key.Close() //nolint:errcheck // Best effort close in defer

	_, _, err = key.GetStringValue(name)
	return err == nil, nil
}
