//go:build !windows

package system

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.frostpack.dev/frost/internal/core/domain"
	"go.trai.ch/zerr"
)

// Autostart manages the login autostart entry via XDG autostart .desktop
// files. It carries the same enable/disable round-trip contract as the
// Windows Run key implementation.
type Autostart struct {
	dir string
}

// NewAutostart creates the XDG autostart manager rooted at the user's
// config directory.
func NewAutostart() (*Autostart, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrAutostartFailed.Error())
	}
	return &Autostart{dir: filepath.Join(configDir, "autostart")}, nil
}

// NewAutostartAt creates an autostart manager rooted at dir. Used by tests.
func NewAutostartAt(dir string) *Autostart {
	return &Autostart{dir: dir}
}

// Enable writes the autostart entry for name. An existing entry is
// overwritten, so repeated installs never duplicate entries.
func (a *Autostart) Enable(name, command string) error {
	if err := os.MkdirAll(a.dir, domain.DirPerm); err != nil {
		return zerr.Wrap(err, domain.ErrAutostartFailed.Error())
	}

	content := fmt.Sprintf(
		"[Desktop Entry]\nType=Application\nName=%s\nExec=%s\nX-GNOME-Autostart-enabled=true\n",
		name, command,
	)
	path := a.entryPath(name)
	if err := os.WriteFile(path, []byte(content), domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrAutostartFailed.Error()), "path", path)
	}
	return nil
}

// Disable removes the autostart entry for name. A missing entry is not an error.
func (a *Autostart) Disable(name string) error {
	if err := os.Remove(a.entryPath(name)); err != nil && !os.IsNotExist(err) {
		return zerr.With(zerr.Wrap(err, domain.ErrAutostartFailed.Error()), "name", name)
	}
	return nil
}

// Enabled reports whether an autostart entry exists for name.
func (a *Autostart) Enabled(name string) (bool, error) {
	_, err := os.Stat(a.entryPath(name))
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, zerr.Wrap(err, domain.ErrAutostartFailed.Error())
	}
	return true, nil
}

func (a *Autostart) entryPath(name string) string {
	// Desktop entry file names must not contain path separators.
	safe := strings.ReplaceAll(name, string(filepath.Separator), "-")
	return filepath.Join(a.dir, safe+".desktop")
}
