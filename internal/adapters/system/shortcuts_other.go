//go:build !windows

package system

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.frostpack.dev/frost/internal/core/domain"
	"go.frostpack.dev/frost/internal/core/ports"
	"go.trai.ch/zerr"
)

// Shortcuts manages launcher entries as freedesktop .desktop files: the
// applications directory stands in for the Start Menu, the desktop
// directory for the Windows desktop.
type Shortcuts struct {
	appsDir    string
	desktopDir string
}

// NewShortcuts creates the .desktop-backed shortcut manager rooted at the
// user's standard directories.
func NewShortcuts() (*Shortcuts, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrShortcutFailed.Error())
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		dataHome = filepath.Join(home, ".local", "share")
	}

	return &Shortcuts{
		appsDir:    filepath.Join(dataHome, "applications"),
		desktopDir: filepath.Join(home, "Desktop"),
	}, nil
}

// NewShortcutsAt creates a shortcut manager rooted at explicit directories.
// Used by tests.
func NewShortcutsAt(appsDir, desktopDir string) *Shortcuts {
	return &Shortcuts{appsDir: appsDir, desktopDir: desktopDir}
}

// Create writes the .desktop entry, overwriting an existing one.
func (s *Shortcuts) Create(sc ports.Shortcut) error {
	dir := s.appsDir
	if sc.Desktop {
		dir = s.desktopDir
	}
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return zerr.Wrap(err, domain.ErrShortcutFailed.Error())
	}

	var b strings.Builder
	b.WriteString("[Desktop Entry]\nType=Application\n")
	fmt.Fprintf(&b, "Name=%s\n", sc.Name)
	fmt.Fprintf(&b, "Exec=%s\n", sc.Target)
	if sc.WorkingDir != "" {
		fmt.Fprintf(&b, "Path=%s\n", sc.WorkingDir)
	}
	if sc.Icon != "" {
		fmt.Fprintf(&b, "Icon=%s\n", sc.Icon)
	}

	path := filepath.Join(dir, entryFileName(sc.Name))
	if err := os.WriteFile(path, []byte(b.String()), domain.ExecPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrShortcutFailed.Error()), "path", path)
	}
	return nil
}

// Remove deletes the .desktop entry. A missing entry is not an error.
func (s *Shortcuts) Remove(name string, desktop bool) error {
	dir := s.appsDir
	if desktop {
		dir = s.desktopDir
	}
	path := filepath.Join(dir, entryFileName(name))
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return zerr.With(zerr.Wrap(err, domain.ErrShortcutFailed.Error()), "path", path)
	}
	return nil
}

func entryFileName(name string) string {
	safe := strings.ReplaceAll(name, string(filepath.Separator), "-")
	return safe + ".desktop"
}
