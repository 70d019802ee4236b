package ports

// Shortcut describes one launcher entry to place on the user's system.
type Shortcut struct {
	// Name is the display name; the file name is derived from it.
	Name string
	// Target is the absolute path of the installed executable.
	Target string
	// WorkingDir is the directory the target starts in.
	WorkingDir string
	// Icon is the absolute path of the icon file, if any.
	Icon string
	// Desktop places the shortcut on the desktop instead of the
	// applications menu.
	Desktop bool
}

// ShortcutManager defines the interface for creating and removing launcher
// shortcuts. Implementations must be idempotent: creating an existing
// shortcut overwrites it, removing a missing one is not an error.
//
//go:generate mockgen -source=system.go -destination=mocks/mock_system.go -package=mocks
type ShortcutManager interface {
	Create(s Shortcut) error
	Remove(name string, desktop bool) error
}

// InstallLocator resolves where an application is installed for the current
// user. No elevation is ever required to write there.
type InstallLocator interface {
	// InstallDirFor returns the install directory for the given
	// application directory name.
	InstallDirFor(dirName string) (string, error)
}

// AutostartManager defines the interface for the per-user login autostart
// entry. On Windows this is a string value under the current user's Run
// registry key; elsewhere an XDG autostart entry. Enable overwrites any
// previous value for the same name; Disable of an absent entry is not an
// error.
type AutostartManager interface {
	// Enable registers command to run at login under the given name.
	Enable(name, command string) error
	// Disable removes the autostart entry for name.
	Disable(name string) error
	// Enabled reports whether an autostart entry exists for name.
	Enabled(name string) (bool, error)
}
