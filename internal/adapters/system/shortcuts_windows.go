//go:build windows

package system

import (
	"os"
	"path/filepath"
	"syscall"
	"unsafe"

	"go.frostpack.dev/frost/internal/core/domain"
	"go.frostpack.dev/frost/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sys/windows"
)

// Shortcuts manages Start Menu and desktop .lnk files through the
// IShellLinkW COM interface.
type Shortcuts struct{}

// NewShortcuts creates the COM-backed shortcut manager.
func NewShortcuts() (*Shortcuts, error) {
	return &Shortcuts{}, nil
}

var (
	clsidShellLink = windows.GUID{
		Data1: 0x00021401,
		Data4: [8]byte{0xC0, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x46},
	}
	iidIShellLinkW = windows.GUID{
		Data1: 0x000214F9,
		Data4: [8]byte{0xC0, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x46},
	}
	iidIPersistFile = windows.GUID{
		Data1: 0x0000010B,
		Data4: [8]byte{0xC0, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x46},
	}
)

type iShellLinkWVtbl struct {
	QueryInterface      uintptr
	AddRef              uintptr
	Release             uintptr
	GetPath             uintptr
	GetIDList           uintptr
	SetIDList           uintptr
	GetDescription      uintptr
	SetDescription      uintptr
	GetWorkingDirectory uintptr
	SetWorkingDirectory uintptr
	GetArguments        uintptr
	SetArguments        uintptr
	GetHotkey           uintptr
	SetHotkey           uintptr
	GetShowCmd          uintptr
	SetShowCmd          uintptr
	GetIconLocation     uintptr
	SetIconLocation     uintptr
	SetRelativePath     uintptr
	Resolve             uintptr
	SetPath             uintptr
}

type iShellLinkW struct {
	vtbl *iShellLinkWVtbl
}

type iPersistFileVtbl struct {
	QueryInterface uintptr
	AddRef         uintptr
	Release        uintptr
	GetClassID     uintptr
	IsDirty        uintptr
	Load           uintptr
	Save           uintptr
	SaveCompleted  uintptr
	GetCurFile     uintptr
}

type iPersistFile struct {
	vtbl *iPersistFileVtbl
}

var (
	ole32            = syscall.NewLazyDLL("ole32.dll")
	coInitializeEx   = ole32.NewProc("CoInitializeEx")
	coCreateInstance = ole32.NewProc("CoCreateInstance")
	coUninitialize   = ole32.NewProc("CoUninitialize")
)

const (
	coinitApartmentThreaded = 0x2
	clsctxInprocServer      = 0x1
)

// Create writes the .lnk file, overwriting an existing one.
func (s *Shortcuts) Create(sc ports.Shortcut) error {
	dir, err := shortcutDir(sc.Desktop)
	if err != nil {
		return err
	}
	lnkPath := filepath.Join(dir, sc.Name+".lnk")

	if err := writeShellLink(lnkPath, sc); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrShortcutFailed.Error()), "path", lnkPath)
	}
	return nil
}

// Remove deletes the .lnk file. A missing file is not an error.
func (s *Shortcuts) Remove(name string, desktop bool) error {
	dir, err := shortcutDir(desktop)
	if err != nil {
		return err
	}
	lnkPath := filepath.Join(dir, name+".lnk")
	if err := os.Remove(lnkPath); err != nil && !os.IsNotExist(err) {
		return zerr.With(zerr.Wrap(err, domain.ErrShortcutFailed.Error()), "path", lnkPath)
	}
	return nil
}

func shortcutDir(desktop bool) (string, error) {
	folder := windows.FOLDERID_Programs
	if desktop {
		folder = windows.FOLDERID_Desktop
	}
	dir, err := windows.KnownFolderPath(folder, 0)
	if err != nil {
		return "", zerr.Wrap(err, domain.ErrShortcutFailed.Error())
	}
	return dir, nil
}

func writeShellLink(lnkPath string, sc ports.Shortcut) error {
	hr, _, _ := coInitializeEx.Call(0, coinitApartmentThreaded)
	// S_FALSE (1) means COM was already initialized on this thread.
	if hr != 0 && hr != 1 {
		return syscall.Errno(hr)
	}
	defer func() { _, _, _ = coUninitialize.Call() }()

	var link *iShellLinkW
	hr, _, _ = coCreateInstance.Call(
		uintptr(unsafe.Pointer(&clsidShellLink)),
		0,
		clsctxInprocServer,
		uintptr(unsafe.Pointer(&iidIShellLinkW)),
		uintptr(unsafe.Pointer(&link)),
	)
	if hr != 0 {
		return syscall.Errno(hr)
	}
	defer func() { _, _, _ = syscall.SyscallN(link.vtbl.Release, uintptr(unsafe.Pointer(link))) }()

	if err := callSetString(link.vtbl.SetPath, link, sc.Target); err != nil {
		return err
	}
	if sc.WorkingDir != "" {
		if err := callSetString(link.vtbl.SetWorkingDirectory, link, sc.WorkingDir); err != nil {
			return err
		}
	}
	if sc.Icon != "" {
		icon, err := syscall.UTF16PtrFromString(sc.Icon)
		if err != nil {
			return err
		}
		hr, _, _ = syscall.SyscallN(link.vtbl.SetIconLocation,
			uintptr(unsafe.Pointer(link)), uintptr(unsafe.Pointer(icon)), 0)
		if hr != 0 {
			return syscall.Errno(hr)
		}
	}

	var persist *iPersistFile
	hr, _, _ = syscall.SyscallN(link.vtbl.QueryInterface,
		uintptr(unsafe.Pointer(link)),
		uintptr(unsafe.Pointer(&iidIPersistFile)),
		uintptr(unsafe.Pointer(&persist)))
	if hr != 0 {
		return syscall.Errno(hr)
	}
	defer func() { _, _, _ = syscall.SyscallN(persist.vtbl.Release, uintptr(unsafe.Pointer(persist))) }()

	wPath, err := syscall.UTF16PtrFromString(lnkPath)
	if err != nil {
		return err
	}
	hr, _, _ = syscall.SyscallN(persist.vtbl.Save,
		uintptr(unsafe.Pointer(persist)), uintptr(unsafe.Pointer(wPath)), 1)
	if hr != 0 {
		return syscall.Errno(hr)
	}
	return nil
}

func callSetString(method uintptr, link *iShellLinkW, value string) error {
	w, err := syscall.UTF16PtrFromString(value)
	if err != nil {
		return err
	}
	hr, _, _ := syscall.SyscallN(method, uintptr(unsafe.Pointer(link)), uintptr(unsafe.Pointer(w)))
	if hr != 0 {
		return syscall.Errno(hr)
	}
	return nil
}
