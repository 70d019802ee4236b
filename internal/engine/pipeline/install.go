package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"go.frostpack.dev/frost/internal/core/domain"
	"go.frostpack.dev/frost/internal/core/ports"
	"go.frostpack.dev/frost/internal/i18n"
	"go.trai.ch/zerr"
)

// InstallOptions carry the user's install-time choices. Nil pointers mean
// the manifest's task defaults apply.
type InstallOptions struct {
	// Desktop overrides the desktop icon task.
	Desktop *bool
	// Autostart overrides the login autostart task.
	Autostart *bool
	// Launch overrides launching the application after install.
	Launch *bool
	// Language selects the message set. Empty means the manifest's first
	// offered language.
	Language domain.Language
}

// InstallResult reports what the install did.
type InstallResult struct {
	InstallDir string
	Receipt    *domain.InstallReceipt
}

// Install applies the installer archive to the current user's system:
// files under the per-user install root, a Start Menu shortcut, and the
// optional desktop shortcut and autostart entry. Installing over an
// existing install of the same application upgrades it in place.
func (p *Pipeline) Install(ctx context.Context, archivePath string, opts InstallOptions) (*InstallResult, error) {
	p.renderer.OnPlanEmit([]string{StepInstall})

	var res *InstallResult
	err := p.runStep(ctx, StepInstall, func(ctx context.Context, log func(string)) (bool, error) {
		r, err := p.install(ctx, archivePath, opts, log)
		if err != nil {
			return false, err
		}
		res = r
		return false, nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (p *Pipeline) install(
	ctx context.Context,
	archivePath string,
	opts InstallOptions,
	log func(string),
) (*InstallResult, error) {
	manifest, err := p.archiver.ReadManifest(archivePath)
	if err != nil {
		return nil, err
	}

	msgs := p.selectCatalog(manifest, opts.Language)
	desktop := resolveTask(opts.Desktop, manifest.DesktopIcon)
	autostart := resolveTask(opts.Autostart, manifest.Autostart)
	launch := manifest.LaunchAfterInstall
	if opts.Launch != nil {
		launch = *opts.Launch
	}

	log(msgs.Get(i18n.KeyPreparing))
	installDir, err := p.locator.InstallDirFor(manifest.InstallDir())
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrInstallDirFailed.Error())
	}
	if err := os.MkdirAll(installDir, domain.DirPerm); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrInstallDirFailed.Error()), "dir", installDir)
	}

	log(msgs.Get(i18n.KeyCopyingFiles))
	files, err := p.archiver.Extract(ctx, archivePath, installDir)
	if err != nil {
		return nil, err
	}

	meta, err := readBundleMeta(installDir)
	if err != nil {
		return nil, err
	}
	exe := filepath.Join(installDir, meta.Entry)

	receipt := &domain.InstallReceipt{
		AppID:       manifest.AppID,
		AppName:     manifest.AppName,
		Version:     manifest.Version,
		InstallDir:  installDir,
		Files:       files,
		Language:    msgs.Language(),
		InstalledAt: time.Now().UTC(),
	}

	// Shortcut and autostart problems leave a working install behind, so
	// they are reported but never fail the install.
	log(msgs.Get(i18n.KeyCreatingMenu))
	if err := p.createShortcuts(manifest, installDir, exe, desktop, msgs, log); err != nil {
		p.logger.Error(zerr.Wrap(err, domain.ErrShortcutFailed.Error()))
	} else {
		receipt.DesktopShortcut = desktop
	}

	if autostart {
		log(msgs.Get(i18n.KeyAutostart))
		if err := p.enableAutostart(manifest, exe); err != nil {
			p.logger.Error(zerr.Wrap(err, domain.ErrAutostartFailed.Error()))
		} else {
			receipt.Autostart = true
		}
	}

	if err := writeReceipt(installDir, receipt); err != nil {
		return nil, err
	}

	if launch {
		log(msgs.Get(i18n.KeyLaunching))
		if err := launchInstalled(exe, installDir); err != nil {
			p.logger.Error(zerr.Wrap(err, domain.ErrLaunchFailed.Error()))
		}
	}

	log(msgs.Get(i18n.KeyInstallDone))
	return &InstallResult{InstallDir: installDir, Receipt: receipt}, nil
}

// selectCatalog resolves the message catalog for the install. A language
// the manifest does not offer falls back to the first offered one.
func (p *Pipeline) selectCatalog(m *domain.InstallerManifest, lang domain.Language) *i18n.Catalog {
	if lang != "" {
		if m.HasLanguage(lang) {
			return i18n.For(lang)
		}
		p.logger.Warn(fmt.Sprintf("language %q is not offered by this installer", lang))
	}
	if len(m.Languages) > 0 {
		return i18n.For(m.Languages[0])
	}
	return i18n.For(domain.LangEnglish)
}

// resolveTask resolves one optional task: an un-offered task never runs,
// an explicit choice wins, otherwise the manifest default applies.
func resolveTask(override *bool, task domain.TaskOption) bool {
	if !task.Offered {
		return false
	}
	if override != nil {
		return *override
	}
	return task.Default
}

func (p *Pipeline) createShortcuts(
	m *domain.InstallerManifest,
	installDir, exe string,
	desktop bool,
	msgs *i18n.Catalog,
	log func(string),
) error {
	icon := ""
	if m.Icon != "" {
		candidate := filepath.Join(installDir, filepath.Base(m.Icon))
		if _, err := os.Stat(candidate); err == nil {
			icon = candidate
		}
	}

	menu := ports.Shortcut{
		Name:       m.AppName,
		Target:     exe,
		WorkingDir: installDir,
		Icon:       icon,
	}
	if err := p.shortcuts.Create(menu); err != nil {
		return err
	}

	if desktop {
		log(msgs.Get(i18n.KeyCreatingDesktop))
		menu.Desktop = true
		return p.shortcuts.Create(menu)
	}
	return nil
}

func (p *Pipeline) enableAutostart(m *domain.InstallerManifest, exe string) error {
	arg := m.AutostartArg
	if arg == "" {
		arg = domain.DefaultAutostartArg
	}
	// Plain quoting: %q would escape backslashes in Windows paths, and the
	// shell and the Run registry value expect them literal.
	command := fmt.Sprintf(`"%s" %s`, exe, arg)
	return p.autostart.Enable(m.AppName, command)
}

func writeReceipt(installDir string, receipt *domain.InstallReceipt) error {
	data, err := json.MarshalIndent(receipt, "", "  ")
	if err != nil {
		return zerr.Wrap(err, domain.ErrCopyFailed.Error())
	}
	path := filepath.Join(installDir, domain.ReceiptName)
	if err := os.WriteFile(path, data, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrCopyFailed.Error()), "path", path)
	}
	return nil
}

func launchInstalled(exe, workDir string) error {
	cmd := exec.Command(exe)
	cmd.Dir = workDir
	return cmd.Start()
}
