package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	iofs "io/fs"
	"os"
	"path/filepath"

	"go.frostpack.dev/frost/internal/core/domain"
	"go.frostpack.dev/frost/internal/i18n"
	"go.trai.ch/zerr"
)

// UninstallResult reports what the uninstall removed.
type UninstallResult struct {
	InstallDir string
	Receipt    *domain.InstallReceipt
}

// Uninstall reverses an install: the autostart entry and shortcuts go
// first, then user data named by the cleanup list, then the install
// directory itself. Messages use the language recorded at install time.
func (p *Pipeline) Uninstall(ctx context.Context, m *domain.InstallerManifest) (*UninstallResult, error) {
	p.renderer.OnPlanEmit([]string{StepUninstall})

	var res *UninstallResult
	err := p.runStep(ctx, StepUninstall, func(ctx context.Context, log func(string)) (bool, error) {
		r, err := p.uninstall(m, log)
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

func (p *Pipeline) uninstall(m *domain.InstallerManifest, log func(string)) (*UninstallResult, error) {
	installDir, err := p.locator.InstallDirFor(m.InstallDir())
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrInstallDirFailed.Error())
	}

	receipt, err := readReceipt(installDir)
	if err != nil {
		return nil, err
	}

	msgs := i18n.For(receipt.Language)

	log(msgs.Get(i18n.KeyRemovingEntries))
	if err := p.autostart.Disable(m.AppName); err != nil {
		p.logger.Error(zerr.Wrap(err, domain.ErrAutostartFailed.Error()))
	}
	if err := p.shortcuts.Remove(m.AppName, false); err != nil {
		p.logger.Error(zerr.Wrap(err, domain.ErrShortcutFailed.Error()))
	}
	if err := p.shortcuts.Remove(m.AppName, true); err != nil {
		p.logger.Error(zerr.Wrap(err, domain.ErrShortcutFailed.Error()))
	}

	log(msgs.Get(i18n.KeyRemovingFiles))
	if err := removeCleanupFiles(installDir, m.CleanupFiles); err != nil {
		return nil, err
	}

	if err := os.RemoveAll(installDir); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrCopyFailed.Error()), "dir", installDir)
	}

	log(msgs.Get(i18n.KeyUninstallDone))
	return &UninstallResult{InstallDir: installDir, Receipt: receipt}, nil
}

// readReceipt loads the install receipt, mapping its absence to
// ErrNotInstalled.
func readReceipt(installDir string) (*domain.InstallReceipt, error) {
	data, err := os.ReadFile(filepath.Join(installDir, domain.ReceiptName))
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return nil, zerr.With(domain.ErrNotInstalled, "dir", installDir)
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrNotInstalled.Error()), "dir", installDir)
	}

	var receipt domain.InstallReceipt
	if err := json.Unmarshal(data, &receipt); err != nil {
		return nil, zerr.With(domain.ErrNotInstalled, "dir", installDir)
	}
	return &receipt, nil
}

// removeCleanupFiles deletes the user data files named by the manifest.
// A file that was never created is not an error.
func removeCleanupFiles(installDir string, names []string) error {
	for _, name := range names {
		path := filepath.Join(installDir, filepath.FromSlash(name))
		if err := os.Remove(path); err != nil && !errors.Is(err, iofs.ErrNotExist) {
			return zerr.With(zerr.Wrap(err, domain.ErrCopyFailed.Error()), "path", path)
		}
	}
	return nil
}
