package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"go.frostpack.dev/frost/internal/core/domain"
	"go.trai.ch/zerr"
)

// PackageResult reports the outcome of an installer build.
type PackageResult struct {
	// ArchivePath is the absolute path of the produced installer archive.
	ArchivePath string
	// Meta is the metadata of the packaged bundle.
	Meta *domain.BundleMeta
}

// Package builds the installer archive from the frozen bundle.
// The bundle must have been produced by the freeze manifest in effect.
func (p *Pipeline) Package(ctx context.Context, m *domain.Manifest) (*PackageResult, error) {
	p.renderer.OnPlanEmit([]string{StepPackage})

	var res *PackageResult
	err := p.runStep(ctx, StepPackage, func(ctx context.Context, log func(string)) (bool, error) {
		r, err := p.buildInstaller(ctx, m, log)
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

// Build runs freeze and package as one plan. The freeze step may be
// answered from cache; the installer is always rebuilt.
func (p *Pipeline) Build(ctx context.Context, m *domain.Manifest, noCache bool) (*PackageResult, error) {
	p.renderer.OnPlanEmit([]string{StepFreeze, StepPackage})

	err := p.runStep(ctx, StepFreeze, func(ctx context.Context, log func(string)) (bool, error) {
		r, err := p.freeze(ctx, m, noCache, log)
		if err != nil {
			return false, err
		}
		return r.Skipped, nil
	})
	if err != nil {
		return nil, err
	}

	var res *PackageResult
	err = p.runStep(ctx, StepPackage, func(ctx context.Context, log func(string)) (bool, error) {
		r, err := p.buildInstaller(ctx, m, log)
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

func (p *Pipeline) buildInstaller(ctx context.Context, m *domain.Manifest, log func(string)) (*PackageResult, error) {
	bundleDir := filepath.Join(m.Root, domain.DistDirName, m.Freeze.Output)

	meta, err := readBundleMeta(bundleDir)
	if err != nil {
		return nil, err
	}

	if meta.Name != m.Freeze.Output {
		err := zerr.With(domain.ErrBundleNameMismatch, "bundle", meta.Name)
		return nil, zerr.With(err, "expected", m.Freeze.Output)
	}

	outPath := filepath.Join(m.Root, domain.DistDirName, m.Installer.OutputName)
	log(fmt.Sprintf("Writing %s (compression: %s)", m.Installer.OutputName, m.Installer.Compression))

	if err := p.archiver.Create(ctx, bundleDir, outPath, &m.Installer); err != nil {
		return nil, err
	}

	return &PackageResult{ArchivePath: outPath, Meta: meta}, nil
}

// readBundleMeta loads and decodes bundle.json from a bundle directory.
func readBundleMeta(bundleDir string) (*domain.BundleMeta, error) {
	if _, err := os.Stat(bundleDir); err != nil {
		return nil, zerr.With(domain.ErrBundleNotFound, "dir", bundleDir)
	}

	data, err := os.ReadFile(filepath.Join(bundleDir, domain.BundleMetaName))
	if err != nil {
		return nil, zerr.With(domain.ErrBundleMetaMissing, "dir", bundleDir)
	}

	var meta domain.BundleMeta
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, zerr.Wrap(err, domain.ErrBundleMetaInvalid.Error())
	}
	return &meta, nil
}
