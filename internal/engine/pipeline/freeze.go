package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"go.frostpack.dev/frost/internal/adapters/fs"
	"go.frostpack.dev/frost/internal/core/domain"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// FreezeResult reports the outcome of a freeze run.
type FreezeResult struct {
	// BundleDir is the absolute path of the produced bundle directory.
	BundleDir string
	// Skipped is true when the bundle was already up to date.
	Skipped bool
	// InputHash is the hash of the freeze manifest and all its inputs.
	InputHash string
	// BundleHash is the hash of the staged bundle tree.
	BundleHash string
}

// Freeze stages the application tree into a bundle directory under dist/.
// An unchanged freeze whose bundle is still intact is skipped.
func (p *Pipeline) Freeze(ctx context.Context, m *domain.Manifest, noCache bool) (*FreezeResult, error) {
	p.renderer.OnPlanEmit([]string{StepFreeze})

	var res *FreezeResult
	err := p.runStep(ctx, StepFreeze, func(ctx context.Context, log func(string)) (bool, error) {
		r, err := p.freeze(ctx, m, noCache, log)
		if err != nil {
			return false, err
		}
		res = r
		return r.Skipped, nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (p *Pipeline) freeze(
	ctx context.Context,
	m *domain.Manifest,
	noCache bool,
	log func(string),
) (*FreezeResult, error) {
	if err := checkFreezeInputs(m); err != nil {
		return nil, err
	}

	inputHash, err := p.hasher.ComputeFreezeHash(m)
	if err != nil {
		return nil, err
	}

	bundleDir := filepath.Join(m.Root, domain.DistDirName, m.Freeze.Output)

	if !noCache {
		if hash, ok := p.bundleUpToDate(m, inputHash, bundleDir); ok {
			return &FreezeResult{
				BundleDir:  bundleDir,
				Skipped:    true,
				InputHash:  inputHash,
				BundleHash: hash,
			}, nil
		}
	}

	log("Staging application tree")
	if err := p.stage(ctx, m, bundleDir, log); err != nil {
		return nil, err
	}

	contentHash, err := p.hasher.ComputeTreeHash(bundleDir)
	if err != nil {
		return nil, err
	}

	log("Writing bundle metadata")
	if err := writeBundleMeta(m, bundleDir, contentHash); err != nil {
		return nil, err
	}

	bundleHash, err := p.hasher.ComputeTreeHash(bundleDir)
	if err != nil {
		return nil, err
	}

	if err := p.store.Put(m.Root, domain.FreezeInfo{
		BundleName: m.Freeze.Output,
		InputHash:  inputHash,
		BundleHash: bundleHash,
		Timestamp:  time.Now(),
	}); err != nil {
		return nil, err
	}

	return &FreezeResult{
		BundleDir:  bundleDir,
		InputHash:  inputHash,
		BundleHash: bundleHash,
	}, nil
}

// checkFreezeInputs verifies that every declared input exists on disk.
// Structural validation already happened at load time.
func checkFreezeInputs(m *domain.Manifest) error {
	entry := filepath.Join(m.Root, m.Freeze.Entry)
	if _, err := os.Stat(entry); err != nil {
		return zerr.With(domain.ErrEntryNotFound, "entry", m.Freeze.Entry)
	}

	if m.Freeze.Icon != "" {
		icon := filepath.Join(m.Root, m.Freeze.Icon)
		if _, err := os.Stat(icon); err != nil {
			return zerr.With(domain.ErrAssetNotFound, "icon", m.Freeze.Icon)
		}
	}

	for _, rule := range m.Freeze.Assets {
		src := filepath.Join(m.Root, rule.Source)
		if _, err := os.Stat(src); err != nil {
			return zerr.With(domain.ErrAssetNotFound, "asset", rule.Source)
		}
	}
	return nil
}

// bundleUpToDate reports whether the stored freeze info matches the current
// input hash and the bundle tree on disk is still intact.
func (p *Pipeline) bundleUpToDate(m *domain.Manifest, inputHash, bundleDir string) (string, bool) {
	info, err := p.store.Get(m.Root, m.Freeze.Output)
	if err != nil || info == nil || info.InputHash != inputHash {
		return "", false
	}

	// A hash error here means the bundle is missing or damaged. Treat it
	// as a cache miss and restage.
	hash, err := p.hasher.ComputeTreeHash(bundleDir)
	if err != nil || hash != info.BundleHash {
		return "", false
	}
	return hash, true
}

func (p *Pipeline) stage(ctx context.Context, m *domain.Manifest, bundleDir string, log func(string)) error {
	if err := os.RemoveAll(bundleDir); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrCopyFailed.Error()), "dir", bundleDir)
	}
	if err := os.MkdirAll(bundleDir, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrCopyFailed.Error()), "dir", bundleDir)
	}

	entry := filepath.Join(m.Root, m.Freeze.Entry)
	if err := fs.CopyFile(entry, filepath.Join(bundleDir, filepath.Base(m.Freeze.Entry))); err != nil {
		return err
	}

	if m.Freeze.Icon != "" {
		icon := filepath.Join(m.Root, m.Freeze.Icon)
		if err := fs.CopyFile(icon, filepath.Join(bundleDir, filepath.Base(m.Freeze.Icon))); err != nil {
			return err
		}
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for _, rule := range m.Freeze.Assets {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			log(fmt.Sprintf("Copying %s", rule.Source))
			return stageAsset(m.Root, bundleDir, rule)
		})
	}

	return g.Wait()
}

// stageAsset copies one asset rule into the bundle. A directory source is
// copied recursively; a file source lands under the rule's destination.
func stageAsset(root, bundleDir string, rule domain.AssetRule) error {
	destDir, err := assetDestDir(bundleDir, rule)
	if err != nil {
		return err
	}

	src := filepath.Join(root, rule.Source)
	info, err := os.Stat(src)
	if err != nil {
		return zerr.With(domain.ErrAssetNotFound, "asset", rule.Source)
	}

	if info.IsDir() {
		_, err := fs.CopyTree(src, destDir)
		return err
	}
	return fs.CopyFile(src, filepath.Join(destDir, filepath.Base(rule.Source)))
}

// assetDestDir resolves the rule's destination inside the bundle, rejecting
// destinations that escape it.
func assetDestDir(bundleDir string, rule domain.AssetRule) (string, error) {
	destDir := filepath.Join(bundleDir, filepath.FromSlash(rule.Dest))

	rel, err := filepath.Rel(bundleDir, destDir)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", zerr.With(domain.ErrAssetDestEscapes, "dest", rule.Dest)
	}
	return destDir, nil
}

func writeBundleMeta(m *domain.Manifest, bundleDir, contentHash string) error {
	meta := domain.BundleMeta{
		Name:          m.Freeze.Output,
		Version:       m.Installer.Version,
		Entry:         filepath.Base(m.Freeze.Entry),
		Windowed:      m.Freeze.Windowed,
		ContentHash:   contentHash,
		HiddenImports: m.Freeze.HiddenImports,
		Excludes:      m.Freeze.Excludes,
		CreatedAt:     time.Now().UTC(),
	}

	data, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return zerr.Wrap(err, domain.ErrBundleMetaInvalid.Error())
	}

	path := filepath.Join(bundleDir, domain.BundleMetaName)
	if err := os.WriteFile(path, data, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrCopyFailed.Error()), "path", path)
	}
	return nil
}
