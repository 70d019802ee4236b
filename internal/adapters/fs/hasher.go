// Package fs provides filesystem hashing and copying for the pipeline.
package fs

import (
	"fmt"
	"io"
	iofs "io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/cespare/xxhash/v2"
	"go.frostpack.dev/frost/internal/core/domain"
	"go.frostpack.dev/frost/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Hasher = (*Hasher)(nil)

// Hasher provides deterministic content hashing for manifests and trees.
type Hasher struct{}

// NewHasher creates a new Hasher.
func NewHasher() *Hasher {
	return &Hasher{}
}

// ComputeFreezeHash computes a single hash representing the freeze manifest
// definition, the installer version stamped into the bundle metadata, and
// the content of the entry script and every declared asset.
func (h *Hasher) ComputeFreezeHash(m *domain.Manifest) (string, error) {
	hasher := xxhash.New()

	hashManifestDefinition(m, hasher)

	if err := h.hashPath(filepath.Join(m.Root, m.Freeze.Entry), hasher); err != nil {
		return "", err
	}
	if m.Freeze.Icon != "" {
		if err := h.hashPath(filepath.Join(m.Root, m.Freeze.Icon), hasher); err != nil {
			return "", err
		}
	}
	for _, rule := range m.Freeze.Assets {
		if err := h.hashPath(filepath.Join(m.Root, rule.Source), hasher); err != nil {
			return "", err
		}
	}

	return fmt.Sprintf("%016x", hasher.Sum64()), nil
}

// ComputeTreeHash computes a hash over all files under dir in deterministic order.
func (h *Hasher) ComputeTreeHash(dir string) (string, error) {
	hasher := xxhash.New()
	if err := h.hashDir(dir, hasher); err != nil {
		return "", err
	}
	return fmt.Sprintf("%016x", hasher.Sum64()), nil
}

// hashManifestDefinition hashes the manifest fields that shape the bundle.
// The installer version is included because bundle.json records it.
func hashManifestDefinition(m *domain.Manifest, hasher *xxhash.Digest) {
	writeField := func(s string) {
		_, _ = hasher.WriteString(s)
		_, _ = hasher.Write([]byte{0})
	}

	writeField(m.Freeze.Entry)
	writeField(m.Freeze.Output)
	writeField(m.Freeze.Icon)
	writeField(fmt.Sprintf("%t/%t", m.Freeze.Windowed, m.Freeze.NoCompress))
	writeField(m.Installer.Version)

	for _, rule := range m.Freeze.Assets {
		writeField(rule.Source)
		writeField(rule.Dest)
	}
	_, _ = hasher.Write([]byte{0}) // Section separator

	for _, name := range m.Freeze.HiddenImports {
		writeField(name)
	}
	_, _ = hasher.Write([]byte{0})

	for _, name := range m.Freeze.Excludes {
		writeField(name)
	}
	_, _ = hasher.Write([]byte{0})
}

// hashPath hashes a file or, for directories, every file beneath it.
func (h *Hasher) hashPath(path string, hasher *xxhash.Digest) error {
	info, err := os.Stat(path)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrPathStatFailed.Error()), "path", path)
	}

	if info.IsDir() {
		return h.hashDir(path, hasher)
	}
	return h.hashFile(path, hasher)
}

// hashDir hashes all files under dir, walking in sorted order so the digest
// is independent of filesystem iteration order.
func (h *Hasher) hashDir(dir string, hasher *xxhash.Digest) error {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d iofs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrPathStatFailed.Error()), "dir", dir)
	}

	sort.Strings(files)
	for _, file := range files {
		rel, relErr := filepath.Rel(dir, file)
		if relErr != nil {
			rel = file
		}
		_, _ = hasher.WriteString(filepath.ToSlash(rel))
		_, _ = hasher.Write([]byte{0})
		if err := h.hashFile(file, hasher); err != nil {
			return err
		}
	}
	return nil
}

func (h *Hasher) hashFile(path string, hasher *xxhash.Digest) error {
	f, err := os.Open(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrFileHashFailed.Error()), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	if _, err := io.Copy(hasher, f); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrFileHashFailed.Error()), "path", path)
	}
	return nil
}
