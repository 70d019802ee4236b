// Package archive implements the installer archive format: a zip whose
// payload is the bundle tree plus an embedded installer manifest at
// domain.ArchiveManifestName.
package archive

import (
	"archive/zip"
	"context"
	"encoding/json"
	"errors"
	"io"
	iofs "io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/flate"
	"go.frostpack.dev/frost/internal/core/domain"
	"go.trai.ch/zerr"
)

// Archiver implements ports.Archiver on top of archive/zip.
type Archiver struct{}

// NewArchiver creates a new Archiver.
func NewArchiver() *Archiver {
	return &Archiver{}
}

// Create writes the installer archive at outPath from bundleDir.
func (a *Archiver) Create(ctx context.Context, bundleDir, outPath string, manifest *domain.InstallerManifest) error {
	if err := os.MkdirAll(filepath.Dir(outPath), domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrArchiveCreateFailed.Error()), "path", outPath)
	}

	out, err := os.OpenFile(outPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, domain.FilePerm) //nolint:gosec // Output path comes from the manifest
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrArchiveCreateFailed.Error()), "path", outPath)
	}

	zw := zip.NewWriter(out)
	if manifest.Compression == domain.CompressionMax {
		// Swap in klauspost's encoder at the highest ratio for the
		// "max" policy; "none" falls through to zip.Store below.
		zw.RegisterCompressor(zip.Deflate, func(w io.Writer) (io.WriteCloser, error) {
			return flate.NewWriter(w, flate.BestCompression)
		})
	}

	method := zip.Store
	if manifest.Compression == domain.CompressionMax {
		method = zip.Deflate
	}

	if err := writeManifestEntry(zw, manifest, method); err != nil {
		_ = zw.Close()
		_ = out.Close()
		return err
	}

	if err := writeBundleEntries(ctx, zw, bundleDir, method); err != nil {
		_ = zw.Close()
		_ = out.Close()
		return err
	}

	if err := zw.Close(); err != nil {
		_ = out.Close()
		return zerr.Wrap(err, domain.ErrArchiveCreateFailed.Error())
	}
	if err := out.Close(); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrArchiveCreateFailed.Error()), "path", outPath)
	}
	return nil
}

func writeManifestEntry(zw *zip.Writer, manifest *domain.InstallerManifest, method uint16) error {
	data, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return zerr.Wrap(err, domain.ErrArchiveCreateFailed.Error())
	}

	w, err := zw.CreateHeader(&zip.FileHeader{
		Name:   domain.ArchiveManifestName,
		Method: method,
	})
	if err != nil {
		return zerr.Wrap(err, domain.ErrArchiveCreateFailed.Error())
	}
	if _, err := w.Write(data); err != nil {
		return zerr.Wrap(err, domain.ErrArchiveCreateFailed.Error())
	}
	return nil
}

func writeBundleEntries(ctx context.Context, zw *zip.Writer, bundleDir string, method uint16) error {
	return filepath.WalkDir(bundleDir, func(path string, d iofs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if d.IsDir() {
			return nil
		}

		rel, relErr := filepath.Rel(bundleDir, path)
		if relErr != nil {
			return relErr
		}

		info, infoErr := d.Info()
		if infoErr != nil {
			return infoErr
		}

		header := &zip.FileHeader{
			Name:     filepath.ToSlash(rel),
			Method:   method,
			Modified: info.ModTime(),
		}
		header.SetMode(info.Mode())

		w, createErr := zw.CreateHeader(header)
		if createErr != nil {
			return createErr
		}

		f, openErr := os.Open(path) //nolint:gosec // Path is inside the bundle
		if openErr != nil {
			return openErr
		}
		if _, copyErr := io.Copy(w, f); copyErr != nil {
			_ = f.Close()
			return copyErr
		}
		return f.Close()
	})
}

// ReadManifest extracts the embedded installer manifest without unpacking
// the payload.
func (a *Archiver) ReadManifest(archivePath string) (*domain.InstallerManifest, error) {
	zr, err := zip.OpenReader(archivePath)
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return nil, zerr.With(domain.ErrInstallerNotFound, "path", archivePath)
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrArchiveReadFailed.Error()), "path", archivePath)
	}
	defer zr.Close() //nolint:errcheck // Best effort close in defer

	for _, f := range zr.File {
		if f.Name != domain.ArchiveManifestName {
			continue
		}

		rc, openErr := f.Open()
		if openErr != nil {
			return nil, zerr.Wrap(openErr, domain.ErrArchiveReadFailed.Error())
		}
		defer rc.Close() //nolint:errcheck // Best effort close in defer

		var manifest domain.InstallerManifest
		if decodeErr := json.NewDecoder(rc).Decode(&manifest); decodeErr != nil {
			return nil, zerr.Wrap(decodeErr, domain.ErrArchiveReadFailed.Error())
		}
		return &manifest, nil
	}

	return nil, zerr.With(domain.ErrArchiveManifestMissing, "path", archivePath)
}

// Extract unpacks the archive payload into destDir, skipping the embedded
// manifest entry. It returns the destDir-relative paths of extracted files.
func (a *Archiver) Extract(ctx context.Context, archivePath, destDir string) ([]string, error) {
	zr, err := zip.OpenReader(archivePath)
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return nil, zerr.With(domain.ErrInstallerNotFound, "path", archivePath)
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrArchiveReadFailed.Error()), "path", archivePath)
	}
	defer zr.Close() //nolint:errcheck // Best effort close in defer

	var extracted []string
	for _, f := range zr.File {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		if f.Name == domain.ArchiveManifestName {
			continue
		}

		rel, relErr := safeEntryPath(f.Name)
		if relErr != nil {
			return nil, relErr
		}

		target := filepath.Join(destDir, rel)
		if f.FileInfo().IsDir() {
			if mkErr := os.MkdirAll(target, domain.DirPerm); mkErr != nil {
				return nil, zerr.Wrap(mkErr, domain.ErrCopyFailed.Error())
			}
			continue
		}

		if err := extractFile(f, target); err != nil {
			return nil, err
		}
		extracted = append(extracted, rel)
	}

	return extracted, nil
}

// safeEntryPath rejects absolute and parent-escaping entry names (zip slip).
func safeEntryPath(name string) (string, error) {
	cleaned := filepath.Clean(filepath.FromSlash(name))
	if filepath.IsAbs(cleaned) || cleaned == ".." || strings.HasPrefix(cleaned, ".."+string(filepath.Separator)) {
		return "", zerr.With(domain.ErrArchiveEntryEscapes, "entry", name)
	}
	return cleaned, nil
}

func extractFile(f *zip.File, target string) error {
	if err := os.MkdirAll(filepath.Dir(target), domain.DirPerm); err != nil {
		return zerr.Wrap(err, domain.ErrCopyFailed.Error())
	}

	rc, err := f.Open()
	if err != nil {
		return zerr.Wrap(err, domain.ErrArchiveReadFailed.Error())
	}
	defer rc.Close() //nolint:errcheck // Best effort close in defer

	perm := iofs.FileMode(domain.FilePerm)
	if f.Mode()&0o111 != 0 {
		perm = domain.ExecPerm
	}

	out, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm) //nolint:gosec // target is validated by safeEntryPath
	if err != nil {
		return zerr.Wrap(err, domain.ErrCopyFailed.Error())
	}

	if _, err := io.Copy(out, rc); err != nil { //nolint:gosec // Sizes are bounded by the bundle we produced
		_ = out.Close()
		return zerr.Wrap(err, domain.ErrCopyFailed.Error())
	}
	return out.Close()
}
