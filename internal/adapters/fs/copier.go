package fs

import (
	"io"
	iofs "io/fs"
	"os"
	"path/filepath"

	"go.frostpack.dev/frost/internal/core/domain"
	"go.trai.ch/zerr"
)

// CopyFile copies a single file, creating the destination directory as needed
// and preserving the executable bit.
func CopyFile(src, dst string) error {
	info, err := os.Stat(src)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrPathStatFailed.Error()), "path", src)
	}

	if err := os.MkdirAll(filepath.Dir(dst), domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrCopyFailed.Error()), "dir", filepath.Dir(dst))
	}

	srcFile, err := os.Open(src) //nolint:gosec // Path comes from a validated manifest
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrCopyFailed.Error()), "path", src)
	}
	defer srcFile.Close() //nolint:errcheck // Best effort close in defer

	perm := iofs.FileMode(domain.FilePerm)
	if info.Mode()&0o111 != 0 {
		perm = domain.ExecPerm
	}

	dstFile, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm) //nolint:gosec // Destination is inside the bundle
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrCopyFailed.Error()), "path", dst)
	}

	if _, err := io.Copy(dstFile, srcFile); err != nil {
		_ = dstFile.Close()
		return zerr.With(zerr.Wrap(err, domain.ErrCopyFailed.Error()), "path", dst)
	}

	if err := dstFile.Close(); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrCopyFailed.Error()), "path", dst)
	}
	return nil
}

// CopyTree recursively copies the tree rooted at src into dst and returns the
// dst-relative paths of all copied files in walk order.
func CopyTree(src, dst string) ([]string, error) {
	var copied []string

	err := filepath.WalkDir(src, func(path string, d iofs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		rel, relErr := filepath.Rel(src, path)
		if relErr != nil {
			return relErr
		}
		target := filepath.Join(dst, rel)

		if d.IsDir() {
			return os.MkdirAll(target, domain.DirPerm)
		}

		if err := CopyFile(path, target); err != nil {
			return err
		}
		copied = append(copied, rel)
		return nil
	})
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrCopyFailed.Error()), "src", src)
	}

	return copied, nil
}
