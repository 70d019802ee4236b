package fs_test

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.frostpack.dev/frost/internal/adapters/fs"
	"go.frostpack.dev/frost/internal/core/domain"
)

func TestCopyFile(t *testing.T) {
	t.Parallel()

	src := filepath.Join(t.TempDir(), "src.txt")
	require.NoError(t, os.WriteFile(src, []byte("content"), 0o644))

	dst := filepath.Join(t.TempDir(), "nested", "dir", "dst.txt")
	require.NoError(t, fs.CopyFile(src, dst))

	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "content", string(data))
}

func TestCopyFile_PreservesExecutableBit(t *testing.T) {
	t.Parallel()
	if runtime.GOOS == "windows" {
		t.Skip("no executable bit on windows")
	}

	src := filepath.Join(t.TempDir(), "run.sh")
	require.NoError(t, os.WriteFile(src, []byte("#!/bin/sh\n"), 0o755))

	dst := filepath.Join(t.TempDir(), "run.sh")
	require.NoError(t, fs.CopyFile(src, dst))

	info, err := os.Stat(dst)
	require.NoError(t, err)
	assert.NotZero(t, info.Mode()&0o111)
}

func TestCopyFile_MissingSource(t *testing.T) {
	t.Parallel()

	err := fs.CopyFile(filepath.Join(t.TempDir(), "missing"), filepath.Join(t.TempDir(), "dst"))
	require.ErrorContains(t, err, domain.ErrPathStatFailed.Error())
}

func TestCopyTree(t *testing.T) {
	t.Parallel()

	src := t.TempDir()
	writeFile(t, src, "a.txt", "alpha")
	writeFile(t, src, "sub/b.txt", "beta")
	writeFile(t, src, "sub/deep/c.txt", "gamma")

	dst := filepath.Join(t.TempDir(), "out")
	copied, err := fs.CopyTree(src, dst)
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{
		"a.txt",
		filepath.Join("sub", "b.txt"),
		filepath.Join("sub", "deep", "c.txt"),
	}, copied)

	data, err := os.ReadFile(filepath.Join(dst, "sub", "deep", "c.txt"))
	require.NoError(t, err)
	assert.Equal(t, "gamma", string(data))
}
