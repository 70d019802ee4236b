package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.frostpack.dev/frost/internal/adapters/fs"
	"go.frostpack.dev/frost/internal/core/domain"
)

func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func freezeFixture(t *testing.T) *domain.Manifest {
	t.Helper()
	root := t.TempDir()
	writeFile(t, root, "app.py", "print('hello')")
	writeFile(t, root, "assets/icon.ico", "icon-bytes")
	writeFile(t, root, "assets/sounds/beep.wav", "beep")

	return &domain.Manifest{
		Root: root,
		Freeze: domain.FreezeManifest{
			Entry:  "app.py",
			Output: "App",
			Assets: []domain.AssetRule{{Source: "assets", Dest: "assets"}},
		},
		Installer: domain.InstallerManifest{Version: "1.0.0"},
	}
}

func TestHasher_ComputeFreezeHash_Deterministic(t *testing.T) {
	t.Parallel()

	m := freezeFixture(t)
	h := fs.NewHasher()

	first, err := h.ComputeFreezeHash(m)
	require.NoError(t, err)

	second, err := h.ComputeFreezeHash(m)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestHasher_ComputeFreezeHash_ChangesWithContent(t *testing.T) {
	t.Parallel()

	m := freezeFixture(t)
	h := fs.NewHasher()

	before, err := h.ComputeFreezeHash(m)
	require.NoError(t, err)

	writeFile(t, m.Root, "assets/sounds/beep.wav", "different")

	after, err := h.ComputeFreezeHash(m)
	require.NoError(t, err)

	assert.NotEqual(t, before, after)
}

func TestHasher_ComputeFreezeHash_ChangesWithDefinition(t *testing.T) {
	t.Parallel()

	m := freezeFixture(t)
	h := fs.NewHasher()

	before, err := h.ComputeFreezeHash(m)
	require.NoError(t, err)

	m.Freeze.HiddenImports = []string{"pyaudio"}

	after, err := h.ComputeFreezeHash(m)
	require.NoError(t, err)

	assert.NotEqual(t, before, after)
}

func TestHasher_ComputeFreezeHash_ChangesWithVersion(t *testing.T) {
	t.Parallel()

	m := freezeFixture(t)
	h := fs.NewHasher()

	before, err := h.ComputeFreezeHash(m)
	require.NoError(t, err)

	// The version lands in bundle.json, so bumping it must invalidate
	// the hash even though no file content changed.
	m.Installer.Version = "1.0.1"

	after, err := h.ComputeFreezeHash(m)
	require.NoError(t, err)

	assert.NotEqual(t, before, after)
}

func TestHasher_ComputeFreezeHash_MissingInput(t *testing.T) {
	t.Parallel()

	m := freezeFixture(t)
	m.Freeze.Entry = "gone.py"

	_, err := fs.NewHasher().ComputeFreezeHash(m)
	require.ErrorContains(t, err, domain.ErrPathStatFailed.Error())
}

func TestHasher_ComputeTreeHash(t *testing.T) {
	t.Parallel()

	h := fs.NewHasher()

	dirA := t.TempDir()
	writeFile(t, dirA, "a.txt", "alpha")
	writeFile(t, dirA, "sub/b.txt", "beta")

	dirB := t.TempDir()
	writeFile(t, dirB, "a.txt", "alpha")
	writeFile(t, dirB, "sub/b.txt", "beta")

	hashA, err := h.ComputeTreeHash(dirA)
	require.NoError(t, err)
	hashB, err := h.ComputeTreeHash(dirB)
	require.NoError(t, err)

	// Identical trees at different locations hash identically.
	assert.Equal(t, hashA, hashB)

	writeFile(t, dirB, "sub/b.txt", "gamma")
	hashB, err = h.ComputeTreeHash(dirB)
	require.NoError(t, err)
	assert.NotEqual(t, hashA, hashB)
}

func TestHasher_ComputeTreeHash_RenameChangesHash(t *testing.T) {
	t.Parallel()

	h := fs.NewHasher()

	dir := t.TempDir()
	writeFile(t, dir, "a.txt", "same")

	before, err := h.ComputeTreeHash(dir)
	require.NoError(t, err)

	require.NoError(t, os.Rename(filepath.Join(dir, "a.txt"), filepath.Join(dir, "b.txt")))

	after, err := h.ComputeTreeHash(dir)
	require.NoError(t, err)
	assert.NotEqual(t, before, after)
}
