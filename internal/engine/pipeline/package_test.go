package pipeline_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.frostpack.dev/frost/internal/adapters/archive"
	"go.frostpack.dev/frost/internal/core/domain"
)

func TestPipeline_Package(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)

	_, err := env.pipeline.Freeze(context.Background(), env.manifest, false)
	require.NoError(t, err)

	res, err := env.pipeline.Package(context.Background(), env.manifest)
	require.NoError(t, err)
	assert.Equal(t, env.archivePath(), res.ArchivePath)
	assert.Equal(t, "VoiceAssistantPro", res.Meta.Name)
	assert.FileExists(t, res.ArchivePath)

	// The produced archive carries the installer identity.
	embedded, err := archive.NewArchiver().ReadManifest(res.ArchivePath)
	require.NoError(t, err)
	assert.Equal(t, env.manifest.Installer.AppID, embedded.AppID)
	assert.Equal(t, env.manifest.Installer.AppName, embedded.AppName)
}

func TestPipeline_Package_WithoutBundle(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)

	_, err := env.pipeline.Package(context.Background(), env.manifest)
	require.ErrorContains(t, err, domain.ErrBundleNotFound.Error())
}

func TestPipeline_Package_MetaMissing(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)

	_, err := env.pipeline.Freeze(context.Background(), env.manifest, false)
	require.NoError(t, err)

	require.NoError(t, os.Remove(filepath.Join(env.bundleDir(), domain.BundleMetaName)))

	_, err = env.pipeline.Package(context.Background(), env.manifest)
	require.ErrorContains(t, err, domain.ErrBundleMetaMissing.Error())
}

func TestPipeline_Package_NameMismatch(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)

	_, err := env.pipeline.Freeze(context.Background(), env.manifest, false)
	require.NoError(t, err)

	// Tamper with the recorded bundle name.
	metaPath := filepath.Join(env.bundleDir(), domain.BundleMetaName)
	require.NoError(t, os.WriteFile(metaPath, []byte(`{"name":"OtherApp","entry":"app.py"}`), 0o644))

	_, err = env.pipeline.Package(context.Background(), env.manifest)
	require.ErrorContains(t, err, domain.ErrBundleNameMismatch.Error())
}

func TestPipeline_Build(t *testing.T) {
	t.Parallel()

	env := newTestEnv(t)

	res, err := env.pipeline.Build(context.Background(), env.manifest, false)
	require.NoError(t, err)
	assert.FileExists(t, res.ArchivePath)

	// A repeated build answers the freeze from cache but still rebuilds
	// the archive.
	require.NoError(t, os.Remove(res.ArchivePath))
	res, err = env.pipeline.Build(context.Background(), env.manifest, false)
	require.NoError(t, err)
	assert.FileExists(t, res.ArchivePath)
}
