package archive_test

import (
	"archive/zip"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.frostpack.dev/frost/internal/adapters/archive"
	"go.frostpack.dev/frost/internal/core/domain"
)

func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func testManifest(compression domain.Compression) *domain.InstallerManifest {
	return &domain.InstallerManifest{
		AppID:       "d4e8b2a0-1c3f-4b5e-9a7d-2f6c8e0b4a1d",
		AppName:     "Voice Assistant Pro",
		Version:     "2.0.0",
		Publisher:   "Example Labs",
		OutputName:  "VoiceAssistantPro-setup.zip",
		Compression: compression,
		Languages:   []domain.Language{domain.LangEnglish, domain.LangRussian},
	}
}

func bundleFixture(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	writeFile(t, dir, "VoiceAssistantPro", "binary-payload")
	writeFile(t, dir, "assets/icon.ico", "icon-bytes")
	writeFile(t, dir, "assets/sounds/beep.wav", "beep")
	return dir
}

func TestArchiver_RoundTrip(t *testing.T) {
	t.Parallel()

	bundle := bundleFixture(t)
	archivePath := filepath.Join(t.TempDir(), "dist", "setup.zip")

	a := archive.NewArchiver()
	require.NoError(t, a.Create(context.Background(), bundle, archivePath, testManifest(domain.CompressionMax)))

	m, err := a.ReadManifest(archivePath)
	require.NoError(t, err)
	assert.Equal(t, "Voice Assistant Pro", m.AppName)
	assert.Equal(t, "d4e8b2a0-1c3f-4b5e-9a7d-2f6c8e0b4a1d", m.AppID)
	assert.Equal(t, domain.CompressionMax, m.Compression)

	dest := t.TempDir()
	extracted, err := a.Extract(context.Background(), archivePath, dest)
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{
		"VoiceAssistantPro",
		filepath.Join("assets", "icon.ico"),
		filepath.Join("assets", "sounds", "beep.wav"),
	}, extracted)

	data, err := os.ReadFile(filepath.Join(dest, "assets", "sounds", "beep.wav"))
	require.NoError(t, err)
	assert.Equal(t, "beep", string(data))

	// The embedded manifest stays inside the archive.
	assert.NoFileExists(t, filepath.Join(dest, domain.ArchiveManifestName))
}

func TestArchiver_Create_CompressionMethods(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		compression domain.Compression
		wantMethod  uint16
	}{
		{name: "max uses deflate", compression: domain.CompressionMax, wantMethod: zip.Deflate},
		{name: "none stores entries", compression: domain.CompressionNone, wantMethod: zip.Store},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			bundle := bundleFixture(t)
			archivePath := filepath.Join(t.TempDir(), "setup.zip")

			a := archive.NewArchiver()
			require.NoError(t, a.Create(context.Background(), bundle, archivePath, testManifest(tt.compression)))

			zr, err := zip.OpenReader(archivePath)
			require.NoError(t, err)
			defer zr.Close()

			require.NotEmpty(t, zr.File)
			for _, f := range zr.File {
				assert.Equal(t, tt.wantMethod, f.Method, f.Name)
			}
		})
	}
}

func TestArchiver_Extract_PreservesExecutableBit(t *testing.T) {
	t.Parallel()
	if os.PathSeparator == '\\' {
		t.Skip("no executable bit on windows")
	}

	bundle := t.TempDir()
	exe := filepath.Join(bundle, "run")
	require.NoError(t, os.WriteFile(exe, []byte("#!/bin/sh\n"), 0o755))

	archivePath := filepath.Join(t.TempDir(), "setup.zip")
	a := archive.NewArchiver()
	require.NoError(t, a.Create(context.Background(), bundle, archivePath, testManifest(domain.CompressionMax)))

	dest := t.TempDir()
	_, err := a.Extract(context.Background(), archivePath, dest)
	require.NoError(t, err)

	info, err := os.Stat(filepath.Join(dest, "run"))
	require.NoError(t, err)
	assert.NotZero(t, info.Mode()&0o111)
}

func TestArchiver_Extract_RejectsEscapingEntries(t *testing.T) {
	t.Parallel()

	// Hand-craft an archive with a parent-escaping entry name.
	archivePath := filepath.Join(t.TempDir(), "evil.zip")
	out, err := os.Create(archivePath)
	require.NoError(t, err)

	zw := zip.NewWriter(out)
	w, err := zw.Create("../evil.txt")
	require.NoError(t, err)
	_, err = w.Write([]byte("payload"))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	require.NoError(t, out.Close())

	dest := t.TempDir()
	_, err = archive.NewArchiver().Extract(context.Background(), archivePath, dest)
	require.ErrorContains(t, err, domain.ErrArchiveEntryEscapes.Error())

	assert.NoFileExists(t, filepath.Join(filepath.Dir(dest), "evil.txt"))
}

func TestArchiver_ReadManifest_Missing(t *testing.T) {
	t.Parallel()

	// A plain zip with no embedded manifest entry.
	archivePath := filepath.Join(t.TempDir(), "plain.zip")
	out, err := os.Create(archivePath)
	require.NoError(t, err)

	zw := zip.NewWriter(out)
	w, err := zw.Create("readme.txt")
	require.NoError(t, err)
	_, err = w.Write([]byte("hello"))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	require.NoError(t, out.Close())

	_, err = archive.NewArchiver().ReadManifest(archivePath)
	require.ErrorContains(t, err, domain.ErrArchiveManifestMissing.Error())
}

func TestArchiver_MissingArchive(t *testing.T) {
	t.Parallel()

	missing := filepath.Join(t.TempDir(), "absent.zip")
	a := archive.NewArchiver()

	_, err := a.ReadManifest(missing)
	require.ErrorContains(t, err, domain.ErrInstallerNotFound.Error())

	_, err = a.Extract(context.Background(), missing, t.TempDir())
	require.ErrorContains(t, err, domain.ErrInstallerNotFound.Error())
}
