package pipeline_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.frostpack.dev/frost/internal/adapters/archive"
	"go.frostpack.dev/frost/internal/adapters/fs"
	"go.frostpack.dev/frost/internal/adapters/linear"
	"go.frostpack.dev/frost/internal/adapters/store"
	"go.frostpack.dev/frost/internal/adapters/system"
	"go.frostpack.dev/frost/internal/core/domain"
	"go.frostpack.dev/frost/internal/core/ports/mocks"
	"go.frostpack.dev/frost/internal/engine/pipeline"
	"go.uber.org/mock/gomock"
)

// testEnv wires a pipeline against real adapters rooted in temp dirs, so
// the tests exercise actual staging, archiving and system entries.
type testEnv struct {
	pipeline *pipeline.Pipeline

	root         string
	manifest     *domain.Manifest
	installRoot  string
	appsDir      string
	desktopDir   string
	autostartDir string
	autostart    *system.Autostart
	shortcuts    *system.Shortcuts
}

func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	root := t.TempDir()
	writeFile(t, root, "app.py", "print('hello')")
	writeFile(t, root, "assets/icon.ico", "icon-bytes")
	writeFile(t, root, "assets/sounds/beep.wav", "beep")

	env := &testEnv{
		root:         root,
		installRoot:  t.TempDir(),
		appsDir:      t.TempDir(),
		desktopDir:   t.TempDir(),
		autostartDir: t.TempDir(),
	}
	env.autostart = system.NewAutostartAt(env.autostartDir)
	env.shortcuts = system.NewShortcutsAt(env.appsDir, env.desktopDir)

	env.manifest = &domain.Manifest{
		Root: root,
		Freeze: domain.FreezeManifest{
			Entry:    "app.py",
			Output:   "VoiceAssistantPro",
			Icon:     "assets/icon.ico",
			Windowed: true,
			Assets: []domain.AssetRule{
				{Source: "assets", Dest: "assets"},
			},
		},
		Installer: domain.InstallerManifest{
			AppID:        "d4e8b2a0-1c3f-4b5e-9a7d-2f6c8e0b4a1d",
			AppName:      "Voice Assistant Pro",
			Version:      "2.0.0",
			Publisher:    "Example Labs",
			Icon:         "assets/icon.ico",
			OutputName:   "VoiceAssistantPro-setup.zip",
			Compression:  domain.CompressionMax,
			Languages:    []domain.Language{domain.LangEnglish, domain.LangRussian},
			DesktopIcon:  domain.TaskOption{Offered: true, Default: true},
			Autostart:    domain.TaskOption{Offered: true},
			CleanupFiles: []string{"config.json"},
		},
	}

	ctrl := gomock.NewController(t)

	locator := mocks.NewMockInstallLocator(ctrl)
	locator.EXPECT().InstallDirFor(gomock.Any()).DoAndReturn(func(dirName string) (string, error) {
		return filepath.Join(env.installRoot, dirName), nil
	}).AnyTimes()

	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any()).AnyTimes()
	log.EXPECT().Warn(gomock.Any()).AnyTimes()
	log.EXPECT().Error(gomock.Any()).AnyTimes()

	s, err := store.NewStore()
	require.NoError(t, err)

	env.pipeline = pipeline.New(
		fs.NewHasher(),
		s,
		archive.NewArchiver(),
		env.shortcuts,
		env.autostart,
		locator,
		linear.NewRenderer(&bytes.Buffer{}, &bytes.Buffer{}),
		log,
	)
	return env
}

// installDir is where an install of the fixture manifest lands.
func (e *testEnv) installDir() string {
	return filepath.Join(e.installRoot, e.manifest.Installer.InstallDir())
}

func (e *testEnv) bundleDir() string {
	return filepath.Join(e.root, domain.DistDirName, e.manifest.Freeze.Output)
}

func (e *testEnv) archivePath() string {
	return filepath.Join(e.root, domain.DistDirName, e.manifest.Installer.OutputName)
}

func boolPtr(b bool) *bool {
	return &b
}
