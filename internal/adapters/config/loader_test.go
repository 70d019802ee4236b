package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.frostpack.dev/frost/internal/adapters/config"
	"go.frostpack.dev/frost/internal/core/domain"
	"go.frostpack.dev/frost/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

const fullConfig = `version: "1"
freeze:
  entry: app.py
  output: VoiceAssistantPro
  icon: assets/icon.ico
  windowed: true
  noCompress: true
  assets:
    - source: assets
      dest: assets
    - source: config.defaults.json
  hiddenImports:
    - pyaudio
    - win32com.client
  excludes:
    - matplotlib
    - tkinter
installer:
  appId: d4e8b2a0-1c3f-4b5e-9a7d-2f6c8e0b4a1d
  appName: Voice Assistant Pro
  version: 2.0.0
  publisher: Example Labs
  installDir: VoiceAssistantPro
  outputName: VoiceAssistantPro-setup.zip
  compression: none
  languages: [en, ru]
  desktopIcon:
    offered: true
    default: true
  autostart:
    offered: true
    default: false
  launchAfterInstall: true
  cleanupFiles:
    - config.json
`

const minimalConfig = `freeze:
  entry: app.py
  output: App
installer:
  appId: d4e8b2a0-1c3f-4b5e-9a7d-2f6c8e0b4a1d
  appName: My App
  version: 1.0.0
`

func newLoader(t *testing.T) *config.Loader {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Warn(gomock.Any()).AnyTimes()
	return config.NewLoader(log)
}

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	err := os.WriteFile(filepath.Join(dir, domain.FrostFileName), []byte(content), 0o644)
	require.NoError(t, err)
}

func TestLoader_Load_FullConfig(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeConfig(t, dir, fullConfig)

	m, err := newLoader(t).Load(dir)
	require.NoError(t, err)

	assert.Equal(t, dir, m.Root)
	assert.Equal(t, "app.py", m.Freeze.Entry)
	assert.Equal(t, "VoiceAssistantPro", m.Freeze.Output)
	assert.True(t, m.Freeze.Windowed)
	assert.True(t, m.Freeze.NoCompress)
	assert.Len(t, m.Freeze.Assets, 2)
	assert.Equal(t, domain.AssetRule{Source: "assets", Dest: "assets"}, m.Freeze.Assets[0])
	assert.Equal(t, []string{"pyaudio", "win32com.client"}, m.Freeze.HiddenImports)

	assert.Equal(t, "Voice Assistant Pro", m.Installer.AppName)
	assert.Equal(t, domain.CompressionNone, m.Installer.Compression)
	assert.Equal(t, []domain.Language{domain.LangEnglish, domain.LangRussian}, m.Installer.Languages)
	assert.True(t, m.Installer.DesktopIcon.Offered)
	assert.True(t, m.Installer.DesktopIcon.Default)
	assert.True(t, m.Installer.Autostart.Offered)
	assert.False(t, m.Installer.Autostart.Default)
	assert.True(t, m.Installer.LaunchAfterInstall)
	assert.Equal(t, []string{"config.json"}, m.Installer.CleanupFiles)
}

func TestLoader_Load_Defaults(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeConfig(t, dir, minimalConfig)

	m, err := newLoader(t).Load(dir)
	require.NoError(t, err)

	// Desktop application defaults.
	assert.True(t, m.Freeze.Windowed)
	assert.True(t, m.Freeze.NoCompress)

	assert.Equal(t, domain.CompressionMax, m.Installer.Compression)
	assert.Equal(t, domain.DefaultAutostartArg, m.Installer.AutostartArg)
	assert.Equal(t, []string{domain.DefaultCleanupFile}, m.Installer.CleanupFiles)

	// The archive name derives from the bundle name, not the app name.
	assert.Equal(t, "App-setup.zip", m.Installer.OutputName)
	assert.Equal(t, []domain.Language{domain.LangEnglish, domain.LangRussian}, m.Installer.Languages)

	// Tasks not declared in the config are not offered.
	assert.False(t, m.Installer.DesktopIcon.Offered)
	assert.False(t, m.Installer.Autostart.Offered)
}

func TestLoader_Load_DiscoversRootFromSubdirectory(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeConfig(t, dir, minimalConfig)

	sub := filepath.Join(dir, "src", "deep")
	require.NoError(t, os.MkdirAll(sub, 0o750))

	m, err := newLoader(t).Load(sub)
	require.NoError(t, err)
	assert.Equal(t, dir, m.Root)
}

func TestLoader_Load_NotFound(t *testing.T) {
	t.Parallel()

	_, err := newLoader(t).Load(t.TempDir())
	require.ErrorContains(t, err, domain.ErrConfigNotFound.Error())
}

func TestLoader_Load_InvalidYAML(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeConfig(t, dir, "freeze: [not: valid")

	_, err := newLoader(t).Load(dir)
	require.ErrorContains(t, err, domain.ErrConfigParseFailed.Error())
}

func TestLoader_Load_MissingSections(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
	}{
		{name: "missing freeze", content: "installer:\n  appName: App\n"},
		{name: "missing installer", content: "freeze:\n  entry: app.py\n  output: App\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			dir := t.TempDir()
			writeConfig(t, dir, tt.content)

			_, err := newLoader(t).Load(dir)
			require.ErrorContains(t, err, domain.ErrConfigParseFailed.Error())
		})
	}
}

func TestLoader_Load_ValidationFailure(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeConfig(t, dir, `freeze:
  entry: app.py
  output: App
installer:
  appId: not-a-guid
  appName: App
  version: 1.0.0
`)

	_, err := newLoader(t).Load(dir)
	require.ErrorContains(t, err, domain.ErrInvalidAppID.Error())
}

func TestLoader_Load_UnknownVersionWarns(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Warn(gomock.Any()).Times(1)

	dir := t.TempDir()
	writeConfig(t, dir, "version: \"9\"\n"+minimalConfig)

	_, err := config.NewLoader(log).Load(dir)
	require.NoError(t, err)
}
