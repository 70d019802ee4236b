package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.frostpack.dev/frost/internal/core/domain"
)

func validFreeze() domain.FreezeManifest {
	return domain.FreezeManifest{
		Entry:      "app.py",
		Output:     "VoiceAssistantPro",
		Windowed:   true,
		NoCompress: true,
		Assets: []domain.AssetRule{
			{Source: "assets", Dest: "assets"},
			{Source: "config.defaults.json", Dest: ""},
		},
		HiddenImports: []string{"pyaudio", "win32com.client"},
		Excludes:      []string{"matplotlib", "tkinter"},
	}
}

func validInstaller() domain.InstallerManifest {
	return domain.InstallerManifest{
		AppID:       "d4e8b2a0-1c3f-4b5e-9a7d-2f6c8e0b4a1d",
		AppName:     "Voice Assistant Pro",
		Version:     "2.0.0",
		Publisher:   "Example Labs",
		OutputName:  "VoiceAssistantPro-setup.zip",
		Compression: domain.CompressionMax,
		Languages:   []domain.Language{domain.LangEnglish, domain.LangRussian},
		DesktopIcon: domain.TaskOption{Offered: true, Default: true},
		Autostart:   domain.TaskOption{Offered: true},
	}
}

func TestFreezeManifest_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*domain.FreezeManifest)
		wantErr error
	}{
		{
			name:   "valid manifest",
			mutate: func(*domain.FreezeManifest) {},
		},
		{
			name:    "missing entry",
			mutate:  func(m *domain.FreezeManifest) { m.Entry = "" },
			wantErr: domain.ErrMissingEntryPoint,
		},
		{
			name:    "missing output",
			mutate:  func(m *domain.FreezeManifest) { m.Output = "" },
			wantErr: domain.ErrMissingOutputName,
		},
		{
			name:    "empty asset source",
			mutate:  func(m *domain.FreezeManifest) { m.Assets[0].Source = "" },
			wantErr: domain.ErrMissingAssetSource,
		},
		{
			name: "duplicate asset rule",
			mutate: func(m *domain.FreezeManifest) {
				m.Assets = append(m.Assets, domain.AssetRule{Source: "assets", Dest: "assets"})
			},
			wantErr: domain.ErrDuplicateAssetRule,
		},
		{
			name: "same source different dest is allowed",
			mutate: func(m *domain.FreezeManifest) {
				m.Assets = append(m.Assets, domain.AssetRule{Source: "assets", Dest: "extra"})
			},
		},
		{
			name:    "invalid hidden import",
			mutate:  func(m *domain.FreezeManifest) { m.HiddenImports = []string{"not a module!"} },
			wantErr: domain.ErrInvalidModuleName,
		},
		{
			name:    "invalid exclude",
			mutate:  func(m *domain.FreezeManifest) { m.Excludes = []string{"1badname"} },
			wantErr: domain.ErrInvalidModuleName,
		},
		{
			name: "module both hidden and excluded",
			mutate: func(m *domain.FreezeManifest) {
				m.HiddenImports = []string{"numpy"}
				m.Excludes = []string{"numpy"}
			},
			wantErr: domain.ErrModuleBothHiddenAndExcluded,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			m := validFreeze()
			tt.mutate(&m)

			err := m.Validate()
			if tt.wantErr != nil {
				require.ErrorContains(t, err, tt.wantErr.Error())
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestInstallerManifest_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*domain.InstallerManifest)
		wantErr error
	}{
		{
			name:   "valid manifest",
			mutate: func(*domain.InstallerManifest) {},
		},
		{
			name:    "app id not a guid",
			mutate:  func(m *domain.InstallerManifest) { m.AppID = "not-a-guid" },
			wantErr: domain.ErrInvalidAppID,
		},
		{
			name:    "missing app name",
			mutate:  func(m *domain.InstallerManifest) { m.AppName = "" },
			wantErr: domain.ErrMissingAppName,
		},
		{
			name:    "missing version",
			mutate:  func(m *domain.InstallerManifest) { m.Version = "" },
			wantErr: domain.ErrMissingVersion,
		},
		{
			name:    "unknown compression",
			mutate:  func(m *domain.InstallerManifest) { m.Compression = "ultra" },
			wantErr: domain.ErrInvalidCompression,
		},
		{
			name:    "no languages",
			mutate:  func(m *domain.InstallerManifest) { m.Languages = nil },
			wantErr: domain.ErrNoLanguages,
		},
		{
			name:    "unsupported language",
			mutate:  func(m *domain.InstallerManifest) { m.Languages = []domain.Language{"de"} },
			wantErr: domain.ErrUnsupportedLanguage,
		},
		{
			name:    "cleanup path with parent traversal",
			mutate:  func(m *domain.InstallerManifest) { m.CleanupFiles = []string{"../outside.json"} },
			wantErr: domain.ErrCleanupPathEscapes,
		},
		{
			name:    "absolute cleanup path",
			mutate:  func(m *domain.InstallerManifest) { m.CleanupFiles = []string{"/etc/config.json"} },
			wantErr: domain.ErrCleanupPathEscapes,
		},
		{
			name:   "relative cleanup path is allowed",
			mutate: func(m *domain.InstallerManifest) { m.CleanupFiles = []string{"config.json"} },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			m := validInstaller()
			tt.mutate(&m)

			err := m.Validate()
			if tt.wantErr != nil {
				require.ErrorContains(t, err, tt.wantErr.Error())
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestValidModuleName(t *testing.T) {
	t.Parallel()

	valid := []string{"os", "win32com.client", "_private", "pkg.sub.mod", "Name2"}
	for _, name := range valid {
		assert.True(t, domain.ValidModuleName(name), name)
	}

	invalid := []string{"", "2start", "has space", "trailing.", "a..b", "dash-ed"}
	for _, name := range invalid {
		assert.False(t, domain.ValidModuleName(name), name)
	}
}

func TestInstallerManifest_InstallDir(t *testing.T) {
	t.Parallel()

	m := validInstaller()
	assert.Equal(t, "Voice Assistant Pro", m.InstallDir())

	m.InstallDirName = "VoiceAssistantPro"
	assert.Equal(t, "VoiceAssistantPro", m.InstallDir())
}

func TestInstallerManifest_HasLanguage(t *testing.T) {
	t.Parallel()

	m := validInstaller()
	assert.True(t, m.HasLanguage(domain.LangEnglish))
	assert.True(t, m.HasLanguage(domain.LangRussian))
	assert.False(t, m.HasLanguage("de"))
}
