// Package config provides the configuration loader for frost.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"go.frostpack.dev/frost/internal/core/domain"
	"go.frostpack.dev/frost/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load reads frost.yaml starting from cwd and returns the validated manifest.
func (l *Loader) Load(cwd string) (*domain.Manifest, error) {
	root, err := l.DiscoverRoot(cwd)
	if err != nil {
		return nil, err
	}

	configPath := filepath.Join(root, domain.FrostFileName)
	// #nosec G304 -- configPath is discovered from the working directory
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", configPath)
	}

	var file Frostfile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", configPath)
	}

	manifest, err := l.buildManifest(&file, root, configPath)
	if err != nil {
		return nil, err
	}

	if err := manifest.Freeze.Validate(); err != nil {
		return nil, err
	}
	if err := manifest.Installer.Validate(); err != nil {
		return nil, err
	}

	return manifest, nil
}

// DiscoverRoot walks up from cwd to find the directory containing frost.yaml.
func (l *Loader) DiscoverRoot(cwd string) (string, error) {
	currentDir, err := filepath.Abs(cwd)
	if err != nil {
		return "", zerr.Wrap(err, "failed to resolve working directory")
	}

	for {
		candidate := filepath.Join(currentDir, domain.FrostFileName)
		if _, err := os.Stat(candidate); err == nil {
			return currentDir, nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached filesystem root
			break
		}
		currentDir = parentDir
	}

	return "", zerr.With(domain.ErrConfigNotFound, "cwd", cwd)
}

func (l *Loader) buildManifest(file *Frostfile, root, configPath string) (*domain.Manifest, error) {
	if file.Freeze == nil {
		return nil, zerr.With(domain.ErrConfigParseFailed, "missing_section", "freeze")
	}
	if file.Installer == nil {
		return nil, zerr.With(domain.ErrConfigParseFailed, "missing_section", "installer")
	}

	freeze := buildFreeze(file.Freeze)
	manifest := &domain.Manifest{
		Root:      resolveRoot(configPath, file.Root),
		Freeze:    freeze,
		Installer: buildInstaller(file.Installer, freeze.Output),
	}

	if file.Version != "" && file.Version != "1" {
		l.Logger.Warn(fmt.Sprintf("unknown config version %q, parsing as version 1", file.Version))
	}

	return manifest, nil
}

func buildFreeze(dto *FreezeDTO) domain.FreezeManifest {
	m := domain.FreezeManifest{
		Entry:         dto.Entry,
		Output:        dto.Output,
		Icon:          dto.Icon,
		HiddenImports: dto.HiddenImports,
		Excludes:      dto.Excludes,
		// Packaged desktop applications default to windowed mode and
		// uncompressed binaries.
		Windowed:   true,
		NoCompress: true,
	}
	if dto.Windowed != nil {
		m.Windowed = *dto.Windowed
	}
	if dto.NoCompress != nil {
		m.NoCompress = *dto.NoCompress
	}
	for _, a := range dto.Assets {
		m.Assets = append(m.Assets, domain.AssetRule{Source: a.Source, Dest: a.Dest})
	}
	return m
}

func buildInstaller(dto *InstallerDTO, bundleName string) domain.InstallerManifest {
	m := domain.InstallerManifest{
		AppID:              dto.AppID,
		AppName:            dto.AppName,
		Version:            dto.Version,
		Publisher:          dto.Publisher,
		InstallDirName:     dto.InstallDirName,
		OutputName:         dto.OutputName,
		Icon:               dto.Icon,
		Compression:        domain.Compression(dto.Compression),
		AutostartArg:       dto.AutostartArg,
		LaunchAfterInstall: dto.LaunchAfterInstall,
		CleanupFiles:       dto.CleanupFiles,
		DesktopIcon:        buildTask(dto.DesktopIcon, false),
		Autostart:          buildTask(dto.Autostart, false),
	}

	if m.Compression == "" {
		m.Compression = domain.CompressionMax
	}
	if m.AutostartArg == "" {
		m.AutostartArg = domain.DefaultAutostartArg
	}
	if m.CleanupFiles == nil {
		m.CleanupFiles = []string{domain.DefaultCleanupFile}
	}
	// The archive name follows the bundle name, not the display name,
	// which may contain spaces.
	if m.OutputName == "" && bundleName != "" {
		m.OutputName = bundleName + "-setup.zip"
	}

	for _, lang := range dto.Languages {
		m.Languages = append(m.Languages, domain.Language(lang))
	}
	if m.Languages == nil {
		m.Languages = []domain.Language{domain.LangEnglish, domain.LangRussian}
	}

	return m
}

func buildTask(dto *TaskDTO, defaultOffered bool) domain.TaskOption {
	if dto == nil {
		return domain.TaskOption{Offered: defaultOffered}
	}
	task := domain.TaskOption{
		Offered: true,
		Default: dto.Default,
	}
	if dto.Offered != nil {
		task.Offered = *dto.Offered
	}
	for lang, text := range dto.Description {
		if task.Description == nil {
			task.Description = make(map[domain.Language]string, len(dto.Description))
		}
		task.Description[domain.Language(lang)] = text
	}
	return task
}

// resolveRoot resolves the project root relative to the config file location.
func resolveRoot(configPath, root string) string {
	base := filepath.Dir(configPath)
	if root == "" {
		return base
	}
	if filepath.IsAbs(root) {
		return root
	}
	return filepath.Join(base, root)
}
