package config

// Frostfile represents the structure of the frost.yaml configuration file.
type Frostfile struct {
	Version   string        `yaml:"version"`
	Root      string        `yaml:"root"`
	Freeze    *FreezeDTO    `yaml:"freeze"`
	Installer *InstallerDTO `yaml:"installer"`
}

// FreezeDTO represents the freeze manifest section.
type FreezeDTO struct {
	Entry         string     `yaml:"entry"`
	Output        string     `yaml:"output"`
	Icon          string     `yaml:"icon"`
	Windowed      *bool      `yaml:"windowed"`
	NoCompress    *bool      `yaml:"noCompress"`
	Assets        []AssetDTO `yaml:"assets"`
	HiddenImports []string   `yaml:"hiddenImports"`
	Excludes      []string   `yaml:"excludes"`
}

// AssetDTO represents one asset copy rule.
type AssetDTO struct {
	Source string `yaml:"source"`
	Dest   string `yaml:"dest"`
}

// InstallerDTO represents the installer manifest section.
type InstallerDTO struct {
	AppID              string   `yaml:"appId"`
	AppName            string   `yaml:"appName"`
	Version            string   `yaml:"version"`
	Publisher          string   `yaml:"publisher"`
	InstallDirName     string   `yaml:"installDir"`
	OutputName         string   `yaml:"outputName"`
	Icon               string   `yaml:"icon"`
	Compression        string   `yaml:"compression"`
	Languages          []string `yaml:"languages"`
	DesktopIcon        *TaskDTO `yaml:"desktopIcon"`
	Autostart          *TaskDTO `yaml:"autostart"`
	AutostartArg       string   `yaml:"autostartArg"`
	LaunchAfterInstall bool     `yaml:"launchAfterInstall"`
	CleanupFiles       []string `yaml:"cleanupFiles"`
}

// TaskDTO represents an optional install-time task.
type TaskDTO struct {
	Offered     *bool             `yaml:"offered"`
	Default     bool              `yaml:"default"`
	Description map[string]string `yaml:"description"`
}
