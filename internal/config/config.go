package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileConfig is the on-disk YAML configuration shape for Ferret. Pointer
// fields distinguish "not set" from zero values so CLI flags can take
// precedence only when the file actually sets something.
type FileConfig struct {
	Exclude       *string `yaml:"exclude"`        // comma-separated globs
	ExtraPatterns *string `yaml:"extra_patterns"` // appended to the configs catalog
	WindowMinutes *int    `yaml:"window_minutes"` // default window for recent
	NoColor       *bool   `yaml:"no_color"`
	Audit         *bool   `yaml:"audit"`
	MaxDepth      *int    `yaml:"max_depth"`
}

// LoadFile reads a YAML config file from the provided path.
func LoadFile(path string) (FileConfig, error) {
	var cfg FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadLocal searches for a config file in the given directory. It supports
// .ferret.yml/.yaml and ferret.yml/.yaml.
func LoadLocal(dir string) (FileConfig, error) {
	var cfg FileConfig
	for _, name := range []string{".ferret.yml", ".ferret.yaml", "ferret.yml", "ferret.yaml"} {
		p := filepath.Join(dir, name)
		if _, err := os.Stat(p); err == nil {
			return LoadFile(p)
		}
	}
	return cfg, errors.New("no local config")
}

// LoadGlobal loads the global config file from XDG base directory or ~/.config.
func LoadGlobal() (FileConfig, error) {
	var cfg FileConfig
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, _ := os.UserHomeDir()
		if home != "" {
			base = filepath.Join(home, ".config")
		}
	}
	if base == "" {
		return cfg, errors.New("no config dir")
	}
	p := filepath.Join(base, "ferret", "config.yml")
	if _, err := os.Stat(p); err == nil {
		return LoadFile(p)
	}
	return cfg, errors.New("no global config")
}
