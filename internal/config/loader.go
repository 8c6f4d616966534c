package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// configNames are tried in each search directory, in order.
var configNames = []string{"brickduel.yaml", "brickduel.yml", "brickduel.toml"}

// Load loads the Brick Duel configuration.
// Search order: customPath -> ~/.brickduel/configs/brickduel.{yaml,toml} ->
// ./configs/brickduel.{yaml,toml} -> embedded default.
// Files are decoded over the defaults, so a partial file only overrides the
// keys it names. Only an explicit customPath can make Load fail.
func Load(customPath string) (Config, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Config{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := Parse(data, customPath)
		if err != nil {
			return Config{}, err
		}
		if err := cfg.Validate(); err != nil {
			return Config{}, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	for _, dir := range searchDirs() {
		for _, name := range configNames {
			path := filepath.Join(dir, name)
			data, err := os.ReadFile(path)
			if err != nil {
				continue
			}
			if cfg, err := Parse(data, path); err == nil && cfg.Validate() == nil {
				return cfg, nil
			}
		}
	}

	cfg, err := Parse(defaultYAML, "brickduel.yaml")
	if err != nil {
		return DefaultConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes data over DefaultConfig. The format is chosen by the
// extension of name: .toml is TOML, anything else YAML.
func Parse(data []byte, name string) (Config, error) {
	cfg := DefaultConfig()
	if strings.EqualFold(filepath.Ext(name), ".toml") {
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: failed to parse %s: %w", name, err)
		}
		return cfg, nil
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: failed to parse %s: %w", name, err)
	}
	return cfg, nil
}

// searchDirs returns the user and local config directories.
func searchDirs() []string {
	var dirs []string
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, filepath.Join(home, ".brickduel", "configs"))
	}
	return append(dirs, "configs")
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("config: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}
