package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load reads the platform configuration. Values absent from the file
// keep their built-in defaults, so partial documents are fine.
// Search order: customPath -> ~/.trio/config.yaml -> ./trio.yaml -> embedded default
func Load(customPath string) (Config, error) {
	cfg := DefaultConfig()

	// A custom path must exist and parse; the fallback chain is only
	// for the implicit locations.
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := UserConfigPath(); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
		}
	}

	// Try working directory
	if data, err := os.ReadFile("trio.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return DefaultConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// ResolvePath returns the config file Load would read, following the same
// search order, or empty when only the embedded default applies. Useful
// for watching the effective file for changes.
func ResolvePath(customPath string) string {
	if customPath != "" {
		return customPath
	}
	if userCfgPath := UserConfigPath(); userCfgPath != "" {
		if _, err := os.Stat(userCfgPath); err == nil {
			return userCfgPath
		}
	}
	if _, err := os.Stat("trio.yaml"); err == nil {
		return "trio.yaml"
	}
	return ""
}

// UserConfigPath returns the path of the per-user config file, or empty
// if the home directory is unavailable.
func UserConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".trio", "config.yaml")
}
