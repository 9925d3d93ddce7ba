package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LocalConfigPath is the project-relative config location.
const LocalConfigPath = "configs/wumpus.yaml"

// LoadWumpus loads the simulation configuration.
// Search order: customPath -> ~/.wumpus/configs/wumpus.yaml -> ./configs/wumpus.yaml -> embedded default
func LoadWumpus(customPath string) (WumpusConfig, error) {
	// Try custom path first
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return cfg, err
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("wumpus.yaml"); userCfgPath != "" {
		if cfg, err := loadFile(userCfgPath); err == nil && cfg.Validate() == nil {
			return cfg, nil
		}
	}

	// Try local configs directory
	if cfg, err := loadFile(LocalConfigPath); err == nil && cfg.Validate() == nil {
		return cfg, nil
	}

	// Use embedded default YAML
	cfg, err := loadEmbedded()
	if err != nil {
		return DefaultWumpusConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

func loadEmbedded() (WumpusConfig, error) {
	cfg := DefaultWumpusConfig()
	if err := yaml.Unmarshal(defaultWumpusYAML, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// loadFile reads a YAML file over the built-in defaults, so partial files
// only override the keys they set.
func loadFile(path string) (WumpusConfig, error) {
	cfg := DefaultWumpusConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".wumpus", "configs", filename)
}
