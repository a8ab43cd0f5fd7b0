package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const fileName = "planetwars.yaml"

// Source names where a configuration came from.
const (
	SourceEmbedded  = "embedded"
	SourceHardcoded = "hardcoded"
)

// Load loads the Planet Wars rules and reports where they came from.
// Search order: customPath -> ~/.planetwars/configs/planetwars.yaml ->
// ./configs/planetwars.yaml -> embedded default -> hardcoded default.
//
// A custom path must exist and be valid. Broken files on the search path
// are skipped.
func Load(customPath string) (PlanetWarsConfig, string, error) {
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return PlanetWarsConfig{}, "", err
		}
		return cfg, customPath, nil
	}

	for _, path := range []string{userConfigPath(fileName), filepath.Join("configs", fileName)} {
		if path == "" {
			continue
		}
		if cfg, err := loadFile(path); err == nil {
			return cfg, path, nil
		}
	}

	if cfg, err := parse(defaultPlanetWarsYAML); err == nil {
		return cfg, SourceEmbedded, nil
	}
	return DefaultPlanetWarsConfig(), SourceHardcoded, nil
}

func loadFile(path string) (PlanetWarsConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return PlanetWarsConfig{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg, err := parse(data)
	if err != nil {
		return PlanetWarsConfig{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// parse decodes YAML over the defaults so partial files only override
// what they name, then validates the result.
func parse(data []byte) (PlanetWarsConfig, error) {
	cfg := DefaultPlanetWarsConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return PlanetWarsConfig{}, fmt.Errorf("parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return PlanetWarsConfig{}, err
	}
	return cfg, nil
}

// Marshal renders a configuration as YAML.
func Marshal(cfg PlanetWarsConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: marshal: %w", err)
	}
	return data, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".planetwars", "configs", filename)
}
