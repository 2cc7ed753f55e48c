package config

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads a variant configuration.
// The embedded default is the base; the first override found is applied on
// top of it. Search order: customPath -> ~/.arcade/configs/<id>.yaml ->
// ./configs/<id>.yaml. The result is validated.
func Load(id, customPath string) (VariantConfig, error) {
	cfg, err := Default(id)
	if err != nil {
		return cfg, err
	}

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, Validate(cfg)
	}

	filename := id + ".yaml"

	// Try user config directory, then the local configs directory.
	// Unreadable or malformed files here are skipped.
	for _, path := range []string{userConfigPath(filename), filepath.Join("configs", filename)} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		override := clone(cfg)
		if err := yaml.Unmarshal(data, &override); err != nil {
			continue
		}
		return override, Validate(override)
	}

	return cfg, Validate(cfg)
}

// clone copies cfg so that decoding into the copy cannot touch cfg's maps.
func clone(cfg VariantConfig) VariantConfig {
	cfg.Textures = maps.Clone(cfg.Textures)
	cfg.Sounds = maps.Clone(cfg.Sounds)
	return cfg
}

// Marshal renders a configuration back to YAML.
func Marshal(cfg VariantConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to encode config %s: %w", cfg.ID, err)
	}
	return data, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}
