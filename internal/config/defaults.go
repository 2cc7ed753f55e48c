package config

import (
	"embed"
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed defaults/*.yaml
var defaultFS embed.FS

// Variants returns the IDs of all variants with an embedded default, sorted.
func Variants() []string {
	entries, err := defaultFS.ReadDir("defaults")
	if err != nil {
		return nil
	}
	ids := make([]string, 0, len(entries))
	for _, e := range entries {
		if name, ok := strings.CutSuffix(e.Name(), ".yaml"); ok {
			ids = append(ids, name)
		}
	}
	sort.Strings(ids)
	return ids
}

// GetDefaultYAML returns the embedded default YAML for a variant.
func GetDefaultYAML(id string) []byte {
	data, err := defaultFS.ReadFile("defaults/" + id + ".yaml")
	if err != nil {
		return nil
	}
	return data
}

// Default returns the embedded default configuration for a variant.
func Default(id string) (VariantConfig, error) {
	var cfg VariantConfig
	data := GetDefaultYAML(id)
	if data == nil {
		return cfg, fmt.Errorf("%w: %q", ErrUnknownVariant, id)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse default config %s: %w", id, err)
	}
	return cfg, nil
}
