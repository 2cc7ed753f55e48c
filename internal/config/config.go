// Package config provides YAML-based game configuration loading for the
// arcade platform. Each game variant is described by one VariantConfig.
package config

// VariantConfig contains all configuration for one intercept variant.
type VariantConfig struct {
	ID     string       `yaml:"id"`
	Title  string       `yaml:"title"`
	HUD    string       `yaml:"hud"` // Score line, formatted with the score
	Splash SplashConfig `yaml:"splash"`
	World  WorldConfig  `yaml:"world"`
	Player PlayerConfig `yaml:"player"`
	Entity EntityConfig `yaml:"entity"`
	Spawn  SpawnConfig  `yaml:"spawn"`

	// LegacyWidthClamp bounds the player's Y with its width rather than its
	// height. Only differs from the default when the player is not square.
	LegacyWidthClamp bool `yaml:"legacy_width_clamp"`

	Background string                   `yaml:"background"`
	Textures   map[string]TextureConfig `yaml:"textures"`
	Sounds     map[string]SoundConfig   `yaml:"sounds"`
	Audio      AudioConfig              `yaml:"audio"`
}

// SplashConfig is the text shown on the menu screen.
type SplashConfig struct {
	Title  string `yaml:"title"`
	Prompt string `yaml:"prompt"`
}

// WorldConfig defines the world size in world units.
type WorldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlayerConfig defines the controlled sprite.
type PlayerConfig struct {
	Texture string  `yaml:"texture"`
	X       float64 `yaml:"x"`
	Y       float64 `yaml:"y"`
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	Speed   float64 `yaml:"speed"` // World units per second
}

// EntityConfig defines the incoming objects.
type EntityConfig struct {
	Texture string  `yaml:"texture"`
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	Speed   float64 `yaml:"speed"` // Leftward world units per second
}

// SpawnConfig defines the spawn timer.
type SpawnConfig struct {
	Interval float64 `yaml:"interval"` // Seconds between spawns
}

// TextureConfig describes how a texture looks in each host.
type TextureConfig struct {
	Glyph string `yaml:"glyph"` // Terminal character
	Color string `yaml:"color"` // Terminal color name
	RGB   string `yaml:"rgb"`   // Window color, "#rrggbb"
}

// SoundConfig describes a synthesized tone.
type SoundConfig struct {
	Frequency float64 `yaml:"frequency"`
	Duration  float64 `yaml:"duration"`
	Volume    float64 `yaml:"volume"`
}

// AudioConfig picks which sounds play for hits and as music.
type AudioConfig struct {
	Hit         string  `yaml:"hit"`
	Music       string  `yaml:"music"`
	MusicVolume float64 `yaml:"music_volume"`
}
