package config

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/vovakirdan/drop-arcade/internal/core"
)

var (
	// ErrUnknownVariant is returned when no embedded default exists for an ID.
	ErrUnknownVariant = errors.New("config: unknown variant")

	// ErrInvalid matches every ValidationError via errors.Is.
	ErrInvalid = errors.New("config: invalid")
)

// ValidationError contains details about a validation failure.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("config: %s: %s", e.Field, e.Message)
}

// Is lets errors.Is(err, ErrInvalid) match any validation failure.
func (e ValidationError) Is(target error) bool {
	return target == ErrInvalid
}

// Validate checks a configuration for values the simulation cannot run with.
func Validate(cfg VariantConfig) error {
	var errs []error
	fail := func(field, format string, args ...any) {
		errs = append(errs, ValidationError{Field: field, Message: fmt.Sprintf(format, args...)})
	}

	if cfg.World.Width <= 0 || cfg.World.Height <= 0 {
		fail("world", "size must be positive, got %gx%g", cfg.World.Width, cfg.World.Height)
	}
	if cfg.Player.Width <= 0 || cfg.Player.Height <= 0 {
		fail("player", "size must be positive, got %gx%g", cfg.Player.Width, cfg.Player.Height)
	}
	if cfg.Player.Speed < 0 {
		fail("player.speed", "must not be negative, got %g", cfg.Player.Speed)
	}
	if cfg.Entity.Width <= 0 || cfg.Entity.Height <= 0 {
		fail("entity", "size must be positive, got %gx%g", cfg.Entity.Width, cfg.Entity.Height)
	}
	if cfg.Entity.Speed < 0 {
		fail("entity.speed", "must not be negative, got %g", cfg.Entity.Speed)
	}
	if cfg.Spawn.Interval <= 0 {
		fail("spawn.interval", "must be positive, got %g", cfg.Spawn.Interval)
	}

	// Sorted for stable error output.
	names := make([]string, 0, len(cfg.Textures))
	for name := range cfg.Textures {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		tex := cfg.Textures[name]
		if utf8.RuneCountInString(tex.Glyph) != 1 {
			fail("textures."+name+".glyph", "must be exactly one character, got %q", tex.Glyph)
		}
		if tex.Color != "" {
			if _, ok := core.ParseColor(tex.Color); !ok {
				fail("textures."+name+".color", "unknown color %q", tex.Color)
			}
		}
		if tex.RGB != "" {
			if _, err := ParseRGB(tex.RGB); err != nil {
				fail("textures."+name+".rgb", "%v", err)
			}
		}
	}

	for field, ref := range map[string]string{
		"player.texture": cfg.Player.Texture,
		"entity.texture": cfg.Entity.Texture,
		"background":     cfg.Background,
	} {
		if ref == "" && field == "background" {
			continue
		}
		if _, ok := cfg.Textures[ref]; !ok {
			fail(field, "texture %q is not defined", ref)
		}
	}

	for field, ref := range map[string]string{"audio.hit": cfg.Audio.Hit, "audio.music": cfg.Audio.Music} {
		if ref == "" {
			continue
		}
		if _, ok := cfg.Sounds[ref]; !ok {
			fail(field, "sound %q is not defined", ref)
		}
	}
	if cfg.Audio.MusicVolume < 0 || cfg.Audio.MusicVolume > 1 {
		fail("audio.music_volume", "must be within [0, 1], got %g", cfg.Audio.MusicVolume)
	}

	return errors.Join(errs...)
}

// ParseRGB parses a "#rrggbb" color.
func ParseRGB(s string) ([3]uint8, error) {
	var rgb [3]uint8
	hex, ok := strings.CutPrefix(strings.TrimSpace(s), "#")
	if !ok || len(hex) != 6 {
		return rgb, fmt.Errorf("color %q must look like #rrggbb", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return rgb, fmt.Errorf("color %q: %w", s, err)
	}
	rgb[0], rgb[1], rgb[2] = uint8(v>>16), uint8(v>>8), uint8(v)
	return rgb, nil
}
