package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

// isolate points HOME and the working directory at empty temp dirs so that
// no real user configs leak into a test.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(t.TempDir())
	return home
}

func TestVariants(t *testing.T) {
	got := Variants()
	want := []string{"drop", "laser"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Variants() = %v, expected %v", got, want)
	}
}

func TestDefaultsAreValid(t *testing.T) {
	for _, id := range Variants() {
		t.Run(id, func(t *testing.T) {
			cfg, err := Default(id)
			if err != nil {
				t.Fatalf("Default(%q): %v", id, err)
			}
			if cfg.ID != id {
				t.Errorf("ID = %q, expected %q", cfg.ID, id)
			}
			if err := Validate(cfg); err != nil {
				t.Errorf("embedded default is invalid: %v", err)
			}
		})
	}
}

func TestDefaultDropMatchesClassicTuning(t *testing.T) {
	cfg, err := Default("drop")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.World.Width != 8 || cfg.World.Height != 5 {
		t.Errorf("world = %gx%g, expected 8x5", cfg.World.Width, cfg.World.Height)
	}
	if cfg.Player.Speed != 4 || cfg.Entity.Speed != 2 || cfg.Spawn.Interval != 1 {
		t.Errorf("speeds/interval = %g/%g/%g, expected 4/2/1",
			cfg.Player.Speed, cfg.Entity.Speed, cfg.Spawn.Interval)
	}
	if cfg.Audio.MusicVolume != 0.5 {
		t.Errorf("music volume = %g, expected 0.5", cfg.Audio.MusicVolume)
	}
}

func TestDefaultUnknownVariant(t *testing.T) {
	if _, err := Default("pinball"); !errors.Is(err, ErrUnknownVariant) {
		t.Errorf("Default(pinball) error = %v, expected ErrUnknownVariant", err)
	}
}

func TestLoadFallsBackToEmbedded(t *testing.T) {
	isolate(t)

	cfg, err := Load("laser", "")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want, _ := Default("laser")
	if !reflect.DeepEqual(cfg, want) {
		t.Errorf("Load without overrides should equal the embedded default")
	}
}

func TestLoadCustomPathOverlaysDefault(t *testing.T) {
	isolate(t)

	path := filepath.Join(t.TempDir(), "fast.yaml")
	if err := os.WriteFile(path, []byte("entity:\n  speed: 6\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load("drop", path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Entity.Speed != 6 {
		t.Errorf("entity speed = %g, expected override 6", cfg.Entity.Speed)
	}
	if cfg.Entity.Width != 1 || cfg.Player.Speed != 4 {
		t.Errorf("fields absent from the override should keep defaults, got %+v", cfg.Entity)
	}
	if _, ok := cfg.Textures["drop"]; !ok {
		t.Error("textures should survive a partial override")
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	isolate(t)
	dir := t.TempDir()

	if _, err := Load("drop", filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom config should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("world: [1, 2"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load("drop", bad); err == nil {
		t.Error("malformed custom config should fail")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("spawn:\n  interval: 0\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load("drop", invalid); !errors.Is(err, ErrInvalid) {
		t.Errorf("zero spawn interval error = %v, expected ErrInvalid", err)
	}
}

func TestLoadSearchOrder(t *testing.T) {
	home := isolate(t)

	// Local ./configs is found when the user directory has nothing.
	if err := os.MkdirAll("configs", 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join("configs", "drop.yaml"), []byte("player:\n  speed: 5\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load("drop", "")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Player.Speed != 5 {
		t.Errorf("local config ignored: player speed = %g", cfg.Player.Speed)
	}

	// The user directory wins over ./configs.
	userDir := filepath.Join(home, ".arcade", "configs")
	if err := os.MkdirAll(userDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(userDir, "drop.yaml"), []byte("player:\n  speed: 7\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, err = Load("drop", "")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Player.Speed != 7 {
		t.Errorf("user config should win: player speed = %g", cfg.Player.Speed)
	}
}

func TestLoadSkipsMalformedSearchPathFiles(t *testing.T) {
	isolate(t)

	if err := os.MkdirAll("configs", 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join("configs", "drop.yaml"), []byte("textures: [oops"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load("drop", "")
	if err != nil {
		t.Fatalf("malformed search-path file should be skipped, got %v", err)
	}
	if len(cfg.Textures) != 3 {
		t.Errorf("default textures should be untouched, got %d", len(cfg.Textures))
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*VariantConfig)
		field  string
	}{
		{"zero world", func(c *VariantConfig) { c.World.Width = 0 }, "world"},
		{"negative player speed", func(c *VariantConfig) { c.Player.Speed = -1 }, "player.speed"},
		{"zero entity height", func(c *VariantConfig) { c.Entity.Height = 0 }, "entity"},
		{"unknown player texture", func(c *VariantConfig) { c.Player.Texture = "nope" }, "player.texture"},
		{"long glyph", func(c *VariantConfig) {
			tex := c.Textures["drop"]
			tex.Glyph = "ab"
			c.Textures["drop"] = tex
		}, "textures.drop.glyph"},
		{"bad color", func(c *VariantConfig) {
			tex := c.Textures["drop"]
			tex.Color = "ultraviolet"
			c.Textures["drop"] = tex
		}, "textures.drop.color"},
		{"unknown hit sound", func(c *VariantConfig) { c.Audio.Hit = "boom" }, "audio.hit"},
		{"loud music", func(c *VariantConfig) { c.Audio.MusicVolume = 2 }, "audio.music_volume"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := Default("drop")
			if err != nil {
				t.Fatal(err)
			}
			cfg = clone(cfg)
			tc.mutate(&cfg)

			err = Validate(cfg)
			if !errors.Is(err, ErrInvalid) {
				t.Fatalf("Validate() = %v, expected ErrInvalid", err)
			}
			var ve ValidationError
			if !errors.As(err, &ve) || ve.Field != tc.field {
				t.Errorf("first failing field = %q, expected %q (err: %v)", ve.Field, tc.field, err)
			}
		})
	}
}

func TestParseRGB(t *testing.T) {
	tests := []struct {
		in      string
		want    [3]uint8
		wantErr bool
	}{
		{"#4aa3ff", [3]uint8{0x4a, 0xa3, 0xff}, false},
		{" #000000 ", [3]uint8{}, false},
		{"4aa3ff", [3]uint8{}, true},
		{"#4aa3f", [3]uint8{}, true},
		{"#zzzzzz", [3]uint8{}, true},
	}

	for _, tc := range tests {
		got, err := ParseRGB(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParseRGB(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseRGB(%q) = %v, expected %v", tc.in, got, tc.want)
		}
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	cfg, err := Default("laser")
	if err != nil {
		t.Fatal(err)
	}
	data, err := Marshal(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if len(data) == 0 {
		t.Fatal("Marshal produced no output")
	}
}
