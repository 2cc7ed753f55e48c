package intercept

import (
	"fmt"

	"github.com/vovakirdan/drop-arcade/internal/config"
	"github.com/vovakirdan/drop-arcade/internal/core"
)

// Render draws the current game state: background, player, score line,
// then entities.
func (g *Game) Render(dst core.Canvas) {
	dst.Clear()

	w, h := g.cfg.World.Width, g.cfg.World.Height
	if g.cfg.Background != "" {
		dst.DrawSprite(core.TextureID(g.cfg.Background), core.NewRectF(0, 0, w, h))
	}

	dst.DrawSprite(core.TextureID(g.cfg.Player.Texture), g.state.Player.Rect())

	if g.cfg.HUD != "" {
		dst.DrawText(fmt.Sprintf(g.cfg.HUD, g.state.Score), 0, h)
	}

	entity := core.TextureID(g.cfg.Entity.Texture)
	for _, e := range g.state.Entities.Items() {
		dst.DrawSprite(entity, e.Rect())
	}

	if g.paused {
		dst.DrawTextCentered("PAUSED", h/2+0.5)
		dst.DrawTextCentered("Press P to resume", h/2-0.5)
	}
}

// manifestFromConfig converts the asset sections of a config into the
// host-facing manifest. Values were checked by config.Validate.
func manifestFromConfig(cfg config.VariantConfig) core.Manifest {
	m := core.Manifest{
		WorldW:       cfg.World.Width,
		WorldH:       cfg.World.Height,
		Textures:     make(map[core.TextureID]core.Texture, len(cfg.Textures)),
		Sounds:       make(map[core.SoundID]core.Sound, len(cfg.Sounds)),
		HitSound:     core.SoundID(cfg.Audio.Hit),
		Music:        core.SoundID(cfg.Audio.Music),
		MusicVolume:  cfg.Audio.MusicVolume,
		SplashTitle:  cfg.Splash.Title,
		SplashPrompt: cfg.Splash.Prompt,
	}

	for name, t := range cfg.Textures {
		tex := core.Texture{Glyph: ' '}
		for _, r := range t.Glyph {
			tex.Glyph = r
			break
		}
		tex.Color, _ = core.ParseColor(t.Color)
		if t.RGB != "" {
			tex.RGB, _ = config.ParseRGB(t.RGB)
		}
		m.Textures[core.TextureID(name)] = tex
	}

	for name, s := range cfg.Sounds {
		m.Sounds[core.SoundID(name)] = core.Sound{
			Frequency: s.Frequency,
			Duration:  s.Duration,
			Volume:    s.Volume,
		}
	}

	return m
}
