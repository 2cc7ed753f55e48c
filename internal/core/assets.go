package core

// TextureID names a drawable asset (background, player, entity).
type TextureID string

// SoundID names an audio asset.
type SoundID string

// Texture describes how a host should draw a textured rectangle.
// Terminal hosts use Glyph and Color; pixel hosts use RGB.
type Texture struct {
	Glyph rune
	Color Color
	RGB   [3]uint8
}

// Sound describes a synthesized tone. Hosts that cannot play audio
// may approximate it (a terminal bell) or ignore it.
type Sound struct {
	Frequency float64 // Hz
	Duration  float64 // Seconds
	Volume    float64 // 0.0 to 1.0
}

// Manifest lists the assets a game needs for its session.
// Hosts acquire everything in it when gameplay starts and release it once
// when the session ends.
type Manifest struct {
	WorldW, WorldH float64
	Textures       map[TextureID]Texture
	Sounds         map[SoundID]Sound
	HitSound       SoundID
	Music          SoundID
	MusicVolume    float64

	SplashTitle  string
	SplashPrompt string
}

// Canvas is the rendering sink a game draws into, in world units.
type Canvas interface {
	Clear()
	DrawSprite(tex TextureID, r RectF)
	// DrawText draws text whose top-left corner is at the world position.
	DrawText(text string, x, y float64)
	// DrawTextCentered draws text centered horizontally on the screen,
	// with its top edge at world height y.
	DrawTextCentered(text string, y float64)
}

// AudioSink plays sound effects and background music.
type AudioSink interface {
	PlaySound(id SoundID)
	LoopMusic(id SoundID, volume float64)
	StopMusic()
}

// NopAudio is an AudioSink that discards everything.
type NopAudio struct{}

func (NopAudio) PlaySound(SoundID) {}
func (NopAudio) LoopMusic(SoundID, float64) {}
func (NopAudio) StopMusic() {}
