package window

import (
	"bytes"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/vovakirdan/drop-arcade/internal/core"
)

// Mixer plays a manifest's synthesized sounds through Ebitengine.
type Mixer struct {
	ctx    *audio.Context
	logger *log.Logger
	pcm    map[core.SoundID][]byte

	effects map[core.SoundID]*audio.Player
	music   *audio.Player
}

// NewMixer synthesizes every sound in sounds. The process-wide audio
// context is created on first use.
func NewMixer(sounds map[core.SoundID]core.Sound, logger *log.Logger) *Mixer {
	ctx := audio.CurrentContext()
	if ctx == nil {
		ctx = audio.NewContext(sampleRate)
	}

	pcm := make(map[core.SoundID][]byte, len(sounds))
	for id, s := range sounds {
		pcm[id] = synthesize(s, ctx.SampleRate())
	}

	return &Mixer{
		ctx:     ctx,
		logger:  logger,
		pcm:     pcm,
		effects: make(map[core.SoundID]*audio.Player),
	}
}

// PlaySound restarts the effect from the beginning.
func (m *Mixer) PlaySound(id core.SoundID) {
	p, err := m.effect(id)
	if err != nil {
		m.logger.Warn("cannot play sound", "sound", id, "error", err)
		return
	}
	if err := p.Rewind(); err != nil {
		m.logger.Warn("cannot rewind sound", "sound", id, "error", err)
	}
	p.Play()
}

func (m *Mixer) effect(id core.SoundID) (*audio.Player, error) {
	if p, ok := m.effects[id]; ok {
		return p, nil
	}
	data, ok := m.pcm[id]
	if !ok || len(data) == 0 {
		return nil, fmt.Errorf("unknown sound %q", id)
	}
	p := m.ctx.NewPlayerFromBytes(data)
	m.effects[id] = p
	return p, nil
}

// LoopMusic replaces the current track with id, looping forever.
func (m *Mixer) LoopMusic(id core.SoundID, volume float64) {
	m.StopMusic()

	data, ok := m.pcm[id]
	if !ok || len(data) == 0 {
		m.logger.Warn("cannot loop music", "track", id)
		return
	}

	loop := audio.NewInfiniteLoop(bytes.NewReader(data), int64(len(data)))
	p, err := m.ctx.NewPlayer(loop)
	if err != nil {
		m.logger.Warn("cannot create music player", "track", id, "error", err)
		return
	}
	p.SetVolume(core.ClampF(volume, 0, 1))
	p.Play()
	m.music = p
	m.logger.Debug("music started", "track", id, "volume", volume)
}

// StopMusic stops and releases the current track.
func (m *Mixer) StopMusic() {
	if m.music == nil {
		return
	}
	m.music.Pause()
	if err := m.music.Close(); err != nil {
		m.logger.Debug("closing music player", "error", err)
	}
	m.music = nil
}

// Close stops the music and releases every effect player.
func (m *Mixer) Close() {
	m.StopMusic()
	for id, p := range m.effects {
		if err := p.Close(); err != nil {
			m.logger.Debug("closing sound player", "sound", id, "error", err)
		}
	}
	clear(m.effects)
}
