package tui

import (
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/drop-arcade/internal/core"
)

// session owns the audio resources of one gameplay run. It is opened when
// the splash screen is left and closed exactly once, however the run ends.
type session struct {
	audio    core.AudioSink
	manifest core.Manifest
	logger   *log.Logger
	once     sync.Once
}

// openSession acquires the manifest's assets and starts the music loop.
func openSession(m core.Manifest, audio core.AudioSink, logger *log.Logger) *session {
	s := &session{audio: audio, manifest: m, logger: logger}
	if m.Music != "" {
		audio.LoopMusic(m.Music, m.MusicVolume)
	}
	logger.Debug("session assets acquired",
		"textures", len(m.Textures),
		"sounds", len(m.Sounds),
	)
	return s
}

// Hit plays the collision sound.
func (s *session) Hit() {
	if s.manifest.HitSound != "" {
		s.audio.PlaySound(s.manifest.HitSound)
	}
}

// Close stops the music and releases the session. Safe to call repeatedly
// and on a nil session.
func (s *session) Close() {
	if s == nil {
		return
	}
	s.once.Do(func() {
		s.audio.StopMusic()
		s.logger.Debug("session assets released")
	})
}
