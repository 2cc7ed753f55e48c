package tui

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/drop-arcade/internal/core"
)

// BellSink approximates sound effects with the terminal bell.
// Terminals cannot play music, so looping tracks are only logged.
type BellSink struct {
	out    io.Writer
	logger *log.Logger
	sounds map[core.SoundID]core.Sound
}

// NewBellSink creates a sink that rings the bell on out for known sounds.
func NewBellSink(out io.Writer, logger *log.Logger, sounds map[core.SoundID]core.Sound) *BellSink {
	return &BellSink{out: out, logger: logger, sounds: sounds}
}

// PlaySound rings the bell once. Silent sounds are skipped.
func (b *BellSink) PlaySound(id core.SoundID) {
	s, ok := b.sounds[id]
	if !ok || s.Volume <= 0 || b.out == nil {
		return
	}
	if _, err := io.WriteString(b.out, "\a"); err != nil {
		b.logger.Debug("bell failed", "sound", id, "error", err)
	}
}

// LoopMusic records that music would start.
func (b *BellSink) LoopMusic(id core.SoundID, volume float64) {
	b.logger.Debug("music requested", "track", id, "volume", volume)
}

// StopMusic records that music would stop.
func (b *BellSink) StopMusic() {
	b.logger.Debug("music stopped")
}
