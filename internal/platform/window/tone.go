package window

import (
	"encoding/binary"
	"math"

	"github.com/vovakirdan/drop-arcade/internal/core"
)

// sampleRate is the audio context rate, matching Ebitengine's common default.
const sampleRate = 48000

// fadeSeconds ramps tone edges to avoid clicks.
const fadeSeconds = 0.005

// synthesize renders a sine tone as 16-bit little-endian stereo PCM, the
// format Ebitengine's audio players consume.
func synthesize(s core.Sound, rate int) []byte {
	n := int(s.Duration * float64(rate))
	if n <= 0 || s.Frequency <= 0 {
		return nil
	}

	vol := core.ClampF(s.Volume, 0, 1)
	fade := int(fadeSeconds * float64(rate))
	buf := make([]byte, n*4)

	for i := range n {
		env := 1.0
		switch {
		case fade > 0 && i < fade:
			env = float64(i) / float64(fade)
		case fade > 0 && n-1-i < fade:
			env = float64(n-1-i) / float64(fade)
		}

		v := math.Sin(2*math.Pi*s.Frequency*float64(i)/float64(rate)) * vol * env
		sample := uint16(int16(v * math.MaxInt16))
		binary.LittleEndian.PutUint16(buf[i*4:], sample)
		binary.LittleEndian.PutUint16(buf[i*4+2:], sample)
	}
	return buf
}
