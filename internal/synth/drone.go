package synth

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/Distortions81/ambient/internal/rhythm"
)

// Drone defaults. BFlat4 is the pitch every onset is detuned around.
const (
	BFlat4              = 466.16
	DefaultToneDuration = 100 * time.Millisecond
	DefaultLength       = 60 * time.Second
	DefaultDetune       = 0.02
	DefaultAmplitude    = 0.25
)

// OffsetMode decides where in the buffer each onset's tone is mixed.
type OffsetMode string

const (
	// OffsetSpread places the tone for step i at i*(T/N).
	OffsetSpread OffsetMode = "spread"
	// OffsetLiteral mixes every tone at the start of the buffer so they all
	// stack into one chord-like burst.
	OffsetLiteral OffsetMode = "literal"
)

// ParseOffsetMode accepts "spread", "literal" or "" (spread).
func ParseOffsetMode(s string) (OffsetMode, error) {
	switch OffsetMode(s) {
	case "", OffsetSpread:
		return OffsetSpread, nil
	case OffsetLiteral:
		return OffsetLiteral, nil
	default:
		return "", fmt.Errorf("unknown offset mode %q (want %q or %q)", s, OffsetSpread, OffsetLiteral)
	}
}

// Synthesizer turns a rhythm pattern into detuned tones.
type Synthesizer struct {
	BaseFrequency float64
	ToneDuration  time.Duration
	Length        time.Duration
	Detune        float64 // exponent range r; frequency = f0 * 2^u, u in [-r, r)
	Amplitude     float64
	SampleRate    int
	Offset        OffsetMode
}

// Default returns the B-flat drone settings.
func Default() Synthesizer {
	return Synthesizer{
		BaseFrequency: BFlat4,
		ToneDuration:  DefaultToneDuration,
		Length:        DefaultLength,
		Detune:        DefaultDetune,
		Amplitude:     DefaultAmplitude,
		SampleRate:    DefaultSampleRate,
		Offset:        OffsetSpread,
	}
}

// FrequencyRange returns the lowest and highest frequency a tone can take.
func (s Synthesizer) FrequencyRange() (lo, hi float64) {
	return s.BaseFrequency * math.Exp2(-s.Detune), s.BaseFrequency * math.Exp2(s.Detune)
}

// offset returns the mix position of step i in a pattern of n steps over a
// buffer of length total.
func (s Synthesizer) offset(i, n int, total time.Duration) time.Duration {
	if s.Offset == OffsetLiteral || n == 0 {
		return 0
	}
	return time.Duration(int64(total) * int64(i) / int64(n))
}

// Mix overlays one tone per onset of pattern into buf and returns the tones
// in the order they were mixed. rng is consumed once per onset.
func (s Synthesizer) Mix(rng *rand.Rand, pattern rhythm.Pattern, buf Buffer) []Tone {
	total := buf.Duration()
	n := pattern.Len()
	tones := make([]Tone, 0, pattern.Onsets())
	for i := 0; i < n; i++ {
		if !pattern.At(i) {
			continue
		}
		u := -s.Detune + 2*s.Detune*rng.Float64()
		tone := Tone{
			Frequency: s.BaseFrequency * math.Exp2(u),
			Duration:  s.ToneDuration,
			Waveform:  Sine,
			Amplitude: s.Amplitude,
		}
		buf.OverlayTone(tone, s.offset(i, n, total))
		tones = append(tones, tone)
	}
	return tones
}

// Synthesize allocates a buffer of s.Length and mixes pattern into it.
func (s Synthesizer) Synthesize(rng *rand.Rand, pattern rhythm.Pattern) (*PCMBuffer, []Tone) {
	buf := NewPCMBuffer(s.Length, s.SampleRate)
	tones := s.Mix(rng, pattern, buf)
	return buf, tones
}
