// Package synth renders the microtonal drone: detuned sine tones mixed into a
// fixed-length 16-bit PCM buffer.
package synth

import (
	"math"
	"time"
)

// Waveform selects the oscillator shape of a tone.
type Waveform int

const (
	// Sine is a pure sinusoid starting at phase zero.
	Sine Waveform = iota
)

func (w Waveform) String() string {
	switch w {
	case Sine:
		return "sine"
	default:
		return "unknown"
	}
}

// Tone is a single note waiting to be mixed into a buffer.
type Tone struct {
	Frequency float64       // Hz
	Duration  time.Duration // truncated to whole milliseconds when rendered
	Waveform  Waveform
	Amplitude float64 // fraction of full scale, 0-1
}

// DurationSamples returns the number of samples covering d at sampleRate.
func DurationSamples(d time.Duration, sampleRate int) int {
	return sampleRate * int(d/time.Millisecond) / 1000
}

// Render synthesizes the tone as 16-bit samples at sampleRate.
func (t Tone) Render(sampleRate int) []int16 {
	n := DurationSamples(t.Duration, sampleRate)
	data := make([]int16, n)
	if t.Frequency <= 0 || n == 0 {
		return data
	}
	amp := clamp(t.Amplitude, 0, 1) * math.MaxInt16
	for i := range data {
		ts := float64(i) / float64(sampleRate)
		data[i] = int16(amp * math.Sin(2*math.Pi*t.Frequency*ts))
	}
	return data
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
