package synth

import (
	"encoding/binary"
	"math"
	"time"
)

// DefaultSampleRate is the mixing rate of the drone buffer.
const DefaultSampleRate = 44100

// Buffer is the mixing surface the synthesizer writes into.
type Buffer interface {
	// OverlayTone adds t into the buffer starting at offset. Samples that
	// would land past the end of the buffer are dropped.
	OverlayTone(t Tone, offset time.Duration)
	// Duration is fixed at creation.
	Duration() time.Duration
}

// PCMBuffer is a mono 16-bit Buffer of fixed length.
type PCMBuffer struct {
	sampleRate int
	samples    []int16
}

// NewPCMBuffer allocates a silent buffer of duration d.
func NewPCMBuffer(d time.Duration, sampleRate int) *PCMBuffer {
	if sampleRate <= 0 {
		sampleRate = DefaultSampleRate
	}
	n := int(int64(d) * int64(sampleRate) / int64(time.Second))
	if n < 0 {
		n = 0
	}
	return &PCMBuffer{sampleRate: sampleRate, samples: make([]int16, n)}
}

// SampleRate returns the buffer's sample rate in Hz.
func (b *PCMBuffer) SampleRate() int { return b.sampleRate }

// Len returns the number of samples.
func (b *PCMBuffer) Len() int { return len(b.samples) }

// Samples exposes the underlying samples. Callers must not modify them.
func (b *PCMBuffer) Samples() []int16 { return b.samples }

// Duration returns the length of the buffer.
func (b *PCMBuffer) Duration() time.Duration {
	return time.Duration(int64(len(b.samples)) * int64(time.Second) / int64(b.sampleRate))
}

// OverlayTone mixes t into the buffer at offset with int16 saturation.
func (b *PCMBuffer) OverlayTone(t Tone, offset time.Duration) {
	if offset < 0 {
		offset = 0
	}
	start := int(int64(offset) * int64(b.sampleRate) / int64(time.Second))
	if start >= len(b.samples) {
		return
	}
	rendered := t.Render(b.sampleRate)
	dst := b.samples[start:]
	if len(rendered) > len(dst) {
		rendered = rendered[:len(dst)]
	}
	for i, s := range rendered {
		dst[i] = saturatingAdd(dst[i], s)
	}
}

// Peak returns the largest absolute sample value.
func (b *PCMBuffer) Peak() int {
	peak := 0
	for _, s := range b.samples {
		v := int(s)
		if v < 0 {
			v = -v
		}
		if v > peak {
			peak = v
		}
	}
	return peak
}

// Bytes returns the samples as little-endian PCM.
func (b *PCMBuffer) Bytes() []byte {
	data := make([]byte, len(b.samples)*2)
	for i, s := range b.samples {
		binary.LittleEndian.PutUint16(data[i*2:], uint16(s))
	}
	return data
}

func saturatingAdd(a, b int16) int16 {
	sum := int32(a) + int32(b)
	if sum > math.MaxInt16 {
		return math.MaxInt16
	}
	if sum < math.MinInt16 {
		return math.MinInt16
	}
	return int16(sum)
}
