package display

import (
	"bytes"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"

	"github.com/Distortions81/ambient/internal/wavfile"
)

const volumeStep = 0.1

// newDronePlayer decodes the WAV at path and starts it looping forever.
func newDronePlayer(path string, volume float64) (*audio.Player, error) {
	info, err := wavfile.Probe(path)
	if err != nil {
		return nil, err
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	// Only one audio context may exist per process.
	ctx := audio.CurrentContext()
	if ctx == nil {
		ctx = audio.NewContext(info.SampleRate)
	}
	stream, err := wav.DecodeWithSampleRate(ctx.SampleRate(), bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("decoding %q: %w", path, err)
	}
	if stream.Length() == 0 {
		return nil, fmt.Errorf("wav %q has no audio data", path)
	}

	player, err := ctx.NewPlayer(audio.NewInfiniteLoop(stream, stream.Length()))
	if err != nil {
		return nil, fmt.Errorf("creating player: %w", err)
	}
	player.SetVolume(volume)
	player.Play()
	return player, nil
}

func clampVolume(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
