// Package pipeline runs the drone and animation stages end to end and
// records what they produced in the run manifest.
package pipeline

import (
	"fmt"
	"log"
	"math/rand"
	"path/filepath"

	"github.com/Distortions81/ambient/internal/config"
	"github.com/Distortions81/ambient/internal/manifest"
	"github.com/Distortions81/ambient/internal/rhythm"
	"github.com/Distortions81/ambient/internal/synth"
	"github.com/Distortions81/ambient/internal/wavfile"
)

// AudioResult is the outcome of the drone stage.
type AudioResult struct {
	Path    string
	Pattern rhythm.Pattern
	Tones   []synth.Tone
	Info    wavfile.Info
	Peak    int
}

// DronePath returns where the drone is exported for cfg.
func DronePath(cfg *config.Config) string {
	return filepath.Join(cfg.OutputDir, wavfile.FileName)
}

// Drone generates the rhythm from m's seed, mixes the drone, exports it and
// records it in m. cfg must be valid and its output directory must exist.
func Drone(cfg *config.Config, m *manifest.Manifest) (*AudioResult, error) {
	s, err := cfg.Synthesizer()
	if err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(m.Seed))
	pattern := rhythm.Generate(rng, cfg.Audio.Steps, cfg.Audio.OnsetProbability)
	buf, tones := s.Synthesize(rng, pattern)

	path := DronePath(cfg)
	if err := wavfile.Export(path, buf); err != nil {
		return nil, err
	}
	info, err := wavfile.Probe(path)
	if err != nil {
		return nil, fmt.Errorf("verify export: %w", err)
	}
	log.Printf("drone: %d/%d onsets, %s mix, %v at %d Hz -> %s",
		pattern.Onsets(), pattern.Len(), s.Offset, info.Duration, info.SampleRate, path)

	res := &AudioResult{Path: path, Pattern: pattern, Tones: tones, Info: info, Peak: buf.Peak()}
	m.Audio = &manifest.Audio{
		Path:          wavfile.FileName,
		SampleRate:    info.SampleRate,
		DurationMs:    info.Duration.Milliseconds(),
		BaseFrequency: s.BaseFrequency,
		Steps:         pattern.Len(),
		Onsets:        pattern.Onsets(),
		OffsetMode:    string(s.Offset),
	}
	if err := m.Write(cfg.OutputDir); err != nil {
		return nil, err
	}
	return res, nil
}
