// Package config holds runtime configuration for the drone and animation
// pipelines. Values start from defaults, are overlaid by an optional YAML
// file, then by AMBIENT_* environment variables. CLI flags are applied by
// the caller before Validate.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/goccy/go-yaml"

	"github.com/Distortions81/ambient/internal/animation"
	"github.com/Distortions81/ambient/internal/rhythm"
	"github.com/Distortions81/ambient/internal/shapes"
	"github.com/Distortions81/ambient/internal/synth"
)

// Error reports an invalid or unloadable configuration value.
type Error struct {
	Field string
	Err   error
}

func (e *Error) Error() string { return fmt.Sprintf("config %s: %v", e.Field, e.Err) }

func (e *Error) Unwrap() error { return e.Err }

func invalid(field, format string, args ...any) *Error {
	return &Error{Field: field, Err: fmt.Errorf(format, args...)}
}

// Config holds all runtime configuration.
type Config struct {
	OutputDir string `yaml:"output_dir"`
	// Seed feeds every random source. Zero picks a time-based seed.
	Seed int64 `yaml:"seed"`

	Audio     Audio     `yaml:"audio"`
	Animation Animation `yaml:"animation"`
}

// Audio configures the drone synthesizer.
type Audio struct {
	BaseFrequency    float64 `yaml:"base_frequency"`
	Steps            int     `yaml:"steps"`
	OnsetProbability float64 `yaml:"onset_probability"`
	ToneDurationMs   int     `yaml:"tone_duration_ms"`
	LengthMs         int     `yaml:"length_ms"`
	Detune           float64 `yaml:"detune"`
	Amplitude        float64 `yaml:"amplitude"`
	SampleRate       int     `yaml:"sample_rate"`
	OffsetMode       string  `yaml:"offset_mode"`
}

// Animation configures the shape animation and its host.
type Animation struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	FPS    int    `yaml:"fps"`
	Shapes int    `yaml:"shapes"`
	Title  string `yaml:"title"`
	// Scale multiplies the window size. The canvas keeps Width x Height.
	Scale int `yaml:"scale"`

	Headless bool `yaml:"headless"`
	// Frames caps the number of drawn frames. Zero runs until stopped.
	Frames   int    `yaml:"frames"`
	Snapshot string `yaml:"snapshot"`

	PlayDrone bool    `yaml:"play_drone"`
	Volume    float64 `yaml:"volume"`
	Debug     bool    `yaml:"debug"`
}

// Default returns the stock configuration.
func Default() *Config {
	return &Config{
		OutputDir: ".",
		Audio: Audio{
			BaseFrequency:    synth.BFlat4,
			Steps:            rhythm.DefaultSteps,
			OnsetProbability: rhythm.DefaultProbability,
			ToneDurationMs:   int(synth.DefaultToneDuration / time.Millisecond),
			LengthMs:         int(synth.DefaultLength / time.Millisecond),
			Detune:           synth.DefaultDetune,
			Amplitude:        synth.DefaultAmplitude,
			SampleRate:       synth.DefaultSampleRate,
			OffsetMode:       string(synth.OffsetSpread),
		},
		Animation: Animation{
			Width:  animation.DefaultWidth,
			Height: animation.DefaultHeight,
			FPS:    animation.DefaultFPS,
			Shapes: animation.DefaultShapes,
			Title:  animation.DefaultTitle,
			Scale:  1,
			Volume: 0.5,
		},
	}
}

// Load builds a configuration from defaults, the YAML file at path (skipped
// when path is empty) and the environment. The result is not validated.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, &Error{Field: "file", Err: fmt.Errorf("read %s: %w", path, err)}
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, &Error{Field: "file", Err: fmt.Errorf("parse %s: %w", path, err)}
		}
	}
	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) applyEnv() {
	c.OutputDir = envStr("AMBIENT_OUTPUT_DIR", c.OutputDir)
	c.Seed = envInt64("AMBIENT_SEED", c.Seed)

	a := &c.Audio
	a.BaseFrequency = envFloat("AMBIENT_BASE_FREQUENCY", a.BaseFrequency)
	a.Steps = envInt("AMBIENT_STEPS", a.Steps)
	a.OnsetProbability = envFloat("AMBIENT_ONSET_PROBABILITY", a.OnsetProbability)
	a.ToneDurationMs = envInt("AMBIENT_TONE_MS", a.ToneDurationMs)
	a.LengthMs = envInt("AMBIENT_LENGTH_MS", a.LengthMs)
	a.Detune = envFloat("AMBIENT_DETUNE", a.Detune)
	a.Amplitude = envFloat("AMBIENT_AMPLITUDE", a.Amplitude)
	a.SampleRate = envInt("AMBIENT_SAMPLE_RATE", a.SampleRate)
	a.OffsetMode = envStr("AMBIENT_OFFSET_MODE", a.OffsetMode)

	v := &c.Animation
	v.Width = envInt("AMBIENT_WIDTH", v.Width)
	v.Height = envInt("AMBIENT_HEIGHT", v.Height)
	v.FPS = envInt("AMBIENT_FPS", v.FPS)
	v.Shapes = envInt("AMBIENT_SHAPES", v.Shapes)
	v.Scale = envInt("AMBIENT_SCALE", v.Scale)
	v.Headless = envBool("AMBIENT_HEADLESS", v.Headless)
	v.Frames = envInt("AMBIENT_FRAMES", v.Frames)
	v.PlayDrone = envBool("AMBIENT_PLAY_DRONE", v.PlayDrone)
	v.Volume = envFloat("AMBIENT_VOLUME", v.Volume)
}

// Validate checks every field and returns the first problem as *Error.
func (c *Config) Validate() error {
	if c.OutputDir == "" {
		return invalid("output_dir", "must not be empty")
	}

	a := c.Audio
	switch {
	case a.BaseFrequency <= 0:
		return invalid("audio.base_frequency", "must be positive, got %v", a.BaseFrequency)
	case a.Steps <= 0:
		return invalid("audio.steps", "must be positive, got %d", a.Steps)
	case a.OnsetProbability < 0 || a.OnsetProbability > 1:
		return invalid("audio.onset_probability", "must be in [0,1], got %v", a.OnsetProbability)
	case a.ToneDurationMs <= 0:
		return invalid("audio.tone_duration_ms", "must be positive, got %d", a.ToneDurationMs)
	case a.LengthMs <= 0:
		return invalid("audio.length_ms", "must be positive, got %d", a.LengthMs)
	case a.Detune < 0 || a.Detune >= 1:
		return invalid("audio.detune", "must be in [0,1), got %v", a.Detune)
	case a.Amplitude <= 0 || a.Amplitude > 1:
		return invalid("audio.amplitude", "must be in (0,1], got %v", a.Amplitude)
	case a.SampleRate <= 0:
		return invalid("audio.sample_rate", "must be positive, got %d", a.SampleRate)
	}
	if _, err := synth.ParseOffsetMode(a.OffsetMode); err != nil {
		return &Error{Field: "audio.offset_mode", Err: err}
	}

	v := c.Animation
	switch {
	case v.Width <= 0 || v.Height <= 0:
		return invalid("animation.size", "must be positive, got %dx%d", v.Width, v.Height)
	case v.FPS <= 0:
		return invalid("animation.fps", "must be positive, got %d", v.FPS)
	case v.Scale <= 0:
		return invalid("animation.scale", "must be positive, got %d", v.Scale)
	case v.Shapes < 0:
		return invalid("animation.shapes", "must not be negative, got %d", v.Shapes)
	case v.Frames < 0:
		return invalid("animation.frames", "must not be negative, got %d", v.Frames)
	case v.Volume < 0 || v.Volume > 1:
		return invalid("animation.volume", "must be in [0,1], got %v", v.Volume)
	}
	return nil
}

// EnsureOutputDir creates the output directory if needed.
func (c *Config) EnsureOutputDir() error {
	info, err := os.Stat(c.OutputDir)
	switch {
	case err == nil && !info.IsDir():
		return invalid("output_dir", "%s is not a directory", c.OutputDir)
	case err == nil:
		return nil
	case !errors.Is(err, os.ErrNotExist):
		return &Error{Field: "output_dir", Err: err}
	}
	if err := os.MkdirAll(c.OutputDir, 0o755); err != nil {
		return &Error{Field: "output_dir", Err: err}
	}
	return nil
}

// Synthesizer returns the drone synthesizer described by the audio section.
func (c *Config) Synthesizer() (synth.Synthesizer, error) {
	mode, err := synth.ParseOffsetMode(c.Audio.OffsetMode)
	if err != nil {
		return synth.Synthesizer{}, &Error{Field: "audio.offset_mode", Err: err}
	}
	return synth.Synthesizer{
		BaseFrequency: c.Audio.BaseFrequency,
		ToneDuration:  time.Duration(c.Audio.ToneDurationMs) * time.Millisecond,
		Length:        time.Duration(c.Audio.LengthMs) * time.Millisecond,
		Detune:        c.Audio.Detune,
		Amplitude:     c.Audio.Amplitude,
		SampleRate:    c.Audio.SampleRate,
		Offset:        mode,
	}, nil
}

// LoopOptions returns the per-tick drawing options.
func (c *Config) LoopOptions() animation.Options {
	return animation.Options{Shapes: c.Animation.Shapes, Palette: shapes.DefaultPalette}
}

// ResolveSeed returns Seed, or a time-based seed when Seed is zero.
func (c *Config) ResolveSeed() int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return time.Now().UnixNano()
}
