package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Distortions81/ambient/internal/synth"
)

var envVars = []string{
	"AMBIENT_OUTPUT_DIR", "AMBIENT_SEED",
	"AMBIENT_BASE_FREQUENCY", "AMBIENT_STEPS", "AMBIENT_ONSET_PROBABILITY",
	"AMBIENT_TONE_MS", "AMBIENT_LENGTH_MS", "AMBIENT_DETUNE", "AMBIENT_AMPLITUDE",
	"AMBIENT_SAMPLE_RATE", "AMBIENT_OFFSET_MODE",
	"AMBIENT_WIDTH", "AMBIENT_HEIGHT", "AMBIENT_FPS", "AMBIENT_SHAPES", "AMBIENT_SCALE",
	"AMBIENT_HEADLESS", "AMBIENT_FRAMES", "AMBIENT_PLAY_DRONE", "AMBIENT_VOLUME",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range envVars {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Audio.BaseFrequency != 466.16 {
		t.Errorf("BaseFrequency = %v, want 466.16", cfg.Audio.BaseFrequency)
	}
	if cfg.Audio.Steps != 600 {
		t.Errorf("Steps = %d, want 600", cfg.Audio.Steps)
	}
	if cfg.Audio.ToneDurationMs != 100 {
		t.Errorf("ToneDurationMs = %d, want 100", cfg.Audio.ToneDurationMs)
	}
	if cfg.Audio.LengthMs != 60000 {
		t.Errorf("LengthMs = %d, want 60000", cfg.Audio.LengthMs)
	}
	if cfg.Audio.SampleRate != 44100 {
		t.Errorf("SampleRate = %d, want 44100", cfg.Audio.SampleRate)
	}
	if cfg.Audio.OffsetMode != "spread" {
		t.Errorf("OffsetMode = %q, want spread", cfg.Audio.OffsetMode)
	}
	if cfg.Animation.Width != 800 || cfg.Animation.Height != 600 {
		t.Errorf("size = %dx%d, want 800x600", cfg.Animation.Width, cfg.Animation.Height)
	}
	if cfg.Animation.FPS != 30 || cfg.Animation.Shapes != 10 {
		t.Errorf("FPS=%d Shapes=%d, want 30 and 10", cfg.Animation.FPS, cfg.Animation.Shapes)
	}
	if cfg.Animation.Scale != 1 {
		t.Errorf("Scale = %d, want 1", cfg.Animation.Scale)
	}
	if cfg.Animation.Title != "Generative Animation" {
		t.Errorf("Title = %q", cfg.Animation.Title)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults invalid: %v", err)
	}
}

func TestLoadFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "ambient.yaml")
	data := `
output_dir: out
seed: 42
audio:
  steps: 16
  offset_mode: literal
animation:
  fps: 60
  headless: true
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.OutputDir != "out" || cfg.Seed != 42 {
		t.Errorf("OutputDir=%q Seed=%d", cfg.OutputDir, cfg.Seed)
	}
	if cfg.Audio.Steps != 16 || cfg.Audio.OffsetMode != "literal" {
		t.Errorf("Steps=%d OffsetMode=%q", cfg.Audio.Steps, cfg.Audio.OffsetMode)
	}
	// Fields missing from the file keep their defaults.
	if cfg.Audio.ToneDurationMs != 100 {
		t.Errorf("ToneDurationMs = %d, want default 100", cfg.Audio.ToneDurationMs)
	}
	if cfg.Animation.FPS != 60 || !cfg.Animation.Headless {
		t.Errorf("FPS=%d Headless=%v", cfg.Animation.FPS, cfg.Animation.Headless)
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "ambient.yaml")
	if err := os.WriteFile(path, []byte("audio:\n  steps: 16\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("AMBIENT_STEPS", "32")
	t.Setenv("AMBIENT_SEED", "7")
	t.Setenv("AMBIENT_DETUNE", "0.05")
	t.Setenv("AMBIENT_HEADLESS", "true")
	t.Setenv("AMBIENT_FPS", "not-a-number")
	t.Setenv("AMBIENT_SCALE", "2")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Audio.Steps != 32 {
		t.Errorf("Steps = %d, want 32", cfg.Audio.Steps)
	}
	if cfg.Seed != 7 {
		t.Errorf("Seed = %d, want 7", cfg.Seed)
	}
	if cfg.Audio.Detune != 0.05 {
		t.Errorf("Detune = %v, want 0.05", cfg.Audio.Detune)
	}
	if !cfg.Animation.Headless {
		t.Error("Headless = false, want true")
	}
	if cfg.Animation.FPS != 30 {
		t.Errorf("FPS = %d, want default on bad value", cfg.Animation.FPS)
	}
	if cfg.Animation.Scale != 2 {
		t.Errorf("Scale = %d, want 2", cfg.Animation.Scale)
	}
}

func TestLoadErrors(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "missing.yaml"))
	var cerr *Error
	if !errors.As(err, &cerr) || !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file: err = %v, want *Error wrapping ErrNotExist", err)
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("audio: [1, 2\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); !errors.As(err, &cerr) {
		t.Errorf("bad yaml: err = %v, want *Error", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"zero frequency", func(c *Config) { c.Audio.BaseFrequency = 0 }, "audio.base_frequency"},
		{"no steps", func(c *Config) { c.Audio.Steps = 0 }, "audio.steps"},
		{"probability", func(c *Config) { c.Audio.OnsetProbability = 1.5 }, "audio.onset_probability"},
		{"tone", func(c *Config) { c.Audio.ToneDurationMs = -1 }, "audio.tone_duration_ms"},
		{"length", func(c *Config) { c.Audio.LengthMs = 0 }, "audio.length_ms"},
		{"detune", func(c *Config) { c.Audio.Detune = -0.1 }, "audio.detune"},
		{"amplitude", func(c *Config) { c.Audio.Amplitude = 2 }, "audio.amplitude"},
		{"sample rate", func(c *Config) { c.Audio.SampleRate = 0 }, "audio.sample_rate"},
		{"offset mode", func(c *Config) { c.Audio.OffsetMode = "sideways" }, "audio.offset_mode"},
		{"size", func(c *Config) { c.Animation.Width = 0 }, "animation.size"},
		{"fps", func(c *Config) { c.Animation.FPS = 0 }, "animation.fps"},
		{"scale", func(c *Config) { c.Animation.Scale = 0 }, "animation.scale"},
		{"shapes", func(c *Config) { c.Animation.Shapes = -1 }, "animation.shapes"},
		{"frames", func(c *Config) { c.Animation.Frames = -1 }, "animation.frames"},
		{"volume", func(c *Config) { c.Animation.Volume = 1.5 }, "animation.volume"},
		{"output dir", func(c *Config) { c.OutputDir = "" }, "output_dir"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			var cerr *Error
			if !errors.As(err, &cerr) {
				t.Fatalf("Validate() = %v, want *Error", err)
			}
			if cerr.Field != tt.field {
				t.Errorf("Field = %q, want %q", cerr.Field, tt.field)
			}
		})
	}
}

func TestEnsureOutputDir(t *testing.T) {
	dir := t.TempDir()
	cfg := Default()
	cfg.OutputDir = filepath.Join(dir, "a", "b")
	if err := cfg.EnsureOutputDir(); err != nil {
		t.Fatalf("EnsureOutputDir: %v", err)
	}
	if info, err := os.Stat(cfg.OutputDir); err != nil || !info.IsDir() {
		t.Fatalf("output dir not created: %v", err)
	}
	if err := cfg.EnsureOutputDir(); err != nil {
		t.Errorf("second EnsureOutputDir: %v", err)
	}

	file := filepath.Join(dir, "file")
	if err := os.WriteFile(file, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	cfg.OutputDir = file
	var cerr *Error
	if err := cfg.EnsureOutputDir(); !errors.As(err, &cerr) {
		t.Errorf("EnsureOutputDir on a file = %v, want *Error", err)
	}
}

func TestSynthesizer(t *testing.T) {
	cfg := Default()
	cfg.Audio.OffsetMode = "literal"
	cfg.Audio.LengthMs = 1500
	s, err := cfg.Synthesizer()
	if err != nil {
		t.Fatalf("Synthesizer: %v", err)
	}
	if s.Offset != synth.OffsetLiteral {
		t.Errorf("Offset = %q, want literal", s.Offset)
	}
	if s.Length != 1500*time.Millisecond || s.ToneDuration != synth.DefaultToneDuration {
		t.Errorf("Length=%v ToneDuration=%v", s.Length, s.ToneDuration)
	}
	def := synth.Default()
	def.Offset = synth.OffsetLiteral
	def.Length = 1500 * time.Millisecond
	if s != def {
		t.Errorf("Synthesizer() = %+v, want %+v", s, def)
	}
}

func TestResolveSeed(t *testing.T) {
	cfg := Default()
	cfg.Seed = 99
	if got := cfg.ResolveSeed(); got != 99 {
		t.Errorf("ResolveSeed() = %d, want 99", got)
	}
	cfg.Seed = 0
	if got := cfg.ResolveSeed(); got == 0 {
		t.Error("ResolveSeed() = 0 for time-based seed")
	}
}
