package commands

import (
	"github.com/spf13/cobra"

	"github.com/Distortions81/ambient/internal/config"
)

// Command-line overrides. They only replace config values when set.
var (
	audioFlags struct {
		baseFrequency float64
		steps         int
		probability   float64
		toneMs        int
		lengthMs      int
		detune        float64
		amplitude     float64
		sampleRate    int
		offsetMode    string
	}

	animFlags struct {
		width     int
		height    int
		fps       int
		shapes    int
		headless  bool
		frames    int
		snapshot  string
		playDrone bool
		volume    float64
		debug     bool
		scale     int
	}
)

func addAudioFlags(cmd *cobra.Command) {
	d := config.Default().Audio
	f := cmd.Flags()
	f.Float64Var(&audioFlags.baseFrequency, "base-freq", d.BaseFrequency, "center frequency in Hz")
	f.IntVar(&audioFlags.steps, "steps", d.Steps, "number of rhythm steps")
	f.Float64Var(&audioFlags.probability, "probability", d.OnsetProbability, "chance that a step is an onset (0-1)")
	f.IntVar(&audioFlags.toneMs, "tone-ms", d.ToneDurationMs, "tone length in milliseconds")
	f.IntVar(&audioFlags.lengthMs, "length-ms", d.LengthMs, "drone length in milliseconds")
	f.Float64Var(&audioFlags.detune, "detune", d.Detune, "detune range in octaves")
	f.Float64Var(&audioFlags.amplitude, "amplitude", d.Amplitude, "tone amplitude as a fraction of full scale")
	f.IntVar(&audioFlags.sampleRate, "sample-rate", d.SampleRate, "output sample rate in Hz")
	f.StringVar(&audioFlags.offsetMode, "offset-mode", d.OffsetMode, "where tones are mixed: spread or literal")
}

func addAnimationFlags(cmd *cobra.Command) {
	d := config.Default().Animation
	f := cmd.Flags()
	f.IntVar(&animFlags.width, "width", d.Width, "canvas width")
	f.IntVar(&animFlags.height, "height", d.Height, "canvas height")
	f.IntVar(&animFlags.fps, "fps", d.FPS, "ticks per second")
	f.IntVar(&animFlags.shapes, "shapes", d.Shapes, "shapes drawn per tick")
	f.BoolVar(&animFlags.headless, "headless", d.Headless, "run without a window")
	f.IntVar(&animFlags.frames, "frames", d.Frames, "stop after this many frames (0 runs until closed)")
	f.StringVar(&animFlags.snapshot, "snapshot", d.Snapshot, "save the last frame as PNG (relative to --output)")
	f.BoolVar(&animFlags.playDrone, "play-drone", d.PlayDrone, "loop the exported drone while the window is open")
	f.Float64Var(&animFlags.volume, "volume", d.Volume, "drone playback volume (0-1)")
	f.BoolVar(&animFlags.debug, "debug", d.Debug, "show FPS and tick overlay")
	f.IntVar(&animFlags.scale, "scale", d.Scale, "window scale factor")
}

func applyAudioFlags(cmd *cobra.Command, cfg *config.Config) {
	f := cmd.Flags()
	a := &cfg.Audio
	if f.Changed("base-freq") {
		a.BaseFrequency = audioFlags.baseFrequency
	}
	if f.Changed("steps") {
		a.Steps = audioFlags.steps
	}
	if f.Changed("probability") {
		a.OnsetProbability = audioFlags.probability
	}
	if f.Changed("tone-ms") {
		a.ToneDurationMs = audioFlags.toneMs
	}
	if f.Changed("length-ms") {
		a.LengthMs = audioFlags.lengthMs
	}
	if f.Changed("detune") {
		a.Detune = audioFlags.detune
	}
	if f.Changed("amplitude") {
		a.Amplitude = audioFlags.amplitude
	}
	if f.Changed("sample-rate") {
		a.SampleRate = audioFlags.sampleRate
	}
	if f.Changed("offset-mode") {
		a.OffsetMode = audioFlags.offsetMode
	}
}

func applyAnimationFlags(cmd *cobra.Command, cfg *config.Config) {
	f := cmd.Flags()
	a := &cfg.Animation
	if f.Changed("width") {
		a.Width = animFlags.width
	}
	if f.Changed("height") {
		a.Height = animFlags.height
	}
	if f.Changed("fps") {
		a.FPS = animFlags.fps
	}
	if f.Changed("shapes") {
		a.Shapes = animFlags.shapes
	}
	if f.Changed("headless") {
		a.Headless = animFlags.headless
	}
	if f.Changed("frames") {
		a.Frames = animFlags.frames
	}
	if f.Changed("snapshot") {
		a.Snapshot = animFlags.snapshot
	}
	if f.Changed("play-drone") {
		a.PlayDrone = animFlags.playDrone
	}
	if f.Changed("volume") {
		a.Volume = animFlags.volume
	}
	if f.Changed("debug") {
		a.Debug = animFlags.debug
	}
	if f.Changed("scale") {
		a.Scale = animFlags.scale
	}
}
