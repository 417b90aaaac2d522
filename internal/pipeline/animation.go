package pipeline

import (
	"context"
	"fmt"
	"image"
	"image/png"
	"log"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/Distortions81/ambient/internal/animation"
	"github.com/Distortions81/ambient/internal/config"
	"github.com/Distortions81/ambient/internal/manifest"
)

// Driver hosts an animation loop until it stops.
type Driver interface {
	// StopSignal returns the host's termination signal for ctx.
	StopSignal(ctx context.Context) animation.StopSignal
	// Drive ticks loop and shows canvas until the loop stops.
	Drive(ctx context.Context, loop *animation.Loop, canvas *animation.RasterCanvas) error
}

// Headless ticks the loop on a timer with no window.
type Headless struct {
	Interval time.Duration
}

// StopSignal fires once ctx is done.
func (h Headless) StopSignal(ctx context.Context) animation.StopSignal {
	return animation.ContextSignal(ctx)
}

// Drive ticks loop every Interval until it stops.
func (h Headless) Drive(ctx context.Context, loop *animation.Loop, _ *animation.RasterCanvas) error {
	interval := h.Interval
	if interval <= 0 {
		interval = animation.FrameInterval(animation.DefaultFPS)
	}
	animation.RunHeadless(ctx, loop, interval)
	return nil
}

// AnimationResult is the outcome of the animation stage.
type AnimationResult struct {
	State       animation.State
	Ticks       int
	ShapesDrawn int
	Frames      int
	Snapshot    string
}

// Animate runs the shape animation under driver, optionally saves the last
// frame as PNG and records the session in m.
func Animate(ctx context.Context, cfg *config.Config, m *manifest.Manifest, driver Driver) (*AnimationResult, error) {
	a := cfg.Animation
	canvas := animation.NewRasterCanvas(a.Width, a.Height, animation.Black)

	stop := driver.StopSignal(ctx)
	if a.Frames > 0 {
		stop = animation.AnyOf(stop, animation.TickLimit(a.Frames))
	}
	// Offset from the drone seed so the two streams differ.
	rng := rand.New(rand.NewSource(m.Seed + 1))
	loop := animation.NewLoop(canvas, stop, rng, cfg.LoopOptions())

	start := time.Now()
	if err := driver.Drive(ctx, loop, canvas); err != nil {
		return nil, err
	}
	res := &AnimationResult{
		State:       loop.State(),
		Ticks:       loop.Ticks(),
		ShapesDrawn: loop.ShapesDrawn(),
		Frames:      canvas.Presented(),
	}
	log.Printf("animation: %s after %d ticks, %d shapes in %v",
		res.State, res.Ticks, res.ShapesDrawn, time.Since(start).Round(time.Millisecond))

	if a.Snapshot != "" {
		path := a.Snapshot
		if !filepath.IsAbs(path) {
			path = filepath.Join(cfg.OutputDir, path)
		}
		if err := writePNG(path, canvas.Frame()); err != nil {
			return nil, err
		}
		res.Snapshot = path
	}

	m.Animation = &manifest.Animation{
		Width:       a.Width,
		Height:      a.Height,
		FPS:         a.FPS,
		Headless:    a.Headless,
		Ticks:       res.Ticks,
		ShapesDrawn: res.ShapesDrawn,
		Snapshot:    a.Snapshot,
	}
	if err := m.Write(cfg.OutputDir); err != nil {
		return nil, err
	}
	return res, nil
}

func writePNG(path string, img image.Image) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create snapshot: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("close snapshot: %w", cerr)
		}
	}()
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	return nil
}
