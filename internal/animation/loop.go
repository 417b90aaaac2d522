// Package animation drives the generative shape animation: a tick function
// that samples translucent discs and composites them onto a Canvas, plus a
// headless frame-rate driver. Window hosting lives in package display.
package animation

import (
	"context"
	"image/color"
	"math/rand"
	"time"

	"github.com/Distortions81/ambient/internal/shapes"
)

// Animation defaults.
const (
	DefaultWidth  = 800
	DefaultHeight = 600
	DefaultShapes = 10
	DefaultFPS    = 30
	DefaultTitle  = "Generative Animation"
)

// Black is the clear color of the canvas.
var Black = color.RGBA{A: 0xff}

// State is the lifecycle state of a Loop.
type State int

const (
	Running State = iota
	Stopped
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Stopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// Options configures what a Loop draws each tick.
type Options struct {
	Shapes  int
	Palette shapes.Palette
}

// Loop is the per-tick animation state machine. It is not safe for
// concurrent use; hosts call Tick from a single goroutine.
type Loop struct {
	canvas Canvas
	stop   StopSignal
	rng    *rand.Rand
	opts   Options

	state     State
	requested bool
	ticks     int
	drawn     int
}

// NewLoop returns a Running loop. A nil stop signal never fires.
func NewLoop(canvas Canvas, stop StopSignal, rng *rand.Rand, opts Options) *Loop {
	if opts.Shapes < 0 {
		opts.Shapes = 0
	}
	return &Loop{canvas: canvas, stop: stop, rng: rng, opts: opts}
}

// Tick runs one frame: poll the stop signal, clear, draw, present. It
// returns false once the loop has stopped; later calls do nothing.
func (l *Loop) Tick() bool {
	if l.state == Stopped {
		return false
	}
	l.ticks++
	if l.requested || (l.stop != nil && l.stop.Stopped()) {
		l.state = Stopped
		return false
	}

	l.canvas.Clear()
	bounds := l.canvas.Bounds()
	for i := 0; i < l.opts.Shapes; i++ {
		l.canvas.DrawShape(shapes.Sample(l.rng, bounds, l.opts.Palette))
		l.drawn++
	}
	l.canvas.Present()
	return true
}

// RequestStop makes the next Tick stop the loop.
func (l *Loop) RequestStop() { l.requested = true }

// State returns the current state.
func (l *Loop) State() State { return l.state }

// Ticks returns how many ticks have executed, including the one that stopped
// the loop.
func (l *Loop) Ticks() int { return l.ticks }

// ShapesDrawn returns the total number of shapes composited.
func (l *Loop) ShapesDrawn() int { return l.drawn }

// FrameInterval converts a frame rate to the time between ticks.
func FrameInterval(fps int) time.Duration {
	if fps <= 0 {
		fps = DefaultFPS
	}
	return time.Second / time.Duration(fps)
}

// RunHeadless ticks loop every interval until it stops. Cancelling ctx asks
// the loop to stop at the next tick boundary.
func RunHeadless(ctx context.Context, loop *Loop, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	done := ctx.Done()
	for loop.Tick() {
		select {
		case <-done:
			loop.RequestStop()
			done = nil
		case <-ticker.C:
		}
	}
}
