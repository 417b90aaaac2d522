package animation

import (
	"context"
	"image"
	"math/rand"
	"testing"
	"time"

	"github.com/Distortions81/ambient/internal/shapes"
)

// recordingCanvas logs calls instead of drawing.
type recordingCanvas struct {
	bounds  image.Rectangle
	calls   []string
	drawn   []shapes.Descriptor
	present int
}

func (c *recordingCanvas) Bounds() image.Rectangle { return c.bounds }
func (c *recordingCanvas) Clear()                  { c.calls = append(c.calls, "clear") }
func (c *recordingCanvas) Present()                { c.calls = append(c.calls, "present"); c.present++ }
func (c *recordingCanvas) DrawShape(d shapes.Descriptor) {
	c.calls = append(c.calls, "draw")
	c.drawn = append(c.drawn, d)
}

func newRecordingCanvas() *recordingCanvas {
	return &recordingCanvas{bounds: image.Rect(0, 0, DefaultWidth, DefaultHeight)}
}

func defaultOptions() Options {
	return Options{Shapes: DefaultShapes, Palette: shapes.DefaultPalette}
}

func TestTickOrder(t *testing.T) {
	c := newRecordingCanvas()
	loop := NewLoop(c, nil, rand.New(rand.NewSource(1)), Options{Shapes: 2, Palette: shapes.DefaultPalette})
	if !loop.Tick() {
		t.Fatal("Tick() = false on a running loop")
	}
	want := []string{"clear", "draw", "draw", "present"}
	if len(c.calls) != len(want) {
		t.Fatalf("calls = %v, want %v", c.calls, want)
	}
	for i := range want {
		if c.calls[i] != want[i] {
			t.Errorf("call[%d] = %q, want %q", i, c.calls[i], want[i])
		}
	}
	if loop.State() != Running {
		t.Errorf("State() = %v, want running", loop.State())
	}
}

func TestStopAtFirstTick(t *testing.T) {
	c := newRecordingCanvas()
	loop := NewLoop(c, StopFunc(func() bool { return true }), rand.New(rand.NewSource(1)), defaultOptions())
	if loop.State() != Running {
		t.Fatalf("initial State() = %v, want running", loop.State())
	}

	iterations := 0
	for loop.Tick() {
		iterations++
	}
	if loop.Ticks() != 1 {
		t.Errorf("Ticks() = %d, want 1", loop.Ticks())
	}
	if iterations != 0 || loop.ShapesDrawn() != 0 || len(c.calls) != 0 {
		t.Errorf("stopped loop drew: iterations=%d shapes=%d calls=%v", iterations, loop.ShapesDrawn(), c.calls)
	}
	if loop.State() != Stopped {
		t.Errorf("State() = %v, want stopped", loop.State())
	}
	// Stopped is terminal.
	if loop.Tick() || loop.Ticks() != 1 {
		t.Error("Tick after stop did work")
	}
}

// The canvas keeps its cleared state when the loop stops first.
func TestStopBeforeFirstTickLeavesCanvasCleared(t *testing.T) {
	canvas := NewRasterCanvas(DefaultWidth, DefaultHeight, Black)
	loop := NewLoop(canvas, StopFunc(func() bool { return true }), rand.New(rand.NewSource(3)), defaultOptions())
	for loop.Tick() {
	}
	if loop.Ticks() != 1 {
		t.Errorf("Ticks() = %d, want 1", loop.Ticks())
	}
	if !canvas.IsClear() {
		t.Error("canvas was drawn on")
	}
	if canvas.Presented() != 0 {
		t.Errorf("Presented() = %d, want 0", canvas.Presented())
	}
}

func TestTickLimit(t *testing.T) {
	c := newRecordingCanvas()
	loop := NewLoop(c, TickLimit(3), rand.New(rand.NewSource(1)), defaultOptions())
	for loop.Tick() {
	}
	if loop.Ticks() != 4 {
		t.Errorf("Ticks() = %d, want 4", loop.Ticks())
	}
	if c.present != 3 {
		t.Errorf("presented %d frames, want 3", c.present)
	}
	if loop.ShapesDrawn() != 3*DefaultShapes || len(c.drawn) != 3*DefaultShapes {
		t.Errorf("ShapesDrawn() = %d, want %d", loop.ShapesDrawn(), 3*DefaultShapes)
	}
	for _, d := range c.drawn {
		if !(image.Point{X: d.X, Y: d.Y}).In(c.bounds) {
			t.Errorf("shape at (%d,%d) outside canvas", d.X, d.Y)
		}
	}
}

func TestRequestStop(t *testing.T) {
	loop := NewLoop(newRecordingCanvas(), nil, rand.New(rand.NewSource(1)), defaultOptions())
	if !loop.Tick() {
		t.Fatal("first tick stopped")
	}
	loop.RequestStop()
	if loop.Tick() {
		t.Error("tick after RequestStop kept running")
	}
	if loop.State() != Stopped || loop.Ticks() != 2 {
		t.Errorf("State()=%v Ticks()=%d, want stopped after 2", loop.State(), loop.Ticks())
	}
}

func TestAnyOf(t *testing.T) {
	never := StopFunc(func() bool { return false })
	always := StopFunc(func() bool { return true })
	if AnyOf(never, nil).Stopped() {
		t.Error("AnyOf(never, nil) fired")
	}
	if !AnyOf(never, always).Stopped() {
		t.Error("AnyOf(never, always) did not fire")
	}
	ctx, cancel := context.WithCancel(context.Background())
	sig := ContextSignal(ctx)
	if sig.Stopped() {
		t.Error("ContextSignal fired before cancel")
	}
	cancel()
	if !sig.Stopped() {
		t.Error("ContextSignal did not fire after cancel")
	}
}

func TestRunHeadlessPacesTicks(t *testing.T) {
	c := newRecordingCanvas()
	loop := NewLoop(c, TickLimit(5), rand.New(rand.NewSource(1)), defaultOptions())
	interval := 5 * time.Millisecond
	start := time.Now()
	RunHeadless(context.Background(), loop, interval)
	elapsed := time.Since(start)

	if loop.State() != Stopped || c.present != 5 {
		t.Errorf("State()=%v presented=%d, want stopped after 5 frames", loop.State(), c.present)
	}
	// One wait follows every successful tick.
	if elapsed < 4*interval {
		t.Errorf("ran 5 frames in %v, want at least %v", elapsed, 4*interval)
	}
}

func TestRunHeadlessStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	loop := NewLoop(newRecordingCanvas(), nil, rand.New(rand.NewSource(1)), defaultOptions())

	done := make(chan struct{})
	go func() {
		RunHeadless(ctx, loop, time.Millisecond)
		close(done)
	}()
	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("RunHeadless did not return after cancel")
	}
	if loop.State() != Stopped {
		t.Errorf("State() = %v, want stopped", loop.State())
	}
}

func TestFrameInterval(t *testing.T) {
	if got := FrameInterval(30); got != time.Second/30 {
		t.Errorf("FrameInterval(30) = %v", got)
	}
	if got := FrameInterval(0); got != time.Second/DefaultFPS {
		t.Errorf("FrameInterval(0) = %v, want default", got)
	}
}

func TestStateString(t *testing.T) {
	if Running.String() != "running" || Stopped.String() != "stopped" || State(9).String() != "unknown" {
		t.Error("unexpected State strings")
	}
}
