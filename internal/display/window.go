// Package display hosts the shape animation in an ebiten window, optionally
// looping the exported drone underneath it.
package display

import (
	"context"
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/Distortions81/ambient/internal/animation"
)

// InitError reports that the window or graphics context could not be
// created. It is fatal to the animation stage.
type InitError struct {
	Err error
}

func (e *InitError) Error() string { return fmt.Sprintf("display init: %v", e.Err) }

func (e *InitError) Unwrap() error { return e.Err }

// Window runs an animation loop in a desktop window at FPS ticks per second.
type Window struct {
	Title string
	Scale int
	FPS   int
	Debug bool

	// DronePath, when set, is decoded and looped while the window is open.
	DronePath string
	Volume    float64
}

// StopSignal fires when ctx is done, the window close button is pressed or
// Escape is hit.
func (w Window) StopSignal(ctx context.Context) animation.StopSignal {
	return animation.StopFunc(func() bool {
		return ctx.Err() != nil ||
			ebiten.IsWindowBeingClosed() ||
			inpututil.IsKeyJustPressed(ebiten.KeyEscape)
	})
}

// Drive blocks on the ebiten main loop until loop stops.
func (w Window) Drive(ctx context.Context, loop *animation.Loop, canvas *animation.RasterCanvas) error {
	b := canvas.Bounds()
	scale := w.Scale
	if scale <= 0 {
		scale = 1
	}
	fps := w.FPS
	if fps <= 0 {
		fps = animation.DefaultFPS
	}

	g := &game{
		loop:   loop,
		canvas: canvas,
		width:  b.Dx(),
		height: b.Dy(),
		debug:  w.Debug,
		volume: clampVolume(w.Volume),
	}
	if w.DronePath != "" {
		player, err := newDronePlayer(w.DronePath, g.volume)
		if err != nil {
			log.Printf("drone playback disabled: %v", err)
		} else {
			g.player = player
			defer player.Close()
		}
	}

	ebiten.SetWindowSize(g.width*scale, g.height*scale)
	ebiten.SetWindowTitle(w.Title)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(fps)
	if err := ebiten.RunGame(g); err != nil {
		return &InitError{Err: err}
	}
	return nil
}

// game adapts an animation loop to ebiten.Game.
type game struct {
	loop          *animation.Loop
	canvas        *animation.RasterCanvas
	width, height int
	debug         bool

	player *audio.Player
	volume float64
}

// Update runs one animation tick and ends the game once the loop stops.
func (g *game) Update() error {
	g.handleDebugControls()
	if !g.loop.Tick() {
		return ebiten.Termination
	}
	return nil
}

// handleDebugControls toggles the overlay and adjusts drone volume.
func (g *game) handleDebugControls() {
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.debug = !g.debug
	}
	if g.player == nil {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyKPSubtract) {
		g.adjustVolume(-volumeStep)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyKPAdd) {
		g.adjustVolume(volumeStep)
	}
}

func (g *game) adjustVolume(delta float64) {
	g.volume = clampVolume(g.volume + delta)
	g.player.SetVolume(g.volume)
}
