package display

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// Draw shows the last presented canvas frame.
func (g *game) Draw(screen *ebiten.Image) {
	pixels := g.canvas.Pix()
	if len(pixels) == g.width*g.height*4 {
		screen.WritePixels(pixels)
	}
	if g.debug {
		ebitenutil.DebugPrint(screen, debugText(ebiten.ActualFPS(), ebiten.ActualTPS(),
			g.loop.Ticks(), g.loop.ShapesDrawn(), g.volume, g.player != nil))
	}
}

// Layout reports the logical screen size used by Ebiten.
func (g *game) Layout(_, _ int) (int, int) { return g.width, g.height }

func debugText(fps, tps float64, ticks, shapes int, volume float64, playing bool) string {
	if tps < 0 {
		tps = 0
	}
	msg := fmt.Sprintf("FPS: %.1f\nTPS: %.1f\nTicks: %d\nShapes: %d", fps, tps, ticks, shapes)
	if playing {
		msg += fmt.Sprintf("\nVolume: %.0f%% (+/-)", volume*100)
	}
	return msg
}
