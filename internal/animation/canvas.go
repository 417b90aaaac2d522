package animation

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/Distortions81/ambient/internal/shapes"
)

// Canvas is the drawing surface the loop composites onto.
type Canvas interface {
	Bounds() image.Rectangle
	Clear()
	DrawShape(d shapes.Descriptor)
	Present()
}

// RasterCanvas is a double-buffered software Canvas. Shapes are composited
// onto the back buffer with source-over blending; Present copies it to the
// front buffer that hosts display.
type RasterCanvas struct {
	back, front *image.RGBA
	background  color.RGBA
	footprints  footprintCache
	presented   int
}

// NewRasterCanvas returns a width x height canvas filled with bg.
func NewRasterCanvas(width, height int, bg color.RGBA) *RasterCanvas {
	r := image.Rect(0, 0, width, height)
	c := &RasterCanvas{
		back:       image.NewRGBA(r),
		front:      image.NewRGBA(r),
		background: bg,
		footprints: footprintCache{},
	}
	c.Clear()
	copy(c.front.Pix, c.back.Pix)
	return c
}

// Bounds returns the canvas rectangle.
func (c *RasterCanvas) Bounds() image.Rectangle { return c.back.Bounds() }

// Background returns the clear color.
func (c *RasterCanvas) Background() color.RGBA { return c.background }

// Clear fills the back buffer with the background color.
func (c *RasterCanvas) Clear() {
	draw.Draw(c.back, c.back.Bounds(), &image.Uniform{C: c.background}, image.Point{}, draw.Src)
}

// DrawShape alpha-blends a filled disc for d onto the back buffer.
func (c *RasterCanvas) DrawShape(d shapes.Descriptor) {
	fill := d.Fill()
	if fill.A == 0 {
		return
	}
	fx, fy := d.Center()
	cx, cy := int(math.Round(fx)), int(math.Round(fy))
	radius := int(math.Round(d.Radius))
	mask := discMask(c.footprints.get(radius), radius, cx, cy)
	r := mask.Bounds().Intersect(c.back.Bounds())
	if r.Empty() {
		return
	}
	draw.DrawMask(c.back, r, &image.Uniform{C: fill}, image.Point{}, mask, r.Min, draw.Over)
}

// Present publishes the back buffer as the current frame.
func (c *RasterCanvas) Present() {
	copy(c.front.Pix, c.back.Pix)
	c.presented++
}

// Frame returns the most recently presented frame. Callers must not modify it.
func (c *RasterCanvas) Frame() *image.RGBA { return c.front }

// Pix returns the presented frame as RGBA bytes, row-major.
func (c *RasterCanvas) Pix() []byte { return c.front.Pix }

// Presented returns how many frames have been presented.
func (c *RasterCanvas) Presented() int { return c.presented }

// IsClear reports whether both buffers hold only the background color.
func (c *RasterCanvas) IsClear() bool {
	return isFilled(c.front, c.background) && isFilled(c.back, c.background)
}

func isFilled(img *image.RGBA, bg color.RGBA) bool {
	for i := 0; i < len(img.Pix); i += 4 {
		if img.Pix[i] != bg.R || img.Pix[i+1] != bg.G || img.Pix[i+2] != bg.B || img.Pix[i+3] != bg.A {
			return false
		}
	}
	return true
}
