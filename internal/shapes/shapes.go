// Package shapes samples the randomized translucent discs drawn by the
// generative animation.
package shapes

import (
	"image"
	"image/color"
	"math"
	"math/rand"
)

// Sampling ranges. Radius is continuous, alpha is an integer range.
const (
	MinRadius   = 10.0
	MaxRadius   = 50.0
	MaxRotation = 360.0
	MinAlpha    = 50
	MaxAlpha    = 200
)

// Palette holds the two colors a shape can take.
type Palette [2]color.NRGBA

// DefaultPalette is half-transparent blue and green.
var DefaultPalette = Palette{
	{R: 0, G: 0, B: 255, A: 128},
	{R: 0, G: 255, B: 0, A: 128},
}

// Contains reports whether c is one of the palette entries.
func (p Palette) Contains(c color.NRGBA) bool {
	return c == p[0] || c == p[1]
}

// Descriptor is one shape to composite. It is created each tick and
// discarded after drawing.
type Descriptor struct {
	X, Y     int     // top-left of the rotated shape's bounding box
	Radius   float64 // [MinRadius, MaxRadius]
	Rotation float64 // degrees, [0, MaxRotation)
	Alpha    uint8   // [MinAlpha, MaxAlpha]
	Color    color.NRGBA
}

// Sample draws one descriptor with its position uniform over bounds.
func Sample(rng *rand.Rand, bounds image.Rectangle, p Palette) Descriptor {
	d := Descriptor{
		X:        bounds.Min.X + intn(rng, bounds.Dx()),
		Y:        bounds.Min.Y + intn(rng, bounds.Dy()),
		Radius:   MinRadius + (MaxRadius-MinRadius)*rng.Float64(),
		Rotation: MaxRotation * rng.Float64(),
		Alpha:    uint8(MinAlpha + rng.Intn(MaxAlpha-MinAlpha+1)),
	}
	if rng.Float64() < 0.5 {
		d.Color = p[0]
	} else {
		d.Color = p[1]
	}
	return d
}

func intn(rng *rand.Rand, n int) int {
	if n <= 0 {
		return 0
	}
	return rng.Intn(n)
}

// Extent returns the side of the square bounding box of the shape's 2r x 2r
// sprite after rotation.
func (d Descriptor) Extent() float64 {
	theta := d.Rotation * math.Pi / 180
	side := 2 * d.Radius
	return side * (math.Abs(math.Cos(theta)) + math.Abs(math.Sin(theta)))
}

// Center returns the disc center once the rotated sprite is blitted at (X, Y).
func (d Descriptor) Center() (float64, float64) {
	half := d.Extent() / 2
	return float64(d.X) + half, float64(d.Y) + half
}

// Fill returns the color to composite with: the palette color whose alpha is
// scaled by the descriptor's alpha.
func (d Descriptor) Fill() color.NRGBA {
	c := d.Color
	c.A = uint8(uint16(c.A) * uint16(d.Alpha) / 255)
	return c
}
