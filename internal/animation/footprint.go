package animation

import "image"

type gridOffset struct {
	dx int
	dy int
}

// footprintCache memoizes disc footprints by integer radius. Radii are
// bounded by the sampler so the cache stays small.
type footprintCache map[int][]gridOffset

func (c footprintCache) get(radius int) []gridOffset {
	if fp, ok := c[radius]; ok {
		return fp
	}
	fp := precomputeDiscFootprint(radius)
	c[radius] = fp
	return fp
}

// precomputeDiscFootprint lists the cell offsets covered by a filled disc.
func precomputeDiscFootprint(radius int) []gridOffset {
	if radius < 0 {
		return nil
	}
	footprint := make([]gridOffset, 0, (2*radius+1)*(2*radius+1))
	r2 := radius * radius
	for y := -radius; y <= radius; y++ {
		for x := -radius; x <= radius; x++ {
			if x*x+y*y <= r2 {
				footprint = append(footprint, gridOffset{dx: x, dy: y})
			}
		}
	}
	return footprint
}

// discMask stamps a footprint centered at (cx, cy) into an alpha mask.
func discMask(fp []gridOffset, radius, cx, cy int) *image.Alpha {
	mask := image.NewAlpha(image.Rect(cx-radius, cy-radius, cx+radius+1, cy+radius+1))
	for _, o := range fp {
		mask.Pix[mask.PixOffset(cx+o.dx, cy+o.dy)] = 0xff
	}
	return mask
}
