// Package render projects generated maps into screen space and composites
// them into a grid of colored terminal cells.
package render

import (
	"math"

	"landscape/internal/terrain"
)

// Projection shape constants. Far terrain compresses vertically, near
// terrain expands, and the oblique offset drops toward the screen edges to
// hint at a curved horizon.
const (
	backgroundShrink = 2.0
	foregroundShrink = 0.5
	spherical        = 0.2
)

// DepthBuffer records, per screen pixel, the nearest depth slice whose
// projected terrain column covers it. Pixels above all terrain hold the sky
// sentinel (== Depth).
type DepthBuffer struct {
	Width, Height, Depth int
	z                    []int
}

// At returns the depth slice covering screen pixel (x, y).
func (b *DepthBuffer) At(x, y int) int { return b.z[y*b.Width+x] }

// IsSky reports whether screen pixel (x, y) is above all terrain.
func (b *DepthBuffer) IsSky(x, y int) bool { return b.At(x, y) >= b.Depth }

// Project rasterizes the height map into a screen-space depth buffer of
// screenHeight rows. horizon sets how much each depth step lifts the
// terrain on screen (0 flat front view, 1 steep oblique).
//
// Depth slices are walked far to near, each column overwriting whatever
// farther slices wrote below it. That iteration order is the entire
// occlusion algorithm: nearer writes always win, so no depth comparison is
// needed.
func Project(heights *terrain.HeightMap, screenHeight int, horizon float64) *DepthBuffer {
	width, depth := heights.Width, heights.Depth

	buf := &DepthBuffer{
		Width:  width,
		Height: screenHeight,
		Depth:  depth,
		z:      make([]int, width*screenHeight),
	}
	for i := range buf.z {
		buf.z[i] = depth // sky sentinel
	}

	oblique := float64(screenHeight) * horizon / float64(depth)
	maxHeight := float64(screenHeight / 2)

	for z := depth - 1; z >= 0; z-- {
		zf := float64(z) / float64(depth)
		projScale := 1 / math.Pow(zf+1, backgroundShrink)
		projScale *= math.Pow(zf, foregroundShrink)

		for x := 0; x < width; x++ {
			h := heights.At(x, z)
			if h <= 0 {
				continue // a flat column casts no pixels
			}

			dx := (float64(x) - float64(width)/2) / (float64(width) / 2)
			projOffset := float64(z) * oblique * (1 - spherical*dx*dx)

			columnTop := int(h*maxHeight*projScale + projOffset)
			if columnTop > screenHeight {
				columnTop = screenHeight
			}
			for y := 0; y < columnTop; y++ {
				buf.z[y*width+x] = z
			}
		}
	}

	return buf
}
