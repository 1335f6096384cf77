// Package texture resolves surface cells for biomes and skies: a gradient
// background plus sparse decorative character overlays.
package texture

import (
	"landscape/internal/color"
	"landscape/internal/noise"
)

// Detail is one decorative overlay: candidate glyphs thresholded into the
// scene by a noise field, colored from the detail's own gradient and blended
// toward the background.
type Detail struct {
	Name      string
	Chars     []rune
	Frequency float64
	Density   float64 // occurrence threshold in [0,1]
	Colors    color.Gradient
	Blend     float64 // how much background to mix into the glyph color
}

// Texture maps a normalized height to a background color and places the
// first matching detail on top of it.
type Texture struct {
	Colors  color.Gradient
	Details []Detail
}

// Sample resolves the cell at (x, z) with normalized height y. When no
// detail fires the cell is blank and the foreground matches the background.
func (t Texture) Sample(x, z, y float64, seed int64) (ch rune, fg, bg color.RGB) {
	bg = t.Colors.At(y)
	fg = bg
	ch = ' '
	for i, d := range t.Details {
		p := noise.Value(x*4*d.Frequency, z*d.Frequency, seed*int64(i))
		if p <= d.Density {
			ch = noise.Choice(d.Chars, int64(1024*p))
			fg = d.Colors.At(noise.Value(x*4*d.Frequency, z*4*d.Frequency, seed+100))
			fg = color.Lerp(fg, bg, d.Blend)
			break
		}
	}
	return ch, fg, bg
}
