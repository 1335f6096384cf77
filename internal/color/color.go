// Package color holds the 24-bit cell colors and gradients used by biome
// surfaces, skies, and the atmosphere filter.
package color

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// RGB is one 24-bit color channel triple. Grading arithmetic happens in int
// space and is clamped back into range on the way out.
type RGB struct {
	R, G, B uint8
}

// Hex parses a CSS-style "#rrggbb" literal. It panics on a malformed
// literal; it is meant for the static preset tables only.
func Hex(s string) RGB {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(fmt.Sprintf("bad color literal %q: %v", s, err))
	}
	r, g, b := c.RGB255()
	return RGB{r, g, b}
}

// Tcell converts to a tcell truecolor value.
func (c RGB) Tcell() tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func (c RGB) colorful() colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

// Lerp interpolates between two colors in RGB space. t is clamped to [0, 1].
func Lerp(a, b RGB, t float64) RGB {
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	r, g, bb := a.colorful().BlendRgb(b.colorful(), t).RGB255()
	return RGB{r, g, bb}
}

// Scale multiplies every channel by f, clamping to range.
func Scale(c RGB, f float64) RGB {
	return Clamped(int(float64(c.R)*f), int(float64(c.G)*f), int(float64(c.B)*f))
}

// Clamped builds an RGB from unbounded per-channel values.
func Clamped(r, g, b int) RGB {
	return RGB{clamp8(r), clamp8(g), clamp8(b)}
}

func clamp8(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// Gradient is an ordered list of color stops sampled by a normalized value:
// 0 maps to the first stop, 1 to the last, with linear blending between
// neighbors. A single-stop gradient is a constant color.
type Gradient struct {
	stops []RGB
}

// NewGradient builds a gradient from hex literals, first stop to last.
func NewGradient(hex ...string) Gradient {
	stops := make([]RGB, len(hex))
	for i, h := range hex {
		stops[i] = Hex(h)
	}
	return Gradient{stops: stops}
}

// At samples the gradient at t, clamped to [0, 1].
func (g Gradient) At(t float64) RGB {
	if len(g.stops) == 0 {
		return RGB{}
	}
	if len(g.stops) == 1 {
		return g.stops[0]
	}
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	pos := t * float64(len(g.stops)-1)
	i := int(pos)
	if i >= len(g.stops)-1 {
		return g.stops[len(g.stops)-1]
	}
	return Lerp(g.stops[i], g.stops[i+1], pos-float64(i))
}
