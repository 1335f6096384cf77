package render

import (
	"landscape/internal/atmosphere"
	"landscape/internal/color"
	"landscape/internal/noise"
	"landscape/internal/terrain"
)

// Cell is one rendered terminal cell.
type Cell struct {
	Ch     rune
	FG, BG color.RGB
}

// Grid is the rendered scene, row-major with row 0 at the bottom of the
// landscape. Presentation (top-down terminals) reverses row order.
type Grid [][]Cell

// Compose resolves every screen pixel into a colored cell: sky texture for
// sentinel pixels, biome texture plus the atmosphere filter for terrain,
// and finally the tree overlay.
func Compose(buf *DepthBuffer, heights *terrain.HeightMap, biomes *terrain.BiomeMap,
	trees *terrain.TreeMap, atmo *atmosphere.Atmosphere, seed int64) Grid {

	width, height, depth := buf.Width, buf.Height, buf.Depth
	grid := make(Grid, height)
	for y := range grid {
		grid[y] = make([]Cell, width)
	}

	for y := height - 1; y >= 0; y-- {
		ny := float64(y) / float64(height)
		for x := 0; x < width; x++ {
			if buf.IsSky(x, y) {
				ch, fg, bg := atmo.Sky.Sample(float64(x), float64(y), ny, seed)
				grid[y][x] = Cell{ch, fg, bg}
				continue
			}

			z := buf.At(x, y)
			cell := terrainCell(x, z, heights, biomes, seed)
			depthFrac := float64(z) / float64(depth)
			ch, fg, bg := atmo.Filter(x, y, float64(z), ny, depthFrac, cell.Ch, cell.FG, cell.BG, seed)
			grid[y][x] = Cell{ch, fg, bg}
		}
	}

	overlayTrees(grid, buf, trees, seed)
	return grid
}

// terrainCell samples both dominant biomes at (x, z) and blends them.
// Backgrounds blend continuously; the character and foreground snap to
// whichever biome dominates.
func terrainCell(x, z int, heights *terrain.HeightMap, biomes *terrain.BiomeMap, seed int64) Cell {
	s := biomes.At(x, z)
	h := heights.At(x, z)

	// Each biome sees the height normalized into its own vertical band.
	y1 := (h - s.Primary.BaseHeight) / s.Primary.HeightScale
	y2 := (h - s.Secondary.BaseHeight) / s.Secondary.HeightScale

	c1, f1, b1 := s.Primary.Surface.Sample(float64(x), float64(z), y1, seed)
	c2, f2, b2 := s.Secondary.Surface.Sample(float64(x), float64(z), y2, seed)

	bg := color.Lerp(b1, b2, s.Blend)
	ch, fg := c1, f1
	if s.Blend >= 0.5 {
		ch, fg = c2, f2
	}
	return Cell{ch, fg, bg}
}

// overlayTrees draws a tree glyph one row above each treed column base and
// darkens the cell beneath to suggest trunk shadow. Foreground color varies
// with two independent noise fields (hue lean and brightness) and fades
// with depth.
func overlayTrees(grid Grid, buf *DepthBuffer, trees *terrain.TreeMap, seed int64) {
	height := buf.Height
	for y := height - 1; y >= 0; y-- {
		for x := 0; x < buf.Width; x++ {
			if buf.IsSky(x, y) {
				continue
			}
			z := buf.At(x, y)
			if !trees.At(x, z) {
				continue
			}

			t := float64(z) / float64(buf.Depth)
			hueShift := noise.Value(float64(x), float64(z), 1234)*40 - 20
			brightVar := noise.Value(float64(x), float64(z), 5678)*100 - 200*t
			fg := color.Clamped(
				int(30+t*40+hueShift*0.5),
				int(180+t*50+brightVar),
				int(20+t*30-hueShift*0.3),
			)

			above := y + 1
			if above > height-1 {
				above = height - 1
			}
			grid[y][x].BG = color.Scale(grid[y][x].BG, 0.6)
			ch := noise.Choice(terrain.TreeChars, int64(x), int64(z), seed)
			grid[above][x] = Cell{ch, fg, grid[above][x].BG}
		}
	}
}
