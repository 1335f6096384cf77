package terrain

import (
	"math"
	"sort"

	"landscape/internal/noise"
)

// BiomeSample is one biome-map cell: the two strongest biomes at that point
// and how far to blend between them. Blend 0 is pure primary; blend near 1
// means the two are nearly tied.
type BiomeSample struct {
	Primary   *Biome
	Secondary *Biome
	Blend     float64
}

// BiomeMap holds one BiomeSample per (x, z) generation cell.
type BiomeMap struct {
	Width, Depth int
	cells        []BiomeSample
}

// At returns the sample at (x, z).
func (m *BiomeMap) At(x, z int) BiomeSample { return m.cells[x*m.Depth+z] }

// HeightMap holds one height per (x, z), already mapped into each cell's
// biome height range.
type HeightMap struct {
	Width, Depth int
	vals         []float64
}

// NewHeightMap returns a zeroed height map.
func NewHeightMap(width, depth int) *HeightMap {
	return &HeightMap{Width: width, Depth: depth, vals: make([]float64, width*depth)}
}

// At returns the height at (x, z).
func (m *HeightMap) At(x, z int) float64 { return m.vals[x*m.Depth+z] }

// Set replaces the height at (x, z).
func (m *HeightMap) Set(x, z int, h float64) { m.vals[x*m.Depth+z] = h }

// TreeMap marks which (x, z) cells carry a tree.
type TreeMap struct {
	Width, Depth int
	cells        []bool
}

// At reports whether (x, z) has a tree.
func (m *TreeMap) At(x, z int) bool { return m.cells[x*m.Depth+z] }

const (
	// biomeBiasStrength sets how much list position pulls a biome toward
	// its target depth band versus the noise field.
	biomeBiasStrength = 0.4
	// biomeBlendWidth is the influence difference below which two biomes
	// blend; differences at or above it give a crisp boundary.
	biomeBlendWidth = 0.05
)

// GenerateBiomeMap assigns the two dominant biomes and a blend factor to
// every cell. Each biome gets its own fractal influence field plus a depth
// bias: earlier list entries prefer the near ground, later entries the far.
func GenerateBiomeMap(width, depth int, biomes []*Biome, seed int64) *BiomeMap {
	fields := make([][]float64, len(biomes))
	for i := range biomes {
		field := make([]float64, width*depth)
		target := 0.5
		if len(biomes) > 1 {
			target = float64(i) / float64(len(biomes)-1)
		}
		for x := 0; x < width; x++ {
			for z := 0; z < depth; z++ {
				n := noise.Fractal(float64(x), float64(z), 2, 0.5, 0.025, seed+int64(i)*1000)
				zNorm := float64(z) / float64(depth)
				n += (1 - math.Abs(zNorm-target)*2) * biomeBiasStrength
				field[x*depth+z] = n
			}
		}
		fields[i] = field
	}

	m := &BiomeMap{Width: width, Depth: depth, cells: make([]BiomeSample, width*depth)}
	ranked := make([]int, len(biomes))
	for x := 0; x < width; x++ {
		for z := 0; z < depth; z++ {
			for i := range ranked {
				ranked[i] = i
			}
			// Stable sort keeps list order on ties, so earlier biomes win.
			sort.SliceStable(ranked, func(a, b int) bool {
				return fields[ranked[a]][x*depth+z] > fields[ranked[b]][x*depth+z]
			})

			primary := biomes[ranked[0]]
			secondary := primary
			blend := 0.0
			if len(biomes) > 1 {
				secondary = biomes[ranked[1]]
				diff := fields[ranked[0]][x*depth+z] - fields[ranked[1]][x*depth+z]
				blend = 1 - diff/biomeBlendWidth
				if blend < 0 {
					blend = 0
				} else if blend > 1 {
					blend = 1
				}
			}
			m.cells[x*depth+z] = BiomeSample{Primary: primary, Secondary: secondary, Blend: blend}
		}
	}
	return m
}

// GenerateHeightMap combines three noise bands (rolling shape, medium
// detail, fine roughness), normalizes the raw field against its global
// extrema, then maps each cell into its biomes' own height ranges. The
// two-stage design keeps overall variance steady regardless of the biome
// mix while letting each biome claim its vertical band.
func GenerateHeightMap(width, depth int, biomeMap *BiomeMap, seed int64) *HeightMap {
	raw := make([]float64, width*depth)
	minR, maxR := math.Inf(1), math.Inf(-1)
	for x := 0; x < width; x++ {
		for z := 0; z < depth; z++ {
			fx, fz := float64(x), float64(z)
			h1 := noise.Fractal(fx, fz, 2, 0.5, 0.02, seed)
			h2 := noise.Fractal(fx, fz, 3, 0.6, 0.06, seed+100)
			h3 := noise.Fractal(fx, fz, 2, 0.4, 0.2, seed+200)

			s := biomeMap.At(x, z)
			rough := lerp(s.Primary.Roughness, s.Secondary.Roughness, s.Blend)
			h := h1*(0.6-rough*0.2) + h2*(0.3+rough*0.1) + h3*(0.1+rough*0.1)

			raw[x*depth+z] = h
			minR = math.Min(minR, h)
			maxR = math.Max(maxR, h)
		}
	}

	heights := NewHeightMap(width, depth)
	for x := 0; x < width; x++ {
		for z := 0; z < depth; z++ {
			normed := raw[x*depth+z]
			if maxR > minR {
				normed = (normed - minR) / (maxR - minR)
			}
			s := biomeMap.At(x, z)
			y1 := normed*s.Primary.HeightScale + s.Primary.BaseHeight
			y2 := normed*s.Secondary.HeightScale + s.Secondary.BaseHeight
			heights.Set(x, z, lerp(y1, y2, s.Blend))
		}
	}
	return heights
}

// GenerateTreeMap places trees where clustering noise exceeds the blended
// density threshold: denser biomes lower the bar, and the shared noise field
// makes neighboring cells agree, so trees come in organic clumps.
func GenerateTreeMap(width, depth int, biomeMap *BiomeMap, seed int64) *TreeMap {
	m := &TreeMap{Width: width, Depth: depth, cells: make([]bool, width*depth)}
	for x := 0; x < width; x++ {
		for z := 0; z < depth; z++ {
			s := biomeMap.At(x, z)
			density := lerp(s.Primary.TreeDensity, s.Secondary.TreeDensity, s.Blend)
			n := noise.Fractal(float64(x), float64(z), 2, 0.6, 0.15, seed+5000)
			m.cells[x*depth+z] = density > 0 && n > 1-density
		}
	}
	return m
}

func lerp(a, b, t float64) float64 { return a + (b-a)*t }
