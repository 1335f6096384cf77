package terrain

import (
	"math"
	"testing"
)

func testBiomes(t *testing.T, names ...string) []*Biome {
	t.Helper()
	biomes := make([]*Biome, len(names))
	for i, name := range names {
		b, err := ByName(name)
		if err != nil {
			t.Fatalf("ByName(%q): %v", name, err)
		}
		biomes[i] = b
	}
	return biomes
}

// TestBiomeMapBlendInRange checks the blend invariant across seeds and
// biome counts.
func TestBiomeMapBlendInRange(t *testing.T) {
	biomes := testBiomes(t, "ocean", "plains", "mountains")
	for seed := int64(0); seed < 5; seed++ {
		m := GenerateBiomeMap(40, 30, biomes, seed)
		for x := 0; x < m.Width; x++ {
			for z := 0; z < m.Depth; z++ {
				s := m.At(x, z)
				if s.Blend < 0 || s.Blend > 1 {
					t.Fatalf("seed=%d: blend %v out of [0,1] at (%d,%d)", seed, s.Blend, x, z)
				}
				if s.Primary == nil || s.Secondary == nil {
					t.Fatalf("seed=%d: nil biome at (%d,%d)", seed, x, z)
				}
			}
		}
	}
}

// TestBiomeMapSingleBiome verifies that one biome yields secondary ==
// primary with blend 0 everywhere.
func TestBiomeMapSingleBiome(t *testing.T) {
	biomes := testBiomes(t, "ocean")
	m := GenerateBiomeMap(20, 20, biomes, 7)
	for x := 0; x < m.Width; x++ {
		for z := 0; z < m.Depth; z++ {
			s := m.At(x, z)
			if s.Primary != biomes[0] || s.Secondary != biomes[0] {
				t.Fatalf("single biome not used at (%d,%d)", x, z)
			}
			if s.Blend != 0 {
				t.Fatalf("blend = %v at (%d,%d), want 0", s.Blend, x, z)
			}
		}
	}
}

// TestBiomeMapDepthBias checks that the first listed biome dominates the
// nearest depth slice and the last dominates the farthest.
func TestBiomeMapDepthBias(t *testing.T) {
	biomes := testBiomes(t, "ocean", "mountains")
	m := GenerateBiomeMap(60, 60, biomes, 3)

	near, far := 0, 0
	for x := 0; x < m.Width; x++ {
		if m.At(x, 0).Primary == biomes[0] {
			near++
		}
		if m.At(x, m.Depth-1).Primary == biomes[1] {
			far++
		}
	}
	// The bias term (0.4) dwarfs the noise spread, so a clear majority of
	// edge cells must follow it.
	if near < m.Width*3/4 {
		t.Errorf("first biome dominates only %d/%d near cells", near, m.Width)
	}
	if far < m.Width*3/4 {
		t.Errorf("last biome dominates only %d/%d far cells", far, m.Width)
	}
}

// TestHeightMapExtremaHitBiomeRange verifies the normalize-then-remap
// contract: with one biome, the global minimum lands exactly on BaseHeight
// and the maximum on BaseHeight+HeightScale.
func TestHeightMapExtremaHitBiomeRange(t *testing.T) {
	biomes := testBiomes(t, "ocean")
	bm := GenerateBiomeMap(40, 40, biomes, 11)
	hm := GenerateHeightMap(40, 40, bm, 11)

	minH, maxH := math.Inf(1), math.Inf(-1)
	for x := 0; x < hm.Width; x++ {
		for z := 0; z < hm.Depth; z++ {
			minH = math.Min(minH, hm.At(x, z))
			maxH = math.Max(maxH, hm.At(x, z))
		}
	}
	base := biomes[0].BaseHeight
	top := base + biomes[0].HeightScale
	if math.Abs(minH-base) > 1e-9 {
		t.Errorf("min height %v, want base height %v", minH, base)
	}
	if math.Abs(maxH-top) > 1e-9 {
		t.Errorf("max height %v, want base+scale %v", maxH, top)
	}
}

// TestHeightMapFlatFieldGuard covers the degenerate max==min case: a 1x1
// grid must not divide by zero and must stay finite.
func TestHeightMapFlatFieldGuard(t *testing.T) {
	biomes := testBiomes(t, "plains")
	bm := GenerateBiomeMap(1, 1, biomes, 0)
	hm := GenerateHeightMap(1, 1, bm, 0)
	h := hm.At(0, 0)
	if math.IsNaN(h) || math.IsInf(h, 0) {
		t.Fatalf("flat field produced %v", h)
	}
}

func TestTreeMapRespectsDensity(t *testing.T) {
	// Ocean and ice both have zero tree density: no trees anywhere.
	biomes := testBiomes(t, "ocean", "ice")
	bm := GenerateBiomeMap(30, 30, biomes, 5)
	tm := GenerateTreeMap(30, 30, bm, 5)
	for x := 0; x < tm.Width; x++ {
		for z := 0; z < tm.Depth; z++ {
			if tm.At(x, z) {
				t.Fatalf("tree in zero-density biome at (%d,%d)", x, z)
			}
		}
	}

	// A dense forest must grow at least some trees.
	biomes = testBiomes(t, "forest")
	bm = GenerateBiomeMap(30, 30, biomes, 5)
	tm = GenerateTreeMap(30, 30, bm, 5)
	count := 0
	for x := 0; x < tm.Width; x++ {
		for z := 0; z < tm.Depth; z++ {
			if tm.At(x, z) {
				count++
			}
		}
	}
	if count == 0 {
		t.Error("dense forest produced no trees")
	}
}

func TestGeneratorsDeterministic(t *testing.T) {
	biomes := testBiomes(t, "ocean", "forest", "mountains")
	a := GenerateBiomeMap(25, 25, biomes, 99)
	b := GenerateBiomeMap(25, 25, biomes, 99)
	ha := GenerateHeightMap(25, 25, a, 99)
	hb := GenerateHeightMap(25, 25, b, 99)
	ta := GenerateTreeMap(25, 25, a, 99)
	tb := GenerateTreeMap(25, 25, b, 99)
	for x := 0; x < 25; x++ {
		for z := 0; z < 25; z++ {
			if a.At(x, z) != b.At(x, z) {
				t.Fatalf("biome map differs at (%d,%d)", x, z)
			}
			if ha.At(x, z) != hb.At(x, z) {
				t.Fatalf("height map differs at (%d,%d)", x, z)
			}
			if ta.At(x, z) != tb.At(x, z) {
				t.Fatalf("tree map differs at (%d,%d)", x, z)
			}
		}
	}
}
