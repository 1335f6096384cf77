package render

import (
	"landscape/internal/atmosphere"
	"landscape/internal/terrain"
)

// Horizon is the default oblique lift per depth step.
const Horizon = 0.5

// Scene bundles the resolved inputs for one rendering.
type Scene struct {
	Seed   int64
	Biomes []*terrain.Biome // ordered near to far
	Atmos  *atmosphere.Atmosphere
}

// Render runs the full pipeline: biome, height, and tree maps, depth
// projection, then compositing. The grid is height rows by width columns;
// depth controls how far the landscape recedes.
func (s *Scene) Render(width, height, depth int) Grid {
	biomeMap := terrain.GenerateBiomeMap(width, depth, s.Biomes, s.Seed)
	heightMap := terrain.GenerateHeightMap(width, depth, biomeMap, s.Seed)
	treeMap := terrain.GenerateTreeMap(width, depth, biomeMap, s.Seed)

	buf := Project(heightMap, height, Horizon)
	return Compose(buf, heightMap, biomeMap, treeMap, s.Atmos, s.Seed)
}
