// Package terrain defines biomes and generates the biome, height, and tree
// maps that the projector and compositor consume.
package terrain

import (
	"fmt"
	"sort"
	"strings"

	"landscape/internal/noise"
	"landscape/internal/texture"
)

// BiomeCode identifies a biome inside signatures. Codes are 4 bits wide and
// stable across versions; Empty marks an unused signature slot.
type BiomeCode uint8

const (
	Ocean BiomeCode = iota
	Forest
	Mountains
	Jungle
	Ice
	Plains
	Desert
	Alpine
	// 8-14 reserved for future biomes.
	Empty BiomeCode = 15
)

// Biome is one terrain type: a surface texture plus the parameters that
// shape its heights and tree cover.
type Biome struct {
	Name string
	Code BiomeCode

	Surface texture.Texture

	Roughness   float64 // higher = more jagged
	HeightScale float64 // vertical exaggeration
	BaseHeight  float64 // minimum terrain height in [0,1]
	TreeDensity float64 // tree coverage in [0,1]
}

// ByName resolves a biome key like "ocean". Unknown names report the valid
// options so the CLI can surface them directly.
func ByName(name string) (*Biome, error) {
	if b, ok := Biomes[name]; ok {
		return b, nil
	}
	return nil, fmt.Errorf("unknown biome %q (valid: %s)", name, strings.Join(Names(), ", "))
}

// ByCode resolves a signature biome code.
func ByCode(code BiomeCode) (*Biome, error) {
	for _, b := range Biomes {
		if b.Code == code {
			return b, nil
		}
	}
	return nil, fmt.Errorf("unknown biome code %d", code)
}

// Names returns all biome keys in sorted order.
func Names() []string {
	names := make([]string, 0, len(Biomes))
	for name := range Biomes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LandscapeNames returns all landscape preset keys in sorted order.
func LandscapeNames() []string {
	names := make([]string, 0, len(Landscapes))
	for name := range Landscapes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Complement picks the fixed partner for a single-biome scene. The choice is
// a pure function of the seed, so re-resolving the same scene always pairs
// the same way.
func Complement(name string, seed int64) string {
	options, ok := complements[name]
	if !ok {
		options = Names()
	}
	return noise.Choice(options, seed)
}
