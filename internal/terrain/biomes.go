package terrain

import (
	"landscape/internal/color"
	"landscape/internal/texture"
)

// Biomes maps biome keys to their definitions. Gradients run from the
// biome's lowest terrain to its highest.
var Biomes = map[string]*Biome{
	"ocean": {
		Name: "Ocean",
		Code: Ocean,
		Surface: texture.Texture{
			Colors: color.NewGradient("#002F4F", "#005c7e"),
			Details: []texture.Detail{{
				Name:      "Waves",
				Chars:     []rune("∼∽"),
				Frequency: 0.9,
				Density:   0.22,
				Colors:    color.NewGradient("#7fb2c9", "#a8d8e8"),
				Blend:     0.4,
			}},
		},
		Roughness:   0.2,
		HeightScale: 0.05,
		BaseHeight:  0.1,
		TreeDensity: 0.0,
	},
	"forest": {
		Name: "Forest",
		Code: Forest,
		Surface: texture.Texture{
			Colors: color.NewGradient("#002800", "#086200"),
		},
		Roughness:   0.1,
		HeightScale: 0.4,
		BaseHeight:  0.4,
		TreeDensity: 0.7,
	},
	"mountains": {
		Name: "Mountains",
		Code: Mountains,
		Surface: texture.Texture{
			Colors: color.NewGradient("#202020", "#555555", "#eeeeee"),
			Details: []texture.Detail{{
				Name:      "Ridges",
				Chars:     []rune("🭋🭯🭀"),
				Frequency: 1.4,
				Density:   0.07,
				Colors:    color.NewGradient("#2a2a2a", "#4a4a4a"),
				Blend:     0.3,
			}},
		},
		Roughness:   0.8,
		HeightScale: 0.8,
		BaseHeight:  0.6,
		TreeDensity: 0.05,
	},
	"jungle": {
		Name: "Jungle",
		Code: Jungle,
		Surface: texture.Texture{
			Colors: color.NewGradient("#56971D", "#21410d"),
		},
		Roughness:   0.6,
		HeightScale: 0.3,
		BaseHeight:  0.4,
		TreeDensity: 0.85,
	},
	"ice": {
		Name: "Ice",
		Code: Ice,
		Surface: texture.Texture{
			Colors: color.NewGradient("#8aa3f1", "#f0faff"),
			Details: []texture.Detail{{
				Name:      "Glints",
				Chars:     []rune("✦·"),
				Frequency: 2.0,
				Density:   0.05,
				Colors:    color.NewGradient("#ffffff"),
				Blend:     0.2,
			}},
		},
		Roughness:   0.4,
		HeightScale: 0.3,
		BaseHeight:  0.3,
		TreeDensity: 0.0,
	},
	"plains": {
		Name: "Plains",
		Code: Plains,
		Surface: texture.Texture{
			Colors: color.NewGradient("#489c33", "#73A400"),
			Details: []texture.Detail{{
				Name:      "Grass",
				Chars:     []rune(",'"),
				Frequency: 1.2,
				Density:   0.3,
				Colors:    color.NewGradient("#2f6b1f", "#57a23a"),
				Blend:     0.5,
			}},
		},
		Roughness:   0.2,
		HeightScale: 0.4,
		BaseHeight:  0.3,
		TreeDensity: 0.15,
	},
	"desert": {
		Name: "Desert",
		Code: Desert,
		Surface: texture.Texture{
			Colors: color.NewGradient("#aa8266", "#ffedd3"),
			Details: []texture.Detail{{
				Name:      "Dunes",
				Chars:     []rune("∼"),
				Frequency: 0.7,
				Density:   0.08,
				Colors:    color.NewGradient("#c9a27e", "#e8cba2"),
				Blend:     0.5,
			}},
		},
		Roughness:   0.3,
		HeightScale: 0.2,
		BaseHeight:  0.3,
		TreeDensity: 0.02,
	},
	"alpine": {
		Name: "Alpine Forest",
		Code: Alpine,
		Surface: texture.Texture{
			Colors: color.NewGradient("#24442D", "#426b57"),
		},
		Roughness:   0.7,
		HeightScale: 0.4,
		BaseHeight:  0.6,
		TreeDensity: 0.5,
	},
}

// TreeChars are the glyphs used by the tree overlay pass.
var TreeChars = []rune("△▲▴◭◮")

// Landscapes are predefined multi-biome combinations, ordered near to far.
var Landscapes = map[string][]string{
	"coastal":         {"ocean", "plains", "forest", "plains"},
	"mountain_valley": {"plains", "forest", "mountains"},
	"alpine_lake":     {"ocean", "alpine", "mountains"},
	"tropical":        {"ocean", "jungle"},
	"arctic":          {"ocean", "ice"},
	"desert_oasis":    {"plains", "desert", "mountains"},
	"fjord":           {"ocean", "mountains"},
	"highlands":       {"plains", "alpine"},
}

// complements pairs each biome with the partners that read well next to it;
// single-biome scenes pick one before generation.
var complements = map[string][]string{
	"ocean":     {"plains", "forest"},
	"forest":    {"plains", "mountains"},
	"mountains": {"alpine", "forest"},
	"jungle":    {"ocean", "plains"},
	"ice":       {"ocean", "mountains"},
	"plains":    {"forest", "mountains"},
	"desert":    {"plains", "mountains"},
	"alpine":    {"mountains", "forest"},
}
