package signature

import (
	"fmt"
	"strings"

	"landscape/internal/atmosphere"
	"landscape/internal/noise"
	"landscape/internal/terrain"
)

// Overrides are the optional runtime arguments layered over a signature.
// Precedence, lowest to highest: signature, landscape preset, explicit
// biomes; and for the atmosphere: signature, named preset, individual
// component overrides. Unset fields keep the layer below.
type Overrides struct {
	Signature  string
	Seed       *int
	BiomeNames []string // explicit biomes, near to far
	Landscape  string   // named landscape preset
	Atmosphere string   // named atmosphere preset
	Time       *atmosphere.TimeOfDay
	Season     *atmosphere.Season
	Weather    *atmosphere.Weather
}

// FromRuntimeArgs builds a SceneConfig by layering overrides over an
// optional signature. With neither a signature nor explicit choices, the
// landscape and atmosphere default via the deterministic hash chooser, so
// the same seed always yields the same scene.
func FromRuntimeArgs(o Overrides) (*SceneConfig, error) {
	var base *SceneConfig
	if o.Signature != "" {
		decoded, err := Decode(o.Signature)
		if err != nil {
			return nil, err
		}
		base = decoded
	}

	seed := 0
	switch {
	case o.Seed != nil:
		seed = clampSeed(*o.Seed)
	case base != nil:
		seed = base.Seed
	}

	biomes, err := resolveBiomes(o, base, seed)
	if err != nil {
		return nil, err
	}

	t, s, w, err := resolveAtmosphere(o, base, seed)
	if err != nil {
		return nil, err
	}

	return &SceneConfig{Seed: seed, Biomes: biomes, Time: t, Season: s, Weather: w}, nil
}

// FromParams builds a config from already-resolved names; unknown
// atmosphere names fall back to the clear_day components.
func FromParams(seed int, biomeNames []string, atmosphereName string) (*SceneConfig, error) {
	codes, err := biomeCodes(biomeNames)
	if err != nil {
		return nil, err
	}
	p, ok := atmosphere.Presets[atmosphereName]
	if !ok {
		p = atmosphere.Presets["clear_day"]
	}
	return &SceneConfig{
		Seed:    clampSeed(seed),
		Biomes:  codes,
		Time:    p.Time,
		Season:  p.Season,
		Weather: p.Weather,
	}, nil
}

func clampSeed(seed int) int {
	if seed < 0 {
		return 0
	}
	if seed > MaxSeed {
		return MaxSeed
	}
	return seed
}

func biomeCodes(names []string) ([]terrain.BiomeCode, error) {
	if len(names) > MaxBiomes {
		return nil, fmt.Errorf("too many biomes: %d (max %d)", len(names), MaxBiomes)
	}
	codes := make([]terrain.BiomeCode, len(names))
	for i, name := range names {
		b, err := terrain.ByName(name)
		if err != nil {
			return nil, err
		}
		codes[i] = b.Code
	}
	return codes, nil
}

func resolveBiomes(o Overrides, base *SceneConfig, seed int) ([]terrain.BiomeCode, error) {
	var names []string
	switch {
	case len(o.BiomeNames) > 0:
		names = o.BiomeNames
	case o.Landscape != "":
		list, ok := terrain.Landscapes[o.Landscape]
		if !ok {
			return nil, fmt.Errorf("unknown landscape %q (valid: %s)",
				o.Landscape, strings.Join(terrain.LandscapeNames(), ", "))
		}
		names = list
	case base != nil:
		return base.Biomes, nil
	default:
		names = terrain.Landscapes[noise.Choice(terrain.LandscapeNames(), int64(seed))]
	}

	// A lone biome always gets its complementary partner so blending has
	// two sides to work with.
	if len(names) == 1 {
		names = append(names, terrain.Complement(names[0], int64(seed)))
	}
	return biomeCodes(names)
}

func resolveAtmosphere(o Overrides, base *SceneConfig, seed int) (atmosphere.TimeOfDay, atmosphere.Season, atmosphere.Weather, error) {
	var t atmosphere.TimeOfDay
	var s atmosphere.Season
	var w atmosphere.Weather

	if base != nil {
		t, s, w = base.Time, base.Season, base.Weather
	} else {
		// No signature: start from a hash-chosen preset so partial
		// component overrides still land on a coherent scene.
		name := noise.Choice(atmosphere.PresetNames(), int64(seed), 11)
		p := atmosphere.Presets[name]
		t, s, w = p.Time, p.Season, p.Weather
	}

	if o.Atmosphere != "" {
		p, ok := atmosphere.Presets[o.Atmosphere]
		if !ok {
			return 0, 0, 0, fmt.Errorf("unknown atmosphere %q (valid: %s)",
				o.Atmosphere, strings.Join(atmosphere.PresetNames(), ", "))
		}
		t, s, w = p.Time, p.Season, p.Weather
	}

	if o.Time != nil {
		t = *o.Time
	}
	if o.Season != nil {
		s = *o.Season
	}
	if o.Weather != nil {
		w = *o.Weather
	}
	return t, s, w, nil
}
