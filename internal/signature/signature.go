// Package signature encodes generation parameters as short printable
// strings. A signature is an "L" followed by 9 base58 characters covering a
// 48-bit payload:
//
//	Ver (4) | Time (3) | Season (4) | Weather (3) | B1-B5 (4 each) | Seed (14)
//	47-44   | 43-41    | 40-37      | 36-34       | 33-14          | 13-0
//
// Unused biome slots hold the all-ones empty sentinel. The signature is the
// single source of truth for reproducing a scene; any layout change must
// bump the version, and decoders reject versions they do not know.
package signature

import (
	"errors"
	"fmt"
	"strings"

	"landscape/internal/atmosphere"
	"landscape/internal/terrain"
)

const (
	// Version is the only signature version this build understands.
	Version = 0
	// MaxSeed is the largest seed a signature can carry (14 bits).
	MaxSeed = (1 << 14) - 1
	// MaxBiomes is the number of biome slots in the layout.
	MaxBiomes = 5

	prefix     = 'L'
	encodedLen = 9 // ceil(48 bits / log2 58)
)

// Decode error taxonomy. All three are recoverable user errors: the caller
// can supply a corrected signature.
var (
	ErrPrefix  = errors.New(`signature must start with "L"`)
	ErrFormat  = errors.New("invalid signature format")
	ErrVersion = errors.New("unknown signature version")
)

// SceneConfig is the full set of generation parameters a signature carries.
type SceneConfig struct {
	Seed    int
	Biomes  []terrain.BiomeCode // 1-5 entries, ordered near to far
	Time    atmosphere.TimeOfDay
	Season  atmosphere.Season
	Weather atmosphere.Weather
}

// Encode packs the config into its printable signature. Seeds above MaxSeed
// are clamped; empty biome slots are filled with the sentinel nibble.
func (c *SceneConfig) Encode() string {
	seed := c.Seed
	if seed > MaxSeed {
		seed = MaxSeed
	}

	slots := [MaxBiomes]terrain.BiomeCode{}
	for i := range slots {
		if i < len(c.Biomes) {
			slots[i] = c.Biomes[i]
		} else {
			slots[i] = terrain.Empty
		}
	}

	value := uint64(Version)<<44 |
		uint64(c.Time)<<41 |
		uint64(c.Season)<<37 |
		uint64(c.Weather)<<34 |
		uint64(slots[0])<<30 |
		uint64(slots[1])<<26 |
		uint64(slots[2])<<22 |
		uint64(slots[3])<<18 |
		uint64(slots[4])<<14 |
		uint64(seed)

	return string(prefix) + base58Encode(value)
}

// Decode parses a signature back into a SceneConfig. Empty biome slots are
// dropped, preserving the original list length and order.
func Decode(sig string) (*SceneConfig, error) {
	if len(sig) == 0 || sig[0] != prefix {
		return nil, ErrPrefix
	}
	if len(sig) != 1+encodedLen {
		return nil, fmt.Errorf("%w: want %d characters after the prefix", ErrFormat, encodedLen)
	}
	value, err := base58Decode(sig[1:])
	if err != nil {
		return nil, err
	}

	if v := (value >> 44) & 0xF; v != Version {
		return nil, fmt.Errorf("%w %d: update landscape to decode this signature", ErrVersion, v)
	}

	var biomes []terrain.BiomeCode
	for _, shift := range []uint{30, 26, 22, 18, 14} {
		code := terrain.BiomeCode((value >> shift) & 0xF)
		if code != terrain.Empty {
			biomes = append(biomes, code)
		}
	}

	return &SceneConfig{
		Seed:    int(value & 0x3FFF),
		Biomes:  biomes,
		Time:    atmosphere.TimeOfDay((value >> 41) & 0x7),
		Season:  atmosphere.Season((value >> 37) & 0xF),
		Weather: atmosphere.Weather((value >> 34) & 0x7),
	}, nil
}

// BiomeNames converts the biome codes back to their keys.
func (c *SceneConfig) BiomeNames() ([]string, error) {
	names := make([]string, len(c.Biomes))
	for i, code := range c.Biomes {
		b, err := terrain.ByCode(code)
		if err != nil {
			return nil, err
		}
		for key, def := range terrain.Biomes {
			if def == b {
				names[i] = key
			}
		}
	}
	return names, nil
}

// ResolveBiomes maps the biome codes to their definitions.
func (c *SceneConfig) ResolveBiomes() ([]*terrain.Biome, error) {
	biomes := make([]*terrain.Biome, len(c.Biomes))
	for i, code := range c.Biomes {
		b, err := terrain.ByCode(code)
		if err != nil {
			return nil, err
		}
		biomes[i] = b
	}
	return biomes, nil
}

// Atmosphere resolves the three component codes to a preset when one
// matches, otherwise a synthesized atmosphere.
func (c *SceneConfig) Atmosphere() *atmosphere.Atmosphere {
	return atmosphere.Get(c.Time, c.Season, c.Weather)
}

// AtmosphereName returns the closest named preset for the components. The
// fallback is a fixed four-branch table, not a similarity search; unmatched
// combinations still render via on-demand synthesis.
func (c *SceneConfig) AtmosphereName() string {
	for name, p := range atmosphere.Presets {
		if p.Time == c.Time && p.Season == c.Season && p.Weather == c.Weather {
			return name
		}
	}
	switch {
	case c.Time == atmosphere.Night || c.Time == atmosphere.LateNight:
		return "clear_night"
	case c.Time == atmosphere.Dawn:
		return "apricot_dawn"
	case c.Time == atmosphere.Dusk || c.Time == atmosphere.Evening:
		if c.Weather == atmosphere.Stormy {
			return "ominous_sunset"
		}
		return "apricot_dawn"
	default:
		return "clear_day"
	}
}

// Label is a short human-readable summary for status lines.
func (c *SceneConfig) Label() string {
	names, err := c.BiomeNames()
	if err != nil {
		names = []string{"?"}
	}
	return fmt.Sprintf("%s | %s", strings.Join(names, " + "), c.Atmosphere().Name)
}
