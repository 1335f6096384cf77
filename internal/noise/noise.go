// Package noise implements the deterministic value noise that drives every
// stochastic decision in the landscape pipeline. Nothing here holds state:
// the same coordinates and seed always produce the same value, so any cell
// of any map can be recomputed in isolation.
package noise

import "math"

// Hash returns a pseudo-random value in [0, 1) for an integer lattice point.
// The mix constants are frozen: rendered scenes are reproduced from 14-bit
// seeds alone, so the output for a given input must never change.
func Hash(xi, zi, seed int64) float64 {
	n := xi + zi*57 + seed*374761393
	n = (n ^ (n >> 13)) * 1274126177
	return float64((n^(n>>16))&0xFFFF) / 0x10000
}

// Value is smoothed lattice noise: the four Hash values surrounding (x, z)
// bilinearly interpolated with smoothstep easing on both axes. At integer
// coordinates it equals Hash exactly.
func Value(x, z float64, seed int64) float64 {
	x0 := int64(math.Floor(x))
	z0 := int64(math.Floor(z))
	tx := x - float64(x0)
	tz := z - float64(z0)
	tx = tx * tx * (3 - 2*tx)
	tz = tz * tz * (3 - 2*tz)

	c00 := Hash(x0, z0, seed)
	c10 := Hash(x0+1, z0, seed)
	c01 := Hash(x0, z0+1, seed)
	c11 := Hash(x0+1, z0+1, seed)

	return (c00*(1-tx)+c10*tx)*(1-tz) + (c01*(1-tx)+c11*tx)*tz
}

// Fractal sums octaves of Value at doubling frequency and decaying
// amplitude. Each octave uses its own seed offset so octaves decorrelate.
// The sum is normalized by the total amplitude and stays in [0, 1].
func Fractal(x, z float64, octaves int, persistence, scale float64, seed int64) float64 {
	total := 0.0
	amplitude := 1.0
	frequency := scale
	maxValue := 0.0

	for i := 0; i < octaves; i++ {
		total += Value(x*frequency, z*frequency, seed+int64(i)*1000) * amplitude
		maxValue += amplitude
		amplitude *= persistence
		frequency *= 2
	}

	return total / maxValue
}

// Rand folds an arbitrary list of seed parts into a value in [0, 1).
// It backs every "pick one of N" decision in the generator; a stateful PRNG
// would make those decisions order-dependent and unreproducible.
func Rand(parts ...int64) float64 {
	n := int64(74761393)
	for _, p := range parts {
		n += p
		n = (n ^ (n >> 13)) * 1274126177
	}
	return float64((n^(n>>16))&0xFFFF) / 0x10000
}

// Choice picks one element of options, deterministically from the parts.
func Choice[T any](options []T, parts ...int64) T {
	return options[int(Rand(parts...)*float64(len(options)))]
}
