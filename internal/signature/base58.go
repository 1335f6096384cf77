package signature

import "fmt"

// base58Alphabet is the Bitcoin alphabet: no 0, O, I, or l, so signatures
// survive being read aloud or retyped.
const base58Alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

var base58Digits [128]int8

func init() {
	for i := range base58Digits {
		base58Digits[i] = -1
	}
	for i := 0; i < len(base58Alphabet); i++ {
		base58Digits[base58Alphabet[i]] = int8(i)
	}
}

// base58Encode renders v at the fixed signature width, left-padded with the
// zero digit so every 48-bit value encodes to the same length.
func base58Encode(v uint64) string {
	buf := [encodedLen]byte{}
	for i := range buf {
		buf[i] = base58Alphabet[0]
	}
	for i := encodedLen - 1; v > 0 && i >= 0; i-- {
		buf[i] = base58Alphabet[v%58]
		v /= 58
	}
	return string(buf[:])
}

// base58Decode parses a fixed-width base58 string back into its integer.
func base58Decode(s string) (uint64, error) {
	var v uint64
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 128 || base58Digits[c] < 0 {
			return 0, fmt.Errorf("%w: %q is not a base58 character", ErrFormat, c)
		}
		v = v*58 + uint64(base58Digits[c])
	}
	return v, nil
}
