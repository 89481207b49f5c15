package seed

import (
	"crypto/sha256"
	"encoding/binary"
	"math/rand"
)

// DefaultSeed is the fixed "zero" seed used when a caller passes 0.
// The value is arbitrary but stable to keep reproducible defaults.
const DefaultSeed int64 = 1

// Stream identifies an independent substream of a base seed.
type Stream uint64

// Named streams, one per consumer inside a single generation call.
const (
	// StreamCraniumFront feeds the noise source of the front cranium outline.
	StreamCraniumFront Stream = iota + 1
	// StreamCraniumSide feeds the radius jitter of the side cranium outline.
	StreamCraniumSide
	// StreamLimb feeds the angle delta and bone length jitter of the limb template.
	StreamLimb
)

// FromText hashes text into a non-negative base seed.
// The first 8 bytes of SHA-256 are read big-endian and the sign bit is cleared;
// a zero result is remapped to DefaultSeed.
//
// Complexity: O(len(text)).
func FromText(text string) int64 {
	sum := sha256.Sum256([]byte(text))
	s := int64(binary.BigEndian.Uint64(sum[:8]) &^ (1 << 63))
	if s == 0 {
		return DefaultSeed
	}

	return s
}

// Derive mixes a parent seed and a stream identifier into a new 64-bit seed
// with a SplitMix64 finalizer, so neighbouring streams are uncorrelated.
//
// Complexity: O(1).
func Derive(parent int64, stream Stream) int64 {
	x := uint64(parent) ^ (uint64(stream) + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// NewRand returns a deterministic *rand.Rand.
// Policy: s==0 ⇒ DefaultSeed; otherwise s is used verbatim.
func NewRand(s int64) *rand.Rand {
	if s == 0 {
		s = DefaultSeed
	}

	return rand.New(rand.NewSource(s))
}

// Uniform draws a float64 in [lo, hi) from rng.
// If hi <= lo it returns lo without consuming the stream.
func Uniform(rng *rand.Rand, lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}

	return lo + rng.Float64()*(hi-lo)
}
