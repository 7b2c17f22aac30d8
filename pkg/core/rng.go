package core

import (
	"math"
	"math/rand/v2"
)

// NewRand returns a PCG-backed rand.Rand for the seed and stream.
func NewRand(seed int64, stream uint64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), stream))
}

// Range returns a float in [lo, hi). Reversed bounds are swapped.
func Range(r *rand.Rand, lo, hi float64) float64 {
	if hi < lo {
		lo, hi = hi, lo
	}
	return lo + r.Float64()*(hi-lo)
}

// IntRange returns an int in [lo, hi] inclusive.
func IntRange(r *rand.Rand, lo, hi int) int {
	if hi < lo {
		lo, hi = hi, lo
	}
	return lo + r.IntN(hi-lo+1)
}

// Angle returns a heading in [0, 2π).
func Angle(r *rand.Rand) float64 {
	return r.Float64() * 2 * math.Pi
}

// Signed returns a float in [-amp, amp).
func Signed(r *rand.Rand, amp float64) float64 {
	return (r.Float64()*2 - 1) * amp
}

// Chance reports true with probability p.
func Chance(r *rand.Rand, p float64) bool {
	if p <= 0 {
		return false
	}
	return r.Float64() < p
}
