package scatter

import "math/rand/v2"

// SplitMix64 constants (Steele et al.), used to derive the second PCG
// state word from a single user seed.
const (
	seedGamma = 0x9e3779b97f4a7c15
	seedMix1  = 0xbf58476d1ce4e5b9
	seedMix2  = 0x94d049bb133111eb
)

// mix64 is one SplitMix64 step.
func mix64(x uint64) uint64 {
	x += seedGamma
	x ^= x >> 30
	x *= seedMix1
	x ^= x >> 27
	x *= seedMix2
	x ^= x >> 31
	return x
}

// newSource returns the rand source behind a set of draws: a private PCG
// stream for an explicit seed, or nil so the distributions fall back to
// the global generator.
func newSource(seed uint64, seeded bool) rand.Source {
	if !seeded {
		return nil
	}
	return rand.NewPCG(seed, mix64(seed))
}
