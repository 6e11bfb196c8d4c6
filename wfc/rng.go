package wfc

import "math/rand"

// defaultSeed is used when callers pass seed == 0.
const defaultSeed int64 = 1

// newRand returns a deterministic *rand.Rand.
// seed == 0 selects defaultSeed; any other value is used verbatim.
func newRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}

	return rand.New(rand.NewSource(seed))
}

// resolveRand applies the Options randomness policy: an explicit Rand wins,
// otherwise a source seeded from Seed.
func resolveRand(opts Options) Rand {
	if opts.Rand != nil {
		return opts.Rand
	}

	return newRand(opts.Seed)
}

// DeriveSeed mixes a parent seed and a stream id into an independent seed,
// e.g. one per grid of a batch. Stream ids must differ between siblings.
//
// SplitMix64 finalizer constants; small input changes spread over all bits.
// Complexity: O(1).
func DeriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}
