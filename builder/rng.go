// SPDX-License-Identifier: MIT

package builder

import "math/rand"

// defaultRNGSeed is used when callers pass seed==0.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ defaultRNGSeed; otherwise the seed verbatim.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}
	return rand.New(rand.NewSource(seed))
}

// golden is the 64-bit golden-ratio increment of SplitMix64.
const golden = 0x9e3779b97f4a7c15

// deriveSeed folds a stream id into a parent seed and scrambles the result.
func deriveSeed(parent int64, stream uint64) int64 {
	return int64(mix64((uint64(parent) ^ (stream + golden)) + golden))
}

// mix64 is the SplitMix64 output finalizer.
func mix64(x uint64) uint64 {
	x = (x ^ x>>30) * 0xbf58476d1ce4e5b9
	x = (x ^ x>>27) * 0x94d049bb133111eb
	return x ^ x>>31
}

// deriveRNG creates an independent stream from base for one stage.
// base.Int63 is consumed once so repeated stream ids still diverge.
func deriveRNG(base *rand.Rand, stream uint64) *rand.Rand {
	return rand.New(rand.NewSource(deriveSeed(base.Int63(), stream)))
}

// uniform returns a value in [0, n); n must be positive.
func uniform(rng *rand.Rand, n uint64) uint64 {
	if n <= 1<<63-1 {
		return uint64(rng.Int63n(int64(n)))
	}
	return rng.Uint64() % n
}
