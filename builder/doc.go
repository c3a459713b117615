// SPDX-License-Identifier: MIT

// Package builder produces deterministic mapping tables and seed sets for
// tests, examples and benchmarks.
//
// Constructors:
//
//   - RandomMap(name, rules, opts...)     sparse, non-overlapping random rules.
//   - RandomStages(count, rules, opts...) a sequence of RandomMap stages.
//   - IdentityMap(name)                   the smallest map that normalizes to identity.
//   - RandomSeeds(n, opts...)             non-empty seed intervals.
//
// Determinism:
//
//	Every stochastic constructor draws from the *rand.Rand supplied through
//	WithSeed or WithRand. Without one it fails with ErrNeedRandSource; there
//	is no time-based fallback.
//
// Options:
//
//   - WithSeed(int64), WithRand(*rand.Rand): random source.
//   - WithWindow(uint64):    upper bound for seed starts and rule destinations.
//   - WithMaxLength(uint64): upper bound for rule, gap and seed lengths.
//
// Option constructors panic on meaningless values; constructors return
// sentinel errors and never panic.
package builder
