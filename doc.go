// Package almanac is a small toolkit for pushing large sets of integer
// ranges through chains of piecewise translation tables, without ever
// enumerating the values inside them.
//
// 🚀 What is in here?
//
//	A dependency-light set of packages that build on each other:
//		• interval  – half-open [start, start+length) ranges over uint64, plus Reduce
//		• rangemap  – translation rules, maps with implicit identity gaps, Split
//		• pipeline  – ordered stages, sequential or chunked over an errgroup
//		• almanac   – the plain-text almanac format and both classic answers
//		• builder   – deterministic random maps and seeds for tests and benchmarks
//
// ✨ Why ranges?
//
//   - A seed range of a billion values costs the same as a range of one.
//   - Every stage splits, translates and merges, so the working set stays small.
//   - Results are exact; nothing is sampled.
//
// Quick ASCII example:
//
//	seeds   [55 ────────── 68)     [79 ────────── 93)
//	map     [50 ─────────────────────────── 98) +2
//	out     [57 ────────── 70)     [81 ────────── 95)
//
// The command in cmd/almanac wraps it all:
//
//	almanac solve input.txt
//	almanac trace --output yaml input.txt
package almanac
