// SPDX-License-Identifier: MIT

// Package almanac reads the plain-text almanac format and answers the two
// classic questions about it: the lowest location reached by the individual
// seed numbers, and by the seed ranges.
//
// Format:
//
//	seeds: 79 14 55 13
//
//	seed-to-soil map:
//	50 98 2
//	52 50 48
//
//	soil-to-fertilizer map:
//	...
//
// Each map block is a header "<from>-to-<to> map:" followed by
// "destination source length" lines. Blank lines are ignored and maps keep
// their declaration order.
//
// Errors:
//
//   - ErrSyntax:         malformed line, wrapped with its line number.
//   - ErrNoSeeds:        the seeds line is missing or empty.
//   - ErrNoMaps:         no map block follows the seeds.
//   - ErrRuleOutsideMap: a rule line appears before any header.
//   - ErrOddSeeds:       SeedRanges on an odd number of seed values.
package almanac
