// SPDX-License-Identifier: MIT

// Package interval provides the half-open integer range used throughout almanac.
//
// What:
//
//   - Interval is an immutable value [Start, Start+Length) over uint64.
//   - Reduce merges overlapping and touching intervals into a minimal cover.
//   - MinStart and Span summarize a working set.
//
// Domain:
//
//	All coordinates live in [0, Max). Max itself is the exclusive ceiling and is
//	never contained in any interval, so End() of the widest interval equals Max.
//
// Complexity:
//
//   - New, End, Contains, Intersect, Shift: O(1).
//   - Reduce: O(n log n) time, O(n) memory.
//
// Errors:
//
//   - ErrDegenerate: zero-length interval requested.
//   - ErrOverflow:   a bound would pass the domain ceiling or drop below zero.
package interval
