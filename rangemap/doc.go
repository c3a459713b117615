// SPDX-License-Identifier: MIT

// Package rangemap implements sparse piecewise-linear translation tables.
//
// What:
//
//   - Rule translates one source interval onto a destination interval of the
//     same length by a constant signed Distance.
//   - Map is an ordered set of non-overlapping Rules. Values outside every
//     declared source translate to themselves.
//   - Normalize fills the implicit identity gaps so a Map covers [0, Max)
//     with no holes.
//   - Split partitions one interval against a Map and reports, for every
//     fragment, where it came from and where it lands.
//
// Overlap classification (Rule.Classify), evaluated in this order:
//
//	NoOverlap     r.End <= src.Start || r.Start >= src.End
//	Contained     src.Start <= r.Start && r.End <= src.End
//	RightOverlap  r.Start >= src.Start           (tail past src.End unresolved)
//	LeftOverlap   r.Start <  src.Start           (head before src.Start unresolved)
//
// Contained must be tested before the partial cases because it satisfies the
// RightOverlap predicate too.
//
// Complexity:
//
//   - Normalize:  O(k log k) for k rules.
//   - QueryPoint: O(log k).
//   - Split:      O(log k + f) where f is the number of fragments produced.
//
// Errors:
//
//   - ErrEmptyMap:         Normalize called on a map without rules.
//   - ErrOverlappingRules: two declared sources intersect.
//   - interval.ErrDegenerate / interval.ErrOverflow from rule construction.
package rangemap
