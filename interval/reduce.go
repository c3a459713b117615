// SPDX-License-Identifier: MIT

package interval

import (
	"cmp"
	"slices"
)

// Reduce merges overlapping and touching intervals into their minimal cover.
//
// Algorithm Outline:
//  1. Copy the non-empty intervals (zero-length ones contribute nothing).
//  2. Sort by Start ascending.
//  3. Scan left to right; when cur.Start <= acc.End() extend acc to
//     max(acc.End(), cur.End()), otherwise emit acc and start over from cur.
//
// The input slice is never modified. Reduce is idempotent and returns nil when
// no non-empty interval is given.
//
// Complexity: O(n log n) time, O(n) memory.
func Reduce(in []Interval) []Interval {
	work := make([]Interval, 0, len(in))
	for _, r := range in {
		if !r.IsEmpty() {
			work = append(work, r)
		}
	}
	if len(work) == 0 {
		return nil
	}

	slices.SortFunc(work, func(a, b Interval) int {
		return cmp.Compare(a.Start, b.Start)
	})

	out := work[:1]
	for _, cur := range work[1:] {
		acc := &out[len(out)-1]
		if cur.Start <= acc.End() {
			if end := cur.End(); end > acc.End() {
				acc.Length = end - acc.Start
			}
			continue
		}
		out = append(out, cur)
	}

	return out
}

// MinStart returns the smallest lower bound among the non-empty intervals.
// The boolean is false when there is none.
func MinStart(in []Interval) (uint64, bool) {
	var (
		best  uint64
		found bool
	)
	for _, r := range in {
		if r.IsEmpty() {
			continue
		}
		if !found || r.Start < best {
			best, found = r.Start, true
		}
	}

	return best, found
}

// Span returns the number of distinct values covered by the intervals.
func Span(in []Interval) uint64 {
	var total uint64
	for _, r := range Reduce(in) {
		total += r.Length
	}

	return total
}
