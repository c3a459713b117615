// SPDX-License-Identifier: MIT

package interval

import "fmt"

// New returns the interval [start, start+length).
//
// Errors:
//   - ErrDegenerate if length == 0.
//   - ErrOverflow if start+length exceeds Max.
func New(start, length uint64) (Interval, error) {
	if length == 0 {
		return Interval{}, fmt.Errorf("New(%d, 0): %w", start, ErrDegenerate)
	}
	if length > Max-start {
		return Interval{}, fmt.Errorf("New(%d, %d): %w", start, length, ErrOverflow)
	}

	return Interval{Start: start, Length: length}, nil
}

// FromBounds returns the interval [start, end).
// It fails with ErrDegenerate when end <= start.
func FromBounds(start, end uint64) (Interval, error) {
	if end <= start {
		return Interval{}, fmt.Errorf("FromBounds(%d, %d): %w", start, end, ErrDegenerate)
	}

	return Interval{Start: start, Length: end - start}, nil
}

// MustNew is New for literals known to be valid; it panics on error.
func MustNew(start, length uint64) Interval {
	r, err := New(start, length)
	if err != nil {
		panic(err)
	}

	return r
}

// End returns the exclusive upper bound.
func (r Interval) End() uint64 {
	return r.Start + r.Length
}

// IsEmpty reports whether the interval covers no values.
func (r Interval) IsEmpty() bool {
	return r.Length == 0
}

// Contains reports whether v lies in [Start, End).
func (r Interval) Contains(v uint64) bool {
	return v >= r.Start && v-r.Start < r.Length
}

// Intersect returns the common part of r and o, if any.
func (r Interval) Intersect(o Interval) (Interval, bool) {
	start := max(r.Start, o.Start)
	end := min(r.End(), o.End())
	if start >= end {
		return Interval{}, false
	}

	return Interval{Start: start, Length: end - start}, true
}

// Shift moves the interval by a signed distance, keeping its length.
// It fails with ErrOverflow if the result would leave [0, Max].
func (r Interval) Shift(distance int64) (Interval, error) {
	if distance >= 0 {
		d := uint64(distance)
		if d > Max-r.End() {
			return Interval{}, fmt.Errorf("%v shifted by %d: %w", r, distance, ErrOverflow)
		}

		return Interval{Start: r.Start + d, Length: r.Length}, nil
	}

	// -(distance+1)+1 avoids negating math.MinInt64.
	d := uint64(-(distance + 1)) + 1
	if d > r.Start {
		return Interval{}, fmt.Errorf("%v shifted by %d: %w", r, distance, ErrOverflow)
	}

	return Interval{Start: r.Start - d, Length: r.Length}, nil
}
