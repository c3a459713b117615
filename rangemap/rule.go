// SPDX-License-Identifier: MIT

package rangemap

import (
	"fmt"
	"math"

	"github.com/katalvlaran/almanac/interval"
)

// NewRule builds the rule translating [sourceStart, sourceStart+length) onto
// [destinationStart, destinationStart+length).
//
// Errors:
//   - interval.ErrDegenerate if length == 0.
//   - interval.ErrOverflow if either interval passes interval.Max or the
//     signed offset between them does not fit in int64.
func NewRule(sourceStart, destinationStart, length uint64) (Rule, error) {
	src, err := interval.New(sourceStart, length)
	if err != nil {
		return Rule{}, fmt.Errorf("rangemap: rule source: %w", err)
	}
	dst, err := interval.New(destinationStart, length)
	if err != nil {
		return Rule{}, fmt.Errorf("rangemap: rule destination: %w", err)
	}

	var distance int64
	if dst.Start >= src.Start {
		d := dst.Start - src.Start
		if d > math.MaxInt64 {
			return Rule{}, fmt.Errorf("rangemap: rule offset +%d: %w", d, interval.ErrOverflow)
		}
		distance = int64(d)
	} else {
		d := src.Start - dst.Start
		if d > math.MaxInt64 {
			return Rule{}, fmt.Errorf("rangemap: rule offset -%d: %w", d, interval.ErrOverflow)
		}
		distance = -int64(d)
	}

	return Rule{Source: src, Destination: dst, Distance: distance}, nil
}

// identityRule builds a synthetic gap rule; the caller guarantees a non-empty,
// in-domain range.
func identityRule(start, length uint64) Rule {
	r := interval.Interval{Start: start, Length: length}
	return Rule{Source: r, Destination: r}
}

// Identity reports whether the rule leaves values unchanged.
func (m Rule) Identity() bool {
	return m.Distance == 0
}

// String renders the rule as "[src)->[dst)".
func (m Rule) String() string {
	return fmt.Sprintf("%v->%v", m.Source, m.Destination)
}

// TranslatePoint returns v+Distance when v lies in the source.
func (m Rule) TranslatePoint(v uint64) (uint64, bool) {
	if !m.Source.Contains(v) {
		return 0, false
	}

	return m.Destination.Start + (v - m.Source.Start), true
}

// Classify reports how r sits against the rule's source.
// The checks run NoOverlap, Contained, RightOverlap, LeftOverlap in that order.
func (m Rule) Classify(r interval.Interval) Overlap {
	src := m.Source
	switch {
	case r.End() <= src.Start || r.Start >= src.End():
		return NoOverlap
	case r.Start >= src.Start && r.End() <= src.End():
		return Contained
	case r.Start >= src.Start:
		return RightOverlap
	default:
		return LeftOverlap
	}
}

// TranslateInterval returns the translated part of r that the rule covers.
//
// Behavior per Classify:
//   - NoOverlap:    false.
//   - Contained:    all of r, shifted by Distance.
//   - RightOverlap: [r.Start, src.End) shifted; the tail is left to the caller.
//   - LeftOverlap:  [src.Start, min(r.End, src.End)) shifted; the head is left to the caller.
//
// An empty r never translates.
func (m Rule) TranslateInterval(r interval.Interval) (interval.Interval, bool) {
	if r.IsEmpty() {
		return interval.Interval{}, false
	}

	src, dst := m.Source, m.Destination
	switch m.Classify(r) {
	case NoOverlap:
		return interval.Interval{}, false
	case Contained:
		return interval.Interval{Start: dst.Start + (r.Start - src.Start), Length: r.Length}, true
	case RightOverlap:
		return interval.Interval{Start: dst.Start + (r.Start - src.Start), Length: src.End() - r.Start}, true
	case LeftOverlap:
		return interval.Interval{Start: dst.Start, Length: min(r.End(), src.End()) - src.Start}, true
	}

	return interval.Interval{}, false
}

// preimage maps a translated piece back onto the source coordinates.
func (m Rule) preimage(out interval.Interval) interval.Interval {
	return interval.Interval{Start: m.Source.Start + (out.Start - m.Destination.Start), Length: out.Length}
}
