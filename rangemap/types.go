// SPDX-License-Identifier: MIT

package rangemap

import (
	"errors"

	"github.com/katalvlaran/almanac/interval"
)

// Sentinel errors for map construction.
var (
	// ErrEmptyMap indicates a map without rules was passed to normalization.
	ErrEmptyMap = errors.New("rangemap: map has no rules")

	// ErrOverlappingRules indicates two declared source intervals intersect.
	ErrOverlappingRules = errors.New("rangemap: overlapping source intervals")
)

// IdentityFragment is the Fragment.Rule value of a gap that no rule covers.
const IdentityFragment = -1

// Overlap classifies how a queried interval sits against a rule's source.
type Overlap int

const (
	// NoOverlap: the interval and the source share no value.
	NoOverlap Overlap = iota

	// Contained: the interval lies entirely inside the source.
	Contained

	// RightOverlap: the interval starts inside the source and runs past its end.
	RightOverlap

	// LeftOverlap: the interval starts before the source and reaches into it.
	LeftOverlap
)

// String returns the case name.
func (o Overlap) String() string {
	switch o {
	case NoOverlap:
		return "NoOverlap"
	case Contained:
		return "Contained"
	case RightOverlap:
		return "RightOverlap"
	case LeftOverlap:
		return "LeftOverlap"
	default:
		return "Overlap(?)"
	}
}

// Rule is one source→destination translation.
//
// Invariants:
//   - Source.Length == Destination.Length > 0.
//   - Distance == Destination.Start - Source.Start.
type Rule struct {
	Source      interval.Interval
	Destination interval.Interval
	Distance    int64
}

// Fragment is one piece of a split interval.
//
// Source is the part of the queried interval the piece covers and Destination
// is where it lands. Rule is the index of the translating rule in Map.Rules(),
// or IdentityFragment for an uncovered gap passed through unchanged.
type Fragment struct {
	Source      interval.Interval
	Destination interval.Interval
	Rule        int
}

// Map is an ordered collection of Rules sorted by Source.Start.
//
// A Map is built once and normalized at most once; after that it is
// read-only and safe for concurrent queries.
type Map struct {
	name       string
	rules      []Rule
	normalized bool
}
