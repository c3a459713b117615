// SPDX-License-Identifier: MIT

package rangemap

import (
	"cmp"
	"fmt"
	"slices"
	"sort"

	"github.com/katalvlaran/almanac/interval"
)

// New returns a Map holding a sorted copy of rules.
// It fails with ErrOverlappingRules when two sources intersect. An empty rule
// list is accepted here; it is rejected later by Normalize.
func New(name string, rules []Rule) (*Map, error) {
	sorted := sortedCopy(rules)
	if err := checkDisjoint(sorted); err != nil {
		return nil, fmt.Errorf("rangemap: map %q: %w", name, err)
	}

	return &Map{name: name, rules: sorted}, nil
}

// FromTriples builds a Map from (destination, source, length) triples, the
// order in which almanac tables declare them.
func FromTriples(name string, triples [][3]uint64) (*Map, error) {
	rules := make([]Rule, 0, len(triples))
	for i, t := range triples {
		r, err := NewRule(t[1], t[0], t[2])
		if err != nil {
			return nil, fmt.Errorf("rangemap: map %q, rule %d: %w", name, i, err)
		}
		rules = append(rules, r)
	}

	return New(name, rules)
}

// Normalize returns rules sorted by source start with every gap in [0, Max)
// filled by an identity rule.
//
// Algorithm Outline:
//  1. Reject an empty list (ErrEmptyMap) and overlapping sources.
//  2. Sort by Source.Start.
//  3. Prepend [0, first.Start) when first.Start > 0.
//  4. Insert [cur.End, next.Start) wherever cur.End < next.Start.
//  5. Append [last.End, Max) when last.End < Max.
//
// The input is not modified. Normalize is idempotent on complete input.
//
// Complexity: O(k log k) time, O(k) memory.
func Normalize(rules []Rule) ([]Rule, error) {
	if len(rules) == 0 {
		return nil, ErrEmptyMap
	}
	sorted := sortedCopy(rules)
	if err := checkDisjoint(sorted); err != nil {
		return nil, err
	}

	out := make([]Rule, 0, 2*len(sorted)+1)
	if first := sorted[0].Source.Start; first > 0 {
		out = append(out, identityRule(0, first))
	}
	for i, cur := range sorted {
		out = append(out, cur)
		if i+1 == len(sorted) {
			break
		}
		if end, next := cur.Source.End(), sorted[i+1].Source.Start; end < next {
			out = append(out, identityRule(end, next-end))
		}
	}
	if last := sorted[len(sorted)-1].Source.End(); last < interval.Max {
		out = append(out, identityRule(last, interval.Max-last))
	}

	return out, nil
}

// Normalize fills the map's identity gaps in place. Calling it again is a no-op.
func (m *Map) Normalize() error {
	if m.normalized {
		return nil
	}
	rules, err := Normalize(m.rules)
	if err != nil {
		return fmt.Errorf("rangemap: map %q: %w", m.name, err)
	}
	m.rules = rules
	m.normalized = true

	return nil
}

// Clone returns an independent copy of the map.
func (m *Map) Clone() *Map {
	return &Map{name: m.name, rules: slices.Clone(m.rules), normalized: m.normalized}
}

// Name returns the label given at construction, e.g. "seed-to-soil".
func (m *Map) Name() string { return m.name }

// Len returns the number of rules, synthetic ones included.
func (m *Map) Len() int { return len(m.rules) }

// Normalized reports whether Normalize has run.
func (m *Map) Normalized() bool { return m.normalized }

// Rules returns a copy of the rules in source order.
func (m *Map) Rules() []Rule { return slices.Clone(m.rules) }

// QueryPoint translates a single value. Values no rule covers map to themselves,
// which only happens on a map that has not been normalized (or for interval.Max).
func (m *Map) QueryPoint(v uint64) uint64 {
	i := sort.Search(len(m.rules), func(i int) bool { return m.rules[i].Source.Start > v }) - 1
	if i >= 0 {
		if out, ok := m.rules[i].TranslatePoint(v); ok {
			return out
		}
	}

	return v
}

// Split partitions r against the map.
//
// Fragments come back ordered by Source.Start; their sources are disjoint and
// tile r exactly. Every rule whose source overlaps r contributes the piece
// TranslateInterval returns; the pre-translation span of each piece is
// recovered and any stretch of r left between pieces is emitted as an
// identity fragment. On a normalized map no identity fragment is inferred.
//
// Complexity: O(log k + f) time for f fragments.
func (m *Map) Split(r interval.Interval) []Fragment {
	if r.IsEmpty() {
		return nil
	}

	var (
		out    []Fragment
		cursor = r.Start
		end    = r.End()
	)
	first := sort.Search(len(m.rules), func(i int) bool { return m.rules[i].Source.End() > r.Start })
	for i := first; i < len(m.rules) && m.rules[i].Source.Start < end; i++ {
		rule := m.rules[i]
		dst, ok := rule.TranslateInterval(r)
		if !ok {
			continue
		}
		src := rule.preimage(dst)
		if src.Start > cursor {
			gap := interval.Interval{Start: cursor, Length: src.Start - cursor}
			out = append(out, Fragment{Source: gap, Destination: gap, Rule: IdentityFragment})
		}
		out = append(out, Fragment{Source: src, Destination: dst, Rule: i})
		cursor = src.End()
	}
	if cursor < end {
		gap := interval.Interval{Start: cursor, Length: end - cursor}
		out = append(out, Fragment{Source: gap, Destination: gap, Rule: IdentityFragment})
	}

	return out
}

// QueryRange translates r and returns the reduced set of destination intervals.
func (m *Map) QueryRange(r interval.Interval) []interval.Interval {
	frags := m.Split(r)
	dst := make([]interval.Interval, len(frags))
	for i, f := range frags {
		dst[i] = f.Destination
	}

	return interval.Reduce(dst)
}

func sortedCopy(rules []Rule) []Rule {
	out := slices.Clone(rules)
	slices.SortFunc(out, func(a, b Rule) int {
		return cmp.Compare(a.Source.Start, b.Source.Start)
	})

	return out
}

// checkDisjoint expects rules sorted by Source.Start.
func checkDisjoint(sorted []Rule) error {
	for i := 1; i < len(sorted); i++ {
		if sorted[i-1].Source.End() > sorted[i].Source.Start {
			return fmt.Errorf("%v and %v: %w", sorted[i-1].Source, sorted[i].Source, ErrOverlappingRules)
		}
	}

	return nil
}
