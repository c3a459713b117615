// SPDX-License-Identifier: MIT

package rangemap_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/almanac/builder"
	"github.com/katalvlaran/almanac/interval"
	"github.com/katalvlaran/almanac/rangemap"
	"github.com/stretchr/testify/require"
)

const (
	propRounds    = 50
	propWindow    = 400
	propMaxLength = 30
)

// randomMaps yields deterministic random maps small enough to check value by value.
func randomMaps(t *testing.T, normalize bool) []*rangemap.Map {
	t.Helper()
	rng := rand.New(rand.NewSource(2023))
	out := make([]*rangemap.Map, 0, propRounds)
	for i := 0; i < propRounds; i++ {
		m, err := builder.RandomMap("prop", 1+rng.Intn(8),
			builder.WithRand(rng), builder.WithWindow(propWindow), builder.WithMaxLength(propMaxLength))
		require.NoError(t, err)
		if normalize {
			require.NoError(t, m.Normalize())
		}
		out = append(out, m)
	}

	return out
}

// TestNormalized_CoverageAndDisjointness: sources are sorted, disjoint and
// tile [0, Max) without holes.
func TestNormalized_CoverageAndDisjointness(t *testing.T) {
	for i, m := range randomMaps(t, true) {
		rules := m.Rules()
		require.Equal(t, uint64(0), rules[0].Source.Start, "map %d starts at zero", i)
		for j := 1; j < len(rules); j++ {
			require.Equal(t, rules[j-1].Source.End(), rules[j].Source.Start, "map %d rule %d is contiguous", i, j)
		}
		require.Equal(t, interval.Max, rules[len(rules)-1].Source.End(), "map %d reaches the ceiling", i)
	}
}

// TestNormalized_TranslationConsistency: every value of every rule's source
// translates by that rule's distance, and the identity stretches stay fixed.
func TestNormalized_TranslationConsistency(t *testing.T) {
	for i, m := range randomMaps(t, true) {
		for _, r := range m.Rules() {
			if r.Source.Start > 2*propWindow {
				continue
			}
			last := min(r.Source.End(), 2*propWindow)
			for v := r.Source.Start; v < last; v++ {
				want := uint64(int64(v) + r.Distance)
				require.Equal(t, want, m.QueryPoint(v), "map %d rule %v value %d", i, r, v)
			}
		}
	}
}

// TestSplit_AgreesWithQueryPoint: fragments tile the query and each value
// lands where QueryPoint sends it, on normalized and sparse maps alike.
func TestSplit_AgreesWithQueryPoint(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for _, normalize := range []bool{false, true} {
		for i, m := range randomMaps(t, normalize) {
			for q := 0; q < 10; q++ {
				r := interval.MustNew(uint64(rng.Intn(propWindow)), 1+uint64(rng.Intn(2*propMaxLength)))
				frags := m.Split(r)
				require.NotEmpty(t, frags)

				cursor := r.Start
				for _, f := range frags {
					require.Equal(t, cursor, f.Source.Start, "map %d query %v: fragments must be contiguous", i, r)
					require.Equal(t, f.Source.Length, f.Destination.Length)
					for v := f.Source.Start; v < f.Source.End(); v++ {
						require.Equal(t, m.QueryPoint(v), f.Destination.Start+(v-f.Source.Start),
							"map %d query %v value %d", i, r, v)
					}
					if normalize {
						require.NotEqual(t, rangemap.IdentityFragment, f.Rule)
					}
					cursor = f.Source.End()
				}
				require.Equal(t, r.End(), cursor, "map %d query %v: fragments must end at the query end", i, r)

				got := m.QueryRange(r)
				for v := r.Start; v < r.End(); v++ {
					require.True(t, covers(got, m.QueryPoint(v)), "map %d query %v value %d missing from QueryRange", i, r, v)
				}
			}
		}
	}
}

func covers(set []interval.Interval, v uint64) bool {
	for _, r := range set {
		if r.Contains(v) {
			return true
		}
	}

	return false
}
