// SPDX-License-Identifier: MIT

package interval_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/almanac/interval"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestReduce_Cases covers the merge rule, including touching neighbours.
func TestReduce_Cases(t *testing.T) {
	tests := []struct {
		name string
		in   []interval.Interval
		want []interval.Interval
	}{
		{
			name: "empty",
			in:   nil,
			want: nil,
		},
		{
			name: "overlapping pair",
			in:   []interval.Interval{interval.MustNew(10, 10), interval.MustNew(15, 10)},
			want: []interval.Interval{interval.MustNew(10, 15)},
		},
		{
			name: "touching pair merges",
			in:   []interval.Interval{interval.MustNew(20, 5), interval.MustNew(10, 10)},
			want: []interval.Interval{interval.MustNew(10, 15)},
		},
		{
			name: "nested",
			in:   []interval.Interval{interval.MustNew(0, 100), interval.MustNew(40, 10)},
			want: []interval.Interval{interval.MustNew(0, 100)},
		},
		{
			name: "disjoint kept sorted",
			in:   []interval.Interval{interval.MustNew(60, 5), interval.MustNew(0, 5), interval.MustNew(30, 5)},
			want: []interval.Interval{interval.MustNew(0, 5), interval.MustNew(30, 5), interval.MustNew(60, 5)},
		},
		{
			name: "degenerate dropped",
			in:   []interval.Interval{{Start: 3}, interval.MustNew(7, 1), {Start: 100}},
			want: []interval.Interval{interval.MustNew(7, 1)},
		},
		{
			name: "all degenerate",
			in:   []interval.Interval{{Start: 3}, {Start: 4}},
			want: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, interval.Reduce(tt.in))
		})
	}
}

// TestReduce_DoesNotMutateInput guards the value semantics of working sets.
func TestReduce_DoesNotMutateInput(t *testing.T) {
	in := []interval.Interval{interval.MustNew(50, 5), interval.MustNew(10, 45)}
	snapshot := append([]interval.Interval(nil), in...)

	_ = interval.Reduce(in)
	assert.Equal(t, snapshot, in)
}

// TestReduce_Idempotent checks Reduce(Reduce(x)) == Reduce(x) and that the
// reduced set is sorted, gapped and covers exactly the same values.
func TestReduce_Idempotent(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for round := 0; round < 200; round++ {
		n := rng.Intn(20)
		in := make([]interval.Interval, n)
		for i := range in {
			in[i] = interval.Interval{Start: uint64(rng.Intn(200)), Length: uint64(rng.Intn(15))}
		}

		once := interval.Reduce(in)
		require.Equal(t, once, interval.Reduce(once), "round %d", round)

		for i := 1; i < len(once); i++ {
			require.Less(t, once[i-1].End(), once[i].Start, "reduced intervals must be separated by a gap")
		}
		for v := uint64(0); v < 220; v++ {
			require.Equal(t, coveredBy(in, v), coveredBy(once, v), "coverage of %d, round %d", v, round)
		}
	}
}

// TestMinStartAndSpan checks the working-set summaries.
func TestMinStartAndSpan(t *testing.T) {
	_, ok := interval.MinStart(nil)
	assert.False(t, ok)

	_, ok = interval.MinStart([]interval.Interval{{Start: 1}})
	assert.False(t, ok, "degenerate intervals carry no candidate")

	set := []interval.Interval{interval.MustNew(82, 1), {Start: 2}, interval.MustNew(46, 10), interval.MustNew(50, 20)}
	low, ok := interval.MinStart(set)
	require.True(t, ok)
	assert.Equal(t, uint64(46), low)

	assert.Equal(t, uint64(25), interval.Span(set))
}

func coveredBy(set []interval.Interval, v uint64) bool {
	for _, r := range set {
		if r.Contains(v) {
			return true
		}
	}

	return false
}
