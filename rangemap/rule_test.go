// SPDX-License-Identifier: MIT

package rangemap_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/almanac/interval"
	"github.com/katalvlaran/almanac/rangemap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewRule_Validation checks the constructor's degenerate and overflow guards.
func TestNewRule_Validation(t *testing.T) {
	r, err := rangemap.NewRule(98, 50, 2)
	require.NoError(t, err)
	assert.Equal(t, interval.MustNew(98, 2), r.Source)
	assert.Equal(t, interval.MustNew(50, 2), r.Destination)
	assert.Equal(t, int64(-48), r.Distance)
	assert.False(t, r.Identity())
	assert.Equal(t, "[98,100)->[50,52)", r.String())

	_, err = rangemap.NewRule(1, 2, 0)
	assert.ErrorIs(t, err, interval.ErrDegenerate)

	_, err = rangemap.NewRule(interval.Max-1, 0, 2)
	assert.ErrorIs(t, err, interval.ErrOverflow, "source past the ceiling")

	_, err = rangemap.NewRule(0, interval.Max-1, 2)
	assert.ErrorIs(t, err, interval.ErrOverflow, "destination past the ceiling")

	_, err = rangemap.NewRule(0, math.MaxInt64+1, 1)
	assert.ErrorIs(t, err, interval.ErrOverflow, "offset larger than MaxInt64")

	_, err = rangemap.NewRule(math.MaxInt64+1, 0, 1)
	assert.ErrorIs(t, err, interval.ErrOverflow, "offset smaller than -MaxInt64")

	r, err = rangemap.NewRule(0, math.MaxInt64, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(math.MaxInt64), r.Distance)
}

// TestRule_TranslatePoint covers both bounds of the source.
func TestRule_TranslatePoint(t *testing.T) {
	r, err := rangemap.NewRule(98, 50, 2)
	require.NoError(t, err)

	for _, tc := range []struct {
		in   uint64
		want uint64
		ok   bool
	}{
		{97, 0, false},
		{98, 50, true},
		{99, 51, true},
		{100, 0, false},
	} {
		got, ok := r.TranslatePoint(tc.in)
		assert.Equal(t, tc.ok, ok, "value %d", tc.in)
		assert.Equal(t, tc.want, got, "value %d", tc.in)
	}
}

// TestRule_ClassifyAndTranslate exercises the four overlap cases against the
// source [10,110) shifted by -10.
func TestRule_ClassifyAndTranslate(t *testing.T) {
	rule, err := rangemap.NewRule(10, 0, 100)
	require.NoError(t, err)

	tests := []struct {
		name  string
		in    interval.Interval
		class rangemap.Overlap
		want  interval.Interval
		ok    bool
	}{
		{"before, touching", interval.MustNew(0, 10), rangemap.NoOverlap, interval.Interval{}, false},
		{"after, touching", interval.MustNew(110, 5), rangemap.NoOverlap, interval.Interval{}, false},
		{"far away", interval.MustNew(200, 50), rangemap.NoOverlap, interval.Interval{}, false},
		{"contained", interval.MustNew(20, 50), rangemap.Contained, interval.MustNew(10, 50), true},
		{"exact", interval.MustNew(10, 100), rangemap.Contained, interval.MustNew(0, 100), true},
		{"right overlap", interval.MustNew(50, 100), rangemap.RightOverlap, interval.MustNew(40, 60), true},
		{"left overlap", interval.MustNew(5, 10), rangemap.LeftOverlap, interval.MustNew(0, 5), true},
		{"encloses source", interval.MustNew(0, 200), rangemap.LeftOverlap, interval.MustNew(0, 100), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.class, rule.Classify(tt.in))
			got, ok := rule.TranslateInterval(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}

	_, ok := rule.TranslateInterval(interval.Interval{Start: 20})
	assert.False(t, ok, "empty ranges never translate")
}

// TestOverlap_String keeps case names stable for logs.
func TestOverlap_String(t *testing.T) {
	assert.Equal(t, "NoOverlap", rangemap.NoOverlap.String())
	assert.Equal(t, "Contained", rangemap.Contained.String())
	assert.Equal(t, "RightOverlap", rangemap.RightOverlap.String())
	assert.Equal(t, "LeftOverlap", rangemap.LeftOverlap.String())
	assert.Equal(t, "Overlap(?)", rangemap.Overlap(42).String())
}
