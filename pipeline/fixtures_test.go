// SPDX-License-Identifier: MIT

package pipeline_test

import (
	"testing"

	"github.com/katalvlaran/almanac/interval"
	"github.com/katalvlaran/almanac/rangemap"
	"github.com/stretchr/testify/require"
)

// exampleTables is the seven-stage sample almanac as (destination, source, length).
var exampleTables = []struct {
	name    string
	triples [][3]uint64
}{
	{"seed-to-soil", [][3]uint64{{50, 98, 2}, {52, 50, 48}}},
	{"soil-to-fertilizer", [][3]uint64{{0, 15, 37}, {37, 52, 2}, {39, 0, 15}}},
	{"fertilizer-to-water", [][3]uint64{{49, 53, 8}, {0, 11, 42}, {42, 0, 7}, {57, 7, 4}}},
	{"water-to-light", [][3]uint64{{88, 18, 7}, {18, 25, 70}}},
	{"light-to-temperature", [][3]uint64{{45, 77, 23}, {81, 45, 19}, {68, 64, 13}}},
	{"temperature-to-humidity", [][3]uint64{{0, 69, 1}, {1, 0, 69}}},
	{"humidity-to-location", [][3]uint64{{60, 56, 37}, {56, 93, 4}}},
}

// exampleSeeds is the sample seed line: 79 14 55 13.
var exampleSeeds = []uint64{79, 14, 55, 13}

// exampleMaps builds fresh, un-normalized maps for the sample almanac.
func exampleMaps(t testing.TB) []*rangemap.Map {
	t.Helper()
	maps := make([]*rangemap.Map, 0, len(exampleTables))
	for _, tbl := range exampleTables {
		m, err := rangemap.FromTriples(tbl.name, tbl.triples)
		require.NoError(t, err)
		maps = append(maps, m)
	}

	return maps
}

// exampleSeedRanges pairs the sample seed line as (start, length).
func exampleSeedRanges() []interval.Interval {
	return []interval.Interval{interval.MustNew(79, 14), interval.MustNew(55, 13)}
}
