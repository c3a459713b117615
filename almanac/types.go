// SPDX-License-Identifier: MIT

package almanac

import (
	"errors"

	"github.com/katalvlaran/almanac/rangemap"
)

// Sentinel errors for parsing and solving.
var (
	// ErrSyntax indicates a line that fits no part of the format.
	ErrSyntax = errors.New("almanac: syntax error")

	// ErrNoSeeds indicates a missing or empty seeds line.
	ErrNoSeeds = errors.New("almanac: no seeds")

	// ErrNoMaps indicates an almanac without map blocks.
	ErrNoMaps = errors.New("almanac: no maps")

	// ErrRuleOutsideMap indicates a rule line before the first map header.
	ErrRuleOutsideMap = errors.New("almanac: rule outside a map block")

	// ErrOddSeeds indicates seed values that cannot be paired into ranges.
	ErrOddSeeds = errors.New("almanac: odd number of seed values")
)

// Almanac is a parsed input: the seed line and the maps in declaration order.
type Almanac struct {
	Seeds []uint64
	Maps  []*rangemap.Map
}

// Answer holds both minima.
type Answer struct {
	Points uint64 `json:"points" yaml:"points"` // seeds read as individual values
	Ranges uint64 `json:"ranges" yaml:"ranges"` // seeds read as (start, length) pairs
}
