// SPDX-License-Identifier: MIT

package almanac

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/almanac/rangemap"
)

const (
	seedsPrefix = "seeds:"
	mapSuffix   = " map:"
	maxLineSize = 1 << 20
)

// block collects the rule lines of one map until the next header.
type block struct {
	name    string
	line    int
	triples [][3]uint64
}

// Parse reads an almanac from r.
//
// Algorithm Outline:
//  1. The first non-blank line must be the seeds line.
//  2. A header opens a new block; rule lines append to the open block.
//  3. Each closed block becomes a Map via rangemap.FromTriples, so overlapping
//     or overflowing rules are reported with the header's line number.
func Parse(r io.Reader) (*Almanac, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var (
		a      Almanac
		cur    *block
		seeded bool
		lineNo int
	)
	closeBlock := func() error {
		if cur == nil {
			return nil
		}
		if len(cur.triples) == 0 {
			return fmt.Errorf("almanac: line %d: map %q: %w", cur.line, cur.name, rangemap.ErrEmptyMap)
		}
		m, err := rangemap.FromTriples(cur.name, cur.triples)
		if err != nil {
			return fmt.Errorf("almanac: line %d: %w", cur.line, err)
		}
		a.Maps = append(a.Maps, m)
		cur = nil

		return nil
	}

	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		switch {
		case line == "":
			continue

		case strings.HasPrefix(line, seedsPrefix):
			if seeded {
				return nil, fmt.Errorf("almanac: line %d: second seeds line: %w", lineNo, ErrSyntax)
			}
			seeds, err := parseNumbers(strings.TrimPrefix(line, seedsPrefix))
			if err != nil {
				return nil, fmt.Errorf("almanac: line %d: %w", lineNo, err)
			}
			if len(seeds) == 0 {
				return nil, fmt.Errorf("almanac: line %d: %w", lineNo, ErrNoSeeds)
			}
			a.Seeds = seeds
			seeded = true

		case !seeded:
			return nil, fmt.Errorf("almanac: line %d: %q before seeds: %w", lineNo, line, ErrNoSeeds)

		case strings.HasSuffix(line, mapSuffix):
			name := strings.TrimSuffix(line, mapSuffix)
			if !validMapName(name) {
				return nil, fmt.Errorf("almanac: line %d: bad map header %q: %w", lineNo, line, ErrSyntax)
			}
			if err := closeBlock(); err != nil {
				return nil, err
			}
			cur = &block{name: name, line: lineNo}

		default:
			nums, err := parseNumbers(line)
			if err != nil {
				return nil, fmt.Errorf("almanac: line %d: %w", lineNo, err)
			}
			if len(nums) != 3 {
				return nil, fmt.Errorf("almanac: line %d: want 3 numbers, got %d: %w", lineNo, len(nums), ErrSyntax)
			}
			if cur == nil {
				return nil, fmt.Errorf("almanac: line %d: %w", lineNo, ErrRuleOutsideMap)
			}
			cur.triples = append(cur.triples, [3]uint64{nums[0], nums[1], nums[2]})
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("almanac: read: %w", err)
	}
	if !seeded {
		return nil, ErrNoSeeds
	}
	if err := closeBlock(); err != nil {
		return nil, err
	}
	if len(a.Maps) == 0 {
		return nil, ErrNoMaps
	}

	return &a, nil
}

// ParseString is Parse over an in-memory text.
func ParseString(s string) (*Almanac, error) {
	return Parse(strings.NewReader(s))
}

// parseNumbers splits s on whitespace and parses every field as uint64.
func parseNumbers(s string) ([]uint64, error) {
	fields := strings.Fields(s)
	out := make([]uint64, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.ParseUint(f, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("number %q: %w", f, ErrSyntax)
		}
		out = append(out, n)
	}

	return out, nil
}

// validMapName accepts "<from>-to-<to>" with both categories non-empty and
// free of spaces.
func validMapName(name string) bool {
	from, to, ok := strings.Cut(name, "-to-")

	return ok && from != "" && to != "" && !strings.ContainsAny(name, " \t")
}
