// SPDX-License-Identifier: MIT

package almanac

import (
	"fmt"

	"github.com/katalvlaran/almanac/interval"
	"github.com/katalvlaran/almanac/pipeline"
)

// SeedRanges reads the seed values as (start, length) pairs. Zero-length
// pairs are kept; the pipeline drops them.
func (a *Almanac) SeedRanges() ([]interval.Interval, error) {
	if len(a.Seeds) == 0 {
		return nil, ErrNoSeeds
	}
	if len(a.Seeds)%2 != 0 {
		return nil, fmt.Errorf("almanac: %d values: %w", len(a.Seeds), ErrOddSeeds)
	}

	out := make([]interval.Interval, 0, len(a.Seeds)/2)
	for i := 0; i < len(a.Seeds); i += 2 {
		start, length := a.Seeds[i], a.Seeds[i+1]
		if length == 0 {
			out = append(out, interval.Interval{Start: start})
			continue
		}
		r, err := interval.New(start, length)
		if err != nil {
			return nil, fmt.Errorf("almanac: seed pair %d: %w", i/2, err)
		}
		out = append(out, r)
	}

	return out, nil
}

// Pipeline builds a pipeline over the maps in declaration order.
func (a *Almanac) Pipeline(opts ...pipeline.Option) (*pipeline.Pipeline, error) {
	if len(a.Maps) == 0 {
		return nil, ErrNoMaps
	}

	return pipeline.New(a.Maps, opts...)
}

// Solve answers both questions over one pipeline.
func Solve(a *Almanac, opts ...pipeline.Option) (Answer, error) {
	p, err := a.Pipeline(opts...)
	if err != nil {
		return Answer{}, err
	}

	points, err := p.MinimumPoint(a.Seeds)
	if err != nil {
		return Answer{}, fmt.Errorf("almanac: points: %w", err)
	}
	seeds, err := a.SeedRanges()
	if err != nil {
		return Answer{}, err
	}
	res, err := p.Run(seeds)
	if err != nil {
		return Answer{}, fmt.Errorf("almanac: ranges: %w", err)
	}

	return Answer{Points: points, Ranges: res.Minimum}, nil
}
