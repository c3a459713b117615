// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/almanac/interval"
	"github.com/katalvlaran/almanac/rangemap"
)

// Method tags used in error context.
const (
	methodRandomMap    = "RandomMap"
	methodRandomStages = "RandomStages"
	methodRandomSeeds  = "RandomSeeds"
	minCount           = 1
)

// RandomMap returns an un-normalized map of `rules` random rules.
//
// Sources are laid out left to right with random gaps (possibly zero) so they
// never overlap; destinations start anywhere in [0, window) and may overlap
// each other freely, as real tables do.
func RandomMap(name string, rules int, opts ...Option) (*rangemap.Map, error) {
	if rules < minCount {
		return nil, fmt.Errorf("%s: rules=%d < min=%d: %w", methodRandomMap, rules, minCount, ErrTooFewRules)
	}
	cfg := newBuilderConfig(opts...)
	if cfg.rng == nil {
		return nil, fmt.Errorf("%s: %w", methodRandomMap, ErrNeedRandSource)
	}

	list := make([]rangemap.Rule, 0, rules)
	cursor := uniform(cfg.rng, cfg.maxLength)
	for i := 0; i < rules; i++ {
		length := 1 + uniform(cfg.rng, cfg.maxLength)
		dst := uniform(cfg.rng, cfg.window)
		r, err := rangemap.NewRule(cursor, dst, length)
		if err != nil {
			return nil, fmt.Errorf("%s: rule %d: %w", methodRandomMap, i, err)
		}
		list = append(list, r)
		cursor = r.Source.End() + uniform(cfg.rng, cfg.maxLength)
	}

	return rangemap.New(name, list)
}

// RandomStages returns `count` independent RandomMap stages named stage-0,
// stage-1, ... Each stage draws from its own derived stream, so adding a
// stage does not change the ones before it.
func RandomStages(count, rules int, opts ...Option) ([]*rangemap.Map, error) {
	if count < minCount {
		return nil, fmt.Errorf("%s: count=%d < min=%d: %w", methodRandomStages, count, minCount, ErrTooFewRules)
	}
	cfg := newBuilderConfig(opts...)
	if cfg.rng == nil {
		return nil, fmt.Errorf("%s: %w", methodRandomStages, ErrNeedRandSource)
	}
	base := cfg.rng

	stages := make([]*rangemap.Map, 0, count)
	for i := 0; i < count; i++ {
		stageOpts := append(append([]Option(nil), opts...), WithRand(deriveRNG(base, uint64(i))))
		m, err := RandomMap(fmt.Sprintf("stage-%d", i), rules, stageOpts...)
		if err != nil {
			return nil, fmt.Errorf("%s: stage %d: %w", methodRandomStages, i, err)
		}
		stages = append(stages, m)
	}

	return stages, nil
}

// IdentityMap returns a map whose only rule is [0,1)→[0,1); once normalized it
// leaves every value unchanged.
func IdentityMap(name string) *rangemap.Map {
	r, err := rangemap.NewRule(0, 0, 1)
	if err != nil {
		panic(err)
	}
	m, err := rangemap.New(name, []rangemap.Rule{r})
	if err != nil {
		panic(err)
	}

	return m
}

// RandomSeeds returns n non-empty intervals starting in [0, window).
func RandomSeeds(n int, opts ...Option) ([]interval.Interval, error) {
	if n < minCount {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomSeeds, n, minCount, ErrTooFewRules)
	}
	cfg := newBuilderConfig(opts...)
	if cfg.rng == nil {
		return nil, fmt.Errorf("%s: %w", methodRandomSeeds, ErrNeedRandSource)
	}

	seeds := make([]interval.Interval, 0, n)
	for i := 0; i < n; i++ {
		r, err := interval.New(uniform(cfg.rng, cfg.window), 1+uniform(cfg.rng, cfg.maxLength))
		if err != nil {
			return nil, fmt.Errorf("%s: seed %d: %w", methodRandomSeeds, i, err)
		}
		seeds = append(seeds, r)
	}

	return seeds, nil
}
