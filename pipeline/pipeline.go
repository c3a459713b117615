// SPDX-License-Identifier: MIT

package pipeline

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/almanac/interval"
	"github.com/katalvlaran/almanac/rangemap"
	"golang.org/x/sync/errgroup"
)

// New builds a pipeline over private, normalized copies of stages; the
// caller's maps are left untouched.
//
// Errors:
//   - ErrNoStages if stages is empty.
//   - ErrNilStage for a nil entry.
//   - Normalization errors, wrapped with the stage position and name.
func New(stages []*rangemap.Map, opts ...Option) (*Pipeline, error) {
	if len(stages) == 0 {
		return nil, ErrNoStages
	}

	p := &Pipeline{
		stages:  make([]*rangemap.Map, len(stages)),
		workers: 1,
		logger:  slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(p)
	}

	for i, m := range stages {
		if m == nil {
			return nil, fmt.Errorf("pipeline: stage %d: %w", i, ErrNilStage)
		}
		c := m.Clone()
		if err := c.Normalize(); err != nil {
			return nil, fmt.Errorf("pipeline: stage %d (%s): %w", i, m.Name(), err)
		}
		p.stages[i] = c
	}

	return p, nil
}

// Len returns the number of stages.
func (p *Pipeline) Len() int { return len(p.stages) }

// Names returns the stage names in order.
func (p *Pipeline) Names() []string {
	names := make([]string, len(p.stages))
	for i, m := range p.stages {
		names[i] = m.Name()
	}

	return names
}

// Run maps every seed through every stage and returns the minimum final value.
//
// Empty seeds are dropped. With more than one worker the seeds are split into
// chunks processed on an errgroup and merged afterwards.
//
// Complexity: O(S·(n log n + n log k)) for S stages, n intervals per working
// set and k rules per stage.
func (p *Pipeline) Run(seeds []interval.Interval) (Result, error) {
	work := interval.Reduce(seeds)
	if len(work) == 0 {
		return Result{}, ErrNoSeeds
	}

	var final []interval.Interval
	if p.workers == 1 || len(work) == 1 {
		final = p.advance(work, nil)
	} else {
		var err error
		if final, err = p.advanceParallel(work); err != nil {
			return Result{}, err
		}
	}

	return p.finish(final)
}

// Trace runs the seeds stage by stage on a single goroutine and reports the
// shape of every stage along with the same Result Run would return. Per-stage
// counts describe the whole working set, so WithWorkers does not apply.
func (p *Pipeline) Trace(seeds []interval.Interval) (Result, []StageReport, error) {
	work := interval.Reduce(seeds)
	if len(work) == 0 {
		return Result{}, nil, ErrNoSeeds
	}

	reports := make([]StageReport, 0, len(p.stages))
	final := p.advance(work, func(r StageReport) { reports = append(reports, r) })
	res, err := p.finish(final)
	if err != nil {
		return Result{}, nil, err
	}

	return res, reports, nil
}

// finish takes the minimum of a final working set.
func (p *Pipeline) finish(final []interval.Interval) (Result, error) {
	low, ok := interval.MinStart(final)
	if !ok {
		// Splitting never loses values, so a non-empty input cannot vanish.
		return Result{}, ErrNoSeeds
	}
	p.logger.Debug("pipeline finished", "stages", len(p.stages), "final_intervals", len(final), "minimum", low)

	return Result{Minimum: low, Final: final}, nil
}

// MapPoint sends a single value through every stage.
func (p *Pipeline) MapPoint(v uint64) uint64 {
	for _, m := range p.stages {
		v = m.QueryPoint(v)
	}

	return v
}

// MinimumPoint returns the smallest MapPoint over values.
// A value equal to interval.Max lies outside the domain and fails with
// interval.ErrOverflow.
func (p *Pipeline) MinimumPoint(values []uint64) (uint64, error) {
	if len(values) == 0 {
		return 0, ErrNoSeeds
	}

	best := interval.Max
	for _, v := range values {
		if v == interval.Max {
			return 0, fmt.Errorf("pipeline: value %d: %w", v, interval.ErrOverflow)
		}
		best = min(best, p.MapPoint(v))
	}

	return best, nil
}

// MinimumFinalValue builds a pipeline over maps and returns the smallest value
// any seed interval reaches after the last stage.
func MinimumFinalValue(seeds []interval.Interval, maps []*rangemap.Map, opts ...Option) (uint64, error) {
	p, err := New(maps, opts...)
	if err != nil {
		return 0, err
	}
	res, err := p.Run(seeds)
	if err != nil {
		return 0, err
	}

	return res.Minimum, nil
}

// advance moves a reduced working set through all stages. report, when set,
// receives one StageReport per stage.
func (p *Pipeline) advance(work []interval.Interval, report func(StageReport)) []interval.Interval {
	for i, m := range p.stages {
		var (
			next      []interval.Interval
			fragments int
		)
		for _, r := range work {
			for _, f := range m.Split(r) {
				next = append(next, f.Destination)
				fragments++
			}
		}
		reduced := interval.Reduce(next)

		p.logger.Debug("stage mapped",
			"stage", i, "name", m.Name(), "in", len(work), "fragments", fragments, "out", len(reduced))
		if report != nil {
			report(StageReport{
				Stage:     i,
				Name:      m.Name(),
				In:        len(work),
				Fragments: fragments,
				Out:       len(reduced),
				Span:      interval.Span(reduced),
			})
		}
		work = reduced
	}

	return work
}

// advanceParallel splits work into at most p.workers chunks and advances them
// concurrently. Chunks share only the read-only stages.
func (p *Pipeline) advanceParallel(work []interval.Interval) ([]interval.Interval, error) {
	chunks := chunk(work, p.workers)
	finals := make([][]interval.Interval, len(chunks))

	var g errgroup.Group
	g.SetLimit(p.workers)
	for i, c := range chunks {
		g.Go(func() error {
			finals[i] = p.advance(c, nil)
			p.logger.Debug("chunk finished", "chunk", i, "seeds", len(c), "final_intervals", len(finals[i]))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("pipeline: parallel run: %w", err)
	}

	var merged []interval.Interval
	for _, f := range finals {
		merged = append(merged, f...)
	}

	return interval.Reduce(merged), nil
}

// chunk splits s into at most n contiguous, nearly equal parts.
func chunk(s []interval.Interval, n int) [][]interval.Interval {
	n = min(n, len(s))
	size := (len(s) + n - 1) / n
	out := make([][]interval.Interval, 0, n)
	for start := 0; start < len(s); start += size {
		out = append(out, s[start:min(start+size, len(s))])
	}

	return out
}
