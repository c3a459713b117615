// SPDX-License-Identifier: MIT

// Package pipeline pushes sets of intervals through an ordered sequence of
// rangemap stages and reports the smallest value that comes out.
//
// Algorithm Outline (Run):
//  1. Drop empty seeds; fail with ErrNoSeeds if nothing remains.
//  2. For each stage in order: Split every interval of the working set,
//     concatenate all destinations, then interval.Reduce them.
//  3. Return the minimum Start of the final set.
//
// No stage can be skipped and no interval discarded early: a later stage may
// reorder magnitudes arbitrarily, so a local minimum means nothing until the
// last stage has run.
//
// Concurrency:
//
//	A Pipeline is immutable after New. With WithWorkers(n > 1) the seeds are
//	split into chunks that travel the stages independently on an errgroup;
//	the chunk results are merged at the end. The minimum is identical to the
//	sequential run.
//
// Errors:
//
//   - ErrNoStages: New called with no maps.
//   - ErrNilStage: a nil map in the stage list.
//   - ErrNoSeeds:  nothing to map.
//   - rangemap.ErrEmptyMap / rangemap.ErrOverlappingRules from stage normalization.
//   - interval.ErrOverflow: MinimumPoint given a value outside [0, interval.Max).
package pipeline
