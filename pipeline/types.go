// SPDX-License-Identifier: MIT

package pipeline

import (
	"errors"
	"log/slog"

	"github.com/katalvlaran/almanac/interval"
	"github.com/katalvlaran/almanac/rangemap"
)

// Sentinel errors for pipeline construction and runs.
var (
	// ErrNoStages indicates a pipeline without maps.
	ErrNoStages = errors.New("pipeline: no stages")

	// ErrNilStage indicates a nil map in the stage list.
	ErrNilStage = errors.New("pipeline: nil stage")

	// ErrNoSeeds indicates that no non-empty seed was supplied.
	ErrNoSeeds = errors.New("pipeline: no seeds")
)

// Result is the outcome of Run.
type Result struct {
	// Minimum is the smallest value reachable after the last stage.
	Minimum uint64

	// Final is the reduced working set after the last stage.
	Final []interval.Interval
}

// StageReport describes one stage of a traced run.
type StageReport struct {
	Stage     int    // zero-based position
	Name      string // map name
	In        int    // intervals entering the stage
	Fragments int    // pieces produced by splitting
	Out       int    // intervals left after reduction
	Span      uint64 // values covered by the output
}

// Pipeline is an ordered, normalized sequence of stages.
type Pipeline struct {
	stages  []*rangemap.Map
	workers int
	logger  *slog.Logger
}
