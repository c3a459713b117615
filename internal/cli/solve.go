// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"io"

	"github.com/katalvlaran/almanac/pipeline"
	"github.com/spf13/cobra"
)

// solveResult is the printable outcome of solve; a nil field was not asked for.
type solveResult struct {
	Points *uint64 `json:"points,omitempty" yaml:"points,omitempty"`
	Ranges *uint64 `json:"ranges,omitempty" yaml:"ranges,omitempty"`
}

func (r solveResult) renderText(w io.Writer) error {
	if r.Points != nil {
		if _, err := fmt.Fprintf(w, "points: %d\n", *r.Points); err != nil {
			return err
		}
	}
	if r.Ranges != nil {
		if _, err := fmt.Fprintf(w, "ranges: %d\n", *r.Ranges); err != nil {
			return err
		}
	}
	return nil
}

// NewSolveCommand creates the solve command.
func NewSolveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "solve [file|-]",
		Short: "Print the lowest location for the seeds",
		Long: `Parse an almanac and print the lowest final value reached by the seeds
read as individual values (part 1), as (start, length) ranges (part 2), or both.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e := getEnv(cmd.Context())

			a, err := readAlmanac(cmd, args)
			if err != nil {
				return err
			}
			p, err := a.Pipeline(pipeline.WithWorkers(e.cfg.Workers), pipeline.WithLogger(e.logger))
			if err != nil {
				return err
			}
			e.logger.Info("almanac loaded", "seeds", len(a.Seeds), "maps", p.Len(), "workers", e.cfg.Workers)

			var res solveResult
			if e.cfg.Part != 2 {
				low, err := p.MinimumPoint(a.Seeds)
				if err != nil {
					return err
				}
				res.Points = &low
			}
			if e.cfg.Part != 1 {
				seeds, err := a.SeedRanges()
				if err != nil {
					return err
				}
				out, err := p.Run(seeds)
				if err != nil {
					return err
				}
				res.Ranges = &out.Minimum
			}

			return render(cmd.OutOrStdout(), e.cfg.Output, res)
		},
	}
}
