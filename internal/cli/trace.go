// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/katalvlaran/almanac/interval"
	"github.com/katalvlaran/almanac/pipeline"
	"github.com/spf13/cobra"
)

type traceRow struct {
	Stage     int    `json:"stage" yaml:"stage"`
	Name      string `json:"map" yaml:"map"`
	In        int    `json:"in" yaml:"in"`
	Fragments int    `json:"fragments" yaml:"fragments"`
	Out       int    `json:"out" yaml:"out"`
	Span      uint64 `json:"span" yaml:"span"`
}

type traceResult struct {
	Seeds   string     `json:"seeds" yaml:"seeds"` // "points" or "ranges"
	Stages  []traceRow `json:"stages" yaml:"stages"`
	Minimum uint64     `json:"minimum" yaml:"minimum"`
}

func (r traceResult) renderText(w io.Writer) error {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Stage", "Map", "In", "Fragments", "Out", "Span"})
	for _, s := range r.Stages {
		t.AppendRow(table.Row{s.Stage, s.Name, s.In, s.Fragments, s.Out, s.Span})
	}
	t.Render()

	_, err := fmt.Fprintf(w, "minimum (%s): %d\n", r.Seeds, r.Minimum)
	return err
}

// NewTraceCommand creates the trace command.
func NewTraceCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "trace [file|-]",
		Short: "Show how each map reshapes the seed set",
		Long: `Run the seeds through every map and print, per stage, how many intervals
went in, how many fragments splitting produced, how many remained after merging
and how many values they cover.

--part 1 traces each seed as a single value; seeds that are adjacent or equal
merge into one interval before the first map, so stage 0 may count fewer
intervals than there are seeds. Otherwise seeds are read as (start, length)
ranges. Tracing always runs on one goroutine; --workers only affects solve.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e := getEnv(cmd.Context())

			a, err := readAlmanac(cmd, args)
			if err != nil {
				return err
			}
			p, err := a.Pipeline(pipeline.WithLogger(e.logger))
			if err != nil {
				return err
			}
			if e.cfg.Workers > 1 {
				e.logger.Debug("trace ignores workers", "workers", e.cfg.Workers)
			}

			res := traceResult{Seeds: "ranges"}
			var seeds []interval.Interval
			if e.cfg.Part == 1 {
				res.Seeds = "points"
				for _, v := range a.Seeds {
					r, err := interval.New(v, 1)
					if err != nil {
						return fmt.Errorf("seed %d: %w", v, err)
					}
					seeds = append(seeds, r)
				}
			} else if seeds, err = a.SeedRanges(); err != nil {
				return err
			}

			out, reports, err := p.Trace(seeds)
			if err != nil {
				return err
			}
			for _, r := range reports {
				res.Stages = append(res.Stages, traceRow(r))
			}
			res.Minimum = out.Minimum

			return render(cmd.OutOrStdout(), e.cfg.Output, res)
		},
	}
}
