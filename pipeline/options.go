// SPDX-License-Identifier: MIT

package pipeline

import "log/slog"

// Option configures a Pipeline before creation.
type Option func(p *Pipeline)

// WithWorkers sets how many seed chunks may travel the stages concurrently.
// 1 (the default) runs sequentially. Panics when n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("pipeline: WithWorkers(n < 1)")
	}
	return func(p *Pipeline) { p.workers = n }
}

// WithLogger attaches a structured logger for stage-level debug events.
// Panics on nil; the default discards everything.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("pipeline: WithLogger(nil)")
	}
	return func(p *Pipeline) { p.logger = l }
}
