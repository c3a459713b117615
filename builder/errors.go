// SPDX-License-Identifier: MIT

package builder

import "errors"

// ErrTooFewRules indicates a count parameter (rules, stages, seeds) below its minimum.
// Usage: if errors.Is(err, ErrTooFewRules) { /* report invalid size */ }.
var ErrTooFewRules = errors.New("builder: parameter too small")

// ErrNeedRandSource indicates a stochastic constructor was called without
// WithSeed or WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")
