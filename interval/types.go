// SPDX-License-Identifier: MIT

package interval

import (
	"errors"
	"fmt"
	"math"
)

// Max is the exclusive ceiling of the value domain.
const Max uint64 = math.MaxUint64

// Sentinel errors for interval construction and arithmetic.
var (
	// ErrDegenerate indicates a zero-length interval where a non-empty one is required.
	ErrDegenerate = errors.New("interval: zero-length interval")

	// ErrOverflow indicates that a bound would leave [0, Max].
	ErrOverflow = errors.New("interval: arithmetic overflow")
)

// Interval is the half-open range [Start, Start+Length).
//
// Intervals are plain values: every transform returns a new Interval and no
// method mutates its receiver. The zero value is the empty interval at 0.
type Interval struct {
	// Start is the inclusive lower bound.
	Start uint64

	// Length is the number of values covered; End() == Start+Length.
	Length uint64
}

// String renders the interval as "[start,end)".
func (r Interval) String() string {
	return fmt.Sprintf("[%d,%d)", r.Start, r.End())
}
