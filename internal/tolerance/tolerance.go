// Package tolerance computes the range of cook times accepted in place of a target.
package tolerance

import (
	"errors"
	"fmt"
	"math"
)

const (
	DefaultPercent = 0.05
	DefaultBase    = 3
)

// Allowance configures how far a substitute may stray from the target:
// Base seconds plus Percent of the target, rounded up.
type Allowance struct {
	Percent float64 `json:"percent"`
	Base    int     `json:"base"`
}

// DefaultAllowance returns 3 seconds plus 5%.
func DefaultAllowance() Allowance {
	return Allowance{Percent: DefaultPercent, Base: DefaultBase}
}

// Window is an inclusive range of total seconds.
type Window struct {
	Lower int `json:"lower"`
	Upper int `json:"upper"`
}

// Validate rejects negative or non-finite allowances.
func (a Allowance) Validate() error {
	if math.IsNaN(a.Percent) || math.IsInf(a.Percent, 0) {
		return fmt.Errorf("percent allowance must be finite, got %v", a.Percent)
	}
	if a.Percent < 0 {
		return fmt.Errorf("percent allowance must not be negative, got %v", a.Percent)
	}
	if a.Base < 0 {
		return fmt.Errorf("base allowance must not be negative, got %d", a.Base)
	}
	return nil
}

// ErrOverflow is raised when a deviation does not fit in an int.
var ErrOverflow = errors.New("tolerance window overflows")

// Deviation returns the number of seconds a substitute may differ from target.
// It panics when the result would overflow.
func (a Allowance) Deviation(target int) int {
	extra := math.Ceil(float64(target) * a.Percent)
	if extra >= float64(math.MaxInt-a.Base-target) {
		panic(fmt.Errorf("%w: target %d, allowance %+v", ErrOverflow, target, a))
	}
	return a.Base + int(extra)
}

// Compute returns the window around target. Lower is clamped at 0.
// It panics on a negative target, an invalid allowance, or an upper bound
// that does not fit in an int.
func Compute(target int, a Allowance) Window {
	if target < 0 {
		panic(fmt.Sprintf("tolerance: negative target %d", target))
	}
	if err := a.Validate(); err != nil {
		panic(fmt.Sprintf("tolerance: invalid allowance %+v: %v", a, err))
	}

	dev := a.Deviation(target)
	lower := target - dev
	if lower < 0 {
		lower = 0
	}
	return Window{Lower: lower, Upper: target + dev}
}

// Contains reports whether t lies in the window, bounds included.
func (w Window) Contains(t int) bool {
	return t >= w.Lower && t <= w.Upper
}

// Width returns the number of whole seconds in the window.
func (w Window) Width() int {
	if w.Upper < w.Lower {
		return 0
	}
	return w.Upper - w.Lower + 1
}
