// Package optimizer searches the tolerance window around a cook time for the
// duration that is quickest to type.
package optimizer

import (
	"errors"
	"fmt"
	"math"
	"sync"

	"github.com/rcliao/microcombo/internal/cost"
	"github.com/rcliao/microcombo/internal/entry"
	"github.com/rcliao/microcombo/internal/model"
	"github.com/rcliao/microcombo/internal/tolerance"
)

// ErrDegenerateWindow is raised when a window's upper bound falls below its lower bound.
var ErrDegenerateWindow = errors.New("degenerate tolerance window")

// costEpsilon is the difference below which two costs are considered equal.
const costEpsilon = 1e-9

// Options configures a search. A zero MoveTime means cost.DefaultMoveTime.
type Options struct {
	Allowance tolerance.Allowance
	MoveTime  float64
}

// DefaultOptions returns the default allowance and move time.
func DefaultOptions() Options {
	return Options{
		Allowance: tolerance.DefaultAllowance(),
		MoveTime:  cost.DefaultMoveTime,
	}
}

// Validate rejects invalid allowances and negative or non-finite move times.
func (o Options) Validate() error {
	if err := o.Allowance.Validate(); err != nil {
		return err
	}
	if math.IsNaN(o.MoveTime) || math.IsInf(o.MoveTime, 0) || o.MoveTime < 0 {
		return fmt.Errorf("move time must be a finite non-negative number, got %v", o.MoveTime)
	}
	return nil
}

func (o Options) withDefaults() Options {
	if o.MoveTime == 0 {
		o.MoveTime = cost.DefaultMoveTime
	}
	return o
}

func (o Options) mustValidate() Options {
	if err := o.Validate(); err != nil {
		panic(fmt.Errorf("optimizer: invalid options: %w", err))
	}
	return o.withDefaults()
}

// Evaluate composes total and estimates its entry cost. It panics on invalid options.
func Evaluate(total int, opts Options) model.CandidateResult {
	opts = opts.mustValidate()
	digits := entry.Compose(total)
	return model.CandidateResult{
		Digits:       digits,
		TotalSeconds: total,
		Cost:         cost.Estimate(digits, opts.MoveTime),
	}
}

// Window returns the checked search window for target.
func Window(target model.TimeValue, opts Options) tolerance.Window {
	w := tolerance.Compute(target.TotalSeconds(), opts.Allowance)
	if w.Upper < w.Lower {
		panic(fmt.Errorf("%w: [%d, %d]", ErrDegenerateWindow, w.Lower, w.Upper))
	}
	return w
}

// Optimize returns the cheapest candidate in the window around target. Ties
// on cost go to the candidate closest to the target, then to the shorter time.
// The result is never costlier than typing the target itself.
func Optimize(target model.TimeValue, opts Options) model.CandidateResult {
	opts = opts.mustValidate()
	total := target.TotalSeconds()
	w := Window(target, opts)
	return scan(total, w.Lower, w.Upper, Evaluate(total, opts), opts)
}

// OptimizeParallel is Optimize with the window split across workers.
// Its result is identical to Optimize for the same inputs.
func OptimizeParallel(target model.TimeValue, opts Options, workers int) model.CandidateResult {
	opts = opts.mustValidate()
	total := target.TotalSeconds()
	w := Window(target, opts)
	start := Evaluate(total, opts)

	if workers > w.Width() {
		workers = w.Width()
	}
	if workers <= 1 {
		return scan(total, w.Lower, w.Upper, start, opts)
	}

	size := (w.Width() + workers - 1) / workers
	results := make([]model.CandidateResult, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		lo := w.Lower + i*size
		hi := min(lo+size-1, w.Upper)
		results[i] = start
		if lo > hi {
			continue
		}
		wg.Add(1)
		go func(i, lo, hi int) {
			defer wg.Done()
			results[i] = scan(total, lo, hi, start, opts)
		}(i, lo, hi)
	}
	wg.Wait()

	best := start
	for _, r := range results {
		if better(r, best, total) {
			best = r
		}
	}
	return best
}

func scan(total, lo, hi int, best model.CandidateResult, opts Options) model.CandidateResult {
	for t := lo; t <= hi; t++ {
		c := Evaluate(t, opts)
		if better(c, best, total) {
			best = c
		}
	}
	return best
}

// better reports whether c ranks strictly ahead of best by (cost, distance
// from target, total seconds).
func better(c, best model.CandidateResult, target int) bool {
	if d := c.Cost - best.Cost; math.Abs(d) > costEpsilon {
		return d < 0
	}
	cd, bd := deviation(c.TotalSeconds, target), deviation(best.TotalSeconds, target)
	if cd != bd {
		return cd < bd
	}
	return c.TotalSeconds < best.TotalSeconds
}

func deviation(t, target int) int {
	if t > target {
		return t - target
	}
	return target - t
}
