// Package report renders optimization results for the terminal.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/rcliao/microcombo/internal/model"
	"github.com/rcliao/microcombo/internal/tolerance"
)

// Stats compares the chosen combination against typing the target as-is.
type Stats struct {
	OriginalDigits   model.DigitSequence `json:"original_digits"`
	OriginalCost     float64             `json:"original_cost"`
	TimeSaved        float64             `json:"time_saved"`
	PercentDeviation float64             `json:"percent_deviation"`
}

// Summary is everything known about one optimization.
type Summary struct {
	Input         string                `json:"input"`
	Target        model.TimeValue       `json:"target"`
	TargetSeconds int                   `json:"target_seconds"`
	Window        tolerance.Window      `json:"window"`
	Result        model.CandidateResult `json:"result"`
	Stats         *Stats                `json:"stats,omitempty"`
}

// Options selects the text layout.
type Options struct {
	Compact bool
	Stats   bool
	JSON    bool
}

// NewStats builds the statistics block for best against the original decomposition.
func NewStats(targetSeconds int, original, best model.CandidateResult) Stats {
	st := Stats{
		OriginalDigits: original.Digits,
		OriginalCost:   original.Cost,
		TimeSaved:      original.Cost - best.Cost,
	}
	if targetSeconds > 0 {
		diff := best.TotalSeconds - targetSeconds
		if diff < 0 {
			diff = -diff
		}
		st.PercentDeviation = float64(diff) / float64(targetSeconds) * 100
	}
	return st
}

// Verbose renders the sentence form.
func Verbose(r model.CandidateResult) string {
	return fmt.Sprintf("most effective combination is %s with an estimated runtime of %.2f seconds",
		r.Digits.Dashed(), r.Cost)
}

// Compact renders the one-line form.
func Compact(r model.CandidateResult) string {
	return fmt.Sprintf("combo: %s runtime est: %.2f", r.Digits.String(), r.Cost)
}

// Text renders the statistics block.
func (st Stats) Text() string {
	var b strings.Builder
	fmt.Fprintf(&b, "original combination: %s (%.2f seconds)\n", st.OriginalDigits.Dashed(), st.OriginalCost)
	fmt.Fprintf(&b, "time saved: %.2f seconds\n", st.TimeSaved)
	fmt.Fprintf(&b, "deviation from target: %.2f%%", st.PercentDeviation)
	return b.String()
}

// Write renders s to w according to opts.
func Write(w io.Writer, s Summary, opts Options) error {
	if !opts.Stats {
		s.Stats = nil
	}
	if opts.JSON {
		b, err := json.MarshalIndent(s, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(b))
		return err
	}

	line := Verbose(s.Result)
	if opts.Compact {
		line = Compact(s.Result)
	}
	if _, err := fmt.Fprintln(w, line); err != nil {
		return err
	}
	if s.Stats != nil {
		_, err := fmt.Fprintln(w, s.Stats.Text())
		return err
	}
	return nil
}
