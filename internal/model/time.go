// Package model defines the core cook-time data types.
package model

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Digit is a single keypad keystroke, 0 through 9.
type Digit uint8

// DigitSequence is an ordered list of keystrokes, first key first.
type DigitSequence []Digit

// String returns the digits concatenated, e.g. "522".
func (s DigitSequence) String() string {
	var b strings.Builder
	for _, d := range s {
		b.WriteString(strconv.Itoa(int(d)))
	}
	return b.String()
}

// Dashed returns the digits joined by dashes, e.g. "5-2-2".
func (s DigitSequence) Dashed() string {
	parts := make([]string, len(s))
	for i, d := range s {
		parts[i] = strconv.Itoa(int(d))
	}
	return strings.Join(parts, "-")
}

// MarshalJSON encodes the sequence as an array of numbers rather than base64.
func (s DigitSequence) MarshalJSON() ([]byte, error) {
	ints := make([]int, len(s))
	for i, d := range s {
		ints[i] = int(d)
	}
	return json.Marshal(ints)
}

// UnmarshalJSON decodes an array of numbers, each 0-9.
func (s *DigitSequence) UnmarshalJSON(data []byte) error {
	var ints []int
	if err := json.Unmarshal(data, &ints); err != nil {
		return err
	}
	seq := make(DigitSequence, len(ints))
	for i, n := range ints {
		if n < 0 || n > 9 {
			return fmt.Errorf("digit %d out of range at position %d", n, i)
		}
		seq[i] = Digit(n)
	}
	*s = seq
	return nil
}

// TimeValue is a parsed cook time. Seconds is expected in [0,59].
type TimeValue struct {
	Minutes int `json:"minutes"`
	Seconds int `json:"seconds"`
}

// TotalSeconds returns Minutes*60 + Seconds.
func (t TimeValue) TotalSeconds() int {
	return t.Minutes*60 + t.Seconds
}

// CandidateResult is a chosen duration with its keystrokes and estimated entry cost.
type CandidateResult struct {
	Digits       DigitSequence `json:"digits"`
	TotalSeconds int           `json:"total_seconds"`
	Cost         float64       `json:"cost"`
}
