package timeparse

import (
	"errors"
	"testing"

	"github.com/rcliao/microcombo/internal/model"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input string
		want  model.TimeValue
	}{
		{"5:30", model.TimeValue{Minutes: 5, Seconds: 30}},
		{"0:45", model.TimeValue{Seconds: 45}},
		{"1.30", model.TimeValue{Minutes: 1, Seconds: 30}},
		{"10:05", model.TimeValue{Minutes: 10, Seconds: 5}},
		{"2:7", model.TimeValue{Minutes: 2, Seconds: 7}},
		{"  3:00\n", model.TimeValue{Minutes: 3}},
		{"120:00", model.TimeValue{Minutes: 120}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse(%q): %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		input string
		kind  error
	}{
		{"530", ErrMissingSeparator},
		{"", ErrMissingSeparator},
		{"5:300", ErrSecondsTooLong},
		{"134:672", ErrSecondsTooLong},
		{"a:30", ErrNonNumeric},
		{"5:3x", ErrNonNumeric},
		{":30", ErrNonNumeric},
		{"5:", ErrNonNumeric},
		{"-1:30", ErrNonNumeric},
		{"5:+1", ErrNonNumeric},
		{"5:60", ErrSecondsOutOfRange},
		{"5:99", ErrSecondsOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := Parse(tt.input)
			if err == nil {
				t.Fatalf("Parse(%q): expected error", tt.input)
			}
			if !errors.Is(err, tt.kind) {
				t.Errorf("Parse(%q) error = %v, want kind %v", tt.input, err, tt.kind)
			}
			var pe *ParseError
			if !errors.As(err, &pe) {
				t.Fatalf("expected *ParseError, got %T", err)
			}
		})
	}
}

func TestParseColonBeforeDot(t *testing.T) {
	// The colon wins, so the seconds part is "1.5".
	_, err := Parse("2:1.5")
	if !errors.Is(err, ErrSecondsTooLong) {
		t.Errorf("expected ErrSecondsTooLong, got %v", err)
	}
}
