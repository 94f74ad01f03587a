package keypad

import (
	"errors"
	"math"
	"testing"

	"github.com/rcliao/microcombo/internal/model"
)

func TestDistanceZeroForSameDigit(t *testing.T) {
	for d := model.Digit(0); d <= 9; d++ {
		if got := Distance(d, d); got != 0 {
			t.Errorf("Distance(%d, %d) = %f, want 0", d, d, got)
		}
	}
}

func TestDistance(t *testing.T) {
	tests := []struct {
		name     string
		a, b     model.Digit
		expected float64
	}{
		{"horizontal neighbours", 4, 5, 1},
		{"vertical neighbours", 5, 2, 1},
		{"diagonal", 5, 3, math.Sqrt2},
		{"zero below two", 0, 2, 1},
		{"zero to five", 0, 5, 2},
		{"seven to nine", 7, 9, 2},
		{"zero to seven", 0, 7, math.Sqrt(10)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Distance(tt.a, tt.b)
			if math.Abs(got-tt.expected) > 1e-9 {
				t.Errorf("Distance(%d, %d) = %f, want %f", tt.a, tt.b, got, tt.expected)
			}
			if back := Distance(tt.b, tt.a); math.Abs(back-got) > 1e-12 {
				t.Errorf("distance not symmetric: %f vs %f", got, back)
			}
		})
	}
}

func TestLocationOfLayout(t *testing.T) {
	if got := LocationOf(7); got != (Location{0, 0}) {
		t.Errorf("7 should be top-left, got %+v", got)
	}
	if got := LocationOf(0); got != (Location{1, 3}) {
		t.Errorf("0 should sit alone under 2, got %+v", got)
	}
}

func TestLocationOfInvalidDigitPanics(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic for digit 10")
		}
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrInvalidDigit) {
			t.Errorf("expected ErrInvalidDigit, got %v", r)
		}
	}()
	LocationOf(10)
}
