package entry

import (
	"reflect"
	"testing"

	"github.com/rcliao/microcombo/internal/model"
)

func TestCompose(t *testing.T) {
	tests := []struct {
		name  string
		total int
		want  model.DigitSequence
	}{
		{"zero", 0, model.DigitSequence{0}},
		{"single digit", 5, model.DigitSequence{5}},
		{"seconds only", 45, model.DigitSequence{4, 5}},
		{"just under limit", 89, model.DigitSequence{8, 9}},
		{"one thirty", 90, model.DigitSequence{1, 3, 0}},
		{"padded seconds", 125, model.DigitSequence{2, 0, 5}},
		{"whole minutes", 600, model.DigitSequence{1, 0, 0, 0}},
		{"five thirty", 330, model.DigitSequence{5, 3, 0}},
		{"ninety nine minutes", 5999, model.DigitSequence{9, 9, 5, 9}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Compose(tt.total)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Compose(%d) = %v, want %v", tt.total, got, tt.want)
			}
		})
	}
}

func TestComposeRoundTrip(t *testing.T) {
	for total := 0; total <= 5999; total++ {
		seq := Compose(total)
		if got := TotalSecondsFromDigits(seq); got != total {
			t.Fatalf("round trip %d -> %v -> %d", total, seq, got)
		}
	}
}

func TestComposeNeverLeadsWithZeroMinutes(t *testing.T) {
	for total := SecondsOnlyLimit; total <= 5999; total++ {
		if seq := Compose(total); seq[0] == 0 {
			t.Fatalf("Compose(%d) = %v starts with a zero minutes digit", total, seq)
		}
	}
}

func TestTotalSecondsFromDigits(t *testing.T) {
	tests := []struct {
		name string
		seq  model.DigitSequence
		want int
	}{
		{"empty", nil, 0},
		{"one digit", model.DigitSequence{7}, 7},
		{"two digits are seconds", model.DigitSequence{9, 9}, 99},
		{"three digits", model.DigitSequence{1, 3, 0}, 90},
		{"four digits", model.DigitSequence{1, 2, 0, 5}, 725},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TotalSecondsFromDigits(tt.seq); got != tt.want {
				t.Errorf("TotalSecondsFromDigits(%v) = %d, want %d", tt.seq, got, tt.want)
			}
		})
	}
}

func TestTotalSecondsFromParts(t *testing.T) {
	if got := TotalSecondsFromParts(5, 30); got != 330 {
		t.Errorf("expected 330, got %d", got)
	}
}

func TestComposeNegativePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for negative total")
		}
	}()
	Compose(-1)
}
