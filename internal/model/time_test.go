package model

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestDigitSequenceFormatting(t *testing.T) {
	tests := []struct {
		name   string
		seq    DigitSequence
		plain  string
		dashed string
	}{
		{"empty", nil, "", ""},
		{"single", DigitSequence{7}, "7", "7"},
		{"three", DigitSequence{5, 2, 2}, "522", "5-2-2"},
		{"leading zero", DigitSequence{0, 5}, "05", "0-5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.seq.String(); got != tt.plain {
				t.Errorf("String() = %q, want %q", got, tt.plain)
			}
			if got := tt.seq.Dashed(); got != tt.dashed {
				t.Errorf("Dashed() = %q, want %q", got, tt.dashed)
			}
		})
	}
}

func TestTotalSeconds(t *testing.T) {
	tv := TimeValue{Minutes: 5, Seconds: 30}
	if got := tv.TotalSeconds(); got != 330 {
		t.Errorf("expected 330, got %d", got)
	}
	if got := (TimeValue{}).TotalSeconds(); got != 0 {
		t.Errorf("expected 0, got %d", got)
	}
}

func TestDigitSequenceJSON(t *testing.T) {
	b, err := json.Marshal(CandidateResult{Digits: DigitSequence{5, 2, 2}, TotalSeconds: 322, Cost: 0.2})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(b), `"digits":[5,2,2]`) {
		t.Errorf("expected digits as a number array, got %s", b)
	}

	var got DigitSequence
	if err := json.Unmarshal([]byte(`[1,3,0]`), &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got.String() != "130" {
		t.Errorf("expected 130, got %s", got.String())
	}

	if err := json.Unmarshal([]byte(`[1,12]`), &got); err == nil {
		t.Error("expected error for digit 12")
	}
}
