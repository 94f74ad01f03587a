package model

import "time"

// Run represents a recorded optimization.
type Run struct {
	ID             string    `json:"id"`
	Input          string    `json:"input"`
	TargetSeconds  int       `json:"target_seconds"`
	OriginalDigits string    `json:"original_digits"`
	OriginalCost   float64   `json:"original_cost"`
	Digits         string    `json:"digits"`
	TotalSeconds   int       `json:"total_seconds"`
	Cost           float64   `json:"cost"`
	WindowLower    int       `json:"window_lower"`
	WindowUpper    int       `json:"window_upper"`
	CreatedAt      time.Time `json:"created_at"`
}

// TimeSaved is the estimated entry time the chosen digits save over the original.
func (r Run) TimeSaved() float64 {
	return r.OriginalCost - r.Cost
}
