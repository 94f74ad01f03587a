// Package cost estimates how long a keystroke sequence takes to type.
package cost

import (
	"github.com/rcliao/microcombo/internal/keypad"
	"github.com/rcliao/microcombo/internal/model"
)

// DefaultMoveTime is the time, in seconds, to move a finger one key unit.
const DefaultMoveTime = 0.2

// Estimate returns the finger travel time for digits. Sequences shorter than
// two keys cost nothing. The move away from a leading 0 is free: the finger
// is assumed to already rest there.
func Estimate(digits model.DigitSequence, moveTime float64) float64 {
	if len(digits) < 2 {
		return 0
	}

	var total float64
	for i := 1; i < len(digits); i++ {
		prev, curr := digits[i-1], digits[i]
		if i == 1 && prev == 0 {
			continue
		}
		total += keypad.Distance(prev, curr) * moveTime
	}
	return total
}
