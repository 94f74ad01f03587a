// Package keypad models the physical layout of a microwave number pad.
//
// The layout is fixed:
//
//	7 8 9
//	4 5 6
//	1 2 3
//	  0
package keypad

import (
	"errors"
	"fmt"
	"math"

	"github.com/rcliao/microcombo/internal/model"
)

// ErrInvalidDigit is the kind carried by lookups outside 0-9.
var ErrInvalidDigit = errors.New("invalid keypad digit")

// InvalidDigitError reports the digit that was looked up.
type InvalidDigitError struct {
	Digit model.Digit
}

func (e *InvalidDigitError) Error() string {
	return fmt.Sprintf("%s: %d", ErrInvalidDigit, e.Digit)
}

func (e *InvalidDigitError) Unwrap() error { return ErrInvalidDigit }

// Location is a key position: X is the column, Y the row counted from the top.
type Location struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Sub returns the component-wise difference l - o.
func (l Location) Sub(o Location) Location {
	return Location{X: l.X - o.X, Y: l.Y - o.Y}
}

// Norm returns the Euclidean length of l.
func (l Location) Norm() float64 {
	return math.Hypot(float64(l.X), float64(l.Y))
}

var locations = [10]Location{
	0: {1, 3},
	1: {0, 2}, 2: {1, 2}, 3: {2, 2},
	4: {0, 1}, 5: {1, 1}, 6: {2, 1},
	7: {0, 0}, 8: {1, 0}, 9: {2, 0},
}

// LocationOf returns the position of d. It panics with *InvalidDigitError
// for digits above 9.
func LocationOf(d model.Digit) Location {
	if int(d) >= len(locations) {
		panic(&InvalidDigitError{Digit: d})
	}
	return locations[d]
}

// Distance returns the straight-line distance between two keys in key units.
func Distance(a, b model.Digit) float64 {
	return LocationOf(a).Sub(LocationOf(b)).Norm()
}
