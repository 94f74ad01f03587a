// Package entry converts between total seconds and the digits typed on a
// microwave keypad.
//
// Totals under 90 are typed as plain seconds ("45" runs 45 seconds). From 90
// upward the digits are minutes followed by exactly two seconds digits.
package entry

import (
	"fmt"
	"strconv"

	"github.com/rcliao/microcombo/internal/model"
)

// SecondsOnlyLimit is the first total that is typed as minutes and seconds.
const SecondsOnlyLimit = 90

// Compose returns the keystrokes for total seconds. It panics on a negative total.
func Compose(total int) model.DigitSequence {
	if total < 0 {
		panic(fmt.Sprintf("entry: negative total seconds %d", total))
	}
	if total < SecondsOnlyLimit {
		return digitsOf(total)
	}

	minutes, seconds := total/60, total%60
	seq := make(model.DigitSequence, 0, 4)
	if minutes > 0 {
		seq = append(seq, digitsOf(minutes)...)
	}
	return append(seq, model.Digit(seconds/10), model.Digit(seconds%10))
}

// TotalSecondsFromParts returns minutes*60 + seconds.
func TotalSecondsFromParts(minutes, seconds int) int {
	return minutes*60 + seconds
}

// TotalSecondsFromDigits reads a keystroke sequence back into total seconds.
// One or two digits are seconds; longer sequences end in two seconds digits
// preceded by minutes.
func TotalSecondsFromDigits(seq model.DigitSequence) int {
	switch {
	case len(seq) == 0:
		return 0
	case len(seq) <= 2:
		return TotalSecondsFromParts(0, number(seq))
	default:
		split := len(seq) - 2
		return TotalSecondsFromParts(number(seq[:split]), number(seq[split:]))
	}
}

func digitsOf(n int) model.DigitSequence {
	s := strconv.Itoa(n)
	seq := make(model.DigitSequence, len(s))
	for i := range s {
		seq[i] = model.Digit(s[i] - '0')
	}
	return seq
}

func number(seq model.DigitSequence) int {
	n := 0
	for _, d := range seq {
		n = n*10 + int(d)
	}
	return n
}
