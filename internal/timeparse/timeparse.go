// Package timeparse reads cook times written as "m:ss" or "m.ss".
package timeparse

import (
	"strconv"
	"strings"

	"github.com/rcliao/microcombo/internal/model"
)

// Parse converts s into a TimeValue. The separator is the first ':' or, when
// there is none, the first '.'. Failures are *ParseError values.
func Parse(s string) (model.TimeValue, error) {
	s = strings.TrimSpace(s)

	i := strings.IndexByte(s, ':')
	if i < 0 {
		i = strings.IndexByte(s, '.')
	}
	if i < 0 {
		return model.TimeValue{}, parseErr(ErrMissingSeparator, s)
	}

	minStr, secStr := s[:i], s[i+1:]
	if len(secStr) > 2 {
		return model.TimeValue{}, parseErr(ErrSecondsTooLong, s)
	}

	minutes, ok := atoi(minStr)
	if !ok {
		return model.TimeValue{}, parseErr(ErrNonNumeric, s)
	}
	seconds, ok := atoi(secStr)
	if !ok {
		return model.TimeValue{}, parseErr(ErrNonNumeric, s)
	}
	if seconds > 59 {
		return model.TimeValue{}, parseErr(ErrSecondsOutOfRange, s)
	}

	return model.TimeValue{Minutes: minutes, Seconds: seconds}, nil
}

// atoi accepts only plain ASCII digits, no sign.
func atoi(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}
