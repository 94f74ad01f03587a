package timeparse

import (
	"errors"
	"fmt"
)

var (
	ErrMissingSeparator  = errors.New("missing ':' or '.' between minutes and seconds")
	ErrNonNumeric        = errors.New("minutes and seconds must be numbers")
	ErrSecondsTooLong    = errors.New("seconds must be at most two digits")
	ErrSecondsOutOfRange = errors.New("seconds must be between 0 and 59")
)

// ParseError ties a failure kind to the input that caused it.
type ParseError struct {
	Kind  error
	Input string
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%q: %s", e.Input, e.Kind.Error())
}

func (e *ParseError) Unwrap() error { return e.Kind }

func parseErr(kind error, input string) error {
	return &ParseError{Kind: kind, Input: input}
}
