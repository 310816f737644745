package calendar

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange reports a year, month or day outside a component's domain.
	ErrOutOfRange = errors.New("value out of range")

	// ErrUnsupportedEra reports a Shamsi year outside [MinShamsiYear, MaxShamsiYear].
	ErrUnsupportedEra = errors.New("unsupported era")

	// ErrSystemMismatch reports a Date whose tag does not match the operation.
	ErrSystemMismatch = errors.New("calendar system mismatch")

	// ErrUnsupportedConversion reports a conversion direction that is not implemented.
	ErrUnsupportedConversion = errors.New("unsupported conversion")

	// ErrMalformedDate reports text that is not a YYYY/MM/DD date.
	ErrMalformedDate = errors.New("malformed date")
)

// RangeError describes which field failed a range check.
type RangeError struct {
	Field string
	Value int
	Min   int
	Max   int
	Err   error
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s %d outside [%d, %d]: %v", e.Field, e.Value, e.Min, e.Max, e.Err)
}

func (e *RangeError) Unwrap() error {
	return e.Err
}
