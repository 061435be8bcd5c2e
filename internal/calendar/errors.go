package calendar

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidMonth  = errors.New("invalid month")
	ErrInvalidYear   = errors.New("invalid year")
	ErrInvalidDay    = errors.New("invalid day")
	ErrInvalidBounds = errors.New("invalid year bounds")
)

// DateError describes which part of a date was rejected.
type DateError struct {
	Field string
	Value int
	Min   int
	Max   int
	Err   error
}

func (e *DateError) Error() string {
	return fmt.Sprintf("%v: %s %d not in [%d, %d]", e.Err, e.Field, e.Value, e.Min, e.Max)
}

func (e *DateError) Unwrap() error { return e.Err }

func errMonth(m int) error {
	return &DateError{Field: "month", Value: m, Min: 1, Max: 12, Err: ErrInvalidMonth}
}

func errYear(y int, b Bounds) error {
	return &DateError{Field: "year", Value: y, Min: b.YearMin, Max: b.YearMax, Err: ErrInvalidYear}
}

func errDay(d, max int) error {
	return &DateError{Field: "day", Value: d, Min: 1, Max: max, Err: ErrInvalidDay}
}
