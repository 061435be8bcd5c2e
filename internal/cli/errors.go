package cli

import (
	"fmt"

	"calpick/internal/calendar"
)

type invalidDateError struct {
	year, month, day int
	err              error
}

func (e invalidDateError) Error() string {
	return fmt.Sprintf("invalid date %04d-%02d-%02d: %v", e.year, e.month, e.day, e.err)
}

func (e invalidDateError) Unwrap() error { return e.err }

// dateFromFlags validates the --year/--month/--day triple against b.
func dateFromFlags(year, month, day int, b calendar.Bounds) (calendar.Date, error) {
	d, err := calendar.NewDate(year, month, day, b)
	if err != nil {
		return calendar.Date{}, invalidDateError{year: year, month: month, day: day, err: err}
	}
	return d, nil
}
