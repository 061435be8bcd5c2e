package calendar

import "fmt"

const (
	DefaultYearMin = 1900
	DefaultYearMax = 3000
)

// Bounds is the inclusive range of years a picker may navigate.
type Bounds struct {
	YearMin int `json:"yearMin"`
	YearMax int `json:"yearMax"`
}

// DefaultBounds covers 1900 through 3000.
var DefaultBounds = Bounds{YearMin: DefaultYearMin, YearMax: DefaultYearMax}

func (b Bounds) Validate() error {
	if b.YearMin > b.YearMax {
		return fmt.Errorf("%w: min %d > max %d", ErrInvalidBounds, b.YearMin, b.YearMax)
	}
	return nil
}

// Contains reports whether year lies within the bounds.
func (b Bounds) Contains(year int) bool {
	return year >= b.YearMin && year <= b.YearMax
}

// ClampYear pins year into the bounds.
func (b Bounds) ClampYear(year int) int {
	if year < b.YearMin {
		return b.YearMin
	}
	if year > b.YearMax {
		return b.YearMax
	}
	return year
}

// IsMinDate reports whether d is in the first month of the lowest year, so
// no earlier month can be shown.
func (b Bounds) IsMinDate(d Date) bool {
	return d.Month == 1 && d.Year == b.YearMin
}

// IsMaxDate reports whether d is in the last month of the highest year.
func (b Bounds) IsMaxDate(d Date) bool {
	return d.Month == 12 && d.Year == b.YearMax
}

// Previous moves d back one month unless it is already at the min date.
func (b Bounds) Previous(d *Date) bool {
	if b.IsMinDate(*d) {
		return false
	}
	PreviousMonth(d)
	return true
}

// Next moves d forward one month unless it is already at the max date.
func (b Bounds) Next(d *Date) bool {
	if b.IsMaxDate(*d) {
		return false
	}
	NextMonth(d)
	return true
}

// IsMinDate reports whether d is the first month of DefaultBounds.
func IsMinDate(d Date) bool { return DefaultBounds.IsMinDate(d) }

// IsMaxDate reports whether d is the last month of DefaultBounds.
func IsMaxDate(d Date) bool { return DefaultBounds.IsMaxDate(d) }
