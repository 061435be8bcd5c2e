package calendar

import (
	"strconv"
	"time"
)

// Date is a calendar day without time or zone.
type Date struct {
	Year  int `json:"year"`
	Month int `json:"month"`
	Day   int `json:"day"`
}

// NewDate returns the date after checking it against b.
func NewDate(year, month, day int, b Bounds) (Date, error) {
	d := Date{Year: year, Month: month, Day: day}
	if err := d.Validate(b); err != nil {
		return Date{}, err
	}
	return d, nil
}

// Validate checks month, then year, then day.
func (d Date) Validate(b Bounds) error {
	if d.Month < 1 || d.Month > 12 {
		return errMonth(d.Month)
	}
	if !b.Contains(d.Year) {
		return errYear(d.Year, b)
	}
	if max := DaysInMonth(d.Month, d.Year); d.Day < 1 || d.Day > max {
		return errDay(d.Day, max)
	}
	return nil
}

// Weekday returns the day of week of d (Monday=1).
func (d Date) Weekday() int {
	return DayOfWeek(d.Day, d.Month, d.Year)
}

// Grid returns the month grid d falls in.
func (d Date) Grid() MonthGrid {
	return Grid(d.Month, d.Year)
}

// LongString formats d as "5 January 2024".
func (d Date) LongString() string {
	return strconv.Itoa(d.Day) + " " + MonthName(d.Month) + " " + strconv.Itoa(d.Year)
}

// String formats d as YYYY-MM-DD.
func (d Date) String() string {
	return pad(d.Year, 4) + "-" + pad(d.Month, 2) + "-" + pad(d.Day, 2)
}

// PreviousMonth moves d to the previous month, rolling the year back from
// January, and clamps the day to the new month's length.
func PreviousMonth(d *Date) {
	if d.Month == 1 {
		d.Year--
		d.Month = 12
	} else {
		d.Month--
	}
	d.Day = clampDay(d.Day, d.Month, d.Year)
}

// NextMonth moves d to the next month, rolling over to January of the next
// year, and clamps the day to the new month's length.
func NextMonth(d *Date) {
	if d.Month == 12 {
		d.Year++
		d.Month = 1
	} else {
		d.Month++
	}
	d.Day = clampDay(d.Day, d.Month, d.Year)
}

// SetMonth switches d to month, keeping the day where the month allows.
func (d *Date) SetMonth(month int) error {
	if month < 1 || month > 12 {
		return errMonth(month)
	}
	d.Month = month
	d.Day = clampDay(d.Day, d.Month, d.Year)
	return nil
}

// SetYear pins year into b and clamps the day (Feb 29 becomes Feb 28 on
// common years).
func (d *Date) SetYear(year int, b Bounds) {
	d.Year = b.ClampYear(year)
	d.Day = clampDay(d.Day, d.Month, d.Year)
}

// SetDay selects a day of the current month.
func (d *Date) SetDay(day int) error {
	if max := DaysInMonth(d.Month, d.Year); day < 1 || day > max {
		return errDay(day, max)
	}
	d.Day = day
	return nil
}

// Today returns the calendar date of now in now's own location, pinned
// into b.
func Today(now time.Time, b Bounds) Date {
	d := Date{Year: now.Year(), Month: int(now.Month()), Day: now.Day()}
	switch {
	case d.Year < b.YearMin:
		return Date{Year: b.YearMin, Month: 1, Day: 1}
	case d.Year > b.YearMax:
		return Date{Year: b.YearMax, Month: 12, Day: 31}
	}
	return d
}

// Clamp returns d forced into a valid date within b.
func (d Date) Clamp(b Bounds) Date {
	if d.Month < 1 {
		d.Month = 1
	}
	if d.Month > 12 {
		d.Month = 12
	}
	d.Year = b.ClampYear(d.Year)
	if d.Day < 1 {
		d.Day = 1
	}
	d.Day = clampDay(d.Day, d.Month, d.Year)
	return d
}

func clampDay(day, month, year int) int {
	if max := DaysInMonth(month, year); day > max {
		return max
	}
	return day
}

func pad(n, width int) string {
	s := strconv.Itoa(n)
	for len(s) < width {
		s = "0" + s
	}
	return s
}
