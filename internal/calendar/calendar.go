// Package calendar implements the Gregorian calendar arithmetic behind the
// date picker: day-of-week alignment, month lengths and the week rows of a
// month grid.
//
// Weekdays are numbered Monday=1 through Sunday=7 and weeks are Monday-first.
package calendar

var monthNames = [12]string{
	"January",
	"February",
	"March",
	"April",
	"May",
	"June",
	"July",
	"August",
	"September",
	"October",
	"November",
	"December",
}

var weekdayAbbrevs = [7]string{"Mo", "Tu", "We", "Th", "Fr", "Sa", "Su"}

// Days per month, February excluded (index 0 unused).
var monthDays = [13]int{0, 31, 0, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// Week is one displayed row of a month grid. A zero slot has no day.
type Week [7]int

// MonthName returns the English month name, or "" for an invalid month.
func MonthName(month int) string {
	if month < 1 || month > 12 {
		return ""
	}
	return monthNames[month-1]
}

// WeekdayAbbrev returns the two letter abbreviation for weekday (1=Mo..7=Su).
func WeekdayAbbrev(weekday int) string {
	if weekday < 1 || weekday > 7 {
		return ""
	}
	return weekdayAbbrevs[weekday-1]
}

// WeekdayAbbrevs returns the column headers of a grid, Monday first.
func WeekdayAbbrevs() []string {
	out := make([]string, len(weekdayAbbrevs))
	copy(out, weekdayAbbrevs[:])
	return out
}

// DayOfWeek returns the weekday of the given date in [1, 7] (Monday=1),
// using Zeller's congruence. January and February count as months 13 and 14
// of the previous year.
func DayOfWeek(day, month, year int) int {
	if month == 1 || month == 2 {
		month += 12
		year--
	}
	h := mod(day+floorDiv(13*(month+1), 5)+year+floorDiv(year, 4)-floorDiv(year, 100)+floorDiv(year, 400), 7)
	// Zeller yields 0=Saturday; rotate to 1=Monday.
	return (h+5)%7 + 1
}

// IsLeapYear reports whether year has a February 29.
func IsLeapYear(year int) bool {
	if year%400 == 0 {
		return true
	}
	return year%4 == 0 && year%100 != 0
}

// DaysInMonth returns the number of days in month of year, or 0 when month
// is outside 1..12.
func DaysInMonth(month, year int) int {
	if month < 1 || month > 12 {
		return 0
	}
	if month == 2 {
		if IsLeapYear(year) {
			return 29
		}
		return 28
	}
	return monthDays[month]
}

// WeeksInMonth returns how many Monday-first rows month spans in year.
func WeeksInMonth(month, year int) int {
	days := DaysInMonth(month, year)
	if days == 0 {
		return 0
	}
	first := DayOfWeek(1, month, year)
	// ceil((days + first - 1) / 7)
	return (days + first - 1 + 6) / 7
}

// WeekRow returns the days shown in the columns of the 1-based week of a
// month that starts on weekday firstDayOfMonth and has daysInMonth days.
// Columns outside the month hold 0.
func WeekRow(week, firstDayOfMonth, daysInMonth int) Week {
	var row Week
	start := 7*(week-1) + 2 - firstDayOfMonth
	for i := range row {
		day := start + i
		if day >= 1 && day <= daysInMonth {
			row[i] = day
		}
	}
	return row
}

// MonthGrid is the complete set of week rows for one month.
type MonthGrid struct {
	Year         int    `json:"year"`
	Month        int    `json:"month"`
	MonthName    string `json:"monthName"`
	FirstWeekday int    `json:"firstWeekday"`
	Days         int    `json:"days"`
	Weeks        []Week `json:"weeks"`
}

// Grid lays out month of year. An invalid month yields a grid with no weeks.
func Grid(month, year int) MonthGrid {
	g := MonthGrid{Year: year, Month: month, MonthName: MonthName(month)}
	g.Days = DaysInMonth(month, year)
	if g.Days == 0 {
		return g
	}
	g.FirstWeekday = DayOfWeek(1, month, year)
	n := WeeksInMonth(month, year)
	g.Weeks = make([]Week, 0, n)
	for w := 1; w <= n; w++ {
		g.Weeks = append(g.Weeks, WeekRow(w, g.FirstWeekday, g.Days))
	}
	return g
}

// Locate returns the 1-based week and 0-based column holding day in the
// grid, or ok=false when day is not part of the month.
func (g MonthGrid) Locate(day int) (week, col int, ok bool) {
	if day < 1 || day > g.Days {
		return 0, 0, false
	}
	idx := day + g.FirstWeekday - 2
	return idx/7 + 1, idx % 7, true
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func mod(a, b int) int {
	r := a % b
	if r < 0 {
		r += b
	}
	return r
}
