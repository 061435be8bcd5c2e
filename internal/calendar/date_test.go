package calendar

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestPreviousMonth(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   Date
		want Date
	}{
		{name: "rolls year back", in: Date{2024, 1, 31}, want: Date{2023, 12, 31}},
		{name: "clamps into february", in: Date{2024, 3, 31}, want: Date{2024, 2, 29}},
		{name: "clamps into common february", in: Date{2023, 3, 30}, want: Date{2023, 2, 28}},
		{name: "keeps short day", in: Date{2024, 7, 15}, want: Date{2024, 6, 15}},
		{name: "clamps to thirty", in: Date{2024, 5, 31}, want: Date{2024, 4, 30}},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			d := tt.in
			PreviousMonth(&d)
			require.Equal(t, tt.want, d)
		})
	}
}

func TestNextMonth(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   Date
		want Date
	}{
		{name: "clamps into february", in: Date{2023, 1, 31}, want: Date{2023, 2, 28}},
		{name: "clamps into leap february", in: Date{2024, 1, 31}, want: Date{2024, 2, 29}},
		{name: "rolls december into january", in: Date{2023, 12, 31}, want: Date{2024, 1, 31}},
		{name: "clamps to thirty", in: Date{2024, 8, 31}, want: Date{2024, 9, 30}},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			d := tt.in
			NextMonth(&d)
			require.Equal(t, tt.want, d)
		})
	}
}

func TestNavigation_AlwaysValid(t *testing.T) {
	t.Parallel()

	d := Date{Year: 1990, Month: 1, Day: 31}
	for i := 0; i < 12*40; i++ {
		NextMonth(&d)
		require.NoError(t, d.Validate(DefaultBounds), "after %d steps: %+v", i, d)
	}
	for i := 0; i < 12*40; i++ {
		PreviousMonth(&d)
		require.NoError(t, d.Validate(DefaultBounds), "after %d steps: %+v", i, d)
	}
}

func TestBounds_GuardedNavigationStaysInRange(t *testing.T) {
	t.Parallel()

	b := Bounds{YearMin: 2000, YearMax: 2001}

	d := Date{Year: 2000, Month: 3, Day: 31}
	for i := 0; i < 100; i++ {
		b.Previous(&d)
		require.True(t, b.Contains(d.Year))
	}
	require.True(t, b.IsMinDate(d))
	require.False(t, b.Previous(&d))
	require.Equal(t, Date{2000, 1, 29}, d)

	for i := 0; i < 100; i++ {
		b.Next(&d)
		require.True(t, b.Contains(d.Year))
	}
	require.True(t, b.IsMaxDate(d))
	require.False(t, b.Next(&d))
	require.Equal(t, 12, d.Month)
	require.Equal(t, 2001, d.Year)
}

func TestIsMinMaxDate_Defaults(t *testing.T) {
	t.Parallel()

	require.True(t, IsMinDate(Date{1900, 1, 15}))
	require.False(t, IsMinDate(Date{1900, 2, 15}))
	require.False(t, IsMinDate(Date{1901, 1, 15}))
	require.True(t, IsMaxDate(Date{3000, 12, 1}))
	require.False(t, IsMaxDate(Date{3000, 11, 1}))
}

func TestNewDate_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name             string
		year, month, day int
		want             error
	}{
		{name: "month zero", year: 2024, month: 0, day: 1, want: ErrInvalidMonth},
		{name: "month thirteen", year: 2024, month: 13, day: 1, want: ErrInvalidMonth},
		{name: "year below min", year: 1899, month: 1, day: 1, want: ErrInvalidYear},
		{name: "year above max", year: 3001, month: 1, day: 1, want: ErrInvalidYear},
		{name: "day zero", year: 2024, month: 1, day: 0, want: ErrInvalidDay},
		{name: "feb 29 common year", year: 2023, month: 2, day: 29, want: ErrInvalidDay},
		{name: "april 31", year: 2024, month: 4, day: 31, want: ErrInvalidDay},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := NewDate(tt.year, tt.month, tt.day, DefaultBounds)
			require.ErrorIs(t, err, tt.want)

			var de *DateError
			require.True(t, errors.As(err, &de))
		})
	}

	d, err := NewDate(2024, 2, 29, DefaultBounds)
	require.NoError(t, err)
	require.Equal(t, Date{2024, 2, 29}, d)
}

func TestDateError_Message(t *testing.T) {
	t.Parallel()

	_, err := NewDate(2023, 2, 29, DefaultBounds)
	require.EqualError(t, err, "invalid day: day 29 not in [1, 28]")
}

func TestBounds_Validate(t *testing.T) {
	t.Parallel()

	require.NoError(t, DefaultBounds.Validate())
	require.NoError(t, Bounds{YearMin: 2000, YearMax: 2000}.Validate())
	require.ErrorIs(t, Bounds{YearMin: 2001, YearMax: 2000}.Validate(), ErrInvalidBounds)
	require.Equal(t, 1900, DefaultBounds.ClampYear(12))
	require.Equal(t, 3000, DefaultBounds.ClampYear(9999))
	require.Equal(t, 2024, DefaultBounds.ClampYear(2024))
}

func TestDate_Setters(t *testing.T) {
	t.Parallel()

	d := Date{2024, 1, 31}
	require.NoError(t, d.SetMonth(2))
	require.Equal(t, Date{2024, 2, 29}, d)
	require.ErrorIs(t, d.SetMonth(0), ErrInvalidMonth)

	d.SetYear(2023, DefaultBounds)
	require.Equal(t, Date{2023, 2, 28}, d)
	d.SetYear(1000, DefaultBounds)
	require.Equal(t, 1900, d.Year)
	d.SetYear(5000, DefaultBounds)
	require.Equal(t, 3000, d.Year)

	require.NoError(t, d.SetDay(14))
	require.Equal(t, 14, d.Day)
	require.ErrorIs(t, d.SetDay(30), ErrInvalidDay)
	require.Equal(t, 14, d.Day)
}

func TestDate_Formatting(t *testing.T) {
	t.Parallel()

	d := Date{2024, 1, 5}
	require.Equal(t, "5 January 2024", d.LongString())
	require.Equal(t, "2024-01-05", d.String())
	require.Equal(t, 5, d.Weekday())
}

func TestToday(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 10, 19, 23, 30, 0, 0, time.UTC)
	require.Equal(t, Date{2026, 10, 19}, Today(now, DefaultBounds))

	b := Bounds{YearMin: 1990, YearMax: 1999}
	require.Equal(t, Date{1999, 12, 31}, Today(now, b))
	require.Equal(t, Date{1990, 1, 1}, Today(time.Date(1980, 5, 5, 0, 0, 0, 0, time.UTC), b))
}

func TestToday_UsesCallerLocation(t *testing.T) {
	t.Parallel()

	west := time.FixedZone("UTC-5", -5*60*60)
	require.Equal(t, Date{2024, 5, 20}, Today(time.Date(2024, 5, 20, 21, 0, 0, 0, west), DefaultBounds))

	east := time.FixedZone("UTC+9", 9*60*60)
	require.Equal(t, Date{2025, 1, 1}, Today(time.Date(2025, 1, 1, 3, 0, 0, 0, east), DefaultBounds))
}

func TestDate_Clamp(t *testing.T) {
	t.Parallel()

	require.Equal(t, Date{2023, 2, 28}, Date{2023, 2, 31}.Clamp(DefaultBounds))
	require.Equal(t, Date{1900, 1, 1}, Date{10, 0, 0}.Clamp(DefaultBounds))
	require.Equal(t, Date{3000, 12, 31}, Date{4000, 14, 99}.Clamp(DefaultBounds))
}
