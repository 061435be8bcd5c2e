package cli

import (
	"time"

	"calpick/internal/calendar"
	"calpick/internal/format"

	"github.com/spf13/cobra"
)

func newWeekdayCmd(app *App) *cobra.Command {
	var year, month, day int

	cmd := &cobra.Command{
		Use:   "weekday",
		Short: "Print the day of week of a date (Monday=1 .. Sunday=7)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			today := calendar.Today(time.Now(), app.bounds())
			if !cmd.Flags().Changed("year") {
				year = today.Year
			}
			if !cmd.Flags().Changed("month") {
				month = today.Month
			}
			if !cmd.Flags().Changed("day") {
				day = today.Day
			}
			d, err := dateFromFlags(year, month, day, app.bounds())
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, format.Envelope{Data: dateInfo(d)})
		},
	}

	cmd.Flags().IntVar(&year, "year", 0, "Year (default: current)")
	cmd.Flags().IntVar(&month, "month", 0, "Month 1-12 (default: current)")
	cmd.Flags().IntVar(&day, "day", 0, "Day of month (default: current)")

	return cmd
}

type dateInfoData struct {
	calendar.Date
	ISO         string `json:"iso"`
	Long        string `json:"long"`
	Weekday     int    `json:"weekday"`
	WeekdayName string `json:"weekdayName"`
	DaysInMonth int    `json:"daysInMonth"`
	LeapYear    bool   `json:"leapYear"`
}

func dateInfo(d calendar.Date) dateInfoData {
	wd := d.Weekday()
	return dateInfoData{
		Date:        d,
		ISO:         d.String(),
		Long:        d.LongString(),
		Weekday:     wd,
		WeekdayName: calendar.WeekdayAbbrev(wd),
		DaysInMonth: calendar.DaysInMonth(d.Month, d.Year),
		LeapYear:    calendar.IsLeapYear(d.Year),
	}
}
