package cli

import (
	"log/slog"
	"time"

	"calpick/internal/calendar"
	"calpick/internal/format"
	"calpick/internal/tui"

	"github.com/spf13/cobra"
)

func newPickCmd(app *App) *cobra.Command {
	var year, month, day int

	cmd := &cobra.Command{
		Use:   "pick",
		Short: "Open the date picker and print the chosen date",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			start := calendar.Today(time.Now(), app.bounds())
			if cmd.Flags().Changed("year") {
				start.Year = year
			}
			if cmd.Flags().Changed("month") {
				start.Month = month
			}
			if cmd.Flags().Changed("day") {
				start.Day = day
			} else if max := calendar.DaysInMonth(start.Month, start.Year); start.Day > max && max > 0 {
				// Keep today's day where the requested month allows it.
				start.Day = max
			}
			d, err := dateFromFlags(start.Year, start.Month, start.Day, app.bounds())
			if err != nil {
				return writeErr(cmd, err)
			}

			chosen, ok, err := runPicker(app.tuiOptions(d))
			if err != nil {
				return writeErr(cmd, err)
			}
			if !ok {
				slog.Info("pick cancelled")
				return writeOut(cmd, app, format.Envelope{Cancelled: true})
			}
			return writeOut(cmd, app, format.Envelope{Data: dateInfo(chosen)})
		},
	}

	cmd.Flags().IntVar(&year, "year", 0, "Initial year (default: current)")
	cmd.Flags().IntVar(&month, "month", 0, "Initial month 1-12 (default: current)")
	cmd.Flags().IntVar(&day, "day", 0, "Initial day (default: current, clamped)")

	return cmd
}

// runPicker is swapped out in tests; the real picker needs a terminal.
var runPicker = tui.RunPicker
