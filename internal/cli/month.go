package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"calpick/internal/calendar"
	"calpick/internal/format"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

func newMonthCmd(app *App) *cobra.Command {
	var (
		year, month int
		text        bool
	)

	cmd := &cobra.Command{
		Use:   "month",
		Short: "Print the week rows of a month",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			today := calendar.Today(time.Now(), app.bounds())
			if !cmd.Flags().Changed("year") {
				year = today.Year
			}
			if !cmd.Flags().Changed("month") {
				month = today.Month
			}
			if _, err := dateFromFlags(year, month, 1, app.bounds()); err != nil {
				return writeErr(cmd, err)
			}

			g := calendar.Grid(month, year)
			if text {
				return writeMonthText(cmd.OutOrStdout(), g)
			}
			return writeOut(cmd, app, format.Envelope{Data: monthPayload(g, app.bounds())})
		},
	}

	cmd.Flags().IntVar(&year, "year", 0, "Year (default: current)")
	cmd.Flags().IntVar(&month, "month", 0, "Month 1-12 (default: current)")
	cmd.Flags().BoolVar(&text, "text", false, "Print a plain text grid instead of structured output")

	return cmd
}

type monthData struct {
	calendar.MonthGrid
	WeekdayNames []string `json:"weekdayNames"`
	LeapYear     bool     `json:"leapYear"`
	IsMinMonth   bool     `json:"isMinMonth"`
	IsMaxMonth   bool     `json:"isMaxMonth"`
}

func monthPayload(g calendar.MonthGrid, b calendar.Bounds) monthData {
	first := calendar.Date{Year: g.Year, Month: g.Month, Day: 1}
	return monthData{
		MonthGrid:    g,
		WeekdayNames: calendar.WeekdayAbbrevs(),
		LeapYear:     calendar.IsLeapYear(g.Year),
		IsMinMonth:   b.IsMinDate(first),
		IsMaxMonth:   b.IsMaxDate(first),
	}
}

// writeMonthText prints a cal(1)-style grid, Monday first.
func writeMonthText(w io.Writer, g calendar.MonthGrid) error {
	const width = 7*3 - 1
	var b strings.Builder
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, fmt.Sprintf("%s %d", g.MonthName, g.Year)))
	b.WriteByte('\n')
	b.WriteString(strings.Join(calendar.WeekdayAbbrevs(), " "))
	b.WriteByte('\n')
	for _, week := range g.Weeks {
		cells := make([]string, len(week))
		for i, day := range week {
			if day == 0 {
				cells[i] = "  "
				continue
			}
			cells[i] = fmt.Sprintf("%2d", day)
		}
		b.WriteString(strings.TrimRight(strings.Join(cells, " "), " "))
		b.WriteByte('\n')
	}
	_, err := io.WriteString(w, b.String())
	return err
}
