package cli

import (
	"fmt"
	"log/slog"
	"strings"

	"calpick/internal/calendar"
	"calpick/internal/config"
	"calpick/internal/format"
	"calpick/internal/logging"
	"calpick/internal/tui"

	"github.com/spf13/cobra"
)

type App struct {
	Format     string
	PrettyJSON bool
	YearMin    int
	YearMax    int
	LogLevel   string

	cfg      *config.Config
	closeLog func() error
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:          "calpick",
		Short:        "Terminal date picker, spinner and buffering bar",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Try the widgets interactively
  calpick

  # Pick a date and print it
  calpick pick --year 2024 --month 2

  # Scriptable calendar arithmetic
  calpick month --year 2024 --month 5
  calpick weekday --year 2024 --month 1 --day 1
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return cmd.Help()
			}
			return tui.RunDemo(app.tuiOptions(calendar.Date{}))
		},
	}

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return app.setup(cmd)
	}
	cmd.PersistentPostRunE = func(cmd *cobra.Command, args []string) error {
		if app.closeLog != nil {
			return app.closeLog()
		}
		return nil
	}

	cmd.PersistentFlags().StringVar(&app.Format, "format", "", "Output format (json|edn; default from config or json)")
	cmd.PersistentFlags().BoolVar(&app.PrettyJSON, "pretty", false, "Pretty-print output")
	cmd.PersistentFlags().IntVar(&app.YearMin, "year-min", 0, "Lowest navigable year (default 1900)")
	cmd.PersistentFlags().IntVar(&app.YearMax, "year-max", 0, "Highest navigable year (default 3000)")
	cmd.PersistentFlags().StringVar(&app.LogLevel, "log-level", "", "Log level (debug|info|warn|error)")

	cmd.AddCommand(newPickCmd(app))
	cmd.AddCommand(newMonthCmd(app))
	cmd.AddCommand(newWeekdayCmd(app))
	cmd.AddCommand(newDocsCmd(app))

	return cmd
}

// setup resolves config (file, .env, environment) and lets flags win.
func (app *App) setup(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return writeErr(cmd, err)
	}
	flags := cmd.Flags()
	if flags.Changed("year-min") {
		cfg.YearMin = app.YearMin
	}
	if flags.Changed("year-max") {
		cfg.YearMax = app.YearMax
	}
	if app.Format != "" {
		cfg.Format = app.Format
	}
	if err := cfg.Validate(); err != nil {
		return writeErr(cmd, err)
	}
	app.cfg = cfg

	logger, closeLog, err := logging.Setup(cfg.Log, app.LogLevel)
	if err != nil {
		return writeErr(cmd, fmt.Errorf("open log: %w", err))
	}
	app.closeLog = closeLog
	logger.Debug("config resolved",
		slog.Int("yearMin", cfg.Bounds().YearMin),
		slog.Int("yearMax", cfg.Bounds().YearMax),
		slog.String("format", cfg.Format),
	)
	return nil
}

func (app *App) bounds() calendar.Bounds {
	return app.cfg.Bounds()
}

func (app *App) tuiOptions(start calendar.Date) tui.Options {
	return tui.Options{Bounds: app.bounds(), Date: start, TUI: app.cfg.TUI}
}

// writeOut writes env in the configured format.
func writeOut(cmd *cobra.Command, app *App, env format.Envelope) error {
	return format.Write(cmd.OutOrStdout(), env, app.cfg.Format, app.PrettyJSON)
}

func writeErr(cmd *cobra.Command, err error) error {
	fmt.Fprintln(cmd.ErrOrStderr(), err.Error())
	return err
}
