package tui

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"calpick/internal/calendar"
	"calpick/internal/config"
	"calpick/internal/logging"

	tea "github.com/charmbracelet/bubbletea"
)

// Options configure the interactive programs.
type Options struct {
	Bounds calendar.Bounds
	// Date is the initial date; the zero value means today.
	Date calendar.Date
	TUI  *config.TUIConfig
	// Now overrides the clock (tests).
	Now func() time.Time
}

func (o Options) now() time.Time {
	if o.Now != nil {
		return o.Now()
	}
	return time.Now()
}

func (o Options) spinnerName() string {
	if o.TUI == nil {
		return ""
	}
	return o.TUI.Spinner
}

func prepare(opts Options) func() {
	applyColorProfilePreference()
	theme := ""
	if opts.TUI != nil {
		theme = opts.TUI.Theme
	}
	applyThemePreference(theme)
	ApplyConfig(opts.TUI)
	return startDebugLog()
}

// startDebugLog sends debug logs to CALPICK_DEBUG_LOG while a program owns
// the terminal.
func startDebugLog() func() {
	path := strings.TrimSpace(os.Getenv("CALPICK_DEBUG_LOG"))
	if path == "" {
		return func() {}
	}
	f, err := tea.LogToFile(path, "calpick")
	if err != nil {
		slog.Warn("debug log unavailable", "path", path, "err", err)
		return func() {}
	}
	prev := slog.Default()
	slog.SetDefault(logging.New(f, "debug", "text"))
	return func() {
		slog.SetDefault(prev)
		_ = f.Close()
	}
}

// RunDemo shows the date picker, spinner and buffering bar together.
func RunDemo(opts Options) error {
	defer prepare(opts)()
	_, err := tea.NewProgram(newDemoModel(opts), tea.WithAltScreen()).Run()
	return err
}

// RunPicker shows an expanded date picker inline and returns the chosen
// date. ok is false when the user closed the picker without choosing.
func RunPicker(opts Options) (d calendar.Date, ok bool, err error) {
	defer prepare(opts)()
	final, err := tea.NewProgram(newPickModel(opts)).Run()
	if err != nil {
		return calendar.Date{}, false, err
	}
	pm, _ := final.(pickModel)
	if !pm.chosen {
		return calendar.Date{}, false, nil
	}
	return pm.picker.Date(), true, nil
}

// pickModel quits as soon as the picker closes.
type pickModel struct {
	picker DatePicker
	chosen bool
	done   bool
}

func newPickModel(opts Options) pickModel {
	start := opts.Date
	if start == (calendar.Date{}) {
		start = calendar.Today(opts.now(), opts.Bounds)
	}
	p := NewDatePicker("pick", start, opts.Bounds)
	if opts.Now != nil {
		p.now = opts.Now
	}
	p.Open()
	return pickModel{picker: p}
}

func (m pickModel) Init() tea.Cmd { return nil }

func (m pickModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case DateSelectedMsg:
		m.chosen = true
		m.done = true
		return m, tea.Quit
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.done = true
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)
	if !m.picker.IsOpen() && cmd == nil {
		// Closed with esc.
		m.done = true
		return m, tea.Quit
	}
	return m, cmd
}

func (m pickModel) View() string {
	if m.done {
		return ""
	}
	return m.picker.View() + "\n"
}
