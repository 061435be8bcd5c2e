package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var spinnersByName = map[string]spinner.Spinner{
	"line":      spinner.Line,
	"dot":       spinner.Dot,
	"minidot":   spinner.MiniDot,
	"jump":      spinner.Jump,
	"pulse":     spinner.Pulse,
	"points":    spinner.Points,
	"globe":     spinner.Globe,
	"moon":      spinner.Moon,
	"meter":     spinner.Meter,
	"hamburger": spinner.Hamburger,
}

// spinnerFor picks the named animation. ASCII glyphs always use "line",
// the only set that renders without Unicode.
func spinnerFor(name string) spinner.Spinner {
	if glyphs() == glyphSetASCII {
		return spinner.Line
	}
	if s, ok := spinnersByName[strings.ToLower(strings.TrimSpace(name))]; ok {
		return s
	}
	return spinner.MiniDot
}

// Spinner is a labelled busy indicator.
type Spinner struct {
	Label string

	model  spinner.Model
	active bool
}

func NewSpinner(name, label string) Spinner {
	m := spinner.New(
		spinner.WithSpinner(spinnerFor(name)),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(colorAccent)),
	)
	return Spinner{Label: label, model: m, active: true}
}

func (s Spinner) Active() bool { return s.active }

// Start resumes the animation; the returned command schedules the next frame.
func (s *Spinner) Start() tea.Cmd {
	if s.active {
		return nil
	}
	s.active = true
	return s.model.Tick
}

// Stop freezes the spinner; pending ticks are dropped.
func (s *Spinner) Stop() {
	s.active = false
}

func (s Spinner) Init() tea.Cmd {
	if !s.active {
		return nil
	}
	return s.model.Tick
}

func (s Spinner) Update(msg tea.Msg) (Spinner, tea.Cmd) {
	tick, ok := msg.(spinner.TickMsg)
	if !ok || !s.active {
		return s, nil
	}
	var cmd tea.Cmd
	s.model, cmd = s.model.Update(tick)
	return s, cmd
}

func (s Spinner) View() string {
	if !s.active {
		return ""
	}
	if s.Label == "" {
		return s.model.View()
	}
	return s.model.View() + " " + styleMuted().Render(s.Label)
}
