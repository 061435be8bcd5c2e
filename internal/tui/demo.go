package tui

import (
	"fmt"
	"strings"

	"calpick/internal/calendar"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type demoKeyMap struct {
	Quit          key.Binding
	MoreProgress  key.Binding
	LessProgress  key.Binding
	ToggleSpinner key.Binding
}

func defaultDemoKeyMap() demoKeyMap {
	return demoKeyMap{
		Quit:          key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		MoreProgress:  key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+/-", "progress")),
		LessProgress:  key.NewBinding(key.WithKeys("-", "_")),
		ToggleSpinner: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "spinner")),
	}
}

// demoModel hosts one of each widget.
type demoModel struct {
	picker  DatePicker
	spinner Spinner
	bar     BufferingBar
	keys    demoKeyMap

	spinnerName string
	chosen      *calendar.Date
	width       int
}

func newDemoModel(opts Options) demoModel {
	start := opts.Date
	if start == (calendar.Date{}) {
		start = calendar.Today(opts.now(), opts.Bounds)
	}
	m := demoModel{
		picker:      NewDatePicker("demo", start, opts.Bounds),
		spinnerName: opts.spinnerName(),
		bar:         NewBufferingBar(40),
		keys:        defaultDemoKeyMap(),
	}
	m.spinner = NewSpinner(m.spinnerName, "loading")
	m.bar.SetValue(0.7)
	if opts.Now != nil {
		m.picker.now = opts.Now
	}
	return m
}

func (m demoModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Init(), m.bar.Init())
}

func (m demoModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		w := msg.Width - 4
		if w > 60 {
			w = 60
		}
		m.bar.SetWidth(w)
		return m, nil

	case DateSelectedMsg:
		d := msg.Date
		m.chosen = &d
		return m, nil

	case tea.KeyMsg:
		// Keys go to the picker first while it is expanded.
		if m.picker.IsOpen() {
			if msg.String() == "ctrl+c" {
				return m, tea.Quit
			}
			var cmd tea.Cmd
			m.picker, cmd = m.picker.Update(msg)
			return m, cmd
		}
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.MoreProgress):
			m.bar.SetValue(m.bar.Value() + 0.1)
			return m, nil
		case key.Matches(msg, m.keys.LessProgress):
			m.bar.SetValue(m.bar.Value() - 0.1)
			return m, nil
		case key.Matches(msg, m.keys.ToggleSpinner):
			if m.spinner.Active() {
				m.spinner.Stop()
				return m, nil
			}
			return m, m.spinner.Start()
		}
		var cmd tea.Cmd
		m.picker, cmd = m.picker.Update(msg)
		return m, cmd
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.spinner, cmd = m.spinner.Update(msg)
	cmds = append(cmds, cmd)
	m.bar, cmd = m.bar.Update(msg)
	cmds = append(cmds, cmd)
	m.picker, cmd = m.picker.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

func (m demoModel) View() string {
	title := styleAccent().Render("Date picker")
	sections := []string{title, m.picker.View()}
	if m.chosen != nil {
		sections = append(sections, styleMuted().Render("chosen: "+m.chosen.String()))
	}
	sections = append(sections,
		"",
		styleAccent().Render("Progress indicators"),
		m.spinner.View(),
		m.bar.View()+" "+styleMuted().Render(fmt.Sprintf("%3.0f%%", m.bar.Value()*100)),
		"",
		m.helpLine(),
	)
	return lipgloss.NewStyle().Padding(1, 2).Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (m demoModel) helpLine() string {
	var bindings []key.Binding
	if m.picker.IsOpen() {
		k := m.picker.keys
		bindings = []key.Binding{k.PrevDay, k.NextDay, k.PrevWeek, k.NextWeek, k.PrevMonth, k.NextMonth, k.CycleMon, k.EditYear, k.Today, k.Choose, k.Close}
	} else {
		bindings = []key.Binding{m.picker.keys.Open, m.keys.MoreProgress, m.keys.ToggleSpinner, m.keys.Quit}
	}
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return styleMuted().Render(strings.Join(parts, " · "))
}
