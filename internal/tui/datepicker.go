package tui

import (
	"log/slog"
	"strconv"
	"strings"
	"time"

	"calpick/internal/calendar"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// DateChangedMsg is emitted whenever navigation or editing changes the date.
type DateChangedMsg struct {
	ID   string
	Date calendar.Date
}

// DateSelectedMsg is emitted when a day is chosen and the picker closes.
type DateSelectedMsg struct {
	ID   string
	Date calendar.Date
}

type pickerFocus int

const (
	pickerFocusGrid pickerFocus = iota
	pickerFocusYear
)

type pickerKeyMap struct {
	Open      key.Binding
	Close     key.Binding
	Choose    key.Binding
	PrevDay   key.Binding
	NextDay   key.Binding
	PrevWeek  key.Binding
	NextWeek  key.Binding
	PrevMonth key.Binding
	NextMonth key.Binding
	CycleMon  key.Binding
	CycleMonB key.Binding
	EditYear  key.Binding
	Today     key.Binding
	Commit    key.Binding
}

func defaultPickerKeyMap() pickerKeyMap {
	return pickerKeyMap{
		Open:      key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "open")),
		Close:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
		Choose:    key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "choose")),
		PrevDay:   key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev day")),
		NextDay:   key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next day")),
		PrevWeek:  key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "prev week")),
		NextWeek:  key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "next week")),
		PrevMonth: key.NewBinding(key.WithKeys("[", "pgup", "<"), key.WithHelp("[", "prev month")),
		NextMonth: key.NewBinding(key.WithKeys("]", "pgdown", ">"), key.WithHelp("]", "next month")),
		CycleMon:  key.NewBinding(key.WithKeys("m"), key.WithHelp("m/M", "month")),
		CycleMonB: key.NewBinding(key.WithKeys("M")),
		EditYear:  key.NewBinding(key.WithKeys("y", "tab"), key.WithHelp("y", "year")),
		Today:     key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "today")),
		Commit:    key.NewBinding(key.WithKeys("enter", "tab")),
	}
}

// DatePicker is a combo-style date field that expands into a month grid.
//
// Edits apply to the date immediately; the grid only offers days of the
// displayed month, and month navigation stops at the configured bounds.
type DatePicker struct {
	ID string

	date   calendar.Date
	bounds calendar.Bounds
	open   bool
	focus  pickerFocus
	year   textinput.Model
	keys   pickerKeyMap
	yerr   string

	now func() time.Time
}

// NewDatePicker returns a closed picker showing d. d is clamped into b.
func NewDatePicker(id string, d calendar.Date, b calendar.Bounds) DatePicker {
	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = 6
	ti.Width = 6
	return DatePicker{
		ID:     id,
		date:   d.Clamp(b),
		bounds: b,
		year:   ti,
		keys:   defaultPickerKeyMap(),
		now:    time.Now,
	}
}

func (p DatePicker) Date() calendar.Date     { return p.date }
func (p DatePicker) Bounds() calendar.Bounds { return p.bounds }
func (p DatePicker) IsOpen() bool            { return p.open }
func (p DatePicker) EditingYear() bool       { return p.open && p.focus == pickerFocusYear }

// SetDate replaces the date, clamping it into the picker's bounds.
func (p *DatePicker) SetDate(d calendar.Date) {
	p.date = d.Clamp(p.bounds)
}

func (p *DatePicker) Open() {
	p.open = true
	p.focus = pickerFocusGrid
	p.year.Blur()
}

func (p *DatePicker) Close() {
	p.open = false
	p.focus = pickerFocusGrid
	p.year.Blur()
	p.yerr = ""
}

func (p DatePicker) Init() tea.Cmd { return nil }

func (p DatePicker) Update(msg tea.Msg) (DatePicker, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		if p.EditingYear() {
			var cmd tea.Cmd
			p.year, cmd = p.year.Update(msg)
			return p, cmd
		}
		return p, nil
	}
	if !p.open {
		if key.Matches(km, p.keys.Open) {
			p.Open()
		}
		return p, nil
	}
	if p.focus == pickerFocusYear {
		return p.updateYear(km)
	}
	return p.updateGrid(km)
}

func (p DatePicker) updateGrid(km tea.KeyMsg) (DatePicker, tea.Cmd) {
	before := p.date
	switch {
	case key.Matches(km, p.keys.Close):
		p.Close()
		return p, nil
	case key.Matches(km, p.keys.Choose):
		p.Close()
		slog.Debug("date selected", "picker", p.ID, "date", p.date.String())
		return p, p.emitSelected()
	case key.Matches(km, p.keys.PrevDay):
		p.moveDay(-1)
	case key.Matches(km, p.keys.NextDay):
		p.moveDay(1)
	case key.Matches(km, p.keys.PrevWeek):
		p.moveDay(-7)
	case key.Matches(km, p.keys.NextWeek):
		p.moveDay(7)
	case key.Matches(km, p.keys.PrevMonth):
		p.bounds.Previous(&p.date)
	case key.Matches(km, p.keys.NextMonth):
		p.bounds.Next(&p.date)
	case key.Matches(km, p.keys.CycleMon):
		_ = p.date.SetMonth(p.date.Month%12 + 1)
	case key.Matches(km, p.keys.CycleMonB):
		_ = p.date.SetMonth((p.date.Month+10)%12 + 1)
	case key.Matches(km, p.keys.Today):
		p.date = calendar.Today(p.now(), p.bounds)
	case key.Matches(km, p.keys.EditYear):
		p.focus = pickerFocusYear
		p.yerr = ""
		p.year.SetValue(strconv.Itoa(p.date.Year))
		p.year.CursorEnd()
		return p, p.year.Focus()
	}
	if p.date == before {
		return p, nil
	}
	slog.Debug("date changed", "picker", p.ID, "from", before.String(), "to", p.date.String())
	return p, p.emitChanged()
}

func (p DatePicker) updateYear(km tea.KeyMsg) (DatePicker, tea.Cmd) {
	switch {
	case key.Matches(km, p.keys.Close):
		p.focus = pickerFocusGrid
		p.year.Blur()
		p.yerr = ""
		return p, nil
	case key.Matches(km, p.keys.Commit):
		y, err := strconv.Atoi(strings.TrimSpace(p.year.Value()))
		if err != nil {
			p.yerr = "year must be a number"
			return p, nil
		}
		p.focus = pickerFocusGrid
		p.year.Blur()
		p.yerr = ""
		before := p.date
		p.date.SetYear(y, p.bounds)
		if p.date == before {
			return p, nil
		}
		return p, p.emitChanged()
	}
	var cmd tea.Cmd
	p.year, cmd = p.year.Update(km)
	return p, cmd
}

// moveDay shifts the selected day by delta when the target stays inside the
// displayed month.
func (p *DatePicker) moveDay(delta int) {
	_ = p.date.SetDay(p.date.Day + delta)
}

func (p DatePicker) emitChanged() tea.Cmd {
	msg := DateChangedMsg{ID: p.ID, Date: p.date}
	return func() tea.Msg { return msg }
}

func (p DatePicker) emitSelected() tea.Cmd {
	msg := DateSelectedMsg{ID: p.ID, Date: p.date}
	return func() tea.Msg { return msg }
}

const pickerCellWidth = 4

func (p DatePicker) View() string {
	combo := styleCombo().Render(p.date.LongString() + " " + glyphDropdown())
	if !p.open {
		return combo
	}

	gridWidth := pickerCellWidth * 7
	lines := []string{combo, p.viewHeader(gridWidth), p.viewNav(gridWidth), p.viewWeekdays()}
	lines = append(lines, p.viewWeeks()...)
	if p.yerr != "" {
		lines = append(lines, lipgloss.NewStyle().Foreground(ac("160", "203")).Render(p.yerr))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

// viewHeader shows the month "combobox" and the year input side by side.
func (p DatePicker) viewHeader(width int) string {
	month := styleAccent().Render(calendar.MonthName(p.date.Month))
	var year string
	if p.EditingYear() {
		year = p.year.View()
	} else {
		year = strconv.Itoa(p.date.Year)
	}
	gap := width - ansi.StringWidth(month) - ansi.StringWidth(year)
	if gap < 1 {
		gap = 1
	}
	return month + strings.Repeat(" ", gap) + year
}

func (p DatePicker) viewNav(width int) string {
	left := glyphArrowLeft()
	if p.bounds.IsMinDate(p.date) {
		left = styleDisabled().Render(left)
	} else {
		left = styleAccent().Render(left)
	}
	right := glyphArrowRight()
	if p.bounds.IsMaxDate(p.date) {
		right = styleDisabled().Render(right)
	} else {
		right = styleAccent().Render(right)
	}
	nav := left + " " + styleMuted().Render(glyphBullet()) + " " + right
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, nav)
}

func (p DatePicker) viewWeekdays() string {
	var b strings.Builder
	for _, d := range calendar.WeekdayAbbrevs() {
		b.WriteString(styleMuted().Render(padCell(d)))
	}
	return b.String()
}

func (p DatePicker) viewWeeks() []string {
	g := p.date.Grid()
	selWeek, selCol, _ := g.Locate(p.date.Day)
	today := calendar.Today(p.now(), p.bounds)
	out := make([]string, 0, len(g.Weeks))
	for wi, w := range g.Weeks {
		var b strings.Builder
		for col, day := range w {
			if day == 0 {
				b.WriteString(strings.Repeat(" ", pickerCellWidth))
				continue
			}
			cell := padCell(strconv.Itoa(day))
			switch {
			case wi+1 == selWeek && col == selCol:
				cell = styleSelected().Render(cell)
			case today.Year == g.Year && today.Month == g.Month && today.Day == day:
				cell = styleHover().Render(cell)
			}
			b.WriteString(cell)
		}
		out = append(out, b.String())
	}
	return out
}

func padCell(s string) string {
	w := ansi.StringWidth(s)
	if w >= pickerCellWidth {
		return ansi.Truncate(s, pickerCellWidth, "")
	}
	return strings.Repeat(" ", pickerCellWidth-1-w) + s + " "
}
