package tui

import (
	"math"
	"strings"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	// The fill occupies the first 70% of the bar; the rest is the dot track.
	bufferFillRatio = 0.7
	// One full sweep of a dot across the track.
	bufferPeriod    = 1500 * time.Millisecond
	bufferFrameRate = 50 * time.Millisecond
)

// Dots trail each other by a third of a sweep.
var bufferPhases = [3]float64{0, 1.0 / 3, 2.0 / 3}

var lastBarID int64

type bufferTickMsg struct {
	id  int
	now time.Time
}

// BufferingBar shows a progress fill followed by three dots sweeping right
// to left, signalling that more data is still arriving.
type BufferingBar struct {
	id    int
	value float64
	width int

	bar     progress.Model
	started time.Time
	elapsed time.Duration
}

func NewBufferingBar(width int) BufferingBar {
	b := BufferingBar{id: int(atomic.AddInt64(&lastBarID, 1))}
	b.bar = progress.New(progress.WithoutPercentage())
	b.SetWidth(width)
	return b
}

func (b BufferingBar) Value() float64 { return b.value }

// SetValue sets the fill fraction, clamped to [0, 1].
func (b *BufferingBar) SetValue(v float64) {
	b.value = math.Max(0, math.Min(1, v))
}

func (b *BufferingBar) SetWidth(w int) {
	if w < 4 {
		w = 4
	}
	b.width = w
	b.bar.Width = bufferTrackStart(w)
}

func (b BufferingBar) Init() tea.Cmd {
	return b.tick()
}

func (b BufferingBar) tick() tea.Cmd {
	id := b.id
	return tea.Tick(bufferFrameRate, func(t time.Time) tea.Msg {
		return bufferTickMsg{id: id, now: t}
	})
}

func (b BufferingBar) Update(msg tea.Msg) (BufferingBar, tea.Cmd) {
	m, ok := msg.(bufferTickMsg)
	if !ok || m.id != b.id {
		return b, nil
	}
	if b.started.IsZero() {
		b.started = m.now
	}
	b.elapsed = m.now.Sub(b.started)
	return b, b.tick()
}

func (b BufferingBar) View() string {
	b.bar.Full = glyphBarFull()
	b.bar.Empty = glyphBarEmpty()
	b.bar.FullColor = resolve(colorBarFill)
	b.bar.EmptyColor = resolve(colorBarEmpty)
	fill := b.bar.ViewAs(b.value)

	start := bufferTrackStart(b.width)
	track := make([]string, b.width-start)
	for i := range track {
		track[i] = " "
	}
	dot := lipgloss.NewStyle().Foreground(colorBarEmpty).Render(glyphBarDot())
	for _, col := range bufferDots(b.elapsed, b.width) {
		track[col-start] = dot
	}
	return fill + strings.Join(track, "")
}

func bufferTrackStart(width int) int {
	return int(float64(width) * bufferFillRatio)
}

// bufferDots returns the columns of the three dots after elapsed time on a
// bar of the given width. Each dot enters at the right edge and travels the
// track plus half a cell before wrapping; columns are clamped to the track.
func bufferDots(elapsed time.Duration, width int) []int {
	start := bufferTrackStart(width)
	track := width - start
	if track <= 0 {
		return nil
	}
	t := elapsed.Seconds() / bufferPeriod.Seconds()
	out := make([]int, 0, len(bufferPhases))
	for _, phase := range bufferPhases {
		f := t + phase
		f -= math.Floor(f)
		x := float64(width) - (float64(track)+0.5)*f
		col := int(math.Floor(x))
		if col > width-1 {
			col = width - 1
		}
		if col < start {
			col = start
		}
		out = append(out, col)
	}
	return out
}
