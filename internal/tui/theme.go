package tui

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"runtime"
	"strconv"
	"strings"
	"time"

	"calpick/internal/config"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme/palette helpers.
//
// The widgets must remain readable on both light and dark terminal backgrounds.
// We use lipgloss.AdaptiveColor where possible and only apply "faint" styling
// on dark backgrounds (faint text on light terminals often becomes illegible).

func ac(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

func faintIfDark(st lipgloss.Style) lipgloss.Style {
	if lipgloss.HasDarkBackground() {
		return st.Faint(true)
	}
	return st
}

var (
	defaultColorMuted = ac("240", "243")
	colorMuted        = defaultColorMuted

	// Disabled navigation arrows at the min/max date.
	colorDisabled = ac("250", "238")

	defaultColorAccent = ac("27", "62") // blue
	colorAccent        = defaultColorAccent
	colorAccentFg      = ac("255", "235")

	colorSelectedBg = ac("#e9e9e9", "#262626")
	colorSelectedFg = ac("235", "255")

	colorControlBg = ac("252", "235")

	// Buffering bar. progress.Model takes plain color strings, so these are
	// resolved against the background when the bar is built.
	defaultColorBarFill  = ac("27", "62")
	colorBarFill         = defaultColorBarFill
	defaultColorBarEmpty = ac("252", "238")
	colorBarEmpty        = defaultColorBarEmpty
)

func styleMuted() lipgloss.Style {
	return faintIfDark(lipgloss.NewStyle().Foreground(colorMuted))
}

func styleDisabled() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(colorDisabled)
}

func styleAccent() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
}

func styleSelected() lipgloss.Style {
	return lipgloss.NewStyle().Background(colorAccent).Foreground(colorAccentFg).Bold(true)
}

func styleHover() lipgloss.Style {
	return lipgloss.NewStyle().Background(colorSelectedBg).Foreground(colorSelectedFg)
}

func styleCombo() lipgloss.Style {
	return lipgloss.NewStyle().Background(colorControlBg).Padding(0, 1)
}

func resolve(c lipgloss.AdaptiveColor) string {
	if lipgloss.HasDarkBackground() {
		return c.Dark
	}
	return c.Light
}

// ApplyConfig overrides palette and glyph defaults from the user's config.
func ApplyConfig(cfg *config.TUIConfig) {
	colorAccent = defaultColorAccent
	colorMuted = defaultColorMuted
	colorBarFill = defaultColorBarFill
	colorBarEmpty = defaultColorBarEmpty
	setGlyphs(glyphSetUnicode)
	if cfg == nil {
		return
	}
	if v, ok := parseGlyphSet(cfg.Glyphs); ok {
		setGlyphs(v)
	}
	if c := cfg.AccentColor; c != nil {
		colorAccent = ac(c.Light, c.Dark)
	}
	if c := cfg.MutedColor; c != nil {
		colorMuted = ac(c.Light, c.Dark)
	}
	if c := cfg.BarFill; c != nil {
		colorBarFill = ac(c.Light, c.Dark)
	}
	if c := cfg.BarEmpty; c != nil {
		colorBarEmpty = ac(c.Light, c.Dark)
	}
}

// applyColorProfilePreference picks the color profile the widgets render
// with. NO_COLOR wins; otherwise TERM/COLORTERM may raise what termenv
// detected, never lower it.
func applyColorProfilePreference() {
	lipgloss.SetColorProfile(colorProfileFor(
		os.Getenv("NO_COLOR"),
		os.Getenv("TERM"),
		os.Getenv("COLORTERM"),
		termenv.ColorProfile(),
	))
}

func colorProfileFor(noColor, term, colorterm string, detected termenv.Profile) termenv.Profile {
	if strings.TrimSpace(noColor) != "" {
		return termenv.Ascii
	}
	term = strings.ToLower(term)
	colorterm = strings.ToLower(colorterm)
	switch {
	case detected == termenv.Ascii:
		return detected
	case strings.Contains(colorterm, "truecolor"), strings.Contains(colorterm, "24bit"):
		return termenv.TrueColor
	case strings.Contains(term, "256color") && detected == termenv.ANSI:
		return termenv.ANSI256
	}
	return detected
}

// applyThemePreference decides whether the adaptive palette uses its dark
// variants. CALPICK_TUI_THEME beats tui.theme from config; "auto" or unset
// falls through to COLORFGBG, then the macOS appearance setting.
func applyThemePreference(configured string) {
	pref := os.Getenv("CALPICK_TUI_THEME")
	if strings.TrimSpace(pref) == "" {
		pref = configured
	}
	if dark, ok := themeDark(pref, os.Getenv("COLORFGBG")); ok {
		lipgloss.SetHasDarkBackground(dark)
		return
	}
	if runtime.GOOS == "darwin" {
		if dark, ok := macOSHasDarkAppearance(); ok {
			lipgloss.SetHasDarkBackground(dark)
		}
	}
}

// themeDark resolves a light|dark|auto preference, using COLORFGBG ("fg;bg")
// for auto. ok is false when neither gives an answer.
func themeDark(pref, colorfgbg string) (dark, ok bool) {
	switch strings.ToLower(strings.TrimSpace(pref)) {
	case "light":
		return false, true
	case "dark":
		return true, true
	}
	fields := strings.Split(strings.TrimSpace(colorfgbg), ";")
	bg, err := strconv.Atoi(strings.TrimSpace(fields[len(fields)-1]))
	if err != nil {
		return false, false
	}
	return bg < 7, true
}

// macOSHasDarkAppearance reads AppleInterfaceStyle; the key is missing (exit 1)
// in light mode.
func macOSHasDarkAppearance() (dark, ok bool) {
	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	out, err := exec.CommandContext(ctx, "defaults", "read", "-g", "AppleInterfaceStyle").Output()
	switch {
	case ctx.Err() != nil:
		return false, false
	case err == nil:
		return strings.EqualFold(strings.TrimSpace(string(out)), "dark"), true
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && exitErr.ExitCode() == 1 {
		return false, true
	}
	return false, false
}
