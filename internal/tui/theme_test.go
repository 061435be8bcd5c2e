package tui

import (
	"testing"

	"calpick/internal/config"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

func TestApplyConfig_OverridesAndResetsPalette(t *testing.T) {
	oldBG := lipgloss.HasDarkBackground()
	t.Cleanup(func() {
		lipgloss.SetHasDarkBackground(oldBG)
		ApplyConfig(nil)
	})

	ApplyConfig(&config.TUIConfig{
		AccentColor: &config.AdaptiveColor{Light: "1", Dark: "2"},
		BarFill:     &config.AdaptiveColor{Light: "#ffffff", Dark: "#000000"},
	})
	if colorAccent != ac("1", "2") {
		t.Fatalf("expected accent override, got %#v", colorAccent)
	}

	lipgloss.SetHasDarkBackground(true)
	if got := resolve(colorBarFill); got != "#000000" {
		t.Fatalf("expected dark bar fill, got %q", got)
	}
	lipgloss.SetHasDarkBackground(false)
	if got := resolve(colorBarFill); got != "#ffffff" {
		t.Fatalf("expected light bar fill, got %q", got)
	}

	ApplyConfig(nil)
	if colorAccent != defaultColorAccent || colorBarFill != defaultColorBarFill {
		t.Fatalf("expected defaults after reset")
	}
}

func TestApplyThemePreference(t *testing.T) {
	oldBG := lipgloss.HasDarkBackground()
	t.Cleanup(func() { lipgloss.SetHasDarkBackground(oldBG) })

	t.Setenv("CALPICK_TUI_THEME", "light")
	t.Setenv("COLORFGBG", "")
	lipgloss.SetHasDarkBackground(true)
	applyThemePreference("dark")
	if lipgloss.HasDarkBackground() {
		t.Fatalf("expected env to beat config")
	}

	t.Setenv("CALPICK_TUI_THEME", "")
	applyThemePreference("dark")
	if !lipgloss.HasDarkBackground() {
		t.Fatalf("expected config theme to apply")
	}

	t.Setenv("COLORFGBG", "0;15")
	applyThemePreference("auto")
	if lipgloss.HasDarkBackground() {
		t.Fatalf("expected COLORFGBG bg=15 to mean light")
	}
}

func TestThemeDark(t *testing.T) {
	t.Parallel()

	cases := []struct {
		pref, fgbg string
		dark, ok   bool
	}{
		{"dark", "0;15", true, true},
		{"LIGHT", "", false, true},
		{"auto", "15;0", true, true},
		{"", "15;default;8", false, true},
		{"auto", "", false, false},
		{"", "garbage", false, false},
	}
	for _, tc := range cases {
		dark, ok := themeDark(tc.pref, tc.fgbg)
		if dark != tc.dark || ok != tc.ok {
			t.Fatalf("themeDark(%q, %q) = %v, %v; want %v, %v", tc.pref, tc.fgbg, dark, ok, tc.dark, tc.ok)
		}
	}
}

func TestColorProfileFor(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name                 string
		noColor, term, cterm string
		detected, want       termenv.Profile
	}{
		{"no color", "1", "xterm-256color", "truecolor", termenv.TrueColor, termenv.Ascii},
		{"truecolor env", "", "xterm", "24bit", termenv.ANSI256, termenv.TrueColor},
		{"256color raises ansi", "", "screen-256color", "", termenv.ANSI, termenv.ANSI256},
		{"never lowers", "", "xterm-256color", "", termenv.TrueColor, termenv.TrueColor},
		{"no tty stays ascii", "", "xterm-256color", "truecolor", termenv.Ascii, termenv.Ascii},
	}
	for _, tc := range cases {
		if got := colorProfileFor(tc.noColor, tc.term, tc.cterm, tc.detected); got != tc.want {
			t.Fatalf("%s: got %v want %v", tc.name, got, tc.want)
		}
	}
}

func TestApplyColorProfilePreference_NoColor(t *testing.T) {
	oldProfile := lipgloss.ColorProfile()
	t.Cleanup(func() { lipgloss.SetColorProfile(oldProfile) })

	t.Setenv("NO_COLOR", "1")
	applyColorProfilePreference()
	if got := lipgloss.ColorProfile(); got != termenv.Ascii {
		t.Fatalf("expected ascii profile with NO_COLOR, got %v", got)
	}
}
