// Package config resolves calpick settings from ~/.calpick/config.json, an
// optional .env file and CALPICK_* environment variables.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"calpick/internal/calendar"
	"calpick/internal/format"

	"github.com/joho/godotenv"
)

type Config struct {
	// YearMin/YearMax bound date picker navigation. Zero means the default.
	YearMin int `json:"yearMin,omitempty"`
	YearMax int `json:"yearMax,omitempty"`

	// Format is the default output format for scriptable commands (json|edn).
	Format string `json:"format,omitempty"`

	TUI *TUIConfig `json:"tui,omitempty"`
	Log *LogConfig `json:"log,omitempty"`
}

type TUIConfig struct {
	// Glyphs selects the glyph set ("unicode" or "ascii").
	Glyphs string `json:"glyphs,omitempty"`
	// Theme forces the light or dark palette ("light", "dark" or "auto").
	Theme string `json:"theme,omitempty"`
	// Spinner names the spinner animation (e.g. "line", "dot", "minidot").
	Spinner string `json:"spinner,omitempty"`

	AccentColor *AdaptiveColor `json:"accentColor,omitempty"`
	MutedColor  *AdaptiveColor `json:"mutedColor,omitempty"`
	BarFill     *AdaptiveColor `json:"barFill,omitempty"`
	BarEmpty    *AdaptiveColor `json:"barEmpty,omitempty"`
}

type AdaptiveColor struct {
	Light string `json:"light,omitempty"`
	Dark  string `json:"dark,omitempty"`
}

type LogConfig struct {
	// Level is one of debug|info|warn|error.
	Level string `json:"level,omitempty"`
	// Format is text or json.
	Format string `json:"format,omitempty"`
	// File receives log output; stderr when empty.
	File string `json:"file,omitempty"`
}

func ConfigDir() (string, error) {
	// Test/advanced override (keeps unit tests from touching ~/.calpick).
	if v := strings.TrimSpace(os.Getenv("CALPICK_CONFIG_DIR")); v != "" {
		return v, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".calpick"), nil
}

func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// LoadConfig reads the config file. A missing file yields an empty config.
func LoadConfig() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, err
	}
	var cfg Config
	if err := json.Unmarshal(b, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &cfg, nil
}

// Load resolves the effective config: file, then .env, then environment.
func Load() (*Config, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, err
	}
	// .env is optional; a missing file is not an error.
	_ = godotenv.Load()
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v, ok, err := envInt("CALPICK_YEAR_MIN"); err != nil {
		return err
	} else if ok {
		c.YearMin = v
	}
	if v, ok, err := envInt("CALPICK_YEAR_MAX"); err != nil {
		return err
	} else if ok {
		c.YearMax = v
	}
	if v := strings.TrimSpace(os.Getenv("CALPICK_FORMAT")); v != "" {
		c.Format = v
	}
	if v := strings.TrimSpace(os.Getenv("CALPICK_LOG_LEVEL")); v != "" {
		c.log().Level = v
	}
	if v := strings.TrimSpace(os.Getenv("CALPICK_LOG_FORMAT")); v != "" {
		c.log().Format = v
	}
	if v := strings.TrimSpace(os.Getenv("CALPICK_LOG_FILE")); v != "" {
		c.log().File = v
	}
	if v := strings.TrimSpace(os.Getenv("CALPICK_GLYPHS")); v != "" {
		c.tui().Glyphs = v
	}
	return nil
}

func (c *Config) log() *LogConfig {
	if c.Log == nil {
		c.Log = &LogConfig{}
	}
	return c.Log
}

func (c *Config) tui() *TUIConfig {
	if c.TUI == nil {
		c.TUI = &TUIConfig{}
	}
	return c.TUI
}

// Bounds returns the navigable year range, falling back to the defaults for
// unset ends.
func (c *Config) Bounds() calendar.Bounds {
	b := calendar.DefaultBounds
	if c == nil {
		return b
	}
	if c.YearMin != 0 {
		b.YearMin = c.YearMin
	}
	if c.YearMax != 0 {
		b.YearMax = c.YearMax
	}
	return b
}

func (c *Config) Validate() error {
	var errs []error
	if err := c.Bounds().Validate(); err != nil {
		errs = append(errs, err)
	}
	if _, err := format.Parse(c.Format); err != nil {
		errs = append(errs, fmt.Errorf("format: %w", err))
	}
	if c.TUI != nil && strings.TrimSpace(c.TUI.Glyphs) != "" {
		if _, ok := GlyphSet(c.TUI.Glyphs); !ok {
			errs = append(errs, fmt.Errorf("tui.glyphs must be unicode or ascii, got %q", c.TUI.Glyphs))
		}
	}
	if c.TUI != nil {
		switch strings.ToLower(strings.TrimSpace(c.TUI.Theme)) {
		case "", "auto", "light", "dark":
		default:
			errs = append(errs, fmt.Errorf("tui.theme must be light, dark or auto, got %q", c.TUI.Theme))
		}
	}
	if c.Log != nil {
		switch c.Log.Format {
		case "", "text", "json":
		default:
			errs = append(errs, fmt.Errorf("log.format must be text or json, got %q", c.Log.Format))
		}
	}
	return errors.Join(errs...)
}

// GlyphSet normalizes a glyph preference to "unicode" or "ascii". "utf8" is
// an alias for unicode; matching ignores case and surrounding space.
func GlyphSet(v string) (string, bool) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "unicode", "utf8":
		return "unicode", true
	case "ascii":
		return "ascii", true
	default:
		return "", false
	}
}

func envInt(k string) (int, bool, error) {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return 0, false, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, false, fmt.Errorf("%s must be an integer, got %q", k, v)
	}
	return n, true, nil
}
