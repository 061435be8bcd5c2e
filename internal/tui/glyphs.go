package tui

import (
	"sync"

	"calpick/internal/config"
)

// Terminals can't change the user's font, so widgets pick between Unicode and
// ASCII glyph sets for arrows, bullets and bar cells.

type glyphSet int

const (
	glyphSetUnicode glyphSet = iota
	glyphSetASCII
)

var (
	glyphsMu      sync.RWMutex
	currentGlyphs = glyphSetUnicode
)

func parseGlyphSet(v string) (glyphSet, bool) {
	name, ok := config.GlyphSet(v)
	if name == "ascii" {
		return glyphSetASCII, ok
	}
	return glyphSetUnicode, ok
}

func setGlyphs(gs glyphSet) {
	glyphsMu.Lock()
	currentGlyphs = gs
	glyphsMu.Unlock()
}

func glyphs() glyphSet {
	glyphsMu.RLock()
	gs := currentGlyphs
	glyphsMu.RUnlock()
	return gs
}

func glyphArrowLeft() string {
	if glyphs() == glyphSetASCII {
		return "<"
	}
	return "◀"
}

func glyphArrowRight() string {
	if glyphs() == glyphSetASCII {
		return ">"
	}
	return "▶"
}

func glyphBullet() string {
	if glyphs() == glyphSetASCII {
		return "*"
	}
	return "•"
}

func glyphDropdown() string {
	if glyphs() == glyphSetASCII {
		return "v"
	}
	return "▾"
}

func glyphBarDot() string {
	if glyphs() == glyphSetASCII {
		return "o"
	}
	return "●"
}

func glyphBarFull() rune {
	if glyphs() == glyphSetASCII {
		return '#'
	}
	return '█'
}

func glyphBarEmpty() rune {
	if glyphs() == glyphSetASCII {
		return '-'
	}
	return '░'
}
