package terminal

import (
	"fmt"
	"os"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/antigravity/core"
)

// ColorMode selects how RGB values reach the terminal
type ColorMode uint8

const (
	ColorModeTrueColor ColorMode = iota
	ColorMode256
)

// String returns the flag spelling
func (m ColorMode) String() string {
	if m == ColorMode256 {
		return "256"
	}
	return "truecolor"
}

// ParseColorMode reads a -color flag value; "auto" detects from the environment
func ParseColorMode(s string) (ColorMode, error) {
	switch strings.ToLower(s) {
	case "", "auto":
		return DetectColorMode(os.Getenv), nil
	case "truecolor", "24bit":
		return ColorModeTrueColor, nil
	case "256":
		return ColorMode256, nil
	default:
		return ColorModeTrueColor, fmt.Errorf("unknown color mode %q", s)
	}
}

// DetectColorMode checks COLORTERM for truecolor support
func DetectColorMode(getenv func(string) string) ColorMode {
	switch strings.ToLower(getenv("COLORTERM")) {
	case "truecolor", "24bit":
		return ColorModeTrueColor
	}
	return ColorMode256
}

// ColorMapper converts RGB to tcell colors, caching 256-color lookups
type ColorMapper struct {
	mode    ColorMode
	palette []tcell.Color
	cache   map[core.RGB]tcell.Color
}

// NewColorMapper creates a mapper for mode
func NewColorMapper(mode ColorMode) *ColorMapper {
	m := &ColorMapper{mode: mode}
	if mode == ColorMode256 {
		// Skip the 16 user-themable colors
		m.palette = make([]tcell.Color, 0, 240)
		for i := 16; i < 256; i++ {
			m.palette = append(m.palette, tcell.PaletteColor(i))
		}
		m.cache = make(map[core.RGB]tcell.Color)
	}
	return m
}

// Mode returns the active color mode
func (m *ColorMapper) Mode() ColorMode {
	return m.mode
}

// Color maps c to a tcell color
func (m *ColorMapper) Color(c core.RGB) tcell.Color {
	rgb := tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
	if m.mode == ColorModeTrueColor {
		return rgb
	}
	if cached, ok := m.cache[c]; ok {
		return cached
	}
	found := tcell.FindColor(rgb, m.palette)
	m.cache[c] = found
	return found
}
