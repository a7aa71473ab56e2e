// Package theme holds the light and dark color schemes, the persisted
// preference and a file watcher that propagates changes to running hosts.
package theme

import (
	"fmt"
	"strings"

	"github.com/lixenwraith/antigravity/core"
	"github.com/lixenwraith/antigravity/parameter/visual"
)

// Theme selects a palette and surface colors
type Theme uint8

const (
	Light Theme = iota
	Dark
)

// String returns the persisted name
func (t Theme) String() string {
	if t == Dark {
		return "dark"
	}
	return "light"
}

// Parse reads a theme name, case-insensitive
func Parse(s string) (Theme, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "light":
		return Light, nil
	case "dark":
		return Dark, nil
	default:
		return Light, fmt.Errorf("unknown theme %q", s)
	}
}

// Toggle returns the other theme
func (t Theme) Toggle() Theme {
	if t == Dark {
		return Light
	}
	return Dark
}

// Palette returns the particle colors for the theme
func (t Theme) Palette() core.Palette {
	if t == Dark {
		return visual.PaletteDark
	}
	return visual.PaletteLight
}

// Background returns the surface clear color
func (t Theme) Background() core.RGB {
	if t == Dark {
		return visual.RgbBackgroundDark
	}
	return visual.RgbBackgroundLight
}

// Foreground returns the overlay text color
func (t Theme) Foreground() core.RGB {
	if t == Dark {
		return visual.RgbTextDark
	}
	return visual.RgbTextLight
}

// Applier receives theme changes from background goroutines
// Implementations must be safe for concurrent use
type Applier interface {
	ApplyTheme(t Theme)
}

// ApplierFunc adapts a function to Applier
type ApplierFunc func(t Theme)

// ApplyTheme implements Applier
func (f ApplierFunc) ApplyTheme(t Theme) {
	f(t)
}
