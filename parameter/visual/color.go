package visual

import "github.com/lixenwraith/antigravity/core"

// Particle palettes, five entries each
var (
	PaletteLight = core.Palette{
		{R: 46, G: 125, B: 50, A: 0.8},
		{R: 56, G: 142, B: 60, A: 0.8},
		{R: 67, G: 160, B: 71, A: 0.8},
		{R: 129, G: 199, B: 132, A: 0.6},
		{R: 165, G: 214, B: 167, A: 0.7},
	}

	PaletteDark = core.Palette{
		{R: 74, G: 222, B: 128, A: 0.8},
		{R: 34, G: 197, B: 94, A: 0.8},
		{R: 22, G: 163, B: 74, A: 0.8},
		{R: 134, G: 239, B: 172, A: 0.6},
		{R: 187, G: 247, B: 208, A: 0.7},
	}
)

// RgbConnection is the line color, alpha comes from distance
var RgbConnection = core.RGB{R: 197, G: 114, B: 233}

// Surface backgrounds per theme
var (
	RgbBackgroundLight = core.RGB{R: 250, G: 250, B: 247}
	RgbBackgroundDark  = core.RGB{R: 15, G: 17, B: 21}
)

// Overlay text per theme
var (
	RgbTextLight = core.RGB{R: 27, G: 94, B: 32}
	RgbTextDark  = core.RGB{R: 187, G: 247, B: 208}
)
