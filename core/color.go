package core

import "image/color"

// RGB stores explicit 8-bit color channels, decoupled from any backend
type RGB struct {
	R, G, B uint8
}

// RGBA is an RGB color with straight (non-premultiplied) alpha in [0, 1]
type RGBA struct {
	R, G, B uint8
	A       float64
}

// Predefined colors
var (
	RGBBlack = RGB{0, 0, 0}
	RGBWhite = RGB{255, 255, 255}
)

// Blend performs alpha blending: result = src*alpha + dst*(1-alpha)
func (c RGB) Blend(src RGB, alpha float64) RGB {
	if alpha <= 0 {
		return c
	}
	if alpha >= 1 {
		return src
	}
	inv := 1.0 - alpha
	return RGB{
		R: uint8(float64(src.R)*alpha + float64(c.R)*inv),
		G: uint8(float64(src.G)*alpha + float64(c.G)*inv),
		B: uint8(float64(src.B)*alpha + float64(c.B)*inv),
	}
}

// Over composites c onto an opaque background
func (c RGBA) Over(bg RGB) RGB {
	return bg.Blend(c.RGB(), c.A)
}

// RGB drops the alpha channel
func (c RGBA) RGB() RGB {
	return RGB{R: c.R, G: c.G, B: c.B}
}

// WithAlpha returns a copy with alpha replaced
func (c RGBA) WithAlpha(a float64) RGBA {
	c.A = a
	return c
}

// NRGBA converts to the image/color straight-alpha representation
func (c RGBA) NRGBA() color.NRGBA {
	a := c.A
	if a < 0 {
		a = 0
	} else if a > 1 {
		a = 1
	}
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(a*255 + 0.5)}
}

// Palette is the set of colors particles draw from
type Palette []RGBA

// Contains reports whether c is a member of the palette
func (p Palette) Contains(c RGBA) bool {
	for _, pc := range p {
		if pc == c {
			return true
		}
	}
	return false
}
