package typewriter

import (
	"github.com/lixenwraith/antigravity/render"
)

// Overlay margins in logical px
const (
	overlayMarginX = 24.0
	overlayMarginY = 48.0
)

// Overlay draws the cycler's text above the particle field
type Overlay struct {
	cycler  *Cycler
	prefix  string
	visible bool
}

// NewOverlay wraps a cycler; prefix is drawn before the typed text
func NewOverlay(c *Cycler, prefix string) *Overlay {
	return &Overlay{cycler: c, prefix: prefix, visible: true}
}

// Render implements render.OverlayRenderer
func (o *Overlay) Render(ctx render.Context, dst render.Target) {
	o.cycler.Update(ctx.Now)
	dst.DrawText(render.Text{
		X:     overlayMarginX,
		Y:     max(ctx.Height-overlayMarginY, 0),
		Value: o.prefix + o.cycler.Text() + "_",
		Color: ctx.Foreground,
	})
}

// IsVisible implements render.VisibilityToggle
func (o *Overlay) IsVisible() bool {
	return o.visible
}

// SetVisible shows or hides the overlay
func (o *Overlay) SetVisible(v bool) {
	o.visible = v
}
