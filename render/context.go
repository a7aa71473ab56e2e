package render

import (
	"time"

	"github.com/lixenwraith/antigravity/core"
)

// Context provides frame state for overlay renderers, passed by value
type Context struct {
	Now time.Time

	// Viewport in logical px
	Width, Height float64

	// Theme colors
	Background core.RGB
	Foreground core.RGB

	// Frame statistics from the driver
	FrameNumber uint64
	Particles   int
	Connections int
	Class       core.DeviceClass
	Pointer     core.PointerState
}
