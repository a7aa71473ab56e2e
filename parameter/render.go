package parameter

import "time"

// Connection lines
const (
	// ConnectionDistance is the pair distance below which a line is drawn (logical px)
	ConnectionDistance = 100.0
	// ConnectionOpacity is the alpha of a line between coincident particles
	ConnectionOpacity = 0.15
	// ConnectionLineWidth is the stroke width of connection lines
	ConnectionLineWidth = 0.5
	// ConnectionsOnMobile enables the O(n²) pass on the mobile class
	ConnectionsOnMobile = false
)

// Particle glyph
const (
	// GlowBase is the blur radius at rest, speed is added on top
	GlowBase = 6.0
	// HeadingBlendDivisor converts speed into the velocity heading weight
	HeadingBlendDivisor = 2.0
	// HeadingBlendMax caps the velocity heading weight
	HeadingBlendMax = 0.5
	// TriangleHalfWidth is sin(60°), the x offset of the base vertices per unit size
	TriangleHalfWidth = 0.866
	// TriangleBaseOffset is the y offset of the base vertices per unit size
	TriangleBaseOffset = 0.5
)

// Hosts
const (
	// FrameInterval paces the terminal host, the window host follows vsync
	FrameInterval = 16 * time.Millisecond
	// CellWidthPx and CellHeightPx map one terminal cell to logical px
	CellWidthPx  = 8.0
	CellHeightPx = 16.0
)
