package render

// Surface is the drawing capability the simulation renders through
type Surface interface {
	Clear()
	DrawTriangle(t Triangle)
	DrawLine(l Line)
}

// Target is a host surface that can also draw overlay text
type Target interface {
	Surface
	DrawText(t Text)
}

// OverlayRenderer is implemented by collaborators drawing above the particle field
type OverlayRenderer interface {
	Render(ctx Context, dst Target)
}

// VisibilityToggle is optionally implemented for runtime enable/disable
type VisibilityToggle interface {
	IsVisible() bool
}
