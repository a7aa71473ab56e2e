package render

// RenderPriority determines overlay order. Lower values render first
type RenderPriority int

const (
	PriorityBackground RenderPriority = iota
	PriorityUI
	PriorityOverlay
	PriorityDebug
)
