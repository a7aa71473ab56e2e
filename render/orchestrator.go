package render

type rendererEntry struct {
	renderer OverlayRenderer
	priority RenderPriority
	index    int // registration order for stable sort
}

// Orchestrator composes a frame: the simulation's recorded commands first,
// then overlays in priority order
type Orchestrator struct {
	renderers []rendererEntry
	regCount  int
}

// NewOrchestrator creates an orchestrator with no overlays
func NewOrchestrator() *Orchestrator {
	return &Orchestrator{
		renderers: make([]rendererEntry, 0, 4),
	}
}

// Register adds an overlay at the specified priority. Maintains sorted order via insertion sort
func (o *Orchestrator) Register(r OverlayRenderer, priority RenderPriority) {
	entry := rendererEntry{
		renderer: r,
		priority: priority,
		index:    o.regCount,
	}
	o.regCount++

	pos := len(o.renderers)
	for i, e := range o.renderers {
		if priority < e.priority || (priority == e.priority && entry.index < e.index) {
			pos = i
			break
		}
	}

	o.renderers = append(o.renderers, rendererEntry{})
	copy(o.renderers[pos+1:], o.renderers[pos:])
	o.renderers[pos] = entry
}

// RenderFrame replays the frame's commands onto dst, then draws overlays
// A nil frame (reduced motion) clears dst and draws overlays only
func (o *Orchestrator) RenderFrame(ctx Context, frame *CommandBuffer, dst Target) {
	if frame != nil {
		frame.Replay(dst)
	} else {
		dst.Clear()
	}

	for _, entry := range o.renderers {
		if vt, ok := entry.renderer.(VisibilityToggle); ok && !vt.IsVisible() {
			continue
		}
		entry.renderer.Render(ctx, dst)
	}
}
