package input

import "github.com/lixenwraith/antigravity/core"

// Tracker maintains the single logical pointer fed by mouse and touch events
// Hosts call it from the frame goroutine, between frames
type Tracker struct {
	state core.PointerState
}

// NewTracker creates a tracker with no active pointer
func NewTracker() *Tracker {
	return &Tracker{}
}

// MouseMove sets the pointer position
func (t *Tracker) MouseMove(x, y float64) {
	t.state.X, t.state.Y = x, y
	t.state.Present = true
}

// MouseLeave clears the position; pressed state is untouched
func (t *Tracker) MouseLeave() {
	t.clearPosition()
}

// MouseDown enters attraction mode
func (t *Tracker) MouseDown() {
	t.state.Pressed = true
}

// MouseUp returns to repulsion mode
func (t *Tracker) MouseUp() {
	t.state.Pressed = false
}

// TouchStart sets position and pressed
func (t *Tracker) TouchStart(x, y float64) {
	t.MouseMove(x, y)
	t.state.Pressed = true
}

// TouchMove updates position only
func (t *Tracker) TouchMove(x, y float64) {
	t.MouseMove(x, y)
}

// TouchEnd clears both position and pressed
func (t *Tracker) TouchEnd() {
	t.clearPosition()
	t.state.Pressed = false
}

// State returns a snapshot of the pointer
func (t *Tracker) State() core.PointerState {
	return t.state
}

func (t *Tracker) clearPosition() {
	t.state.X, t.state.Y = 0, 0
	t.state.Present = false
}
