package audio

import (
	"github.com/lixenwraith/antigravity/core"
)

// PointerCue turns pointer mode transitions into chirps
// Owned by the frame goroutine
type PointerCue struct {
	player Player
	last   core.PointerMode
}

// NewPointerCue creates a cue; a nil player makes Observe a no-op
func NewPointerCue(p Player) *PointerCue {
	return &PointerCue{player: p}
}

// Observe plays the press chirp when attraction begins and the release chirp when it ends
func (c *PointerCue) Observe(mode core.PointerMode) {
	prev := c.last
	c.last = mode
	if c.player == nil || prev == mode {
		return
	}
	switch {
	case mode == core.PointerAttract:
		c.player.PlayPress()
	case prev == core.PointerAttract:
		c.player.PlayRelease()
	}
}
