// Package typewriter cycles a list of words by typing and deleting them one
// character at a time.
package typewriter

import (
	"time"

	"github.com/lixenwraith/antigravity/parameter"
)

// Timing controls the pace of the cycle
type Timing struct {
	Type   time.Duration
	Delete time.Duration
	// Wait holds a fully typed word before deleting
	Wait time.Duration
	// Pause follows a fully deleted word before typing the next
	Pause time.Duration
}

// DefaultTiming returns the tuned pacing
func DefaultTiming() Timing {
	return Timing{
		Type:   parameter.TypewriterTypeDelay,
		Delete: parameter.TypewriterDeleteDelay,
		Wait:   parameter.TypewriterWait,
		Pause:  parameter.TypewriterWordPause,
	}
}

// Cycler is a time-driven typewriter
// Not safe for concurrent use
type Cycler struct {
	list   [][]rune
	timing Timing

	wordIndex int
	visible   int
	deleting  bool

	next    time.Time
	started bool
}

// New creates a cycler over words; empty words list yields an empty cycler
func New(words []string, timing Timing) *Cycler {
	list := make([][]rune, len(words))
	for i, w := range words {
		list[i] = []rune(w)
	}
	return &Cycler{list: list, timing: timing}
}

// Update advances the cycle to now, applying every step that came due
func (c *Cycler) Update(now time.Time) {
	if len(c.list) == 0 {
		return
	}
	if !c.started {
		c.started = true
		c.next = now
	}
	for !now.Before(c.next) {
		c.next = c.next.Add(c.step())
	}
}

// step applies one character change and returns the delay until the next
func (c *Cycler) step() time.Duration {
	full := c.list[c.wordIndex%len(c.list)]

	if c.deleting {
		c.visible--
	} else {
		c.visible++
	}

	delay := c.timing.Type
	if c.deleting {
		delay = c.timing.Delete
	}

	switch {
	case !c.deleting && c.visible >= len(full):
		c.visible = len(full)
		c.deleting = true
		delay = c.timing.Wait
	case c.deleting && c.visible <= 0:
		c.visible = 0
		c.deleting = false
		c.wordIndex++
		delay = c.timing.Pause
	}

	// Guard against zero configured delays spinning Update forever
	if delay <= 0 {
		delay = time.Millisecond
	}
	return delay
}

// Text returns the currently visible prefix
func (c *Cycler) Text() string {
	if len(c.list) == 0 {
		return ""
	}
	full := c.list[c.wordIndex%len(c.list)]
	return string(full[:c.visible])
}

// Word returns the index of the word being typed
func (c *Cycler) Word() int {
	if len(c.list) == 0 {
		return 0
	}
	return c.wordIndex % len(c.list)
}

// Deleting reports whether the cycler is erasing
func (c *Cycler) Deleting() bool {
	return c.deleting
}
