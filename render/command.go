package render

import "github.com/lixenwraith/antigravity/core"

// Point is a vertex in logical px
type Point struct {
	X, Y float64
}

// Triangle is a filled particle glyph
// Center/Angle/Size duplicate the vertex data for hosts that draw symbolically
type Triangle struct {
	Vertices [3]Point
	CenterX  float64
	CenterY  float64
	Angle    float64
	Size     float64
	Color    core.RGBA
	// Glow is the blur radius of the halo in logical px
	Glow float64
}

// Line is a stroked connection segment
type Line struct {
	X1, Y1 float64
	X2, Y2 float64
	Color  core.RGBA
	Width  float64
}

// Text is an overlay string anchored at its top-left corner
type Text struct {
	X, Y  float64
	Value string
	Color core.RGB
}

// CommandKind tags a recorded draw command
type CommandKind uint8

const (
	CmdClear CommandKind = iota
	CmdTriangle
	CmdLine
)

// Command is one recorded draw call
type Command struct {
	Kind     CommandKind
	Triangle Triangle
	Line     Line
}

// CommandBuffer records draw calls for replay onto a host surface
// It is the frame output of the driver and the stub surface in tests
type CommandBuffer struct {
	commands []Command
}

// NewCommandBuffer creates a buffer with room for a full desktop frame
func NewCommandBuffer() *CommandBuffer {
	return &CommandBuffer{commands: make([]Command, 0, 1024)}
}

// Clear records a clear and drops everything recorded before it
// A clear erases the surface, so earlier commands can never be visible
func (b *CommandBuffer) Clear() {
	b.commands = b.commands[:0]
	b.commands = append(b.commands, Command{Kind: CmdClear})
}

// DrawTriangle records a glyph
func (b *CommandBuffer) DrawTriangle(t Triangle) {
	b.commands = append(b.commands, Command{Kind: CmdTriangle, Triangle: t})
}

// DrawLine records a connection
func (b *CommandBuffer) DrawLine(l Line) {
	b.commands = append(b.commands, Command{Kind: CmdLine, Line: l})
}

// Reset empties the buffer without recording a clear
func (b *CommandBuffer) Reset() {
	b.commands = b.commands[:0]
}

// Commands returns the recorded commands in draw order
func (b *CommandBuffer) Commands() []Command {
	return b.commands
}

// Len returns the number of recorded commands
func (b *CommandBuffer) Len() int {
	return len(b.commands)
}

// Replay issues every recorded command to dst in order
func (b *CommandBuffer) Replay(dst Surface) {
	for i := range b.commands {
		cmd := &b.commands[i]
		switch cmd.Kind {
		case CmdClear:
			dst.Clear()
		case CmdTriangle:
			dst.DrawTriangle(cmd.Triangle)
		case CmdLine:
			dst.DrawLine(cmd.Line)
		}
	}
}

// Count returns how many commands of kind were recorded
func (b *CommandBuffer) Count(kind CommandKind) int {
	n := 0
	for i := range b.commands {
		if b.commands[i].Kind == kind {
			n++
		}
	}
	return n
}
