package terminal

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/antigravity/core"
)

// dotRune marks connection line cells
const dotRune = '·'

// cell is one composited terminal cell
type cell struct {
	r    rune
	fg   core.RGB
	bg   core.RGB
	bold bool
}

// CellBuffer is a compositor over a flat cell array, flushed to tcell once per frame
type CellBuffer struct {
	cells  []cell
	width  int
	height int
}

// NewCellBuffer creates a buffer with the specified dimensions
func NewCellBuffer(width, height int) *CellBuffer {
	b := &CellBuffer{}
	b.Resize(width, height)
	return b
}

// Resize adjusts buffer dimensions, reallocates only if capacity insufficient
func (b *CellBuffer) Resize(width, height int) {
	size := max(width, 0) * max(height, 0)
	if cap(b.cells) < size {
		b.cells = make([]cell, size)
	} else {
		b.cells = b.cells[:size]
	}
	b.width = width
	b.height = height
	b.Clear(core.RGBBlack)
}

// Size returns the dimensions in cells
func (b *CellBuffer) Size() (width, height int) {
	return b.width, b.height
}

// Clear resets all cells to empty on bg using exponential copy
func (b *CellBuffer) Clear(bg core.RGB) {
	if len(b.cells) == 0 {
		return
	}
	b.cells[0] = cell{fg: bg, bg: bg}
	for filled := 1; filled < len(b.cells); filled *= 2 {
		copy(b.cells[filled:], b.cells[:filled])
	}
}

func (b *CellBuffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// SetFg writes rune and foreground, preserving the background
func (b *CellBuffer) SetFg(x, y int, r rune, fg core.RGB, bold bool) {
	if !b.inBounds(x, y) {
		return
	}
	dst := &b.cells[y*b.width+x]
	dst.r = r
	dst.fg = fg
	dst.bold = bold
}

// BlendDot lays a line dot blended toward src by alpha; occupied cells are
// left alone and overlapping dots accumulate
func (b *CellBuffer) BlendDot(x, y int, src core.RGB, alpha float64) {
	if !b.inBounds(x, y) {
		return
	}
	dst := &b.cells[y*b.width+x]
	switch dst.r {
	case 0, ' ':
		dst.r = dotRune
		dst.fg = dst.bg.Blend(src, alpha)
	case dotRune:
		dst.fg = dst.fg.Blend(src, alpha)
	}
}

// Get returns the cell contents, ok is false out of bounds
func (b *CellBuffer) Get(x, y int) (r rune, fg, bg core.RGB, ok bool) {
	if !b.inBounds(x, y) {
		return 0, core.RGB{}, core.RGB{}, false
	}
	c := b.cells[y*b.width+x]
	return c.r, c.fg, c.bg, true
}

// Flush writes every cell to the screen; the caller calls Show
func (b *CellBuffer) Flush(screen tcell.Screen, colors *ColorMapper) {
	for y := 0; y < b.height; y++ {
		row := b.cells[y*b.width : (y+1)*b.width]
		for x, c := range row {
			r := c.r
			if r == 0 {
				r = ' '
			}
			style := tcell.StyleDefault.
				Foreground(colors.Color(c.fg)).
				Background(colors.Color(c.bg)).
				Bold(c.bold)
			screen.SetContent(x, y, r, nil, style)
		}
	}
}
