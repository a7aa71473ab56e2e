package terminal

import (
	"math"

	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/antigravity/core"
	"github.com/lixenwraith/antigravity/render"
)

// lineBoost scales connection alpha so faint lines stay visible on cells
const lineBoost = 3.0

// boldGlow marks glyphs moving fast enough to draw bold
const boldGlow = 7.0

// arrows are indexed by heading octant, clockwise from up
var arrows = [8]rune{'↑', '↗', '→', '↘', '↓', '↙', '←', '↖'}

// Surface rasterizes draw commands in logical px onto a CellBuffer
type Surface struct {
	buf          *CellBuffer
	cellW, cellH float64
	bg           core.RGB
}

// NewSurface creates a surface mapping one cell to cellW x cellH logical px
func NewSurface(buf *CellBuffer, cellW, cellH float64) *Surface {
	return &Surface{buf: buf, cellW: cellW, cellH: cellH}
}

// SetBackground sets the color Clear fills with
func (s *Surface) SetBackground(bg core.RGB) {
	s.bg = bg
}

// Cell converts logical px to a cell coordinate
func (s *Surface) Cell(x, y float64) (col, row int) {
	return int(math.Floor(x / s.cellW)), int(math.Floor(y / s.cellH))
}

// Clear implements render.Surface
func (s *Surface) Clear() {
	s.buf.Clear(s.bg)
}

// DrawTriangle implements render.Surface as a heading arrow in the center cell
func (s *Surface) DrawTriangle(t render.Triangle) {
	col, row := s.Cell(t.CenterX, t.CenterY)
	s.buf.SetFg(col, row, Arrow(t.Angle), t.Color.Over(s.bg), t.Glow >= boldGlow)
}

// DrawLine implements render.Surface with Bresenham dots, endpoints excluded
func (s *Surface) DrawLine(l render.Line) {
	x0, y0 := s.Cell(l.X1, l.Y1)
	x1, y1 := s.Cell(l.X2, l.Y2)
	alpha := min(l.Color.A*lineBoost, 1)
	src := l.Color.RGB()

	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	x, y := x0, y0
	for {
		if (x != x0 || y != y0) && (x != x1 || y != y1) {
			s.buf.BlendDot(x, y, src, alpha)
		}
		if x == x1 && y == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}
}

// DrawText implements render.Target
func (s *Surface) DrawText(t render.Text) {
	col, row := s.Cell(t.X, t.Y)
	for _, r := range t.Value {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		s.buf.SetFg(col, row, r, t.Color, false)
		col += w
	}
}

// Arrow returns the rune pointing along a glyph's apex for angle
// Angle 0 points up and increases clockwise on screen
func Arrow(angle float64) rune {
	octant := int(math.Round(angle/(math.Pi/4))) % 8
	if octant < 0 {
		octant += 8
	}
	return arrows[octant]
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
