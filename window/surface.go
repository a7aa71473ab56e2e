package window

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/lixenwraith/antigravity/core"
	"github.com/lixenwraith/antigravity/render"
)

// Glow halo layering
const (
	glowLayers = 3
	glowAlpha  = 0.06
)

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// Surface draws render commands onto an ebiten image for one Draw call
type Surface struct {
	dst *ebiten.Image
	bg  core.RGB

	path     vector.Path
	vertices []ebiten.Vertex
	indices  []uint16
}

// Begin targets dst with the clear color bg
func (s *Surface) Begin(dst *ebiten.Image, bg core.RGB) {
	s.dst = dst
	s.bg = bg
}

// Clear implements render.Surface
func (s *Surface) Clear() {
	s.dst.Fill(color.RGBA{R: s.bg.R, G: s.bg.G, B: s.bg.B, A: 0xff})
}

// DrawTriangle implements render.Surface: glow halos then the filled glyph
func (s *Surface) DrawTriangle(t render.Triangle) {
	halo := t.Color.WithAlpha(t.Color.A * glowAlpha).NRGBA()
	for i := glowLayers; i >= 1; i-- {
		r := t.Size + t.Glow*float64(i)/glowLayers
		vector.DrawFilledCircle(s.dst, float32(t.CenterX), float32(t.CenterY), float32(r), halo, true)
	}

	s.vertices, s.indices = GlyphVertices(&s.path, t, s.vertices[:0], s.indices[:0])
	s.dst.DrawTriangles(s.vertices, s.indices, whiteSubImage, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

// DrawLine implements render.Surface
func (s *Surface) DrawLine(l render.Line) {
	vector.StrokeLine(s.dst,
		float32(l.X1), float32(l.Y1), float32(l.X2), float32(l.Y2),
		float32(l.Width), l.Color.NRGBA(), true)
}

// DrawText implements render.Target; Y is the top of the line
func (s *Surface) DrawText(t render.Text) {
	face := basicfont.Face7x13
	clr := color.RGBA{R: t.Color.R, G: t.Color.G, B: t.Color.B, A: 0xff}
	text.Draw(s.dst, t.Value, face, int(t.X), int(t.Y)+face.Ascent, clr)
}

// GlyphVertices fills path with the triangle and appends its colored
// vertices and indices sampling the white subimage
func GlyphVertices(path *vector.Path, t render.Triangle, vs []ebiten.Vertex, is []uint16) ([]ebiten.Vertex, []uint16) {
	*path = vector.Path{}
	v := t.Vertices
	path.MoveTo(float32(v[0].X), float32(v[0].Y))
	path.LineTo(float32(v[1].X), float32(v[1].Y))
	path.LineTo(float32(v[2].X), float32(v[2].Y))
	path.Close()

	start := len(vs)
	vs, is = path.AppendVerticesAndIndicesForFilling(vs, is)

	r, g, b, a := straight(t.Color)
	for i := start; i < len(vs); i++ {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = r
		vs[i].ColorG = g
		vs[i].ColorB = b
		vs[i].ColorA = a
	}
	return vs, is
}

// straight converts to ebiten's straight-alpha vertex color scale
func straight(c core.RGBA) (r, g, b, a float32) {
	n := c.NRGBA()
	return float32(n.R) / 0xff, float32(n.G) / 0xff, float32(n.B) / 0xff, float32(n.A) / 0xff
}
