package render

import (
	"math"

	"github.com/lixenwraith/antigravity/core"
	"github.com/lixenwraith/antigravity/parameter"
	"github.com/lixenwraith/antigravity/parameter/visual"
	"github.com/lixenwraith/antigravity/vmath"
)

// Heading blends the idle angle with the velocity direction, weighting
// velocity by min(speed/2, 0.5); returns the final angle and speed
func Heading(p *core.Particle) (angle, speed float64) {
	velocityAngle := math.Atan2(p.VY, p.VX)
	speed = p.Speed()
	blend := min(speed/parameter.HeadingBlendDivisor, parameter.HeadingBlendMax)
	return vmath.Lerp(p.Angle, velocityAngle, blend), speed
}

// Glyph returns the equilateral triangle vertices of size centered at (x, y),
// rotated by angle; the apex points along -y before rotation
func Glyph(x, y, size, angle float64) [3]Point {
	local := [3]Point{
		{0, -size},
		{-size * parameter.TriangleHalfWidth, size * parameter.TriangleBaseOffset},
		{size * parameter.TriangleHalfWidth, size * parameter.TriangleBaseOffset},
	}
	var out [3]Point
	for i, v := range local {
		rx, ry := vmath.RotateVector(v.X, v.Y, angle)
		out[i] = Point{X: x + rx, Y: y + ry}
	}
	return out
}

// DrawParticle draws the glyph for the particle's post-update state
func DrawParticle(s Surface, p *core.Particle) {
	angle, speed := Heading(p)
	s.DrawTriangle(Triangle{
		Vertices: Glyph(p.X, p.Y, p.Size, angle),
		CenterX:  p.X,
		CenterY:  p.Y,
		Angle:    angle,
		Size:     p.Size,
		Color:    p.Color,
		Glow:     parameter.GlowBase + speed,
	})
}

// ConnectionOpacity returns the line alpha for a pair at distance,
// false when the pair is at or beyond threshold; threshold must be positive
func ConnectionOpacity(distance, threshold float64) (float64, bool) {
	if distance >= threshold {
		return 0, false
	}
	return (1 - distance/threshold) * parameter.ConnectionOpacity, true
}

// DrawConnections strokes a line between every unordered pair closer than
// threshold and returns the number of lines drawn
func DrawConnections(s Surface, particles []core.Particle, threshold float64) int {
	drawn := 0
	base := core.RGBA{R: visual.RgbConnection.R, G: visual.RgbConnection.G, B: visual.RgbConnection.B}
	for i := 0; i < len(particles); i++ {
		a := &particles[i]
		for j := i + 1; j < len(particles); j++ {
			b := &particles[j]
			opacity, ok := ConnectionOpacity(vmath.Distance(a.X, a.Y, b.X, b.Y), threshold)
			if !ok {
				continue
			}
			s.DrawLine(Line{
				X1: a.X, Y1: a.Y,
				X2: b.X, Y2: b.Y,
				Color: base.WithAlpha(opacity),
				Width: parameter.ConnectionLineWidth,
			})
			drawn++
		}
	}
	return drawn
}
