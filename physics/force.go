package physics

import (
	"math"

	"github.com/lixenwraith/antigravity/core"
	"github.com/lixenwraith/antigravity/vmath"
)

// Update advances one particle by one tick
// Step order is fixed; reordering changes trajectories
func Update(p *core.Particle, ptr core.PointerState, c Constants) {
	AdvanceAngle(p)
	ApplyPointerForce(p, ptr, c)
	ApplySpring(p, c.ReturnSpeed)
	ApplyFriction(p, c.Friction)
	ClampSpeed(p, c.MaxSpeed)
	Integrate(p)
}

// AdvanceAngle rotates the idle heading
func AdvanceAngle(p *core.Particle) {
	p.Angle += p.RotationSpeed
}

// ApplyPointerForce pushes (released) or pulls (pressed) particles inside the influence radius
// Returns true if a force was applied
func ApplyPointerForce(p *core.Particle, ptr core.PointerState, c Constants) bool {
	if !ptr.Present {
		return false
	}

	dx := p.X - ptr.X
	dy := p.Y - ptr.Y
	d := vmath.Magnitude(dx, dy)
	if d >= c.InfluenceRadius {
		return false
	}

	force := (c.InfluenceRadius - d) / c.InfluenceRadius
	// atan2(0, 0) = 0: a particle under the pointer is pushed along +x
	sin, cos := math.Sincos(math.Atan2(dy, dx))

	if ptr.Pressed {
		p.VX -= cos * force * c.AttractionForce
		p.VY -= sin * force * c.AttractionForce
	} else {
		r := force * c.RepulsionForce * p.Mass
		p.VX += cos * r
		p.VY += sin * r
	}
	return true
}

// ApplySpring accelerates toward the base position proportional to displacement
func ApplySpring(p *core.Particle, rate float64) {
	p.VX += (p.BaseX - p.X) * rate
	p.VY += (p.BaseY - p.Y) * rate
}

// ApplyFriction damps velocity
func ApplyFriction(p *core.Particle, friction float64) {
	p.VX *= friction
	p.VY *= friction
}

// ClampSpeed rescales velocity to maxSpeed when exceeded, preserving direction
func ClampSpeed(p *core.Particle, maxSpeed float64) {
	p.VX, p.VY = vmath.ClampMagnitude(p.VX, p.VY, maxSpeed)
}

// Integrate moves the particle by its velocity
func Integrate(p *core.Particle) {
	p.X += p.VX
	p.Y += p.VY
}
