package core

import "github.com/lixenwraith/antigravity/vmath"

// Particle is one simulated point of the field
// BaseX, BaseY, Size, RotationSpeed and Mass are fixed at creation
type Particle struct {
	// X, Y is the current position in logical pixels
	X, Y float64
	// BaseX, BaseY is the spring-return origin
	BaseX, BaseY float64
	// VX, VY is velocity in logical pixels per tick
	VX, VY float64

	Size  float64
	Color RGBA

	// Angle is the idle heading in radians, advanced by RotationSpeed each tick
	Angle         float64
	RotationSpeed float64

	// Mass in [0.5, 1.0) scales repulsion response only
	Mass float64
}

// Speed returns the velocity magnitude
func (p *Particle) Speed() float64 {
	return vmath.Magnitude(p.VX, p.VY)
}
