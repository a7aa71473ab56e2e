package parameter

import "math"

// Population per device class
const (
	// ParticleCountMobile is the field size for viewports at or below MobileMaxWidth
	ParticleCountMobile = 80
	// ParticleCountDesktop is the field size for wider viewports
	ParticleCountDesktop = 200
	// MobileMaxWidth is the device class cutoff in logical px (inclusive)
	MobileMaxWidth = 768.0
)

// Creation ranges, all sampled uniformly
const (
	// ParticleVelocitySpread is the half-width of the initial velocity range per axis
	ParticleVelocitySpread = 0.25
	// ParticleSizeMin/Max bound glyph size [min, max)
	ParticleSizeMin = 3.0
	ParticleSizeMax = 7.0
	// ParticleRotationSpread is the half-width of the idle rotation speed range (rad/tick)
	ParticleRotationSpread = 0.004
	// ParticleMassMin/Max bound repulsion response [min, max)
	ParticleMassMin = 0.5
	ParticleMassMax = 1.0
	// ParticleAngleMax bounds the initial idle heading [0, max)
	ParticleAngleMax = 2 * math.Pi
)
