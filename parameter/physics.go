package parameter

// Force model tuning, applied once per tick per particle
const (
	// Friction multiplies velocity every tick
	Friction = 0.985
	// RepulsionForce scales the push away from a released pointer, further scaled by particle mass
	RepulsionForce = 4.0
	// AttractionForce scales the pull toward a pressed pointer
	AttractionForce = 0.3
	// ReturnSpeed is the spring rate pulling particles back to their base position
	ReturnSpeed = 0.008
	// MaxSpeed caps velocity magnitude (logical px per tick)
	MaxSpeed = 3.0
	// InfluenceRadius is the pointer reach in logical px
	InfluenceRadius = 150.0
)
