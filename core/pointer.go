package core

// PointerState is the single logical pointer seen by the simulation
// Present=false means no pointer influence regardless of Pressed
type PointerState struct {
	X, Y    float64
	Present bool
	// Pressed selects attraction; released selects repulsion
	Pressed bool
}

// PointerMode classifies the force a pointer state applies
type PointerMode uint8

const (
	PointerNone PointerMode = iota
	PointerRepel
	PointerAttract
)

// Mode returns the force mode for the current state
func (s PointerState) Mode() PointerMode {
	switch {
	case !s.Present:
		return PointerNone
	case s.Pressed:
		return PointerAttract
	default:
		return PointerRepel
	}
}

// String returns human-readable mode name
func (m PointerMode) String() string {
	switch m {
	case PointerRepel:
		return "repel"
	case PointerAttract:
		return "attract"
	default:
		return "none"
	}
}
