package physics

import (
	"errors"
	"fmt"

	"go.uber.org/multierr"

	"github.com/lixenwraith/antigravity/parameter"
)

// ErrInvalidConstants is wrapped by every Validate failure
var ErrInvalidConstants = errors.New("invalid physics constants")

// Constants is the global tuning set, loaded once and never mutated
type Constants struct {
	Friction           float64 `toml:"friction"`
	RepulsionForce     float64 `toml:"repulsion_force"`
	AttractionForce    float64 `toml:"attraction_force"`
	ReturnSpeed        float64 `toml:"return_speed"`
	MaxSpeed           float64 `toml:"max_speed"`
	InfluenceRadius    float64 `toml:"influence_radius"`
	ConnectionDistance float64 `toml:"connection_distance"`
}

// DefaultConstants returns the tuned values
func DefaultConstants() Constants {
	return Constants{
		Friction:           parameter.Friction,
		RepulsionForce:     parameter.RepulsionForce,
		AttractionForce:    parameter.AttractionForce,
		ReturnSpeed:        parameter.ReturnSpeed,
		MaxSpeed:           parameter.MaxSpeed,
		InfluenceRadius:    parameter.InfluenceRadius,
		ConnectionDistance: parameter.ConnectionDistance,
	}
}

// Validate reports every precondition violation at once
// Radius and connection distance are divisors and must be positive
func (c Constants) Validate() error {
	var err error
	if c.Friction <= 0 || c.Friction > 1 {
		err = multierr.Append(err, fmt.Errorf("%w: friction %v not in (0, 1]", ErrInvalidConstants, c.Friction))
	}
	if c.MaxSpeed <= 0 {
		err = multierr.Append(err, fmt.Errorf("%w: max_speed %v must be positive", ErrInvalidConstants, c.MaxSpeed))
	}
	if c.InfluenceRadius <= 0 {
		err = multierr.Append(err, fmt.Errorf("%w: influence_radius %v must be positive", ErrInvalidConstants, c.InfluenceRadius))
	}
	if c.ConnectionDistance <= 0 {
		err = multierr.Append(err, fmt.Errorf("%w: connection_distance %v must be positive", ErrInvalidConstants, c.ConnectionDistance))
	}
	if c.RepulsionForce < 0 {
		err = multierr.Append(err, fmt.Errorf("%w: repulsion_force %v must not be negative", ErrInvalidConstants, c.RepulsionForce))
	}
	if c.AttractionForce < 0 {
		err = multierr.Append(err, fmt.Errorf("%w: attraction_force %v must not be negative", ErrInvalidConstants, c.AttractionForce))
	}
	if c.ReturnSpeed < 0 {
		err = multierr.Append(err, fmt.Errorf("%w: return_speed %v must not be negative", ErrInvalidConstants, c.ReturnSpeed))
	}
	return err
}
