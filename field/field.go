// Package field owns the particle population: creation, device-class
// recounts and palette reassignment.
package field

import (
	"math/rand/v2"

	"github.com/lixenwraith/antigravity/core"
	"github.com/lixenwraith/antigravity/parameter"
)

// Counts holds the population per device class
type Counts struct {
	Mobile  int `toml:"mobile"`
	Desktop int `toml:"desktop"`
}

// DefaultCounts returns the tuned population sizes
func DefaultCounts() Counts {
	return Counts{
		Mobile:  parameter.ParticleCountMobile,
		Desktop: parameter.ParticleCountDesktop,
	}
}

// Target returns the population for a device class
func (c Counts) Target(class core.DeviceClass) int {
	if class == core.DeviceMobile {
		return c.Mobile
	}
	return c.Desktop
}

// TargetCount returns the default population for a device class
func TargetCount(class core.DeviceClass) int {
	return DefaultCounts().Target(class)
}

// Create builds count particles scattered uniformly over the viewport
// Each particle rests at its creation point; the caller owns the slice
func Create(count int, width, height float64, palette core.Palette, rng *rand.Rand) []core.Particle {
	particles := make([]core.Particle, count)
	for i := range particles {
		x := rng.Float64() * width
		y := rng.Float64() * height
		particles[i] = core.Particle{
			X:             x,
			Y:             y,
			BaseX:         x,
			BaseY:         y,
			VX:            (rng.Float64() - 0.5) * 2 * parameter.ParticleVelocitySpread,
			VY:            (rng.Float64() - 0.5) * 2 * parameter.ParticleVelocitySpread,
			Size:          parameter.ParticleSizeMin + rng.Float64()*(parameter.ParticleSizeMax-parameter.ParticleSizeMin),
			Color:         pick(palette, rng),
			Angle:         rng.Float64() * parameter.ParticleAngleMax,
			RotationSpeed: (rng.Float64() - 0.5) * 2 * parameter.ParticleRotationSpread,
			Mass:          parameter.ParticleMassMin + rng.Float64()*(parameter.ParticleMassMax-parameter.ParticleMassMin),
		}
	}
	return particles
}

// pick returns a uniformly chosen palette entry, zero color for an empty palette
func pick(palette core.Palette, rng *rand.Rand) core.RGBA {
	if len(palette) == 0 {
		return core.RGBA{}
	}
	return palette[rng.IntN(len(palette))]
}

// Field is the single source of truth for the particle set
// Not safe for concurrent use; owned by the frame goroutine
type Field struct {
	particles []core.Particle

	width, height float64
	class         core.DeviceClass

	palette  core.Palette
	counts   Counts
	classify core.DeviceClassifier
	rng      *rand.Rand

	// generation increments on every wholesale recreation
	generation uint64
}

// Options configures a Field; zero values fall back to defaults
type Options struct {
	Counts     Counts
	Classifier core.DeviceClassifier
	Rand       *rand.Rand
}

// New creates a field sized for the viewport's device class
func New(width, height float64, palette core.Palette, opts Options) *Field {
	if opts.Counts == (Counts{}) {
		opts.Counts = DefaultCounts()
	}
	if opts.Classifier == nil {
		opts.Classifier = core.ClassifyWidth
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	f := &Field{
		width:    width,
		height:   height,
		class:    opts.Classifier(width),
		palette:  palette,
		counts:   opts.Counts,
		classify: opts.Classifier,
		rng:      opts.Rand,
	}
	f.recreate()
	return f
}

// Resize stores new viewport bounds and recreates the whole set only when
// the device class changes; returns true on recreation
func (f *Field) Resize(width, height float64) bool {
	f.width, f.height = width, height

	class := f.classify(width)
	if class == f.class {
		return false
	}
	f.class = class
	f.recreate()
	return true
}

// UpdateColors reassigns every particle a uniformly chosen color from palette
// Only Color changes; an empty palette is ignored
func (f *Field) UpdateColors(palette core.Palette) {
	if len(palette) == 0 {
		return
	}
	f.palette = palette
	for i := range f.particles {
		f.particles[i].Color = pick(palette, f.rng)
	}
}

func (f *Field) recreate() {
	f.particles = Create(f.counts.Target(f.class), f.width, f.height, f.palette, f.rng)
	f.generation++
}

// Particles returns the live slice; valid until the next recreation
func (f *Field) Particles() []core.Particle {
	return f.particles
}

// Len returns the particle count
func (f *Field) Len() int {
	return len(f.particles)
}

// Class returns the current device class
func (f *Field) Class() core.DeviceClass {
	return f.class
}

// Bounds returns the viewport used for future creations
func (f *Field) Bounds() (width, height float64) {
	return f.width, f.height
}

// Palette returns the active palette
func (f *Field) Palette() core.Palette {
	return f.palette
}

// Generation identifies the current particle set
func (f *Field) Generation() uint64 {
	return f.generation
}
