package field

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/antigravity/core"
	"github.com/lixenwraith/antigravity/parameter/visual"
)

func seeded() *rand.Rand {
	return rand.New(rand.NewPCG(42, 1337))
}

func TestCreate_Ranges(t *testing.T) {
	const w, h = 1024.0, 768.0
	particles := Create(500, w, h, visual.PaletteLight, seeded())
	require.Len(t, particles, 500)

	for i, p := range particles {
		assert.GreaterOrEqual(t, p.X, 0.0, "particle %d", i)
		assert.Less(t, p.X, w)
		assert.GreaterOrEqual(t, p.Y, 0.0)
		assert.Less(t, p.Y, h)
		assert.Equal(t, p.X, p.BaseX)
		assert.Equal(t, p.Y, p.BaseY)

		assert.GreaterOrEqual(t, p.VX, -0.25)
		assert.LessOrEqual(t, p.VX, 0.25)
		assert.GreaterOrEqual(t, p.VY, -0.25)
		assert.LessOrEqual(t, p.VY, 0.25)

		assert.GreaterOrEqual(t, p.Size, 3.0)
		assert.Less(t, p.Size, 7.0)
		assert.GreaterOrEqual(t, p.RotationSpeed, -0.004)
		assert.Less(t, p.RotationSpeed, 0.004)
		assert.GreaterOrEqual(t, p.Mass, 0.5)
		assert.Less(t, p.Mass, 1.0)

		assert.True(t, visual.PaletteLight.Contains(p.Color))
	}
}

func TestCreate_Empty(t *testing.T) {
	assert.Empty(t, Create(0, 100, 100, visual.PaletteDark, seeded()))
}

func TestTargetCount(t *testing.T) {
	assert.Equal(t, 80, TargetCount(core.DeviceMobile))
	assert.Equal(t, 200, TargetCount(core.DeviceDesktop))
}

func TestNew_CountByClass(t *testing.T) {
	tests := []struct {
		name  string
		width float64
		want  int
		class core.DeviceClass
	}{
		{"narrow", 500, 80, core.DeviceMobile},
		{"threshold inclusive", 768, 80, core.DeviceMobile},
		{"just above threshold", 769, 200, core.DeviceDesktop},
		{"wide", 1920, 200, core.DeviceDesktop},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := New(tt.width, 600, visual.PaletteLight, Options{Rand: seeded()})
			assert.Equal(t, tt.want, f.Len())
			assert.Equal(t, tt.class, f.Class())
		})
	}
}

func TestResize_SameClassKeepsParticles(t *testing.T) {
	f := New(1024, 768, visual.PaletteLight, Options{Rand: seeded()})
	before := append([]core.Particle(nil), f.Particles()...)
	gen := f.Generation()
	first := &f.Particles()[0]

	for _, size := range [][2]float64{{1280, 800}, {1920, 1080}, {800, 600}, {769, 300}} {
		recreated := f.Resize(size[0], size[1])
		assert.False(t, recreated, "resize to %v", size)
	}

	assert.Equal(t, gen, f.Generation())
	assert.Equal(t, before, f.Particles())
	assert.Same(t, first, &f.Particles()[0], "backing array retained")

	w, h := f.Bounds()
	assert.Equal(t, 769.0, w)
	assert.Equal(t, 300.0, h)
}

func TestResize_ClassChangeRecreates(t *testing.T) {
	f := New(1024, 768, visual.PaletteLight, Options{Rand: seeded()})
	require.Equal(t, 200, f.Len())
	gen := f.Generation()

	require.True(t, f.Resize(500, 900))
	assert.Equal(t, 80, f.Len())
	assert.Equal(t, gen+1, f.Generation())
	for _, p := range f.Particles() {
		assert.Less(t, p.X, 500.0, "fresh particles use new bounds")
		assert.Less(t, p.Y, 900.0)
		assert.Equal(t, p.X, p.BaseX)
	}

	require.True(t, f.Resize(1024, 768))
	assert.Equal(t, 200, f.Len())
	assert.Equal(t, gen+2, f.Generation())
}

func TestResize_InjectedClassifier(t *testing.T) {
	alwaysMobile := func(float64) core.DeviceClass { return core.DeviceMobile }
	f := New(4000, 2000, visual.PaletteLight, Options{Rand: seeded(), Classifier: alwaysMobile})
	assert.Equal(t, 80, f.Len())
	assert.False(t, f.Resize(100, 100))
}

func TestResize_CustomCounts(t *testing.T) {
	f := New(1024, 768, visual.PaletteLight, Options{Rand: seeded(), Counts: Counts{Mobile: 3, Desktop: 7}})
	assert.Equal(t, 7, f.Len())
	f.Resize(320, 480)
	assert.Equal(t, 3, f.Len())
}

func TestUpdateColors_OnlyColorChanges(t *testing.T) {
	f := New(1024, 768, visual.PaletteLight, Options{Rand: seeded()})
	before := append([]core.Particle(nil), f.Particles()...)

	f.UpdateColors(visual.PaletteDark)

	for i, p := range f.Particles() {
		assert.True(t, visual.PaletteDark.Contains(p.Color), "particle %d", i)

		want := before[i]
		want.Color = p.Color
		assert.Equal(t, want, p)
	}
	assert.Equal(t, visual.PaletteDark, f.Palette())
}

func TestUpdateColors_EmptyPaletteIgnored(t *testing.T) {
	f := New(1024, 768, visual.PaletteLight, Options{Rand: seeded()})
	before := append([]core.Particle(nil), f.Particles()...)

	f.UpdateColors(nil)
	assert.Equal(t, before, f.Particles())
}

func TestRecreateUsesActivePalette(t *testing.T) {
	f := New(1024, 768, visual.PaletteLight, Options{Rand: seeded()})
	f.UpdateColors(visual.PaletteDark)
	f.Resize(400, 400)

	for _, p := range f.Particles() {
		assert.True(t, visual.PaletteDark.Contains(p.Color))
	}
}
