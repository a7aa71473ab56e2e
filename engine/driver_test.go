package engine

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/antigravity/core"
	"github.com/lixenwraith/antigravity/parameter/visual"
	"github.com/lixenwraith/antigravity/physics"
	"github.com/lixenwraith/antigravity/render"
	"github.com/lixenwraith/antigravity/status"
)

func newTestDriver(t *testing.T, width float64, opts Options) *Driver {
	t.Helper()
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewPCG(3, 5))
	}
	if opts.Palette == nil {
		opts.Palette = visual.PaletteLight
	}
	d, err := NewDriver(width, 768, opts)
	require.NoError(t, err)
	return d
}

func TestDriver_IdleUntilStarted(t *testing.T) {
	d := newTestDriver(t, 1024, Options{})
	assert.Equal(t, StateIdle, d.State())

	buf := render.NewCommandBuffer()
	assert.False(t, d.Frame(buf))
	assert.Zero(t, buf.Len())

	d.Start()
	d.Start()
	assert.Equal(t, StateRunning, d.State())
	assert.True(t, d.Frame(buf))
}

func TestDriver_FrameSequence(t *testing.T) {
	d := newTestDriver(t, 1024, Options{})
	d.Start()

	buf := render.NewCommandBuffer()
	require.True(t, d.Frame(buf))

	cmds := buf.Commands()
	require.NotEmpty(t, cmds)
	assert.Equal(t, render.CmdClear, cmds[0].Kind, "clear first")

	// Every line precedes every triangle
	seenTriangle := false
	for _, c := range cmds[1:] {
		switch c.Kind {
		case render.CmdTriangle:
			seenTriangle = true
		case render.CmdLine:
			assert.False(t, seenTriangle, "connections drawn before particles")
		case render.CmdClear:
			t.Fatal("single clear per frame")
		}
	}

	stats := d.Stats()
	assert.Equal(t, 200, buf.Count(render.CmdTriangle))
	assert.Equal(t, stats.Connections, buf.Count(render.CmdLine))
	assert.Greater(t, stats.Connections, 0, "200 particles on 1024x768 always have close pairs")
	assert.Equal(t, uint64(1), stats.FrameNumber)
}

func TestDriver_TrianglesDrawPostUpdateState(t *testing.T) {
	d := newTestDriver(t, 1024, Options{})
	d.Start()

	buf := render.NewCommandBuffer()
	d.Frame(buf)

	particles := d.Field().Particles()
	i := 0
	for _, c := range buf.Commands() {
		if c.Kind != render.CmdTriangle {
			continue
		}
		assert.Equal(t, particles[i].X, c.Triangle.CenterX)
		assert.Equal(t, particles[i].Y, c.Triangle.CenterY)
		i++
	}
}

func TestDriver_MobileSkipsConnections(t *testing.T) {
	d := newTestDriver(t, 500, Options{})
	d.Start()

	buf := render.NewCommandBuffer()
	d.Frame(buf)

	assert.False(t, d.ConnectionsEnabled())
	assert.Equal(t, 80, buf.Count(render.CmdTriangle))
	assert.Zero(t, buf.Count(render.CmdLine))
}

func TestDriver_MobileConnectionsOptIn(t *testing.T) {
	d := newTestDriver(t, 500, Options{ConnectionsOnMobile: true})
	assert.True(t, d.ConnectionsEnabled())
}

func TestDriver_InjectedClassifier(t *testing.T) {
	mobileBelow2000 := core.ThresholdClassifier(2000)
	d := newTestDriver(t, 1024, Options{Classifier: mobileBelow2000})
	assert.Equal(t, core.DeviceMobile, d.Field().Class())
	assert.Equal(t, 80, d.Field().Len())
}

func TestDriver_ResizeIdempotentWithinClass(t *testing.T) {
	d := newTestDriver(t, 1024, Options{})
	d.Start()
	gen := d.Field().Generation()
	first := &d.Field().Particles()[0]

	for _, w := range []float64{1100, 900, 1920, 769} {
		d.Resize(w, 700)
		d.Frame(render.NewCommandBuffer())
	}

	assert.Equal(t, 200, d.Field().Len())
	assert.Equal(t, gen, d.Field().Generation())
	assert.Same(t, first, &d.Field().Particles()[0])
}

func TestDriver_ResizeCrossingThreshold(t *testing.T) {
	metrics := status.NewRegistry()
	d := newTestDriver(t, 1024, Options{Metrics: metrics})
	d.Start()
	before := append([]core.Particle(nil), d.Field().Particles()...)

	d.Resize(500, 768)
	assert.Equal(t, 80, d.Field().Len())
	assert.NotEqual(t, before[:80], d.Field().Particles(), "fresh particles")

	d.Resize(1024, 768)
	assert.Equal(t, 200, d.Field().Len())
	assert.Equal(t, 2.0, testutil.ToFloat64(metrics.Recounts))
}

func TestDriver_UpdateColors(t *testing.T) {
	d := newTestDriver(t, 1024, Options{})
	before := append([]core.Particle(nil), d.Field().Particles()...)

	d.UpdateColors(visual.PaletteDark)

	for i, p := range d.Field().Particles() {
		assert.True(t, visual.PaletteDark.Contains(p.Color))
		assert.Equal(t, before[i].X, p.X)
		assert.Equal(t, before[i].VX, p.VX)
		assert.Equal(t, before[i].Size, p.Size)
		assert.Equal(t, before[i].Mass, p.Mass)
	}
}

func TestDriver_PostRunsAtNextFrame(t *testing.T) {
	d := newTestDriver(t, 1024, Options{})
	d.Start()

	done := make(chan struct{})
	go func() {
		d.Post(func(d *Driver) { d.UpdateColors(visual.PaletteDark) })
		close(done)
	}()
	<-done

	// Not applied until the frame goroutine drains the inbox
	assert.True(t, visual.PaletteLight.Contains(d.Field().Particles()[0].Color))

	d.Frame(render.NewCommandBuffer())
	for _, p := range d.Field().Particles() {
		assert.True(t, visual.PaletteDark.Contains(p.Color))
	}
}

func TestDriver_PostFullInbox(t *testing.T) {
	d := newTestDriver(t, 1024, Options{})
	for i := 0; i < inboxSize; i++ {
		require.True(t, d.Post(func(*Driver) {}))
	}
	assert.False(t, d.Post(func(*Driver) {}))
}

func TestDriver_PointerReachesPhysics(t *testing.T) {
	d := newTestDriver(t, 1024, Options{})
	d.Start()

	p := d.Field().Particles()[0]
	d.Input().MouseMove(p.X+10, p.Y)
	d.Frame(render.NewCommandBuffer())

	assert.Equal(t, core.PointerRepel, d.Stats().Pointer.Mode())
	moved := d.Field().Particles()[0]
	assert.Less(t, moved.X, p.X, "repelled toward -x")
}

func TestDriver_InvalidConstants(t *testing.T) {
	c := physics.DefaultConstants()
	c.ConnectionDistance = 0
	_, err := NewDriver(1024, 768, Options{Constants: c})
	assert.ErrorIs(t, err, physics.ErrInvalidConstants)
}

func TestDriver_FrameMetrics(t *testing.T) {
	clock := NewMockTimeProvider(time.Unix(0, 0))
	metrics := status.NewRegistry()
	d := newTestDriver(t, 1024, Options{Metrics: metrics, Clock: clock})
	d.Start()

	for i := 0; i < 3; i++ {
		d.Frame(render.NewCommandBuffer())
	}

	assert.Equal(t, 3.0, testutil.ToFloat64(metrics.Frames))
	assert.Equal(t, 200.0, testutil.ToFloat64(metrics.Particles))
	assert.Equal(t, float64(d.Stats().Connections), testutil.ToFloat64(metrics.Connections))
}
