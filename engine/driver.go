package engine

import (
	"math/rand/v2"

	"go.uber.org/zap"

	"github.com/lixenwraith/antigravity/core"
	"github.com/lixenwraith/antigravity/field"
	"github.com/lixenwraith/antigravity/input"
	"github.com/lixenwraith/antigravity/physics"
	"github.com/lixenwraith/antigravity/render"
	"github.com/lixenwraith/antigravity/status"
)

// inboxSize bounds work queued from background goroutines between frames
const inboxSize = 64

// State is the driver lifecycle; there is no stop transition
type State uint8

const (
	StateIdle State = iota
	StateRunning
)

// String returns human-readable state name
func (s State) String() string {
	if s == StateRunning {
		return "running"
	}
	return "idle"
}

// Options configures a Driver; zero values fall back to defaults
type Options struct {
	Constants physics.Constants
	Counts    field.Counts
	Palette   core.Palette
	// Classifier maps viewport width to device class, injected for tests
	Classifier core.DeviceClassifier
	// ConnectionsOnMobile enables the pairwise pass on the mobile class
	ConnectionsOnMobile bool

	Rand    *rand.Rand
	Clock   Clock
	Logger  *zap.Logger
	Metrics *status.Registry
}

// Stats summarizes the most recent frame
type Stats struct {
	FrameNumber uint64
	Particles   int
	Connections int
	Class       core.DeviceClass
	Pointer     core.PointerState
	Generation  uint64
}

// Driver sequences the per-frame pipeline: clear, connections, then update
// and draw each particle. The host calls Frame from its frame primitive;
// all methods except Post must be called from that goroutine
type Driver struct {
	state State

	field     *field.Field
	tracker   *input.Tracker
	constants physics.Constants

	connectionsOnMobile bool

	inbox chan func(*Driver)

	clock   Clock
	logger  *zap.Logger
	metrics *status.Registry

	frameNumber uint64
	connections int
}

// NewDriver validates constants and creates the field for the initial viewport
// The driver starts idle; call Start before the first frame
func NewDriver(width, height float64, opts Options) (*Driver, error) {
	if opts.Constants == (physics.Constants{}) {
		opts.Constants = physics.DefaultConstants()
	}
	if err := opts.Constants.Validate(); err != nil {
		return nil, err
	}
	if opts.Clock == nil {
		opts.Clock = NewTimeProvider()
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	d := &Driver{
		field: field.New(width, height, opts.Palette, field.Options{
			Counts:     opts.Counts,
			Classifier: opts.Classifier,
			Rand:       opts.Rand,
		}),
		tracker:             input.NewTracker(),
		constants:           opts.Constants,
		connectionsOnMobile: opts.ConnectionsOnMobile,
		inbox:               make(chan func(*Driver), inboxSize),
		clock:               opts.Clock,
		logger:              opts.Logger.Named("driver"),
		metrics:             opts.Metrics,
	}

	d.logger.Info("field created",
		zap.Float64("width", width),
		zap.Float64("height", height),
		zap.Stringer("class", d.field.Class()),
		zap.Int("particles", d.field.Len()),
	)
	if d.metrics != nil {
		d.metrics.Particles.Set(float64(d.field.Len()))
	}
	return d, nil
}

// Start moves the driver to running, idempotent
func (d *Driver) Start() {
	if d.state == StateRunning {
		return
	}
	d.state = StateRunning
	d.logger.Debug("driver running")
}

// State returns the lifecycle state
func (d *Driver) State() State {
	return d.state
}

// Frame runs one iteration onto s and returns false while idle
// Connections use pre-update positions; glyphs use post-update positions
func (d *Driver) Frame(s render.Surface) bool {
	if d.state != StateRunning {
		return false
	}
	start := d.clock.Now()

	d.drainInbox()

	s.Clear()

	particles := d.field.Particles()
	connections := 0
	if d.ConnectionsEnabled() {
		connections = render.DrawConnections(s, particles, d.constants.ConnectionDistance)
	}

	ptr := d.tracker.State()
	for i := range particles {
		p := &particles[i]
		physics.Update(p, ptr, d.constants)
		render.DrawParticle(s, p)
	}

	d.frameNumber++
	d.connections = connections

	if d.metrics != nil {
		d.metrics.ObserveFrame(d.clock.Now().Sub(start).Seconds(), len(particles), connections, ptr.Mode())
	}
	return true
}

// ConnectionsEnabled reports whether the pairwise pass runs for the current class
func (d *Driver) ConnectionsEnabled() bool {
	return d.field.Class() == core.DeviceDesktop || d.connectionsOnMobile
}

// Resize updates viewport bounds and recreates the field on device class change
func (d *Driver) Resize(width, height float64) {
	old := d.field.Class()
	if !d.field.Resize(width, height) {
		return
	}

	d.logger.Info("device class changed, field recreated",
		zap.Stringer("from", old),
		zap.Stringer("to", d.field.Class()),
		zap.Int("particles", d.field.Len()),
		zap.Uint64("generation", d.field.Generation()),
	)
	if d.metrics != nil {
		d.metrics.Recounts.Inc()
		d.metrics.Particles.Set(float64(d.field.Len()))
	}
}

// UpdateColors reassigns particle colors from palette
// This is the handle theme collaborators hold instead of a global
func (d *Driver) UpdateColors(palette core.Palette) {
	d.field.UpdateColors(palette)
	d.logger.Debug("palette applied", zap.Int("colors", len(palette)))
	if d.metrics != nil {
		d.metrics.ThemeChanges.Inc()
	}
}

// Post queues fn to run on the frame goroutine at the start of the next frame
// Safe for concurrent use; returns false if the inbox is full
func (d *Driver) Post(fn func(*Driver)) bool {
	select {
	case d.inbox <- fn:
		return true
	default:
		d.logger.Warn("driver inbox full, dropping work")
		return false
	}
}

func (d *Driver) drainInbox() {
	for {
		select {
		case fn := <-d.inbox:
			fn(d)
		default:
			return
		}
	}
}

// Input returns the pointer tracker hosts feed events into
func (d *Driver) Input() *input.Tracker {
	return d.tracker
}

// Field returns the particle field
func (d *Driver) Field() *field.Field {
	return d.field
}

// Constants returns the physics constants in use
func (d *Driver) Constants() physics.Constants {
	return d.constants
}

// Stats returns a summary of the most recent frame
func (d *Driver) Stats() Stats {
	return Stats{
		FrameNumber: d.frameNumber,
		Particles:   d.field.Len(),
		Connections: d.connections,
		Class:       d.field.Class(),
		Pointer:     d.tracker.State(),
		Generation:  d.field.Generation(),
	}
}
