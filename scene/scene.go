// Package scene assembles everything a host draws: the animation driver,
// the overlay stack and theme state. Hosts own the window or terminal and
// translate their events into Scene calls on their frame goroutine.
package scene

import (
	"math/rand/v2"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/lixenwraith/antigravity/audio"
	"github.com/lixenwraith/antigravity/config"
	"github.com/lixenwraith/antigravity/engine"
	"github.com/lixenwraith/antigravity/input"
	"github.com/lixenwraith/antigravity/render"
	"github.com/lixenwraith/antigravity/status"
	"github.com/lixenwraith/antigravity/theme"
	"github.com/lixenwraith/antigravity/typewriter"
)

// Options wires a scene; only Config is required
type Options struct {
	Config config.Config
	Theme  theme.Theme
	// ReducedMotion suppresses the driver entirely, overlays still draw
	ReducedMotion bool

	Rand    *rand.Rand
	Clock   engine.Clock
	Logger  *zap.Logger
	Metrics *status.Registry

	// Store and Watcher persist host-initiated theme toggles, both optional
	Store   *theme.Store
	Watcher *theme.Watcher
	Player  audio.Player
}

// Scene is owned by the host's frame goroutine except ApplyTheme
type Scene struct {
	driver  *engine.Driver
	tracker *input.Tracker
	frame   *render.CommandBuffer

	orch    *render.Orchestrator
	overlay *typewriter.Overlay
	cue     *audio.PointerCue

	clock   engine.Clock
	logger  *zap.Logger
	store   *theme.Store
	watcher *theme.Watcher

	theme atomic.Uint32

	width, height float64
}

// New builds the scene for the initial viewport in logical px
func New(width, height float64, opts Options) (*Scene, error) {
	if opts.Clock == nil {
		opts.Clock = engine.NewTimeProvider()
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	s := &Scene{
		orch:    render.NewOrchestrator(),
		cue:     audio.NewPointerCue(opts.Player),
		clock:   opts.Clock,
		logger:  opts.Logger.Named("scene"),
		store:   opts.Store,
		watcher: opts.Watcher,
		width:   width,
		height:  height,
	}
	s.theme.Store(uint32(opts.Theme))

	if opts.ReducedMotion {
		s.tracker = input.NewTracker()
		s.logger.Info("reduced motion, particle field disabled")
	} else {
		d, err := engine.NewDriver(width, height, engine.Options{
			Constants:           opts.Config.Physics,
			Counts:              opts.Config.Counts(),
			Palette:             opts.Theme.Palette(),
			Classifier:          opts.Config.Classifier(),
			ConnectionsOnMobile: opts.Config.Field.ConnectionsOnMobile,
			Rand:                opts.Rand,
			Clock:               opts.Clock,
			Logger:              opts.Logger,
			Metrics:             opts.Metrics,
		})
		if err != nil {
			return nil, err
		}
		d.Start()
		s.driver = d
		s.tracker = d.Input()
		s.frame = render.NewCommandBuffer()
	}

	s.overlay = typewriter.NewOverlay(typewriter.New(opts.Config.Typewriter.Words, opts.Config.Timing()), "")
	s.orch.Register(s.overlay, render.PriorityUI)
	return s, nil
}

// Register adds a host-specific overlay
func (s *Scene) Register(r render.OverlayRenderer, priority render.RenderPriority) {
	s.orch.Register(r, priority)
}

// Animated reports whether particles are simulated
func (s *Scene) Animated() bool {
	return s.driver != nil
}

// Driver returns the animation driver, nil under reduced motion
func (s *Scene) Driver() *engine.Driver {
	return s.driver
}

// Input returns the tracker hosts feed pointer events into
func (s *Scene) Input() *input.Tracker {
	return s.tracker
}

// Overlay returns the typewriter overlay
func (s *Scene) Overlay() *typewriter.Overlay {
	return s.overlay
}

// Resize forwards a viewport change in logical px
func (s *Scene) Resize(width, height float64) {
	if width == s.width && height == s.height {
		return
	}
	s.width, s.height = width, height
	if s.driver != nil {
		s.driver.Resize(width, height)
	}
}

// Size returns the viewport in logical px
func (s *Scene) Size() (width, height float64) {
	return s.width, s.height
}

// Step advances the simulation one frame and records its draw commands
func (s *Scene) Step() {
	s.cue.Observe(s.tracker.State().Mode())
	if s.driver != nil {
		s.driver.Frame(s.frame)
	}
}

// Draw composes the recorded frame and overlays onto dst
func (s *Scene) Draw(dst render.Target) {
	t := s.Theme()
	ctx := render.Context{
		Now:        s.clock.Now(),
		Width:      s.width,
		Height:     s.height,
		Background: t.Background(),
		Foreground: t.Foreground(),
		Pointer:    s.tracker.State(),
	}
	if s.driver != nil {
		st := s.driver.Stats()
		ctx.FrameNumber = st.FrameNumber
		ctx.Particles = st.Particles
		ctx.Connections = st.Connections
		ctx.Class = st.Class
	}
	s.orch.RenderFrame(ctx, s.frame, dst)
}

// Theme returns the active theme
func (s *Scene) Theme() theme.Theme {
	return theme.Theme(s.theme.Load())
}

// ApplyTheme switches surface colors immediately and queues the particle
// recolor for the next frame. Safe for concurrent use
func (s *Scene) ApplyTheme(t theme.Theme) {
	if theme.Theme(s.theme.Swap(uint32(t))) == t {
		return
	}
	s.logger.Info("theme applied", zap.Stringer("theme", t))
	if s.driver != nil {
		palette := t.Palette()
		s.driver.Post(func(d *engine.Driver) {
			d.UpdateColors(palette)
		})
	}
}

// ToggleTheme flips and persists the theme, returning the new one
func (s *Scene) ToggleTheme() theme.Theme {
	t := s.Theme().Toggle()
	if s.watcher != nil {
		s.watcher.Note(t)
	}
	if s.store != nil {
		if err := s.store.Save(t); err != nil {
			s.logger.Warn("theme save failed", zap.Error(err))
		}
	}
	s.ApplyTheme(t)
	return t
}
