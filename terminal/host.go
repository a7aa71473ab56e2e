// Package terminal hosts the scene in a tcell screen: cells map to logical
// px, mouse and focus events drive the pointer and a ticker paces frames.
package terminal

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/antigravity/audio"
	"github.com/lixenwraith/antigravity/parameter"
	"github.com/lixenwraith/antigravity/scene"
)

// eventBuffer bounds events queued between frames
const eventBuffer = 256

// Options configures the host; zero values fall back to defaults
type Options struct {
	CellWidth     float64
	CellHeight    float64
	FrameInterval time.Duration
	ColorMode     ColorMode
	Logger        *zap.Logger
	// Player receives the mute toggle, optional
	Player audio.Player
}

// Host owns the tcell screen and runs the frame loop
type Host struct {
	screen  tcell.Screen
	buf     *CellBuffer
	surface *Surface
	colors  *ColorMapper

	cellW, cellH float64
	interval     time.Duration
	logger       *zap.Logger
	player       audio.Player
}

// New wraps an initialized screen and enables mouse and focus reporting
func New(screen tcell.Screen, opts Options) *Host {
	if opts.CellWidth <= 0 {
		opts.CellWidth = parameter.CellWidthPx
	}
	if opts.CellHeight <= 0 {
		opts.CellHeight = parameter.CellHeightPx
	}
	if opts.FrameInterval <= 0 {
		opts.FrameInterval = parameter.FrameInterval
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.EnableFocus()
	screen.HideCursor()

	w, h := screen.Size()
	buf := NewCellBuffer(w, h)
	return &Host{
		screen:   screen,
		buf:      buf,
		surface:  NewSurface(buf, opts.CellWidth, opts.CellHeight),
		colors:   NewColorMapper(opts.ColorMode),
		cellW:    opts.CellWidth,
		cellH:    opts.CellHeight,
		interval: opts.FrameInterval,
		logger:   opts.Logger.Named("terminal"),
		player:   opts.Player,
	}
}

// Viewport returns the screen size in logical px
func (h *Host) Viewport() (width, height float64) {
	w, ht := h.buf.Size()
	return float64(w) * h.cellW, float64(ht) * h.cellH
}

// Run drives sc until ctx ends or the user quits
// The event poller and the frame loop run under one errgroup
func (h *Host) Run(ctx context.Context, sc *scene.Scene) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	events := make(chan tcell.Event, eventBuffer)
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer h.guard()
		return h.poll(gctx, events)
	})

	g.Go(func() error {
		defer h.guard()
		defer func() {
			cancel()
			// Wake the poller blocked in PollEvent
			_ = h.screen.PostEvent(tcell.NewEventInterrupt(nil))
		}()
		return h.loop(gctx, sc, events)
	})

	return g.Wait()
}

func (h *Host) poll(ctx context.Context, events chan<- tcell.Event) error {
	for {
		ev := h.screen.PollEvent()
		if ev == nil || ctx.Err() != nil {
			return nil
		}
		select {
		case events <- ev:
		case <-ctx.Done():
			return nil
		}
	}
}

func (h *Host) loop(ctx context.Context, sc *scene.Scene, events <-chan tcell.Event) error {
	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()

	h.resize(sc)
	h.render(sc)

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev := <-events:
			if h.Handle(sc, ev) {
				h.logger.Info("quit requested")
				return nil
			}

		case <-ticker.C:
			sc.Step()
			h.render(sc)
		}
	}
}

// Handle applies one event to the scene and reports whether to quit
func (h *Host) Handle(sc *scene.Scene, ev tcell.Event) (quit bool) {
	tracker := sc.Input()

	switch ev := ev.(type) {
	case *tcell.EventResize:
		h.screen.Sync()
		h.resize(sc)

	case *tcell.EventMouse:
		col, row := ev.Position()
		tracker.MouseMove((float64(col)+0.5)*h.cellW, (float64(row)+0.5)*h.cellH)
		if ev.Buttons()&tcell.Button1 != 0 {
			tracker.MouseDown()
		} else {
			tracker.MouseUp()
		}

	case *tcell.EventFocus:
		if !ev.Focused {
			tracker.MouseLeave()
		}

	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return true
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return true
			case 't':
				t := sc.ToggleTheme()
				h.logger.Info("theme toggled", zap.Stringer("theme", t))
			case 'm':
				if h.player != nil {
					h.logger.Info("mute toggled", zap.Bool("muted", h.player.ToggleMute()))
				}
			}
		}
	}
	return false
}

func (h *Host) resize(sc *scene.Scene) {
	w, ht := h.screen.Size()
	if bw, bh := h.buf.Size(); bw != w || bh != ht {
		h.buf.Resize(w, ht)
	}
	sc.Resize(h.Viewport())
}

func (h *Host) render(sc *scene.Scene) {
	h.surface.SetBackground(sc.Theme().Background())
	sc.Draw(h.surface)
	h.buf.Flush(h.screen, h.colors)
	h.screen.Show()
}

// Buffer exposes the composited cells
func (h *Host) Buffer() *CellBuffer {
	return h.buf
}
