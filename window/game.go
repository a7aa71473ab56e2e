// Package window hosts the scene in an ebiten window. Logical px equal the
// window's layout size, so the device class follows the window width.
package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/lixenwraith/antigravity/audio"
	"github.com/lixenwraith/antigravity/scene"
)

// Options configures the game
type Options struct {
	Logger *zap.Logger
	Player audio.Player
	// Input overrides live ebiten polling, used by tests
	Input Input
}

// Game implements ebiten.Game
type Game struct {
	scene   *scene.Scene
	input   Input
	surface Surface
	logger  *zap.Logger
	player  audio.Player

	width, height int

	// pointer bookkeeping between ticks
	inside   bool
	touching bool
	touchID  ebiten.TouchID
	touchBuf []ebiten.TouchID

	// mouse is set once the cursor moves or a button is held; touch-only
	// platforms report a fixed cursor that must not count as a pointer
	mouse            bool
	cursorX, cursorY int
}

// New creates a game around sc
func New(sc *scene.Scene, opts Options) *Game {
	if opts.Input == nil {
		opts.Input = ebitenInput{}
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	w, h := sc.Size()
	return &Game{
		scene:  sc,
		input:  opts.Input,
		logger: opts.Logger.Named("window"),
		player: opts.Player,
		width:  int(w),
		height: int(h),
	}
}

// Update implements ebiten.Game: input, then one simulation step
func (g *Game) Update() error {
	if g.handleKeys() {
		return ebiten.Termination
	}
	g.handlePointer()
	g.scene.Step()
	return nil
}

// Draw implements ebiten.Game
func (g *Game) Draw(screen *ebiten.Image) {
	g.surface.Begin(screen, g.scene.Theme().Background())
	g.scene.Draw(&g.surface)
}

// Layout implements ebiten.Game; the logical screen tracks the window
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.scene.Resize(float64(outsideWidth), float64(outsideHeight))
	}
	return outsideWidth, outsideHeight
}

func (g *Game) handleKeys() (quit bool) {
	if g.input.KeyJustPressed(ebiten.KeyEscape) || g.input.KeyJustPressed(ebiten.KeyQ) {
		return true
	}
	if g.input.KeyJustPressed(ebiten.KeyT) {
		t := g.scene.ToggleTheme()
		g.logger.Info("theme toggled", zap.Stringer("theme", t))
	}
	if g.input.KeyJustPressed(ebiten.KeyM) && g.player != nil {
		g.logger.Info("mute toggled", zap.Bool("muted", g.player.ToggleMute()))
	}
	return false
}

// handlePointer turns polled state into tracker transitions
// An active touch owns the pointer until it ends
func (g *Game) handlePointer() {
	tracker := g.scene.Input()

	g.touchBuf = g.input.AppendTouchIDs(g.touchBuf[:0])
	if g.touching {
		if g.hasTouch(g.touchID) {
			x, y := g.input.TouchPosition(g.touchID)
			tracker.TouchMove(float64(x), float64(y))
			g.syncCursor()
			return
		}
		g.touching = false
		tracker.TouchEnd()
	}
	if len(g.touchBuf) > 0 {
		g.touching = true
		g.touchID = g.touchBuf[0]
		g.mouse = false
		g.inside = false
		x, y := g.input.TouchPosition(g.touchID)
		tracker.TouchStart(float64(x), float64(y))
		g.syncCursor()
		return
	}

	x, y := g.input.CursorPosition()
	pressed := g.input.MousePressed()
	if x != g.cursorX || y != g.cursorY || pressed {
		g.mouse = true
	}
	g.cursorX, g.cursorY = x, y
	if !g.mouse {
		return
	}

	inside := g.input.Focused() && x >= 0 && y >= 0 && x < g.width && y < g.height
	switch {
	case inside:
		tracker.MouseMove(float64(x), float64(y))
	case g.inside:
		tracker.MouseLeave()
	}
	g.inside = inside

	if pressed {
		tracker.MouseDown()
	} else {
		tracker.MouseUp()
	}
}

// syncCursor records the cursor during touches so an emulated cursor
// parked at the touch point does not read as mouse movement afterwards
func (g *Game) syncCursor() {
	g.cursorX, g.cursorY = g.input.CursorPosition()
}

func (g *Game) hasTouch(id ebiten.TouchID) bool {
	for _, t := range g.touchBuf {
		if t == id {
			return true
		}
	}
	return false
}
