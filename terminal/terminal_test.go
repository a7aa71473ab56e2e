package terminal

import (
	"context"
	"math"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/antigravity/config"
	"github.com/lixenwraith/antigravity/core"
	"github.com/lixenwraith/antigravity/engine"
	"github.com/lixenwraith/antigravity/render"
	"github.com/lixenwraith/antigravity/scene"
	"github.com/lixenwraith/antigravity/theme"
)

func newScreen(t *testing.T) tcell.Screen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(80, 24)
	t.Cleanup(screen.Fini)
	return screen
}

func newHostScene(t *testing.T) (*Host, *scene.Scene) {
	t.Helper()
	h := New(newScreen(t), Options{})
	w, ht := h.Viewport()
	sc, err := scene.New(w, ht, scene.Options{
		Config: config.Default(),
		Theme:  theme.Dark,
		Rand:   rand.New(rand.NewPCG(7, 7)),
		Clock:  engine.NewMockTimeProvider(time.Unix(0, 0)),
	})
	require.NoError(t, err)
	return h, sc
}

func TestArrow(t *testing.T) {
	tests := []struct {
		angle float64
		want  rune
	}{
		{0, '↑'},
		{math.Pi / 4, '↗'},
		{math.Pi / 2, '→'},
		{math.Pi, '↓'},
		{3 * math.Pi / 2, '←'},
		{-math.Pi / 2, '←'},
		{-math.Pi / 4, '↖'},
		{2 * math.Pi, '↑'},
		{0.3, '↑'},
	}
	for _, tt := range tests {
		assert.Equal(t, string(tt.want), string(Arrow(tt.angle)), "angle %v", tt.angle)
	}
}

func TestSurface_Triangle(t *testing.T) {
	buf := NewCellBuffer(10, 5)
	s := NewSurface(buf, 8, 16)
	s.SetBackground(core.RGBBlack)
	s.Clear()

	s.DrawTriangle(render.Triangle{
		CenterX: 20, CenterY: 40,
		Angle: math.Pi / 2,
		Color: core.RGBA{R: 200, G: 100, B: 50, A: 1},
		Glow:  6,
	})

	r, fg, _, ok := buf.Get(2, 2)
	require.True(t, ok)
	assert.Equal(t, '→', r)
	assert.Equal(t, core.RGB{R: 200, G: 100, B: 50}, fg)
}

func TestSurface_LineDotsSkipEndpointsAndGlyphs(t *testing.T) {
	buf := NewCellBuffer(10, 3)
	s := NewSurface(buf, 8, 16)
	s.SetBackground(core.RGBBlack)
	s.Clear()

	// Occupied cell in the middle of the path
	buf.SetFg(4, 1, '↑', core.RGBWhite, false)

	s.DrawLine(render.Line{
		X1: 4, Y1: 24, X2: 68, Y2: 24, // cells (0,1) to (8,1)
		Color: core.RGBA{R: 200, G: 200, B: 200, A: 0.1},
	})

	r, _, _, _ := buf.Get(0, 1)
	assert.Equal(t, rune(0), r, "start excluded")
	r, _, _, _ = buf.Get(8, 1)
	assert.Equal(t, rune(0), r, "end excluded")
	r, _, _, _ = buf.Get(4, 1)
	assert.Equal(t, '↑', r, "glyph kept")

	for _, x := range []int{1, 2, 3, 5, 6, 7} {
		r, fg, _, _ := buf.Get(x, 1)
		assert.Equal(t, dotRune, r, "x=%d", x)
		// alpha 0.1 boosted to 0.3 over black
		assert.Equal(t, core.RGB{R: 60, G: 60, B: 60}, fg)
	}
}

func TestSurface_OverlappingDotsAccumulate(t *testing.T) {
	buf := NewCellBuffer(3, 1)
	buf.Clear(core.RGBBlack)
	buf.BlendDot(1, 0, core.RGBWhite, 0.5)
	_, first, _, _ := buf.Get(1, 0)
	buf.BlendDot(1, 0, core.RGBWhite, 0.5)
	_, second, _, _ := buf.Get(1, 0)
	assert.Greater(t, second.R, first.R)
}

func TestSurface_Text(t *testing.T) {
	buf := NewCellBuffer(20, 3)
	s := NewSurface(buf, 8, 16)
	s.DrawText(render.Text{X: 16, Y: 16, Value: "Go_", Color: core.RGBWhite})

	for i, want := range "Go_" {
		r, fg, _, _ := buf.Get(2+i, 1)
		assert.Equal(t, want, r)
		assert.Equal(t, core.RGBWhite, fg)
	}
}

func TestColorMapper(t *testing.T) {
	c := core.RGB{R: 10, G: 20, B: 30}

	tc := NewColorMapper(ColorModeTrueColor)
	assert.Equal(t, tcell.NewRGBColor(10, 20, 30), tc.Color(c))

	m := NewColorMapper(ColorMode256)
	got := m.Color(c)
	assert.Contains(t, m.palette, got)
	assert.Equal(t, got, m.Color(c))
}

func TestParseColorMode(t *testing.T) {
	m, err := ParseColorMode("256")
	require.NoError(t, err)
	assert.Equal(t, ColorMode256, m)

	m, err = ParseColorMode("TrueColor")
	require.NoError(t, err)
	assert.Equal(t, ColorModeTrueColor, m)

	_, err = ParseColorMode("16")
	assert.Error(t, err)

	assert.Equal(t, ColorModeTrueColor, DetectColorMode(func(string) string { return "truecolor" }))
	assert.Equal(t, ColorMode256, DetectColorMode(func(string) string { return "" }))
}

func TestHost_Viewport(t *testing.T) {
	h := New(newScreen(t), Options{})
	w, ht := h.Viewport()
	assert.Equal(t, 640.0, w)
	assert.Equal(t, 384.0, ht)
}

func TestHost_MouseEvents(t *testing.T) {
	h, sc := newHostScene(t)

	h.Handle(sc, tcell.NewEventMouse(10, 5, tcell.ButtonNone, tcell.ModNone))
	st := sc.Input().State()
	assert.True(t, st.Present)
	assert.False(t, st.Pressed)
	assert.Equal(t, 84.0, st.X)
	assert.Equal(t, 88.0, st.Y)
	assert.Equal(t, core.PointerRepel, st.Mode())

	h.Handle(sc, tcell.NewEventMouse(10, 5, tcell.Button1, tcell.ModNone))
	assert.Equal(t, core.PointerAttract, sc.Input().State().Mode())

	h.Handle(sc, tcell.NewEventMouse(10, 5, tcell.ButtonNone, tcell.ModNone))
	assert.Equal(t, core.PointerRepel, sc.Input().State().Mode())
}

func TestHost_FocusLostIsLeave(t *testing.T) {
	h, sc := newHostScene(t)
	h.Handle(sc, tcell.NewEventMouse(1, 1, tcell.ButtonNone, tcell.ModNone))
	h.Handle(sc, tcell.NewEventFocus(false))
	assert.False(t, sc.Input().State().Present)

	h.Handle(sc, tcell.NewEventFocus(true))
	assert.False(t, sc.Input().State().Present, "focus gain alone does not restore the pointer")
}

func TestHost_Keys(t *testing.T) {
	h, sc := newHostScene(t)

	assert.False(t, h.Handle(sc, tcell.NewEventKey(tcell.KeyRune, 't', tcell.ModNone)))
	assert.Equal(t, theme.Light, sc.Theme())

	assert.True(t, h.Handle(sc, tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)))
	assert.True(t, h.Handle(sc, tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)))
	assert.False(t, h.Handle(sc, tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone)))
}

func TestHost_RenderFlushesCells(t *testing.T) {
	h, sc := newHostScene(t)
	sc.Step()
	h.render(sc)

	arrowsSeen := 0
	for y := 0; y < 24; y++ {
		for x := 0; x < 80; x++ {
			r, _, _, _ := h.screen.GetContent(x, y)
			for _, a := range arrows {
				if r == a {
					arrowsSeen++
				}
			}
		}
	}
	assert.Positive(t, arrowsSeen)

	_, _, style, _ := h.screen.GetContent(0, 0)
	_, bg, _ := style.Decompose()
	want := theme.Dark.Background()
	assert.Equal(t, tcell.NewRGBColor(int32(want.R), int32(want.G), int32(want.B)), bg)
}

func TestHost_RunStopsOnCancel(t *testing.T) {
	h, sc := newHostScene(t)
	h.interval = time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- h.Run(ctx, sc) }()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
	assert.Positive(t, sc.Driver().Stats().FrameNumber)
}

func TestHost_RunQuitKey(t *testing.T) {
	h, sc := newHostScene(t)

	done := make(chan error, 1)
	go func() { done <- h.Run(context.Background(), sc) }()

	require.NoError(t, h.screen.PostEvent(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)))

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return on quit key")
	}
}
