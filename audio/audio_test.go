package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/antigravity/core"
)

func TestChirpGenerator_FiniteAndBounded(t *testing.T) {
	g := NewChirpGenerator(beep.SampleRate(1000), 100, 200, 50*time.Millisecond, 0.25)
	require.Equal(t, 50, g.Len())

	buf := make([][2]float64, 32)
	total := 0
	for {
		n, ok := g.Stream(buf)
		if !ok {
			break
		}
		for i := 0; i < n; i++ {
			assert.LessOrEqual(t, buf[i][0], 0.25)
			assert.GreaterOrEqual(t, buf[i][0], -0.25)
			assert.Equal(t, buf[i][0], buf[i][1])
		}
		total += n
	}
	assert.Equal(t, 50, total)
	assert.NoError(t, g.Err())
}

func TestSoundManager_GracefulWithoutInit(t *testing.T) {
	sm := NewSoundManager()
	assert.NotPanics(t, func() {
		assert.False(t, sm.PlayPress())
		assert.False(t, sm.PlayRelease())
		sm.Cleanup()
	})
	assert.False(t, sm.IsRunning())
	assert.True(t, sm.ToggleMute())
	assert.True(t, sm.IsMuted())
}

func TestAudioService_DisabledByDefault(t *testing.T) {
	s := NewService(nil)
	require.NoError(t, s.Init())
	require.NoError(t, s.Start())
	assert.True(t, s.IsDisabled())
	assert.False(t, s.IsRunning())
	assert.False(t, s.PlayPress())
	assert.False(t, s.PlayRelease())
	assert.NoError(t, s.Stop())
	assert.NoError(t, s.Stop())
}

type recordingPlayer struct {
	events []string
}

func (p *recordingPlayer) PlayPress() bool   { p.events = append(p.events, "press"); return true }
func (p *recordingPlayer) PlayRelease() bool { p.events = append(p.events, "release"); return true }
func (p *recordingPlayer) ToggleMute() bool  { return false }
func (p *recordingPlayer) IsMuted() bool     { return false }
func (p *recordingPlayer) IsRunning() bool   { return true }

func TestPointerCue_Transitions(t *testing.T) {
	p := &recordingPlayer{}
	c := NewPointerCue(p)

	for _, m := range []core.PointerMode{
		core.PointerNone,
		core.PointerRepel,
		core.PointerAttract,
		core.PointerAttract,
		core.PointerRepel,
		core.PointerAttract,
		core.PointerNone,
	} {
		c.Observe(m)
	}
	assert.Equal(t, []string{"press", "release", "press", "release"}, p.events)
}

func TestPointerCue_NilPlayer(t *testing.T) {
	c := NewPointerCue(nil)
	assert.NotPanics(t, func() { c.Observe(core.PointerAttract) })
}
