package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// ChirpGenerator sweeps a sine from one frequency to another under a
// short attack and exponential decay envelope, then ends
type ChirpGenerator struct {
	sr        beep.SampleRate
	from, to  float64
	amplitude float64
	total     int
	pos       int
	phase     float64
}

// NewChirpGenerator creates a finite sweep lasting d
func NewChirpGenerator(sr beep.SampleRate, from, to float64, d time.Duration, amplitude float64) *ChirpGenerator {
	return &ChirpGenerator{
		sr:        sr,
		from:      from,
		to:        to,
		amplitude: amplitude,
		total:     sr.N(d),
	}
}

func (g *ChirpGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	if g.pos >= g.total {
		return 0, false
	}
	for i := range samples {
		if g.pos >= g.total {
			return i, true
		}
		progress := float64(g.pos) / float64(g.total)
		freq := g.from + (g.to-g.from)*progress

		// 5ms attack, decay to ~2% by the end
		attack := math.Min(float64(g.pos)/float64(g.sr.N(5*time.Millisecond)+1), 1)
		envelope := attack * math.Exp(-4*progress)

		sample := g.amplitude * envelope * math.Sin(2*math.Pi*g.phase)
		samples[i][0] = sample
		samples[i][1] = sample

		g.phase += freq / float64(g.sr)
		g.phase -= math.Floor(g.phase)
		g.pos++
	}
	return len(samples), true
}

func (g *ChirpGenerator) Err() error {
	return nil
}

// Len returns the sweep length in samples
func (g *ChirpGenerator) Len() int {
	return g.total
}
