package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// chiptune loops a square-wave melody over a bass line forever.
type chiptune struct {
	rate     beep.SampleRate
	melody   []float64 // Frequencies in Hz, 0 = rest
	bass     []float64
	stepLen  int // Samples per melody step
	pos      int
	phaseMel float64
	phaseBas float64
}

// Two-bar loops, one entry per eighth note.
var (
	classyMelody = []float64{
		523.25, 659.25, 783.99, 659.25, 587.33, 698.46, 880.00, 698.46,
		523.25, 659.25, 783.99, 1046.5, 987.77, 783.99, 587.33, 0,
	}
	classyBass = []float64{
		130.81, 130.81, 130.81, 130.81, 146.83, 146.83, 146.83, 146.83,
		130.81, 130.81, 164.81, 164.81, 196.00, 196.00, 146.83, 146.83,
	}
	popsicleMelody = []float64{
		659.25, 0, 659.25, 783.99, 880.00, 0, 783.99, 659.25,
		587.33, 0, 587.33, 659.25, 523.25, 0, 0, 0,
	}
	popsicleBass = []float64{
		164.81, 164.81, 220.00, 220.00, 174.61, 174.61, 196.00, 196.00,
		146.83, 146.83, 196.00, 196.00, 130.81, 130.81, 130.81, 130.81,
	}
)

func newChiptune(rate beep.SampleRate, melody, bass []float64, step time.Duration) *chiptune {
	return &chiptune{
		rate:    rate,
		melody:  melody,
		bass:    bass,
		stepLen: rate.N(step),
	}
}

func (c *chiptune) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		step := (c.pos / c.stepLen) % len(c.melody)
		inStep := c.pos % c.stepLen

		// Short decay per note keeps the square wave from droning
		env := math.Exp(-3 * float64(inStep) / float64(c.stepLen))

		var val float64
		if f := c.melody[step]; f > 0 {
			val += 0.5 * env * square(c.phaseMel)
			c.phaseMel = advance(c.phaseMel, f, c.rate)
		}
		if f := c.bass[step%len(c.bass)]; f > 0 {
			val += 0.35 * triangle(c.phaseBas)
			c.phaseBas = advance(c.phaseBas, f, c.rate)
		}

		samples[i][0] = val
		samples[i][1] = val
		c.pos++
	}
	return len(samples), true
}

func (c *chiptune) Err() error { return nil }

// impact is a short noise burst with a low thump, decaying exponentially.
type impact struct {
	rate     beep.SampleRate
	rng      *rand.Rand
	thump    float64
	decay    float64 // Envelope time constant in seconds
	duration int
	pos      int
	phase    float64
}

func newImpact(rate beep.SampleRate, thump float64, duration, decay time.Duration, seed int64) beep.Streamer {
	return &impact{
		rate:     rate,
		rng:      rand.New(rand.NewSource(seed)),
		thump:    thump,
		decay:    decay.Seconds(),
		duration: rate.N(duration),
	}
}

func (g *impact) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if g.pos >= g.duration {
			return i, i > 0
		}
		t := float64(g.pos) / float64(g.rate)
		env := math.Exp(-t / g.decay)

		val := env * (0.6*(g.rng.Float64()*2-1) + 0.4*math.Sin(2*math.Pi*g.phase))
		g.phase = advance(g.phase, g.thump, g.rate)

		samples[i][0] = val
		samples[i][1] = val
		g.pos++
	}
	return len(samples), true
}

func (g *impact) Err() error { return nil }

// jingle plays a rising arpeggio once.
func newJingle(rate beep.SampleRate) beep.Streamer {
	notes := []float64{523.25, 659.25, 783.99, 1046.5}
	return beep.Take(rate.N(480*time.Millisecond), newChiptune(rate, notes, []float64{0}, 120*time.Millisecond))
}

func square(phase float64) float64 {
	if phase < 0.5 {
		return 1
	}
	return -1
}

func triangle(phase float64) float64 {
	return 4*math.Abs(phase-0.5) - 1
}

// advance moves an oscillator phase in [0, 1) forward by one sample.
func advance(phase, freq float64, rate beep.SampleRate) float64 {
	phase += freq / float64(rate)
	return phase - math.Floor(phase)
}

// newVolume wraps s with a linear volume. math.Log2(0) is -Inf, so zero
// volume is rendered silent instead.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}
