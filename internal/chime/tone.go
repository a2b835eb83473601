// Package chime plays a short tone as feedback for accepted taps.
package chime

import (
	"math"
	"time"

	"github.com/faiface/beep"
)

// tone is a sine wave with an exponential decay envelope. It ends after
// the configured number of samples.
type tone struct {
	step  float64
	decay float64
	gain  float64

	pos   int
	total int
}

func newTone(sr beep.SampleRate, freq float64, d time.Duration, gain float64) *tone {
	total := sr.N(d)
	if total <= 0 || freq <= 0 {
		total = 0
	}
	t := &tone{
		step:  2 * math.Pi * freq / float64(sr),
		gain:  gain,
		total: total,
	}
	if total > 0 {
		// Fade to about 1% by the last sample.
		t.decay = math.Log(100) / float64(total)
	}
	return t
}

func (t *tone) Stream(samples [][2]float64) (int, bool) {
	if t.pos >= t.total {
		return 0, false
	}
	n := 0
	for i := range samples {
		if t.pos >= t.total {
			break
		}
		v := t.gain * math.Sin(t.step*float64(t.pos)) * math.Exp(-t.decay*float64(t.pos))
		samples[i][0], samples[i][1] = v, v
		t.pos++
		n++
	}
	return n, true
}

func (t *tone) Err() error { return nil }
