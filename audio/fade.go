// Package audio applies tweened gain envelopes to beep streams.
package audio

import (
	"github.com/gopxl/beep"
)

// Envelope is a time-driven gain source. A *tween.Sequence[float32] satisfies it.
type Envelope interface {
	Update(dt float32)
	Current() float32
}

// Fade scales every sample of the wrapped streamer by an envelope that advances
// one sample period per frame.
type Fade struct {
	streamer beep.Streamer
	envelope Envelope
	period   float32
}

// NewFade wraps s so that its output follows env at sample rate sr.
func NewFade(s beep.Streamer, sr beep.SampleRate, env Envelope) *Fade {
	return &Fade{
		streamer: s,
		envelope: env,
		period:   float32(sr.D(1).Seconds()),
	}
}

// Stream fills samples from the wrapped streamer and applies the gain,
// advancing the envelope once per sample.
func (f *Fade) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = f.streamer.Stream(samples)
	for i := range samples[:n] {
		f.envelope.Update(f.period)
		gain := float64(f.envelope.Current())
		samples[i][0] *= gain
		samples[i][1] *= gain
	}
	return n, ok
}

// Err reports the wrapped streamer's error.
func (f *Fade) Err() error {
	return f.streamer.Err()
}
