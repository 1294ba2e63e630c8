// Package synth composes the raw physiological waveforms: cardiac beats,
// fetal beats with movement and contraction artifacts, and additive
// respiratory sounds. Every synthesizer writes into a buffer owned by the
// call and draws all randomness from the *rand.Rand it is handed.
package synth

import (
	"math"
	"math/rand"
)

// Waveform pairs timestamps with amplitude values. Both slices always
// have the same length and T is non-decreasing.
type Waveform struct {
	T []float64
	Y []float64
}

// Rate reports the sampling rate implied by the timestamps, or 0 when the
// waveform is too short or spans no time.
func (w Waveform) Rate() float64 {
	if len(w.T) < 2 {
		return 0
	}
	span := w.T[len(w.T)-1] - w.T[0]
	if span <= 0 {
		return 0
	}
	return float64(len(w.T)-1) / span
}

// Duration reports the time covered by the waveform in seconds.
func (w Waveform) Duration() float64 {
	if len(w.T) == 0 {
		return 0
	}
	return w.T[len(w.T)-1] - w.T[0]
}

// Synthesizer produces a raw waveform at its own internal sampling rate.
type Synthesizer interface {
	Synthesize(rng *rand.Rand) Waveform
}

// overlayAdd adds src into dst starting at offset. Parts that fall
// outside dst are dropped.
func overlayAdd(dst, src []float64, offset int) {
	for i, v := range src {
		j := offset + i
		if j < 0 || j >= len(dst) {
			continue
		}
		dst[j] += v
	}
}

// halfSineRising returns a window rising from 0 to 1 over n samples.
func halfSineRising(n int) []float64 {
	w := make([]float64, n)
	if n == 1 {
		w[0] = 1
		return w
	}
	for k := range w {
		w[k] = math.Sin(math.Pi / 2 * float64(k) / float64(n-1))
	}
	return w
}

// halfSineFalling returns a window falling from 1 to 0 over n samples.
func halfSineFalling(n int) []float64 {
	w := make([]float64, n)
	if n == 1 {
		w[0] = 1
		return w
	}
	for k := range w {
		w[k] = math.Cos(math.Pi / 2 * float64(k) / float64(n-1))
	}
	return w
}

// fullSine returns a window swelling from 0 to 1 and back over n samples.
func fullSine(n int) []float64 {
	w := make([]float64, n)
	if n == 1 {
		w[0] = 1
		return w
	}
	for k := range w {
		w[k] = math.Sin(math.Pi * float64(k) / float64(n-1))
	}
	return w
}
