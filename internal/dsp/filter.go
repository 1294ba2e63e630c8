package dsp

import "math"

// LowPass applies a first-order IIR low-pass with cutoff fc at sampling
// rate fs and returns a new slice. The first output sample is zero.
// fc <= 0 returns an unfiltered copy.
func LowPass(x []float64, fc, fs float64) []float64 {
	out := make([]float64, len(x))
	if fc <= 0 {
		copy(out, x)
		return out
	}
	a := math.Exp(-2 * math.Pi * fc / fs)
	for i := 1; i < len(x); i++ {
		out[i] = a*out[i-1] + (1-a)*x[i]
	}
	return out
}

// HighPass subtracts the low-passed signal from the input.
// fc <= 0 returns an unfiltered copy.
func HighPass(x []float64, fc, fs float64) []float64 {
	if fc <= 0 {
		out := make([]float64, len(x))
		copy(out, x)
		return out
	}
	lp := LowPass(x, fc, fs)
	out := make([]float64, len(x))
	for i := range x {
		out[i] = x[i] - lp[i]
	}
	return out
}

// BandPass chains a low-pass at fHi and a high-pass at fLo, in that order.
// The low-pass stage is skipped when fHi is at or above Nyquist, the
// high-pass stage when fLo <= 0. The input slice is never modified.
func BandPass(x []float64, fLo, fHi, fs float64) []float64 {
	y := x
	if fHi < fs/2 {
		y = LowPass(y, fHi, fs)
	}
	return HighPass(y, fLo, fs)
}
