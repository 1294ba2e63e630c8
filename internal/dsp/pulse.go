package dsp

import "math"

// Sinc is the normalized sinc function sin(pi*x)/(pi*x), with Sinc(0) = 1.
func Sinc(x float64) float64 {
	if x == 0 {
		return 1
	}
	return math.Sin(math.Pi*x) / (math.Pi * x)
}

// Pulse samples amplitude * sinc(2*centerFreq*t) with t spanning
// [-duration/2, +duration/2] over floor(fs*duration) points, endpoints
// included. A non-positive point count yields nil.
func Pulse(centerFreq, duration, fs, amplitude float64) []float64 {
	n := int(fs * duration)
	if n <= 0 {
		return nil
	}
	out := make([]float64, n)
	if n == 1 {
		out[0] = amplitude * Sinc(2*centerFreq*(-duration/2))
		return out
	}
	step := duration / float64(n-1)
	for i := range out {
		t := -duration/2 + float64(i)*step
		out[i] = amplitude * Sinc(2*centerFreq*t)
	}
	return out
}
