package dsp

// Resample linearly interpolates y over its index range [0, len(y)-1] at
// targetCount evenly spaced positions, endpoints included when
// targetCount > 1. The timestamps t travel with the waveform for the
// caller's benefit but do not affect the interpolation grid. No
// anti-alias filtering is applied in either direction. The result always
// has exactly targetCount samples; an empty y yields zeros.
func Resample(t, y []float64, targetCount int) []float64 {
	if targetCount <= 0 {
		return nil
	}
	out := make([]float64, targetCount)
	if len(y) == 0 {
		return out
	}
	if targetCount == 1 {
		out[0] = y[0]
		return out
	}
	if len(y) == 1 {
		for i := range out {
			out[i] = y[0]
		}
		return out
	}
	step := float64(len(y)-1) / float64(targetCount-1)
	for i := range out {
		pos := float64(i) * step
		j := int(pos)
		if j >= len(y)-1 {
			out[i] = y[len(y)-1]
			continue
		}
		frac := pos - float64(j)
		out[i] = y[j] + (y[j+1]-y[j])*frac
	}
	return out
}

// Span returns n values evenly spaced from start to stop inclusive.
// n == 1 returns just start.
func Span(start, stop float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	out := make([]float64, n)
	if n == 1 {
		out[0] = start
		return out
	}
	step := (stop - start) / float64(n-1)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	return out
}
