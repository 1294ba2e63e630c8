// Package dsp holds the sample-level primitives shared by the synthesizers:
// random draws, one-pole filters, sinc pulses and linear resampling.
package dsp

import (
	"math"
	"math/rand"
)

// Gaussian returns one standard-normal sample using the Box-Muller
// transform. Only the cosine branch is kept, so every call consumes two
// uniform draws from rng. Exact zeros are redrawn to keep the logarithm
// finite.
func Gaussian(rng *rand.Rand) float64 {
	u1 := rng.Float64()
	for u1 == 0 {
		u1 = rng.Float64()
	}
	u2 := rng.Float64()
	for u2 == 0 {
		u2 = rng.Float64()
	}
	return math.Sqrt(-2*math.Log(u1)) * math.Cos(2*math.Pi*u2)
}

// Uniform returns a sample uniformly distributed in [-n, n].
func Uniform(rng *rand.Rand, n float64) float64 {
	return n * (2*rng.Float64() - 1)
}
