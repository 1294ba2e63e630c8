package testutil

import "math/rand"

// NewRand returns a generator with a fixed seed so test draws are
// reproducible run to run.
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}
