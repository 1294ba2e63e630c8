package testutil

import (
	"runtime"
	"testing"
	"time"
)

// AssertNoGoroutineLeaks polls until the goroutine count falls back to
// baseline+margin, failing the test if it never does. Call after the
// workload has been stopped and given a moment to settle.
func AssertNoGoroutineLeaks(t *testing.T, baseline, margin int) {
	t.Helper()
	deadline := time.Now().Add(10 * time.Second)
	for time.Now().Before(deadline) {
		if runtime.NumGoroutine() <= baseline+margin {
			return
		}
		time.Sleep(200 * time.Millisecond)
	}
	t.Errorf("goroutine leak: baseline=%d, now=%d (margin %d)", baseline, runtime.NumGoroutine(), margin)
}
