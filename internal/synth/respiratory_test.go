package synth

import (
	"math"
	"testing"

	"github.com/medsignal/auscultasim/internal/testutil"
)

func TestRespExactCount(t *testing.T) {
	kinds := []RespKind{RespNormal, RespCoarseCrackles, RespFineCrackles, RespWheeze}
	counts := []int{1, 100, 1000, 20000}
	for _, kind := range kinds {
		for _, n := range counts {
			p := RespParams{Count: n, Cycles: 5, BreathRate: 16, NoiseAmp: 0.05, Kind: kind}
			w := p.Synthesize(testutil.NewRand(1))
			if len(w.Y) != n {
				t.Errorf("kind %d count %d: got %d values", kind, n, len(w.Y))
			}
			if len(w.T) != n {
				t.Errorf("kind %d count %d: got %d timestamps", kind, n, len(w.T))
			}
		}
	}
}

func TestRespZeroCountEmpty(t *testing.T) {
	p := RespParams{Count: 0, Cycles: 5}
	w := p.Synthesize(testutil.NewRand(1))
	if len(w.Y) != 0 || len(w.T) != 0 {
		t.Errorf("got %d values, %d timestamps, want empty", len(w.Y), len(w.T))
	}
}

func TestRespZeroCyclesNoiseOnly(t *testing.T) {
	p := RespParams{Count: 2000, Cycles: 0, NoiseAmp: 0.1}
	w := p.Synthesize(testutil.NewRand(2))
	// The envelope never opens, so only the bounded uniform noise remains.
	for i, v := range w.Y {
		if math.Abs(v) > 0.1 {
			t.Fatalf("sample %d = %v exceeds the noise bound", i, v)
		}
	}
	requireSoundRange(t, w.Y, 0, len(w.Y))
	if w.Duration() != 0 {
		t.Errorf("duration = %v, want 0 for zero cycles", w.Duration())
	}
}

func TestRespAmplitudeBounded(t *testing.T) {
	p := RespParams{Count: 5000, Cycles: 5, NoiseAmp: 0.05}
	w := p.Synthesize(testutil.NewRand(3))
	// Harmonic stack tops out at 1.65 before noise.
	for i, v := range w.Y {
		if math.Abs(v) > 2 {
			t.Fatalf("sample %d = %v out of range", i, v)
		}
	}
}

func TestRespWheezeAddsTone(t *testing.T) {
	base := RespParams{Count: 5000, Cycles: 5, Kind: RespNormal}
	wheeze := RespParams{Count: 5000, Cycles: 5, Kind: RespWheeze}
	wb := base.Synthesize(testutil.NewRand(4))
	ww := wheeze.Synthesize(testutil.NewRand(4))
	diff := false
	for i := range wb.Y {
		if wb.Y[i] != ww.Y[i] {
			diff = true
			break
		}
	}
	if !diff {
		t.Error("wheeze output identical to normal breath sound")
	}
}

func TestRespCracklesAddImpulses(t *testing.T) {
	for _, kind := range []RespKind{RespCoarseCrackles, RespFineCrackles} {
		base := RespParams{Count: 8000, Cycles: 4, Kind: RespNormal}
		crackly := RespParams{Count: 8000, Cycles: 4, Kind: kind}
		wb := base.Synthesize(testutil.NewRand(5))
		wc := crackly.Synthesize(testutil.NewRand(5))
		diff := false
		for i := range wb.Y {
			if wb.Y[i] != wc.Y[i] {
				diff = true
				break
			}
		}
		if !diff {
			t.Errorf("kind %d output identical to normal breath sound", kind)
		}
	}
}

func TestRespCustomHarmonics(t *testing.T) {
	// A single pure fundamental stays within the envelope bound.
	p := RespParams{
		Count:     2000,
		Cycles:    3,
		Harmonics: []Harmonic{{Mult: 1, Amp: 0.5}},
	}
	w := p.Synthesize(testutil.NewRand(6))
	for i, v := range w.Y {
		if math.Abs(v) > 0.5 {
			t.Fatalf("sample %d = %v exceeds pure-tone bound", i, v)
		}
	}
	requireSoundRange(t, w.Y, 0, len(w.Y))
}

func TestRespDeterministicPerSeed(t *testing.T) {
	p := RespParams{Count: 3000, Cycles: 5, NoiseAmp: 0.08, Kind: RespFineCrackles}
	w1 := p.Synthesize(testutil.NewRand(7))
	w2 := p.Synthesize(testutil.NewRand(7))
	for i := range w1.Y {
		if w1.Y[i] != w2.Y[i] {
			t.Fatalf("sample %d differs for identical seeds", i)
		}
	}
}
