package synth

import (
	"testing"

	"github.com/medsignal/auscultasim/internal/testutil"
)

// requireZeroRange fails when any sample in [lo, hi) is non-zero.
func requireZeroRange(t *testing.T, y []float64, lo, hi int) {
	t.Helper()
	for i := lo; i < hi && i < len(y); i++ {
		if y[i] != 0 {
			t.Fatalf("sample %d = %v, want silence in [%d, %d)", i, y[i], lo, hi)
		}
	}
}

// requireSoundRange fails when every sample in [lo, hi) is zero.
func requireSoundRange(t *testing.T, y []float64, lo, hi int) {
	t.Helper()
	for i := lo; i < hi && i < len(y); i++ {
		if y[i] != 0 {
			return
		}
	}
	t.Fatalf("no sound anywhere in [%d, %d)", lo, hi)
}

func TestCardiacRawDurationScenario(t *testing.T) {
	p := CardiacParams{Cycles: 10, HeartRate: 75, RRJitterFrac: 0}
	w := p.Synthesize(testutil.NewRand(1))

	// 10 beats at exactly 0.8 s plus the 0.5 s tail at 1000 Hz.
	if n := len(w.Y); n < 8499 || n > 8501 {
		t.Errorf("raw length = %d, want ~8500", n)
	}
	if len(w.T) != len(w.Y) {
		t.Fatalf("timestamp length %d != value length %d", len(w.T), len(w.Y))
	}
	if w.T[0] != 0 {
		t.Errorf("first timestamp = %v, want 0", w.T[0])
	}
	if r := w.Rate(); r < 990 || r > 1010 {
		t.Errorf("implied rate = %v, want ~1000", r)
	}
}

func TestCardiacTailOnlyWhenNoCycles(t *testing.T) {
	p := CardiacParams{Cycles: 0, HeartRate: 75}
	w := p.Synthesize(testutil.NewRand(1))
	if len(w.Y) != 500 {
		t.Fatalf("length = %d, want 500 tail samples", len(w.Y))
	}
	requireZeroRange(t, w.Y, 0, len(w.Y))

	noisy := CardiacParams{Cycles: 0, HeartRate: 75, NoiseAmp: 0.05}
	wn := noisy.Synthesize(testutil.NewRand(1))
	requireSoundRange(t, wn.Y, 0, len(wn.Y))
}

func TestCardiacNegativeCyclesDegradeToTail(t *testing.T) {
	p := CardiacParams{Cycles: -3, HeartRate: 75}
	w := p.Synthesize(testutil.NewRand(1))
	if len(w.Y) != 500 {
		t.Errorf("length = %d, want 500", len(w.Y))
	}
}

func TestCardiacHigherRateShortensRecord(t *testing.T) {
	slow := CardiacParams{Cycles: 10, HeartRate: 60}
	fast := CardiacParams{Cycles: 10, HeartRate: 120}
	ws := slow.Synthesize(testutil.NewRand(2))
	wf := fast.Synthesize(testutil.NewRand(2))
	if len(wf.Y) >= len(ws.Y) {
		t.Errorf("120 bpm record (%d) not shorter than 60 bpm record (%d)", len(wf.Y), len(ws.Y))
	}
}

func TestCardiacRRFloorClampsExtremeRates(t *testing.T) {
	a := CardiacParams{Cycles: 10, HeartRate: 300}
	b := CardiacParams{Cycles: 10, HeartRate: 600}
	wa := a.Synthesize(testutil.NewRand(3))
	wb := b.Synthesize(testutil.NewRand(3))
	// Both rates floor at the 0.2 s minimum RR interval.
	if diff := len(wa.Y) - len(wb.Y); diff < -1 || diff > 1 {
		t.Errorf("lengths %d and %d should match at the RR floor", len(wa.Y), len(wb.Y))
	}
}

// quietBase is a flagless beat at 60 bpm with no background noise: all
// sound sits inside the first ~0.4 s of each 1 s beat, so the late-beat
// windows below are exactly silent unless an artifact fills them.
func quietBase(cycles int) CardiacParams {
	return CardiacParams{Cycles: cycles, HeartRate: 60, RRJitterFrac: 0, NoiseAmp: 0}
}

func TestCardiacQuietOutsideBeatSounds(t *testing.T) {
	w := quietBase(2).Synthesize(testutil.NewRand(4))
	requireSoundRange(t, w.Y, 0, 150)
	requireZeroRange(t, w.Y, 400, 900)
	requireZeroRange(t, w.Y, 1400, 1900)
	requireZeroRange(t, w.Y, 2000, 2499)
}

func TestSystolicMurmurConfinedToSystole(t *testing.T) {
	p := quietBase(1)
	p.SystolicMurmur = true
	w := p.Synthesize(testutil.NewRand(5))
	requireSoundRange(t, w.Y, 30, 280)
	requireZeroRange(t, w.Y, 400, 900)
}

func TestDiastolicMurmurFillsLateBeat(t *testing.T) {
	p := quietBase(1)
	p.DiastolicMurmur = true
	w := p.Synthesize(testutil.NewRand(6))
	requireSoundRange(t, w.Y, 500, 900)
	requireZeroRange(t, w.Y, 1000, 1499)
}

func TestContinuousMurmurSpansWholeBeat(t *testing.T) {
	p := quietBase(1)
	p.ContinuousMurmur = true
	w := p.Synthesize(testutil.NewRand(7))
	requireSoundRange(t, w.Y, 400, 900)
	requireZeroRange(t, w.Y, 1000, 1499)
}

func TestFrictionBurstsAtFixedPhases(t *testing.T) {
	p := quietBase(1)
	p.Friction = true
	w := p.Synthesize(testutil.NewRand(8))
	requireSoundRange(t, w.Y, 45, 75)
	requireSoundRange(t, w.Y, 595, 625)
	requireZeroRange(t, w.Y, 400, 590)
	requireZeroRange(t, w.Y, 650, 950)
}

func TestGallopAddsLateDiastolicPulses(t *testing.T) {
	p := quietBase(1)
	p.Gallop = true
	w := p.Synthesize(testutil.NewRand(9))
	requireSoundRange(t, w.Y, 690, 765)
	requireSoundRange(t, w.Y, 890, 955)
	requireZeroRange(t, w.Y, 400, 690)
	requireZeroRange(t, w.Y, 960, 990)
}

func TestCardiacDeterministicPerSeed(t *testing.T) {
	p := CardiacParams{Cycles: 5, HeartRate: 80, NoiseAmp: 0.02, RRJitterFrac: 0.1, Gallop: true}
	w1 := p.Synthesize(testutil.NewRand(42))
	w2 := p.Synthesize(testutil.NewRand(42))
	if len(w1.Y) != len(w2.Y) {
		t.Fatalf("lengths differ: %d vs %d", len(w1.Y), len(w2.Y))
	}
	for i := range w1.Y {
		if w1.Y[i] != w2.Y[i] {
			t.Fatalf("sample %d differs for identical seeds", i)
		}
	}

	w3 := p.Synthesize(testutil.NewRand(43))
	same := len(w3.Y) == len(w1.Y)
	if same {
		for i := range w1.Y {
			if w1.Y[i] != w3.Y[i] {
				same = false
				break
			}
		}
	}
	if same {
		t.Error("different seeds produced identical records")
	}
}
