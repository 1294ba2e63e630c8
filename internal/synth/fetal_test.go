package synth

import (
	"testing"

	"github.com/medsignal/auscultasim/internal/testutil"
)

func TestFetalRecordLength(t *testing.T) {
	p := FetalParams{Cycles: 10, HeartRate: 140, RRJitterFrac: 0}
	w := p.Synthesize(testutil.NewRand(1))

	// 10 beats at 60/140 s plus the 0.5 s tail at 1000 Hz.
	if n := len(w.Y); n < 4784 || n > 4787 {
		t.Errorf("raw length = %d, want ~4785", n)
	}
	if len(w.T) != len(w.Y) {
		t.Fatalf("timestamp length %d != value length %d", len(w.T), len(w.Y))
	}
}

func TestFetalTailOnlyWhenNoCycles(t *testing.T) {
	p := FetalParams{Cycles: 0}
	w := p.Synthesize(testutil.NewRand(1))
	if len(w.Y) != 500 {
		t.Fatalf("length = %d, want 500 tail samples", len(w.Y))
	}
	requireZeroRange(t, w.Y, 0, len(w.Y))
}

func TestFetalBeatConfinedToEarlyCycle(t *testing.T) {
	p := FetalParams{Cycles: 1, HeartRate: 140, RRJitterFrac: 0}
	w := p.Synthesize(testutil.NewRand(2))
	requireSoundRange(t, w.Y, 0, 45)
	requireZeroRange(t, w.Y, 260, 420)
}

func TestFetalMovementAddsBursts(t *testing.T) {
	p := FetalParams{
		Cycles:             0,
		Movement:           true,
		MovementIntensity:  1,
		MovementRatePerMin: 480,
	}
	w := p.Synthesize(testutil.NewRand(3))
	// No beats and no background noise, so any sound is movement.
	requireSoundRange(t, w.Y, 0, len(w.Y))
}

func TestFetalContractionsAddSwell(t *testing.T) {
	p := FetalParams{
		Cycles:                  0,
		Contractions:            true,
		ContractionRatePer10Min: 4800,
		ContractionDurMin:       1,
		ContractionDurMax:       2,
	}
	w := p.Synthesize(testutil.NewRand(4))
	requireSoundRange(t, w.Y, 0, len(w.Y))
}

func TestFetalFasterRateShortensRecord(t *testing.T) {
	slow := FetalParams{Cycles: 10, HeartRate: 110}
	fast := FetalParams{Cycles: 10, HeartRate: 180}
	ws := slow.Synthesize(testutil.NewRand(5))
	wf := fast.Synthesize(testutil.NewRand(5))
	if len(wf.Y) >= len(ws.Y) {
		t.Errorf("180 bpm record (%d) not shorter than 110 bpm record (%d)", len(wf.Y), len(ws.Y))
	}
}

func TestFetalDeterministicPerSeed(t *testing.T) {
	p := FetalParams{
		Cycles:                  4,
		HeartRate:               150,
		NoiseAmp:                0.02,
		RRJitterFrac:            0.15,
		Movement:                true,
		MovementIntensity:       1.5,
		MovementRatePerMin:      12,
		Contractions:            true,
		ContractionRatePer10Min: 30,
		ContractionDurMin:       0.5,
		ContractionDurMax:       1,
	}
	w1 := p.Synthesize(testutil.NewRand(9))
	w2 := p.Synthesize(testutil.NewRand(9))
	if len(w1.Y) != len(w2.Y) {
		t.Fatalf("lengths differ: %d vs %d", len(w1.Y), len(w2.Y))
	}
	for i := range w1.Y {
		if w1.Y[i] != w2.Y[i] {
			t.Fatalf("sample %d differs for identical seeds", i)
		}
	}
}
