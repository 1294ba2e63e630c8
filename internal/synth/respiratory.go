package synth

import (
	"math"
	"math/rand"

	"github.com/medsignal/auscultasim/internal/dsp"
)

// RespKind selects the respiratory sound variant.
type RespKind int

const (
	RespNormal RespKind = iota
	RespCoarseCrackles
	RespFineCrackles
	RespWheeze
)

// Harmonic is one overtone of the breath oscillation: an integer multiple
// of the fundamental and its relative amplitude.
type Harmonic struct {
	Mult int
	Amp  float64
}

var defaultHarmonics = []Harmonic{{1, 1.0}, {2, 0.45}, {3, 0.2}}

const (
	defaultBreathRate = 16.0

	wheezeFreq = 400.0
	wheezeAmp  = 0.25
)

// RespParams fixes one condition's breath-sound synthesis inputs. The
// output always has exactly Count samples spanning Cycles respiratory
// cycles, so no length normalization is needed afterwards.
type RespParams struct {
	Count      int
	Cycles     int
	BreathRate float64
	NoiseAmp   float64
	Kind       RespKind
	Harmonics  []Harmonic
}

// Synthesize builds the breath waveform additively: a harmonic stack on
// the breathing-rate fundamental shaped by a per-cycle envelope, uniform
// background noise, and the variant's crackle bursts or wheeze tone.
// Cycles = 0 leaves the envelope at zero, so the output is noise only.
func (p RespParams) Synthesize(rng *rand.Rand) Waveform {
	n := p.Count
	if n <= 0 {
		return Waveform{}
	}
	rate := p.BreathRate
	if rate <= 0 {
		rate = defaultBreathRate
	}
	f0 := rate / 60
	cycles := max(p.Cycles, 0)
	total := float64(cycles) / f0

	t := dsp.Span(0, total, n)
	harm := p.Harmonics
	if len(harm) == 0 {
		harm = defaultHarmonics
	}

	y := make([]float64, n)
	env := make([]float64, n)
	for i := range y {
		env[i] = math.Abs(math.Sin(math.Pi * f0 * t[i]))
		var base float64
		for _, h := range harm {
			base += h.Amp * math.Sin(2*math.Pi*float64(h.Mult)*f0*t[i])
		}
		y[i] = env[i]*base + dsp.Uniform(rng, p.NoiseAmp)
	}

	switch p.Kind {
	case RespCoarseCrackles:
		p.addCrackles(rng, y, total, 9, 120, 0.008, 0.5, false)
	case RespFineCrackles:
		p.addCrackles(rng, y, total, 14, 450, 0.003, 0.35, true)
	case RespWheeze:
		for i := range y {
			y[i] += wheezeAmp * env[i] * math.Sin(2*math.Pi*wheezeFreq*t[i])
		}
	}

	return Waveform{T: t, Y: y}
}

// addCrackles scatters short damped-cosine bursts through each cycle.
// Coarse crackles land in the early half of the cycle, fine crackles in
// the late half.
func (p RespParams) addCrackles(rng *rand.Rand, y []float64, total float64, perCycle int, freq, dur, amp float64, lateHalf bool) {
	if total <= 0 || p.Cycles <= 0 {
		return
	}
	effFs := float64(len(y)) / total
	burstN := int(dur * effFs)
	if burstN < 1 {
		burstN = 1
	}
	cycleDur := total / float64(p.Cycles)

	for c := 0; c < p.Cycles; c++ {
		for k := 0; k < perCycle; k++ {
			u := 0.5 * rng.Float64()
			if lateHalf {
				u += 0.5
			}
			tPos := (float64(c) + u) * cycleDur
			at := int(tPos / total * float64(len(y)-1))

			burst := make([]float64, burstN)
			for j := range burst {
				tj := float64(j) / effFs
				burst[j] = amp * math.Exp(-3*float64(j)/float64(burstN)) * math.Cos(2*math.Pi*freq*tj)
			}
			overlayAdd(y, burst, at)
		}
	}
}
