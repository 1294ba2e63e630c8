package synth

import (
	"math"
	"math/rand"

	"github.com/medsignal/auscultasim/internal/dsp"
)

const defaultFetalHeartRate = 140.0

// FetalParams fixes one condition's fetal heart-sound synthesis inputs.
// Movement and contraction artifacts are optional and independent.
type FetalParams struct {
	Cycles       int
	SampleRate   float64
	HeartRate    float64
	NoiseAmp     float64
	RRJitterFrac float64

	Movement           bool
	MovementIntensity  float64
	MovementRatePerMin float64

	Contractions            bool
	ContractionRatePer10Min float64
	ContractionDurMin       float64
	ContractionDurMax       float64
}

// Synthesize renders Cycles fetal heartbeats plus the half-second tail,
// then injects movement bursts and uterine-contraction envelopes at
// random offsets across the whole record. The beat machinery matches the
// adult cardiac path with higher-pitched, shorter pulses.
func (p FetalParams) Synthesize(rng *rand.Rand) Waveform {
	fs := p.SampleRate
	if fs <= 0 {
		fs = defaultCardiacRate
	}
	hr := p.HeartRate
	if hr <= 0 {
		hr = defaultFetalHeartRate
	}
	meanRR := 60 / hr

	rrs := make([]float64, 0, max(p.Cycles, 0))
	total := tailSeconds
	for b := 0; b < p.Cycles; b++ {
		rr := meanRR + p.RRJitterFrac*meanRR*rng.Float64()
		if rr < minRR {
			rr = minRR
		}
		rrs = append(rrs, rr)
		total += rr
	}

	y := make([]float64, int(total*fs))

	offset := 0
	for _, rr := range rrs {
		p.renderBeat(rng, y, offset, hr, fs)
		offset += int(rr * fs)
	}

	if p.Movement {
		p.addMovement(rng, y, total, fs)
	}
	if p.Contractions {
		p.addContractions(rng, y, total, fs)
	}

	for i := range y {
		y[i] += p.NoiseAmp * dsp.Gaussian(rng)
	}

	return Waveform{T: dsp.Span(0, total, len(y)), Y: y}
}

func (p FetalParams) renderBeat(rng *rand.Rand, y []float64, offset int, hr, fs float64) {
	systole := (210-0.5*hr)/1000 + 0.01*dsp.Gaussian(rng)
	if systole < minSystole {
		systole = minSystole
	}

	s1 := dsp.Pulse(70+2*dsp.Gaussian(rng), 0.05+0.003*dsp.Gaussian(rng), fs, 1+0.08*dsp.Gaussian(rng))
	overlayAdd(y, s1, offset)

	s2 := dsp.Pulse(80+2*dsp.Gaussian(rng), 0.04+0.003*dsp.Gaussian(rng), fs, 1+0.08*dsp.Gaussian(rng))
	overlayAdd(y, s2, offset+int(systole*fs))
}

// addMovement injects short band-limited noise bursts. The expected count
// scales with rate and intensity but floors at one so short records still
// show the artifact.
func (p FetalParams) addMovement(rng *rand.Rand, y []float64, total, fs float64) {
	count := int(math.Round(p.MovementRatePerMin * p.MovementIntensity * total / 60))
	if count < 1 {
		count = 1
	}
	n := int(0.1 * fs)
	if n < 1 {
		n = 1
	}
	for i := 0; i < count; i++ {
		burst := bandNoise(rng, n, 150, 500, fs, 0.3)
		w := fullSine(n)
		for k := range burst {
			burst[k] *= w[k]
		}
		overlayAdd(y, burst, int(rng.Float64()*float64(len(y))))
	}
}

// addContractions injects slow broadband swell envelopes with durations
// drawn uniformly from the configured range.
func (p FetalParams) addContractions(rng *rand.Rand, y []float64, total, fs float64) {
	count := int(math.Round(p.ContractionRatePer10Min * total / 600))
	if count < 1 {
		count = 1
	}
	lo, hi := p.ContractionDurMin, p.ContractionDurMax
	if hi < lo {
		hi = lo
	}
	for i := 0; i < count; i++ {
		dur := lo + (hi-lo)*rng.Float64()
		n := int(dur * fs)
		if n < 1 {
			n = 1
		}
		env := make([]float64, n)
		for k := range env {
			env[k] = dsp.Gaussian(rng)
		}
		env = dsp.LowPass(env, 25, fs)
		w := fullSine(n)
		for k := range env {
			env[k] *= 0.4 * w[k]
		}
		overlayAdd(y, env, int(rng.Float64()*float64(len(y))))
	}
}
