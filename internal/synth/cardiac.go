package synth

import (
	"math"
	"math/rand"

	"github.com/medsignal/auscultasim/internal/dsp"
)

const (
	defaultCardiacRate = 1000.0
	defaultHeartRate   = 75.0

	tailSeconds = 0.5
	minRR       = 0.2
	minSystole  = 0.02

	murmurGuard = 0.01
)

// CardiacParams fixes one condition's heart-sound synthesis inputs. The
// zero value of each optional field disables its artifact; the murmur,
// friction and gallop flags are independent and may be combined.
type CardiacParams struct {
	Cycles       int
	SampleRate   float64
	HeartRate    float64
	NoiseAmp     float64
	RRJitterFrac float64

	SystolicMurmur   bool
	DiastolicMurmur  bool
	ContinuousMurmur bool
	Friction         bool
	Gallop           bool
}

// Synthesize renders Cycles heartbeats followed by a fixed half-second
// tail. Each beat draws its own RR interval; the jitter term only ever
// lengthens the interval, matching the observed behavior of the
// condition set this emulates. Cycles <= 0 yields just the tail.
func (p CardiacParams) Synthesize(rng *rand.Rand) Waveform {
	fs := p.SampleRate
	if fs <= 0 {
		fs = defaultCardiacRate
	}
	hr := p.HeartRate
	if hr <= 0 {
		hr = defaultHeartRate
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
		p.renderBeat(rng, y, offset, rr, hr, fs)
		offset += int(rr * fs)
	}

	for i := range y {
		y[i] += p.NoiseAmp * dsp.Gaussian(rng)
	}

	return Waveform{T: dsp.Span(0, total, len(y)), Y: y}
}

// renderBeat overlays one beat's sounds into y at the given sample offset.
func (p CardiacParams) renderBeat(rng *rand.Rand, y []float64, offset int, rr, hr, fs float64) {
	systole := (210-0.5*hr)/1000 + 0.01*dsp.Gaussian(rng)
	if systole < minSystole {
		systole = minSystole
	}
	sysN := int(systole * fs)
	beatN := int(rr * fs)

	s1 := dsp.Pulse(50+2*dsp.Gaussian(rng), 0.08+0.005*dsp.Gaussian(rng), fs, 1+0.08*dsp.Gaussian(rng))
	overlayAdd(y, s1, offset)

	s2 := dsp.Pulse(60+2*dsp.Gaussian(rng), 0.05+0.005*dsp.Gaussian(rng), fs, 1+0.08*dsp.Gaussian(rng))
	overlayAdd(y, s2, offset+sysN)

	if p.SystolicMurmur {
		guard := int(murmurGuard * fs)
		start := offset + len(s1) + guard
		end := offset + sysN - guard
		if n := end - start; n > 0 {
			seg := bandNoise(rng, n, 100, 400, fs, 0.2)
			w := halfSineRising(n)
			for k := range seg {
				seg[k] *= w[k]
			}
			overlayAdd(y, seg, start)
		}
	}

	if p.DiastolicMurmur {
		start := offset + sysN + len(s2)
		end := offset + beatN
		if n := end - start; n > 0 {
			seg := bandNoise(rng, n, 80, 300, fs, 0.18)
			w := halfSineFalling(n)
			for k := range seg {
				seg[k] *= w[k]
			}
			overlayAdd(y, seg, start)
		}
	}

	if p.ContinuousMurmur {
		if beatN > 0 {
			seg := bandNoise(rng, beatN, 60, 250, fs, 0.08)
			overlayAdd(y, seg, offset)
		}
	}

	if p.Friction {
		for _, frac := range []float64{0.05, 0.6} {
			n := int(0.02 * fs)
			if n < 1 {
				n = 1
			}
			burst := make([]float64, n)
			for k := range burst {
				burst[k] = 0.25 * dsp.Gaussian(rng) * math.Exp(-4*float64(k)/float64(n))
			}
			overlayAdd(y, burst, offset+int(frac*float64(beatN)))
		}
	}

	if p.Gallop {
		s3 := dsp.Pulse(40, 0.06, fs, 0.25)
		overlayAdd(y, s3, offset+int(0.7*float64(beatN)))
		s4 := dsp.Pulse(45, 0.05, fs, 0.22)
		overlayAdd(y, s4, offset+int(0.9*float64(beatN)))
	}
}

// bandNoise returns n samples of band-passed white Gaussian noise scaled
// by amp.
func bandNoise(rng *rand.Rand, n int, fLo, fHi, fs, amp float64) []float64 {
	seg := make([]float64, n)
	for i := range seg {
		seg[i] = dsp.Gaussian(rng)
	}
	seg = dsp.BandPass(seg, fLo, fHi, fs)
	for i := range seg {
		seg[i] *= amp
	}
	return seg
}
