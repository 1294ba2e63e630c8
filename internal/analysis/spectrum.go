// Package analysis derives frequency-domain summaries from generated
// waveforms via Welch power-spectral-density estimates.
package analysis

import (
	"github.com/mjibson/go-dsp/spectral"
	"github.com/mjibson/go-dsp/window"

	"github.com/medsignal/auscultasim/internal/synth"
)

// Spectrum is a Welch PSD estimate of one waveform.
type Spectrum struct {
	Freqs      []float64
	Power      []float64
	SampleRate float64
}

// Analyze estimates the waveform's power spectral density. The sampling
// rate comes from the waveform's own timestamps; records too short to
// imply a rate yield an empty spectrum.
func Analyze(w synth.Waveform) Spectrum {
	fs := w.Rate()
	if fs <= 0 {
		return Spectrum{}
	}
	nfft := 256
	if len(w.Y) >= 1024 {
		nfft = 1024
	}
	power, freqs := spectral.Pwelch(w.Y, fs, &spectral.PwelchOptions{
		NFFT:   nfft,
		Window: window.Hann,
	})
	return Spectrum{Freqs: freqs, Power: power, SampleRate: fs}
}

// Dominant returns the frequency with the most power, ignoring the DC
// bin. Empty spectra report 0.
func (s Spectrum) Dominant() float64 {
	best, bestPower := 0.0, 0.0
	for i, f := range s.Freqs {
		if f == 0 {
			continue
		}
		if s.Power[i] > bestPower {
			best, bestPower = f, s.Power[i]
		}
	}
	return best
}

// TotalPower sums the estimate across all bins.
func (s Spectrum) TotalPower() float64 {
	var sum float64
	for _, p := range s.Power {
		sum += p
	}
	return sum
}

// BandPower sums the estimate over bins with lo <= freq < hi.
func (s Spectrum) BandPower(lo, hi float64) float64 {
	var sum float64
	for i, f := range s.Freqs {
		if f >= lo && f < hi {
			sum += s.Power[i]
		}
	}
	return sum
}

// BandFraction reports the share of total power inside [lo, hi).
func (s Spectrum) BandFraction(lo, hi float64) float64 {
	total := s.TotalPower()
	if total <= 0 {
		return 0
	}
	return s.BandPower(lo, hi) / total
}
