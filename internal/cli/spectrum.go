package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/medsignal/auscultasim/internal/analysis"
)

var spectrumCmd = &cobra.Command{
	Use:   "spectrum <condition-id>",
	Short: "Estimate the power spectrum of a condition's raw waveform",
	Args:  cobra.ExactArgs(1),
	RunE:  runSpectrum,
}

func init() {
	rootCmd.AddCommand(spectrumCmd)
}

func runSpectrum(cmd *cobra.Command, args []string) error {
	wf, p, err := engine.GenerateWaveform(args[0], flagSamples, flagCycles)
	if err != nil {
		return err
	}

	s := analysis.Analyze(wf)
	if len(s.Power) == 0 {
		return fmt.Errorf("condition %s: record too short for spectral analysis", p.ID)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, kindHeaderStyles[p.Kind].Render(fmt.Sprintf("%s (%s)", p.ID, p.Kind)))
	fmt.Fprintf(out, "sample rate : %.1f Hz\n", s.SampleRate)
	fmt.Fprintf(out, "dominant    : %.1f Hz\n", s.Dominant())

	nyquist := s.SampleRate / 2
	bands := []struct {
		name   string
		lo, hi float64
	}{
		{"low (tones)", 0, 90},
		{"mid (murmurs)", 90, 420},
		{"high", 420, nyquist + 1},
	}
	for _, b := range bands {
		if b.lo >= nyquist {
			continue
		}
		fmt.Fprintf(out, "%-13s %5.1f%%  (%.0f-%.0f Hz)\n",
			b.name, 100*s.BandFraction(b.lo, b.hi), b.lo, min(b.hi, nyquist))
	}
	return nil
}
