package cli

import (
	"fmt"
	"math"
	"os"

	"github.com/spf13/cobra"

	"github.com/medsignal/auscultasim/internal/dataset"
	"github.com/medsignal/auscultasim/internal/dsp"
	"github.com/medsignal/auscultasim/internal/registry"
)

var (
	flagPreviewOut   string
	flagPreviewWidth int
)

var previewCmd = &cobra.Command{
	Use:   "preview <condition-id>",
	Short: "Print a terminal sparkline of a condition, optionally writing an SVG",
	Args:  cobra.ExactArgs(1),
	RunE:  runPreview,
}

func init() {
	previewCmd.Flags().StringVar(&flagPreviewOut, "out", "", "write an SVG polyline preview to this path")
	previewCmd.Flags().IntVar(&flagPreviewWidth, "width", 72, "sparkline width in characters")
	rootCmd.AddCommand(previewCmd)
}

var sparkBlocks = []rune("▁▂▃▄▅▆▇█")

// sparkline renders values as unicode block characters, resampling to
// the requested width and normalizing to the series' own range.
func sparkline(values []float64, width int) string {
	if len(values) == 0 || width < 1 {
		return ""
	}
	cols := dsp.Resample(nil, values, width)

	lo, hi := cols[0], cols[0]
	for _, v := range cols {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	span := hi - lo
	if span == 0 {
		span = 1
	}

	out := make([]rune, len(cols))
	for i, v := range cols {
		idx := int((v - lo) / span * float64(len(sparkBlocks)-1))
		out[i] = sparkBlocks[idx]
	}
	return string(out)
}

func runPreview(cmd *cobra.Command, args []string) error {
	n := flagSamples
	if cfg.PreviewSamples > 0 && n > cfg.PreviewSamples {
		n = cfg.PreviewSamples
	}

	builder := dataset.NewBuilder(engine, resolvedSeed, logger)
	ds, err := builder.Build(args[0], n, flagCycles, 1)
	if err != nil {
		return err
	}
	p := registry.Lookup(ds.Condition)

	out := cmd.OutOrStdout()
	header := kindHeaderStyles[p.Kind].Render(fmt.Sprintf("%s (%s, %d samples)", p.ID, p.Kind, n))
	fmt.Fprintln(out, header)
	fmt.Fprintln(out, sparkline(ds.Series[0].Values, flagPreviewWidth))

	if flagPreviewOut == "" {
		return nil
	}
	f, err := os.Create(flagPreviewOut)
	if err != nil {
		return fmt.Errorf("creating %s: %w", flagPreviewOut, err)
	}
	defer f.Close()
	if err := dataset.WriteSVG(f, ds, 800, 240); err != nil {
		return err
	}
	fmt.Fprintf(out, "wrote %s\n", flagPreviewOut)
	return nil
}
