package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/medsignal/auscultasim/internal/dataset"
)

var (
	flagReps int
	flagOut  string
	flagWAV  bool
)

var generateCmd = &cobra.Command{
	Use:   "generate <condition-id>",
	Short: "Generate repeated series for a condition and write them as CSV",
	Long: `Generate one or more repetitions of a condition's waveform and write
them to a four-column CSV (timestamp, value, type, series). Unknown
condition ids fall back to the default profile.`,
	Args: cobra.ExactArgs(1),
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().IntVar(&flagReps, "reps", 1, "number of repetitions to generate")
	generateCmd.Flags().StringVar(&flagOut, "out", "", "output CSV path (default <out-dir>/<condition>.csv)")
	generateCmd.Flags().BoolVar(&flagWAV, "wav", false, "also render the raw waveform as a WAV file next to the CSV")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	builder := dataset.NewBuilder(engine, resolvedSeed, logger)
	ds, err := builder.Build(args[0], flagSamples, flagCycles, flagReps)
	if err != nil {
		return err
	}

	path := flagOut
	if path == "" {
		path = filepath.Join(cfg.OutDir, ds.Condition+".csv")
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()
	if err := dataset.WriteCSV(f, ds); err != nil {
		return err
	}

	logger.Info("dataset written",
		zap.String("path", path),
		zap.String("condition", ds.Condition),
		zap.Int("series", len(ds.Series)))
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d series x %d samples)\n", path, len(ds.Series), ds.Samples)

	if !flagWAV {
		return nil
	}

	wf, _, err := engine.GenerateWaveform(args[0], flagSamples, flagCycles)
	if err != nil {
		return err
	}
	wavPath := strings.TrimSuffix(path, ".csv") + ".wav"
	wavFile, err := os.Create(wavPath)
	if err != nil {
		return fmt.Errorf("creating %s: %w", wavPath, err)
	}
	defer wavFile.Close()
	if err := dataset.WriteWAV(wavFile, wf); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", wavPath)
	return nil
}
