package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Gauges
var (
	CatalogueSize = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "auscultasim_catalogue_conditions",
		Help: "Number of registered condition profiles",
	})
)

// Counters
var (
	GenerationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "auscultasim_generations_total",
		Help: "Total generation calls by condition and kind",
	}, []string{"condition", "kind"})
	SamplesEmittedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "auscultasim_samples_emitted_total",
		Help: "Total samples returned to callers",
	})
	InvalidParamsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "auscultasim_invalid_params_total",
		Help: "Total generation calls rejected for invalid parameters",
	})
	DatasetSeriesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "auscultasim_dataset_series_total",
		Help: "Total dataset series built across all repetitions",
	})
)

// Histograms
var (
	GenerationDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "auscultasim_generation_duration_seconds",
		Help:    "Waveform synthesis duration in seconds",
		Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 1},
	})
)

// WriteTextfile dumps the current state of all registered metrics to the
// given path in the Prometheus text exposition format. There is no
// exporter server; this is the only way metrics leave the process.
func WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, prometheus.DefaultGatherer)
}
