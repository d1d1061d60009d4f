package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/kirillkom/guide-extractor/internal/core/domain"
)

// BatchMetrics counts per-file outcomes of extraction runs. It implements
// ports.BatchObserver.
type BatchMetrics struct {
	registry *prometheus.Registry
	service  string

	filesTotal    *prometheus.CounterVec
	fileDuration  *prometheus.HistogramVec
	filesInFlight prometheus.Gauge
	batchRuns     *prometheus.CounterVec
}

func NewBatchMetrics(service string) *BatchMetrics {
	registry := prometheus.NewRegistry()

	filesTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "guide",
			Subsystem: "extractor",
			Name:      "files_total",
			Help:      "Total processed input files by status and failure reason.",
		},
		[]string{"service", "status", "reason"},
	)
	fileDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "guide",
			Subsystem: "extractor",
			Name:      "file_duration_seconds",
			Help:      "Per-file extraction duration in seconds by status.",
			Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		},
		[]string{"service", "status"},
	)
	filesInFlight := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "guide",
			Subsystem: "extractor",
			Name:      "files_in_flight",
			Help:      "Number of files currently being extracted.",
			ConstLabels: prometheus.Labels{
				"service": service,
			},
		},
	)
	batchRuns := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "guide",
			Subsystem: "extractor",
			Name:      "batch_runs_total",
			Help:      "Total finished batch runs by outcome.",
		},
		[]string{"service", "outcome"},
	)

	registry.MustRegister(filesTotal, fileDuration, filesInFlight, batchRuns)

	return &BatchMetrics{
		registry:      registry,
		service:       service,
		filesTotal:    filesTotal,
		fileDuration:  fileDuration,
		filesInFlight: filesInFlight,
		batchRuns:     batchRuns,
	}
}

func (m *BatchMetrics) Gatherer() prometheus.Gatherer {
	return m.registry
}

func (m *BatchMetrics) StartFile() {
	m.filesInFlight.Inc()
}

func (m *BatchMetrics) FinishFile(duration time.Duration, failure *domain.Failure) {
	m.filesInFlight.Dec()

	status, reason := "success", ""
	if failure != nil {
		status, reason = "failure", string(failure.Reason)
	}

	m.filesTotal.WithLabelValues(m.service, status, reason).Inc()
	m.fileDuration.WithLabelValues(m.service, status).Observe(duration.Seconds())
}

func (m *BatchMetrics) FinishBatch(outcome domain.Outcome) {
	m.batchRuns.WithLabelValues(m.service, string(outcome)).Inc()
}

// WriteTextfile dumps the registry in the node_exporter textfile format.
func (m *BatchMetrics) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	return nil
}
