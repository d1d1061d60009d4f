package yamlreport

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/kirillkom/guide-extractor/internal/core/domain"
	"github.com/kirillkom/guide-extractor/internal/core/ports"
	"github.com/kirillkom/guide-extractor/internal/infrastructure/resilience"
)

// Report is the persisted failure log of one run.
type Report struct {
	RunID       string           `yaml:"run_id"`
	GeneratedAt time.Time        `yaml:"generated_at"`
	Outcome     domain.Outcome   `yaml:"outcome"`
	Total       int              `yaml:"total"`
	Records     int              `yaml:"records"`
	Failures    []domain.Failure `yaml:"failures"`
}

type Writer struct {
	storage  ports.ObjectStorage
	executor *resilience.Executor
	logger   *slog.Logger
	now      func() time.Time
}

func NewWriter(storage ports.ObjectStorage, executor *resilience.Executor, logger *slog.Logger) *Writer {
	if logger == nil {
		logger = slog.Default()
	}
	if executor == nil {
		executor = resilience.NewExecutor(resilience.DefaultConfig(), logger)
	}
	return &Writer{storage: storage, executor: executor, logger: logger, now: time.Now}
}

func (w *Writer) WriteReport(ctx context.Context, result domain.BatchResult, destination string) error {
	report := Report{
		RunID:       result.RunID,
		GeneratedAt: w.now().UTC(),
		Outcome:     result.Outcome(),
		Total:       result.Total,
		Records:     len(result.Records),
		Failures:    result.Failures,
	}
	if report.Failures == nil {
		report.Failures = []domain.Failure{}
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(report); err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("encode report: %w", err)
	}

	err := w.executor.Execute(ctx, "report.failures.save", func(ctx context.Context) error {
		return w.storage.Save(ctx, destination, bytes.NewReader(buf.Bytes()))
	}, resilience.TransientFS)
	if err != nil {
		return fmt.Errorf("save report: %w", err)
	}

	w.logger.Info("report.failures.ok", "run_id", result.RunID, "path", destination, "failures", len(report.Failures))
	return nil
}

// Read decodes a report written by WriteReport.
func Read(data []byte) (Report, error) {
	var report Report
	if err := yaml.Unmarshal(data, &report); err != nil {
		return Report{}, fmt.Errorf("decode report: %w", err)
	}
	return report, nil
}
