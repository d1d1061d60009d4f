package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/kirillkom/guide-extractor/internal/core/domain"
	"github.com/kirillkom/guide-extractor/internal/core/ports"
)

// CompileUseCase runs a batch and exports the Records unless nothing could be
// extracted at all.
type CompileUseCase struct {
	batch      ports.BatchExtractor
	exporter   ports.RecordExporter
	reporter   ports.FailureReporter
	reportPath string
	logger     *slog.Logger
}

// NewCompileUseCase wires the compile flow. reporter may be nil and
// reportPath empty, which disables the failure report.
func NewCompileUseCase(
	batch ports.BatchExtractor,
	exporter ports.RecordExporter,
	reporter ports.FailureReporter,
	reportPath string,
	logger *slog.Logger,
) *CompileUseCase {
	if logger == nil {
		logger = slog.Default()
	}
	return &CompileUseCase{
		batch:      batch,
		exporter:   exporter,
		reporter:   reporter,
		reportPath: reportPath,
		logger:     logger,
	}
}

func (uc *CompileUseCase) Compile(ctx context.Context, paths []string, destination string) (domain.Summary, error) {
	result, err := uc.batch.Run(ctx, paths)
	summary := domain.Summary{Result: result, Outcome: result.Outcome()}
	if err != nil {
		return summary, err
	}

	summary.ReportPath = uc.writeReport(ctx, result)

	if summary.Outcome == domain.OutcomeTotalFailure {
		return summary, domain.WrapError(
			domain.ErrTotalFailure,
			"compile guides",
			fmt.Errorf("%d of %d files failed", len(result.Failures), result.Total),
		)
	}

	if err := uc.exporter.Export(ctx, result.Records, destination); err != nil {
		return summary, domain.WrapError(domain.ErrExport, "export records", err)
	}
	summary.Destination = destination
	return summary, nil
}

// writeReport is best effort: a report that cannot be written is logged and
// does not change the outcome of the run.
func (uc *CompileUseCase) writeReport(ctx context.Context, result domain.BatchResult) string {
	if uc.reporter == nil || uc.reportPath == "" {
		return ""
	}
	if err := uc.reporter.WriteReport(ctx, result, uc.reportPath); err != nil {
		uc.logger.Warn("report.failures.error", "run_id", result.RunID, "path", uc.reportPath, "error", err)
		return ""
	}
	return uc.reportPath
}
