package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/kirillkom/guide-extractor/internal/core/domain"
	"github.com/kirillkom/guide-extractor/internal/core/extraction"
	"github.com/kirillkom/guide-extractor/internal/core/ports"
)

type ExtractBatchUseCase struct {
	texts    ports.TextExtractor
	fields   *extraction.Extractor
	progress ports.ProgressReporter
	observer ports.BatchObserver
	logger   *slog.Logger
}

func NewExtractBatchUseCase(
	texts ports.TextExtractor,
	fields *extraction.Extractor,
	progress ports.ProgressReporter,
	observer ports.BatchObserver,
	logger *slog.Logger,
) *ExtractBatchUseCase {
	if fields == nil {
		fields = extraction.NewExtractor(extraction.DefaultExcerptChars)
	}
	if progress == nil {
		progress = nopProgress{}
	}
	if observer == nil {
		observer = nopObserver{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &ExtractBatchUseCase{
		texts:    texts,
		fields:   fields,
		progress: progress,
		observer: observer,
		logger:   logger,
	}
}

// Run processes paths one at a time, in order. A failing file never stops the
// run; cancellation is only honoured between files, in which case the files
// processed so far are returned together with the context error.
func (uc *ExtractBatchUseCase) Run(ctx context.Context, paths []string) (domain.BatchResult, error) {
	if len(paths) == 0 {
		return domain.BatchResult{}, domain.WrapError(domain.ErrInvalidInput, "run batch", errors.New("no input files"))
	}

	result := domain.BatchResult{
		RunID:    uuid.NewString(),
		Total:    len(paths),
		Records:  make([]domain.Record, 0, len(paths)),
		Failures: make([]domain.Failure, 0),
	}
	logger := uc.logger.With("run_id", result.RunID)
	started := time.Now()

	for i, path := range paths {
		if err := ctx.Err(); err != nil {
			logger.Warn("batch.cancelled", "processed", i, "total", len(paths))
			return result, fmt.Errorf("run batch: %w", err)
		}

		name := filepath.Base(path)
		fileStart := time.Now()
		uc.observer.StartFile()
		record, failure := uc.processFile(ctx, path, name)
		elapsed := time.Since(fileStart)
		uc.observer.FinishFile(elapsed, failure)

		if failure != nil {
			result.Failures = append(result.Failures, *failure)
			logger.Warn("file.failed",
				"file", name,
				"reason", string(failure.Reason),
				"detail", failure.Detail,
				"duration_ms", elapsed.Milliseconds(),
			)
		} else {
			result.Records = append(result.Records, record)
			logger.Info("file.processed",
				"file", name,
				"duration_ms", elapsed.Milliseconds(),
			)
		}

		uc.progress.Report(i+1, len(paths), name)
	}

	outcome := result.Outcome()
	uc.observer.FinishBatch(outcome)
	logger.Info("batch.completed",
		"outcome", string(outcome),
		"total", result.Total,
		"records", len(result.Records),
		"failures", len(result.Failures),
		"elapsed_ms", time.Since(started).Milliseconds(),
	)
	return result, nil
}

func (uc *ExtractBatchUseCase) processFile(ctx context.Context, path, name string) (record domain.Record, failure *domain.Failure) {
	defer func() {
		if r := recover(); r != nil {
			record = domain.Record{}
			failure = &domain.Failure{
				FileName: name,
				Reason:   domain.ReasonUnexpectedError,
				Detail:   fmt.Sprint(r),
			}
		}
	}()

	pages, err := uc.texts.Extract(ctx, path)
	if err != nil {
		reason := domain.ReasonUnexpectedError
		if domain.IsKind(err, domain.ErrUnreadableDocument) || domain.IsKind(err, domain.ErrNoExtractableText) {
			reason = domain.ReasonNoExtractableText
		}
		return domain.Record{}, &domain.Failure{
			FileName: name,
			Reason:   reason,
			Detail:   err.Error(),
		}
	}

	return uc.fields.Extract(name, extraction.JoinPages(pages))
}

type nopProgress struct{}

func (nopProgress) Report(int, int, string) {}

type nopObserver struct{}

func (nopObserver) StartFile() {}

func (nopObserver) FinishFile(time.Duration, *domain.Failure) {}

func (nopObserver) FinishBatch(domain.Outcome) {}
