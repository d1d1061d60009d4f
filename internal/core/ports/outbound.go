package ports

import (
	"context"
	"io"
	"time"

	"github.com/kirillkom/guide-extractor/internal/core/domain"
)

// ObjectStorage reads source documents and persists produced artifacts.
type ObjectStorage interface {
	Save(ctx context.Context, key string, data io.Reader) error
	Open(ctx context.Context, key string) (io.ReadCloser, error)
}

// TextExtractor returns the page texts of one document in page order.
// Unreadable documents are reported with domain.ErrUnreadableDocument.
type TextExtractor interface {
	Extract(ctx context.Context, path string) ([]string, error)
}

// RecordExporter writes Records as a six-column table to destination.
type RecordExporter interface {
	Export(ctx context.Context, records []domain.Record, destination string) error
}

// FailureReporter persists the failure log of a finished run.
type FailureReporter interface {
	WriteReport(ctx context.Context, result domain.BatchResult, destination string) error
}

// ProgressReporter is notified after each file has been processed.
type ProgressReporter interface {
	Report(current, total int, fileName string)
}

// BatchObserver receives per-file timing and outcome, e.g. for metrics.
type BatchObserver interface {
	StartFile()
	FinishFile(duration time.Duration, failure *domain.Failure)
	FinishBatch(outcome domain.Outcome)
}
