package resilience

import (
	"errors"
	"io/fs"
	"os"
	"syscall"

	"github.com/kirillkom/guide-extractor/internal/core/domain"
)

// TransientFS marks busy, interrupted and explicitly temporary write errors as
// retryable. Everything else fails on the first try.
func TransientFS(err error) ErrorClassification {
	switch {
	case err == nil:
		return ErrorClassification{}
	case errors.Is(err, domain.ErrTemporary),
		errors.Is(err, syscall.EBUSY),
		errors.Is(err, syscall.EAGAIN),
		errors.Is(err, syscall.EINTR),
		errors.Is(err, os.ErrDeadlineExceeded):
		return ErrorClassification{Retryable: true, RecordFailure: true}
	default:
		return ErrorClassification{Retryable: false, RecordFailure: true}
	}
}

// SourceRead classifies input reads. Errors that belong to one file, such as
// a missing path or a directory given as a file, neither retry nor count
// against the breaker; storage-level errors do.
func SourceRead(err error) ErrorClassification {
	switch {
	case err == nil:
		return ErrorClassification{}
	case errors.Is(err, fs.ErrNotExist),
		errors.Is(err, fs.ErrPermission),
		errors.Is(err, syscall.EISDIR),
		errors.Is(err, syscall.ENAMETOOLONG):
		return ErrorClassification{Retryable: false, RecordFailure: false}
	default:
		return TransientFS(err)
	}
}
