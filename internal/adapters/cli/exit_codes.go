package cli

import (
	"context"
	"errors"

	"github.com/kirillkom/guide-extractor/internal/core/domain"
)

const (
	ExitOK           = 0
	ExitError        = 1
	ExitTotalFailure = 2
	ExitUsage        = 64
	ExitInterrupted  = 130
)

func mapErrorToExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case domain.IsKind(err, domain.ErrTotalFailure):
		return ExitTotalFailure
	case domain.IsKind(err, domain.ErrInvalidInput):
		return ExitUsage
	case errors.Is(err, context.Canceled):
		return ExitInterrupted
	default:
		return ExitError
	}
}
