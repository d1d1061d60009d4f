package ports

import (
	"context"

	"github.com/kirillkom/guide-extractor/internal/core/domain"
)

// BatchExtractor runs field extraction over an ordered list of input files.
type BatchExtractor interface {
	Run(ctx context.Context, paths []string) (domain.BatchResult, error)
}

// GuideCompiler runs a batch and exports its Records when the outcome allows it.
type GuideCompiler interface {
	Compile(ctx context.Context, paths []string, destination string) (domain.Summary, error)
}
