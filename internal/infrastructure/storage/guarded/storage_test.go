package guarded

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"
	"strings"
	"syscall"
	"testing"

	"github.com/kirillkom/guide-extractor/internal/core/domain"
	"github.com/kirillkom/guide-extractor/internal/core/usecase"
	"github.com/kirillkom/guide-extractor/internal/infrastructure/extractor/plaintext"
	"github.com/kirillkom/guide-extractor/internal/infrastructure/resilience"
)

const guideText = "NUMERO DA GUIA 0012345678\n02 - VENCIMENTO 28/02/2025\n"

// mountFake serves guideText until the goneAt-th open, then fails every open
// with errOpen.
type mountFake struct {
	opens   int
	goneAt  int
	errOpen error
}

func (f *mountFake) Open(_ context.Context, key string) (io.ReadCloser, error) {
	f.opens++
	if f.goneAt > 0 && f.opens >= f.goneAt {
		return nil, &fs.PathError{Op: "open", Path: key, Err: f.errOpen}
	}
	return io.NopCloser(strings.NewReader(guideText)), nil
}

func (f *mountFake) Save(context.Context, string, io.Reader) error { return nil }

func newTestStorage(inner *mountFake) *Storage {
	cfg := resilience.SourceReadConfig()
	cfg.RetryMaxAttempts = 1
	return New(inner, resilience.NewExecutor(cfg, nil))
}

func TestOpenReturnsContent(t *testing.T) {
	s := newTestStorage(&mountFake{})

	reader, err := s.Open(context.Background(), "a.txt")
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	raw, _ := io.ReadAll(reader)
	if string(raw) != guideText {
		t.Fatalf("unexpected content %q", raw)
	}
}

func TestBatchFailsFastOnceSourceStorageIsGone(t *testing.T) {
	mount := &mountFake{goneAt: 2, errOpen: syscall.EIO}
	texts := plaintext.NewExtractor(newTestStorage(mount))
	uc := usecase.NewExtractBatchUseCase(texts, nil, nil, nil, nil)

	paths := make([]string, 6)
	for i := range paths {
		paths[i] = filepath.Join("mnt", fmt.Sprintf("g%d.txt", i))
	}
	result, err := uc.Run(context.Background(), paths)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if len(result.Records) != 1 || len(result.Failures) != 5 {
		t.Fatalf("expected 1 record and 5 failures, got %d and %d", len(result.Records), len(result.Failures))
	}
	// Three consecutive storage errors open the breaker; later files are not read.
	if mount.opens != 4 {
		t.Fatalf("expected 4 opens before the breaker opened, got %d", mount.opens)
	}
	for i, f := range result.Failures {
		if f.Reason != domain.ReasonUnexpectedError {
			t.Fatalf("failure %d reason = %s", i, f.Reason)
		}
	}
	if !strings.Contains(result.Failures[4].Detail, "circuit breaker is open") {
		t.Fatalf("expected open breaker detail, got %q", result.Failures[4].Detail)
	}
}

func TestMissingFilesDoNotOpenBreaker(t *testing.T) {
	mount := &mountFake{goneAt: 1, errOpen: fs.ErrNotExist}
	s := newTestStorage(mount)

	for i := 0; i < 5; i++ {
		if _, err := s.Open(context.Background(), "missing.txt"); resilience.IsCircuitOpen(err) {
			t.Fatalf("breaker opened on missing file %d", i)
		}
	}
	if mount.opens != 5 {
		t.Fatalf("expected every open to reach storage, got %d", mount.opens)
	}
}
