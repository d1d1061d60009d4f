package guarded

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/kirillkom/guide-extractor/internal/core/ports"
	"github.com/kirillkom/guide-extractor/internal/infrastructure/resilience"
)

// Storage reads source documents through a retry and circuit-breaker
// executor. Documents are read fully inside the guarded call so read errors
// count against the breaker as well as open errors.
type Storage struct {
	inner    ports.ObjectStorage
	executor *resilience.Executor
}

func New(inner ports.ObjectStorage, executor *resilience.Executor) *Storage {
	if executor == nil {
		executor = resilience.NewExecutor(resilience.SourceReadConfig(), nil)
	}
	return &Storage{inner: inner, executor: executor}
}

func (s *Storage) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	var raw []byte
	err := s.executor.Execute(ctx, "source.open", func(ctx context.Context) error {
		reader, err := s.inner.Open(ctx, key)
		if err != nil {
			return err
		}
		defer reader.Close()

		raw, err = io.ReadAll(reader)
		if err != nil {
			return fmt.Errorf("read %s: %w", key, err)
		}
		return nil
	}, resilience.SourceRead)
	if err != nil {
		return nil, err
	}
	return io.NopCloser(bytes.NewReader(raw)), nil
}

func (s *Storage) Save(ctx context.Context, key string, data io.Reader) error {
	return s.inner.Save(ctx, key, data)
}
