package extractor

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/kirillkom/guide-extractor/internal/core/domain"
	"github.com/kirillkom/guide-extractor/internal/core/ports"
)

// Router dispatches to a text extractor by file extension.
type Router struct {
	byExt map[string]ports.TextExtractor
}

func NewRouter(pdf, text ports.TextExtractor) *Router {
	return &Router{byExt: map[string]ports.TextExtractor{
		".pdf": pdf,
		".txt": text,
	}}
}

// Supported reports whether path has an extension the router can handle.
func (r *Router) Supported(path string) bool {
	_, ok := r.byExt[strings.ToLower(filepath.Ext(path))]
	return ok
}

func (r *Router) Extract(ctx context.Context, path string) ([]string, error) {
	ext := strings.ToLower(filepath.Ext(path))
	extractor, ok := r.byExt[ext]
	if !ok || extractor == nil {
		return nil, domain.WrapError(domain.ErrUnreadableDocument, "select extractor", fmt.Errorf("unsupported extension %q", ext))
	}
	return extractor.Extract(ctx, path)
}
