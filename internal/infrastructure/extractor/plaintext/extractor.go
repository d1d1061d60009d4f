package plaintext

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"

	"github.com/kirillkom/guide-extractor/internal/core/domain"
	"github.com/kirillkom/guide-extractor/internal/core/ports"
)

// pageBreak separates pages in text dumps produced by pdftotext.
const pageBreak = "\f"

// Extractor reads documents that were already converted to text, in UTF-8 or
// Windows-1252.
type Extractor struct {
	storage ports.ObjectStorage
}

func NewExtractor(storage ports.ObjectStorage) *Extractor {
	return &Extractor{storage: storage}
}

func (e *Extractor) Extract(ctx context.Context, path string) ([]string, error) {
	reader, err := e.storage.Open(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("open source document: %w", err)
	}
	defer reader.Close()

	raw, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("read source document: %w", err)
	}

	text, err := decode(raw)
	if err != nil {
		return nil, domain.WrapError(domain.ErrUnreadableDocument, "decode text", fmt.Errorf("%s: %w", path, err))
	}

	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.Split(text, pageBreak), nil
}

// decode returns raw as UTF-8. Dumps that are not valid UTF-8 are read as
// Windows-1252, a superset of Latin-1 for the printable range. NUL bytes mark
// binary content and are rejected.
func decode(raw []byte) (string, error) {
	if utf8.Valid(raw) {
		return string(raw), nil
	}
	if bytes.IndexByte(raw, 0) >= 0 {
		return "", fmt.Errorf("binary content")
	}
	decoded, err := charmap.Windows1252.NewDecoder().Bytes(raw)
	if err != nil {
		return "", fmt.Errorf("decode windows-1252: %w", err)
	}
	return string(decoded), nil
}
