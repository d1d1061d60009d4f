package pdftext

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"math"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/kirillkom/guide-extractor/internal/core/domain"
	"github.com/kirillkom/guide-extractor/internal/core/ports"
)

// Extractor reads the text layer of PDF documents page by page. Image-only
// pages come back empty; there is no OCR.
type Extractor struct {
	storage ports.ObjectStorage
}

func NewExtractor(storage ports.ObjectStorage) *Extractor {
	return &Extractor{storage: storage}
}

func (e *Extractor) Extract(ctx context.Context, path string) (pages []string, err error) {
	reader, err := e.storage.Open(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("open source document: %w", err)
	}
	defer reader.Close()

	raw, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("read source document: %w", err)
	}

	// The parser panics on some malformed cross-reference tables.
	defer func() {
		if r := recover(); r != nil {
			pages = nil
			err = domain.WrapError(domain.ErrUnreadableDocument, "parse pdf", fmt.Errorf("%v", r))
		}
	}()

	doc, err := pdf.NewReader(bytes.NewReader(raw), int64(len(raw)))
	if err != nil {
		return nil, domain.WrapError(domain.ErrUnreadableDocument, "parse pdf", err)
	}

	total := doc.NumPage()
	pages = make([]string, 0, total)
	for i := 1; i <= total; i++ {
		page := doc.Page(i)
		if page.V.IsNull() {
			pages = append(pages, "")
			continue
		}
		text, err := pageText(page)
		if err != nil {
			return nil, domain.WrapError(domain.ErrUnreadableDocument, fmt.Sprintf("read page %d", i), err)
		}
		pages = append(pages, text)
	}
	return pages, nil
}

// wordGap is the horizontal gap, in font sizes, above which two glyphs on one
// line are taken to belong to different words.
const wordGap = 0.2

// pageText rebuilds the page line by line from positioned glyphs. Fragments
// of a kerned TJ array sit closer than wordGap and are joined without a space.
// Pages the layout pass cannot interpret fall back to the library's plain text.
func pageText(page pdf.Page) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			text, err = page.GetPlainText(nil)
		}
	}()
	return layoutLines(page.Content().Text), nil
}

type textLine struct {
	y      float64
	glyphs []pdf.Text
}

// layoutLines groups glyphs by baseline, top to bottom, and orders each line
// left to right. Glyphs without a known width share the X of their string, so
// the sort is stable to keep them in content-stream order.
func layoutLines(glyphs []pdf.Text) string {
	var lines []*textLine
	byY := make(map[float64]*textLine)
	for _, g := range glyphs {
		if g.S == "" || g.S == "\n" || g.S == "\r" {
			continue
		}
		y := math.Round(g.Y)
		line, ok := byY[y]
		if !ok {
			line = &textLine{y: y}
			byY[y] = line
			lines = append(lines, line)
		}
		line.glyphs = append(line.glyphs, g)
	}
	sort.SliceStable(lines, func(i, j int) bool {
		return lines[i].y > lines[j].y
	})

	var b strings.Builder
	for _, line := range lines {
		sort.SliceStable(line.glyphs, func(i, j int) bool {
			return line.glyphs[i].X < line.glyphs[j].X
		})
		s := strings.TrimSpace(joinGlyphs(line.glyphs))
		if s == "" {
			continue
		}
		b.WriteString(s)
		b.WriteByte('\n')
	}
	return b.String()
}

func joinGlyphs(glyphs []pdf.Text) string {
	var b strings.Builder
	for i, g := range glyphs {
		if i > 0 {
			prev := glyphs[i-1]
			gap := g.X - (prev.X + prev.W)
			spaced := strings.HasSuffix(prev.S, " ") || strings.HasPrefix(g.S, " ")
			if !spaced && gap > wordGap*fontSize(prev, g) {
				b.WriteByte(' ')
			}
		}
		b.WriteString(g.S)
	}
	return b.String()
}

func fontSize(a, b pdf.Text) float64 {
	size := max(a.FontSize, b.FontSize)
	if size <= 0 {
		return 10
	}
	return size
}
