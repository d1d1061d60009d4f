package extraction

import (
	"strings"
	"unicode/utf8"

	"github.com/kirillkom/guide-extractor/internal/core/domain"
)

const DefaultExcerptChars = 600

// Extractor turns the text of one document into a Record or a Failure.
// It holds no state between documents.
type Extractor struct {
	excerptChars int
}

func NewExtractor(excerptChars int) *Extractor {
	if excerptChars <= 0 {
		excerptChars = DefaultExcerptChars
	}
	return &Extractor{excerptChars: excerptChars}
}

// Extract applies the field rules to text. Exactly one of the results is
// meaningful: the Record when the returned Failure is nil.
func (e *Extractor) Extract(fileName, text string) (domain.Record, *domain.Failure) {
	if strings.TrimSpace(text) == "" {
		return domain.Record{}, &domain.Failure{
			FileName: fileName,
			Reason:   domain.ReasonNoExtractableText,
		}
	}

	fields := ExtractFields(text)
	if !fields.HasCore() {
		return domain.Record{}, &domain.Failure{
			FileName: fileName,
			Reason:   domain.ReasonNoFieldMatched,
			Excerpt:  Excerpt(text, e.excerptChars),
		}
	}

	return domain.Record{
		SourceFile:      fileName,
		GuideNumber:     fields.GuideNumber,
		DueDate:         fields.DueDate,
		TotalPayable:    fields.TotalPayable,
		ProcessProtocol: fields.ProcessProtocol,
		Barcode:         fields.Barcode,
	}, nil
}

// JoinPages builds the document text: every non-empty page followed by a
// newline, in page order.
func JoinPages(pages []string) string {
	var b strings.Builder
	for _, page := range pages {
		if page == "" {
			continue
		}
		b.WriteString(page)
		b.WriteByte('\n')
	}
	return b.String()
}

// Excerpt returns the first n characters of the trimmed text with newlines
// flattened to spaces.
func Excerpt(text string, n int) string {
	flat := strings.ReplaceAll(strings.TrimSpace(text), "\n", " ")
	if n <= 0 || utf8.RuneCountInString(flat) <= n {
		return flat
	}
	runes := []rune(flat)
	return string(runes[:n])
}
