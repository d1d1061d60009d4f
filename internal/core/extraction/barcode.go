package extraction

import "regexp"

type BarcodeLayout string

const (
	LayoutNone       BarcodeLayout = ""
	LayoutSegmented  BarcodeLayout = "segmented"
	LayoutSingleLine BarcodeLayout = "single_line"
	LayoutDense      BarcodeLayout = "dense"
)

// BarcodeMatcher looks for a barcode in one specific layout.
type BarcodeMatcher struct {
	Layout BarcodeLayout
	Match  Rule
}

var (
	whitespace = regexp.MustCompile(`\s+`)

	segmentedBarcode  = regexp.MustCompile(`(8\d{11}\s+\d{12}\s+\d{12}\s+\d{12})`)
	singleLineBarcode = regexp.MustCompile(`(?m)^(8[\d\s]{40,})$`)
	denseBarcode      = regexp.MustCompile(`(8\d{43})`)
)

func stripWhitespace(s string) string {
	return whitespace.ReplaceAllString(s, "")
}

// SegmentedBarcode matches four whitespace separated blocks of 12 digits, the
// first one starting with 8.
var SegmentedBarcode = BarcodeMatcher{
	Layout: LayoutSegmented,
	Match: func(text string) (string, bool) {
		m := segmentedBarcode.FindStringSubmatch(text)
		if m == nil {
			return "", false
		}
		return stripWhitespace(m[1]), true
	},
}

// SingleLineBarcode matches a whole line made of an 8 followed by at least 40
// digits or blanks.
var SingleLineBarcode = BarcodeMatcher{
	Layout: LayoutSingleLine,
	Match: func(text string) (string, bool) {
		m := singleLineBarcode.FindStringSubmatch(text)
		if m == nil {
			return "", false
		}
		return stripWhitespace(m[1]), true
	},
}

// DenseBarcode drops all whitespace from text and looks for 44 contiguous
// digits starting with 8.
var DenseBarcode = BarcodeMatcher{
	Layout: LayoutDense,
	Match: func(text string) (string, bool) {
		m := denseBarcode.FindStringSubmatch(stripWhitespace(text))
		if m == nil {
			return "", false
		}
		return m[1], true
	},
}

// BarcodeMatchers are tried in order. The segmented layout goes first because
// it is the least likely to match something that is not a barcode.
var BarcodeMatchers = []BarcodeMatcher{
	SegmentedBarcode,
	SingleLineBarcode,
	DenseBarcode,
}

// DetectBarcode returns the first barcode found and the layout that matched.
func DetectBarcode(text string) (string, BarcodeLayout) {
	for _, matcher := range BarcodeMatchers {
		if value, ok := matcher.Match(text); ok {
			return value, matcher.Layout
		}
	}
	return "", LayoutNone
}
