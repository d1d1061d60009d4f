package extraction

import (
	"regexp"
	"strings"
)

// Rule extracts one field value from document text. ok is false when the rule
// does not apply, which lets the next rule in a Chain take over.
type Rule func(text string) (value string, ok bool)

// Chain is an ordered list of rules; the first rule that yields a value wins.
type Chain []Rule

func (c Chain) Apply(text string) string {
	for _, rule := range c {
		if value, ok := rule(text); ok {
			return value
		}
	}
	return ""
}

// FirstMatch returns the first capture group of the leftmost match.
func FirstMatch(re *regexp.Regexp) Rule {
	return func(text string) (string, bool) {
		m := re.FindStringSubmatch(text)
		if m == nil {
			return "", false
		}
		value := strings.TrimSpace(m[1])
		return value, value != ""
	}
}

// LastMatch returns the first capture group of the last non-overlapping match.
func LastMatch(re *regexp.Regexp) Rule {
	return func(text string) (string, bool) {
		all := re.FindAllStringSubmatch(text, -1)
		if len(all) == 0 {
			return "", false
		}
		value := strings.TrimSpace(all[len(all)-1][1])
		return value, value != ""
	}
}

var (
	guideNumberLabel = regexp.MustCompile(`(?is)N(?:\.|Ú|U)? ?MERO\s*(?:DA\s*)?GUIA.*?(\d{10})`)
	guideNumberAny   = regexp.MustCompile(`\b(\d{10})\b`)

	dueDateLabel    = regexp.MustCompile(`(?is)02\s*-\s*VENCIMENTO\s*(\d{2}/\d{2}/\d{4})`)
	dueDateValidity = regexp.MustCompile(`(?is)DATA DE VALIDADE\s*(\d{2}/\d{2}/\d{4})`)
	dueDateAny      = regexp.MustCompile(`(\d{2}/\d{2}/\d{4})`)

	totalLabel        = regexp.MustCompile(`(?is)26\s*-\s*TOTAL\s*A\s*PAGAR\s*([\d.,]+)`)
	totalGroupedMoney = regexp.MustCompile(`(\d{1,3}(?:\.\d{3})*,\d{2})`)
	totalSimpleMoney  = regexp.MustCompile(`(\d+,\d{2})`)

	processLabel  = regexp.MustCompile(`(?i)PROCESSO(?:\s*SEI)?\s*[:\-]?\s*([\d./\-]+)`)
	protocolLabel = regexp.MustCompile(`(?i)PROTOCOLO\s*[:\-]?\s*([\d./\-]+)`)
)

// Rule chains per field, highest priority first.
var (
	GuideNumberRules = Chain{
		FirstMatch(guideNumberLabel),
		FirstMatch(guideNumberAny),
	}

	DueDateRules = Chain{
		FirstMatch(dueDateLabel),
		FirstMatch(dueDateValidity),
		FirstMatch(dueDateAny),
	}

	// Itemized amounts precede the grand total, so the unlabeled tiers take
	// the last amount in the document. The looser pattern only runs when the
	// grouped one finds nothing.
	TotalPayableRules = Chain{
		FirstMatch(totalLabel),
		LastMatch(totalGroupedMoney),
		LastMatch(totalSimpleMoney),
	}

	ProcessProtocolRules = Chain{
		FirstMatch(processLabel),
		FirstMatch(protocolLabel),
	}
)

// Fields holds the raw values found in one document.
type Fields struct {
	GuideNumber     string
	DueDate         string
	TotalPayable    string
	ProcessProtocol string
	Barcode         string
	BarcodeLayout   BarcodeLayout
}

// HasCore reports whether at least one of guide number, due date or total
// payable was found.
func (f Fields) HasCore() bool {
	return f.GuideNumber != "" || f.DueDate != "" || f.TotalPayable != ""
}

// ExtractFields applies every rule chain and the barcode detector to text.
func ExtractFields(text string) Fields {
	barcode, layout := DetectBarcode(text)
	return Fields{
		GuideNumber:     GuideNumberRules.Apply(text),
		DueDate:         DueDateRules.Apply(text),
		TotalPayable:    TotalPayableRules.Apply(text),
		ProcessProtocol: ProcessProtocolRules.Apply(text),
		Barcode:         barcode,
		BarcodeLayout:   layout,
	}
}
