package domain

import "fmt"

// Record is one extracted row of the output table. Values are kept as the
// literal text found in the document.
type Record struct {
	SourceFile      string `json:"source_file" yaml:"source_file"`
	GuideNumber     string `json:"guide_number" yaml:"guide_number"`
	DueDate         string `json:"due_date" yaml:"due_date"`
	TotalPayable    string `json:"total_payable" yaml:"total_payable"`
	ProcessProtocol string `json:"process_protocol" yaml:"process_protocol"`
	Barcode         string `json:"barcode" yaml:"barcode"`
}

// Columns returns the row in export column order.
func (r Record) Columns() []string {
	return []string{
		r.SourceFile,
		r.GuideNumber,
		r.DueDate,
		r.TotalPayable,
		r.ProcessProtocol,
		r.Barcode,
	}
}

type FailureReason string

const (
	ReasonNoExtractableText FailureReason = "no extractable text"
	ReasonNoFieldMatched    FailureReason = "no core field matched"
	ReasonUnexpectedError   FailureReason = "unexpected error"
)

// Failure explains why one input file could not be reduced to a Record.
type Failure struct {
	FileName string        `json:"file_name" yaml:"file"`
	Reason   FailureReason `json:"reason" yaml:"reason"`
	Excerpt  string        `json:"excerpt,omitempty" yaml:"excerpt,omitempty"`
	Detail   string        `json:"detail,omitempty" yaml:"error,omitempty"`
}

func (f Failure) String() string {
	switch f.Reason {
	case ReasonNoFieldMatched:
		return fmt.Sprintf("%s: %s; leading text: %s...", f.FileName, f.Reason, f.Excerpt)
	case ReasonUnexpectedError:
		return fmt.Sprintf("%s: %s: %s", f.FileName, f.Reason, f.Detail)
	default:
		if f.Detail != "" {
			return fmt.Sprintf("%s: %s (%s)", f.FileName, f.Reason, f.Detail)
		}
		return fmt.Sprintf("%s: %s", f.FileName, f.Reason)
	}
}

type Outcome string

const (
	OutcomeTotalFailure   Outcome = "total_failure"
	OutcomePartialSuccess Outcome = "partial_success"
	OutcomeFullSuccess    Outcome = "full_success"
)

// BatchResult holds the Records and Failures of one run, both in input order.
// Every processed input lands in exactly one of the two slices.
type BatchResult struct {
	RunID    string
	Total    int
	Records  []Record
	Failures []Failure
}

func (r BatchResult) Processed() int {
	return len(r.Records) + len(r.Failures)
}

func (r BatchResult) Outcome() Outcome {
	switch {
	case len(r.Records) == 0:
		return OutcomeTotalFailure
	case len(r.Failures) > 0:
		return OutcomePartialSuccess
	default:
		return OutcomeFullSuccess
	}
}

// Summary is what a finished compile run reports back to its caller.
type Summary struct {
	Result      BatchResult
	Outcome     Outcome
	Destination string
	ReportPath  string
}
