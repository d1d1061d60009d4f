package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/kirillkom/guide-extractor/internal/core/domain"
)

func TestPrintSummaryFullSuccess(t *testing.T) {
	var out bytes.Buffer
	summary := domain.Summary{
		Result:      domain.BatchResult{Total: 2, Records: []domain.Record{{SourceFile: "a.pdf"}, {SourceFile: "b.pdf"}}},
		Outcome:     domain.OutcomeFullSuccess,
		Destination: "compilado_guias.xlsx",
	}

	code := PrintSummary(&out, summary, nil)
	if code != ExitOK {
		t.Fatalf("expected exit 0, got %d", code)
	}
	if got := out.String(); got != "2 of 2 files processed and saved to compilado_guias.xlsx\n" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestPrintSummaryPartialSuccessListsFailures(t *testing.T) {
	var out bytes.Buffer
	summary := domain.Summary{
		Result: domain.BatchResult{
			Total:    2,
			Records:  []domain.Record{{SourceFile: "a.pdf"}},
			Failures: []domain.Failure{{FileName: "b.pdf", Reason: domain.ReasonNoExtractableText}},
		},
		Outcome:     domain.OutcomePartialSuccess,
		Destination: "out.xlsx",
		ReportPath:  "failures.yaml",
	}

	code := PrintSummary(&out, summary, nil)
	if code != ExitOK {
		t.Fatalf("expected exit 0, got %d", code)
	}
	got := out.String()
	for _, want := range []string{
		"1 of 2 files processed and saved to out.xlsx",
		"  - b.pdf: no extractable text",
		"failure report: failures.yaml",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("output missing %q:\n%s", want, got)
		}
	}
}

func TestPrintSummaryTotalFailure(t *testing.T) {
	var out bytes.Buffer
	summary := domain.Summary{
		Result: domain.BatchResult{
			Total:    1,
			Failures: []domain.Failure{{FileName: "a.pdf", Reason: domain.ReasonNoFieldMatched, Excerpt: "xyz"}},
		},
		Outcome: domain.OutcomeTotalFailure,
	}
	err := domain.WrapError(domain.ErrTotalFailure, "compile guides", errors.New("1 of 1 files failed"))

	code := PrintSummary(&out, summary, err)
	if code != ExitTotalFailure {
		t.Fatalf("expected exit 2, got %d", code)
	}
	got := out.String()
	if !strings.HasPrefix(got, "could not extract data from any file\n") {
		t.Fatalf("unexpected output %q", got)
	}
	if !strings.Contains(got, "a.pdf: no core field matched; leading text: xyz...") {
		t.Fatalf("output missing failure entry:\n%s", got)
	}
	if strings.Contains(got, "saved to") {
		t.Fatalf("total failure must not claim an export:\n%s", got)
	}
}

func TestPrintSummaryExportFailure(t *testing.T) {
	var out bytes.Buffer
	summary := domain.Summary{
		Result:  domain.BatchResult{Total: 1, Records: []domain.Record{{SourceFile: "a.pdf"}}},
		Outcome: domain.OutcomeFullSuccess,
	}
	err := domain.WrapError(domain.ErrExport, "export records", errors.New("disk full"))

	code := PrintSummary(&out, summary, err)
	if code != ExitError {
		t.Fatalf("expected exit 1, got %d", code)
	}
	if !strings.Contains(out.String(), "disk full") {
		t.Fatalf("expected export error in output, got %q", out.String())
	}
}

func TestMapErrorToExitCode(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{nil, ExitOK},
		{domain.WrapError(domain.ErrTotalFailure, "op", errors.New("x")), ExitTotalFailure},
		{domain.WrapError(domain.ErrInvalidInput, "op", errors.New("x")), ExitUsage},
		{fmt.Errorf("run batch: %w", context.Canceled), ExitInterrupted},
		{errors.New("boom"), ExitError},
	}
	for _, tc := range cases {
		if got := mapErrorToExitCode(tc.err); got != tc.want {
			t.Fatalf("mapErrorToExitCode(%v) = %d, want %d", tc.err, got, tc.want)
		}
	}
}
