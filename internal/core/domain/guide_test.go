package domain

import "testing"

func TestBatchResultOutcome(t *testing.T) {
	cases := []struct {
		name   string
		result BatchResult
		want   Outcome
	}{
		{"no records", BatchResult{Total: 2, Failures: []Failure{{}, {}}}, OutcomeTotalFailure},
		{"mixed", BatchResult{Total: 2, Records: []Record{{}}, Failures: []Failure{{}}}, OutcomePartialSuccess},
		{"all records", BatchResult{Total: 2, Records: []Record{{}, {}}}, OutcomeFullSuccess},
	}
	for _, tc := range cases {
		if got := tc.result.Outcome(); got != tc.want {
			t.Fatalf("%s: Outcome() = %s, want %s", tc.name, got, tc.want)
		}
		if got := tc.result.Processed(); got != tc.result.Total {
			t.Fatalf("%s: Processed() = %d, want %d", tc.name, got, tc.result.Total)
		}
	}
}

func TestFailureString(t *testing.T) {
	cases := []struct {
		failure Failure
		want    string
	}{
		{
			Failure{FileName: "a.pdf", Reason: ReasonNoExtractableText},
			"a.pdf: no extractable text",
		},
		{
			Failure{FileName: "b.pdf", Reason: ReasonNoExtractableText, Detail: "parse pdf: unreadable document: EOF"},
			"b.pdf: no extractable text (parse pdf: unreadable document: EOF)",
		},
		{
			Failure{FileName: "c.pdf", Reason: ReasonNoFieldMatched, Excerpt: "RECIBO"},
			"c.pdf: no core field matched; leading text: RECIBO...",
		},
		{
			Failure{FileName: "d.pdf", Reason: ReasonUnexpectedError, Detail: "permission denied"},
			"d.pdf: unexpected error: permission denied",
		},
	}
	for _, tc := range cases {
		if got := tc.failure.String(); got != tc.want {
			t.Fatalf("String() = %q, want %q", got, tc.want)
		}
	}
}
