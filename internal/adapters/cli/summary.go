package cli

import (
	"fmt"
	"io"

	"github.com/kirillkom/guide-extractor/internal/core/domain"
)

// PrintSummary renders the outcome of a compile run and returns the process
// exit code.
func PrintSummary(w io.Writer, summary domain.Summary, err error) int {
	result := summary.Result
	code := mapErrorToExitCode(err)

	switch code {
	case ExitTotalFailure:
		fmt.Fprintln(w, "could not extract data from any file")
		printFailures(w, result.Failures)
	case ExitOK:
		fmt.Fprintf(w, "%d of %d files processed and saved to %s\n", len(result.Records), result.Total, summary.Destination)
		if summary.Outcome == domain.OutcomePartialSuccess {
			printFailures(w, result.Failures)
		}
	case ExitInterrupted:
		fmt.Fprintf(w, "interrupted after %d of %d files; nothing was exported\n", result.Processed(), result.Total)
	default:
		fmt.Fprintf(w, "error: %v\n", err)
		if len(result.Failures) > 0 {
			printFailures(w, result.Failures)
		}
	}

	if summary.ReportPath != "" {
		fmt.Fprintf(w, "failure report: %s\n", summary.ReportPath)
	}
	return code
}

func printFailures(w io.Writer, failures []domain.Failure) {
	if len(failures) == 0 {
		return
	}
	fmt.Fprintf(w, "%d file(s) failed:\n", len(failures))
	for _, f := range failures {
		fmt.Fprintf(w, "  - %s\n", f.String())
	}
}
