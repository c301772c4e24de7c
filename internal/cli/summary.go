package cli

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/specialistvlad/gxlfixture/internal/export"
)

var (
	okColor   = color.New(color.FgGreen, color.Bold)
	warnColor = color.New(color.FgYellow)
	failColor = color.New(color.FgRed, color.Bold)
)

// PrintSummary writes a one-line summary of the export followed by a line
// per failed file.
func PrintSummary(w io.Writer, r *export.Report) {
	if r == nil {
		return
	}

	status := okColor
	if r.Failed() {
		status = failColor
	}
	status.Fprintf(w, "Exported %d graph(s)", len(r.Entries))
	fmt.Fprintf(w, ", generated %d test(s)", r.TestCases)
	if n := len(r.Untested); n > 0 {
		warnColor.Fprintf(w, ", %d without a recorded schedule length", n)
	}
	if n := len(r.Failures); n > 0 {
		failColor.Fprintf(w, ", %d failed", n)
	}
	fmt.Fprintln(w)

	for _, f := range r.Failures {
		fmt.Fprintf(w, "  %s %s: %v\n", failColor.Sprint("✗"), f.Path, f.Err)
	}
}

// FailureError returns an ExitError with code 1 when the report has failures.
func FailureError(r *export.Report) error {
	if r == nil || !r.Failed() {
		return nil
	}
	total := len(r.Entries) + len(r.Failures)
	return &ExitError{Code: 1, Message: fmt.Sprintf("%d of %d graph(s) failed to export", len(r.Failures), total)}
}
