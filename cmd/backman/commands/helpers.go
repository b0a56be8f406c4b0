package commands

import (
	"fmt"
	"io"

	"github.com/nmiranda/backman/internal/engine"
)

// ANSI color codes for terminal output.
const (
	colorReset = "\033[0m"
	colorBold  = "\033[1m"
	colorGreen = "\033[32m"
	colorRed   = "\033[31m"
	colorGray  = "\033[90m"
)

// printReport writes one line per resource outcome plus a summary line.
// verb is the past-tense operation name ("backed up", "restored").
func printReport(w io.Writer, report *engine.Report, verb string) {
	if report.Len() == 0 {
		fmt.Fprintf(w, "%sList %q is empty; nothing to do.%s\n",
			colorGray, report.List, colorReset)
		return
	}

	for _, res := range report.Results {
		if res.Ok() {
			fmt.Fprintf(w, "%s✓ %s %s%s\n",
				colorGreen, verb, res.Resource.Path, colorReset)
		} else {
			fmt.Fprintf(w, "%s✗ %s: %v%s\n",
				colorRed, res.Resource.Path, res.Err, colorReset)
		}
	}

	fmt.Fprintf(w, "\n%s%d succeeded, %d failed (%d total)%s\n",
		colorBold, report.Succeeded(), report.Failed(), report.Len(), colorReset)
}
