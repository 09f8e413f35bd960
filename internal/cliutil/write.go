// Package cliutil holds the small output helpers shared by the casekit
// commands.
package cliutil

import (
	"fmt"
	"io"
	"os"
)

// Writef writes formatted output to w. A failed write is reported on
// os.Stderr instead of being returned, since commands have nowhere better to
// send it.
func Writef(w io.Writer, format string, args ...any) {
	if _, err := fmt.Fprintf(w, format, args...); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "write error: %v\n", err)
	}
}

// Warnf writes a single "Warning: " line to w. A trailing newline is added.
func Warnf(w io.Writer, format string, args ...any) {
	Writef(w, "Warning: "+format+"\n", args...)
}

// WriteLines writes each line to w followed by a newline and stops at the
// first failed write.
func WriteLines(w io.Writer, lines []string) {
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "write error: %v\n", err)
			return
		}
	}
}
