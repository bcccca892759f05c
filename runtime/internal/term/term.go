// Package term holds the CLI's terminal sinks. Out and Err default to the
// process streams; tests swap them for buffers.
package term

import (
	"fmt"
	"io"
	"os"
)

var (
	Out io.Writer = os.Stdout
	Err io.Writer = os.Stderr
)

// Stream returns Err for "stderr" and Out for anything else.
func Stream(name string) io.Writer {
	if name == "stderr" {
		return Err
	}
	return Out
}

// Eprintf/Eprintln write to Err and ignore (n, err) to satisfy linters.
func Eprintf(format string, a ...any) { _, _ = fmt.Fprintf(Err, format, a...) }
func Eprintln(a ...any)               { _, _ = fmt.Fprintln(Err, a...) }

// Printf writes to Out and ignores (n, err).
func Printf(format string, a ...any) { _, _ = fmt.Fprintf(Out, format, a...) }

// Eprint writes s to Err verbatim.
func Eprint(s string) { _, _ = io.WriteString(Err, s) }
