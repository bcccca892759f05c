package diag

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Span marks a half-open byte range [Start, End) within a format string.
type Span struct {
	Start int
	End   int
}

// Diagnostic is a message about one place in a format string.
type Diagnostic struct {
	Code string
	Span Span
	Msg  string
	Help string
}

func (d Diagnostic) Error() string {
	if d.Code == "" {
		return fmt.Sprintf("offset %d: %s", d.Span.Start, d.Msg)
	}
	return fmt.Sprintf("%s: offset %d: %s", d.Code, d.Span.Start, d.Msg)
}

// Render formats d against the text it points into:
//
//	error[BFE0004]: missing argument for %d
//	 | "%d + %d\n"
//	 |       ^~
//	help: every directive ... consumes one argument
//
// Non-printable characters are shown escaped, and the underline follows
// the escaped form.
func Render(d Diagnostic, text string) string {
	var b strings.Builder
	if d.Code != "" {
		fmt.Fprintf(&b, "error[%s]: %s\n", d.Code, d.Msg)
	} else {
		fmt.Fprintf(&b, "error: %s\n", d.Msg)
	}

	vis, cols := visualize(text)
	b.WriteString(" | \"")
	b.WriteString(vis)
	b.WriteString("\"\n")

	start := cols[clamp(d.Span.Start, 0, len(text))] + 1 // past the opening quote
	end := cols[clamp(d.Span.End, 0, len(text))] + 1
	b.WriteString(" | ")
	b.WriteString(strings.Repeat(" ", start))
	b.WriteByte('^')
	if end-start > 1 {
		b.WriteString(strings.Repeat("~", end-start-1))
	}
	b.WriteByte('\n')

	if h := strings.TrimSpace(d.Help); h != "" {
		fmt.Fprintf(&b, "help: %s\n", h)
	}
	return b.String()
}

// visualize escapes text for a single display line. cols[i] is the display
// column of byte offset i, for 0 <= i <= len(text).
func visualize(text string) (string, []int) {
	var b strings.Builder
	cols := make([]int, len(text)+1)
	col := 0
	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		for j := 0; j < size; j++ {
			cols[i+j] = col
		}
		var s string
		switch {
		case r == utf8.RuneError && size == 1:
			s = fmt.Sprintf(`\x%02x`, text[i])
		case r == '"' || r == '\\':
			s = `\` + string(r)
		case unicode.IsPrint(r):
			s = string(r)
		default:
			q := strconv.QuoteRune(r)
			s = q[1 : len(q)-1]
		}
		b.WriteString(s)
		col += utf8.RuneCountInString(s)
		i += size
	}
	cols[len(text)] = col
	return b.String(), cols
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
