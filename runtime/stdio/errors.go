package stdio

import (
	"fmt"

	"github.com/blinelang/bline/runtime/internal/diag"
)

// ErrorKind classifies a FormatError. Each kind is itself an error, so
// callers can test with errors.Is(err, stdio.ErrMissingArgument).
type ErrorKind int

const (
	ErrIncompleteDirective ErrorKind = iota + 1
	ErrUnknownConversion
	ErrUnsupportedConversion
	ErrMissingArgument
	ErrTypeMismatch
	ErrExtraArguments
	ErrOutOfRange
)

var kindKeys = map[ErrorKind]struct{ key, id, title string }{
	ErrIncompleteDirective:   {"incomplete", "BFE0001", "incomplete directive"},
	ErrUnknownConversion:     {"unknown", "BFE0002", "unknown conversion"},
	ErrUnsupportedConversion: {"unsupported", "BFE0003", "unsupported conversion"},
	ErrMissingArgument:       {"missing", "BFE0004", "missing argument"},
	ErrTypeMismatch:          {"mismatch", "BFE0005", "argument type mismatch"},
	ErrExtraArguments:        {"extra", "BFE0006", "extra arguments"},
	ErrOutOfRange:            {"range", "BFE0007", "width or precision out of range"},
}

func (k ErrorKind) entry() diag.CodeEntry {
	kk, ok := kindKeys[k]
	if !ok {
		return diag.CodeEntry{Title: fmt.Sprintf("ErrorKind(%d)", int(k))}
	}
	return diag.MustLookup("format", kk.key, kk.id, kk.title)
}

func (k ErrorKind) Error() string { return k.entry().Title }

// Code returns the stable diagnostic code, e.g. "BFE0004".
func (k ErrorKind) Code() string { return k.entry().ID }

// FormatError reports a format string that cannot be rendered with the
// arguments given. Nothing is written when one is returned.
type FormatError struct {
	Kind      ErrorKind
	Offset    int    // byte offset of the directive in the format
	Directive string // directive text as written, e.g. "%5d"
	Arg       int    // zero-based argument index, -1 if no argument is involved
	Want      string // description of the expected argument, mismatch only
	Got       Kind   // kind of the argument given, mismatch only
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("stdio: %s at offset %d", e.message(), e.Offset)
}

func (e *FormatError) Unwrap() error { return e.Kind }

// Code returns the diagnostic code of the error's kind.
func (e *FormatError) Code() string { return e.Kind.Code() }

func (e *FormatError) message() string {
	switch e.Kind {
	case ErrMissingArgument:
		return fmt.Sprintf("missing argument %d for %s", e.Arg, e.Directive)
	case ErrTypeMismatch:
		return fmt.Sprintf("%s wants %s, argument %d is %s", e.Directive, e.Want, e.Arg, e.Got)
	case ErrExtraArguments:
		return fmt.Sprintf("extra arguments starting at argument %d", e.Arg)
	case ErrOutOfRange:
		if e.Arg >= 0 {
			return fmt.Sprintf("%s for %s (argument %d)", e.Kind, e.Directive, e.Arg)
		}
	}
	return fmt.Sprintf("%s %q", e.Kind, e.Directive)
}

// Render returns a caret diagnostic pointing into format, which must be
// the format string the error came from.
func (e *FormatError) Render(format string) string {
	ce := e.Kind.entry()
	span := diag.Span{Start: e.Offset, End: e.Offset + len(e.Directive)}
	if e.Kind == ErrExtraArguments {
		span = diag.Span{Start: len(format), End: len(format)}
	}
	return diag.Render(diag.Diagnostic{
		Code: ce.ID,
		Span: span,
		Msg:  e.message(),
		Help: ce.Help,
	}, format)
}
