// Package stdio is the bline runtime's formatted output. Printf is what
// the language's println builtin lowers to.
//
// Arguments are tagged Values rather than untyped varargs. The format is
// walked directive by directive, each directive takes its arguments in
// order and checks their kinds, and the rendering of each directive is
// left to package fmt. A missing argument or a kind mismatch is reported
// as a *FormatError and nothing is written.
package stdio

import (
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/pkg/errors"

	"github.com/blinelang/bline/runtime/internal/directive"
)

var stdout io.Writer = os.Stdout

// Options tunes how a format is checked. The zero Options matches C:
// arguments left over after the last directive are ignored.
type Options struct {
	// Strict reports leftover arguments as ErrExtraArguments.
	Strict bool
}

// Printf formats to standard output.
func Printf(format string, args ...Value) (int, error) {
	return Options{}.Fprintf(stdout, format, args...)
}

// Fprintf formats to w.
func Fprintf(w io.Writer, format string, args ...Value) (int, error) {
	return Options{}.Fprintf(w, format, args...)
}

// Sprintf formats to a string.
func Sprintf(format string, args ...Value) (string, error) {
	return Options{}.Sprintf(format, args...)
}

// Check reports whether args satisfy format without producing output.
func Check(format string, args ...Value) error {
	return Options{}.Check(format, args...)
}

// Printf formats to standard output.
func (o Options) Printf(format string, args ...Value) (int, error) {
	return o.Fprintf(stdout, format, args...)
}

// Fprintf renders the whole output first and then hands it to w in a
// single Write, so concurrent callers sharing w never interleave within
// a call as long as w.Write is itself atomic.
func (o Options) Fprintf(w io.Writer, format string, args ...Value) (int, error) {
	bp := getBuf()
	defer putBuf(bp)

	buf, err := o.Append(*bp, format, args...)
	*bp = buf
	if err != nil {
		return 0, err
	}
	n, err := w.Write(buf)
	if err == nil && n < len(buf) {
		err = io.ErrShortWrite
	}
	if err != nil {
		return n, errors.Wrap(err, "stdio: write")
	}
	return n, nil
}

// Sprintf formats to a string.
func (o Options) Sprintf(format string, args ...Value) (string, error) {
	bp := getBuf()
	defer putBuf(bp)

	buf, err := o.Append(*bp, format, args...)
	*bp = buf
	if err != nil {
		return "", err
	}
	return string(buf), nil
}

// Check reports whether args satisfy format without producing output.
func (o Options) Check(format string, args ...Value) error {
	_, err := o.Sprintf(format, args...)
	return err
}

// Append appends the formatted text to dst. On error dst is returned
// with its original length.
func (o Options) Append(dst []byte, format string, args ...Value) ([]byte, error) {
	st := state{args: args}
	orig := len(dst)
	sc := directive.New(format)
	for {
		t := sc.Next()
		switch t.Kind {
		case directive.TokEOF:
			if o.Strict && st.next < len(args) {
				return dst[:orig], &FormatError{
					Kind:   ErrExtraArguments,
					Offset: len(format),
					Arg:    st.next,
				}
			}
			return dst, nil
		case directive.TokText:
			dst = append(dst, t.Lex...)
		case directive.TokPercent:
			dst = append(dst, '%')
		case directive.TokIllegal:
			return dst[:orig], illegal(t)
		case directive.TokDirective:
			var err error
			dst, err = st.render(dst, t)
			if err != nil {
				return dst[:orig], err
			}
		}
	}
}

func illegal(t directive.Token) *FormatError {
	e := &FormatError{Offset: t.Off, Directive: t.Lex, Arg: -1}
	switch t.Problem {
	case directive.ProblemUnknown:
		e.Kind = ErrUnknownConversion
	case directive.ProblemUnsupported:
		e.Kind = ErrUnsupportedConversion
	case directive.ProblemRange:
		e.Kind = ErrOutOfRange
	default:
		e.Kind = ErrIncompleteDirective
	}
	return e
}

// state walks the argument list alongside the directives.
type state struct {
	args []Value
	next int
}

func (st *state) take(t directive.Token) (Value, int, error) {
	i := st.next
	if i >= len(st.args) {
		return Value{}, i, &FormatError{
			Kind:      ErrMissingArgument,
			Offset:    t.Off,
			Directive: t.Lex,
			Arg:       i,
		}
	}
	st.next++
	return st.args[i], i, nil
}

// star consumes a '*' width or precision.
func (st *state) star(t directive.Token) (int, error) {
	v, i, err := st.take(t)
	if err != nil {
		return 0, err
	}
	var n int64
	switch v.kind {
	case KindInt:
		n = int64(v.bits)
	case KindUint:
		if v.bits > directive.MaxWidth {
			return 0, outOfRange(t, i)
		}
		n = int64(v.bits)
	default:
		return 0, mismatch(t, i, "an integer width or precision", v.kind)
	}
	if n > directive.MaxWidth || n < -directive.MaxWidth {
		return 0, outOfRange(t, i)
	}
	return int(n), nil
}

func (st *state) render(dst []byte, t directive.Token) ([]byte, error) {
	spec := t.Spec
	if spec.WidthStar {
		w, err := st.star(t)
		if err != nil {
			return dst, err
		}
		spec = spec.WithWidth(w)
	}
	if spec.PrecStar {
		p, err := st.star(t)
		if err != nil {
			return dst, err
		}
		spec = spec.WithPrec(p)
	}
	v, i, err := st.take(t)
	if err != nil {
		return dst, err
	}
	class := spec.Class()
	if !accepts(class, v.kind) {
		return dst, mismatch(t, i, wantOf(class), v.kind)
	}

	switch class {
	case directive.ClassSigned:
		n := signed(spec.Length, v)
		if n == 0 && spec.HasPrec && spec.Prec == 0 {
			// fmt prints no digits and no sign here; C keeps the sign.
			return appendPadded(dst, spec, zeroSign(spec)), nil
		}
		return fmt.Appendf(dst, spec.GoVerb(), n), nil
	case directive.ClassUnsigned:
		u := unsigned(spec.Length, v)
		spec = spec.WithoutFlags("+ ")
		if u == 0 && spec.Verb == 'o' && spec.HasFlag('#') && spec.HasPrec && spec.Prec == 0 {
			return appendPadded(dst, spec, "0"), nil
		}
		if u == 0 && (spec.Verb == 'x' || spec.Verb == 'X') {
			spec = spec.WithoutFlags("#")
		}
		return fmt.Appendf(dst, spec.GoVerb(), u), nil
	case directive.ClassChar:
		spec = spec.WithoutFlags("+ 0#")
		return fmt.Appendf(dst, spec.GoVerb(), rune(int64(v.bits))), nil
	case directive.ClassString:
		spec = spec.WithoutFlags("+ 0#")
		return fmt.Appendf(dst, spec.GoVerb(), v.s), nil
	case directive.ClassFloat:
		if !v.isFinite() {
			return appendNonFinite(dst, spec, v.f), nil
		}
		if (spec.Verb == 'g' || spec.Verb == 'G') && !spec.HasPrec {
			// %g without a precision means 6 significant digits.
			spec = spec.WithPrec(6)
		}
		return fmt.Appendf(dst, spec.GoVerb(), v.f), nil
	case directive.ClassPointer:
		spec = spec.WithoutFlags("+ 0#")
		if v.bits == 0 {
			return appendPadded(dst, spec, "(nil)"), nil
		}
		return fmt.Appendf(dst, spec.GoVerb(), v.bits), nil
	}
	return dst, nil
}

func accepts(c directive.Class, k Kind) bool {
	switch c {
	case directive.ClassSigned, directive.ClassUnsigned:
		return k == KindInt || k == KindUint || k == KindChar || k == KindBool
	case directive.ClassChar:
		return k == KindChar || k == KindInt || k == KindUint
	case directive.ClassString:
		return k == KindString
	case directive.ClassFloat:
		return k == KindFloat
	case directive.ClassPointer:
		return k == KindPointer
	}
	return false
}

func wantOf(c directive.Class) string {
	switch c {
	case directive.ClassSigned, directive.ClassUnsigned:
		return "an integer"
	case directive.ClassChar:
		return "a char"
	case directive.ClassString:
		return "a string"
	case directive.ClassFloat:
		return "a float"
	case directive.ClassPointer:
		return "a pointer"
	}
	return "nothing"
}

// signed applies C's hh and h truncation; other lengths keep 64 bits.
func signed(length string, v Value) int64 {
	n := int64(v.bits)
	switch length {
	case "hh":
		return int64(int8(n))
	case "h":
		return int64(int16(n))
	}
	return n
}

func unsigned(length string, v Value) uint64 {
	switch length {
	case "hh":
		return uint64(uint8(v.bits))
	case "h":
		return uint64(uint16(v.bits))
	}
	return v.bits
}

// appendNonFinite spells infinities and NaN the way C does: inf, -inf,
// nan, upper-cased for the upper-case conversions.
func appendNonFinite(dst []byte, spec directive.Spec, f float64) []byte {
	var s string
	switch {
	case math.IsNaN(f):
		s = "nan"
	case f < 0:
		s = "-inf"
	default:
		s = "inf"
	}
	if s[0] != '-' {
		if spec.HasFlag('+') {
			s = "+" + s
		} else if spec.HasFlag(' ') {
			s = " " + s
		}
	}
	if strings.IndexByte("FEGA", spec.Verb) >= 0 {
		s = strings.ToUpper(s)
	}
	return appendPadded(dst, spec, s)
}

// appendPadded writes s honouring only the width and the '-' flag.
func appendPadded(dst []byte, spec directive.Spec, s string) []byte {
	verb := "%s"
	if spec.HasWidth {
		if spec.HasFlag('-') {
			verb = fmt.Sprintf("%%-%ds", spec.Width)
		} else {
			verb = fmt.Sprintf("%%%ds", spec.Width)
		}
	}
	return fmt.Appendf(dst, verb, s)
}

func zeroSign(spec directive.Spec) string {
	switch {
	case spec.HasFlag('+'):
		return "+"
	case spec.HasFlag(' '):
		return " "
	}
	return ""
}

func mismatch(t directive.Token, arg int, want string, got Kind) *FormatError {
	return &FormatError{
		Kind:      ErrTypeMismatch,
		Offset:    t.Off,
		Directive: t.Lex,
		Arg:       arg,
		Want:      want,
		Got:       got,
	}
}

func outOfRange(t directive.Token, arg int) *FormatError {
	return &FormatError{Kind: ErrOutOfRange, Offset: t.Off, Directive: t.Lex, Arg: arg}
}
