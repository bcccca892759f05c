package directive

import (
	"strconv"
	"strings"
)

// MaxWidth bounds both width and precision; fmt refuses anything larger.
const MaxWidth = 1_000_000

// Class groups conversions by the kind of argument they consume.
type Class int

const (
	ClassNone     Class = iota
	ClassSigned         // d i
	ClassUnsigned       // u o x X
	ClassChar           // c
	ClassString         // s
	ClassFloat          // f F e E g G a A
	ClassPointer        // p
)

// Spec is a parsed %[flags][width][.precision][length]conversion directive.
type Spec struct {
	Flags     string
	Width     int
	HasWidth  bool
	WidthStar bool
	Prec      int
	HasPrec   bool
	PrecStar  bool
	Length    string
	Verb      byte
}

// Class reports what kind of argument the conversion consumes.
func (s Spec) Class() Class {
	switch s.Verb {
	case 'd', 'i':
		return ClassSigned
	case 'u', 'o', 'x', 'X':
		return ClassUnsigned
	case 'c':
		return ClassChar
	case 's':
		return ClassString
	case 'f', 'F', 'e', 'E', 'g', 'G', 'a', 'A':
		return ClassFloat
	case 'p':
		return ClassPointer
	}
	return ClassNone
}

// Args is the number of arguments the directive consumes, counting
// '*' width and precision.
func (s Spec) Args() int {
	n := 1
	if s.WidthStar {
		n++
	}
	if s.PrecStar {
		n++
	}
	return n
}

// HasFlag reports whether flag c was given.
func (s Spec) HasFlag(c byte) bool { return strings.IndexByte(s.Flags, c) >= 0 }

// WithoutFlags drops every flag listed in flags.
func (s Spec) WithoutFlags(flags string) Spec {
	var b strings.Builder
	for i := 0; i < len(s.Flags); i++ {
		if strings.IndexByte(flags, s.Flags[i]) < 0 {
			b.WriteByte(s.Flags[i])
		}
	}
	s.Flags = b.String()
	return s
}

// WithWidth replaces a '*' width with w. A negative w means left
// justification, as in C.
func (s Spec) WithWidth(w int) Spec {
	if w < 0 {
		if !s.HasFlag('-') {
			s.Flags += "-"
		}
		w = -w
	}
	s.Width, s.HasWidth, s.WidthStar = w, true, false
	return s
}

// WithPrec replaces a '*' precision with p. A negative p is taken as if
// the precision were omitted.
func (s Spec) WithPrec(p int) Spec {
	s.PrecStar = false
	if p < 0 {
		s.Prec, s.HasPrec = 0, false
		return s
	}
	s.Prec, s.HasPrec = p, true
	return s
}

// GoVerb renders the directive as a verb for the fmt package. Stars must
// already be resolved with WithWidth and WithPrec.
func (s Spec) GoVerb() string {
	var b strings.Builder
	b.WriteByte('%')
	for _, f := range []byte("-+ 0#") {
		if s.HasFlag(f) {
			b.WriteByte(f)
		}
	}
	if s.Verb == 'p' && !s.HasFlag('#') {
		b.WriteByte('#')
	}
	if s.HasWidth {
		b.WriteString(strconv.Itoa(s.Width))
	}
	if s.HasPrec {
		b.WriteByte('.')
		b.WriteString(strconv.Itoa(s.Prec))
	}
	b.WriteByte(goVerb(s.Verb))
	return b.String()
}

func goVerb(c byte) byte {
	switch c {
	case 'i', 'u':
		return 'd'
	case 'a', 'p':
		return 'x'
	case 'A':
		return 'X'
	}
	return c
}
