package directive

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

const (
	flagChars = "-+ 0#"
	convChars = "diuoxXcsfFeEgGaAp"
)

// Scanner splits a printf-style format string into tokens.
type Scanner struct {
	src string
	i   int
}

func New(src string) *Scanner {
	return &Scanner{src: src}
}

func (sc *Scanner) atEOF() bool { return sc.i >= len(sc.src) }

func (sc *Scanner) peek() (byte, bool) {
	if sc.atEOF() {
		return 0, false
	}
	return sc.src[sc.i], true
}

func (sc *Scanner) make(kind TokKind, start int) Token {
	return Token{Kind: kind, Lex: sc.src[start:sc.i], Off: start}
}

func (sc *Scanner) illegal(start int, p Problem) Token {
	t := sc.make(TokIllegal, start)
	t.Problem = p
	return t
}

// Next returns the next token. After the end of input it keeps
// returning TokEOF.
func (sc *Scanner) Next() Token {
	if sc.atEOF() {
		return Token{Kind: TokEOF, Off: len(sc.src)}
	}
	start := sc.i

	if sc.src[sc.i] != '%' {
		if n := strings.IndexByte(sc.src[sc.i:], '%'); n >= 0 {
			sc.i += n
		} else {
			sc.i = len(sc.src)
		}
		return sc.make(TokText, start)
	}

	sc.i++ // '%'
	if c, ok := sc.peek(); ok && c == '%' {
		sc.i++
		return sc.make(TokPercent, start)
	}

	var spec Spec
	for {
		c, ok := sc.peek()
		if !ok || strings.IndexByte(flagChars, c) < 0 {
			break
		}
		spec.Flags += string(c)
		sc.i++
	}

	if c, ok := sc.peek(); ok && c == '*' {
		sc.i++
		spec.HasWidth, spec.WidthStar = true, true
	} else if digits := sc.scanDigits(); digits != "" {
		w, ok := parseBound(digits)
		if !ok {
			return sc.illegal(start, ProblemRange)
		}
		spec.Width, spec.HasWidth = w, true
	}

	if c, ok := sc.peek(); ok && c == '.' {
		sc.i++
		spec.HasPrec = true
		if c, ok := sc.peek(); ok && c == '*' {
			sc.i++
			spec.PrecStar = true
		} else if digits := sc.scanDigits(); digits != "" {
			p, ok := parseBound(digits)
			if !ok {
				return sc.illegal(start, ProblemRange)
			}
			spec.Prec = p
		}
	}

	spec.Length = sc.scanLength()

	c, ok := sc.peek()
	if !ok {
		return sc.illegal(start, ProblemIncomplete)
	}
	switch {
	case strings.IndexByte(convChars, c) >= 0:
		sc.i++
		spec.Verb = c
		t := sc.make(TokDirective, start)
		t.Spec = spec
		return t
	case c == 'n':
		sc.i++
		return sc.illegal(start, ProblemUnsupported)
	default:
		_, size := utf8.DecodeRuneInString(sc.src[sc.i:])
		sc.i += size
		return sc.illegal(start, ProblemUnknown)
	}
}

func (sc *Scanner) scanDigits() string {
	start := sc.i
	for {
		c, ok := sc.peek()
		if !ok || c < '0' || c > '9' {
			break
		}
		sc.i++
	}
	return sc.src[start:sc.i]
}

func (sc *Scanner) scanLength() string {
	rest := sc.src[sc.i:]
	for _, l := range []string{"hh", "ll", "h", "l", "L", "q", "j", "z", "t"} {
		if strings.HasPrefix(rest, l) {
			sc.i += len(l)
			return l
		}
	}
	return ""
}

func parseBound(digits string) (int, bool) {
	n, err := strconv.Atoi(digits)
	if err != nil || n > MaxWidth {
		return 0, false
	}
	return n, true
}

// Parse scans the whole format. It stops at the first illegal directive
// and returns the tokens before it together with a *SyntaxError.
func Parse(format string) ([]Token, error) {
	sc := New(format)
	var toks []Token
	for {
		t := sc.Next()
		switch t.Kind {
		case TokEOF:
			return toks, nil
		case TokIllegal:
			return toks, &SyntaxError{Tok: t}
		}
		toks = append(toks, t)
	}
}

// Directives returns only the conversion directives of format.
func Directives(format string) ([]Token, error) {
	toks, err := Parse(format)
	out := toks[:0]
	for _, t := range toks {
		if t.Kind == TokDirective {
			out = append(out, t)
		}
	}
	return out, err
}
