package directive

import "fmt"

// TokKind enumerates the pieces a format string splits into.
type TokKind int

const (
	TokEOF       TokKind = iota
	TokText              // run of literal text
	TokPercent           // %%
	TokDirective         // conversion directive, see Spec
	TokIllegal           // malformed directive, see Problem
)

var tokNames = [...]string{
	TokEOF:       "EOF",
	TokText:      "Text",
	TokPercent:   "Percent",
	TokDirective: "Directive",
	TokIllegal:   "Illegal",
}

func (k TokKind) String() string {
	if k >= 0 && int(k) < len(tokNames) {
		return tokNames[k]
	}
	return fmt.Sprintf("TokKind(%d)", int(k))
}

// Problem says why a TokIllegal token is malformed.
type Problem int

const (
	ProblemNone        Problem = iota
	ProblemIncomplete          // format ends inside a directive
	ProblemUnknown             // unrecognised conversion character
	ProblemUnsupported         // recognised but refused (%n)
	ProblemRange               // width or precision too large
)

func (p Problem) String() string {
	switch p {
	case ProblemNone:
		return "none"
	case ProblemIncomplete:
		return "incomplete directive"
	case ProblemUnknown:
		return "unknown conversion"
	case ProblemUnsupported:
		return "unsupported conversion"
	case ProblemRange:
		return "width or precision out of range"
	}
	return fmt.Sprintf("Problem(%d)", int(p))
}

// Token is one piece of a format string. Off is the byte offset of the
// first byte of Lex within the format.
type Token struct {
	Kind    TokKind
	Lex     string
	Off     int
	Spec    Spec    // TokDirective only
	Problem Problem // TokIllegal only
}

// End returns the byte offset just past the token.
func (t Token) End() int { return t.Off + len(t.Lex) }

// SyntaxError reports the first illegal directive found by Parse.
type SyntaxError struct {
	Tok Token
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("offset %d: %s %q", e.Tok.Off, e.Tok.Problem, e.Tok.Lex)
}
