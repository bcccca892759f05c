// Package cliargs turns command-line words into tagged stdio values.
package cliargs

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"

	"github.com/blinelang/bline/runtime/internal/diag"
	"github.com/blinelang/bline/runtime/internal/directive"
	"github.com/blinelang/bline/runtime/stdio"
)

// ArgError reports an argument that could not be turned into a value.
type ArgError struct {
	Code  string
	Index int
	Word  string
	Want  string
	Err   error
}

func (e *ArgError) Error() string {
	msg := fmt.Sprintf("argument %d (%q): cannot convert to %s", e.Index, e.Word, e.Want)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ArgError) Unwrap() error { return e.Err }

// Help returns the catalog help text for the error's code.
func (e *ArgError) Help() string {
	for _, key := range []string{"badword", "badjson"} {
		if ce, ok := diag.LookupArgs(key); ok && ce.ID == e.Code {
			return ce.Help
		}
	}
	return ""
}

func badWord(i int, word, want string, err error) *ArgError {
	ce := diag.MustLookup("args", "badword", "BAE0001", "cannot convert argument")
	return &ArgError{Code: ce.ID, Index: i, Word: word, Want: want, Err: err}
}

// want is what a directive expects from the word in one slot.
type want int

const (
	wantString want = iota
	wantSigned
	wantUnsigned
	wantChar
	wantFloat
	wantPointer
)

var wantNames = [...]string{
	wantString:   "string",
	wantSigned:   "int",
	wantUnsigned: "uint",
	wantChar:     "char",
	wantFloat:    "float",
	wantPointer:  "ptr",
}

func (w want) String() string { return wantNames[w] }

// Slots lists what each argument position of format expects, '*' widths
// and precisions included. It stops at the first malformed directive.
func Slots(format string) []string {
	ws := slots(format)
	out := make([]string, len(ws))
	for i, w := range ws {
		out[i] = w.String()
	}
	return out
}

func slots(format string) []want {
	// A malformed directive is left for stdio to report.
	toks, _ := directive.Directives(format)
	var ws []want
	for _, t := range toks {
		if t.Spec.WidthStar {
			ws = append(ws, wantSigned)
		}
		if t.Spec.PrecStar {
			ws = append(ws, wantSigned)
		}
		switch t.Spec.Class() {
		case directive.ClassSigned:
			ws = append(ws, wantSigned)
		case directive.ClassUnsigned:
			ws = append(ws, wantUnsigned)
		case directive.ClassChar:
			ws = append(ws, wantChar)
		case directive.ClassFloat:
			ws = append(ws, wantFloat)
		case directive.ClassPointer:
			ws = append(ws, wantPointer)
		default:
			ws = append(ws, wantString)
		}
	}
	return ws
}

// Resolve converts words into values for format. A word with a kind
// prefix (int:, uint:, float:, str:, char:, bool:, ptr:) is converted to
// that kind. Other words are converted to what their directive expects,
// like printf(1) does, and words past the last directive stay strings.
func Resolve(format string, words []string) ([]stdio.Value, error) {
	ws := slots(format)
	vals := make([]stdio.Value, len(words))
	for i, word := range words {
		if kind, rest, ok := splitPrefix(word); ok {
			v, err := parseKind(kind, rest)
			if err != nil {
				return nil, badWord(i, word, kind, err)
			}
			vals[i] = v
			continue
		}
		w := wantString
		if i < len(ws) {
			w = ws[i]
		}
		v, err := convert(w, word)
		if err != nil {
			return nil, badWord(i, word, w.String(), err)
		}
		vals[i] = v
	}
	return vals, nil
}

var prefixes = []string{"int", "uint", "float", "str", "char", "bool", "ptr"}

func splitPrefix(word string) (kind, rest string, ok bool) {
	kind, rest, ok = strings.Cut(word, ":")
	if !ok {
		return "", "", false
	}
	for _, p := range prefixes {
		if kind == p {
			return kind, rest, true
		}
	}
	return "", "", false
}

func parseKind(kind, s string) (stdio.Value, error) {
	switch kind {
	case "int":
		n, err := strconv.ParseInt(s, 0, 64)
		if err != nil {
			return stdio.Value{}, err
		}
		return stdio.Int(n), nil
	case "uint":
		n, err := strconv.ParseUint(s, 0, 64)
		if err != nil {
			return stdio.Value{}, err
		}
		return stdio.Uint(n), nil
	case "float":
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return stdio.Value{}, err
		}
		return stdio.Float(f), nil
	case "str":
		return stdio.Str(s), nil
	case "char":
		if utf8.RuneCountInString(s) != 1 {
			return stdio.Value{}, errors.New("want exactly one character")
		}
		r, _ := utf8.DecodeRuneInString(s)
		return stdio.Char(r), nil
	case "bool":
		b, err := strconv.ParseBool(s)
		if err != nil {
			return stdio.Value{}, err
		}
		return stdio.Bool(b), nil
	case "ptr":
		n, err := strconv.ParseUint(s, 0, 64)
		if err != nil {
			return stdio.Value{}, err
		}
		return stdio.Pointer(uintptr(n)), nil
	}
	return stdio.Value{}, errors.Errorf("unknown kind %q", kind)
}

func convert(w want, word string) (stdio.Value, error) {
	switch w {
	case wantSigned, wantUnsigned:
		// 'a and "a give the character code, as in printf(1).
		if len(word) > 1 && (word[0] == '\'' || word[0] == '"') {
			r, _ := utf8.DecodeRuneInString(word[1:])
			return stdio.Char(r), nil
		}
		if w == wantUnsigned {
			if n, err := strconv.ParseUint(word, 0, 64); err == nil {
				return stdio.Uint(n), nil
			}
			return parseKind("int", word)
		}
		if n, err := strconv.ParseInt(word, 0, 64); err == nil {
			return stdio.Int(n), nil
		}
		return parseKind("uint", word)
	case wantChar:
		if word == "" {
			return stdio.Value{}, errors.New("empty word")
		}
		r, _ := utf8.DecodeRuneInString(word)
		return stdio.Char(r), nil
	case wantFloat:
		return parseKind("float", word)
	case wantPointer:
		return parseKind("ptr", word)
	}
	return stdio.Str(word), nil
}
