package directive

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func kindsFrom(format string) []TokKind {
	sc := New(format)
	var kinds []TokKind
	for {
		t := sc.Next()
		kinds = append(kinds, t.Kind)
		if t.Kind == TokEOF || t.Kind == TokIllegal {
			break
		}
	}
	return kinds
}

func TestEmptyFormat(t *testing.T) {
	assert.Equal(t, []TokKind{TokEOF}, kindsFrom(""))
}

func TestNoDirectives(t *testing.T) {
	toks, err := Parse("no directives here")
	require.NoError(t, err)
	require.Len(t, toks, 1)
	assert.Equal(t, TokText, toks[0].Kind)
	assert.Equal(t, "no directives here", toks[0].Lex)
	assert.Equal(t, 0, toks[0].Off)
}

func TestTextAndDirectives(t *testing.T) {
	assert.Equal(t,
		[]TokKind{TokDirective, TokText, TokDirective, TokText, TokDirective, TokText, TokEOF},
		kindsFrom("%d + %d = %d\n"))
	assert.Equal(t,
		[]TokKind{TokText, TokPercent, TokText, TokEOF},
		kindsFrom("100%% sure"))
}

func TestOffsets(t *testing.T) {
	toks, err := Parse("Hello, %s!\n")
	require.NoError(t, err)
	require.Len(t, toks, 3)
	assert.Equal(t, "%s", toks[1].Lex)
	assert.Equal(t, 7, toks[1].Off)
	assert.Equal(t, 9, toks[1].End())
	assert.Equal(t, 9, toks[2].Off)
}

func TestEOFIsSticky(t *testing.T) {
	sc := New("x")
	assert.Equal(t, TokText, sc.Next().Kind)
	assert.Equal(t, TokEOF, sc.Next().Kind)
	assert.Equal(t, TokEOF, sc.Next().Kind)
}

func TestSpecFields(t *testing.T) {
	cases := []struct {
		name   string
		format string
		want   Spec
	}{
		{"plain", "%d", Spec{Verb: 'd'}},
		{"flags", "%-+ 0#x", Spec{Flags: "-+ 0#", Verb: 'x'}},
		{"width", "%12s", Spec{Width: 12, HasWidth: true, Verb: 's'}},
		{"precision", "%.3f", Spec{Prec: 3, HasPrec: true, Verb: 'f'}},
		{"empty precision", "%.e", Spec{HasPrec: true, Verb: 'e'}},
		{"stars", "%*.*g", Spec{HasWidth: true, WidthStar: true, HasPrec: true, PrecStar: true, Verb: 'g'}},
		{"hh", "%hhd", Spec{Length: "hh", Verb: 'd'}},
		{"ll", "%llu", Spec{Length: "ll", Verb: 'u'}},
		{"z", "%zx", Spec{Length: "z", Verb: 'x'}},
		{"everything", "%-08.2Lf", Spec{Flags: "-0", Width: 8, HasWidth: true, Prec: 2, HasPrec: true, Length: "L", Verb: 'f'}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			toks, err := Parse(c.format)
			require.NoError(t, err)
			require.Len(t, toks, 1)
			assert.Equal(t, TokDirective, toks[0].Kind)
			assert.Equal(t, c.format, toks[0].Lex)
			assert.Equal(t, c.want, toks[0].Spec)
		})
	}
}

func TestIllegal(t *testing.T) {
	cases := []struct {
		name    string
		format  string
		lex     string
		off     int
		problem Problem
	}{
		{"lone percent", "abc%", "%", 3, ProblemIncomplete},
		{"flags only", "%-", "%-", 0, ProblemIncomplete},
		{"width only", "x %5", "%5", 2, ProblemIncomplete},
		{"unknown", "%y!", "%y", 0, ProblemUnknown},
		{"unknown multibyte", "%é", "%é", 0, ProblemUnknown},
		{"n refused", "count%n", "%n", 5, ProblemUnsupported},
		{"huge width", "%99999999d", "%99999999", 0, ProblemRange},
		{"huge precision", "%.2000000f", "%.2000000", 0, ProblemRange},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := Parse(c.format)
			require.Error(t, err)
			var se *SyntaxError
			require.ErrorAs(t, err, &se)
			assert.Equal(t, TokIllegal, se.Tok.Kind)
			assert.Equal(t, c.lex, se.Tok.Lex)
			assert.Equal(t, c.off, se.Tok.Off)
			assert.Equal(t, c.problem, se.Tok.Problem)
		})
	}
}

func TestParseKeepsTokensBeforeError(t *testing.T) {
	toks, err := Parse("a%db%")
	require.Error(t, err)
	assert.Len(t, toks, 3)
}

func TestDirectives(t *testing.T) {
	ds, err := Directives("%s has %d%% of %5.1f")
	require.NoError(t, err)
	require.Len(t, ds, 3)
	assert.Equal(t, byte('s'), ds[0].Spec.Verb)
	assert.Equal(t, byte('d'), ds[1].Spec.Verb)
	assert.Equal(t, byte('f'), ds[2].Spec.Verb)
}
