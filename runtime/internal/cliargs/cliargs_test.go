package cliargs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blinelang/bline/runtime/stdio"
)

func TestSlots(t *testing.T) {
	assert.Equal(t,
		[]string{"string", "int", "uint", "char", "float", "ptr"},
		Slots("%s %d %x %c %g %p"))
	assert.Equal(t, []string{"int", "int", "string"}, Slots("%*.*s"))
	assert.Empty(t, Slots("no directives"))
	assert.Equal(t, []string{"int"}, Slots("%d then %y %s"))
}

func TestResolveByDirective(t *testing.T) {
	vals, err := Resolve("%s %d %u %c %f %p", []string{"world", "-3", "0x10", "xyz", "1.5", "4096"})
	require.NoError(t, err)
	assert.Equal(t, []stdio.Value{
		stdio.Str("world"),
		stdio.Int(-3),
		stdio.Uint(16),
		stdio.Char('x'),
		stdio.Float(1.5),
		stdio.Pointer(4096),
	}, vals)
}

func TestResolveEndToEnd(t *testing.T) {
	vals, err := Resolve("%d + %d = %d\n", []string{"2", "3", "5"})
	require.NoError(t, err)
	s, err := stdio.Sprintf("%d + %d = %d\n", vals...)
	require.NoError(t, err)
	assert.Equal(t, "2 + 3 = 5\n", s)
}

func TestResolveFallbacks(t *testing.T) {
	vals, err := Resolve("%d %u %x", []string{"18446744073709551615", "-1", "'A"})
	require.NoError(t, err)
	assert.Equal(t, []stdio.Value{
		stdio.Uint(18446744073709551615),
		stdio.Int(-1),
		stdio.Char('A'),
	}, vals)
}

func TestResolvePrefixes(t *testing.T) {
	vals, err := Resolve("%s", []string{
		"int:7", "uint:8", "float:2.5", "str:int:5", "char:é", "bool:true", "ptr:0x20", "http://x",
	})
	require.NoError(t, err)
	assert.Equal(t, []stdio.Value{
		stdio.Int(7),
		stdio.Uint(8),
		stdio.Float(2.5),
		stdio.Str("int:5"),
		stdio.Char('é'),
		stdio.Bool(true),
		stdio.Pointer(0x20),
		stdio.Str("http://x"),
	}, vals)
}

func TestResolveExtraWordsAreStrings(t *testing.T) {
	vals, err := Resolve("%d", []string{"1", "2"})
	require.NoError(t, err)
	assert.Equal(t, []stdio.Value{stdio.Int(1), stdio.Str("2")}, vals)
}

func TestResolveErrors(t *testing.T) {
	cases := []struct {
		format string
		words  []string
		index  int
		want   string
	}{
		{"%d", []string{"three"}, 0, "int"},
		{"%s %f", []string{"a", "x"}, 1, "float"},
		{"%c", []string{""}, 0, "char"},
		{"%s", []string{"char:ab"}, 0, "char"},
		{"%s", []string{"bool:maybe"}, 0, "bool"},
		{"%p", []string{"-1"}, 0, "ptr"},
	}
	for _, c := range cases {
		_, err := Resolve(c.format, c.words)
		require.Error(t, err, c.words)
		var ae *ArgError
		require.ErrorAs(t, err, &ae)
		assert.Equal(t, "BAE0001", ae.Code)
		assert.Equal(t, c.index, ae.Index)
		assert.Equal(t, c.want, ae.Want)
		assert.NotEmpty(t, ae.Help())
	}
}

func TestArgErrorMessage(t *testing.T) {
	_, err := Resolve("%d", []string{"three"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `argument 0 ("three"): cannot convert to int: `)
}
