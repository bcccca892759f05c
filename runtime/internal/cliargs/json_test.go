package cliargs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blinelang/bline/runtime/stdio"
)

func TestFromJSON(t *testing.T) {
	vals, err := FromJSON(`["world", 3, -4, 1.5, 2e3, true, false, 18446744073709551615,
		{"char": "x"}, {"uint": 7}, {"ptr": "0x1000"}, {"str": 5}, {"bool": true}]`)
	require.NoError(t, err)
	assert.Equal(t, []stdio.Value{
		stdio.Str("world"),
		stdio.Int(3),
		stdio.Int(-4),
		stdio.Float(1.5),
		stdio.Float(2000),
		stdio.Bool(true),
		stdio.Bool(false),
		stdio.Uint(18446744073709551615),
		stdio.Char('x'),
		stdio.Uint(7),
		stdio.Pointer(0x1000),
		stdio.Str("5"),
		stdio.Bool(true),
	}, vals)
}

func TestFromJSONEmpty(t *testing.T) {
	vals, err := FromJSON(`[]`)
	require.NoError(t, err)
	assert.Empty(t, vals)
}

func TestFromJSONErrors(t *testing.T) {
	cases := []struct {
		src   string
		index int
	}{
		{`[1,`, -1},
		{`{"a": 1}`, -1},
		{`"str"`, -1},
		{`[1, null]`, 1},
		{`[[1]]`, 0},
		{`["a", {"char": "xy"}]`, 1},
		{`[{"int": 1, "uint": 2}]`, 0},
		{`[{"weird": 1}]`, 0},
	}
	for _, c := range cases {
		_, err := FromJSON(c.src)
		require.Error(t, err, c.src)
		var ae *ArgError
		require.ErrorAs(t, err, &ae, c.src)
		assert.Equal(t, "BAE0002", ae.Code, c.src)
		assert.Equal(t, c.index, ae.Index, c.src)
	}
}
