package cliargs

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/tidwall/gjson"

	"github.com/blinelang/bline/runtime/internal/diag"
	"github.com/blinelang/bline/runtime/stdio"
)

func badJSON(i int, raw string, err error) *ArgError {
	ce := diag.MustLookup("args", "badjson", "BAE0002", "invalid JSON argument list")
	return &ArgError{Code: ce.ID, Index: i, Word: raw, Want: "a value", Err: err}
}

// FromJSON reads an argument list written as a JSON array. Strings,
// booleans and numbers map to String, Bool and Int or Float (a number
// with a fraction or exponent is a Float). A one-key object selects the
// kind explicitly: {"char": "x"}, {"uint": 7}, {"ptr": "0x1000"}.
func FromJSON(src string) ([]stdio.Value, error) {
	if !gjson.Valid(src) {
		return nil, badJSON(-1, src, errors.New("not valid JSON"))
	}
	root := gjson.Parse(src)
	if !root.IsArray() {
		return nil, badJSON(-1, src, errors.New("not an array"))
	}
	var (
		vals []stdio.Value
		err  error
	)
	i := 0
	root.ForEach(func(_, elem gjson.Result) bool {
		var v stdio.Value
		v, err = fromResult(elem)
		if err != nil {
			err = badJSON(i, elem.Raw, err)
			return false
		}
		vals = append(vals, v)
		i++
		return true
	})
	if err != nil {
		return nil, err
	}
	return vals, nil
}

func fromResult(r gjson.Result) (stdio.Value, error) {
	switch r.Type {
	case gjson.String:
		return stdio.Str(r.Str), nil
	case gjson.True, gjson.False:
		return stdio.Bool(r.Bool()), nil
	case gjson.Number:
		return fromNumber(r.Raw)
	case gjson.JSON:
		if !r.IsObject() {
			return stdio.Value{}, errors.New("nested arrays are not arguments")
		}
		return fromObject(r)
	}
	return stdio.Value{}, errors.New("null is not an argument")
}

func fromNumber(raw string) (stdio.Value, error) {
	if strings.ContainsAny(raw, ".eE") {
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return stdio.Value{}, err
		}
		return stdio.Float(f), nil
	}
	if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return stdio.Int(n), nil
	}
	n, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return stdio.Value{}, err
	}
	return stdio.Uint(n), nil
}

func fromObject(r gjson.Result) (stdio.Value, error) {
	m := r.Map()
	if len(m) != 1 {
		return stdio.Value{}, errors.New("a typed argument object needs exactly one key")
	}
	for kind, val := range m {
		if _, _, ok := splitPrefix(kind + ":"); !ok {
			return stdio.Value{}, errors.Errorf("unknown kind %q", kind)
		}
		word := val.Raw
		if val.Type == gjson.String {
			word = val.Str
		}
		return parseKind(kind, word)
	}
	return stdio.Value{}, nil
}
