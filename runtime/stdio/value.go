package stdio

import (
	"fmt"
	"math"
	"strconv"

	"github.com/pkg/errors"
)

// Kind is the type tag of a Value.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindInt
	KindUint
	KindFloat
	KindString
	KindChar
	KindBool
	KindPointer
)

var kindNames = [...]string{
	KindInvalid: "invalid",
	KindInt:     "int",
	KindUint:    "uint",
	KindFloat:   "float",
	KindString:  "string",
	KindChar:    "char",
	KindBool:    "bool",
	KindPointer: "pointer",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Value is one tagged argument to a formatted print. The zero Value is
// invalid and matches no directive.
type Value struct {
	kind Kind
	bits uint64 // int, uint, char, bool and pointer payloads
	f    float64
	s    string
}

func Int(n int64) Value       { return Value{kind: KindInt, bits: uint64(n)} }
func Uint(n uint64) Value     { return Value{kind: KindUint, bits: n} }
func Float(f float64) Value   { return Value{kind: KindFloat, f: f} }
func Str(s string) Value      { return Value{kind: KindString, s: s} }
func Char(r rune) Value       { return Value{kind: KindChar, bits: uint64(int64(r))} }
func Pointer(p uintptr) Value { return Value{kind: KindPointer, bits: uint64(p)} }

func Bool(b bool) Value {
	v := Value{kind: KindBool}
	if b {
		v.bits = 1
	}
	return v
}

// Kind returns the type tag.
func (v Value) Kind() Kind { return v.kind }

// Interface returns the payload as the matching Go type: int64, uint64,
// float64, string, rune, bool or uintptr. It returns nil for an invalid Value.
func (v Value) Interface() any {
	switch v.kind {
	case KindInt:
		return int64(v.bits)
	case KindUint:
		return v.bits
	case KindFloat:
		return v.f
	case KindString:
		return v.s
	case KindChar:
		return rune(int64(v.bits))
	case KindBool:
		return v.bits != 0
	case KindPointer:
		return uintptr(v.bits)
	}
	return nil
}

func (v Value) String() string {
	switch v.kind {
	case KindString:
		return "string(" + strconv.Quote(v.s) + ")"
	case KindChar:
		return "char(" + strconv.QuoteRune(rune(int64(v.bits))) + ")"
	case KindPointer:
		return fmt.Sprintf("pointer(%#x)", v.bits)
	case KindInvalid:
		return "invalid"
	}
	return fmt.Sprintf("%s(%v)", v.kind, v.Interface())
}

// Of converts a Go scalar into a Value. Signed integers become Int,
// unsigned integers Uint, floats Float, strings and byte slices String.
// A Value is passed through. Any other type is an error.
func Of(x any) (Value, error) {
	switch x := x.(type) {
	case Value:
		return x, nil
	case int:
		return Int(int64(x)), nil
	case int8:
		return Int(int64(x)), nil
	case int16:
		return Int(int64(x)), nil
	case int32:
		return Int(int64(x)), nil
	case int64:
		return Int(x), nil
	case uint:
		return Uint(uint64(x)), nil
	case uint8:
		return Uint(uint64(x)), nil
	case uint16:
		return Uint(uint64(x)), nil
	case uint32:
		return Uint(uint64(x)), nil
	case uint64:
		return Uint(x), nil
	case uintptr:
		return Uint(uint64(x)), nil
	case float32:
		return Float(float64(x)), nil
	case float64:
		return Float(x), nil
	case string:
		return Str(x), nil
	case []byte:
		return Str(string(x)), nil
	case bool:
		return Bool(x), nil
	}
	return Value{}, errors.Errorf("stdio: unsupported argument type %T", x)
}

// Values converts each of xs with Of. The error names the first argument
// that failed.
func Values(xs ...any) ([]Value, error) {
	vs := make([]Value, len(xs))
	for i, x := range xs {
		v, err := Of(x)
		if err != nil {
			return nil, errors.Wrapf(err, "argument %d", i)
		}
		vs[i] = v
	}
	return vs, nil
}

func (v Value) isFinite() bool {
	return !math.IsInf(v.f, 0) && !math.IsNaN(v.f)
}
