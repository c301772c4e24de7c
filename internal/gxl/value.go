package gxl

import (
	"strconv"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"
)

// Kind identifies which of the two GXL scalar types a Value holds.
type Kind int

const (
	KindInteger Kind = iota + 1
	KindText
)

// String returns the GXL tag name for the kind.
func (k Kind) String() string {
	switch k {
	case KindInteger:
		return "int"
	case KindText:
		return "string"
	default:
		return "invalid"
	}
}

// Value is a typed attribute value. Only IntValue and TextValue construct
// one, so a Value is always exactly one of the two kinds.
type Value struct {
	kind Kind
	val  cty.Value
}

// IntValue wraps an integer.
func IntValue(n int64) Value {
	return Value{kind: KindInteger, val: cty.NumberIntVal(n)}
}

// TextValue wraps a string.
func TextValue(s string) Value {
	return Value{kind: KindText, val: cty.StringVal(s)}
}

// Kind reports which variant the value holds. The zero Value has no kind.
func (v Value) Kind() Kind {
	return v.kind
}

// Int returns the integer held by v, and false if v is not an integer.
func (v Value) Int() (int64, bool) {
	if v.kind != KindInteger {
		return 0, false
	}
	var n int64
	if err := gocty.FromCtyValue(v.val, &n); err != nil {
		return 0, false
	}
	return n, true
}

// Text returns the string held by v, and false if v is not text.
func (v Value) Text() (string, bool) {
	if v.kind != KindText {
		return "", false
	}
	return v.val.AsString(), true
}

// String renders the value the way it appeared in the document.
func (v Value) String() string {
	switch v.kind {
	case KindInteger:
		n, _ := v.Int()
		return strconv.FormatInt(n, 10)
	case KindText:
		return v.val.AsString()
	default:
		return ""
	}
}
