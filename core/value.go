package core

import "strconv"

// Kind identifies which variant a Value holds.
type Kind int

const (
	KindUndefined Kind = iota
	KindBool
	KindString
	KindNumber
)

// String returns the kind's schema-facing name.
func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	default:
		return "undefined"
	}
}

// Value is the tagged union flowing through parsing, defaults and
// validation: exactly one of bool, string or number, or Undefined.
// Undefined is distinct from Bool(false), String("") and Number(0), so an
// unset option can never be mistaken for a zero value.
type Value struct {
	kind Kind
	b    bool
	str  string
	num  float64
}

// Undefined is the absent value. It is also the zero Value.
var Undefined = Value{}

// Bool returns a boolean Value.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// String returns a string Value.
func String(s string) Value { return Value{kind: KindString, str: s} }

// Number returns a numeric Value.
func Number(n float64) Value { return Value{kind: KindNumber, num: n} }

// Kind reports which variant v holds.
func (v Value) Kind() Kind { return v.kind }

// IsUndefined reports whether v is the absent value.
func (v Value) IsUndefined() bool { return v.kind == KindUndefined }

// AsBool returns the boolean payload, or false for any other kind.
func (v Value) AsBool() bool { return v.b }

// AsString returns the string payload, or "" for any other kind.
func (v Value) AsString() string { return v.str }

// AsNumber returns the numeric payload, or 0 for any other kind.
func (v Value) AsNumber() float64 { return v.num }

// Equal reports value equality: same kind, same payload.
func (v Value) Equal(o Value) bool { return v == o }

// String renders v for user-facing messages.
func (v Value) String() string {
	switch v.kind {
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindString:
		return v.str
	case KindNumber:
		return strconv.FormatFloat(v.num, 'g', -1, 64)
	default:
		return "<undefined>"
	}
}
