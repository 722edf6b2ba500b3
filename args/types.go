// Package args implements a small command-line argument registry and parser.
//
// Callers declare typed options (flags, strings, ints, floats), parse an
// argv-style token vector once, then query results through typed accessors.
// Validation is lazy: a validator attached to a definition runs on the first
// accessor touch and its outcome is memoized.
package args

import "strconv"

// Type identifies the value variant a definition accepts.
type Type string

const (
	TypeFlag   Type = "flag"
	TypeString Type = "string"
	TypeInt    Type = "int"
	TypeFloat  Type = "float"
)

// Placeholder returns the help-text placeholder for value-carrying types.
// Flags have no placeholder.
func (t Type) Placeholder() string {
	switch t {
	case TypeString:
		return "<string>"
	case TypeInt:
		return "<int>"
	case TypeFloat:
		return "<float>"
	case TypeFlag:
		return ""
	default:
		return ""
	}
}

// Value is a tagged union holding exactly one of bool, string, int32 or
// float32, selected by its kind. The payload is only reachable through the
// kind-checked getters, so a mismatched read yields the zero value instead
// of reinterpreted bits.
type Value struct {
	kind Type
	b    bool
	s    string
	i    int32
	f    float32
}

// BoolValue builds a flag value.
func BoolValue(v bool) Value { return Value{kind: TypeFlag, b: v} }

// StringValue builds a string value. The text is copied on store by the
// parser, so the Value itself may alias caller memory.
func StringValue(v string) Value { return Value{kind: TypeString, s: v} }

// IntValue builds a 32-bit integer value.
func IntValue(v int32) Value { return Value{kind: TypeInt, i: v} }

// FloatValue builds a 32-bit float value.
func FloatValue(v float32) Value { return Value{kind: TypeFloat, f: v} }

// Kind returns the live variant tag.
func (v Value) Kind() Type { return v.kind }

// Bool returns the flag payload, or false when the kind differs.
func (v Value) Bool() bool {
	if v.kind != TypeFlag {
		return false
	}
	return v.b
}

// String returns the string payload, or "" when the kind differs.
func (v Value) String() string {
	if v.kind != TypeString {
		return ""
	}
	return v.s
}

// Int returns the integer payload, or 0 when the kind differs.
func (v Value) Int() int32 {
	if v.kind != TypeInt {
		return 0
	}
	return v.i
}

// Float returns the float payload, or 0 when the kind differs.
func (v Value) Float() float32 {
	if v.kind != TypeFloat {
		return 0
	}
	return v.f
}

// Display renders the payload for diagnostics and validator messages.
func (v Value) Display() string {
	switch v.kind {
	case TypeFlag:
		return strconv.FormatBool(v.b)
	case TypeString:
		return v.s
	case TypeInt:
		return strconv.FormatInt(int64(v.i), 10)
	case TypeFloat:
		return strconv.FormatFloat(float64(v.f), 'g', -1, 32)
	default:
		return ""
	}
}
