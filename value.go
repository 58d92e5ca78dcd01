// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jsax

import (
	"fmt"

	"go4.org/mem"
)

// Kind is the type of a primitive JSON value.
type Kind byte

// Constants defining the valid Kind values.
const (
	Invalid Kind = iota // invalid kind
	Number              // number: integer or floating point
	Boolean             // constant: true or false
	Null                // constant: null
	Text                // string, without its quotation marks
)

var kindStr = [...]string{
	Invalid: "invalid",
	Number:  "number",
	Boolean: "boolean",
	Null:    "null",
	Text:    "text",
}

func (k Kind) String() string {
	v := int(k)
	if v >= len(kindStr) {
		return kindStr[Invalid]
	}
	return kindStr[v]
}

// A Value is a complete non-container JSON value. It retains the raw lexical
// text of the value exactly as it appeared in the input. For Text values the
// enclosing quotation marks are removed, but escape sequences are not
// decoded.
//
// The Value passed to a Handler refers to the parser's internal buffer and is
// only valid for the duration of the call. Use Clone to retain it.
type Value struct {
	kind Kind
	raw  []byte
}

// NewValue constructs a Value of the given kind from raw text. It does not
// check that raw is valid for kind.
func NewValue(kind Kind, raw []byte) Value { return Value{kind: kind, raw: raw} }

// Kind reports the kind of v.
func (v Value) Kind() Kind { return v.kind }

// Raw returns a view of the undecoded text of v.
func (v Value) Raw() []byte { return v.raw }

// Clone returns a copy of v that does not share storage with the parser.
func (v Value) Clone() Value {
	return Value{kind: v.kind, raw: append([]byte(nil), v.raw...)}
}

// String returns a copy of the raw text of v.
func (v Value) String() string { return string(v.raw) }

// Float64 decodes a Number value as a float64.
func (v Value) Float64() (float64, error) {
	if v.kind != Number {
		return 0, v.kindError(Number)
	}
	return mem.ParseFloat(mem.B(v.raw), 64)
}

// Int64 decodes a Number value as an int64. It reports an error if the number
// has a fraction or exponent, or is out of range.
func (v Value) Int64() (int64, error) {
	if v.kind != Number {
		return 0, v.kindError(Number)
	}
	return mem.ParseInt(mem.B(v.raw), 10, 64)
}

// Bool decodes a Boolean value. The comparison ignores case, so "TRUE" and
// "True" both decode as true.
func (v Value) Bool() (bool, error) {
	if v.kind != Boolean {
		return false, v.kindError(Boolean)
	}
	switch raw := mem.B(v.raw); {
	case mem.EqualFold(raw, mem.S("true")):
		return true, nil
	case mem.EqualFold(raw, mem.S("false")):
		return false, nil
	}
	return false, fmt.Errorf("invalid boolean %q", v.raw)
}

// IsNull reports whether v is a Null value.
func (v Value) IsNull() bool { return v.kind == Null }

// Unquote decodes the escape sequences of a Text value, including \uXXXX
// escapes. Invalid escapes are replaced by the Unicode replacement rune.
func (v Value) Unquote() ([]byte, error) {
	if v.kind != Text {
		return nil, v.kindError(Text)
	}
	return Unquote(v.raw)
}

func (v Value) kindError(want Kind) error {
	return fmt.Errorf("value %q is %v, not %v", v.raw, v.kind, want)
}
