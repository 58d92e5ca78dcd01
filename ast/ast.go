// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package ast defines an abstract syntax tree for JSON values, and a handler
// that constructs syntax trees from the events of a jsax parser.
package ast

import (
	"strings"

	"github.com/creachadair/jsax"
)

// A Value is an arbitrary JSON value, or an object member.
// The concrete type is one of *Object, *Array, *Datum, or *Member.
type Value interface {
	// JSON renders the value as compact JSON text. Keys, strings, and numbers
	// are rendered exactly as they appeared in the source.
	JSON() string

	appendJSON(*strings.Builder)
}

// An Object is a collection of key-value members.
type Object struct {
	Members []*Member
}

// Find returns the first member of o whose decoded key equals key, or nil.
func (o *Object) Find(key string) *Member {
	for _, m := range o.Members {
		if m.Key == key {
			return m
		}
	}
	return nil
}

// JSON satisfies the Value interface.
func (o *Object) JSON() string { return render(o) }

func (o *Object) appendJSON(sb *strings.Builder) {
	sb.WriteByte('{')
	for i, m := range o.Members {
		if i > 0 {
			sb.WriteByte(',')
		}
		m.appendJSON(sb)
	}
	sb.WriteByte('}')
}

// A Member is a single key-value pair belonging to an Object.
type Member struct {
	Key   string // the decoded key
	Value Value

	raw []byte // the key as written, without quotes
}

// RawKey returns the key of m as it appeared in the source, without quotes.
func (m *Member) RawKey() string { return string(m.raw) }

// JSON satisfies the Value interface. A member renders as "key":value, and a
// member whose value is not yet known renders its value as null.
func (m *Member) JSON() string { return render(m) }

func (m *Member) appendJSON(sb *strings.Builder) {
	sb.WriteByte('"')
	sb.Write(m.raw)
	sb.WriteString(`":`)
	if m.Value == nil {
		sb.WriteString("null")
	} else {
		m.Value.appendJSON(sb)
	}
}

// An Array is a sequence of values.
type Array struct {
	Values []Value
}

// JSON satisfies the Value interface.
func (a *Array) JSON() string { return render(a) }

func (a *Array) appendJSON(sb *strings.Builder) {
	sb.WriteByte('[')
	for i, v := range a.Values {
		if i > 0 {
			sb.WriteByte(',')
		}
		v.appendJSON(sb)
	}
	sb.WriteByte(']')
}

// A Datum is a string, number, Boolean, or null value. The methods of the
// embedded jsax.Value decode its text.
type Datum struct {
	jsax.Value
}

// JSON satisfies the Value interface.
func (d *Datum) JSON() string { return render(d) }

func (d *Datum) appendJSON(sb *strings.Builder) {
	if d.Kind() == jsax.Text {
		sb.WriteByte('"')
		sb.Write(d.Raw())
		sb.WriteByte('"')
	} else {
		sb.Write(d.Raw())
	}
}

func render(v Value) string {
	var sb strings.Builder
	v.appendJSON(&sb)
	return sb.String()
}
