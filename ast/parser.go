// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package ast

import (
	"errors"
	"io"

	"github.com/creachadair/jsax"
)

// Parse parses and returns the JSON document from r, with default parser
// settings.
func Parse(r io.Reader) (Value, error) { return ParseWith(jsax.NewParser(r)) }

// ParseWith parses and returns the JSON document from p. Unlike the Parser,
// ParseWith reports an error if the input ends inside an unfinished object or
// array, or contains no value at all.
func ParseWith(p *jsax.Parser) (Value, error) {
	h := new(parseHandler)
	if err := p.Parse(h); err != nil {
		return nil, err
	} else if h.err != nil {
		return nil, h.err
	} else if h.root == nil {
		return nil, errors.New("no value found")
	}
	return h.root, nil
}

// A parseHandler implements the jsax.Handler interface to construct abstract
// syntax trees for JSON values.
type parseHandler struct {
	jsax.NopHandler

	stk  []Value
	root Value
	err  error
	tbuf [][]byte
}

// intern interns a copy of text and returns a slice of the copy.  Allocations
// are batched to reduce allocation overhead.
func (h *parseHandler) intern(text []byte) []byte {
	const bufBlockBytes = 8192

	if len(text) >= bufBlockBytes {
		return append([]byte(nil), text...)
	}

	i := 0
	for i < len(h.tbuf) {
		if len(h.tbuf[i])+len(text) < cap(h.tbuf[i]) {
			break
		}
		i++
	}
	if i == len(h.tbuf) {
		h.tbuf = append(h.tbuf, make([]byte, 0, bufBlockBytes))
	}
	s := len(h.tbuf[i])
	h.tbuf[i] = append(h.tbuf[i], text...)
	return h.tbuf[i][s : s+len(text)]
}

// reduceValue attaches a completed value to the object member or array atop
// the stack, or records it as the root.
func (h *parseHandler) reduceValue(v Value) {
	if len(h.stk) == 0 {
		h.root = v
		return
	}
	switch top := h.top().(type) {
	case *Member:
		top.Value = v
		h.pop()
	case *Array:
		top.Values = append(top.Values, v)
	}
}

func (h *parseHandler) top() Value { return h.stk[len(h.stk)-1] }

func (h *parseHandler) pop() Value {
	last := h.top()
	h.stk = h.stk[:len(h.stk)-1]
	return last
}

func (h *parseHandler) push(v Value) { h.stk = append(h.stk, v) }

func (h *parseHandler) ObjectStart() { h.push(new(Object)) }
func (h *parseHandler) ObjectEnd()   { h.reduceValue(h.pop()) }
func (h *parseHandler) ArrayStart()  { h.push(new(Array)) }
func (h *parseHandler) ArrayEnd()    { h.reduceValue(h.pop()) }

func (h *parseHandler) Key(text []byte) {
	// The object this member belongs to is atop the stack.  Add the new member
	// to its collection eagerly, so that when the value is known we only need
	// to fill it in.
	key, err := jsax.Unquote(text)
	if err != nil && h.err == nil {
		h.err = err
	}
	m := &Member{Key: string(key), raw: h.intern(text)}
	obj := h.top().(*Object)
	obj.Members = append(obj.Members, m)
	h.push(m)
}

func (h *parseHandler) Value(v jsax.Value) {
	h.reduceValue(&Datum{Value: jsax.NewValue(v.Kind(), h.intern(v.Raw()))})
}

func (h *parseHandler) Error(err *jsax.ParseError) {
	if h.err == nil {
		h.err = err
	}
}
