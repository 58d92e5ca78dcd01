// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jsax

import "io"

// Echo is a Handler that writes the source text of each event to an
// io.Writer. For input that parses without error, the output is identical to
// the input, byte for byte.
type Echo struct {
	NopHandler

	w   io.Writer
	err error
}

// NewEcho constructs an Echo that writes to w.
func NewEcho(w io.Writer) *Echo { return &Echo{w: w} }

// Err reports the first error returned by the underlying writer, if any.
func (e *Echo) Err() error { return e.err }

func (e *Echo) put(text ...[]byte) {
	for _, t := range text {
		if e.err != nil {
			return
		}
		_, e.err = e.w.Write(t)
	}
}

var (
	lBrace  = []byte("{")
	rBrace  = []byte("}")
	lSquare = []byte("[")
	rSquare = []byte("]")
	comma   = []byte(",")
	colon   = []byte(":")
	quote   = []byte(`"`)
)

func (e *Echo) ObjectStart()                    { e.put(lBrace) }
func (e *Echo) ObjectEnd()                      { e.put(rBrace) }
func (e *Echo) ArrayStart()                     { e.put(lSquare) }
func (e *Echo) ArrayEnd()                       { e.put(rSquare) }
func (e *Echo) Key(text []byte)                 { e.put(quote, text, quote) }
func (e *Echo) KeyValueSeparator()              { e.put(colon) }
func (e *Echo) KeyValuePairSeparator()          { e.put(comma) }
func (e *Echo) ArrayElementSeparator()          { e.put(comma) }
func (e *Echo) IgnorableWhiteSpace(text []byte) { e.put(text) }

func (e *Echo) Value(v Value) {
	if v.Kind() == Text {
		e.put(quote, v.Raw(), quote)
	} else {
		e.put(v.Raw())
	}
}
