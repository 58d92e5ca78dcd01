// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jsax

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
)

// BufferSize is the size in bytes of the chunks a Parser reads from its input.
const BufferSize = 100 << 10

// A Parser reads characters from an io.Reader and delivers parse events to a
// Handler. Each call to Parse uses a fresh Machine, so a Parser may parse
// several inputs in sequence, but it must not be used by concurrent
// goroutines.
type Parser struct {
	r       io.Reader
	buf     []byte
	strict  bool
	anyRoot bool
}

// NewParser constructs a new Parser that consumes input from r.
func NewParser(r io.Reader) *Parser { return &Parser{r: r} }

// StrictLiterals configures the parser to require (true) or not require
// (false) strict RFC 8259 syntax for literals. See [Machine.StrictLiterals].
func (p *Parser) StrictLiterals(ok bool) { p.strict = ok }

// AllowAnyRoot configures the parser to accept (true) or reject (false) an
// array or scalar as the root value. See [Machine.AllowAnyRoot].
func (p *Parser) AllowAnyRoot(ok bool) { p.anyRoot = ok }

// Parse parses the input and delivers events to h until either a fatal error
// occurs or the input is exhausted. In case of a syntax error, the returned
// error has type [*ParseError]. If the input ends inside an unfinished object
// or array, h.Error is called and Parse returns nil.
func (p *Parser) Parse(h Handler) error { return p.ParseContext(context.Background(), h) }

// ParseContext behaves as Parse, but stops reading input and returns the
// context's error if ctx ends before the input is exhausted. The context is
// checked between chunks of input.
func (p *Parser) ParseContext(ctx context.Context, h Handler) error {
	m := NewMachine(h)
	m.StrictLiterals(p.strict)
	m.AllowAnyRoot(p.anyRoot)
	if p.buf == nil {
		p.buf = make([]byte, BufferSize)
	}
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		nr, err := p.r.Read(p.buf)
		if nr > 0 {
			if _, werr := m.Write(p.buf[:nr]); werr != nil {
				return werr
			}
		}
		if err == io.EOF {
			return m.Close()
		} else if err != nil {
			return fmt.Errorf("read: %w", err)
		}
	}
}

// ParseString parses the JSON text in s with default settings, delivering
// events to h.
func ParseString(s string, h Handler) error {
	return NewParser(strings.NewReader(s)).Parse(h)
}

// ParseBytes parses the JSON text in data with default settings, delivering
// events to h.
func ParseBytes(data []byte, h Handler) error {
	return NewParser(bytes.NewReader(data)).Parse(h)
}

// ParseFile parses the contents of the named file with default settings,
// delivering events to h.
func ParseFile(path string, h Handler) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return NewParser(f).Parse(h)
}
