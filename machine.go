// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jsax

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"go4.org/mem"
)

// A Machine is a push-style JSON parser. Input is delivered to the machine by
// calling Write, and the end of input is signaled by calling Close. The
// machine reports the structure of the input by calling methods on its
// Handler as each element is recognized.
//
// A Machine holds the state of a single parse, and must not be shared among
// concurrent goroutines. A Machine implements io.WriteCloser, so a driver may
// use io.Copy to feed it.
type Machine struct {
	h       Handler
	strict  bool // require lowercase constants and RFC 8259 numbers
	anyRoot bool // accept any value at the root, not only an object

	stk  []State // never empty; stk[0] == InDocument
	last State   // the last construct completed in the current scope
	buf  []byte  // pending whitespace or token text
	esc  bool    // the previous string byte was an unescaped backslash
	hex  int     // hex digits still owed to a \u escape (strict only)

	n, off    int // bytes consumed; offset of the current byte
	line, col int

	started, closed bool
	err             error // sticky fatal error
}

// NewMachine constructs a new Machine that delivers events to h.
func NewMachine(h Handler) *Machine {
	return &Machine{h: h, stk: []State{InDocument}, line: 1}
}

// StrictLiterals configures the machine to require (true) or not require
// (false) strict RFC 8259 syntax for literals. By default the constants null,
// true, and false are matched without regard to case, and any text accepted
// by strconv.ParseFloat is accepted as a number. In strict mode constants
// must be lowercase, numbers must follow the JSON grammar, and strings may
// not contain unescaped control characters or unknown or incomplete escapes.
func (m *Machine) StrictLiterals(ok bool) { m.strict = ok }

// AllowAnyRoot configures the machine to accept (true) or reject (false) an
// array or a scalar as the root value of the document. By default only an
// object is accepted at the root.
func (m *Machine) AllowAnyRoot(ok bool) { m.anyRoot = ok }

// State reports the state atop the stack.
func (m *Machine) State() State { return m.top() }

// Depth reports the number of states on the stack, including InDocument.
func (m *Machine) Depth() int { return len(m.stk) }

// Location reports the location of the most recently processed character.
func (m *Machine) Location() Location {
	return Location{LineCol: LineCol{Line: m.line, Column: m.col}, Offset: m.off}
}

var errClosed = errors.New("write after close")

// Write processes the characters of p in order. If p contains a syntax
// error, Write reports it to the handler's FatalError method and returns the
// same error, of concrete type [*ParseError], with n set to the offset in p
// of the offending byte. After a fatal error, all further calls to Write and
// Close report that error without processing input.
func (m *Machine) Write(p []byte) (n int, err error) {
	if m.err != nil {
		return 0, m.err
	} else if m.closed {
		return 0, errClosed
	}
	defer m.recoverParseError(&err)

	m.start()
	for i, b := range p {
		n = i
		m.advance(b)
		m.step(b)
	}
	return len(p), nil
}

// WriteString processes the characters of s as Write does.
func (m *Machine) WriteString(s string) (int, error) { return m.Write([]byte(s)) }

// Close signals the end of the input. If the stack has unwound to the
// document state, Close calls DocumentEnd; otherwise it reports an
// unexpected end of input to the handler's Error method and returns nil.
// Close returns an error only if the input ended with an invalid literal
// at the root, or if an earlier call to Write failed.
func (m *Machine) Close() (err error) {
	if m.err != nil {
		return m.err
	} else if m.closed {
		return nil
	}
	defer m.recoverParseError(&err)

	m.start()
	m.closed = true
	m.off = m.n

	// A scalar at the root has no terminator except the end of the input.
	if m.top().isScalar() && len(m.stk) == 2 {
		m.endScalar()
	}
	if len(m.stk) == 1 {
		m.flushSpace()
		m.h.DocumentEnd()
		return nil
	}
	m.h.Error(newParseError(m.Location(), "unexpected end of document in %v", m.top()))
	return nil
}

func (m *Machine) recoverParseError(errp *error) {
	if x := recover(); x != nil {
		perr, ok := x.(*ParseError)
		if !ok {
			panic(x)
		}
		m.err = perr
		*errp = perr
	}
}

func (m *Machine) start() {
	if !m.started {
		m.started = true
		m.h.DocumentStart()
	}
}

func (m *Machine) advance(b byte) {
	m.off = m.n
	m.n++
	if b == '\n' {
		m.line++
		m.col = 0
	} else if b&0xc0 != 0x80 {
		m.col++ // count the first byte of each UTF-8 sequence
	}
}

// step dispatches a single byte on the state atop the stack.
func (m *Machine) step(b byte) {
	switch m.top() {
	case InDocument:
		m.inDocument(b)
	case InObject:
		m.inObject(b)
	case InArray:
		m.inArray(b)
	case InValue:
		m.inValue(b)
	case InKey, InText:
		m.inString(b)
	case InNumber, InNull, InBoolean:
		m.inScalar(b)
	default:
		panic(fmt.Sprintf("invalid parser state %v", m.top()))
	}
}

func (m *Machine) inDocument(b byte) {
	switch {
	case isSpace(b):
		m.buf = append(m.buf, b)
	case m.last != noState:
		m.fatalf("unexpected %s after end of document", quoteByte(b))
	case b == '{':
		m.flushSpace()
		m.push(InObject)
		m.h.ObjectStart()
	case m.anyRoot && m.startValue(b):
		// OK, a value was started
	default:
		m.fatalf("illegal character %s", quoteByte(b))
	}
}

func (m *Machine) inObject(b byte) {
	if isSpace(b) {
		m.buf = append(m.buf, b)
		return
	}
	m.flushSpace()
	switch b {
	case '"':
		switch m.last {
		case InKey:
			m.fatalf(`expected ":" after key, got %s`, quoteByte(b))
		case InValue:
			m.fatalf(`expected "," or "}" after member, got %s`, quoteByte(b))
		}
		m.push(InKey)
	case ':':
		if m.last != InKey {
			m.fatalf(`unexpected ":" without a key`)
		}
		m.h.KeyValueSeparator()
		m.push(InValue)
	case ',':
		m.separator()
	case '}':
		switch m.last {
		case InKey:
			m.fatalf("missing value for key")
		case sepState:
			m.fatalf(`unexpected "}" after ","`)
		}
		m.h.ObjectEnd()
		m.pop()
		m.complete()
	default:
		m.fatalf("illegal character %s in object", quoteByte(b))
	}
}

func (m *Machine) inArray(b byte) {
	switch {
	case isSpace(b):
		m.buf = append(m.buf, b)
	case b == ',':
		m.flushSpace()
		m.separator()
	case b == ']':
		m.flushSpace()
		if m.last == sepState {
			m.fatalf(`unexpected "]" after ","`)
		}
		m.h.ArrayEnd()
		m.pop()
		m.complete()
	case m.last == InValue:
		m.fatalf(`expected "," or "]" after element, got %s`, quoteByte(b))
	case m.startValue(b):
		// OK, a value was started
	default:
		m.fatalf("illegal character %s in array", quoteByte(b))
	}
}

func (m *Machine) inValue(b byte) {
	switch {
	case isSpace(b):
		m.buf = append(m.buf, b)
	case m.startValue(b):
		// OK, a value was started
	case b == ',' || b == '}':
		m.fatalf("missing value for key before %s", quoteByte(b))
	default:
		m.fatalf("illegal character %s in value", quoteByte(b))
	}
}

// startValue begins a new value starting with b, and reports whether b is a
// valid first character of a value.
func (m *Machine) startValue(b byte) bool {
	var next State
	switch {
	case b == '{':
		m.flushSpace()
		m.push(InObject)
		m.h.ObjectStart()
		return true
	case b == '[':
		m.flushSpace()
		m.push(InArray)
		m.h.ArrayStart()
		return true
	case b == '"':
		m.flushSpace()
		m.push(InText)
		return true
	case b == '-' || isDigit(b):
		next = InNumber
	case b == 'n' || b == 'N':
		next = InNull
	case b == 't' || b == 'T' || b == 'f' || b == 'F':
		next = InBoolean
	default:
		return false
	}
	m.flushSpace()
	m.push(next)
	m.buf = append(m.buf, b)
	return true
}

// separator handles a comma in the object or array atop the stack. The same
// character separates object members and array elements, so the event is
// chosen by the enclosing scope.
func (m *Machine) separator() {
	if m.last != InValue {
		m.fatalf(`unexpected "," in %v`, m.top())
	}
	switch m.top() {
	case InObject:
		m.h.KeyValuePairSeparator()
	case InArray:
		m.h.ArrayElementSeparator()
	}
	m.last = sepState
}

func (m *Machine) inString(b byte) {
	if m.hex > 0 {
		if !isHexDigit(b) {
			m.fatalf("invalid %s in Unicode escape", quoteByte(b))
		}
		m.hex--
		m.buf = append(m.buf, b)
		return
	}
	if b != '"' || m.esc {
		if m.strict {
			if m.esc && !isEscape(b) {
				m.fatalf("invalid %s after escape", quoteByte(b))
			} else if b < ' ' {
				m.fatalf("unescaped control %s in string", quoteByte(b))
			} else if m.esc && b == 'u' {
				m.hex = 4
			}
		}
		m.esc = b == '\\' && !m.esc
		m.buf = append(m.buf, b)
		return
	}

	if m.pop() == InKey {
		m.h.Key(m.buf)
		m.last = InKey
	} else {
		m.h.Value(Value{kind: Text, raw: m.buf})
		m.complete()
	}
	m.buf = m.buf[:0]
}

func (m *Machine) inScalar(b byte) {
	if isTerminator(b) {
		// The terminator belongs to the enclosing scope, which handles it once
		// the literal is complete.
		m.endScalar()
		m.step(b)
		return
	}
	var ok bool
	switch m.top() {
	case InNumber:
		ok = isNumByte(b)
	case InNull:
		ok = strings.IndexByte("nul", lower(b)) >= 0
	case InBoolean:
		ok = strings.IndexByte("truefals", lower(b)) >= 0
	}
	if !ok {
		m.fatalf("illegal character %s in %v", quoteByte(b), m.top())
	}
	m.buf = append(m.buf, b)
}

// endScalar validates and reports the literal atop the stack.
func (m *Machine) endScalar() {
	var kind Kind
	switch m.pop() {
	case InNumber:
		kind = Number
		if !m.isNumber(m.buf) {
			m.fatalf("invalid number %q", m.buf)
		}
	case InNull:
		kind = Null
		if !m.isConstant(m.buf, "null") {
			m.fatalf("invalid null literal %q", m.buf)
		}
	case InBoolean:
		kind = Boolean
		if !m.isConstant(m.buf, "true") && !m.isConstant(m.buf, "false") {
			m.fatalf("invalid boolean literal %q", m.buf)
		}
	}
	m.h.Value(Value{kind: kind, raw: m.buf})
	m.buf = m.buf[:0]
	m.complete()
}

// complete records the end of a value in the scope now atop the stack. The
// value of an object member also ends the member, so its frame is removed.
func (m *Machine) complete() {
	switch m.top() {
	case InValue:
		m.pop()
		m.last = InValue
	case InArray:
		m.last = InValue
	case InDocument:
		m.last = InDocument
	}
}

func (m *Machine) isNumber(text []byte) bool {
	if m.strict {
		return isJSONNumber(text)
	}
	_, err := mem.ParseFloat(mem.B(text), 64)
	return err == nil || errors.Is(err, strconv.ErrRange)
}

func (m *Machine) isConstant(text []byte, want string) bool {
	if m.strict {
		return mem.B(text).EqualString(want)
	}
	return mem.EqualFold(mem.B(text), mem.S(want))
}

func (m *Machine) flushSpace() {
	if len(m.buf) != 0 {
		m.h.IgnorableWhiteSpace(m.buf)
		m.buf = m.buf[:0]
	}
}

func (m *Machine) top() State { return m.stk[len(m.stk)-1] }

func (m *Machine) push(s State) {
	m.stk = append(m.stk, s)
	m.last = noState
}

func (m *Machine) pop() State {
	s := m.top()
	m.stk = m.stk[:len(m.stk)-1]
	return s
}

func (m *Machine) fatalf(msg string, args ...any) {
	err := newParseError(m.Location(), msg, args...)
	m.h.FatalError(err)
	panic(err)
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\r' || b == '\n' || b == '\t'
}

func isTerminator(b byte) bool {
	return isSpace(b) || b == ',' || b == ']' || b == '}'
}

func isDigit(b byte) bool  { return '0' <= b && b <= '9' }
func isNumByte(b byte) bool { return isDigit(b) || strings.IndexByte("-+.eE", b) >= 0 }
func isEscape(b byte) bool  { return strings.IndexByte(`"\/bfnrtu`, b) >= 0 }

func isHexDigit(b byte) bool {
	return isDigit(b) || ('a' <= lower(b) && lower(b) <= 'f')
}

func lower(b byte) byte {
	if 'A' <= b && b <= 'Z' {
		return b + 'a' - 'A'
	}
	return b
}

// quoteByte renders b for an error message.
func quoteByte(b byte) string {
	if b < 0x80 {
		return strconv.QuoteRune(rune(b))
	}
	return fmt.Sprintf("'\\x%02x'", b)
}

// isJSONNumber reports whether text matches the number grammar of RFC 8259.
//
// OK: 0, -1, 0.1, -1.0e5, 2E-3.
// Bad: -01, 01.2, 1., .5, 1e, +1.
func isJSONNumber(text []byte) bool {
	i := 0
	if i < len(text) && text[i] == '-' {
		i++
	}
	if i == len(text) {
		return false
	} else if text[i] == '0' {
		i++ // a leading zero must be the only integer digit
	} else if j := skipDigits(text, i); j > i {
		i = j
	} else {
		return false
	}
	if i < len(text) && text[i] == '.' {
		j := skipDigits(text, i+1)
		if j == i+1 {
			return false // no digits after decimal point
		}
		i = j
	}
	if i < len(text) && (text[i] == 'e' || text[i] == 'E') {
		i++
		if i < len(text) && (text[i] == '+' || text[i] == '-') {
			i++
		}
		j := skipDigits(text, i)
		if j == i {
			return false // missing exponent digits
		}
		i = j
	}
	return i == len(text)
}

func skipDigits(text []byte, i int) int {
	for i < len(text) && isDigit(text[i]) {
		i++
	}
	return i
}
