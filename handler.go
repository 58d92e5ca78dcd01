// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jsax

// A Handler handles events from parsing an input stream. Methods are called
// synchronously, in the order the corresponding elements appear in the input.
//
// Byte slices and Values passed to a Handler method are only valid for the
// duration of that method call. If the method needs to retain the text after
// it returns, it must copy the relevant data.
type Handler interface {
	// Begin the document. This is always the first event.
	DocumentStart()

	// End the document. This is called at the end of the input if and only if
	// every object and array was closed.
	DocumentEnd()

	// Begin a new object at an open brace.
	ObjectStart()

	// End the most-recently-opened object at a close brace.
	ObjectEnd()

	// Begin a new array at an open bracket.
	ArrayStart()

	// End the most-recently-opened array at a close bracket.
	ArrayEnd()

	// Report the name of an object member. The text does not include the
	// quotation marks, and escape sequences are not decoded.
	Key(text []byte)

	// Report the colon between a member name and its value.
	KeyValueSeparator()

	// Report a comma between two object members.
	KeyValuePairSeparator()

	// Report a comma between two array elements.
	ArrayElementSeparator()

	// Report a number, Boolean, null, or string value that is an array element
	// or the value of an object member.
	Value(v Value)

	// Report a run of whitespace outside any string.
	IgnorableWhiteSpace(text []byte)

	// Report a non-fatal advisory condition. The parser does not currently
	// report any warnings.
	Warning(err *ParseError)

	// Report that the input ended inside an unfinished object or array. The
	// parse returns normally after this call, and DocumentEnd is not called.
	Error(err *ParseError)

	// Report an unrecoverable syntax error. No further events are delivered,
	// and the same error is returned to the caller.
	FatalError(err *ParseError)
}

// NopHandler implements every method of the Handler interface by doing
// nothing. It is intended to be embedded in a handler that needs only some
// of the events.
type NopHandler struct{}

func (NopHandler) DocumentStart()                  {}
func (NopHandler) DocumentEnd()                    {}
func (NopHandler) ObjectStart()                    {}
func (NopHandler) ObjectEnd()                      {}
func (NopHandler) ArrayStart()                     {}
func (NopHandler) ArrayEnd()                       {}
func (NopHandler) Key(text []byte)                 {}
func (NopHandler) KeyValueSeparator()              {}
func (NopHandler) KeyValuePairSeparator()          {}
func (NopHandler) ArrayElementSeparator()          {}
func (NopHandler) Value(v Value)                   {}
func (NopHandler) IgnorableWhiteSpace(text []byte) {}
func (NopHandler) Warning(err *ParseError)         {}
func (NopHandler) Error(err *ParseError)           {}
func (NopHandler) FatalError(err *ParseError)      {}
