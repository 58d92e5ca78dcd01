// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jsax

import "fmt"

// ParseError is the concrete type of errors reported by the parser, both to
// the Handler and to the caller. A ParseError is not modified after it has
// been constructed.
type ParseError struct {
	Location
	Message string
}

// Error satisfies the error interface.
func (p *ParseError) Error() string {
	return fmt.Sprintf("%s: %s", p.LineCol, p.Message)
}

func newParseError(loc Location, msg string, args ...any) *ParseError {
	return &ParseError{Location: loc, Message: fmt.Sprintf(msg, args...)}
}
