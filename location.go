// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jsax

import "fmt"

// A LineCol describes the line number and column offset of a location in
// source text.
type LineCol struct {
	Line   int // line number, 1-based
	Column int // character offset in line; the first character is 1
}

func (lc LineCol) String() string {
	return fmt.Sprintf("line %d, position %d", lc.Line, lc.Column)
}

// A Location describes the complete position of a character in source text.
type Location struct {
	LineCol
	Offset int // byte offset of the character, 0-based
}
