// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jsax

// State is the lexical context of the parser. The parser keeps a stack of
// states whose top describes the character currently being processed.
type State byte

// Constants defining the valid State values.
const (
	noState   State = iota // nothing completed in the current scope
	InDocument             // outside the root value
	InObject               // inside { ... }
	InArray                // inside [ ... ]
	InKey                  // inside the quoted name of a member
	InValue                // after the colon of a member, until its value ends
	InText                 // inside a quoted string value
	InNumber               // inside a number
	InNull                 // inside a null constant
	InBoolean              // inside a true or false constant
	sepState               // a separator was the last thing seen

	// Do not modify the order of these constants without updating the
	// scalar state check below.
)

var stateStr = [...]string{
	noState:    "none",
	InDocument: "DOCUMENT",
	InObject:   "OBJECT",
	InArray:    "ARRAY",
	InKey:      "KEY",
	InValue:    "VALUE",
	InText:     "TEXT_VALUE",
	InNumber:   "NUMBER_VALUE",
	InNull:     "NULL_VALUE",
	InBoolean:  "BOOLEAN_VALUE",
	sepState:   "separator",
}

func (s State) String() string {
	v := int(s)
	if v >= len(stateStr) {
		return "invalid state"
	}
	return stateStr[v]
}

// isScalar reports whether s is the state of an unquoted literal, which ends
// at the first terminator rather than at a closing delimiter.
func (s State) isScalar() bool { return s >= InNumber && s <= InBoolean }
