// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package jsax implements an event-driven streaming parser for JSON.
//
// # Parsing
//
// The Parser type reads JSON text from an io.Reader and reports its structure
// by calling methods on a Handler value. Construct a Parser from an
// io.Reader and call its Parse method:
//
//	p := jsax.NewParser(input)
//	if err := p.Parse(handler); err != nil {
//	   log.Fatalf("Parse failed: %v", err)
//	}
//
// Parse returns nil if the input was consumed without a fatal error. A
// syntax error stops the parse and is reported both to the handler's
// FatalError method and as the return value, of concrete type *ParseError.
// An input that ends inside an unfinished object or array is not fatal: the
// handler's Error method is called and Parse returns nil.
//
// Use ParseContext to stop a long parse when a context ends, and ParseString,
// ParseBytes, or ParseFile as shorthand for common inputs.
//
// # Machines
//
// The Machine type is the state machine underlying a Parser. A Machine is an
// io.Writer, so input may be pushed to it in chunks of any size as it becomes
// available:
//
//	m := jsax.NewMachine(handler)
//	for chunk := range chunks {
//	   if _, err := m.Write(chunk); err != nil {
//	      return err
//	   }
//	}
//	return m.Close()
//
// The events delivered do not depend on how the input is split.
//
// # Handlers
//
// The Handler interface accepts parser events. The methods of a handler
// correspond to the syntax of JSON:
//
//	Syntax   | Methods                    | Description
//	-------- | -------------------------- | ---------------------------------
//	document | DocumentStart, DocumentEnd | the whole input
//	object   | ObjectStart, ObjectEnd     | { ... }
//	array    | ArrayStart, ArrayEnd       | [ ... ]
//	key      | Key, KeyValueSeparator     | "key":
//	value    | Value                      | true, false, null, number, string
//	,        | KeyValuePairSeparator      | between object members
//	,        | ArrayElementSeparator      | between array elements
//	space    | IgnorableWhiteSpace        | whitespace between tokens
//	--       | Warning, Error, FatalError | problems in the input
//
// The text passed to Key, Value, and IgnorableWhiteSpace is only valid for
// the duration of the call; a handler must copy any data it needs to retain.
// Embed NopHandler in a struct to implement only the methods you need.
//
// # Literals
//
// By default the parser is lenient: the constants true, false, and null are
// matched without regard to case, and any number accepted by
// strconv.ParseFloat is allowed. Call StrictLiterals(true) to require the
// exact syntax of RFC 8259. By default the root value must be an object;
// call AllowAnyRoot(true) to accept any value at the root.
package jsax
