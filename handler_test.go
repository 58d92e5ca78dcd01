// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jsax_test

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/creachadair/jsax"
	"github.com/google/go-cmp/cmp"
)

func diffStrings(want, got string) string {
	return cmp.Diff(strings.Split(strings.TrimSpace(want), "\n"),
		strings.Split(strings.TrimSpace(got), "\n"))
}

// testHandler records each event it receives as a line of text.
type testHandler struct {
	buf bytes.Buffer
}

func (t *testHandler) pr(msg string, args ...any) {
	if !strings.HasSuffix(msg, "\n") {
		msg += "\n"
	}
	fmt.Fprintf(&t.buf, msg, args...)
}

func (t *testHandler) output() string { return t.buf.String() }

func (t *testHandler) DocumentStart()         { t.pr("DocumentStart") }
func (t *testHandler) DocumentEnd()           { t.pr("DocumentEnd") }
func (t *testHandler) ObjectStart()           { t.pr("ObjectStart") }
func (t *testHandler) ObjectEnd()             { t.pr("ObjectEnd") }
func (t *testHandler) ArrayStart()            { t.pr("ArrayStart") }
func (t *testHandler) ArrayEnd()              { t.pr("ArrayEnd") }
func (t *testHandler) KeyValueSeparator()     { t.pr("KeyValueSeparator") }
func (t *testHandler) KeyValuePairSeparator() { t.pr("KeyValuePairSeparator") }
func (t *testHandler) ArrayElementSeparator() { t.pr("ArrayElementSeparator") }

func (t *testHandler) Key(text []byte) { t.pr("Key <%s>", text) }

func (t *testHandler) Value(v jsax.Value) { t.pr("Value %v <%s>", v.Kind(), v.Raw()) }

func (t *testHandler) IgnorableWhiteSpace(text []byte) { t.pr("Space %q", text) }

func (t *testHandler) Warning(err *jsax.ParseError)    { t.pr("Warning <%v>", err) }
func (t *testHandler) Error(err *jsax.ParseError)      { t.pr("Error <%v>", err) }
func (t *testHandler) FatalError(err *jsax.ParseError) { t.pr("FatalError <%v>", err) }
