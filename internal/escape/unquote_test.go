// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package escape_test

import (
	"testing"

	"github.com/creachadair/jsax/internal/escape"

	"go4.org/mem"
)

func TestUnquote(t *testing.T) {
	tests := []struct {
		input string
		want  string
		fail  bool
	}{
		{``, ``, false},                     // ok
		{`ok go`, "ok go", false},           // ok
		{`abc\ndef`, "abc\ndef", false},     // C escapes
		{`\tabc\n`, "\tabc\n", false},       // C escapes
		{`\b\f\n\r\t`, "\b\f\n\r\t", false}, // C escapes
		{`\/\\\"`, `/\"`, false},            // solidus, backslash, quote
		{`a \u0026 b`, "a & b", false},      // short Unicode escape
		{`\u00E9`, "é", false},              // upper-case hex
		{`\u`, ``, true},                    // incomplete Unicode escape
		{`\u00`, ``, true},                  // incomplete Unicode escape
		{`x\`, ``, true},                    // incomplete escape
		{`\u00x9`, "\ufffd", false},         // invalid Unicode escape
		{`\u019 `, "\ufffd", false},         // invalid Unicode escape
		{`\q`, "\ufffd", false},             // unknown escape
		{`a\"b`, `a"b`, false},              // ok
		{`a\\b\\cd`, `a\b\cd`, false},       // ok

		// Surrogate pairs.
		{`\ud83d\ude00`, "😀", false},        // valid pair
		{`<\uD83D\uDE00>`, "<😀>", false},    // valid pair, upper case
		{`\ud83d`, "\ufffd", false},         // unpaired high surrogate
		{`\ud83dx`, "\ufffdx", false},       // high surrogate, no escape
		{`\ude00`, "\ufffd", false},         // unpaired low surrogate
		{`\ud83d\u0041`, "\ufffdA", false},  // high surrogate, non-surrogate
		{`\ud83d\uzzzz`, "\ufffd\ufffd", false}, // high surrogate, bad hex
	}

	for _, test := range tests {
		got, err := escape.Unquote(mem.S(test.input))
		if err != nil {
			if !test.fail {
				t.Errorf("Unquote(%#q): got %v, want no error", test.input, err)
			} else {
				t.Logf("Unquote(%#q): got expected error: %v", test.input, err)
			}
		} else if test.fail {
			t.Errorf("Unquote(%#q): got nil, want error", test.input)
		}
		if cmp := string(got); cmp != test.want {
			t.Errorf("Unquote(%#q): got %#q, want %#q", test.input, cmp, test.want)
		}
	}
}
