// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jsax

import (
	"github.com/creachadair/jsax/internal/escape"

	"go4.org/mem"
)

// Unquote decodes the text of a key or string as delivered to a Handler.
// The text does not include the enclosing quotation marks; escape sequences
// are replaced with their unescaped equivalents.
//
// Invalid escapes are replaced by the Unicode replacement rune. Unquote
// reports an error for an incomplete escape sequence.
func Unquote(text []byte) ([]byte, error) { return escape.Unquote(mem.B(text)) }
