// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package jxml

import (
	"errors"
	"strings"

	"github.com/creachadair/jxml/internal/escape"

	"go4.org/mem"
)

// Unquote decodes a JSON string value.  Double quotation marks are removed,
// escape sequences are replaced with their unescaped equivalents, and
// surrogate pairs are combined.
//
// Invalid escapes are replaced by the Unicode replacement rune. Unquote
// reports an error for an incomplete escape sequence.
func Unquote(src []byte) ([]byte, error) {
	s := string(src)
	if len(s) < 2 || !strings.HasPrefix(s, `"`) || !strings.HasSuffix(s, `"`) {
		return nil, errors.New("missing quotations")
	}
	return escape.Unquote(mem.S(s[1 : len(s)-1]))
}

// XMLEscape encodes src for inclusion in XML character data or an attribute
// value, replacing the markup metacharacters with entity references.
func XMLEscape(src string) string { return string(escape.XML(mem.S(src))) }
