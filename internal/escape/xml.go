// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package escape

import "go4.org/mem"

var xmlEsc = map[byte]string{
	'&':  "&amp;",
	'<':  "&lt;",
	'>':  "&gt;",
	'"':  "&quot;",
	'\'': "&apos;",
}

// XML encodes src for inclusion in XML character data or attribute values.
// The five XML metacharacters are replaced by entity references; all other
// bytes are copied through unchanged.
func XML(src mem.RO) []byte {
	buf := make([]byte, 0, src.Len())
	for i := 0; i < src.Len(); i++ {
		b := src.At(i)
		if e, ok := xmlEsc[b]; ok {
			buf = append(buf, e...)
		} else {
			buf = append(buf, b)
		}
	}
	return buf
}
