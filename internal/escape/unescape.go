// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

// Package escape handles expansion of escape sequences in string tokens.
package escape

import "go4.org/mem"

// Unescape appends the decoded form of a string token body to dst and
// returns the extended slice. The input must have its enclosing quotation
// marks already removed.
//
// Each backslash consumes the following character. Letter escapes are
// matched case-insensitively; an escape that decodes to nothing (including a
// trailing backslash at the end of the input) contributes no output.
// Characters outside escape sequences are appended verbatim.
func Unescape(dst []byte, src mem.RO) []byte {
	for i := 0; i < src.Len(); i++ {
		b := src.At(i)
		if b != '\\' {
			dst = append(dst, b)
			continue
		}
		i++
		if i == src.Len() {
			break
		}
		switch src.At(i) {
		case 'n', 'N':
			dst = append(dst, '\n')
		case 'r', 'R':
			dst = append(dst, '\r')
		case 't', 'T':
			dst = append(dst, '\t')
		case 'b', 'B':
			dst = append(dst, '\b')
		case 'f', 'F':
			dst = append(dst, '\f')
		case '"', '/', '\\':
			dst = append(dst, src.At(i))
		default:
			// Unrecognized escapes decode to nothing.
		}
	}
	return dst
}
