// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package jflat

import (
	"fmt"

	"github.com/creachadair/jflat/internal/escape"
)

// Decode appends the decoded text of the String token tok to dst and returns
// the extended slice. The token's delimiting quotes are stripped and its
// escape sequences are expanded; on input with no escapes the result is the
// span with quotes removed. Decode reads only within the token's own span
// and may be called any number of times per token, independent of
// tokenization.
//
// Decode will panic if tok is not a String token.
func (t *Tokenizer) Decode(dst []byte, tok Token) []byte {
	if tok.Kind != String {
		panic(fmt.Sprintf("decode: token is a %s, not a %s", tok.Kind, String))
	}
	body := t.src.SliceTo(tok.End - 1).SliceFrom(tok.Pos + 1)
	return escape.Unescape(dst, body)
}
