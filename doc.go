// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

// Package jflat implements a single-pass tokenizer and structural validator
// for a permissive JSON-like grammar.
//
// # Tokenizing
//
// The Tokenizer type converts raw text into a flat, position-annotated token
// stream without building a syntax tree. Construct a Tokenizer with New and
// call its Tokenize method with a read-only view of the input:
//
//	t := jflat.New()
//	if !t.Tokenize(mem.S(`{"x":10,"y":20}`)) {
//	   log.Fatalf("Tokenize failed: %v", t.Err())
//	}
//	for _, tok := range t.Tokens() {
//	   log.Printf("%v at %v", tok.Kind, tok.Location())
//	}
//
// Tokenize validates nesting as it scans: every container-start token records
// in its Elements field the number of values (for arrays) or field/value
// pairs (for objects) directly inside it. Token text is a span of the input
// buffer, never a copy, so the buffer must outlive any token stream derived
// from it.
//
// The grammar is permissive relative to standard JSON: object fields may be
// bare identifiers or quoted with single or double quotes, strings may use
// either quote character, and the constants true, false, and null match
// case-insensitively. It is also stricter in places: Unicode (\u) escapes
// are rejected, and trailing commas are not accepted. Scanning stops at the
// first malformed construct with a single line/column-tagged Diagnostic, and
// at the end of the first complete value; trailing input is not examined.
//
// # Walking
//
// A successful run's token stream can be replayed to a Handler, whose
// methods correspond to the structure of the input:
//
//	if err := t.Walk(handler); err != nil {
//	   log.Fatalf("Walk failed: %v", err)
//	}
//
// # Decoding
//
// Escape sequences inside strings are validated during tokenization but not
// expanded. To decode a String token on demand, call Decode:
//
//	text := t.Decode(nil, tok)
package jflat
