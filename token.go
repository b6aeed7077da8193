// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package jflat

// Kind is the type of a lexical token in the grammar.
type Kind byte

// Constants defining the valid Kind values.
const (
	Invalid     Kind = iota // invalid token
	Number                  // number with optional fraction and exponent
	Field                   // object field, bare or quoted
	String                  // quoted string
	ArrayStart              // left square bracket "["
	ArrayEnd                // right square bracket "]"
	ObjectStart             // left brace "{"
	ObjectEnd               // right brace "}"
	Colon                   // colon ":" (declared; the grammar consumes colons silently)
	Bool                    // constant: true or false
	Null                    // constant: null
)

var kindStr = [...]string{
	Invalid:     "invalid token",
	Number:      "number",
	Field:       "field",
	String:      "string",
	ArrayStart:  "array start",
	ArrayEnd:    "array end",
	ObjectStart: "object start",
	ObjectEnd:   "object end",
	Colon:       "colon",
	Bool:        "boolean",
	Null:        "null",
}

func (k Kind) String() string {
	v := int(k)
	if v >= len(kindStr) {
		return kindStr[Invalid]
	}
	return kindStr[v]
}

// A Token records a single lexical unit recognized in the input. Its text is
// a span of the input buffer, never a copy, so a Token is valid only while
// the buffer it was scanned from remains alive and unmodified.
type Token struct {
	Kind Kind
	Span // offsets of the token text in the input

	// Position of the token's first character.
	Line, Column int

	// Elements counts the direct child values of an ArrayStart token, or the
	// direct field/value pairs of an ObjectStart token, not counting nested
	// descendants. It is zero for all other kinds.
	Elements int
}

// Location returns the position of the token's first character.
func (t Token) Location() LineCol { return LineCol{Line: t.Line, Column: t.Column} }
