// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package jflat

import (
	"fmt"

	"github.com/creachadair/mds/stack"
	"go4.org/mem"
)

// DefaultMaxDepth is the nesting depth limit applied to a Tokenizer unless
// overridden by SetMaxDepth.
const DefaultMaxDepth = 1000

// A Diagnostic describes the first condition that caused a tokenize call to
// abort, tagged with the position at which the violated expectation began.
type Diagnostic struct {
	Location LineCol
	Message  string
}

// Error satisfies the error interface.
func (d Diagnostic) Error() string {
	return fmt.Sprintf("at %s: %s", d.Location, d.Message)
}

// A Tokenizer converts raw text into a flat, position-annotated token stream,
// validating nesting and container element counts as it goes. A zero
// Tokenizer is not ready for use; call New.
//
// A Tokenizer may be reused across independent inputs: each call to Tokenize
// fully resets its state. It must not be shared by concurrent callers.
type Tokenizer struct {
	src      mem.RO
	cur      cursor
	toks     []Token
	open     *stack.Stack[int] // indices of open container-start tokens
	diags    []Diagnostic
	depth    int
	maxDepth int
}

// New constructs a new empty Tokenizer with the default depth limit.
func New() *Tokenizer {
	return &Tokenizer{open: stack.New[int](), maxDepth: DefaultMaxDepth}
}

// SetMaxDepth sets the maximum value nesting depth t will accept before
// failing with a structural diagnostic. Values less than 1 restore
// DefaultMaxDepth.
func (t *Tokenizer) SetMaxDepth(n int) {
	if n < 1 {
		n = DefaultMaxDepth
	}
	t.maxDepth = n
}

// Tokenize scans a single value from the start of src and reports whether it
// was structurally valid. On success the token stream is available from
// Tokens. On failure Diagnostics describes the first violated expectation,
// and the partial token stream is not meaningful.
//
// The buffer underlying src is borrowed, not copied: the returned tokens
// reference spans of it and remain valid only while it is alive and
// unmodified. Input after the first complete value is not examined.
func (t *Tokenizer) Tokenize(src mem.RO) bool {
	t.src = src
	t.cur.reset(src)
	t.toks = t.toks[:0]
	t.open.Clear()
	t.diags = t.diags[:0]
	t.depth = 0
	return t.parseValue()
}

// Tokens returns the token stream from the most recent call to Tokenize. The
// result is valid only until the next call to Tokenize, and only meaningful
// if that call reported success.
func (t *Tokenizer) Tokens() []Token { return t.toks }

// Diagnostics returns the diagnostics recorded by the most recent call to
// Tokenize, nil if it succeeded. By construction a failed call records
// exactly one.
func (t *Tokenizer) Diagnostics() []Diagnostic { return t.diags }

// Err returns the first diagnostic from the most recent call to Tokenize as
// an error, or nil if it succeeded.
func (t *Tokenizer) Err() error {
	if len(t.diags) == 0 {
		return nil
	}
	return t.diags[0]
}

// Text returns a view of the raw (undecoded) text of tok within the input
// most recently passed to Tokenize.
func (t *Tokenizer) Text(tok Token) mem.RO {
	return t.src.SliceTo(tok.End).SliceFrom(tok.Pos)
}

// report appends a diagnostic at the given position.
func (t *Tokenizer) report(at LineCol, msg string, args ...any) {
	t.diags = append(t.diags, Diagnostic{Location: at, Message: fmt.Sprintf(msg, args...)})
}

// require evaluates pred and reports whether it was true. If not, it records
// a diagnostic at the position where the predicate began, before any
// lookahead the predicate itself may have claimed.
func (t *Tokenizer) require(pred func() bool, msg string, args ...any) bool {
	at := t.cur.head()
	if pred() {
		return true
	}
	t.report(at, msg, args...)
	return false
}

// forbid is require with the polarity inverted.
func (t *Tokenizer) forbid(pred func() bool, msg string, args ...any) bool {
	at := t.cur.head()
	if !pred() {
		return true
	}
	t.report(at, msg, args...)
	return false
}

// emit commits the current lookahead extent as a token of the given kind,
// appends it to the token stream, and returns its index.
func (t *Tokenizer) emit(kind Kind) int {
	t.toks = append(t.toks, Token{
		Kind:   kind,
		Span:   t.cur.span(),
		Line:   t.cur.line,
		Column: t.cur.col,
	})
	t.cur.commit()
	return len(t.toks) - 1
}

// openContainer records the container-start token at index i as the active
// container.
func (t *Tokenizer) openContainer(i int) { t.open.Push(i) }

// countElement increments the element count of the active container, which
// must be a start token of the given kind. The label names the container in
// diagnostics.
func (t *Tokenizer) countElement(kind Kind, label string) bool {
	at := t.cur.head()
	i, ok := t.open.Peek(0)
	if !ok || t.toks[i].Kind != kind {
		t.report(at, "No open %s", label)
		return false
	}
	t.toks[i].Elements++
	return true
}

// closeContainer pops the active container and verifies it is a start token
// of the given kind.
func (t *Tokenizer) closeContainer(kind Kind, label string) bool {
	at := t.cur.head()
	i, ok := t.open.Pop()
	if !ok {
		t.report(at, "No open %s", label)
		return false
	}
	if t.toks[i].Kind != kind {
		t.report(at, "Mismatched %s close", label)
		return false
	}
	return true
}

// parseValue is the entry production: it skips leading whitespace and
// dispatches on the next character. Failure of any production aborts the
// whole pass; no recovery is attempted.
func (t *Tokenizer) parseValue() bool {
	if t.depth++; t.depth > t.maxDepth {
		t.report(t.cur.head(), "Nesting exceeds %d levels", t.maxDepth)
		return false
	}
	defer func() { t.depth-- }()

	t.cur.skipSpace()
	switch ch := t.cur.ch(); {
	case ch == '[':
		return t.parseArray()
	case ch == '{':
		return t.parseObject()
	case isSign(ch) || isDigit(ch):
		return t.parseNumber()
	case isQuote(ch):
		return t.parseString()
	default:
		return t.parseLiteral()
	}
}

// parseObject consumes an object: '{' (field ':' value (',' field ':' value)*)? '}'.
// Note that after a comma a field is required; a trailing comma before the
// closing brace is therefore rejected at the field production.
func (t *Tokenizer) parseObject() bool {
	if !t.require(t.cur.sees('{'), "Expected '{'") {
		return false
	}
	t.cur.grow(1)
	t.openContainer(t.emit(ObjectStart))

	t.cur.skipSpace()
	if t.cur.ch() != '}' {
		for {
			if !t.countElement(ObjectStart, "object") {
				return false
			}
			if !t.parseField() {
				return false
			}
			t.cur.skipSpace()
			if !t.require(t.cur.sees(':'), "Expected ':'") {
				return false
			}
			t.cur.grow(1)
			t.cur.commit()
			if !t.parseValue() {
				return false
			}
			t.cur.skipSpace()
			if t.cur.ch() != ',' {
				break
			}
			t.cur.grow(1)
			t.cur.commit()
			t.cur.skipSpace()
		}
	}
	if !t.require(t.cur.sees('}'), "Expected '}'") {
		return false
	}
	t.cur.grow(1)
	t.emit(ObjectEnd)
	return t.closeContainer(ObjectStart, "object")
}

// parseArray consumes an array: '[' (value (',' value)*)? ']'.
func (t *Tokenizer) parseArray() bool {
	if !t.require(t.cur.sees('['), "Expected '['") {
		return false
	}
	t.cur.grow(1)
	t.openContainer(t.emit(ArrayStart))

	t.cur.skipSpace()
	if t.cur.ch() != ']' {
		for {
			if !t.countElement(ArrayStart, "array") {
				return false
			}
			if !t.parseValue() {
				return false
			}
			t.cur.skipSpace()
			if t.cur.ch() != ',' {
				break
			}
			t.cur.grow(1)
			t.cur.commit()
		}
	}
	if !t.require(t.cur.sees(']'), "Expected ']'") {
		return false
	}
	t.cur.grow(1)
	t.emit(ArrayEnd)
	return t.closeContainer(ArrayStart, "array")
}

// parseField consumes an object field, either a bare identifier or a quoted
// name closed by the same quote character. A quoted field's span includes its
// delimiting quotes; a bare field's span is the identifier alone.
// Precondition: the cursor is at the first character of the field.
func (t *Tokenizer) parseField() bool {
	var open byte
	if ch := t.cur.ch(); isQuote(ch) {
		open = ch
		t.cur.grow(1)
	} else if !t.require(t.cur.seesFn(isIdentStart), "Expected object field") {
		return false
	}
	for isIdent(t.cur.ch()) {
		t.cur.grow(1)
	}
	if open != 0 {
		if !t.require(t.cur.sees(open), "Expected closing %q on object field", open) {
			return false
		}
		t.cur.grow(1)
	}
	t.emit(Field)
	return true
}

// parseString consumes a quoted string, validating but not decoding its
// escape sequences. The token's span includes both delimiting quotes.
func (t *Tokenizer) parseString() bool {
	open := t.cur.ch()
	if !t.require(t.cur.seesFn(isQuote), "Expected string") {
		return false
	}
	t.cur.grow(1)
	for {
		if !t.forbid(t.cur.eof, "Unexpected end of buffer") {
			return false
		}
		switch ch := t.cur.ch(); {
		case ch == open:
			t.cur.grow(1)
			t.emit(String)
			return true
		case ch == '\\':
			t.cur.grow(1)
			if !t.parseEscape(open) {
				return false
			}
		default:
			if !t.require(t.cur.seesFn(isPrint), "Unprintable character %q in string", ch) {
				return false
			}
			t.cur.grow(1)
		}
	}
}

// parseEscape validates the character following a backslash. Escapes are
// checked here but expanded only on demand, by Decode. A quote escape must
// match the string's opening quote, and Unicode escapes are recognized but
// unsupported.
// Precondition: the backslash is already inside the lookahead.
func (t *Tokenizer) parseEscape(open byte) bool {
	if !t.forbid(t.cur.eof, "Unexpected end of buffer") {
		return false
	}
	at := t.cur.head()
	switch ch := t.cur.ch(); {
	case ch == 'u':
		t.report(at, "Unicode escape is not supported")
		return false
	case isQuote(ch):
		if ch != open {
			t.report(at, "Escaped quote %q does not match string delimiter", ch)
			return false
		}
	case ch == '\\' || ch == '/' || ch == 'r' || ch == 'n' || ch == 't' || ch == 'b' || ch == 'f':
		// ok
	default:
		t.report(at, "Invalid escape character %q", ch)
		return false
	}
	t.cur.grow(1)
	return true
}

// parseNumber consumes a number: a signed integer part, an optional fraction
// requiring at least one digit, and an optional exponent whose sign and
// digits reuse the integer production.
func (t *Tokenizer) parseNumber() bool {
	if !t.parseInteger() {
		return false
	}
	if t.cur.ch() == '.' {
		t.cur.grow(1)
		if !t.require(t.cur.seesFn(isDigit), "Expected digit") {
			return false
		}
		for isDigit(t.cur.ch()) {
			t.cur.grow(1)
		}
	}
	if ch := t.cur.ch(); ch == 'e' || ch == 'E' {
		t.cur.grow(1)
		if !t.parseInteger() {
			return false
		}
	}
	t.emit(Number)
	return true
}

// parseInteger claims an optional sign and one or more digits into the
// lookahead. Shared by the integer and exponent parts of parseNumber.
func (t *Tokenizer) parseInteger() bool {
	if isSign(t.cur.ch()) {
		t.cur.grow(1)
	}
	if !t.require(t.cur.seesFn(isDigit), "Expected digit") {
		return false
	}
	for isDigit(t.cur.ch()) {
		t.cur.grow(1)
	}
	return true
}

// parseLiteral consumes one of the constants true, false, or null, matched
// case-insensitively against the raw buffer. No boundary check follows the
// match, so input like "trueVal" yields a Bool token for "true" and leaves
// "Val" for the enclosing production.
func (t *Tokenizer) parseLiteral() bool {
	at := t.cur.head()
	switch {
	case t.matchFold("true"):
		t.emit(Bool)
	case t.matchFold("false"):
		t.emit(Bool)
	case t.matchFold("null"):
		t.emit(Null)
	default:
		t.report(at, "Expected value")
		return false
	}
	return true
}

// matchFold claims lit into the lookahead if the input at the head of the
// lookahead matches it case-insensitively. lit must be lowercase ASCII.
func (t *Tokenizer) matchFold(lit string) bool {
	p := t.cur.pos + t.cur.ahead
	if p+len(lit) > t.src.Len() {
		return false
	}
	for i := 0; i < len(lit); i++ {
		if t.src.At(p+i)|0x20 != lit[i] {
			return false
		}
	}
	t.cur.grow(len(lit))
	return true
}
