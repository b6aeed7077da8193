// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package jflat

import "go4.org/mem"

// eob is the sentinel reported by a cursor past the end of input. It is not
// printable, so no classifier accepts it.
const eob = 0x00

// A cursor tracks the scan position over a borrowed input buffer. The
// committed offset marks bytes already folded into emitted tokens; the
// lookahead extent covers bytes tentatively claimed by the production in
// progress. Line and column describe the committed position only, since
// lookahead never crosses a line break.
type cursor struct {
	src   mem.RO
	pos   int // committed offset into src
	ahead int // lookahead extent beyond pos
	line  int // 1-based line of the committed position
	col   int // 1-based column of the committed position
}

func (c *cursor) reset(src mem.RO) { *c = cursor{src: src, line: 1, col: 1} }

// ch returns the byte at the head of the lookahead, or eob at end of input.
func (c *cursor) ch() byte {
	if p := c.pos + c.ahead; p < c.src.Len() {
		return c.src.At(p)
	}
	return eob
}

// eof reports whether the head of the lookahead is past the end of input.
func (c *cursor) eof() bool { return c.pos+c.ahead >= c.src.Len() }

// grow extends the lookahead by n bytes.
func (c *cursor) grow(n int) { c.ahead += n }

// span returns the offsets of the current lookahead extent.
func (c *cursor) span() Span { return Span{Pos: c.pos, End: c.pos + c.ahead} }

// head returns the position at the head of the lookahead.
func (c *cursor) head() LineCol { return LineCol{Line: c.line, Column: c.col + c.ahead} }

// commit folds the lookahead into the committed position. Used directly for
// punctuation the grammar consumes without emitting a token; the emitter uses
// it after capturing the lookahead span.
func (c *cursor) commit() {
	c.pos += c.ahead
	c.col += c.ahead
	c.ahead = 0
}

// skipSpace advances the committed position past whitespace, maintaining the
// line and column counters. Precondition: no pending lookahead.
func (c *cursor) skipSpace() {
	for c.pos < c.src.Len() {
		b := c.src.At(c.pos)
		if !isSpace(b) {
			return
		}
		c.pos++
		if b == '\n' {
			c.line++
			c.col = 1
		} else {
			c.col++
		}
	}
}

// sees returns a predicate reporting whether b is at the head of the
// lookahead.
func (c *cursor) sees(b byte) func() bool {
	return func() bool { return c.ch() == b }
}

// seesFn returns a predicate reporting whether the byte at the head of the
// lookahead satisfies f.
func (c *cursor) seesFn(f func(byte) bool) func() bool {
	return func() bool { return f(c.ch()) }
}

func isSpace(b byte) bool { return b == ' ' || b == '\t' || b == '\r' || b == '\n' }
func isDigit(b byte) bool { return '0' <= b && b <= '9' }
func isSign(b byte) bool  { return b == '-' || b == '+' }
func isQuote(b byte) bool { return b == '"' || b == '\'' }
func isAlpha(b byte) bool { return 'a' <= b && b <= 'z' || 'A' <= b && b <= 'Z' }

// isIdentStart reports the characters that may begin a bare field.
func isIdentStart(b byte) bool { return isAlpha(b) || b == '_' }

// isIdent reports the characters that may continue a field body.
func isIdent(b byte) bool { return isIdentStart(b) || isDigit(b) }

// isPrint reports the bytes allowed unescaped inside a string: anything at or
// above space except DEL. Bytes of multibyte UTF-8 sequences pass.
func isPrint(b byte) bool { return b >= ' ' && b != 0x7f }
