// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

package jflat

// A Handler receives the tokens of a successful tokenize run in stream
// order. If a method reports an error, the walk stops and that error is
// returned to the caller. The tokenizer has already validated that container
// start and end tokens are correctly balanced.
type Handler interface {
	// Begin a new object, whose start token is tok.
	BeginObject(tok Token) error

	// End the most-recently-opened object.
	EndObject(tok Token) error

	// Begin a new array, whose start token is tok.
	BeginArray(tok Token) error

	// End the most-recently-opened array.
	EndArray(tok Token) error

	// Report an object field. The text of a quoted field is still quoted; use
	// Text to recover it.
	Field(tok Token) error

	// Report a data value: number, string, boolean, or null. The type of the
	// value can be recovered from the token kind. String tokens are quoted
	// and undecoded; see Decode.
	Value(tok Token) error
}

// Walk replays the token stream from the most recent successful call to
// Tokenize, delivering each token to the corresponding method of h. It
// returns the first error reported by a handler method, if any.
//
// Walk must not be called after a failed tokenize run, whose token stream is
// not meaningful.
func (t *Tokenizer) Walk(h Handler) error {
	for _, tok := range t.toks {
		var err error
		switch tok.Kind {
		case ObjectStart:
			err = h.BeginObject(tok)
		case ObjectEnd:
			err = h.EndObject(tok)
		case ArrayStart:
			err = h.BeginArray(tok)
		case ArrayEnd:
			err = h.EndArray(tok)
		case Field:
			err = h.Field(tok)
		case Number, String, Bool, Null:
			err = h.Value(tok)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
