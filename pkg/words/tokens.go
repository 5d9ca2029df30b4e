package words

import (
	"io"
)

// Token represents a single tokenized unit of text. It contains the text
// itself and a flag indicating whether it ends a sentence.
type Token struct {
	Text string
	End  bool
}

// Tokenizer defines the contract for splitting input text into tokens and
// for joining generated words back into display text. This keeps the chain
// logic independent of any particular tokenization strategy.
type Tokenizer interface {
	// NewStream returns a stateful StreamTokenizer for processing an io.Reader.
	NewStream(io.Reader) StreamTokenizer
	// Separator returns the string used to join two adjacent words when
	// building a generated sentence, given the previous and next words.
	Separator(prev, next string) string
	// Terminator returns the string appended after the last word of a
	// generated sentence, given that word.
	Terminator(last string) string
}

// StreamTokenizer is a stateful tokenizer that processes a stream of data,
// returning one token at a time.
type StreamTokenizer interface {
	// Next returns the next token from the stream. It returns io.EOF as the
	// error when the stream is fully consumed.
	Next() (*Token, error)
}
