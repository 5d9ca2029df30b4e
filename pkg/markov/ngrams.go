package markov

import (
	"fmt"
)

// Ngrams is a pull iterator over the overlapping n-grams of a token slice.
// Each call to NewNgrams returns a fresh iterator positioned at the first
// window; an iterator cannot be rewound once started.
type Ngrams[T any] struct {
	xs  []T
	n   int
	pos int
}

// NewNgrams returns an iterator over every run of n consecutive tokens in
// xs. Windows slide by exactly one token, so consecutive windows overlap by
// n-1 tokens. It returns ErrInvalidOrder if n is not positive, and
// ErrShortSequence if xs holds fewer than n tokens.
func NewNgrams[T any](xs []T, n int) (*Ngrams[T], error) {
	if n < 1 {
		return nil, fmt.Errorf("ngram size %d: %w", n, ErrInvalidOrder)
	}
	if len(xs) < n {
		return nil, fmt.Errorf("%d tokens with ngram size %d: %w", len(xs), n, ErrShortSequence)
	}
	return &Ngrams[T]{xs: xs, n: n}, nil
}

// Next returns the next window and true, or nil and false once the source
// is exhausted. The returned slice aliases the source; callers that keep a
// window across calls must copy it first.
func (g *Ngrams[T]) Next() ([]T, bool) {
	if g.pos+g.n > len(g.xs) {
		return nil, false
	}
	window := g.xs[g.pos : g.pos+g.n]
	g.pos++
	return window, true
}
