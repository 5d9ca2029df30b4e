package markov

import (
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"strconv"
)

// generateOptions is used by the generate functions to configure a walk.
type generateOptions struct {
	maxTokens int
	intn      func(n int) int
}

// GenerateOption is a function that configures generation parameters. It's
// used as a variadic argument in Generate and GenerateFrom.
type GenerateOption func(*generateOptions)

// WithMaxTokens caps the number of tokens a walk emits before it is cut
// off. Zero, the default, means unbounded: a model whose table cycles
// without reaching a stop transition can generate forever, and bounding
// that is the caller's choice, not a hidden default.
func WithMaxTokens(n int) GenerateOption {
	return func(o *generateOptions) { o.maxTokens = n }
}

// WithRand supplies the source of randomness for successor selection, so
// tests can seed it and concurrent walks can avoid sharing one source. The
// default is the top-level math/rand/v2 generator.
func WithRand(r *rand.Rand) GenerateOption {
	return func(o *generateOptions) { o.intn = r.IntN }
}

// Sequence is a lazily generated stream of tokens. Each Next call picks one
// successor; abandoning a Sequence early has no cost and no side effects,
// since a walk only ever reads the model.
type Sequence[T comparable] struct {
	model   *Model[T]
	key     []int32
	keyBuf  []byte
	intn    func(n int) int
	max     int
	emitted int
	err     error
}

// Generate starts a new walk at the start key and returns its lazy token
// stream. Each step picks uniformly among the recorded successors of the
// current key, so a successor's repetition count in the table is its
// weight. Generation can be customized with GenerateOption functions.
func (m *Model[T]) Generate(opts ...GenerateOption) *Sequence[T] {
	return m.GenerateFrom(nil, opts...)
}

// GenerateFrom starts a walk as if seed had just been emitted: the initial
// key is the last Order tokens of seed, left-padded with stop tokens when
// seed is shorter than Order. Seed tokens are not re-emitted. A seed the
// model never observed leaves the walk on an unrecorded key, and the first
// Next call reports ErrUnknownState.
func (m *Model[T]) GenerateFrom(seed []T, opts ...GenerateOption) *Sequence[T] {
	options := &generateOptions{
		maxTokens: 0,
		intn:      rand.IntN,
	}
	for _, opt := range opts {
		opt(options)
	}

	s := &Sequence[T]{
		model: m,
		key:   make([]int32, m.order), // zeroed, so a fresh walk sits on the start key
		intn:  options.intn,
		max:   options.maxTokens,
	}
	for _, tok := range seed {
		id, ok := m.vocab[tok]
		if !ok {
			s.err = fmt.Errorf("seed token %v not found in model vocabulary: %w", tok, ErrUnknownState)
			break
		}
		s.key = append(s.key[1:], id)
	}
	return s
}

// Next returns the next generated token. It returns io.EOF when the walk
// takes a stop transition (the natural end of a sequence; the stop itself
// is never emitted) or when the WithMaxTokens cap is reached. A walk that
// lands on a key the model never recorded returns an error wrapping
// ErrUnknownState. All errors are sticky: once Next has returned one, every
// later call returns the same.
func (s *Sequence[T]) Next() (T, error) {
	var zero T
	if s.err != nil {
		return zero, s.err
	}
	if s.max > 0 && s.emitted >= s.max {
		s.model.logger.Debug("Generation stopped at max tokens",
			slog.Int("max_tokens", s.max),
		)
		s.err = io.EOF
		return zero, s.err
	}

	s.keyBuf = s.keyBuf[:0]
	for j, id := range s.key {
		if j > 0 {
			s.keyBuf = append(s.keyBuf, ' ')
		}
		s.keyBuf = strconv.AppendInt(s.keyBuf, int64(id), 10)
	}

	choices, ok := s.model.table[string(s.keyBuf)]
	if !ok {
		s.err = fmt.Errorf("no successors recorded for key '%s': %w", s.keyBuf, ErrUnknownState)
		return zero, s.err
	}

	next := choices[s.intn(len(choices))]
	if next == stopID {
		s.model.logger.Debug("Generation terminated by stop token",
			slog.Int("generated_length", s.emitted),
		)
		s.err = io.EOF
		return zero, s.err
	}

	s.key = append(s.key[1:], next)
	s.emitted++
	return s.model.values[next], nil
}
