package markov

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
)

var (
	// ErrInvalidOrder is returned when a model order or ngram size is not a
	// positive integer.
	ErrInvalidOrder = errors.New("markov: order must be at least 1")
	// ErrShortSequence is returned when an ngram source holds fewer tokens
	// than the requested window size.
	ErrShortSequence = errors.New("markov: sequence shorter than ngram size")
	// ErrUnknownState is returned when a generation walk lands on a key the
	// model never recorded. This cannot happen on a walk that starts at the
	// start key; it indicates a seed the model has not seen.
	ErrUnknownState = errors.New("markov: unknown state")
)

// stopID is the vocabulary ID reserved for the stop token. Real tokens are
// assigned IDs starting at 1.
const stopID int32 = 0

// Token is one element of a model's alphabet: either a real token carrying
// a Value, or the stop sentinel that marks sequence boundaries. Because the
// boundary marker is a separate flag rather than a distinguished value of T,
// it can never collide with real data.
type Token[T comparable] struct {
	Value T
	Stop  bool
}

// StopToken returns the boundary sentinel for token type T.
func StopToken[T comparable]() Token[T] {
	return Token[T]{Stop: true}
}

// Entry is one key of a model's transition table together with its recorded
// successor list, decoded for inspection.
type Entry[T comparable] struct {
	Key        []Token[T]
	Successors []Token[T]
}

// Model is an in-memory Markov chain over tokens of any comparable type.
// It maps each window of order consecutive tokens seen during ingestion to
// the list of tokens observed to follow that window. Successor lists keep
// duplicates in observation order, so a token's share of a list is its
// transition weight; no separate counts are stored.
//
// AddSequence is the only operation that mutates a model. Generation and
// inspection only read, so any number of walks may run concurrently over a
// model that is no longer being fed. Feeding and walking at the same time
// is not safe and must be serialized by the caller.
type Model[T comparable] struct {
	order  int
	vocab  map[T]int32
	values []T
	table  map[string][]int32
	logger *slog.Logger
}

// NewModel creates an empty model with the given order, the fixed window
// size of its transition keys. It returns ErrInvalidOrder if order is not
// positive.
func NewModel[T comparable](order int) (*Model[T], error) {
	if order < 1 {
		return nil, fmt.Errorf("model order %d: %w", order, ErrInvalidOrder)
	}
	return &Model[T]{
		order:  order,
		vocab:  make(map[T]int32),
		values: make([]T, 1), // index 0 is reserved for the stop token
		table:  make(map[string][]int32),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}, nil
}

// SetLogger sets the logger for the Model. By default, all logs are
// discarded.
func (m *Model[T]) SetLogger(logger *slog.Logger) {
	if logger != nil {
		m.logger = logger
	}
}

// Order returns the window size fixed at construction.
func (m *Model[T]) Order() int {
	return m.order
}

// StartKey returns the key every fresh walk begins at: order copies of the
// stop token. It exists in the table once anything has been ingested, and
// its successor list holds the first token of every ingested sequence.
func (m *Model[T]) StartKey() []Token[T] {
	key := make([]Token[T], m.order)
	for i := range key {
		key[i] = Token[T]{Stop: true}
	}
	return key
}

// Successors returns the recorded successor list for key in observation
// order, or nil if the key was never seen. The key must hold exactly Order
// tokens. The result is a copy; mutating it does not affect the model.
func (m *Model[T]) Successors(key []Token[T]) []Token[T] {
	if len(key) != m.order {
		return nil
	}
	var keyBuf []byte
	for i, tok := range key {
		if i > 0 {
			keyBuf = append(keyBuf, ' ')
		}
		id := stopID
		if !tok.Stop {
			var ok bool
			if id, ok = m.vocab[tok.Value]; !ok {
				return nil
			}
		}
		keyBuf = strconv.AppendInt(keyBuf, int64(id), 10)
	}
	ids, ok := m.table[string(keyBuf)]
	if !ok {
		return nil
	}
	succ := make([]Token[T], len(ids))
	for i, id := range ids {
		succ[i] = m.tokenOf(id)
	}
	return succ
}

// State returns a decoded snapshot of the whole transition table. The order
// of entries is unspecified; the order within each successor list is
// observation order. Mutating the snapshot does not affect the model.
func (m *Model[T]) State() []Entry[T] {
	entries := make([]Entry[T], 0, len(m.table))
	for key, ids := range m.table {
		entry := Entry[T]{
			Key:        make([]Token[T], 0, m.order),
			Successors: make([]Token[T], len(ids)),
		}
		for _, idStr := range strings.Split(key, " ") {
			id, _ := strconv.Atoi(idStr)
			entry.Key = append(entry.Key, m.tokenOf(int32(id)))
		}
		for i, id := range ids {
			entry.Successors[i] = m.tokenOf(id)
		}
		entries = append(entries, entry)
	}
	return entries
}

// tokenOf decodes a vocabulary ID back into a Token.
func (m *Model[T]) tokenOf(id int32) Token[T] {
	if id == stopID {
		return Token[T]{Stop: true}
	}
	return Token[T]{Value: m.values[id]}
}
