package markov

import (
	"fmt"
	"log/slog"
	"strconv"
)

// AddSequence records one token sequence in the model. The sequence is
// framed with order stop tokens in front and one stop token at the end, and
// a window of order+1 tokens slides across the framed sequence: the first
// order tokens of each window form the key and the last is appended to that
// key's successor list. The framing guarantees that the start key maps to
// the sequence's first token and that the sequence's final window maps to a
// stop, so walks both enter and leave the sequence correctly.
//
// An empty sequence is valid and records a single start-to-stop transition.
// Repeated calls accumulate; nothing is ever overwritten, so feeding the
// same sequence twice doubles the weight of every transition it contributes.
func (m *Model[T]) AddSequence(xs []T) {
	// The leading and trailing slots keep the zero value, which is stopID.
	fullSlice := make([]int32, len(xs)+m.order+1)
	for i, x := range xs {
		fullSlice[m.order+i] = m.intern(x)
	}

	ngrams, err := NewNgrams(fullSlice, m.order+1)
	if err != nil {
		// The framed sequence always holds at least order+1 ids, so this is
		// unreachable unless the framing above is broken.
		panic(fmt.Sprintf("markov: framed sequence too short: %v", err))
	}

	var keyBuf []byte
	for {
		window, ok := ngrams.Next()
		if !ok {
			break
		}
		keyBuf = keyBuf[:0]
		for j, id := range window[:m.order] {
			if j > 0 {
				keyBuf = append(keyBuf, ' ')
			}
			keyBuf = strconv.AppendInt(keyBuf, int64(id), 10)
		}
		key := string(keyBuf)
		m.table[key] = append(m.table[key], window[m.order])
	}

	m.logger.Debug("Sequence added",
		slog.Int("tokens", len(xs)),
		slog.Int("table_keys", len(m.table)),
	)
}

// intern maps a real token to its dense vocabulary ID, assigning the next
// free ID on first sight. ID 0 stays reserved for the stop token.
func (m *Model[T]) intern(tok T) int32 {
	if id, ok := m.vocab[tok]; ok {
		return id
	}
	id := int32(len(m.values))
	m.values = append(m.values, tok)
	m.vocab[tok] = id
	return id
}
