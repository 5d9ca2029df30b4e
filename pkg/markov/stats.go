package markov

import (
	"strings"
)

// Stats holds aggregated statistics for a single model.
type Stats struct {
	Keys        int // The number of distinct ngram keys in the table.
	Transitions int // The total number of recorded successors across all keys.
	Starters    int // The successors of the start key; one per ingested sequence.
	Vocabulary  int // The number of distinct real tokens seen.
}

// Stats returns a snapshot of the model's size. It walks the whole table to
// sum transition counts, so it is a debugging and reporting aid rather than
// a hot-path call.
func (m *Model[T]) Stats() Stats {
	var transitions int
	for _, succ := range m.table {
		transitions += len(succ)
	}

	parts := make([]string, m.order)
	for i := range parts {
		parts[i] = "0" // stopID
	}
	startKey := strings.Join(parts, " ")

	return Stats{
		Keys:        len(m.table),
		Transitions: transitions,
		Starters:    len(m.table[startKey]),
		Vocabulary:  len(m.vocab),
	}
}
