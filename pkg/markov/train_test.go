package markov

import (
	"fmt"
	"reflect"
	"slices"
	"testing"
)

// TestAddSequenceTable checks the exact table built from a known sequence:
// with order 1, ingesting 1,1,1,2,2,2,3,3,3 must produce
//
//	(stop) -> [1]
//	(1)    -> [1, 1, 2]
//	(2)    -> [2, 2, 3]
//	(3)    -> [3, 3, stop]
//
// with each successor list in observation order.
func TestAddSequenceTable(t *testing.T) {
	m, err := NewModel[int](1)
	if err != nil {
		t.Fatalf("NewModel() error = %v", err)
	}
	m.AddSequence([]int{1, 1, 1, 2, 2, 2, 3, 3, 3})

	stop := StopToken[int]()
	wantEntries := []Entry[int]{
		{Key: []Token[int]{stop}, Successors: []Token[int]{{Value: 1}}},
		{Key: []Token[int]{{Value: 1}}, Successors: []Token[int]{{Value: 1}, {Value: 1}, {Value: 2}}},
		{Key: []Token[int]{{Value: 2}}, Successors: []Token[int]{{Value: 2}, {Value: 2}, {Value: 3}}},
		{Key: []Token[int]{{Value: 3}}, Successors: []Token[int]{{Value: 3}, {Value: 3}, stop}},
	}

	if got := len(m.State()); got != len(wantEntries) {
		t.Fatalf("table has %d keys, want %d", got, len(wantEntries))
	}
	for _, want := range wantEntries {
		if got := m.Successors(want.Key); !reflect.DeepEqual(got, want.Successors) {
			t.Errorf("Successors(%v) = %v, want %v", want.Key, got, want.Successors)
		}
	}
}

func TestAddSequenceStartKey(t *testing.T) {
	m := setupTestModelWithData(t)

	// The start key collects the first token of every ingested sequence.
	want := []Token[string]{{Value: "one"}, {Value: "red"}}
	if got := m.Successors(m.StartKey()); !reflect.DeepEqual(got, want) {
		t.Errorf("start key successors = %v, want %v", got, want)
	}
}

func TestAddSequenceTerminalKey(t *testing.T) {
	m := setupTestModelWithData(t)

	for _, sentence := range testSentences {
		last := sentence[len(sentence)-2:]
		key := []Token[string]{{Value: last[0]}, {Value: last[1]}}
		succ := m.Successors(key)
		if !slices.Contains(succ, StopToken[string]()) {
			t.Errorf("Successors(%v) = %v, want a stop token", key, succ)
		}
	}
}

func TestAddSequenceAccumulates(t *testing.T) {
	m := setupTestModel(t)
	sentence := testSentences[0]

	m.AddSequence(sentence)
	first := m.Stats()
	m.AddSequence(sentence)
	second := m.Stats()

	if second.Keys != first.Keys {
		t.Errorf("re-ingesting grew the key count from %d to %d", first.Keys, second.Keys)
	}
	if second.Transitions != 2*first.Transitions {
		t.Errorf("Transitions = %d after re-ingesting, want %d", second.Transitions, 2*first.Transitions)
	}

	want := []Token[string]{{Value: "one"}, {Value: "one"}}
	if got := m.Successors(m.StartKey()); !reflect.DeepEqual(got, want) {
		t.Errorf("start key successors = %v, want %v", got, want)
	}
}

func TestAddSequenceEmpty(t *testing.T) {
	m := setupTestModel(t)
	m.AddSequence(nil)

	// An empty sequence still records a start-to-stop transition.
	want := []Token[string]{StopToken[string]()}
	if got := m.Successors(m.StartKey()); !reflect.DeepEqual(got, want) {
		t.Errorf("start key successors = %v, want %v", got, want)
	}
	wantStats := Stats{Keys: 1, Transitions: 1, Starters: 1, Vocabulary: 0}
	if got := m.Stats(); got != wantStats {
		t.Errorf("Stats() = %+v, want %+v", got, wantStats)
	}
}

func BenchmarkAddSequence(b *testing.B) {
	corpus := createBenchmarkCorpus()

	for _, order := range []int{1, 2, 3, 4, 5} {
		b.Run(fmt.Sprintf("Order%d", order), func(b *testing.B) {
			m, err := NewModel[string](order)
			if err != nil {
				b.Fatalf("NewModel() error = %v", err)
			}

			b.ReportAllocs()
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				for _, sequence := range corpus {
					m.AddSequence(sequence)
				}
			}
		})
	}
}
