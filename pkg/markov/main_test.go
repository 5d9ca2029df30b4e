package markov

import (
	"errors"
	"go/build"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

// testSentences is the shared training corpus, pre-split into one token
// sequence per sentence.
var testSentences = [][]string{
	{"one", "fish", "two", "fish"},
	{"red", "fish", "blue", "fish"},
}

// setupTestModel creates an order-2 string model for testing.
func setupTestModel(t *testing.T) *Model[string] {
	t.Helper()
	m, err := NewModel[string](2)
	if err != nil {
		t.Fatalf("NewModel() error = %v", err)
	}
	return m
}

// setupTestModelWithData is a convenience helper that also ingests the
// shared corpus.
func setupTestModelWithData(t *testing.T) *Model[string] {
	t.Helper()
	m := setupTestModel(t)
	for _, sentence := range testSentences {
		m.AddSequence(sentence)
	}
	return m
}

// collectTokens drains a Sequence and fails the test on anything other than
// a clean io.EOF.
func collectTokens(t *testing.T, seq *Sequence[string]) []string {
	t.Helper()
	var out []string
	for {
		tok, err := seq.Next()
		if errors.Is(err, io.EOF) {
			return out
		}
		if err != nil {
			t.Fatalf("Next() error = %v", err)
		}
		out = append(out, tok)
	}
}

var (
	benchmarkCorpus [][]string
	corpusOnce      sync.Once
)

// createBenchmarkCorpus reads Go source files to create token sequences for
// benchmarking, one sequence per source line.
func createBenchmarkCorpus() [][]string {
	corpusOnce.Do(func() {
		goRoot := build.Default.GOROOT
		filesToRead := []string{
			filepath.Join(goRoot, "src/net/http/server.go"),
			filepath.Join(goRoot, "src/go/parser/parser.go"),
			filepath.Join(goRoot, "src/encoding/json/encode.go"),
		}

		for _, file := range filesToRead {
			content, err := os.ReadFile(file)
			if err != nil {
				benchmarkCorpus = [][]string{{"this", "is", "a", "fallback", "corpus", "for", "benchmarking"}}
				return
			}
			for _, line := range strings.Split(string(content), "\n") {
				if words := strings.Fields(line); len(words) > 0 {
					benchmarkCorpus = append(benchmarkCorpus, words)
				}
			}
		}
	})
	return benchmarkCorpus
}
