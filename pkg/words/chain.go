package words

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/mccutchen/vokram/pkg/markov"
)

// Chain binds a word tokenizer to a string Markov model. Feed it corpus
// text and it ingests one token sequence per sentence; ask it for a
// Sentence and it walks the model and renders the words back into display
// text.
//
// Like the underlying model, a Chain must not be fed while it is
// generating. Once feeding is done, any number of Sentence calls may run
// concurrently as long as each supplies its own randomness source.
type Chain struct {
	model     *markov.Model[string]
	tokenizer Tokenizer
	logger    *slog.Logger
	sentences int64
	words     int64
}

// ChainStats pairs the model's table statistics with counters for the fed
// corpus.
type ChainStats struct {
	markov.Stats
	Sentences int64 // Sentences ingested across all Feed calls.
	Words     int64 // Words ingested across all Feed calls.
}

// NewChain creates a chain of the given model order. A nil tokenizer gets
// the default word tokenizer. It returns markov.ErrInvalidOrder if order is
// not positive.
func NewChain(order int, tokenizer Tokenizer) (*Chain, error) {
	model, err := markov.NewModel[string](order)
	if err != nil {
		return nil, err
	}
	if tokenizer == nil {
		tokenizer = NewDefaultTokenizer()
	}
	return &Chain{
		model:     model,
		tokenizer: tokenizer,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}, nil
}

// SetLogger sets the logger for the Chain. By default, all logs are
// discarded.
func (c *Chain) SetLogger(logger *slog.Logger) {
	if logger != nil {
		c.logger = logger
	}
}

// Model exposes the underlying Markov model for inspection.
func (c *Chain) Model() *markov.Model[string] {
	return c.model
}

// Stats returns a snapshot of the model's size along with corpus counters.
func (c *Chain) Stats() ChainStats {
	return ChainStats{
		Stats:     c.model.Stats(),
		Sentences: c.sentences,
		Words:     c.words,
	}
}

// Feed tokenizes a stream of corpus text and ingests it, one sequence per
// sentence. Sentence boundaries are the tokenizer's End tokens, which are
// consumed rather than ingested; the model tracks boundaries with its own
// stop marker. Repeated calls accumulate into the same model.
func (c *Chain) Feed(r io.Reader) error {
	// maxSentenceLength keeps a corpus without sentence boundaries from
	// buffering without bound; an oversized sentence is split here.
	const maxSentenceLength = 4096

	stream := c.tokenizer.NewStream(r)
	var sentence []string
	var fed, words int64

	for {
		token, err := stream.Next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return fmt.Errorf("tokenizer error: %w", err)
		}

		if !token.End && len(sentence) < maxSentenceLength {
			sentence = append(sentence, token.Text)
		} else if len(sentence) > 0 {
			c.model.AddSequence(sentence)
			fed++
			words += int64(len(sentence))
			sentence = sentence[:0]
		}
	}

	if len(sentence) > 0 {
		c.model.AddSequence(sentence)
		fed++
		words += int64(len(sentence))
	}

	c.sentences += fed
	c.words += words

	c.logger.Info("Corpus ingested",
		slog.Int64("sentences", fed),
		slog.Int64("words", words),
		slog.Int64("total_sentences", c.sentences),
	)

	return nil
}
