package words

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/mccutchen/vokram/pkg/markov"
)

// ErrSentenceLength is returned when no generated sentence reaches the
// requested minimum length within the retry budget.
var ErrSentenceLength = errors.New("words: could not generate a sentence of the requested length")

// sentenceAttempts bounds the retries performed for WithMinWords before
// giving up.
const sentenceAttempts = 10

// sentenceOptions is used by Sentence to configure generation and
// rendering.
type sentenceOptions struct {
	minWords   int
	maxWords   int
	prompt     string
	capitalize bool
	rng        *rand.Rand
}

// SentenceOption is a function that configures sentence generation. It's
// used as a variadic argument to Sentence.
type SentenceOption func(*sentenceOptions)

// WithMinWords sets the minimum number of words a sentence must contain.
// Shorter results are discarded and regenerated; if no attempt reaches the
// minimum, Sentence fails with ErrSentenceLength.
func WithMinWords(n int) SentenceOption {
	return func(o *sentenceOptions) { o.minWords = n }
}

// WithMaxWords caps the number of words generated after any prompt.
// Default: 100. Zero removes the cap entirely, which can run away on a
// model whose walks rarely reach a sentence end.
func WithMaxWords(n int) SentenceOption {
	return func(o *sentenceOptions) { o.maxWords = n }
}

// WithPrompt seeds generation with a piece of text: the prompt is
// tokenized, the walk continues from its final words, and the rendered
// sentence starts with the prompt. A prompt the model has never seen makes
// Sentence fail with an error wrapping markov.ErrUnknownState.
func WithPrompt(prompt string) SentenceOption {
	return func(o *sentenceOptions) { o.prompt = prompt }
}

// WithCapitalize specifies whether the first word of the sentence is
// title-cased. Default: true.
func WithCapitalize(enabled bool) SentenceOption {
	return func(o *sentenceOptions) { o.capitalize = enabled }
}

// WithSentenceRand supplies the source of randomness for the underlying
// walk, for reproducible output. The default is the shared top-level
// math/rand/v2 generator.
func WithSentenceRand(r *rand.Rand) SentenceOption {
	return func(o *sentenceOptions) { o.rng = r }
}

// Sentence generates one sentence from the fed corpus: it walks the model,
// joins the words with the tokenizer's separators, and closes with its
// terminator. Generation can be customized with SentenceOption functions.
func (c *Chain) Sentence(opts ...SentenceOption) (string, error) {
	options := &sentenceOptions{
		minWords:   0,
		maxWords:   100,
		capitalize: true,
	}
	for _, opt := range opts {
		opt(options)
	}

	var genOpts []markov.GenerateOption
	if options.maxWords > 0 {
		genOpts = append(genOpts, markov.WithMaxTokens(options.maxWords))
	}
	if options.rng != nil {
		genOpts = append(genOpts, markov.WithRand(options.rng))
	}

	var seed []string
	if options.prompt != "" {
		var err error
		if seed, err = c.promptWords(options.prompt); err != nil {
			return "", err
		}
	}

	for attempt := 0; attempt < sentenceAttempts; attempt++ {
		generated, err := c.generateWords(seed, genOpts)
		if err != nil {
			return "", err
		}
		if len(seed)+len(generated) < options.minWords {
			c.logger.Debug("Sentence below minimum length, retrying",
				slog.Int("words", len(seed)+len(generated)),
				slog.Int("min_words", options.minWords),
			)
			continue
		}
		return c.render(seed, generated, options.capitalize), nil
	}

	return "", fmt.Errorf("%w after %d attempts", ErrSentenceLength, sentenceAttempts)
}

// promptWords tokenizes a prompt into seed words. End tokens are dropped so
// the walk continues the prompt instead of closing it.
func (c *Chain) promptWords(prompt string) ([]string, error) {
	stream := c.tokenizer.NewStream(strings.NewReader(prompt))
	var seed []string
	for {
		token, err := stream.Next()
		if errors.Is(err, io.EOF) {
			return seed, nil
		}
		if err != nil {
			return nil, fmt.Errorf("tokenizer error while reading prompt: %w", err)
		}
		if !token.End {
			seed = append(seed, token.Text)
		}
	}
}

// generateWords drains one walk into a word slice.
func (c *Chain) generateWords(seed []string, genOpts []markov.GenerateOption) ([]string, error) {
	seq := c.model.GenerateFrom(seed, genOpts...)
	var generated []string
	for {
		word, err := seq.Next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return generated, nil
			}
			return nil, fmt.Errorf("generation failed: %w", err)
		}
		generated = append(generated, word)
	}
}

// render joins seed and generated words into display text using the
// tokenizer's separator and terminator rules.
func (c *Chain) render(seed, generated []string, capitalize bool) string {
	all := make([]string, 0, len(seed)+len(generated))
	all = append(all, seed...)
	all = append(all, generated...)
	if len(all) == 0 {
		return ""
	}

	if capitalize {
		all[0] = cases.Title(language.Und).String(all[0])
	}

	var builder strings.Builder
	last := ""
	for i, word := range all {
		if i > 0 {
			builder.WriteString(c.tokenizer.Separator(last, word))
		}
		builder.WriteString(word)
		last = word
	}
	builder.WriteString(c.tokenizer.Terminator(last))

	return builder.String()
}
