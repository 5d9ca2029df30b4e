package words

import (
	"bufio"
	"io"
	"regexp"
)

// DefaultTokenizer is the default implementation of the Tokenizer
// interface. It uses regular expressions to split text into words and
// punctuation, and marks sentence-ending punctuation as End tokens. Its
// behavior can be customized with functional options.
type DefaultTokenizer struct {
	separator             string
	terminator            string
	splitRegex            *regexp.Regexp
	endRegex              *regexp.Regexp
	separatorExcludeRegex *regexp.Regexp
	terminatorExcRegex    *regexp.Regexp
}

// TokenizerOption is a function that configures a DefaultTokenizer.
type TokenizerOption func(*DefaultTokenizer)

// WithSeparator sets the string used for joining words during generation.
// Default: " "
func WithSeparator(sep string) TokenizerOption {
	return func(t *DefaultTokenizer) {
		t.separator = sep
	}
}

// WithTerminator sets the string appended after a generated sentence.
// Default: "."
func WithTerminator(term string) TokenizerOption {
	return func(t *DefaultTokenizer) {
		t.terminator = term
	}
}

// WithSplitRegex sets the regex used to split input text into tokens.
// Default: `[\w']+|[.,!?;]`
func WithSplitRegex(splitRegex string) TokenizerOption {
	return func(t *DefaultTokenizer) {
		t.splitRegex = regexp.MustCompile(splitRegex)
	}
}

// WithEndRegex sets the regex that decides whether a token ends a sentence.
// Default: `^[.!?]$`
func WithEndRegex(endRegex string) TokenizerOption {
	return func(t *DefaultTokenizer) {
		t.endRegex = regexp.MustCompile(endRegex)
	}
}

// WithSeparatorExcludeRegex sets the regex matching words that do not get a
// separator put before them, such as punctuation.
func WithSeparatorExcludeRegex(excRegex string) TokenizerOption {
	return func(t *DefaultTokenizer) {
		t.separatorExcludeRegex = regexp.MustCompile(excRegex)
	}
}

// WithTerminatorExcludeRegex sets the regex matching final words that do
// not get a terminator put after them.
func WithTerminatorExcludeRegex(excRegex string) TokenizerOption {
	return func(t *DefaultTokenizer) {
		t.terminatorExcRegex = regexp.MustCompile(excRegex)
	}
}

// NewDefaultTokenizer creates a tokenizer with default settings, which can
// be overridden by providing one or more TokenizerOption functions.
func NewDefaultTokenizer(opts ...TokenizerOption) *DefaultTokenizer {
	t := &DefaultTokenizer{
		separator:  " ",
		terminator: ".",
		// Sequences of word characters, or single instances of common
		// punctuation.
		splitRegex: regexp.MustCompile(`[\w']+|[.,!?;]`),
		// Sentence-ending punctuation marks.
		endRegex: regexp.MustCompile(`^[.!?]$`),
		// Words that don't get a separator put before them.
		separatorExcludeRegex: regexp.MustCompile(`^[.,!?;]`),
		// Words that don't get a terminator put after them.
		terminatorExcRegex: regexp.MustCompile(`^[.,!?;]`),
	}

	for _, opt := range opts {
		opt(t)
	}

	return t
}

// Separator returns the configured separator, or nothing when the next
// word is one that attaches directly, like punctuation.
func (t *DefaultTokenizer) Separator(_, next string) string {
	if t.separatorExcludeRegex.MatchString(next) {
		return ""
	}
	return t.separator
}

// Terminator returns the configured terminator, or nothing when the last
// word already carries its own, like trailing punctuation.
func (t *DefaultTokenizer) Terminator(last string) string {
	if t.terminatorExcRegex.MatchString(last) {
		return ""
	}
	return t.terminator
}

// NewStream returns the stream processor.
func (t *DefaultTokenizer) NewStream(r io.Reader) StreamTokenizer {
	return &DefaultStreamTokenizer{
		scanner:    bufio.NewScanner(r),
		buffer:     []string{},
		splitRegex: t.splitRegex,
		endRegex:   t.endRegex,
	}
}

// DefaultStreamTokenizer is the default implementation of the
// StreamTokenizer interface. It uses a bufio.Scanner and regular
// expressions to read and tokenize a stream line by line.
type DefaultStreamTokenizer struct {
	scanner    *bufio.Scanner
	buffer     []string
	splitRegex *regexp.Regexp
	endRegex   *regexp.Regexp
}

// Next returns the next token from the stream. It returns a Token and a nil
// error on success. When the stream is exhausted, it returns a nil Token
// and io.EOF. Any other error indicates a problem reading from the
// underlying stream.
func (s *DefaultStreamTokenizer) Next() (*Token, error) {
	for len(s.buffer) == 0 {
		if !s.scanner.Scan() {
			if err := s.scanner.Err(); err != nil {
				return nil, err
			}
			return nil, io.EOF
		}
		s.buffer = s.splitRegex.FindAllString(s.scanner.Text(), -1)
	}

	word := s.buffer[0]
	s.buffer = s.buffer[1:]

	return &Token{Text: word, End: s.endRegex.MatchString(word)}, nil
}
