package main

import (
	"fmt"
	"io"
	"path/filepath"
	"slices"
	"strings"
	"text/template"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/mccutchen/vokram/pkg/words"
)

// renderTemplate parses the template file and executes it with generation
// functions bound to the chain. The base options carry the flags the user
// gave (prompt, word limits, seeded rand); per-function options override
// them where a function needs its own shape.
func renderTemplate(w io.Writer, path string, chain *words.Chain, opts []words.SentenceOption) error {
	tmpl, err := template.New(filepath.Base(path)).Funcs(templateFuncs(chain, opts)).ParseFiles(path)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}
	if err := tmpl.Execute(w, nil); err != nil {
		return fmt.Errorf("failed to execute template: %w", err)
	}
	return nil
}

func templateFuncs(chain *words.Chain, opts []words.SentenceOption) template.FuncMap {
	return template.FuncMap{
		"sentence": func() (string, error) {
			return chain.Sentence(opts...)
		},
		"paragraph": func(sentences int) (string, error) {
			var builder strings.Builder
			for i := 0; i < sentences; i++ {
				s, err := chain.Sentence(opts...)
				if err != nil {
					return "", err
				}
				if i > 0 {
					builder.WriteByte(' ')
				}
				builder.WriteString(s)
			}
			return builder.String(), nil
		},
		"title": func(maxWords int) (string, error) {
			s, err := chain.Sentence(append(slices.Clone(opts),
				words.WithMinWords(1),
				words.WithMaxWords(maxWords),
				words.WithCapitalize(false),
			)...)
			if err != nil {
				return "", err
			}
			return cases.Title(language.Und).String(strings.TrimRight(s, ".!?")), nil
		},
	}
}
