package main

import (
	"fmt"
	"math/rand/v2"

	"github.com/spf13/cobra"

	"github.com/mccutchen/vokram/pkg/words"
)

func newGenCommand(ctx *commandContext) *cobra.Command {
	var order int
	var sentences int
	var minWords int
	var maxWords int
	var prompt string
	var seed uint64
	var noCapitalize bool
	var templatePath string

	cmd := &cobra.Command{
		Use:   "gen [corpus files...]",
		Short: "Generate sentences from a corpus",
		Long: `Build a Markov chain from the given corpus files (or stdin) and
generate sentences from it. With --template, render the named text/template
instead; the template can call sentence, paragraph, and title.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger := ctx.ensureLogger(cfg)

			if !cmd.Flags().Changed("order") {
				order = cfg.Order
			}
			if !cmd.Flags().Changed("sentences") {
				sentences = cfg.Sentences
			}
			if !cmd.Flags().Changed("min-words") {
				minWords = cfg.MinWords
			}
			if !cmd.Flags().Changed("max-words") {
				maxWords = cfg.MaxWords
			}

			chain, err := words.NewChain(order, nil)
			if err != nil {
				return err
			}
			chain.SetLogger(logger)

			if err := feedCorpus(chain, args); err != nil {
				return err
			}

			opts := []words.SentenceOption{
				words.WithMinWords(minWords),
				words.WithMaxWords(maxWords),
			}
			if prompt != "" {
				opts = append(opts, words.WithPrompt(prompt))
			}
			if noCapitalize {
				opts = append(opts, words.WithCapitalize(false))
			}
			if cmd.Flags().Changed("seed") {
				opts = append(opts, words.WithSentenceRand(rand.New(rand.NewPCG(seed, 0))))
			}

			if templatePath != "" {
				return renderTemplate(cmd.OutOrStdout(), templatePath, chain, opts)
			}

			out := cmd.OutOrStdout()
			for i := 0; i < sentences; i++ {
				sentence, err := chain.Sentence(opts...)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, sentence)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&sentences, "sentences", "n", 1, "Number of sentences to generate")
	cmd.Flags().IntVar(&order, "order", 2, "Model order (words of context per step)")
	cmd.Flags().IntVar(&minWords, "min-words", 1, "Minimum words per sentence")
	cmd.Flags().IntVar(&maxWords, "max-words", 100, "Maximum words per sentence (0 for no limit)")
	cmd.Flags().StringVarP(&prompt, "prompt", "p", "", "Seed text the generated sentence continues")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "PRNG seed for reproducible output")
	cmd.Flags().BoolVar(&noCapitalize, "no-capitalize", false, "Leave the first word as the corpus spells it")
	cmd.Flags().StringVarP(&templatePath, "template", "t", "", "Render this text/template file instead of plain sentences")
	return cmd
}
