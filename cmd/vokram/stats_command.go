package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mccutchen/vokram/pkg/words"
)

func newStatsCommand(ctx *commandContext) *cobra.Command {
	var order int

	cmd := &cobra.Command{
		Use:   "stats [corpus files...]",
		Short: "Show chain statistics for a corpus",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger := ctx.ensureLogger(cfg)

			if !cmd.Flags().Changed("order") {
				order = cfg.Order
			}

			chain, err := words.NewChain(order, nil)
			if err != nil {
				return err
			}
			chain.SetLogger(logger)

			if err := feedCorpus(chain, args); err != nil {
				return err
			}

			stats := chain.Stats()
			rows := [][]string{
				{"Order", strconv.Itoa(order)},
				{"Sentences", strconv.FormatInt(stats.Sentences, 10)},
				{"Words", strconv.FormatInt(stats.Words, 10)},
				{"Vocabulary", strconv.Itoa(stats.Vocabulary)},
				{"Keys", strconv.Itoa(stats.Keys)},
				{"Transitions", strconv.Itoa(stats.Transitions)},
				{"Starters", strconv.Itoa(stats.Starters)},
			}

			stdout := cmd.OutOrStdout()
			fmt.Fprintln(stdout, renderStatsTable(rows, shouldColorize(stdout)))
			return nil
		},
	}

	cmd.Flags().IntVar(&order, "order", 2, "Model order (words of context per step)")
	return cmd
}
