package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"cardcompare/internal/cards"
)

func newValidateCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Load the catalog, check every record and print counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, _, cancel, err := opts.load(cmd)
			if err != nil {
				return fmt.Errorf("catalog invalid: %w", err)
			}
			defer cancel()

			repo := cards.NewRepo(c)
			var reviews, offers, history int
			for _, card := range repo.ListAll() {
				reviews += len(card.Reviews)
				offers += len(card.OfferHistory)
				history += len(card.PriceHistory)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "catalog ok: %d cards, %d banks, %d tags\n", c.Len(), len(repo.Banks()), len(repo.Tags()))
			fmt.Fprintf(out, "reviews: %d, offers: %d, price history entries: %d\n", reviews, offers, history)
			return nil
		},
	}
}
