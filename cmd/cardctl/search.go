package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"cardcompare/internal/cards"
)

func newSearchCmd(opts *options) *cobra.Command {
	var bank string
	var tags []string
	var limit int

	cmd := &cobra.Command{
		Use:   "search [query]",
		Short: "Search the catalog, or list it with --bank/--tag filters",
		Long: `Without a query, lists cards matching the filters.
With a query, runs the same free-text search as the site.

Examples:
  cardctl search lounge
  cardctl search --bank hdfc --tag Cashback`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, _, cancel, err := opts.load(cmd)
			if err != nil {
				return err
			}
			defer cancel()

			repo := cards.NewRepo(c)
			var query string
			if len(args) == 1 {
				query = args[0]
			}

			items := repo.List(cards.ListQuery{Bank: bank, Tags: tags, Limit: limit})
			if query != "" {
				items = repo.Search(query)
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tBANK\tANNUAL FEE\tTAGS")
			for _, card := range items {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", card.ID, card.Name, card.Bank, card.AnnualFee, strings.Join(card.Tags, ", "))
			}
			if err := w.Flush(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d cards found\n", len(items))
			return nil
		},
	}
	cmd.Flags().StringVar(&bank, "bank", "", "case-insensitive bank substring")
	cmd.Flags().StringSliceVar(&tags, "tag", nil, "tag to match (repeatable, any-match)")
	cmd.Flags().IntVar(&limit, "limit", 0, "max results when listing (0 = all)")
	return cmd
}
