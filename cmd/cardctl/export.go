package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"cardcompare/pkg/catalog"
	"cardcompare/pkg/database"
)

func newExportCmd(opts *options) *cobra.Command {
	export := &cobra.Command{
		Use:   "export",
		Short: "Write a snapshot of the catalog",
	}
	export.AddCommand(newExportSQLiteCmd(opts), newExportCSVCmd(opts))
	return export
}

func newExportSQLiteCmd(opts *options) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "sqlite",
		Short: "Write the catalog to a SQLite snapshot that the server can load with --catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, ctx, cancel, err := opts.load(cmd)
			if err != nil {
				return err
			}
			defer cancel()

			if out == "" {
				out = database.DefaultConfig().Path
			}
			if err := catalog.WriteSQLite(ctx, c, out); err != nil {
				return fmt.Errorf("export sqlite: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "exported %d cards to %s\n", c.Len(), out)
			return nil
		},
	}
	cmd.Flags().StringVar(&out, "out", "", "output path (default: $CARDCOMPARE_DB_PATH or ~/.cardcompare/catalog.db)")
	return cmd
}

func newExportCSVCmd(opts *options) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "csv",
		Short: "Write one CSV row per card",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, _, cancel, err := opts.load(cmd)
			if err != nil {
				return err
			}
			defer cancel()

			if out == "-" {
				return writeCSV(cmd.OutOrStdout(), c)
			}
			if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
				return err
			}
			f, err := os.Create(out)
			if err != nil {
				return err
			}
			defer f.Close()

			if err := writeCSV(f, c); err != nil {
				return fmt.Errorf("export csv: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "exported %d cards to %s\n", c.Len(), out)
			return nil
		},
	}
	cmd.Flags().StringVar(&out, "out", "data/cards.csv", `output CSV path ("-" for stdout)`)
	return cmd
}

var csvHeader = []string{"id", "slug", "name", "bank", "network", "annual_fee", "rewards_rate", "welcome_bonus", "tags", "rating", "review_count", "apply_link", "last_updated"}

func writeCSV(dst io.Writer, c *catalog.Catalog) error {
	w := csv.NewWriter(dst)
	if err := w.Write(csvHeader); err != nil {
		return err
	}

	for _, card := range c.Cards() {
		if err := w.Write([]string{
			card.ID,
			card.Slug,
			card.Name,
			card.Bank,
			card.Network,
			card.AnnualFee,
			card.RewardsRate,
			card.WelcomeBonus,
			strings.Join(card.Tags, "|"),
			strconv.FormatFloat(card.Rating, 'f', 1, 64),
			strconv.Itoa(card.ReviewCount),
			card.ApplyLink,
			card.LastUpdated,
		}); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}
