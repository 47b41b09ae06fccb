// Command cardctl validates, searches and exports the card catalog.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"cardcompare/pkg/catalog"
	"cardcompare/pkg/logger"
)

type options struct {
	catalog string
	timeout time.Duration
	verbose bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:           "cardctl",
		Short:         "Inspect and export the credit card catalog",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.catalog, "catalog", os.Getenv("CARDCOMPARE_CATALOG"),
		"catalog source: .yaml/.json data file or .db snapshot (default: embedded catalog)")
	root.PersistentFlags().DurationVar(&opts.timeout, "timeout", 30*time.Second, "operation timeout")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newValidateCmd(opts))
	root.AddCommand(newSearchCmd(opts))
	root.AddCommand(newExportCmd(opts))
	root.AddCommand(newAskCmd())
	return root
}

// load reads the configured catalog under the command timeout.
func (o *options) load(cmd *cobra.Command) (*catalog.Catalog, context.Context, context.CancelFunc, error) {
	base := cmd.Context()
	if base == nil {
		base = context.Background()
	}
	ctx, cancel := context.WithTimeout(base, o.timeout)

	c, err := catalog.Load(ctx, o.catalog)
	if err != nil {
		cancel()
		return nil, nil, nil, err
	}
	o.logger().Debug("catalog loaded", "source", o.catalog, "cards", c.Len())
	return c, ctx, cancel, nil
}

func (o *options) logger() *logger.Logger {
	if !o.verbose {
		return logger.NewNop()
	}
	l, err := logger.New("dev")
	if err != nil {
		return logger.NewNop()
	}
	return l
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
