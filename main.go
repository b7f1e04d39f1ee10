package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"gst-rates/config"
	"gst-rates/utils"
)

// app carries the dependencies shared by every command.
type app struct {
	cfg    *config.Config
	logger *utils.Logger
	out    io.Writer
}

func main() {
	logger := utils.NewLogger()
	cfg := config.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	a := &app{cfg: cfg, logger: logger, out: os.Stdout}
	if err := newRootCommand(a).ExecuteContext(ctx); err != nil {
		logger.Error("%v", err)
		stop()
		os.Exit(1)
	}
	stop()
}

func newRootCommand(a *app) *cobra.Command {
	var debug bool

	root := &cobra.Command{
		Use:   "gst-rates",
		Short: "Extract CBIC goods rates and build the HSN lookup table",
		Long: `gst-rates turns the CBIC "GST Goods and Services Rates" page into a JSON
rate table, and builds the normalized HSN code lookup used by the invoice forms.

Example:
  # Extract the saved page into data/gst-goods-rates.json
  gst-rates extract

  # Build the lookup table and export it
  gst-rates build --csv ./output/hsn_codes.csv`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			a.logger.SetDebug(debug || a.cfg.Debug())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	root.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	root.AddCommand(
		newExtractCommand(a),
		newBuildCommand(a),
		newLookupCommand(a),
		newSearchCommand(a),
		newReferenceCommand(a),
	)
	return root
}
