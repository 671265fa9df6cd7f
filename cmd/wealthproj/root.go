package main

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/wpgo/wealth-projector/internal/logging"
)

type rootOptions struct {
	logLevel string
	pretty   bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "wealthproj",
		Short: "Project family wealth scenarios over a multi-year horizon",
		Long: `wealthproj projects a portfolio of cash and a volatile asset year by year
under a chosen growth model (manual cycle table or power law) and reports
solvency, savings and return outcomes for accumulation, net-worth and
drawdown scenarios.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "info", "log level: debug, info, warn, error")
	cmd.PersistentFlags().BoolVar(&opts.pretty, "pretty", false, "pretty console log output")

	cmd.AddCommand(newRunCmd(opts))
	cmd.AddCommand(newServeCmd(opts))
	cmd.AddCommand(newExampleCmd())

	return cmd
}

func (o *rootOptions) logger() zerolog.Logger {
	return logging.New(logging.Config{Level: o.logLevel, Pretty: o.pretty})
}
