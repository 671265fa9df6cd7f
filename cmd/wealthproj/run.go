package main

import (
	"fmt"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/wpgo/wealth-projector/internal/calculation"
	"github.com/wpgo/wealth-projector/internal/config"
	"github.com/wpgo/wealth-projector/internal/logging"
	"github.com/wpgo/wealth-projector/internal/output"
	"github.com/wpgo/wealth-projector/internal/pricefeed"
)

func newRunCmd(root *rootOptions) *cobra.Command {
	var (
		format     string
		outputPath string
		save       bool
		fetchPrice bool
		asset      string
		currency   string
		priceFlag  string
	)

	cmd := &cobra.Command{
		Use:   "run <config.yaml>",
		Short: "Project a scenario configuration and print the ledger",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := root.logger()

			parser := config.NewInputParser()
			cfg, err := parser.LoadFromFileAt(args[0], time.Now().UTC())
			if err != nil {
				return err
			}

			if priceFlag != "" {
				price, err := decimal.NewFromString(priceFlag)
				if err != nil {
					return fmt.Errorf("invalid --price value %q: %w", priceFlag, err)
				}
				cfg.StartingPrice = price
			} else if fetchPrice {
				feed := pricefeed.NewClient()
				price, live := feed.SpotOrFallback(cmd.Context(), asset, currency, cfg.StartingPrice)
				if live {
					log.Info().Str("asset", asset).Str("currency", currency).
						Str("price", price.String()).Msg("using live spot price")
				} else {
					log.Warn().Str("fallback", cfg.StartingPrice.String()).
						Msg("price fetch failed, using configured price")
				}
				cfg.StartingPrice = price
			}

			engine := calculation.NewEngine()
			engine.SetLogger(logging.NewEngineLogger(log))

			summary, err := engine.RunScenario(cmd.Context(), cfg)
			if err != nil {
				return err
			}

			formatter, err := output.ByName(format)
			if err != nil {
				return err
			}

			if save {
				path, err := output.WriteFormatted(formatter, summary, ".", formatExtension(format))
				if err != nil {
					return err
				}
				log.Info().Str("path", path).Msg("report written")
				return nil
			}

			data, err := formatter.Format(summary)
			if err != nil {
				return err
			}

			if outputPath != "" {
				if err := os.WriteFile(outputPath, data, 0644); err != nil {
					return fmt.Errorf("failed to write %s: %w", outputPath, err)
				}
				log.Info().Str("path", outputPath).Msg("report written")
				return nil
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	cmd.Flags().StringVar(&format, "format", "console", fmt.Sprintf("output format: %v", output.Names()))
	cmd.Flags().StringVar(&outputPath, "output", "", "write the report to a file instead of stdout")
	cmd.Flags().BoolVar(&save, "save", false, "write the report to a timestamped file in the current directory")
	cmd.Flags().BoolVar(&fetchPrice, "fetch-price", false, "fetch the live spot price before projecting")
	cmd.Flags().StringVar(&asset, "asset", "bitcoin", "asset identifier for the live quote")
	cmd.Flags().StringVar(&currency, "currency", "aud", "quote currency for the live quote")
	cmd.Flags().StringVar(&priceFlag, "price", "", "override the starting price manually")

	return cmd
}

// formatExtension maps a formatter name to the saved file's extension.
func formatExtension(format string) string {
	if format == "console" {
		return "txt"
	}
	return format
}
