package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wpgo/wealth-projector/internal/config"
	"github.com/wpgo/wealth-projector/internal/domain"
)

func newExampleCmd() *cobra.Command {
	var (
		path     string
		scenario string
	)

	cmd := &cobra.Command{
		Use:   "example",
		Short: "Write an example scenario configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			parser := config.NewInputParser()
			if err := parser.WriteExampleConfiguration(path, domain.ScenarioKind(scenario)); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "example configuration written to %s\n", path)
			return nil
		},
	}

	cmd.Flags().StringVar(&path, "output", "example_scenario.yaml", "path to write the example file")
	cmd.Flags().StringVar(&scenario, "scenario", "drawdown", "example scenario: drawdown or accumulation")

	return cmd
}
