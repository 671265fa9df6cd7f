package main

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/wpgo/wealth-projector/internal/api"
	"github.com/wpgo/wealth-projector/internal/calculation"
	"github.com/wpgo/wealth-projector/internal/logging"
	"github.com/wpgo/wealth-projector/internal/pricefeed"
)

func newServeCmd(root *rootOptions) *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the projection engine over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := root.logger()

			if root.logLevel != "debug" {
				gin.SetMode(gin.ReleaseMode)
			}

			engine := calculation.NewEngine()
			engine.SetLogger(logging.NewEngineLogger(log))

			router := api.NewRouter(engine, pricefeed.NewClient())

			addr := fmt.Sprintf(":%d", port)
			log.Info().Str("addr", addr).Msg("serving projection API")
			return router.Run(addr)
		},
	}

	cmd.Flags().IntVar(&port, "port", 8080, "port to listen on")

	return cmd
}
