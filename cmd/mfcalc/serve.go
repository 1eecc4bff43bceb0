package main

import (
	"github.com/spf13/cobra"

	"github.com/mfcalc/fund-calculator/internal/api"
	"github.com/mfcalc/fund-calculator/internal/logger"
)

func newServeCmd(a *app) *cobra.Command {
	addr := envOr("MFCALC_ADDR", ":8080")
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the calculations as a JSON HTTP API",
		Long: "Serve the calculations as a JSON HTTP API. Every command has a POST route\n" +
			"taking a scenario body; POST /scenarios runs a whole configuration.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			engine, err := a.engine(cmd.Context())
			if err != nil {
				return err
			}
			handler := api.NewApiHandler(engine, logger.FromContext(cmd.Context()))
			return handler.StartApi(cmd.Context(), addr)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", addr, "listen address (env MFCALC_ADDR)")
	return cmd
}
