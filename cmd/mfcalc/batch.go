package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/mfcalc/fund-calculator/internal/config"
	"github.com/mfcalc/fund-calculator/internal/logger"
	"github.com/mfcalc/fund-calculator/internal/output"
)

func newRunCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "run <config.yaml>",
		Short: "Run every scenario in a configuration file",
		Long: "Run every scenario in a configuration file. A tax_regime block in the file\n" +
			"takes precedence over --regime. Invalid scenarios are reported, not fatal.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.NewInputParser().LoadFromFile(args[0])
			if err != nil {
				return err
			}
			batch, err := a.calculate(cmd, cfg)
			if err != nil {
				return err
			}
			failed := 0
			for _, o := range batch.Scenarios {
				if o.Failed() {
					failed++
				}
			}
			if failed > 0 {
				logger.FromContext(cmd.Context()).Warnf("%d of %d scenarios in %s were rejected", failed, len(batch.Scenarios), args[0])
			}
			return a.report(cmd, batch)
		},
	}
}

func newInitCmd() *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "init <config.yaml>",
		Short: "Write an example configuration file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
				return fmt.Errorf("failed to check %s: %w", path, err)
			}
			cfg := config.NewInputParser().CreateExampleConfiguration()
			if err := output.SaveConfiguration(cfg, path); err != nil {
				return fmt.Errorf("failed to write example configuration: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Example configuration with %d scenarios written to %s\n", len(cfg.Scenarios), path)
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	return cmd
}

func newRegimeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "regime",
		Short: "Show the tax regime and modelling assumptions in effect",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			engine, err := a.engine(cmd.Context())
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			for _, line := range output.GenerateAssumptions(&engine.Regime) {
				fmt.Fprintf(w, "• %s\n", line)
			}
			fmt.Fprintf(w, "• Recognised debt slabs: %v\n", engine.Regime.Slabs())
			return nil
		},
	}
}
