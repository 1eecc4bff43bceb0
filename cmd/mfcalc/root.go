package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mfcalc/fund-calculator/internal/calculation"
	"github.com/mfcalc/fund-calculator/internal/config"
	"github.com/mfcalc/fund-calculator/internal/domain"
	"github.com/mfcalc/fund-calculator/internal/logger"
	"github.com/mfcalc/fund-calculator/internal/output"
)

// app holds the persistent flags shared by every command.
type app struct {
	format string
	output string
	regime string
	debug  bool
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "mfcalc",
		Short: "Mutual fund SIP and lumpsum projection calculator",
		Long: "mfcalc projects SIP and lumpsum mutual fund investments, compares the two,\n" +
			"solves for the return a target needs and estimates Indian capital gains tax.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			l, err := logger.New(a.debug)
			if err != nil {
				return fmt.Errorf("failed to initialise logger: %w", err)
			}
			cmd.SetContext(logger.WithContext(cmd.Context(), l))
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, _ []string) {
			_ = logger.FromContext(cmd.Context()).Sync()
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&a.format, "format", "f", envOr("MFCALC_FORMAT", "console"),
		"output format ("+strings.Join(output.AvailableFormatterNames(), ", ")+"; env MFCALC_FORMAT)")
	pf.StringVarP(&a.output, "output", "o", "", "write the report to a file, or to mfcalc-report.<ext> inside a directory, instead of stdout")
	pf.StringVar(&a.regime, "regime", envOr("MFCALC_REGIME", ""), "YAML tax regime file, defaults to FY 2026-27 (env MFCALC_REGIME)")
	pf.BoolVar(&a.debug, "debug", false, "enable debug logging")

	root.AddCommand(
		newInvestmentCmd(a, domain.ScenarioSIP),
		newInvestmentCmd(a, domain.ScenarioLumpsum),
		newCompareCmd(a),
		newRequiredReturnCmd(a),
		newTaxCmd(a),
		newRunCmd(a),
		newInitCmd(),
		newRegimeCmd(a),
		newServeCmd(a),
	)
	return root
}

// engine builds a calculation engine on the --regime file, if any.
func (a *app) engine(ctx context.Context) (*calculation.CalculationEngine, error) {
	engine := calculation.NewCalculationEngine()
	if a.regime != "" {
		regime, err := config.NewInputParser().LoadTaxRegime(a.regime)
		if err != nil {
			return nil, err
		}
		engine = calculation.NewCalculationEngineWithRegime(*regime)
	}
	engine.SetLogger(logger.FromContext(ctx))
	return engine, nil
}

func (a *app) calculate(cmd *cobra.Command, cfg *domain.Configuration) (*domain.BatchResult, error) {
	engine, err := a.engine(cmd.Context())
	if err != nil {
		return nil, err
	}
	return engine.RunScenarios(cmd.Context(), cfg)
}

// runOne calculates a single scenario built from flags. Unlike batch runs, a
// rejected scenario is a command error.
func (a *app) runOne(cmd *cobra.Command, scenario domain.Scenario) error {
	batch, err := a.calculate(cmd, &domain.Configuration{Scenarios: []domain.Scenario{scenario}})
	if err != nil {
		return err
	}
	if outcome := batch.Scenarios[0]; outcome.Failed() {
		err := errors.New(outcome.Error)
		if output.NormalizeFormatName(a.format) == "json" {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			if encErr := enc.Encode(output.ErrorMap(err)); encErr != nil {
				return encErr
			}
		}
		return err
	}
	return a.report(cmd, batch)
}

func (a *app) report(cmd *cobra.Command, batch *domain.BatchResult) error {
	if a.output == "" {
		return output.WriteReport(cmd.OutOrStdout(), batch, a.format)
	}
	path := a.output
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		path = filepath.Join(path, "mfcalc-report."+output.Extension(a.format))
	}
	if err := output.WriteReportFile(path, batch, a.format); err != nil {
		return err
	}
	logger.FromContext(cmd.Context()).Debugf("wrote %s report to %s", a.format, path)
	fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", path)
	return nil
}
