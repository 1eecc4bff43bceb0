package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/mfcalc/fund-calculator/internal/domain"
	"github.com/mfcalc/fund-calculator/pkg/dateutil"
)

func newInvestmentCmd(a *app, kind domain.ScenarioType) *cobra.Command {
	var (
		scenario = domain.Scenario{Type: kind}
		tax      taxFlags
	)

	cmd := &cobra.Command{
		Use:  string(kind),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := tax.apply(cmd, &scenario); err != nil {
				return err
			}
			return a.runOne(cmd, scenario)
		},
	}

	amountHelp := "lumpsum principal"
	scenario.Name = "Lumpsum"
	cmd.Short = "Project a one-time lumpsum investment"
	if kind == domain.ScenarioSIP {
		amountHelp = "monthly instalment"
		scenario.Name = "Monthly SIP"
		cmd.Short = "Project a monthly SIP"
	}

	fs := cmd.Flags()
	fs.StringVar(&scenario.Name, "name", scenario.Name, "scenario name shown in the report")
	fs.Var(decimalValue{&scenario.Amount}, "amount", amountHelp)
	fs.Var(decimalValue{&scenario.AnnualReturn}, "return", "expected annual return in percent")
	fs.IntVar(&scenario.Years, "years", 0, "investment period in years")
	fs.IntVar(&scenario.HoldYears, "hold-years", 0, "years to stay invested after the investment period")
	fs.Var(dateValue{&scenario.StartDate}, "start-date", "first investment date (YYYY-MM-DD), dates the trajectory")
	tax.register(cmd, true)
	for _, name := range []string{"amount", "return", "years"} {
		_ = cmd.MarkFlagRequired(name)
	}
	return cmd
}

func newCompareCmd(a *app) *cobra.Command {
	var (
		scenario = domain.Scenario{Name: "SIP vs Lumpsum", Type: domain.ScenarioCompare}
		tax      taxFlags
	)

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare a monthly SIP with a lumpsum over the same period",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := tax.apply(cmd, &scenario); err != nil {
				return err
			}
			return a.runOne(cmd, scenario)
		},
	}

	fs := cmd.Flags()
	fs.Var(decimalValue{&scenario.Amount}, "sip", "monthly SIP instalment")
	fs.Var(decimalValue{&scenario.LumpsumAmount}, "lumpsum", "lumpsum principal")
	fs.Var(decimalValue{&scenario.AnnualReturn}, "return", "expected annual return in percent")
	fs.IntVar(&scenario.Years, "years", 0, "investment period in years")
	tax.register(cmd, true)
	for _, name := range []string{"sip", "lumpsum", "return", "years"} {
		_ = cmd.MarkFlagRequired(name)
	}
	return cmd
}

func newRequiredReturnCmd(a *app) *cobra.Command {
	scenario := domain.Scenario{Name: "Required return", Type: domain.ScenarioRequiredReturn}

	cmd := &cobra.Command{
		Use:   "required-return",
		Short: "Solve for the annual return that grows a principal into a target",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runOne(cmd, scenario)
		},
	}

	fs := cmd.Flags()
	fs.Var(decimalValue{&scenario.Amount}, "principal", "amount invested today")
	fs.Var(decimalValue{&scenario.TargetAmount}, "target", "amount wanted at the end")
	fs.IntVar(&scenario.Years, "years", 0, "years available")
	for _, name := range []string{"principal", "target", "years"} {
		_ = cmd.MarkFlagRequired(name)
	}
	return cmd
}

func newTaxCmd(a *app) *cobra.Command {
	var (
		scenario             = domain.Scenario{Name: "Capital gains tax", Type: domain.ScenarioTax}
		tax                  taxFlags
		purchase, redemption *time.Time
	)

	cmd := &cobra.Command{
		Use:   "tax",
		Short: "Estimate capital gains tax on a realised gain",
		Long: "Estimate capital gains tax on a realised gain. The holding period is given\n" +
			"directly with --months or derived from --purchase-date and --redemption-date.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if purchase != nil {
				scenario.HoldingMonths = dateutil.HoldingMonths(*purchase, *redemption)
			}
			if err := tax.apply(cmd, &scenario); err != nil {
				return err
			}
			return a.runOne(cmd, scenario)
		},
	}

	fs := cmd.Flags()
	fs.Var(decimalValue{&scenario.Amount}, "gain", "realised gain (redemption value minus cost)")
	fs.IntVar(&scenario.HoldingMonths, "months", 0, "holding period in months")
	fs.Var(dateValue{&purchase}, "purchase-date", "purchase date (YYYY-MM-DD)")
	fs.Var(dateValue{&redemption}, "redemption-date", "redemption date (YYYY-MM-DD)")
	tax.register(cmd, false)
	_ = cmd.MarkFlagRequired("gain")
	cmd.MarkFlagsRequiredTogether("purchase-date", "redemption-date")
	cmd.MarkFlagsMutuallyExclusive("months", "purchase-date")
	cmd.MarkFlagsOneRequired("months", "purchase-date")
	return cmd
}

