package calculation

import (
	"context"
	"fmt"

	"github.com/mfcalc/fund-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// CalculationEngine orchestrates all fund calculations
type CalculationEngine struct {
	Regime domain.TaxRegime
	Logger Logger
}

// NewCalculationEngine creates a new calculation engine on the default tax regime
func NewCalculationEngine() *CalculationEngine {
	return NewCalculationEngineWithRegime(domain.DefaultTaxRegime())
}

// NewCalculationEngineWithRegime creates a new calculation engine with configurable tax rules
func NewCalculationEngineWithRegime(regime domain.TaxRegime) *CalculationEngine {
	return &CalculationEngine{
		Regime: regime.Clone(),
		Logger: NopLogger{},
	}
}

// SetLogger sets the logger for the calculation engine. If nil is provided, a no-op logger is used.
func (ce *CalculationEngine) SetLogger(l Logger) {
	if l == nil {
		ce.Logger = NopLogger{}
		return
	}
	ce.Logger = l
}

// withRegime returns an engine sharing the logger but bound to regime.
func (ce *CalculationEngine) withRegime(regime domain.TaxRegime) *CalculationEngine {
	return &CalculationEngine{Regime: regime.Clone(), Logger: ce.Logger}
}

// CalculateSIP computes a monthly SIP with the optional tax overlay
func (ce *CalculationEngine) CalculateSIP(req domain.InvestmentRequest) (*domain.InvestmentResult, error) {
	if err := validateYears("years", req.Years); err != nil {
		return nil, err
	}
	taxCalc, err := ce.taxCalculatorFor(req.Tax)
	if err != nil {
		return nil, err
	}
	growth, err := PeriodicGrowth(req.Amount, req.AnnualReturn, req.Years*monthsPerYear)
	if err != nil {
		return nil, err
	}
	f := periodicFigures(req.Amount, req.AnnualReturn, growth.Months)
	return ce.investmentResult(growth, f, req.Tax, taxCalc), nil
}

// CalculateLumpsum computes a one-time investment with the optional tax overlay
func (ce *CalculationEngine) CalculateLumpsum(req domain.InvestmentRequest) (*domain.InvestmentResult, error) {
	taxCalc, err := ce.taxCalculatorFor(req.Tax)
	if err != nil {
		return nil, err
	}
	growth, err := LumpSumGrowth(req.Amount, req.AnnualReturn, req.Years)
	if err != nil {
		return nil, err
	}
	f := lumpSumFigures(req.Amount, req.AnnualReturn, req.Years)
	return ce.investmentResult(growth, f, req.Tax, taxCalc), nil
}

// RequiredReturn finds the annual return that grows principal into target
func (ce *CalculationEngine) RequiredReturn(principal, target decimal.Decimal, years int) (*domain.RequiredReturnResult, error) {
	result, err := RequiredReturn(principal, target, years)
	if err != nil {
		return nil, err
	}
	ce.Logger.Debugf("required return: %s -> %s over %d years = %s%%",
		principal.StringFixed(2), target.StringFixed(2), years, result.RequiredReturnPercentage.StringFixed(2))
	return &result, nil
}

// CalculateTax taxes a realised gain (negative for a loss) held for
// holdingMonths. The tax is computed even when opts.CalculateTax is off.
func (ce *CalculationEngine) CalculateTax(gain decimal.Decimal, holdingMonths int, opts domain.TaxOptions) (*domain.TaxResult, error) {
	if holdingMonths < 0 {
		return nil, domain.NewInputError("holding_months", "cannot be negative")
	}
	calc, err := NewCapitalGainsTax(ce.Regime, opts.FundType, opts.TaxSlab)
	if err != nil {
		return nil, err
	}
	result := calc.Calculate(gain, holdingMonths)
	return &result, nil
}

// investmentResult overlays tax on the unrounded gain; the holding period is
// the full horizon in months.
func (ce *CalculationEngine) investmentResult(growth domain.GrowthResult, f figures, opts domain.TaxOptions, taxCalc CapitalGainsTax) *domain.InvestmentResult {
	result := &domain.InvestmentResult{
		GrowthResult: growth,
		FundType:     opts.FundType,
		CalculateTax: opts.CalculateTax,
	}
	if taxCalc == nil {
		return result
	}
	info := taxCalc.Calculate(f.gain(), growth.Months)
	afterTax := growth.TotalInvested.Add(info.GainAfterTax)
	result.TaxInfo = &info
	result.MaturityAfterTax = &afterTax
	result.InvestorTaxSlab = investorSlab(opts)

	ce.Logger.Debugf("%s tax: type=%s gain=%s tax=%s",
		growth.Strategy, info.TaxType, info.Gain.StringFixed(2), info.TaxAmount.StringFixed(2))
	return result
}

// taxCalculatorFor returns nil when tax is off. The fund type and slab are
// validated either way so a bad request never computes.
func (ce *CalculationEngine) taxCalculatorFor(opts domain.TaxOptions) (CapitalGainsTax, error) {
	calc, err := NewCapitalGainsTax(ce.Regime, opts.FundType, opts.TaxSlab)
	if err != nil {
		return nil, err
	}
	if !opts.CalculateTax {
		return nil, nil
	}
	return calc, nil
}

// investorSlab is only reported for debt funds, where it drives the tax.
func investorSlab(opts domain.TaxOptions) *domain.TaxSlab {
	if opts.FundType != domain.FundTypeDebt {
		return nil
	}
	slab := opts.TaxSlab
	return &slab
}

// RunScenario calculates a single configured scenario. Invalid input is
// recorded on the outcome rather than returned.
func (ce *CalculationEngine) RunScenario(ctx context.Context, scenario *domain.Scenario) domain.ScenarioOutcome {
	outcome := domain.ScenarioOutcome{Name: scenario.Name, Type: scenario.Type}

	if err := ce.runScenario(scenario, &outcome); err != nil {
		ce.Logger.Warnf("scenario %q rejected: %v", scenario.Name, err)
		outcome.Error = err.Error()
	}
	return outcome
}

func (ce *CalculationEngine) runScenario(s *domain.Scenario, outcome *domain.ScenarioOutcome) error {
	opts, err := s.ResolveTaxOptions(ce.Regime)
	if err != nil {
		return err
	}

	switch s.Type {
	case domain.ScenarioSIP, domain.ScenarioLumpsum:
		req := domain.PhasedRequest{
			Amount:          s.Amount,
			AnnualReturn:    s.AnnualReturn,
			InvestmentYears: s.Years,
			HoldYears:       s.HoldYears,
			StartDate:       s.StartDate,
			Tax:             opts,
		}
		if s.Type == domain.ScenarioSIP {
			outcome.Phased, err = ce.SIPWithHold(req)
		} else {
			outcome.Phased, err = ce.LumpsumWithHold(req)
		}
	case domain.ScenarioCompare:
		outcome.Comparison, err = ce.Compare(domain.ComparisonRequest{
			MonthlySIP:   s.Amount,
			Lumpsum:      s.LumpsumAmount,
			AnnualReturn: s.AnnualReturn,
			Years:        s.Years,
			Tax:          opts,
		})
	case domain.ScenarioRequiredReturn:
		outcome.RequiredReturn, err = ce.RequiredReturn(s.Amount, s.TargetAmount, s.Years)
	case domain.ScenarioTax:
		outcome.Tax, err = ce.CalculateTax(s.Amount, s.HoldingMonths, opts)
	default:
		err = domain.NewInputError("type", fmt.Sprintf("unknown scenario type %q", s.Type))
	}
	return err
}

// RunScenarios runs all scenarios in order. A tax_regime in the configuration
// overrides the engine's regime for this run.
func (ce *CalculationEngine) RunScenarios(ctx context.Context, config *domain.Configuration) (*domain.BatchResult, error) {
	runner := ce
	if config.TaxRegime != nil {
		runner = ce.withRegime(*config.TaxRegime)
	}

	outcomes := make([]domain.ScenarioOutcome, len(config.Scenarios))
	for i := range config.Scenarios {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("RunScenarios interrupted after %d of %d scenarios: %w", i, len(config.Scenarios), err)
		}
		scenario := config.Scenarios[i]
		if scenario.Name == "" {
			scenario.Name = fmt.Sprintf("Scenario %d", i+1)
		}
		outcomes[i] = runner.RunScenario(ctx, &scenario)
	}

	runner.Logger.Infof("ran %d scenarios under %s", len(outcomes), runner.Regime.Name)

	return &domain.BatchResult{
		Regime:    runner.Regime.Clone(),
		Scenarios: outcomes,
	}, nil
}
