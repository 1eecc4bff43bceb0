package config

import (
	"fmt"
	"os"
	"time"

	"github.com/mfcalc/fund-calculator/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// InputParser handles parsing of input configuration files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// rawConfiguration defers decoding of tax_regime so that omitted regime
// fields fall back to the defaults.
type rawConfiguration struct {
	TaxRegime *yaml.Node        `yaml:"tax_regime"`
	Scenarios []domain.Scenario `yaml:"scenarios"`
}

// LoadFromFile loads configuration from a YAML or JSON file
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	return ip.Parse(data)
}

// Parse decodes and validates configuration bytes
func (ip *InputParser) Parse(data []byte) (*domain.Configuration, error) {
	var raw rawConfiguration
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	config := &domain.Configuration{Scenarios: raw.Scenarios}
	if raw.TaxRegime != nil {
		regime, err := decodeTaxRegime(raw.TaxRegime)
		if err != nil {
			return nil, err
		}
		config.TaxRegime = regime
	}

	// Validate the configuration
	if err := ip.ValidateConfiguration(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// LoadTaxRegime loads a standalone tax regime file. Fields left out of the
// file keep their FY 2026-27 defaults.
func (ip *InputParser) LoadTaxRegime(filename string) (*domain.TaxRegime, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read tax regime %s: %w", filename, err)
	}

	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, fmt.Errorf("failed to parse tax regime YAML: %w", err)
	}
	if len(node.Content) == 0 {
		return nil, fmt.Errorf("tax regime file %s is empty", filename)
	}

	regime, err := decodeTaxRegime(node.Content[0])
	if err != nil {
		return nil, err
	}
	if err := ip.ValidateTaxRegime(regime); err != nil {
		return nil, fmt.Errorf("tax regime validation failed: %w", err)
	}
	return regime, nil
}

func decodeTaxRegime(node *yaml.Node) (*domain.TaxRegime, error) {
	regime := domain.DefaultTaxRegime()
	if err := node.Decode(&regime); err != nil {
		return nil, fmt.Errorf("failed to parse tax_regime: %w", err)
	}
	return &regime, nil
}

// ValidateConfiguration validates the loaded configuration. Only structure is
// checked here; amounts and rates are validated per scenario by the engine so
// one bad scenario does not reject the whole batch.
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	if config.TaxRegime != nil {
		if err := ip.ValidateTaxRegime(config.TaxRegime); err != nil {
			return fmt.Errorf("tax regime validation failed: %w", err)
		}
	}

	// Validate scenarios
	if len(config.Scenarios) == 0 {
		return fmt.Errorf("no scenarios provided")
	}

	seen := make(map[string]int, len(config.Scenarios))
	for i, scenario := range config.Scenarios {
		if err := ip.validateScenario(i, &scenario); err != nil {
			return fmt.Errorf("scenario %d validation failed: %w", i, err)
		}
		if scenario.Name == "" {
			continue
		}
		if first, dup := seen[scenario.Name]; dup {
			return fmt.Errorf("scenario %d: name %q already used by scenario %d", i, scenario.Name, first)
		}
		seen[scenario.Name] = i
	}

	return nil
}

// validateScenario validates a single scenario
func (ip *InputParser) validateScenario(_ int, scenario *domain.Scenario) error {
	if scenario.Type == "" {
		return fmt.Errorf("scenario type is required")
	}
	if scenario.InvestorTaxSlab != nil && scenario.AnnualIncome != nil {
		return fmt.Errorf("specify either investor_tax_slab or annual_income, not both")
	}

	switch scenario.Type {
	case domain.ScenarioCompare:
		if scenario.HoldYears != 0 {
			return fmt.Errorf("hold_years is not supported for compare scenarios")
		}
	case domain.ScenarioRequiredReturn:
		if scenario.HoldYears != 0 || scenario.StartDate != nil {
			return fmt.Errorf("required_return scenarios take only amount, target_amount and years")
		}
	}

	return nil
}

// ValidateTaxRegime checks a regime is internally consistent
func (ip *InputParser) ValidateTaxRegime(regime *domain.TaxRegime) error {
	if regime.Name == "" {
		return fmt.Errorf("regime name is required")
	}
	if regime.EquityLTCGThreshold.IsNegative() {
		return fmt.Errorf("equity LTCG threshold cannot be negative")
	}
	for name, rate := range map[string]decimal.Decimal{
		"equity LTCG rate": regime.EquityLTCGRate,
		"equity STCG rate": regime.EquitySTCGRate,
	} {
		if rate.IsNegative() || rate.GreaterThan(decimal.NewFromInt(100)) {
			return fmt.Errorf("%s must be between 0 and 100", name)
		}
	}
	if regime.EquityLTCGHoldingMonths <= 0 {
		return fmt.Errorf("equity LTCG holding months must be positive")
	}

	if len(regime.DebtSlabs) == 0 {
		return fmt.Errorf("at least one debt slab is required")
	}
	var previous *decimal.Decimal
	for i, bracket := range regime.DebtSlabs {
		last := i == len(regime.DebtSlabs)-1
		if bracket.Upper == nil {
			if !last {
				return fmt.Errorf("debt slab %d: only the last bracket may be open-ended", i)
			}
			continue
		}
		if last {
			return fmt.Errorf("debt slab %d: the last bracket must be open-ended", i)
		}
		if previous != nil && !bracket.Upper.GreaterThan(*previous) {
			return fmt.Errorf("debt slab %d: upper bound %s must exceed %s", i, bracket.Upper.String(), previous.String())
		}
		previous = bracket.Upper
	}

	return nil
}

// CreateExampleConfiguration creates an example configuration file
func (ip *InputParser) CreateExampleConfiguration() *domain.Configuration {
	startDate, _ := time.Parse("2006-01-02", "2026-04-01")
	slab := domain.TaxSlab(20)
	income := decimal.NewFromInt(1400000)
	noTax := false

	return &domain.Configuration{
		Scenarios: []domain.Scenario{
			{
				Name:         "Monthly SIP with 5 year hold",
				Type:         domain.ScenarioSIP,
				Amount:       decimal.NewFromInt(5000),
				AnnualReturn: decimal.NewFromInt(12),
				Years:        10,
				HoldYears:    5,
				StartDate:    &startDate,
				FundType:     domain.FundTypeEquity,
			},
			{
				Name:         "Bonus lumpsum",
				Type:         domain.ScenarioLumpsum,
				Amount:       decimal.NewFromInt(100000),
				AnnualReturn: decimal.NewFromInt(12),
				Years:        10,
				FundType:     domain.FundTypeEquity,
			},
			{
				Name:            "Debt fund at 20% slab",
				Type:            domain.ScenarioLumpsum,
				Amount:          decimal.NewFromInt(200000),
				AnnualReturn:    decimal.NewFromInt(7),
				Years:           3,
				FundType:        domain.FundTypeDebt,
				InvestorTaxSlab: &slab,
			},
			{
				Name:         "Debt SIP by income",
				Type:         domain.ScenarioSIP,
				Amount:       decimal.NewFromInt(10000),
				AnnualReturn: decimal.NewFromFloat(7.5),
				Years:        5,
				FundType:     domain.FundTypeDebt,
				AnnualIncome: &income,
			},
			{
				Name:          "SIP or lumpsum",
				Type:          domain.ScenarioCompare,
				Amount:        decimal.NewFromInt(5000),
				LumpsumAmount: decimal.NewFromInt(600000),
				AnnualReturn:  decimal.NewFromInt(12),
				Years:         10,
				FundType:      domain.FundTypeEquity,
			},
			{
				Name:          "Pre-tax comparison",
				Type:          domain.ScenarioCompare,
				Amount:        decimal.NewFromInt(10000),
				LumpsumAmount: decimal.NewFromInt(500000),
				AnnualReturn:  decimal.NewFromInt(10),
				Years:         5,
				CalculateTax:  &noTax,
			},
			{
				Name:         "Double in six years",
				Type:         domain.ScenarioRequiredReturn,
				Amount:       decimal.NewFromInt(100000),
				TargetAmount: decimal.NewFromInt(200000),
				Years:        6,
			},
		},
	}
}
