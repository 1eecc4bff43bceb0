package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// ScenarioType selects the calculation a scenario runs.
type ScenarioType string

const (
	ScenarioSIP            ScenarioType = "sip"
	ScenarioLumpsum        ScenarioType = "lumpsum"
	ScenarioCompare        ScenarioType = "compare"
	ScenarioRequiredReturn ScenarioType = "required_return"
	ScenarioTax            ScenarioType = "tax"
)

// ParseScenarioType resolves a scenario type name; "required-return" is accepted as an alias.
func ParseScenarioType(s string) (ScenarioType, error) {
	n := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_")
	switch ScenarioType(n) {
	case ScenarioSIP, ScenarioLumpsum, ScenarioCompare, ScenarioRequiredReturn, ScenarioTax:
		return ScenarioType(n), nil
	}
	return "", NewInputError("type", fmt.Sprintf("unknown scenario type %q", s))
}

func (t *ScenarioType) UnmarshalYAML(value *yaml.Node) error {
	return t.UnmarshalText([]byte(value.Value))
}

func (t *ScenarioType) UnmarshalText(text []byte) error {
	parsed, err := ParseScenarioType(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Configuration is the top-level batch input file
type Configuration struct {
	TaxRegime *TaxRegime `yaml:"tax_regime,omitempty" json:"tax_regime,omitempty"`
	Scenarios []Scenario `yaml:"scenarios" json:"scenarios"`
}

// Scenario is a single named calculation in a batch file
type Scenario struct {
	Name string       `yaml:"name" json:"name"`
	Type ScenarioType `yaml:"type" json:"type"`

	// Amount is the monthly instalment for sip/compare, the principal for
	// lumpsum/required_return and the realised gain for tax.
	Amount        decimal.Decimal `yaml:"amount" json:"amount"`
	LumpsumAmount decimal.Decimal `yaml:"lumpsum_amount,omitempty" json:"lumpsum_amount,omitempty"`
	TargetAmount  decimal.Decimal `yaml:"target_amount,omitempty" json:"target_amount,omitempty"`
	AnnualReturn  decimal.Decimal `yaml:"annual_return" json:"annual_return"`
	Years         int             `yaml:"years" json:"years"`
	HoldYears     int             `yaml:"hold_years,omitempty" json:"hold_years,omitempty"`
	StartDate     *time.Time      `yaml:"start_date,omitempty" json:"start_date,omitempty"`
	HoldingMonths int             `yaml:"holding_months,omitempty" json:"holding_months,omitempty"`

	FundType        FundType         `yaml:"fund_type,omitempty" json:"fund_type,omitempty"`
	InvestorTaxSlab *TaxSlab         `yaml:"investor_tax_slab,omitempty" json:"investor_tax_slab,omitempty"`
	AnnualIncome    *decimal.Decimal `yaml:"annual_income,omitempty" json:"annual_income,omitempty"`
	CalculateTax    *bool            `yaml:"calculate_tax,omitempty" json:"calculate_tax,omitempty"`
}

// ResolveTaxOptions fills unset tax fields with defaults. An explicit slab
// wins over one derived from annual income.
func (s *Scenario) ResolveTaxOptions(regime TaxRegime) (TaxOptions, error) {
	opts := DefaultTaxOptions()
	if s.FundType != "" {
		opts.FundType = s.FundType
	}
	if s.CalculateTax != nil {
		opts.CalculateTax = *s.CalculateTax
	}
	switch {
	case s.InvestorTaxSlab != nil:
		opts.TaxSlab = *s.InvestorTaxSlab
	case s.AnnualIncome != nil:
		slab, err := regime.SlabForIncome(*s.AnnualIncome)
		if err != nil {
			return TaxOptions{}, err
		}
		opts.TaxSlab = slab
	}
	return opts, nil
}

// ScenarioOutcome holds exactly one result or the error that rejected the scenario
type ScenarioOutcome struct {
	Name           string                `json:"name"`
	Type           ScenarioType          `json:"type"`
	Phased         *PhasedResult         `json:"phased,omitempty"`
	Comparison     *ComparisonResult     `json:"comparison,omitempty"`
	RequiredReturn *RequiredReturnResult `json:"required_return,omitempty"`
	Tax            *TaxResult            `json:"tax,omitempty"`
	Error          string                `json:"error,omitempty"`
}

// Failed reports whether the scenario was rejected.
func (o *ScenarioOutcome) Failed() bool { return o.Error != "" }

// BatchResult is the result of running a configuration
type BatchResult struct {
	Regime    TaxRegime         `json:"regime"`
	Scenarios []ScenarioOutcome `json:"scenarios"`
}
