package calculation

import (
	"fmt"
	"strings"

	"github.com/mfcalc/fund-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// CAPITAL GAINS TAX ASSUMPTIONS:
//
// 1. Equity funds: gains held more than 12 months are LTCG, taxed at 12.5% on
//    the part above the ₹1.25 lakh exemption. Anything else is STCG at 20%.
//
// 2. Debt funds: gains are added to income and taxed at the investor's slab,
//    regardless of holding period.
//
// 3. Losses are never taxed and never offset other gains.
//
// The rates live in domain.TaxRegime so that a new financial year only needs
// a new regime value.

// CapitalGainsTax computes the tax on a realised gain
type CapitalGainsTax interface {
	Calculate(gain decimal.Decimal, holdingMonths int) domain.TaxResult
	FundType() domain.FundType
}

// EquityTaxCalculator applies the LTCG/STCG split
type EquityTaxCalculator struct {
	Regime domain.TaxRegime
}

// NewEquityTaxCalculator creates an equity calculator bound to a copy of regime
func NewEquityTaxCalculator(regime domain.TaxRegime) *EquityTaxCalculator {
	return &EquityTaxCalculator{Regime: regime.Clone()}
}

func (etc *EquityTaxCalculator) FundType() domain.FundType { return domain.FundTypeEquity }

// Calculate classifies the gain by holding period and taxes it. Exactly
// EquityLTCGHoldingMonths months is still short term.
func (etc *EquityTaxCalculator) Calculate(gain decimal.Decimal, holdingMonths int) domain.TaxResult {
	isLTCG := holdingMonths > etc.Regime.EquityLTCGHoldingMonths

	result := domain.TaxResult{
		TaxType:             domain.TaxTypeSTCG,
		TaxRateApplied:      etc.Regime.EquitySTCGRate,
		HoldingPeriodMonths: holdingMonths,
	}
	if isLTCG {
		result.TaxType = domain.TaxTypeLTCG
		result.TaxRateApplied = etc.Regime.EquityLTCGRate
	}

	if !gain.IsPositive() {
		return untaxed(result, gain)
	}

	taxable := gain
	if isLTCG {
		taxable = gain.Sub(etc.Regime.EquityLTCGThreshold)
		if !taxable.IsPositive() {
			return untaxed(result, gain)
		}
	}

	return taxed(result, gain, taxable.Mul(result.TaxRateApplied).Div(hundred))
}

// DebtTaxCalculator taxes the whole gain at the investor's slab
type DebtTaxCalculator struct {
	Regime domain.TaxRegime
	Slab   domain.TaxSlab
}

// NewDebtTaxCalculator validates slab against the regime's enumerated rates
func NewDebtTaxCalculator(regime domain.TaxRegime, slab domain.TaxSlab) (*DebtTaxCalculator, error) {
	if !regime.IsValidSlab(slab) {
		return nil, domain.NewInputError("investor_tax_slab",
			fmt.Sprintf("%s is not one of %s", slab, slabList(regime.Slabs())))
	}
	return &DebtTaxCalculator{Regime: regime.Clone(), Slab: slab}, nil
}

func (dtc *DebtTaxCalculator) FundType() domain.FundType { return domain.FundTypeDebt }

// Calculate ignores the holding period beyond recording it.
func (dtc *DebtTaxCalculator) Calculate(gain decimal.Decimal, holdingMonths int) domain.TaxResult {
	slab := dtc.Slab
	result := domain.TaxResult{
		TaxType:             domain.TaxTypeSlab,
		TaxRateApplied:      slab.Rate(),
		HoldingPeriodMonths: holdingMonths,
		TaxSlab:             &slab,
	}
	if !gain.IsPositive() {
		return untaxed(result, gain)
	}
	return taxed(result, gain, gain.Mul(slab.Rate()).Div(hundred))
}

// NewCapitalGainsTax picks the strategy for the fund type
func NewCapitalGainsTax(regime domain.TaxRegime, fundType domain.FundType, slab domain.TaxSlab) (CapitalGainsTax, error) {
	switch fundType {
	case domain.FundTypeEquity:
		return NewEquityTaxCalculator(regime), nil
	case domain.FundTypeDebt:
		return NewDebtTaxCalculator(regime, slab)
	default:
		return nil, domain.NewInputError("fund_type", fmt.Sprintf("unsupported fund type %q", fundType))
	}
}

// TaxEquity taxes an equity gain under the default regime.
func TaxEquity(gain decimal.Decimal, holdingMonths int) domain.TaxResult {
	return NewEquityTaxCalculator(domain.DefaultTaxRegime()).Calculate(gain, holdingMonths)
}

// TaxDebt taxes a debt gain at slab under the default regime.
func TaxDebt(gain decimal.Decimal, slab domain.TaxSlab) (domain.TaxResult, error) {
	calc, err := NewDebtTaxCalculator(domain.DefaultTaxRegime(), slab)
	if err != nil {
		return domain.TaxResult{}, err
	}
	return calc.Calculate(gain, 0), nil
}

// untaxed passes a gain (or loss) through with no tax.
func untaxed(result domain.TaxResult, gain decimal.Decimal) domain.TaxResult {
	result.Gain = round(gain)
	result.TaxApplicable = false
	result.TaxAmount = decimal.Zero
	result.GainAfterTax = result.Gain
	result.EffectiveTaxRate = decimal.Zero
	return result
}

// taxed rounds the outputs once. GainAfterTax is derived from the rounded
// figures so Gain - TaxAmount == GainAfterTax holds exactly.
func taxed(result domain.TaxResult, gain, tax decimal.Decimal) domain.TaxResult {
	result.Gain = round(gain)
	result.TaxApplicable = true
	result.TaxAmount = round(tax)
	result.GainAfterTax = result.Gain.Sub(result.TaxAmount)
	result.EffectiveTaxRate = round(percentOf(tax, gain))
	return result
}

func slabList(slabs []domain.TaxSlab) string {
	names := make([]string, len(slabs))
	for i, s := range slabs {
		names[i] = s.String()
	}
	return strings.Join(names, ", ")
}
