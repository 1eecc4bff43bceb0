package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// TaxRegime holds the capital gains rules for one financial year. It is
// treated as an immutable value: calculators copy it on construction.
type TaxRegime struct {
	Name                    string          `yaml:"name" json:"name"`
	EquityLTCGThreshold     decimal.Decimal `yaml:"equity_ltcg_threshold" json:"equity_ltcg_threshold"`
	EquityLTCGRate          decimal.Decimal `yaml:"equity_ltcg_rate" json:"equity_ltcg_rate"` // percent
	EquitySTCGRate          decimal.Decimal `yaml:"equity_stcg_rate" json:"equity_stcg_rate"` // percent
	EquityLTCGHoldingMonths int             `yaml:"equity_ltcg_holding_months" json:"equity_ltcg_holding_months"`
	DebtSlabs               []SlabBracket   `yaml:"debt_slabs" json:"debt_slabs"`
}

// SlabBracket is an income bracket taxed at Rate. A nil Upper marks the
// open-ended top bracket.
type SlabBracket struct {
	Upper *decimal.Decimal `yaml:"upper,omitempty" json:"upper,omitempty"`
	Rate  TaxSlab          `yaml:"rate" json:"rate"`
}

// DefaultTaxRegime returns the FY 2026-27 rules.
func DefaultTaxRegime() TaxRegime {
	upper := func(v int64) *decimal.Decimal {
		d := decimal.NewFromInt(v)
		return &d
	}
	return TaxRegime{
		Name:                    "FY 2026-27",
		EquityLTCGThreshold:     decimal.NewFromInt(125000), // ₹1.25 lakh exemption
		EquityLTCGRate:          decimal.NewFromFloat(12.5),
		EquitySTCGRate:          decimal.NewFromInt(20),
		EquityLTCGHoldingMonths: 12,
		DebtSlabs: []SlabBracket{
			{Upper: upper(300000), Rate: 0},
			{Upper: upper(750000), Rate: 5},
			{Upper: upper(1000000), Rate: 10},
			{Upper: upper(1250000), Rate: 15},
			{Upper: upper(1500000), Rate: 20},
			{Upper: nil, Rate: 30},
		},
	}
}

// Clone returns a deep copy so the caller's slices cannot alias the regime.
func (r TaxRegime) Clone() TaxRegime {
	out := r
	out.DebtSlabs = make([]SlabBracket, len(r.DebtSlabs))
	for i, b := range r.DebtSlabs {
		out.DebtSlabs[i] = SlabBracket{Rate: b.Rate}
		if b.Upper != nil {
			u := *b.Upper
			out.DebtSlabs[i].Upper = &u
		}
	}
	return out
}

// Slabs returns the enumerated slab rates recognised by the regime, in
// bracket order.
func (r TaxRegime) Slabs() []TaxSlab {
	var slabs []TaxSlab
	seen := make(map[TaxSlab]bool, len(r.DebtSlabs))
	for _, b := range r.DebtSlabs {
		if !seen[b.Rate] {
			seen[b.Rate] = true
			slabs = append(slabs, b.Rate)
		}
	}
	return slabs
}

// IsValidSlab reports whether slab is one of the regime's enumerated rates.
func (r TaxRegime) IsValidSlab(slab TaxSlab) bool {
	for _, b := range r.DebtSlabs {
		if b.Rate == slab {
			return true
		}
	}
	return false
}

// SlabForIncome returns the slab whose bracket contains the annual income.
func (r TaxRegime) SlabForIncome(income decimal.Decimal) (TaxSlab, error) {
	if income.IsNegative() {
		return 0, NewInputError("income", "cannot be negative")
	}
	for _, b := range r.DebtSlabs {
		if b.Upper == nil || income.LessThanOrEqual(*b.Upper) {
			return b.Rate, nil
		}
	}
	return 0, fmt.Errorf("regime %q has no bracket for income %s", r.Name, income.StringFixed(2))
}
