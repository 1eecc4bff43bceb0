package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/mfcalc/fund-calculator/internal/domain"
)

const dateLayout = "2006-01-02"

// decimalValue is a flag value holding an exact amount. Digit grouping
// commas are ignored so "5,000" and "1,00,000" are accepted.
type decimalValue struct{ d *decimal.Decimal }

func (v decimalValue) String() string {
	if v.d == nil {
		return "0"
	}
	return v.d.String()
}

func (v decimalValue) Set(s string) error {
	d, err := decimal.NewFromString(strings.ReplaceAll(strings.TrimSpace(s), ",", ""))
	if err != nil {
		return fmt.Errorf("%q is not a number", s)
	}
	*v.d = d
	return nil
}

func (v decimalValue) Type() string { return "decimal" }

// dateValue is an optional YYYY-MM-DD flag value.
type dateValue struct{ t **time.Time }

func (v dateValue) String() string {
	if v.t == nil || *v.t == nil {
		return ""
	}
	return (*v.t).Format(dateLayout)
}

func (v dateValue) Set(s string) error {
	t, err := time.Parse(dateLayout, strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("%q is not a YYYY-MM-DD date", s)
	}
	*v.t = &t
	return nil
}

func (v dateValue) Type() string { return "date" }

// taxFlags are the tax settings shared by the investment commands.
type taxFlags struct {
	fundType string
	slab     string
	income   decimal.Decimal
	noTax    bool
}

func (f *taxFlags) register(cmd *cobra.Command, withToggle bool) {
	fs := cmd.Flags()
	fs.StringVar(&f.fundType, "fund-type", string(domain.FundTypeEquity), "fund type (equity or debt)")
	fs.StringVar(&f.slab, "slab", "", "investor income tax slab for debt funds, e.g. 20 or 20%")
	fs.Var(decimalValue{&f.income}, "income", "annual income used to look up the slab")
	if withToggle {
		fs.BoolVar(&f.noTax, "no-tax", false, "skip the capital gains tax overlay")
	}
	cmd.MarkFlagsMutuallyExclusive("slab", "income")
}

func (f *taxFlags) apply(cmd *cobra.Command, s *domain.Scenario) error {
	fundType, err := domain.ParseFundType(f.fundType)
	if err != nil {
		return err
	}
	s.FundType = fundType

	if f.slab != "" {
		slab, err := domain.ParseTaxSlab(f.slab)
		if err != nil {
			return err
		}
		s.InvestorTaxSlab = &slab
	}
	if cmd.Flags().Changed("income") {
		income := f.income
		s.AnnualIncome = &income
	}
	if f.noTax {
		calculateTax := false
		s.CalculateTax = &calculateTax
	}
	return nil
}
