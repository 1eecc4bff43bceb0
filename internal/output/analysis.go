package output

import (
	"fmt"

	"github.com/mfcalc/fund-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// Summary is a flattened, display-ready view of one scenario outcome shared
// by the summary formatters.
type Summary struct {
	Name             string
	Type             domain.ScenarioType
	TotalInvested    decimal.Decimal
	Maturity         decimal.Decimal
	Gain             decimal.Decimal
	TaxAmount        decimal.Decimal
	MaturityAfterTax decimal.Decimal
	Note             string
	Error            string
}

// Summarize flattens an outcome. Comparisons report the better option's
// figures; tax outcomes report only the gain and tax.
func Summarize(o domain.ScenarioOutcome) Summary {
	s := Summary{Name: o.Name, Type: o.Type, Error: o.Error}

	switch {
	case o.Phased != nil:
		p := o.Phased
		s.TotalInvested = p.TotalInvested
		s.Maturity = p.FinalMaturity
		s.Gain = p.TotalGain
		s.MaturityAfterTax = p.FinalMaturity
		if p.TaxInfo != nil && p.FinalMaturityAfterTax != nil {
			s.TaxAmount = p.TaxInfo.TaxAmount
			s.MaturityAfterTax = *p.FinalMaturityAfterTax
		}
		s.Note = fmt.Sprintf("%s, %dy invest + %dy hold at %s", p.Strategy, p.InvestmentYears, p.HoldYears, FormatRate(p.AnnualReturn))
	case o.Comparison != nil:
		c := o.Comparison
		best := c.Lumpsum
		if c.BetterOption == domain.StrategySIP {
			best = c.SIP
		}
		s.TotalInvested = best.TotalInvested
		s.Maturity = best.MaturityAmount
		s.Gain = best.Gain
		s.MaturityAfterTax = best.ComparableMaturity()
		if best.TaxInfo != nil {
			s.TaxAmount = best.TaxInfo.TaxAmount
		}
		if c.Tie {
			s.Note = "Tie between SIP and Lumpsum"
		} else {
			s.Note = fmt.Sprintf("%s better by %s", c.BetterOption, FormatCurrency(c.Difference.Abs()))
		}
	case o.RequiredReturn != nil:
		r := o.RequiredReturn
		s.TotalInvested = r.Principal
		s.Maturity = r.TargetAmount
		s.Gain = r.TargetAmount.Sub(r.Principal)
		s.MaturityAfterTax = r.TargetAmount
		s.Note = fmt.Sprintf("Requires %s a year for %d years", FormatPercentage(r.RequiredReturnPercentage), r.Years)
	case o.Tax != nil:
		t := o.Tax
		s.Gain = t.Gain
		s.TaxAmount = t.TaxAmount
		s.Note = fmt.Sprintf("%s at %s after %d months", t.TaxType, FormatRate(t.TaxRateApplied), t.HoldingPeriodMonths)
	}
	return s
}

// Summaries flattens every outcome in input order.
func Summaries(results *domain.BatchResult) []Summary {
	out := make([]Summary, len(results.Scenarios))
	for i, o := range results.Scenarios {
		out[i] = Summarize(o)
	}
	return out
}

// Recommendation encapsulates the selection result of the best scenario.
type Recommendation struct {
	ScenarioName     string
	MaturityAfterTax decimal.Decimal
	GainPercentage   decimal.Decimal
}

// AnalyzeScenarios picks the investment scenario with the highest post-tax
// gain relative to the amount invested. Failed, required-return and tax
// outcomes are not ranked.
func AnalyzeScenarios(results *domain.BatchResult) Recommendation {
	var rec Recommendation
	found := false
	for _, o := range results.Scenarios {
		s, pct, ok := postTaxGainPercentage(o)
		if !ok {
			continue
		}
		if !found || pct.GreaterThan(rec.GainPercentage) {
			rec = Recommendation{ScenarioName: s.Name, MaturityAfterTax: s.MaturityAfterTax, GainPercentage: pct}
			found = true
		}
	}
	return rec
}
