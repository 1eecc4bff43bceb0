package output

import (
	"github.com/montanaflynn/stats"
	"github.com/shopspring/decimal"

	"github.com/mfcalc/fund-calculator/internal/domain"
)

// BatchStatistics describes the spread of post-tax gain percentages across
// the rankable scenarios of a batch. The figures are for display only.
type BatchStatistics struct {
	Count  int
	Mean   decimal.Decimal
	Median decimal.Decimal
	Min    decimal.Decimal
	Max    decimal.Decimal
	StdDev decimal.Decimal
}

// postTaxGainPercentage is the gain after tax relative to the amount
// invested. Only phased and comparison outcomes are ranked.
func postTaxGainPercentage(o domain.ScenarioOutcome) (Summary, decimal.Decimal, bool) {
	if o.Failed() || (o.Phased == nil && o.Comparison == nil) {
		return Summary{}, decimal.Zero, false
	}
	s := Summarize(o)
	if !s.TotalInvested.IsPositive() {
		return Summary{}, decimal.Zero, false
	}
	pct := s.MaturityAfterTax.Sub(s.TotalInvested).Div(s.TotalInvested).Mul(decimal.NewFromInt(100)).Round(2)
	return s, pct, true
}

// ComputeBatchStatistics returns nil when fewer than two scenarios can be
// ranked.
func ComputeBatchStatistics(results *domain.BatchResult) (*BatchStatistics, error) {
	var data stats.Float64Data
	for _, o := range results.Scenarios {
		if _, pct, ok := postTaxGainPercentage(o); ok {
			data = append(data, pct.InexactFloat64())
		}
	}
	if len(data) < 2 {
		return nil, nil
	}

	mean, err := data.Mean()
	if err != nil {
		return nil, err
	}
	median, err := data.Median()
	if err != nil {
		return nil, err
	}
	lo, err := data.Min()
	if err != nil {
		return nil, err
	}
	hi, err := data.Max()
	if err != nil {
		return nil, err
	}
	sd, err := data.StandardDeviationPopulation()
	if err != nil {
		return nil, err
	}

	toDecimal := func(f float64) decimal.Decimal { return decimal.NewFromFloat(f).Round(2) }
	return &BatchStatistics{
		Count:  len(data),
		Mean:   toDecimal(mean),
		Median: toDecimal(median),
		Min:    toDecimal(lo),
		Max:    toDecimal(hi),
		StdDev: toDecimal(sd),
	}, nil
}
