package calculation

import (
	"math"
	"math/big"

	"github.com/mfcalc/fund-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// PeriodicGrowth computes the maturity of a fixed monthly contribution made at
// the start of each month for totalMonths months.
func PeriodicGrowth(contribution, annualRatePercent decimal.Decimal, totalMonths int) (domain.GrowthResult, error) {
	if err := validateAmount("amount", contribution); err != nil {
		return domain.GrowthResult{}, err
	}
	if err := validateRate(annualRatePercent); err != nil {
		return domain.GrowthResult{}, err
	}
	if totalMonths <= 0 {
		return domain.GrowthResult{}, domain.NewInputError("months", "must be positive")
	}

	f := periodicFigures(contribution, annualRatePercent, totalMonths)
	result := growthResult(domain.StrategySIP, f)
	result.Contribution = contribution
	result.AnnualReturn = annualRatePercent
	result.Years = totalMonths / monthsPerYear
	result.Months = totalMonths
	return result, nil
}

// LumpSumGrowth computes the maturity of a single principal compounded
// annually for years years.
func LumpSumGrowth(principal, annualRatePercent decimal.Decimal, years int) (domain.GrowthResult, error) {
	if err := validateAmount("amount", principal); err != nil {
		return domain.GrowthResult{}, err
	}
	if err := validateRate(annualRatePercent); err != nil {
		return domain.GrowthResult{}, err
	}
	if err := validateYears("years", years); err != nil {
		return domain.GrowthResult{}, err
	}

	f := lumpSumFigures(principal, annualRatePercent, years)
	result := growthResult(domain.StrategyLumpsum, f)
	result.Contribution = principal
	result.AnnualReturn = annualRatePercent
	result.Years = years
	result.Months = years * monthsPerYear
	return result, nil
}

// RequiredReturn solves (target/principal)^(1/years) - 1 for the annual
// return. The target must exceed the principal.
func RequiredReturn(principal, target decimal.Decimal, years int) (domain.RequiredReturnResult, error) {
	if err := validateAmount("amount", principal); err != nil {
		return domain.RequiredReturnResult{}, err
	}
	if err := validateAmount("target_amount", target); err != nil {
		return domain.RequiredReturnResult{}, err
	}
	if err := validateYears("years", years); err != nil {
		return domain.RequiredReturnResult{}, err
	}
	if !target.GreaterThan(principal) {
		return domain.RequiredReturnResult{}, domain.NewInputError("target_amount", "must be greater than the principal")
	}

	// decimal has no fractional root. The ratio is taken in log space so
	// amounts beyond the float64 range do not overflow before the root.
	rate := math.Pow(10, (log10(target)-log10(principal))/float64(years)) - 1
	if math.IsInf(rate, 0) || math.IsNaN(rate) {
		return domain.RequiredReturnResult{}, domain.NewInputError("target_amount", "ratio to principal is too large")
	}

	return domain.RequiredReturnResult{
		RequiredReturnPercentage: round(decimal.NewFromFloat(rate * 100)),
		Principal:                round(principal),
		TargetAmount:             round(target),
		Years:                    years,
	}, nil
}

// log10 of a positive decimal, split into coefficient and exponent.
func log10(d decimal.Decimal) float64 {
	mant := new(big.Float)
	exp2 := new(big.Float).SetInt(d.Coefficient()).MantExp(mant)
	m, _ := mant.Float64()
	return math.Log10(m) + float64(exp2)*math.Log10(2) + float64(d.Exponent())
}

// growthResult rounds once. Gain is derived from the rounded figures so that
// MaturityAmount == TotalInvested + Gain holds exactly.
func growthResult(strategy domain.Strategy, f figures) domain.GrowthResult {
	maturity := round(f.maturity)
	invested := round(f.invested)
	return domain.GrowthResult{
		Strategy:       strategy,
		MaturityAmount: maturity,
		TotalInvested:  invested,
		Gain:           maturity.Sub(invested),
		GainPercentage: round(percentOf(f.gain(), f.invested)),
	}
}

func validateAmount(field string, amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return domain.NewInputError(field, "must be greater than zero")
	}
	return nil
}

func validateRate(annualRatePercent decimal.Decimal) error {
	if annualRatePercent.IsNegative() {
		return domain.NewInputError("annual_return", "cannot be negative")
	}
	return nil
}

func validateYears(field string, years int) error {
	if years <= 0 {
		return domain.NewInputError(field, "must be a positive number of years")
	}
	return nil
}
