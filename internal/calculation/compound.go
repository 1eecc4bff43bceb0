package calculation

import (
	"github.com/shopspring/decimal"
)

const monthsPerYear = 12

var (
	one            = decimal.NewFromInt(1)
	hundred        = decimal.NewFromInt(100)
	monthlyDivisor = decimal.NewFromInt(1200) // annual percent -> monthly fraction
)

// workingPrecision bounds the digits kept between multiplications so that
// long horizons do not grow the mantissa without limit.
const workingPrecision = 28

// compound raises base to a non-negative integer power by repeated squaring.
// The same input always takes the same multiplication path, so a balance
// recomputed for year y matches a direct calculation for y years exactly.
func compound(base decimal.Decimal, n int) decimal.Decimal {
	result := one
	for n > 0 {
		if n&1 == 1 {
			result = result.Mul(base).Round(workingPrecision)
		}
		n >>= 1
		if n > 0 {
			base = base.Mul(base).Round(workingPrecision)
		}
	}
	return result
}

// monthlyRate converts an annual percentage into a monthly fraction.
func monthlyRate(annualRatePercent decimal.Decimal) decimal.Decimal {
	return annualRatePercent.Div(monthlyDivisor)
}

// annualFactor converts an annual percentage into a (1 + a) growth factor.
func annualFactor(annualRatePercent decimal.Decimal) decimal.Decimal {
	return one.Add(annualRatePercent.Div(hundred))
}

// figures are unrounded maturity and invested amounts. Rounding happens once
// when they are turned into a result.
type figures struct {
	maturity decimal.Decimal
	invested decimal.Decimal
}

func (f figures) gain() decimal.Decimal {
	return f.maturity.Sub(f.invested)
}

// periodicFigures is the future value of an annuity-due: every instalment is
// credited before that month's growth.
func periodicFigures(contribution, annualRatePercent decimal.Decimal, months int) figures {
	n := decimal.NewFromInt(int64(months))
	invested := contribution.Mul(n)
	r := monthlyRate(annualRatePercent)
	if r.IsZero() {
		return figures{maturity: invested, invested: invested}
	}
	growth := compound(one.Add(r), months).Sub(one)
	maturity := contribution.Mul(growth).Div(r).Mul(one.Add(r))
	return figures{maturity: maturity, invested: invested}
}

// lumpSumFigures is standard annual compounding of a single principal.
func lumpSumFigures(principal, annualRatePercent decimal.Decimal, years int) figures {
	return figures{
		maturity: principal.Mul(compound(annualFactor(annualRatePercent), years)),
		invested: principal,
	}
}

// round rounds a monetary or percentage output to two places.
func round(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// percentOf returns part/base*100, or zero when base is not positive.
func percentOf(part, base decimal.Decimal) decimal.Decimal {
	if !base.IsPositive() {
		return decimal.Zero
	}
	return part.Div(base).Mul(hundred)
}
