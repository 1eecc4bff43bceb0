package calculation

import (
	"time"

	"github.com/mfcalc/fund-calculator/internal/domain"
	"github.com/mfcalc/fund-calculator/pkg/dateutil"
	"github.com/shopspring/decimal"
)

// phaseSchedule describes the investment phase of a phased calculation. at is
// evaluated from t=0 for every year so that the trajectory and the headline
// figures come from the same arithmetic.
type phaseSchedule struct {
	strategy domain.Strategy
	at       func(years int) figures
}

// SIPWithHold runs a monthly SIP for InvestmentYears and then lets the
// accumulated balance compound annually for HoldYears.
func (ce *CalculationEngine) SIPWithHold(req domain.PhasedRequest) (*domain.PhasedResult, error) {
	return ce.composePhases(req, phaseSchedule{
		strategy: domain.StrategySIP,
		at: func(years int) figures {
			return periodicFigures(req.Amount, req.AnnualReturn, years*monthsPerYear)
		},
	})
}

// LumpsumWithHold compounds a single principal for InvestmentYears and then
// for HoldYears more.
func (ce *CalculationEngine) LumpsumWithHold(req domain.PhasedRequest) (*domain.PhasedResult, error) {
	return ce.composePhases(req, phaseSchedule{
		strategy: domain.StrategyLumpsum,
		at: func(years int) figures {
			return lumpSumFigures(req.Amount, req.AnnualReturn, years)
		},
	})
}

func (ce *CalculationEngine) composePhases(req domain.PhasedRequest, schedule phaseSchedule) (*domain.PhasedResult, error) {
	if err := validateAmount("amount", req.Amount); err != nil {
		return nil, err
	}
	if err := validateRate(req.AnnualReturn); err != nil {
		return nil, err
	}
	if err := validateYears("investment_years", req.InvestmentYears); err != nil {
		return nil, err
	}
	if req.HoldYears < 0 {
		return nil, domain.NewInputError("hold_years", "cannot be negative")
	}
	taxCalc, err := ce.taxCalculatorFor(req.Tax)
	if err != nil {
		return nil, err
	}

	invested := schedule.at(req.InvestmentYears)
	growth := annualFactor(req.AnnualReturn)
	final := invested.maturity.Mul(compound(growth, req.HoldYears))
	totalGain := final.Sub(invested.invested)

	ce.Logger.Debugf("%s phased: invested=%s after_investment=%s final=%s",
		schedule.strategy, invested.invested.StringFixed(2), invested.maturity.StringFixed(2), final.StringFixed(2))

	totalYears := req.InvestmentYears + req.HoldYears
	records := make([]domain.YearRecord, 0, totalYears)
	for year := 1; year <= req.InvestmentYears; year++ {
		f := schedule.at(year)
		records = append(records, yearRecord(year, domain.PhaseInvestment, f.invested, f.maturity, req.StartDate))
	}
	for hold := 1; hold <= req.HoldYears; hold++ {
		amount := invested.maturity.Mul(compound(growth, hold))
		records = append(records, yearRecord(req.InvestmentYears+hold, domain.PhaseHold, invested.invested, amount, req.StartDate))
	}

	totalInvested := round(invested.invested)
	afterInvestment := round(invested.maturity)
	finalMaturity := round(final)

	result := &domain.PhasedResult{
		Strategy:                schedule.strategy,
		Contribution:            req.Amount,
		InvestmentYears:         req.InvestmentYears,
		HoldYears:               req.HoldYears,
		AnnualReturn:            req.AnnualReturn,
		FundType:                req.Tax.FundType,
		CalculateTax:            req.Tax.CalculateTax,
		TotalInvested:           totalInvested,
		MaturityAfterInvestment: afterInvestment,
		GainDuringInvestment:    afterInvestment.Sub(totalInvested),
		FinalMaturity:           finalMaturity,
		TotalGain:               finalMaturity.Sub(totalInvested),
		TotalGainPercentage:     round(percentOf(totalGain, invested.invested)),
		YearWiseData:            records,
	}

	if req.StartDate != nil {
		start := *req.StartDate
		maturity := dateutil.AddMonths(start, totalYears*monthsPerYear)
		result.StartDate = &start
		result.MaturityDate = &maturity
	}

	// Tax is assessed once, on the whole horizon.
	if taxCalc != nil {
		info := taxCalc.Calculate(totalGain, totalYears*monthsPerYear)
		afterTax := totalInvested.Add(info.GainAfterTax)
		result.TaxInfo = &info
		result.FinalMaturityAfterTax = &afterTax
		result.InvestorTaxSlab = investorSlab(req.Tax)
	}

	return result, nil
}

func yearRecord(year int, phase domain.Phase, invested, amount decimal.Decimal, start *time.Time) domain.YearRecord {
	rec := domain.YearRecord{
		Year:     year,
		Phase:    phase,
		Invested: round(invested),
		Amount:   round(amount),
	}
	rec.Gain = rec.Amount.Sub(rec.Invested)
	if start != nil {
		d := dateutil.AddYears(*start, year)
		rec.Date = &d
	}
	return rec
}
