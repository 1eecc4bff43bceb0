package calculation

import (
	"fmt"

	"github.com/mfcalc/fund-calculator/internal/domain"
)

// Compare runs a SIP and a lumpsum over the same horizon, rate and tax
// settings and ranks them on post-tax maturity when tax is on. Equal
// maturities keep Lumpsum as the label and set Tie.
func (ce *CalculationEngine) Compare(req domain.ComparisonRequest) (*domain.ComparisonResult, error) {
	sip, err := ce.CalculateSIP(domain.InvestmentRequest{
		Amount:       req.MonthlySIP,
		AnnualReturn: req.AnnualReturn,
		Years:        req.Years,
		Tax:          req.Tax,
	})
	if err != nil {
		return nil, fmt.Errorf("sip leg: %w", err)
	}

	lumpsum, err := ce.CalculateLumpsum(domain.InvestmentRequest{
		Amount:       req.Lumpsum,
		AnnualReturn: req.AnnualReturn,
		Years:        req.Years,
		Tax:          req.Tax,
	})
	if err != nil {
		return nil, fmt.Errorf("lumpsum leg: %w", err)
	}

	sipMaturity := sip.ComparableMaturity()
	lumpsumMaturity := lumpsum.ComparableMaturity()

	better := domain.StrategyLumpsum
	if sipMaturity.GreaterThan(lumpsumMaturity) {
		better = domain.StrategySIP
	}

	ce.Logger.Debugf("compare: sip=%s lumpsum=%s better=%s",
		sipMaturity.StringFixed(2), lumpsumMaturity.StringFixed(2), better)

	return &domain.ComparisonResult{
		SIP:              *sip,
		Lumpsum:          *lumpsum,
		Difference:       sipMaturity.Sub(lumpsumMaturity),
		BetterOption:     better,
		Tie:              sipMaturity.Equal(lumpsumMaturity),
		TotalSIPInvested: sip.TotalInvested,
	}, nil
}
