package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TaxOptions carries the tax settings shared by every calculation
type TaxOptions struct {
	FundType     FundType `json:"fund_type"`
	TaxSlab      TaxSlab  `json:"investor_tax_slab"`
	CalculateTax bool     `json:"calculate_tax"`
}

// DefaultTaxOptions mirrors the calculator's defaults: equity, 30% slab, taxed.
func DefaultTaxOptions() TaxOptions {
	return TaxOptions{FundType: FundTypeEquity, TaxSlab: DefaultTaxSlab, CalculateTax: true}
}

// GrowthResult is the pre-tax outcome of a single growth calculation
type GrowthResult struct {
	Strategy       Strategy        `json:"type"`
	MaturityAmount decimal.Decimal `json:"maturity_amount"`
	TotalInvested  decimal.Decimal `json:"total_invested"`
	Gain           decimal.Decimal `json:"gain"`
	GainPercentage decimal.Decimal `json:"gain_percentage"`

	// Schedule parameters. Contribution is the monthly instalment for a SIP
	// and the principal for a lumpsum.
	Contribution decimal.Decimal `json:"contribution"`
	AnnualReturn decimal.Decimal `json:"annual_return"`
	Years        int             `json:"years"`
	Months       int             `json:"months"`
}

// TaxResult describes the capital gains tax on one gain
type TaxResult struct {
	Gain                decimal.Decimal `json:"gain"`
	TaxApplicable       bool            `json:"tax_applicable"`
	TaxType             TaxType         `json:"tax_type"`
	TaxAmount           decimal.Decimal `json:"tax_amount"`
	GainAfterTax        decimal.Decimal `json:"gain_after_tax"`
	EffectiveTaxRate    decimal.Decimal `json:"effective_tax_rate"`
	TaxRateApplied      decimal.Decimal `json:"tax_rate_applied"`
	HoldingPeriodMonths int             `json:"holding_period_months"`
	TaxSlab             *TaxSlab        `json:"tax_slab,omitempty"`
}

// InvestmentResult is a growth result with the optional tax overlay
type InvestmentResult struct {
	GrowthResult
	FundType         FundType         `json:"fund_type"`
	CalculateTax     bool             `json:"calculate_tax"`
	TaxInfo          *TaxResult       `json:"tax_info,omitempty"`
	MaturityAfterTax *decimal.Decimal `json:"maturity_after_tax,omitempty"`
	InvestorTaxSlab  *TaxSlab         `json:"investor_tax_slab,omitempty"`
}

// ComparableMaturity is the figure the comparator ranks on: post-tax when a
// tax overlay exists, pre-tax otherwise.
func (r *InvestmentResult) ComparableMaturity() decimal.Decimal {
	if r.CalculateTax && r.MaturityAfterTax != nil {
		return *r.MaturityAfterTax
	}
	return r.MaturityAmount
}

// YearRecord is one row of a phased trajectory
type YearRecord struct {
	Year     int             `json:"year"`
	Phase    Phase           `json:"phase"`
	Invested decimal.Decimal `json:"invested"`
	Amount   decimal.Decimal `json:"amount"`
	Gain     decimal.Decimal `json:"gain"`
	Date     *time.Time      `json:"date,omitempty"`
}

// PhasedResult chains an investment phase into a hold phase
type PhasedResult struct {
	Strategy        Strategy        `json:"type"`
	Contribution    decimal.Decimal `json:"contribution"`
	InvestmentYears int             `json:"investment_years"`
	HoldYears       int             `json:"hold_years"`
	AnnualReturn    decimal.Decimal `json:"annual_return"`
	FundType        FundType        `json:"fund_type"`
	CalculateTax    bool            `json:"calculate_tax"`

	TotalInvested           decimal.Decimal `json:"total_invested"`
	MaturityAfterInvestment decimal.Decimal `json:"maturity_after_investment"`
	GainDuringInvestment    decimal.Decimal `json:"gain_during_investment"`
	FinalMaturity           decimal.Decimal `json:"final_maturity"`
	TotalGain               decimal.Decimal `json:"total_gain"`
	TotalGainPercentage     decimal.Decimal `json:"total_gain_percentage"`
	YearWiseData            []YearRecord    `json:"year_wise_data"`

	TaxInfo               *TaxResult       `json:"tax_info,omitempty"`
	FinalMaturityAfterTax *decimal.Decimal `json:"final_maturity_after_tax,omitempty"`
	InvestorTaxSlab       *TaxSlab         `json:"investor_tax_slab,omitempty"`

	StartDate    *time.Time `json:"start_date,omitempty"`
	MaturityDate *time.Time `json:"maturity_date,omitempty"`
}

// ComparisonResult ranks a SIP against a lumpsum under identical settings
type ComparisonResult struct {
	SIP              InvestmentResult `json:"sip"`
	Lumpsum          InvestmentResult `json:"lumpsum"`
	Difference       decimal.Decimal  `json:"difference"`
	BetterOption     Strategy         `json:"better_option"`
	Tie              bool             `json:"tie"`
	TotalSIPInvested decimal.Decimal  `json:"total_sip_invested"`
}

// RequiredReturnResult is the annual return needed to grow principal into target
type RequiredReturnResult struct {
	RequiredReturnPercentage decimal.Decimal `json:"required_return_percentage"`
	Principal                decimal.Decimal `json:"principal"`
	TargetAmount             decimal.Decimal `json:"target_amount"`
	Years                    int             `json:"years"`
}

// InvestmentRequest describes a plain SIP or lumpsum calculation
type InvestmentRequest struct {
	Amount       decimal.Decimal
	AnnualReturn decimal.Decimal
	Years        int
	Tax          TaxOptions
}

// PhasedRequest describes an investment phase followed by a hold phase
type PhasedRequest struct {
	Amount          decimal.Decimal
	AnnualReturn    decimal.Decimal
	InvestmentYears int
	HoldYears       int
	StartDate       *time.Time
	Tax             TaxOptions
}

// ComparisonRequest describes a SIP vs lumpsum comparison
type ComparisonRequest struct {
	MonthlySIP   decimal.Decimal
	Lumpsum      decimal.Decimal
	AnnualReturn decimal.Decimal
	Years        int
	Tax          TaxOptions
}
