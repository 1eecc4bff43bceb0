package output

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/mfcalc/fund-calculator/internal/domain"
)

// ConsoleVerboseFormatter renders the detailed console report with the
// year-wise trajectory of every phased scenario.
type ConsoleVerboseFormatter struct{}

func (c ConsoleVerboseFormatter) Name() string { return "console" }

func (c ConsoleVerboseFormatter) Format(results *domain.BatchResult) ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintln(&buf, strings.Repeat("=", 80))
	fmt.Fprintln(&buf, "MUTUAL FUND INVESTMENT PROJECTION")
	fmt.Fprintln(&buf, strings.Repeat("=", 80))
	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, "KEY ASSUMPTIONS:")
	for _, a := range GenerateAssumptions(&results.Regime) {
		fmt.Fprintf(&buf, "• %s\n", a)
	}
	fmt.Fprintln(&buf)

	for i, o := range results.Scenarios {
		fmt.Fprintf(&buf, "SCENARIO %d: %s (%s)\n", i+1, o.Name, o.Type)
		fmt.Fprintln(&buf, strings.Repeat("=", 50))
		switch {
		case o.Failed():
			fmt.Fprintf(&buf, "ERROR: %s\n", o.Error)
		case o.Phased != nil:
			writePhased(&buf, o.Phased)
		case o.Comparison != nil:
			writeComparison(&buf, o.Comparison)
		case o.RequiredReturn != nil:
			writeRequiredReturn(&buf, o.RequiredReturn)
		case o.Tax != nil:
			writeTax(&buf, o.Tax)
		}
		fmt.Fprintln(&buf)
	}

	return buf.Bytes(), nil
}

func writePhased(w io.Writer, p *domain.PhasedResult) {
	fmt.Fprintln(w, "PARAMETERS:")
	if p.Strategy == domain.StrategySIP {
		fmt.Fprintf(w, "  Monthly SIP:              %s\n", FormatCurrency(p.Contribution))
	} else {
		fmt.Fprintf(w, "  Lumpsum:                  %s\n", FormatCurrency(p.Contribution))
	}
	fmt.Fprintf(w, "  Expected Return:          %s a year\n", FormatRate(p.AnnualReturn))
	fmt.Fprintf(w, "  Investment Period:        %d years\n", p.InvestmentYears)
	fmt.Fprintf(w, "  Hold Period:              %d years\n", p.HoldYears)
	fmt.Fprintf(w, "  Fund Type:                %s\n", p.FundType)
	if p.StartDate != nil && p.MaturityDate != nil {
		fmt.Fprintf(w, "  Start / Maturity:         %s / %s\n", p.StartDate.Format("2006-01-02"), p.MaturityDate.Format("2006-01-02"))
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "RESULTS:")
	fmt.Fprintf(w, "  Total Invested:           %s\n", FormatCurrencyWithLabel(p.TotalInvested))
	fmt.Fprintf(w, "  After Investment Phase:   %s\n", FormatCurrencyWithLabel(p.MaturityAfterInvestment))
	fmt.Fprintf(w, "  Gain During Investment:   %s\n", FormatCurrency(p.GainDuringInvestment))
	fmt.Fprintf(w, "  Final Maturity:           %s\n", FormatCurrencyWithLabel(p.FinalMaturity))
	fmt.Fprintf(w, "  Total Gain:               %s (%s)\n", FormatCurrency(p.TotalGain), FormatPercentage(p.TotalGainPercentage))
	if p.TaxInfo != nil && p.FinalMaturityAfterTax != nil {
		writeTaxLines(w, p.TaxInfo)
		fmt.Fprintf(w, "  Final Maturity After Tax: %s\n", FormatCurrencyWithLabel(*p.FinalMaturityAfterTax))
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "YEAR-WISE GROWTH:")
	fmt.Fprintf(w, "  %-4s  %-10s  %18s  %18s  %18s\n", "Year", "Phase", "Invested", "Value", "Gain")
	fmt.Fprintf(w, "  %s\n", strings.Repeat("-", 76))
	for _, y := range p.YearWiseData {
		fmt.Fprintf(w, "  %-4d  %-10s  %18s  %18s  %18s\n", y.Year, y.Phase,
			FormatCurrency(y.Invested), FormatCurrency(y.Amount), FormatCurrency(y.Gain))
	}
}

func writeComparison(w io.Writer, c *domain.ComparisonResult) {
	fmt.Fprintf(w, "  %-24s  %20s  %20s\n", "", "SIP", "Lumpsum")
	row := func(label, sip, lumpsum string) {
		fmt.Fprintf(w, "  %-24s  %20s  %20s\n", label, sip, lumpsum)
	}
	row("Contribution", FormatCurrency(c.SIP.Contribution)+"/mo", FormatCurrency(c.Lumpsum.Contribution))
	row("Total Invested", FormatCurrency(c.SIP.TotalInvested), FormatCurrency(c.Lumpsum.TotalInvested))
	row("Maturity", FormatCurrency(c.SIP.MaturityAmount), FormatCurrency(c.Lumpsum.MaturityAmount))
	row("Gain", FormatCurrency(c.SIP.Gain), FormatCurrency(c.Lumpsum.Gain))
	if c.SIP.TaxInfo != nil && c.Lumpsum.TaxInfo != nil {
		row("Tax", FormatCurrency(c.SIP.TaxInfo.TaxAmount), FormatCurrency(c.Lumpsum.TaxInfo.TaxAmount))
		row("Maturity After Tax", FormatCurrency(c.SIP.ComparableMaturity()), FormatCurrency(c.Lumpsum.ComparableMaturity()))
	}
	fmt.Fprintln(w)
	if c.Tie {
		fmt.Fprintln(w, "  Both options mature to the same amount.")
		return
	}
	fmt.Fprintf(w, "  Better Option: %s by %s\n", c.BetterOption, FormatCurrencyWithLabel(c.Difference.Abs()))
}

func writeRequiredReturn(w io.Writer, r *domain.RequiredReturnResult) {
	fmt.Fprintf(w, "  Principal:                %s\n", FormatCurrencyWithLabel(r.Principal))
	fmt.Fprintf(w, "  Target:                   %s\n", FormatCurrencyWithLabel(r.TargetAmount))
	fmt.Fprintf(w, "  Years:                    %d\n", r.Years)
	fmt.Fprintf(w, "  Required Annual Return:   %s\n", FormatPercentage(r.RequiredReturnPercentage))
}

func writeTax(w io.Writer, t *domain.TaxResult) {
	fmt.Fprintf(w, "  Gain:                     %s\n", FormatCurrency(t.Gain))
	fmt.Fprintf(w, "  Holding Period:           %d months\n", t.HoldingPeriodMonths)
	writeTaxLines(w, t)
	fmt.Fprintf(w, "  Gain After Tax:           %s\n", FormatCurrency(t.GainAfterTax))
}

func writeTaxLines(w io.Writer, t *domain.TaxResult) {
	rate := FormatRate(t.TaxRateApplied)
	if t.TaxSlab != nil {
		rate = t.TaxSlab.String() + " slab"
	}
	fmt.Fprintf(w, "  Tax (%s at %s):", t.TaxType, rate)
	if !t.TaxApplicable {
		fmt.Fprintln(w, " not applicable")
		return
	}
	fmt.Fprintf(w, " %s (effective %s)\n", FormatCurrency(t.TaxAmount), FormatPercentage(t.EffectiveTaxRate))
}
