package output

import (
	"bytes"
	"fmt"

	"github.com/mfcalc/fund-calculator/internal/domain"
)

// ConsoleFormatter provides a concise console style summary via the formatter interface.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console-lite" }

func (c ConsoleFormatter) Format(results *domain.BatchResult) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "FUND PROJECTION SUMMARY")
	fmt.Fprintln(&buf, "================================")
	fmt.Fprintf(&buf, "Tax Regime: %s\n", results.Regime.Name)
	fmt.Fprintln(&buf)
	for _, s := range Summaries(results) {
		if s.Error != "" {
			fmt.Fprintf(&buf, "%s: ERROR %s\n", s.Name, s.Error)
			continue
		}
		if s.Type == domain.ScenarioTax {
			fmt.Fprintf(&buf, "%s: Gain=%s Tax=%s\n", s.Name, FormatCurrency(s.Gain), FormatCurrency(s.TaxAmount))
		} else {
			fmt.Fprintf(&buf, "%s: Invested=%s Maturity=%s AfterTax=%s\n",
				s.Name, FormatCurrency(s.TotalInvested), FormatCurrency(s.Maturity), FormatCurrency(s.MaturityAfterTax))
		}
		fmt.Fprintf(&buf, "  %s\n", s.Note)
	}
	rec := AnalyzeScenarios(results)
	if rec.ScenarioName != "" {
		fmt.Fprintln(&buf)
		fmt.Fprintf(&buf, "Recommended: %s (%s, +%s after tax)\n", rec.ScenarioName, FormatCurrency(rec.MaturityAfterTax), FormatPercentage(rec.GainPercentage))
	}
	st, err := ComputeBatchStatistics(results)
	if err != nil {
		return nil, err
	}
	if st != nil {
		fmt.Fprintf(&buf, "Post-tax gain across %d scenarios: mean %s, median %s, range %s to %s\n",
			st.Count, FormatPercentage(st.Mean), FormatPercentage(st.Median), FormatPercentage(st.Min), FormatPercentage(st.Max))
	}
	return buf.Bytes(), nil
}
