package output

import (
	"github.com/gocarina/gocsv"
	"github.com/mfcalc/fund-calculator/internal/domain"
)

// CSVSummarizer implements the simple summary CSV output (one row per scenario).
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string { return "csv" }

type summaryRow struct {
	Scenario         string `csv:"Scenario"`
	Type             string `csv:"Type"`
	TotalInvested    string `csv:"TotalInvested"`
	Maturity         string `csv:"Maturity"`
	Gain             string `csv:"Gain"`
	TaxAmount        string `csv:"TaxAmount"`
	MaturityAfterTax string `csv:"MaturityAfterTax"`
	Note             string `csv:"Note"`
	Error            string `csv:"Error"`
}

func (c CSVSummarizer) Format(results *domain.BatchResult) ([]byte, error) {
	rows := make([]summaryRow, 0, len(results.Scenarios))
	for _, s := range Summaries(results) {
		row := summaryRow{Scenario: s.Name, Type: string(s.Type), Note: s.Note, Error: s.Error}
		if s.Error == "" {
			row.TotalInvested = s.TotalInvested.StringFixed(2)
			row.Maturity = s.Maturity.StringFixed(2)
			row.Gain = s.Gain.StringFixed(2)
			row.TaxAmount = s.TaxAmount.StringFixed(2)
			row.MaturityAfterTax = s.MaturityAfterTax.StringFixed(2)
		}
		rows = append(rows, row)
	}
	return gocsv.MarshalBytes(&rows)
}
