package output

import (
	"github.com/gocarina/gocsv"
	"github.com/mfcalc/fund-calculator/internal/domain"
)

// CSVDetailedExporter provides the year-wise trajectory per phased scenario.
// Comparisons contribute no rows.
type CSVDetailedExporter struct{}

func (c CSVDetailedExporter) Name() string { return "detailed-csv" }

type yearRow struct {
	Scenario string `csv:"Scenario"`
	Year     string `csv:"Year"`
	Date     string `csv:"Date"`
	Phase    string `csv:"Phase"`
	Invested string `csv:"Invested"`
	Amount   string `csv:"Amount"`
	Gain     string `csv:"Gain"`
	Taxed    string `csv:"Taxed"`
}

func (c CSVDetailedExporter) Format(results *domain.BatchResult) ([]byte, error) {
	rows := []yearRow{}
	for _, o := range results.Scenarios {
		if o.Phased == nil {
			continue
		}
		for _, yr := range o.Phased.YearWiseData {
			row := yearRow{
				Scenario: o.Name,
				Year:     intToString(yr.Year),
				Phase:    string(yr.Phase),
				Invested: yr.Invested.StringFixed(2),
				Amount:   yr.Amount.StringFixed(2),
				Gain:     yr.Gain.StringFixed(2),
				Taxed:    boolToString(o.Phased.TaxInfo != nil),
			}
			if yr.Date != nil {
				row.Date = yr.Date.Format("2006-01-02")
			}
			rows = append(rows, row)
		}
	}
	return gocsv.MarshalBytes(&rows)
}
