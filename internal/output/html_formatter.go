package output

import (
	"bytes"
	_ "embed"
	"html/template"

	"github.com/mfcalc/fund-calculator/internal/domain"
)

// HTMLFormatter renders a standalone HTML report.
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string { return "html" }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"curr":  FormatCurrency,
	"label": FormatCurrencyWithLabel,
	"pct":   FormatPercentage,
	"rate":  FormatRate,
	"add":   func(i, j int) int { return i + j },
}).Parse(htmlTemplateSource))

func (h HTMLFormatter) Format(results *domain.BatchResult) ([]byte, error) {
	var buf bytes.Buffer
	st, err := ComputeBatchStatistics(results)
	if err != nil {
		return nil, err
	}
	data := struct {
		*domain.BatchResult
		Summaries      []Summary
		Recommendation Recommendation
		Statistics     *BatchStatistics
		Assumptions    []string
	}{results, Summaries(results), AnalyzeScenarios(results), st, GenerateAssumptions(&results.Regime)}
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
