package output

import (
	"context"
	"encoding/json"
	"html/template"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/mfcalc/fund-calculator/internal/calculation"
	"github.com/mfcalc/fund-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

func buildTestBatch(t *testing.T) *domain.BatchResult {
	t.Helper()
	start := time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC)
	cfg := &domain.Configuration{Scenarios: []domain.Scenario{
		{Name: "Retirement SIP", Type: domain.ScenarioSIP, Amount: decimal.NewFromInt(5000), AnnualReturn: decimal.NewFromInt(12), Years: 10, HoldYears: 5, StartDate: &start},
		{Name: "Bonus", Type: domain.ScenarioLumpsum, Amount: decimal.NewFromInt(100000), AnnualReturn: decimal.NewFromInt(12), Years: 10},
		{Name: "Which is better", Type: domain.ScenarioCompare, Amount: decimal.NewFromInt(5000), LumpsumAmount: decimal.NewFromInt(600000), AnnualReturn: decimal.NewFromInt(12), Years: 10},
		{Name: "Double it", Type: domain.ScenarioRequiredReturn, Amount: decimal.NewFromInt(100000), TargetAmount: decimal.NewFromInt(200000), Years: 6},
		{Name: "Redemption", Type: domain.ScenarioTax, Amount: decimal.NewFromInt(300000), HoldingMonths: 18},
		{Name: "Broken", Type: domain.ScenarioSIP, Amount: decimal.Zero, AnnualReturn: decimal.NewFromInt(12), Years: 10},
	}}
	batch, err := calculation.NewCalculationEngine().RunScenarios(context.Background(), cfg)
	if err != nil {
		t.Fatalf("RunScenarios: %v", err)
	}
	return batch
}

func TestConsoleLiteFormatter(t *testing.T) {
	f := ConsoleFormatter{}
	out, err := f.Format(buildTestBatch(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	content := string(out)
	if !strings.Contains(content, "Recommended: Retirement SIP") {
		t.Fatalf("expected recommendation for Retirement SIP, got: %s", content)
	}
	if !strings.Contains(content, "Broken: ERROR invalid input values") {
		t.Fatalf("expected failed scenario line, got: %s", content)
	}
	if !strings.Contains(content, "Redemption: Gain=₹3,00,000 Tax=₹21,875") {
		t.Fatalf("expected tax scenario line, got: %s", content)
	}
}

func TestConsoleVerboseFormatter(t *testing.T) {
	f := ConsoleVerboseFormatter{}
	out, err := f.Format(buildTestBatch(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	content := string(out)
	for _, want := range []string{
		"MUTUAL FUND INVESTMENT PROJECTION",
		"Tax regime: FY 2026-27",
		"SCENARIO 1: Retirement SIP (sip)",
		"₹20,47,304.19 (20.5 L)",
		"2026-04-01 / 2041-04-01",
		"Better Option: Lumpsum by ₹6,14,086.85 (6.1 L)",
		"Required Annual Return:   12.25%",
		"ERROR: invalid input values",
	} {
		if !strings.Contains(content, want) {
			t.Fatalf("expected %q in verbose output, got: %s", want, truncate(content, 600))
		}
	}
	if got := strings.Count(content, "  Investment  "); got != 10+10 {
		t.Fatalf("expected 20 investment rows, got %d", got)
	}
}

func TestCSVSummarizerRows(t *testing.T) {
	f := CSVSummarizer{}
	out, err := f.Format(buildTestBatch(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	if len(lines) != 7 {
		t.Fatalf("expected 7 lines (header+6 rows), got %d", len(lines))
	}
	if !strings.HasPrefix(lines[1], "Retirement SIP,") || !strings.HasPrefix(lines[6], "Broken,") {
		t.Fatalf("rows not in batch order: %v", lines)
	}
	if !strings.HasPrefix(lines[2], "Bonus,lumpsum,100000.00,310584.82,210584.82,10698.10,299886.72,") {
		t.Fatalf("unexpected lumpsum row: %s", lines[2])
	}
	if !strings.HasSuffix(lines[6], "invalid input values: amount must be greater than zero") {
		t.Fatalf("expected error column, got: %s", lines[6])
	}
}

func TestCSVDetailedExporterRows(t *testing.T) {
	f := CSVDetailedExporter{}
	out, err := f.Format(buildTestBatch(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	// 15 SIP years + 10 lumpsum years; comparisons add no rows
	if len(lines) != 26 {
		t.Fatalf("expected 26 lines, got %d", len(lines))
	}
	if lines[1] != "Retirement SIP,1,2027-04-01,Investment,60000.00,64046.64,4046.64,true" {
		t.Fatalf("unexpected first row: %s", lines[1])
	}
	if !strings.HasPrefix(lines[11], "Retirement SIP,11,2037-04-01,Hold,600000.00,1301098.83,") {
		t.Fatalf("unexpected first hold row: %s", lines[11])
	}
	if !strings.HasPrefix(lines[16], "Bonus,1,,Investment,100000.00,112000.00,") {
		t.Fatalf("unexpected lumpsum row: %s", lines[16])
	}
}

func TestJSONFormatter(t *testing.T) {
	out, err := JSONFormatter{}.Format(buildTestBatch(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var decoded struct {
		Regime    struct{ Name string } `json:"regime"`
		Scenarios []map[string]any      `json:"scenarios"`
	}
	if err := json.Unmarshal(out, &decoded); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if decoded.Regime.Name != "FY 2026-27" || len(decoded.Scenarios) != 6 {
		t.Fatalf("unexpected json content: %+v", decoded)
	}
	if _, ok := decoded.Scenarios[5]["error"]; !ok {
		t.Fatalf("expected error key on failed scenario")
	}
	if _, ok := decoded.Scenarios[4]["tax"]; !ok {
		t.Fatalf("expected tax key on tax scenario")
	}
}

// Golden snapshot tests (prefix-based) ensure key headers remain stable.
func TestGoldenSnapshots(t *testing.T) {
	cases := []struct {
		name      string
		golden    string
		formatter Formatter
	}{
		{"console_verbose", "console_verbose.golden", ConsoleVerboseFormatter{}},
		{"console_lite", "console_lite.golden", ConsoleFormatter{}},
		{"csv_summary", "csv_summary.golden", CSVSummarizer{}},
		{"csv_detailed", "csv_detailed.golden", CSVDetailedExporter{}},
		{"html", "html_prefix.golden", HTMLFormatter{}},
	}

	batch := buildTestBatch(t)
	update := os.Getenv("UPDATE_GOLDEN") == "1"
	for _, tc := range cases {
		out, err := tc.formatter.Format(batch)
		if err != nil {
			t.Fatalf("%s: format error: %v", tc.name, err)
		}
		goldenPath := filepath.Join("testdata", tc.golden)
		if update {
			// only first line to keep golden small & stable
			line := firstLine(string(out)) + "\n"
			if err := os.WriteFile(goldenPath, []byte(line), 0644); err != nil {
				t.Fatalf("%s: update golden failed: %v", tc.name, err)
			}
		}
		data, err := os.ReadFile(goldenPath)
		if err != nil {
			t.Fatalf("%s: read golden: %v", tc.name, err)
		}
		if !strings.HasPrefix(string(out), strings.TrimSpace(string(data))) {
			t.Fatalf("%s: output does not match golden prefix %q", tc.name, strings.TrimSpace(string(data)))
		}
	}
}

func TestHTMLFormatterBasic(t *testing.T) {
	out, err := HTMLFormatter{}.Format(buildTestBatch(t))
	if err != nil {
		t.Fatalf("html format error: %v", err)
	}
	content := string(out)
	for _, want := range []string{
		"Tax regime: <strong>FY 2026-27</strong>",
		"Recommended: <strong>Retirement SIP</strong>",
		"<h2>1. Retirement SIP</h2>",
		`<tr class="hold"><td>11</td>`,
		"₹20,47,304.19",
		"invalid input values",
	} {
		if !strings.Contains(content, want) {
			t.Fatalf("expected %q in HTML output", want)
		}
	}
}

func TestHTMLAssumptionsSectionPresent(t *testing.T) {
	batch := buildTestBatch(t)
	out, err := HTMLFormatter{}.Format(batch)
	if err != nil {
		t.Fatalf("html format error: %v", err)
	}
	content := string(out)
	if !strings.Contains(content, "<h2>Assumptions</h2>") {
		t.Fatalf("expected Assumptions section in HTML output")
	}
	for _, a := range GenerateAssumptions(&batch.Regime) {
		if !strings.Contains(content, template.HTMLEscapeString(a)) {
			t.Fatalf("expected assumption %q to be rendered in HTML", a)
		}
	}
}

func TestGetFormatterByName(t *testing.T) {
	for _, name := range []string{"console", "verbose", " CSV ", "year-wise", "html-report", "json-pretty", "summary"} {
		if GetFormatterByName(name) == nil {
			t.Fatalf("expected formatter for %q", name)
		}
	}
	if GetFormatterByName("pdf") != nil {
		t.Fatalf("expected no formatter for pdf")
	}
	if got := GetFormatterByName("year-wise").Name(); got != "detailed-csv" {
		t.Fatalf("year-wise resolved to %q", got)
	}
}

func TestAvailableFormatterNames(t *testing.T) {
	got := strings.Join(AvailableFormatterNames(), ",")
	if got != "console,console-lite,csv,detailed-csv,html,json" {
		t.Fatalf("unexpected formatter names: %s", got)
	}
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
