package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/mfcalc/fund-calculator/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestNewInputParser(t *testing.T) {
	parser := NewInputParser()
	assert.NotNil(t, parser)
}

func TestLoadFromFile_Success(t *testing.T) {
	testConfig := "scenarios:\n" +
		"  - name: \"Ten year SIP\"\n" +
		"    type: sip\n" +
		"    amount: 5000\n" +
		"    annual_return: 12\n" +
		"    years: 10\n" +
		"    hold_years: 5\n" +
		"    start_date: 2026-04-01\n" +
		"  - name: \"Debt lumpsum\"\n" +
		"    type: LUMPSUM\n" +
		"    amount: 250000.50\n" +
		"    annual_return: 7.25\n" +
		"    years: 3\n" +
		"    fund_type: Debt\n" +
		"    investor_tax_slab: \"15%\"\n" +
		"    calculate_tax: true\n" +
		"  - name: \"Target\"\n" +
		"    type: required-return\n" +
		"    amount: 100000\n" +
		"    target_amount: 200000\n" +
		"    years: 6\n"

	parser := NewInputParser()
	config, err := parser.LoadFromFile(writeFile(t, "config.yaml", testConfig))
	require.NoError(t, err)

	require.Len(t, config.Scenarios, 3)
	assert.Nil(t, config.TaxRegime)

	sip := config.Scenarios[0]
	assert.Equal(t, domain.ScenarioSIP, sip.Type)
	assert.True(t, decimal.NewFromInt(5000).Equal(sip.Amount))
	assert.Equal(t, 5, sip.HoldYears)
	require.NotNil(t, sip.StartDate)
	assert.Equal(t, 2026, sip.StartDate.Year())

	debt := config.Scenarios[1]
	assert.Equal(t, domain.ScenarioLumpsum, debt.Type)
	assert.Equal(t, domain.FundTypeDebt, debt.FundType)
	assert.True(t, decimal.RequireFromString("250000.50").Equal(debt.Amount))
	assert.True(t, decimal.RequireFromString("7.25").Equal(debt.AnnualReturn))
	require.NotNil(t, debt.InvestorTaxSlab)
	assert.Equal(t, domain.TaxSlab(15), *debt.InvestorTaxSlab)
	require.NotNil(t, debt.CalculateTax)
	assert.True(t, *debt.CalculateTax)

	assert.Equal(t, domain.ScenarioRequiredReturn, config.Scenarios[2].Type)
}

func TestLoadFromFile_FileNotFound(t *testing.T) {
	parser := NewInputParser()
	config, err := parser.LoadFromFile("nonexistent_file.yaml")

	assert.Error(t, err)
	assert.Nil(t, config)
	assert.Contains(t, err.Error(), "failed to read file")
}

func TestLoadFromFile_InvalidYAML(t *testing.T) {
	parser := NewInputParser()
	config, err := parser.LoadFromFile(writeFile(t, "bad.yaml", "scenarios:\n  - name: [unclosed\n"))

	assert.Error(t, err)
	assert.Nil(t, config)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestLoadFromFile_InvalidEnumerations(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "Unknown scenario type",
			content: "scenarios:\n  - name: x\n    type: annuity\n",
		},
		{
			name:    "Unknown fund type",
			content: "scenarios:\n  - name: x\n    type: sip\n    fund_type: gold\n",
		},
		{
			name:    "Slab out of range",
			content: "scenarios:\n  - name: x\n    type: sip\n    investor_tax_slab: 130\n",
		},
	}

	parser := NewInputParser()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parser.Parse([]byte(tt.content))
			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrInvalidInput), "got %v", err)
		})
	}
}

func TestLoadFromFile_TaxRegimeDefaults(t *testing.T) {
	testConfig := "tax_regime:\n" +
		"  name: \"Custom\"\n" +
		"  equity_ltcg_threshold: 100000\n" +
		"scenarios:\n" +
		"  - name: \"SIP\"\n" +
		"    type: sip\n" +
		"    amount: 5000\n" +
		"    annual_return: 12\n" +
		"    years: 10\n"

	parser := NewInputParser()
	config, err := parser.Parse([]byte(testConfig))
	require.NoError(t, err)

	require.NotNil(t, config.TaxRegime)
	assert.Equal(t, "Custom", config.TaxRegime.Name)
	assert.True(t, decimal.NewFromInt(100000).Equal(config.TaxRegime.EquityLTCGThreshold))
	assert.True(t, decimal.NewFromFloat(12.5).Equal(config.TaxRegime.EquityLTCGRate), "unset fields keep defaults")
	assert.Len(t, config.TaxRegime.DebtSlabs, 6)
}

func TestValidateConfiguration(t *testing.T) {
	slab := domain.TaxSlab(20)
	income := decimal.NewFromInt(500000)

	tests := []struct {
		name        string
		config      *domain.Configuration
		expectError string
	}{
		{
			name:        "No scenarios",
			config:      &domain.Configuration{},
			expectError: "no scenarios provided",
		},
		{
			name: "Missing type",
			config: &domain.Configuration{Scenarios: []domain.Scenario{
				{Name: "a"},
			}},
			expectError: "scenario type is required",
		},
		{
			name: "Duplicate names",
			config: &domain.Configuration{Scenarios: []domain.Scenario{
				{Name: "a", Type: domain.ScenarioSIP},
				{Name: "a", Type: domain.ScenarioLumpsum},
			}},
			expectError: "already used",
		},
		{
			name: "Slab and income",
			config: &domain.Configuration{Scenarios: []domain.Scenario{
				{Name: "a", Type: domain.ScenarioSIP, InvestorTaxSlab: &slab, AnnualIncome: &income},
			}},
			expectError: "not both",
		},
		{
			name: "Compare with hold",
			config: &domain.Configuration{Scenarios: []domain.Scenario{
				{Name: "a", Type: domain.ScenarioCompare, HoldYears: 2},
			}},
			expectError: "hold_years",
		},
		{
			name: "Invalid amounts are left to the engine",
			config: &domain.Configuration{Scenarios: []domain.Scenario{
				{Name: "a", Type: domain.ScenarioSIP, Amount: decimal.NewFromInt(-1)},
			}},
		},
	}

	parser := NewInputParser()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := parser.ValidateConfiguration(tt.config)
			if tt.expectError == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.expectError)
		})
	}
}

func TestValidateTaxRegime(t *testing.T) {
	parser := NewInputParser()

	defaults := domain.DefaultTaxRegime()
	assert.NoError(t, parser.ValidateTaxRegime(&defaults))

	tests := []struct {
		name        string
		mutate      func(r *domain.TaxRegime)
		expectError string
	}{
		{name: "Missing name", mutate: func(r *domain.TaxRegime) { r.Name = "" }, expectError: "name"},
		{name: "Negative threshold", mutate: func(r *domain.TaxRegime) { r.EquityLTCGThreshold = decimal.NewFromInt(-1) }, expectError: "threshold"},
		{name: "Rate above 100", mutate: func(r *domain.TaxRegime) { r.EquitySTCGRate = decimal.NewFromInt(101) }, expectError: "STCG"},
		{name: "Zero holding months", mutate: func(r *domain.TaxRegime) { r.EquityLTCGHoldingMonths = 0 }, expectError: "holding months"},
		{name: "No slabs", mutate: func(r *domain.TaxRegime) { r.DebtSlabs = nil }, expectError: "at least one"},
		{
			name:        "Closed top bracket",
			mutate:      func(r *domain.TaxRegime) { r.DebtSlabs = r.DebtSlabs[:len(r.DebtSlabs)-1] },
			expectError: "must be open-ended",
		},
		{
			name: "Unordered brackets",
			mutate: func(r *domain.TaxRegime) {
				r.DebtSlabs[0], r.DebtSlabs[1] = r.DebtSlabs[1], r.DebtSlabs[0]
			},
			expectError: "must exceed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			regime := domain.DefaultTaxRegime()
			tt.mutate(&regime)
			err := parser.ValidateTaxRegime(&regime)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.expectError)
		})
	}
}

func TestLoadTaxRegime(t *testing.T) {
	content := "name: \"FY 2027-28 draft\"\n" +
		"equity_stcg_rate: 25\n" +
		"debt_slabs:\n" +
		"  - upper: 400000\n" +
		"    rate: 0\n" +
		"  - upper: 800000\n" +
		"    rate: \"5%\"\n" +
		"  - rate: 30\n"

	parser := NewInputParser()
	regime, err := parser.LoadTaxRegime(writeFile(t, "regime.yaml", content))
	require.NoError(t, err)

	assert.Equal(t, "FY 2027-28 draft", regime.Name)
	assert.True(t, decimal.NewFromInt(25).Equal(regime.EquitySTCGRate))
	assert.True(t, decimal.NewFromInt(125000).Equal(regime.EquityLTCGThreshold))
	assert.Equal(t, []domain.TaxSlab{0, 5, 30}, regime.Slabs())

	_, err = parser.LoadTaxRegime(writeFile(t, "empty.yaml", ""))
	assert.Error(t, err)
}

func TestCreateExampleConfiguration(t *testing.T) {
	parser := NewInputParser()
	config := parser.CreateExampleConfiguration()

	assert.NotNil(t, config)
	assert.NotEmpty(t, config.Scenarios)

	// Validate the example configuration
	err := parser.ValidateConfiguration(config)
	assert.NoError(t, err)
}

func TestSharedExampleConfig(t *testing.T) {
	parser := NewInputParser()
	config, err := parser.LoadFromFile(filepath.Join("..", "..", "test", "testdata", "example_config.yaml"))
	require.NoError(t, err)

	assert.Len(t, config.Scenarios, 7)
	require.NotNil(t, config.TaxRegime)
	assert.Equal(t, "FY 2026-27", config.TaxRegime.Name)
	assert.Equal(t, domain.FundTypeDebt, config.Scenarios[3].FundType)
}
