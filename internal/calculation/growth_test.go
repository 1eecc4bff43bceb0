package calculation

import (
	"errors"
	"testing"

	"github.com/mfcalc/fund-calculator/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestPeriodicGrowth tests annuity-due SIP maturity
func TestPeriodicGrowth(t *testing.T) {
	tests := []struct {
		name             string
		contribution     decimal.Decimal
		rate             decimal.Decimal
		months           int
		expectedMaturity decimal.Decimal
		expectedInvested decimal.Decimal
		description      string
	}{
		{
			name:             "Ten year SIP at 12%",
			contribution:     dec("5000"),
			rate:             dec("12"),
			months:           120,
			expectedMaturity: dec("1161695.38"),
			expectedInvested: dec("600000"),
			description:      "Reference annuity-due value",
		},
		{
			name:             "One year SIP",
			contribution:     dec("5000"),
			rate:             dec("12"),
			months:           12,
			expectedMaturity: dec("64046.64"),
			expectedInvested: dec("60000"),
			description:      "Each instalment grows for its remaining months",
		},
		{
			name:             "Zero rate",
			contribution:     dec("1000"),
			rate:             decimal.Zero,
			months:           12,
			expectedMaturity: dec("12000"),
			expectedInvested: dec("12000"),
			description:      "r = 0 degenerates to c * n exactly",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := PeriodicGrowth(tt.contribution, tt.rate, tt.months)
			require.NoError(t, err)

			assert.Equal(t, domain.StrategySIP, result.Strategy)
			assert.True(t, tt.expectedMaturity.Equal(result.MaturityAmount),
				"%s: expected %s, got %s", tt.description, tt.expectedMaturity, result.MaturityAmount)
			assert.True(t, tt.expectedInvested.Equal(result.TotalInvested))
			assert.True(t, result.TotalInvested.Add(result.Gain).Equal(result.MaturityAmount),
				"maturity must equal invested + gain")
			assert.Equal(t, tt.months, result.Months)
		})
	}
}

func TestPeriodicGrowthZeroRateGain(t *testing.T) {
	result, err := PeriodicGrowth(dec("2500"), decimal.Zero, 36)
	require.NoError(t, err)
	assert.True(t, result.Gain.IsZero())
	assert.True(t, result.GainPercentage.IsZero())
}

// TestLumpSumGrowth tests annual compounding of a single principal
func TestLumpSumGrowth(t *testing.T) {
	result, err := LumpSumGrowth(dec("100000"), dec("12"), 10)
	require.NoError(t, err)

	assert.Equal(t, domain.StrategyLumpsum, result.Strategy)
	assert.True(t, dec("310584.82").Equal(result.MaturityAmount), "got %s", result.MaturityAmount)
	assert.True(t, dec("210584.82").Equal(result.Gain))
	assert.True(t, dec("210.58").Equal(result.GainPercentage))
	assert.Equal(t, 120, result.Months)

	flat, err := LumpSumGrowth(dec("100000"), decimal.Zero, 7)
	require.NoError(t, err)
	assert.True(t, dec("100000").Equal(flat.MaturityAmount))
}

func TestGrowthValidation(t *testing.T) {
	tests := []struct {
		name  string
		run   func() error
		field string
	}{
		{
			name: "SIP zero contribution",
			run: func() error {
				_, err := PeriodicGrowth(decimal.Zero, dec("12"), 12)
				return err
			},
			field: "amount",
		},
		{
			name: "SIP negative rate",
			run: func() error {
				_, err := PeriodicGrowth(dec("1000"), dec("-1"), 12)
				return err
			},
			field: "annual_return",
		},
		{
			name: "SIP zero months",
			run: func() error {
				_, err := PeriodicGrowth(dec("1000"), dec("12"), 0)
				return err
			},
			field: "months",
		},
		{
			name: "Lumpsum negative principal",
			run: func() error {
				_, err := LumpSumGrowth(dec("-1"), dec("12"), 5)
				return err
			},
			field: "amount",
		},
		{
			name: "Lumpsum zero years",
			run: func() error {
				_, err := LumpSumGrowth(dec("1000"), dec("12"), 0)
				return err
			},
			field: "years",
		},
		{
			name: "Required return target below principal",
			run: func() error {
				_, err := RequiredReturn(dec("100000"), dec("90000"), 5)
				return err
			},
			field: "target_amount",
		},
		{
			name: "Required return target equals principal",
			run: func() error {
				_, err := RequiredReturn(dec("100000"), dec("100000"), 5)
				return err
			},
			field: "target_amount",
		},
		{
			name: "Required return zero years",
			run: func() error {
				_, err := RequiredReturn(dec("100000"), dec("200000"), 0)
				return err
			},
			field: "years",
		},
		{
			name: "Required return ratio beyond float range",
			run: func() error {
				_, err := RequiredReturn(dec("1e-200"), dec("1e200"), 1)
				return err
			},
			field: "target_amount",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.run()
			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrInvalidInput))

			var inputErr *domain.InputError
			require.True(t, errors.As(err, &inputErr))
			assert.Equal(t, tt.field, inputErr.Field)
		})
	}
}

func TestRequiredReturnInvertsLumpSum(t *testing.T) {
	growth, err := LumpSumGrowth(dec("100000"), dec("12"), 10)
	require.NoError(t, err)

	result, err := RequiredReturn(dec("100000"), growth.MaturityAmount, 10)
	require.NoError(t, err)
	assert.True(t, dec("12").Equal(result.RequiredReturnPercentage), "got %s", result.RequiredReturnPercentage)
	assert.Equal(t, 10, result.Years)

	doubled, err := RequiredReturn(dec("100000"), dec("200000"), 6)
	require.NoError(t, err)
	assert.True(t, dec("12.25").Equal(doubled.RequiredReturnPercentage), "got %s", doubled.RequiredReturnPercentage)
}

func TestCompoundMatchesRepeatedMultiplication(t *testing.T) {
	base := dec("1.01")
	expected := one
	for n := 0; n <= 40; n++ {
		assert.True(t, expected.Round(20).Equal(compound(base, n).Round(20)), "n=%d", n)
		expected = expected.Mul(base)
	}
}

func TestRequiredReturnExtremeAmounts(t *testing.T) {
	// a 1e300 ratio over 100 years is a finite root
	result, err := RequiredReturn(dec("1e-150"), dec("1e150"), 100)
	require.NoError(t, err)
	assert.True(t, dec("99900").Equal(result.RequiredReturnPercentage), "got %s", result.RequiredReturnPercentage)
}
