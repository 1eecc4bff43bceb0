package output

import (
	"strconv"

	money "github.com/mfcalc/fund-calculator/pkg/decimal"
	"github.com/shopspring/decimal"
)

// FormatCurrency formats a decimal as rupees with Indian digit grouping.
func FormatCurrency(amount decimal.Decimal) string {
	return money.NewMoneyFromDecimal(amount).Format()
}

// FormatCurrencyWithLabel appends the lakh/crore label, e.g. "₹6,00,000 (6 L)".
func FormatCurrencyWithLabel(amount decimal.Decimal) string {
	return money.NewMoneyFromDecimal(amount).FormatWithLabel()
}

// FormatPercentage formats a decimal as a percentage with 2 decimals.
func FormatPercentage(amount decimal.Decimal) string { return amount.StringFixed(2) + "%" }

// FormatRate formats a rate without trailing zeros, e.g. "12.5%".
func FormatRate(rate decimal.Decimal) string { return rate.String() + "%" }

func intToString(i int) string { return strconv.Itoa(i) }

func boolToString(b bool) string { return strconv.FormatBool(b) }
