package decimal

import (
	"strings"

	"github.com/shopspring/decimal"
)

// labelUnits are ordered largest first.
var labelUnits = []struct {
	size   decimal.Decimal
	suffix string
}{
	{decimal.NewFromInt(1_00_00_000), " Cr"},
	{decimal.NewFromInt(1_00_000), " L"},
	{decimal.NewFromInt(1_000), "K"},
}

// Money represents a rupee amount with proper financial precision
type Money struct {
	decimal.Decimal
}

// NewMoneyFromDecimal creates a new Money instance from a decimal.Decimal
func NewMoneyFromDecimal(d decimal.Decimal) Money {
	return Money{d}
}

// Round rounds the money amount to paise (half away from zero)
func (m Money) Round() Money {
	return Money{m.Decimal.Round(2)}
}

// Abs returns the absolute amount
func (m Money) Abs() Money {
	return Money{m.Decimal.Abs()}
}

// String returns the plain amount fixed to two places
func (m Money) String() string {
	return m.Decimal.StringFixed(2)
}

// Format renders the amount with a rupee sign and Indian digit grouping,
// e.g. ₹11,61,695.38. Whole amounts drop the paise.
func (m Money) Format() string {
	rounded := m.Round()
	sign := ""
	if rounded.IsNegative() {
		sign = "-"
		rounded = rounded.Abs()
	}
	whole := rounded.Decimal.Truncate(0)
	s := groupIndian(whole.String())
	if frac := rounded.Decimal.Sub(whole); !frac.IsZero() {
		s += "." + strings.SplitN(rounded.String(), ".", 2)[1]
	}
	return sign + "₹" + s
}

// Label returns the magnitude shorthand used next to amounts: 12 Cr,
// 11.6 L, 5K or the plain rupee count below a thousand. The unit is picked
// after rounding to one place, so 99,99,999 is 1 Cr. The sign is ignored.
func (m Money) Label() string {
	whole := m.Decimal.Abs().Truncate(0)
	for _, u := range labelUnits {
		if q := whole.Div(u.size).Round(1); q.GreaterThanOrEqual(decimal.NewFromInt(1)) {
			return scaled(q) + u.suffix
		}
	}
	return whole.String()
}

// FormatWithLabel combines Format and Label: ₹11,61,695.38 (11.6 L).
func (m Money) FormatWithLabel() string {
	return m.Format() + " (" + m.Label() + ")"
}

func scaled(q decimal.Decimal) string {
	if q.Equal(q.Truncate(0)) {
		return q.Truncate(0).String()
	}
	return q.StringFixed(1)
}

// groupIndian inserts commas after the last three digits and then every two.
func groupIndian(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	head, tail := digits[:len(digits)-3], digits[len(digits)-3:]
	var groups []string
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}
	if head != "" {
		groups = append([]string{head}, groups...)
	}
	return strings.Join(groups, ",") + "," + tail
}
