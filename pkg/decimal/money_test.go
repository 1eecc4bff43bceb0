package decimal

import (
	"testing"

	stddec "github.com/shopspring/decimal"
)

func money(s string) Money {
	return NewMoneyFromDecimal(stddec.RequireFromString(s))
}

func TestNewMoneyFromDecimal(t *testing.T) {
	d := stddec.NewFromFloat(10.125)
	m := NewMoneyFromDecimal(d)
	if !m.Decimal.Equal(d) {
		t.Fatalf("NewMoneyFromDecimal mismatch: got %s want %s", m.Decimal, d)
	}
	if m.String() != "10.13" { // rounded for display
		t.Fatalf("display mismatch: got %s", m.String())
	}
}

func TestRounding(t *testing.T) {
	cases := []struct{ in, out string }{
		{"2.344", "2.34"},
		{"2.345", "2.35"},
		{"2.355", "2.36"},
		{"-2.345", "-2.35"},
	}
	for _, c := range cases {
		if got := money(c.in).Round().String(); got != c.out {
			t.Fatalf("round(%s) got %s want %s", c.in, got, c.out)
		}
	}
	if got := money("-5.05").Abs().String(); got != "5.05" {
		t.Fatalf("Abs got %s", got)
	}
}

func TestFormatIndianGrouping(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"0", "₹0"},
		{"999", "₹999"},
		{"1000", "₹1,000"},
		{"100000", "₹1,00,000"},
		{"1161695.3817", "₹11,61,695.38"},
		{"12345678.9", "₹1,23,45,678.90"},
		{"-5000", "-₹5,000"},
		{"0.5", "₹0.50"},
	}
	for _, c := range cases {
		if got := money(c.in).Format(); got != c.want {
			t.Errorf("Format(%s) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestLabel(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"750", "750"},
		{"5000", "5K"},
		{"5500", "5.5K"},
		{"100000", "1 L"},
		{"1161695.38", "11.6 L"},
		{"10000000", "1 Cr"},
		{"25000000", "2.5 Cr"},
		{"-200000", "2 L"},
		{"99999", "1 L"},
		{"9999999", "1 Cr"},
		{"999", "1K"},
		{"949", "949"},
		{"1049999", "10.5 L"},
	}
	for _, c := range cases {
		if got := money(c.in).Label(); got != c.want {
			t.Errorf("Label(%s) = %q, want %q", c.in, got, c.want)
		}
	}
	if got := money("600000").FormatWithLabel(); got != "₹6,00,000 (6 L)" {
		t.Errorf("FormatWithLabel = %q", got)
	}
}
