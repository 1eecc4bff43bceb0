package domain

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// FundType selects the tax regime applied to a fund's gains.
type FundType string

const (
	FundTypeEquity FundType = "equity"
	FundTypeDebt   FundType = "debt"
)

// ParseFundType resolves a case-insensitive fund type name.
func ParseFundType(s string) (FundType, error) {
	switch FundType(strings.ToLower(strings.TrimSpace(s))) {
	case FundTypeEquity:
		return FundTypeEquity, nil
	case FundTypeDebt:
		return FundTypeDebt, nil
	}
	return "", NewInputError("fund_type", fmt.Sprintf("must be 'equity' or 'debt', got %q", s))
}

// UnmarshalYAML implements case-insensitive YAML decoding for FundType
func (f *FundType) UnmarshalYAML(value *yaml.Node) error {
	return f.UnmarshalText([]byte(value.Value))
}

func (f *FundType) UnmarshalText(text []byte) error {
	parsed, err := ParseFundType(string(text))
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

// TaxSlab is an investor's income tax slab as a whole percentage.
type TaxSlab int

// DefaultTaxSlab is assumed when no slab is supplied.
const DefaultTaxSlab TaxSlab = 30

// ParseTaxSlab accepts "30", "30%" or " 30 % ".
func ParseTaxSlab(s string) (TaxSlab, error) {
	trimmed := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), "%"))
	n, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, NewInputError("investor_tax_slab", fmt.Sprintf("%q is not a percentage", s))
	}
	if n < 0 || n > 100 {
		return 0, NewInputError("investor_tax_slab", fmt.Sprintf("%d%% is outside 0-100", n))
	}
	return TaxSlab(n), nil
}

// Rate returns the slab as a percentage decimal.
func (s TaxSlab) Rate() decimal.Decimal {
	return decimal.NewFromInt(int64(s))
}

func (s TaxSlab) String() string {
	return strconv.Itoa(int(s)) + "%"
}

func (s TaxSlab) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *TaxSlab) UnmarshalText(text []byte) error {
	parsed, err := ParseTaxSlab(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// UnmarshalYAML accepts both numeric (30) and string ("30%") slabs
func (s *TaxSlab) UnmarshalYAML(value *yaml.Node) error {
	return s.UnmarshalText([]byte(value.Value))
}

// UnmarshalJSON accepts both 30 and "30%".
func (s *TaxSlab) UnmarshalJSON(data []byte) error {
	return s.UnmarshalText([]byte(strings.Trim(string(data), `"`)))
}

// TaxType classifies how a gain was taxed.
type TaxType string

const (
	TaxTypeLTCG TaxType = "LTCG"
	TaxTypeSTCG TaxType = "STCG"
	TaxTypeSlab TaxType = "SLAB"
)

// Phase marks which leg of a phased investment a year belongs to.
type Phase string

const (
	PhaseInvestment Phase = "Investment"
	PhaseHold       Phase = "Hold"
)

// Strategy identifies a contribution schedule.
type Strategy string

const (
	StrategySIP     Strategy = "SIP"
	StrategyLumpsum Strategy = "Lumpsum"
)
