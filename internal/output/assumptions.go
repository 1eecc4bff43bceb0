package output

import (
	"fmt"
	"strings"

	"github.com/mfcalc/fund-calculator/internal/domain"
)

// GenerateAssumptions describes the tax regime and modelling conventions
// rendered in detailed outputs.
func GenerateAssumptions(regime *domain.TaxRegime) []string {
	brackets := make([]string, 0, len(regime.DebtSlabs))
	for _, b := range regime.DebtSlabs {
		if b.Upper == nil {
			brackets = append(brackets, fmt.Sprintf("above: %s", b.Rate))
			continue
		}
		brackets = append(brackets, fmt.Sprintf("up to %s: %s", FormatCurrency(*b.Upper), b.Rate))
	}

	return []string{
		fmt.Sprintf("Tax regime: %s", regime.Name),
		fmt.Sprintf("Equity LTCG (held more than %d months): %s on gains above %s",
			regime.EquityLTCGHoldingMonths, FormatRate(regime.EquityLTCGRate), FormatCurrency(regime.EquityLTCGThreshold)),
		fmt.Sprintf("Equity STCG: %s on the whole gain", FormatRate(regime.EquitySTCGRate)),
		fmt.Sprintf("Debt funds: taxed at the investor's slab (%s)", strings.Join(brackets, ", ")),
		"SIP instalments are invested at the start of each month and compound monthly",
		"Hold phase compounds annually; tax is assessed once at final redemption",
	}
}
