package output

import (
	"encoding/json"

	"github.com/mfcalc/fund-calculator/internal/domain"
)

// JSONFormatter serializes the batch result as pretty-printed JSON.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(results *domain.BatchResult) ([]byte, error) {
	return json.MarshalIndent(results, "", "  ")
}
