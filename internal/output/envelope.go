package output

import (
	"encoding/json"
	"fmt"
)

// ToMap converts a result value into a generic map keyed by its JSON field
// names. Decimal amounts keep their exact string form.
func ToMap(result any) (map[string]any, error) {
	b, err := json.Marshal(result)
	if err != nil {
		return nil, fmt.Errorf("failed to encode result: %w", err)
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, fmt.Errorf("result is not an object: %w", err)
	}
	return m, nil
}

// ErrorMap is the boundary form of a rejected calculation.
func ErrorMap(err error) map[string]any {
	return map[string]any{"error": err.Error()}
}
