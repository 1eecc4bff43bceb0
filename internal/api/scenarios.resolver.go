package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mfcalc/fund-calculator/internal/domain"
)

type scenariosRequest struct {
	TaxRegime json.RawMessage   `json:"tax_regime"`
	Scenarios []domain.Scenario `json:"scenarios"`
}

// scenarios runs a batch. A partial tax_regime is merged onto the defaults,
// as in configuration files.
func (m ApiHandler) scenarios(c *gin.Context) {
	var requestBody scenariosRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(fmt.Errorf("invalid request body: %w", err), c, http.StatusBadRequest)
		return
	}

	cfg := &domain.Configuration{Scenarios: requestBody.Scenarios}
	if len(requestBody.TaxRegime) > 0 && string(requestBody.TaxRegime) != "null" {
		regime := domain.DefaultTaxRegime()
		if err := json.Unmarshal(requestBody.TaxRegime, &regime); err != nil {
			returnErrorJsonCode(fmt.Errorf("invalid tax_regime: %w", err), c, http.StatusBadRequest)
			return
		}
		cfg.TaxRegime = &regime
	}
	if err := m.Parser.ValidateConfiguration(cfg); err != nil {
		returnErrorJsonCode(err, c, http.StatusBadRequest)
		return
	}

	batch, err := m.engineFor(c).RunScenarios(c.Request.Context(), cfg)
	if err != nil {
		returnErrorJson(err, c)
		return
	}
	returnMapJson(batch, c)
}
