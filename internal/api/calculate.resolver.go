package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mfcalc/fund-calculator/internal/domain"
)

// scenario handles the single-calculation routes. The body is a scenario
// whose type is fixed by the route.
func (m ApiHandler) scenario(kind domain.ScenarioType) gin.HandlerFunc {
	return func(c *gin.Context) {
		var requestBody domain.Scenario
		if err := c.ShouldBindJSON(&requestBody); err != nil {
			returnErrorJsonCode(fmt.Errorf("invalid request body: %w", err), c, http.StatusBadRequest)
			return
		}
		requestBody.Type = kind
		if requestBody.Name == "" {
			requestBody.Name = string(kind)
		}

		outcome := m.engineFor(c).RunScenario(c.Request.Context(), &requestBody)
		if outcome.Failed() {
			returnErrorJsonCode(errors.New(outcome.Error), c, http.StatusBadRequest)
			return
		}

		switch {
		case outcome.Phased != nil:
			returnMapJson(outcome.Phased, c)
		case outcome.Comparison != nil:
			returnMapJson(outcome.Comparison, c)
		case outcome.RequiredReturn != nil:
			returnMapJson(outcome.RequiredReturn, c)
		default:
			returnMapJson(outcome.Tax, c)
		}
	}
}
