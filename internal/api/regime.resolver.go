package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mfcalc/fund-calculator/internal/output"
)

func (m ApiHandler) regime(c *gin.Context) {
	regime, err := output.ToMap(m.Engine.Regime)
	if err != nil {
		returnErrorJson(err, c)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"regime":      regime,
		"slabs":       m.Engine.Regime.Slabs(),
		"assumptions": output.GenerateAssumptions(&m.Engine.Regime),
	})
}
