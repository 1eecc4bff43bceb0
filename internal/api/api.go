package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mfcalc/fund-calculator/internal/calculation"
	"github.com/mfcalc/fund-calculator/internal/config"
	"github.com/mfcalc/fund-calculator/internal/domain"
	"github.com/mfcalc/fund-calculator/internal/logger"
	"github.com/mfcalc/fund-calculator/internal/output"
)

// RequestIDHeader carries the request id in both directions.
const RequestIDHeader = "X-Request-ID"

type ApiHandler struct {
	Engine *calculation.CalculationEngine
	Parser *config.InputParser
	Logger *zap.SugaredLogger
}

func NewApiHandler(engine *calculation.CalculationEngine, l *zap.SugaredLogger) ApiHandler {
	if l == nil {
		l = zap.NewNop().Sugar()
	}
	return ApiHandler{Engine: engine, Parser: config.NewInputParser(), Logger: l}
}

// Router registers one POST route per calculation plus the batch endpoint.
func (m ApiHandler) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.Default())
	router.Use(m.logRequestMiddleware)

	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, map[string]string{"message": "mfcalc", "regime": m.Engine.Regime.Name})
	})
	router.GET("/regime", m.regime)
	router.POST("/sip", m.scenario(domain.ScenarioSIP))
	router.POST("/lumpsum", m.scenario(domain.ScenarioLumpsum))
	router.POST("/compare", m.scenario(domain.ScenarioCompare))
	router.POST("/required-return", m.scenario(domain.ScenarioRequiredReturn))
	router.POST("/tax", m.scenario(domain.ScenarioTax))
	router.POST("/scenarios", m.scenarios)

	return router
}

// StartApi serves until ctx is cancelled, then shuts down gracefully.
func (m ApiHandler) StartApi(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           m.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()
	m.Logger.Infof("listening on %s", addr)

	select {
	case err := <-errCh:
		return fmt.Errorf("server stopped: %w", err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("failed to shut down: %w", err)
		}
		return nil
	}
}

func returnErrorJsonCode(err error, c *gin.Context, code int) {
	logger.FromContext(c.Request.Context()).Warnf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	c.AbortWithStatusJSON(code, output.ErrorMap(err))
}

func returnErrorJson(err error, c *gin.Context) {
	code := http.StatusInternalServerError
	if errors.Is(err, domain.ErrInvalidInput) {
		code = http.StatusBadRequest
	}
	returnErrorJsonCode(err, c, code)
}

func returnMapJson(v any, c *gin.Context) {
	m, err := output.ToMap(v)
	if err != nil {
		returnErrorJson(err, c)
		return
	}
	c.JSON(http.StatusOK, m)
}

// logRequestMiddleware tags each request with an id and a request-scoped
// logger and records its status and latency.
func (m ApiHandler) logRequestMiddleware(c *gin.Context) {
	requestID := c.GetHeader(RequestIDHeader)
	if requestID == "" {
		requestID = uuid.NewString()
	}
	c.Header(RequestIDHeader, requestID)

	log := m.Logger.With("request_id", requestID)
	c.Request = c.Request.WithContext(logger.WithContext(c.Request.Context(), log))

	start := time.Now().UTC()
	c.Next()

	log.Infow("request",
		"method", c.Request.Method,
		"route", c.Request.URL.Path,
		"status", c.Writer.Status(),
		"duration_ms", time.Since(start).Milliseconds(),
	)
}

// engineFor returns a copy of the engine logging through the request logger.
func (m ApiHandler) engineFor(c *gin.Context) *calculation.CalculationEngine {
	engine := calculation.NewCalculationEngineWithRegime(m.Engine.Regime)
	engine.SetLogger(logger.FromContext(c.Request.Context()))
	return engine
}
