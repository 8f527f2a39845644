// handlers_health.go - Health check handlers
package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/postcritic/backend/internal/models"
)

// HealthHandlerImpl implements the HealthHandler interface
type HealthHandlerImpl struct {
	version   string
	ocrEngine string
	analyzer  Analyzer
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(version, ocrEngine string, analyzer Analyzer) HealthHandler {
	return &HealthHandlerImpl{
		version:   version,
		ocrEngine: ocrEngine,
		analyzer:  analyzer,
	}
}

// HandleHealth returns server health status
func (h *HealthHandlerImpl) HandleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, models.HealthResponse{
		Status:          "ok",
		Version:         h.version,
		OCREngine:       h.ocrEngine,
		AnalysisEnabled: h.analyzer != nil && h.analyzer.Enabled(),
	})
}
