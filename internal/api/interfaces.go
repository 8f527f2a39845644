// interfaces.go - Handler and dependency interfaces
package api

import (
	"context"

	"github.com/labstack/echo/v4"
	"github.com/postcritic/backend/internal/models"
)

// AnalyzeHandler handles document critique requests
type AnalyzeHandler interface {
	HandleAnalyze(c echo.Context) error
}

// HealthHandler handles health check operations
type HealthHandler interface {
	HandleHealth(c echo.Context) error
}

// Extractor pulls text out of an uploaded document. Errors carry a
// user-facing message.
type Extractor interface {
	Extract(ctx context.Context, file models.UploadedFile) (models.ExtractionResult, error)
}

// Analyzer produces a critique. It never fails; degraded results carry
// their message in Text.
type Analyzer interface {
	Analyze(ctx context.Context, text string) models.AnalysisResult
	Enabled() bool
}
