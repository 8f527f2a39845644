// Package extract pulls plain text out of uploaded documents, reading the
// text layer of PDFs and running OCR over everything else.
package extract

import (
	"context"
	"path/filepath"
	"strings"
	"time"

	"github.com/postcritic/backend/internal/models"
	"github.com/postcritic/backend/internal/ocr"
	"go.uber.org/zap"
)

// Extractor chooses a strategy by file extension. It holds no per-request
// state and is safe for concurrent use.
type Extractor struct {
	engine ocr.Engine
	logger *zap.Logger
}

// New creates an Extractor that reads images with engine.
func New(engine ocr.Engine, logger *zap.Logger) *Extractor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Extractor{engine: engine, logger: logger}
}

// IsPDF reports whether name has a .pdf extension, ignoring case.
func IsPDF(name string) bool {
	return strings.EqualFold(filepath.Ext(name), ".pdf")
}

// Extract returns the text of file. Any failure is an *Error.
func (e *Extractor) Extract(ctx context.Context, file models.UploadedFile) (models.ExtractionResult, error) {
	start := time.Now()

	var (
		result models.ExtractionResult
		err    *Error
	)
	if IsPDF(file.Name) {
		result, err = e.extractPDF(file.Data)
	} else {
		result, err = e.extractImage(ctx, file.Data)
	}
	elapsed := time.Since(start)

	if err != nil {
		e.logger.Warn("extraction failed",
			zap.String("file", file.Name),
			zap.Int64("size", file.Size()),
			zap.String("kind", string(err.Kind)),
			zap.Error(err.Err),
		)
		return models.ExtractionResult{}, err
	}

	result.Duration = elapsed
	e.logger.Info("extracted text",
		zap.String("file", file.Name),
		zap.String("method", result.Method),
		zap.Int("pages", result.Pages),
		zap.Int("chars", len(result.Text)),
		zap.Duration("duration", elapsed),
	)
	return result, nil
}
