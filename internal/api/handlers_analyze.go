// handlers_analyze.go - Document critique handler
package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/postcritic/backend/internal/extract"
	"github.com/postcritic/backend/internal/models"
	"github.com/vmihailenco/msgpack/v5"
	"go.uber.org/zap"
)

// MIMEApplicationMsgpack is the negotiated binary response type.
const MIMEApplicationMsgpack = "application/msgpack"

// AnalyzeHandlerImpl implements the AnalyzeHandler interface
type AnalyzeHandlerImpl struct {
	extractor      Extractor
	analyzer       Analyzer
	maxUploadBytes int64
	logger         *zap.Logger
}

// NewAnalyzeHandler creates a new analyze handler
func NewAnalyzeHandler(extractor Extractor, analyzer Analyzer, maxUploadBytes int64, logger *zap.Logger) AnalyzeHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AnalyzeHandlerImpl{
		extractor:      extractor,
		analyzer:       analyzer,
		maxUploadBytes: maxUploadBytes,
		logger:         logger,
	}
}

// HandleAnalyze extracts text from the uploaded file and returns it with a critique
func (h *AnalyzeHandlerImpl) HandleAnalyze(c echo.Context) error {
	file, err := readUpload(c, h.maxUploadBytes)
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	result, err := h.extractor.Extract(ctx, file)
	if err != nil {
		var extractErr *extract.Error
		if errors.As(err, &extractErr) {
			return NewExtractionError(extractErr.Message, err)
		}
		return NewExtractionError("Error: "+err.Error(), err)
	}

	if strings.TrimSpace(result.Text) == "" {
		return NewBadRequestError(MsgNoTextFound, nil)
	}

	analysis := h.analyzer.Analyze(ctx, result.Text)
	if analysis.Degraded {
		h.logger.Warn("returning degraded analysis",
			zap.String("file", file.Name),
			zap.String("request_id", c.Response().Header().Get(echo.HeaderXRequestID)),
		)
	}

	return respond(c, http.StatusOK, models.AnalyzeResponse{
		ExtractedText: result.Text,
		Analysis:      analysis.Text,
	})
}

// acceptsMsgpack reports whether the client listed MessagePack in Accept.
func acceptsMsgpack(c echo.Context) bool {
	return strings.Contains(c.Request().Header.Get(echo.HeaderAccept), MIMEApplicationMsgpack)
}

// respond writes v as MessagePack when the client asks for it, JSON otherwise.
func respond(c echo.Context, status int, v any) error {
	if !acceptsMsgpack(c) {
		return c.JSON(status, v)
	}
	data, err := msgpack.Marshal(v)
	if err != nil {
		return NewInternalError("failed to encode msgpack", err)
	}
	return c.Blob(status, MIMEApplicationMsgpack, data)
}
