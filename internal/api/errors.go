// errors.go - Structured error handling for API responses
package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// User-facing messages for request errors.
const (
	MsgNoFileUploaded = "No file uploaded"
	MsgNoFileSelected = "No file selected"
	MsgNoTextFound    = "No text found. Try a clearer image."
	MsgFileTooLarge   = "File too large"
)

// APIError is rendered as {"error": Message}.
type APIError struct {
	Status  int    `json:"-"`
	Code    string `json:"-"`
	Message string `json:"error"`
	Cause   error  `json:"-"`
}

// Error implements the error interface
func (e *APIError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *APIError) Unwrap() error {
	return e.Cause
}

// NewBadRequestError creates a 400 Bad Request error
func NewBadRequestError(message string, cause error) *APIError {
	return &APIError{
		Status:  http.StatusBadRequest,
		Code:    "BAD_REQUEST",
		Message: message,
		Cause:   cause,
	}
}

// NewPayloadTooLargeError creates a 413 error for oversized uploads
func NewPayloadTooLargeError(cause error) *APIError {
	return &APIError{
		Status:  http.StatusRequestEntityTooLarge,
		Code:    "PAYLOAD_TOO_LARGE",
		Message: MsgFileTooLarge,
		Cause:   cause,
	}
}

// NewExtractionError creates a 500 error carrying the extractor's message verbatim
func NewExtractionError(message string, cause error) *APIError {
	return &APIError{
		Status:  http.StatusInternalServerError,
		Code:    "EXTRACTION_FAILED",
		Message: message,
		Cause:   cause,
	}
}

// NewInternalError creates a 500 Internal Server Error
func NewInternalError(message string, cause error) *APIError {
	return &APIError{
		Status:  http.StatusInternalServerError,
		Code:    "INTERNAL_ERROR",
		Message: message,
		Cause:   cause,
	}
}

// NewErrorHandler returns an echo.HTTPErrorHandler that renders every error
// as {"error": message}.
// Usage: e.HTTPErrorHandler = api.NewErrorHandler(logger)
func NewErrorHandler(logger *zap.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		apiErr := toAPIError(err)
		if apiErr.Status >= http.StatusInternalServerError {
			logger.Error("request failed",
				zap.String("code", apiErr.Code),
				zap.String("path", c.Request().URL.Path),
				zap.String("request_id", c.Response().Header().Get(echo.HeaderXRequestID)),
				zap.Error(err),
			)
		}

		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(apiErr.Status)
			return
		}
		_ = c.JSON(apiErr.Status, apiErr)
	}
}

func toAPIError(err error) *APIError {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		if httpErr.Code == http.StatusRequestEntityTooLarge {
			return NewPayloadTooLargeError(err)
		}
		return &APIError{
			Status:  httpErr.Code,
			Code:    "HTTP_ERROR",
			Message: fmt.Sprintf("%v", httpErr.Message),
			Cause:   err,
		}
	}

	return NewInternalError("An unexpected error occurred", err)
}
