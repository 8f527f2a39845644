// analysis.go - Critique and HTTP response types
package models

// AnalysisResult is the outcome of a critique request. Text is never empty:
// when every model fails it carries the degradation message instead.
type AnalysisResult struct {
	Text     string
	Model    string
	Degraded bool
}

// AnalyzeResponse is the body returned by POST /analyze on success.
type AnalyzeResponse struct {
	ExtractedText string `json:"extracted_text" msgpack:"extracted_text"`
	Analysis      string `json:"analysis" msgpack:"analysis"`
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error" msgpack:"error"`
}

// HealthResponse is returned by GET /api/health.
type HealthResponse struct {
	Status          string `json:"status"`
	Version         string `json:"version"`
	OCREngine       string `json:"ocr_engine"`
	AnalysisEnabled bool   `json:"analysis_enabled"`
}
