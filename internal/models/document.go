// document.go - Uploaded document and extraction result types
package models

import "time"

// Extraction methods reported in ExtractionResult.Method.
const (
	MethodPDFText  = "pdf-text"
	MethodImageOCR = "image-ocr"
)

// UploadedFile is a document received with a single request. It is never persisted.
type UploadedFile struct {
	Name string
	Data []byte
}

// Size returns the number of bytes received.
func (f UploadedFile) Size() int64 {
	return int64(len(f.Data))
}

// ExtractionResult holds the text pulled out of an UploadedFile.
type ExtractionResult struct {
	Text     string        `json:"text" msgpack:"text"`
	Method   string        `json:"method" msgpack:"method"`
	Pages    int           `json:"pages,omitempty" msgpack:"pages,omitempty"`
	Duration time.Duration `json:"-" msgpack:"-"`
}
