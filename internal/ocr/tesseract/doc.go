// Package tesseract provides an in-process OCR engine backed by libtesseract.
// Importing it registers the engine as the ocr default. The engine needs cgo
// and the tesseract headers, so it is only compiled with -tags tesseract.
package tesseract
