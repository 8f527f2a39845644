//go:build tesseract

package main

// Links the libtesseract engine in and makes it the "auto" default.
import _ "github.com/postcritic/backend/internal/ocr/tesseract"
