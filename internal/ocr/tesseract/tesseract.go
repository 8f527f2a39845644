//go:build tesseract

package tesseract

import (
	"context"
	"fmt"

	"github.com/otiai10/gosseract/v2"
	"github.com/postcritic/backend/internal/ocr"
)

func init() {
	ocr.SetDefaultEngine(NewEngine())
}

// Engine runs a fresh gosseract client per image; clients are not safe for
// concurrent use.
type Engine struct{}

// NewEngine creates a libtesseract engine.
func NewEngine() *Engine {
	return &Engine{}
}

func (e *Engine) Name() string {
	return "tesseract"
}

// Recognize returns the text tesseract reads from the image.
func (e *Engine) Recognize(ctx context.Context, png []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	client := gosseract.NewClient()
	defer client.Close()

	if err := client.SetImageFromBytes(png); err != nil {
		return "", fmt.Errorf("set image: %w", err)
	}
	text, err := client.Text()
	if err != nil {
		return "", fmt.Errorf("recognize text: %w", err)
	}
	return text, nil
}
