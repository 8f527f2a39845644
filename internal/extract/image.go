package extract

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"strings"

	"github.com/postcritic/backend/internal/models"
	"go.uber.org/zap"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

var errNoEngine = errors.New("no OCR engine configured")

// extractImage decodes any registered raster format and hands the engine a
// normalized PNG.
func (e *Extractor) extractImage(ctx context.Context, data []byte) (models.ExtractionResult, *Error) {
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return models.ExtractionResult{}, failure(KindUndecodable, fmt.Errorf("cannot identify image file: %w", err))
	}
	e.logger.Debug("decoded image",
		zap.String("format", format),
		zap.Int("width", img.Bounds().Dx()),
		zap.Int("height", img.Bounds().Dy()),
	)

	if e.engine == nil {
		return models.ExtractionResult{}, failure(KindEngine, errNoEngine)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return models.ExtractionResult{}, failure(KindUndecodable, fmt.Errorf("encode png: %w", err))
	}

	text, err := e.engine.Recognize(ctx, buf.Bytes())
	if err != nil {
		return models.ExtractionResult{}, failure(KindEngine, err)
	}

	return models.ExtractionResult{
		Text:   strings.TrimSpace(text),
		Method: models.MethodImageOCR,
		Pages:  1,
	}, nil
}
