package extract

import (
	"bytes"
	"fmt"
	"math"
	"strings"
	"unicode"

	"github.com/ledongthuc/pdf"
	"github.com/postcritic/backend/internal/models"
)

const (
	// lineTolerance is the vertical move, relative to the font size, that
	// starts a new line.
	lineTolerance = 0.5
	// wordGapRatio is the horizontal gap, relative to the font size, that
	// separates two words.
	wordGapRatio = 0.15
)

// extractPDF reads the text layer page by page. The pdf package panics on
// some malformed input, so panics are turned into KindMalformed.
func (e *Extractor) extractPDF(data []byte) (result models.ExtractionResult, extractErr *Error) {
	defer func() {
		if r := recover(); r != nil {
			result = models.ExtractionResult{}
			extractErr = failure(KindMalformed, fmt.Errorf("malformed PDF: %v", r))
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return models.ExtractionResult{}, failure(KindMalformed, err)
	}

	numPages := reader.NumPage()
	texts := make([]string, 0, numPages)
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		texts = append(texts, pageText(page.Content().Text))
	}

	text := joinPages(texts)
	if strings.TrimSpace(text) == "" {
		return models.ExtractionResult{}, &Error{Kind: KindScannedPDF, Message: ScannedPDFMessage}
	}

	return models.ExtractionResult{
		Text:   text,
		Method: models.MethodPDFText,
		Pages:  numPages,
	}, nil
}

// pageText rebuilds the lines of a page from its positioned glyphs, in
// content stream order. A vertical move starts a new line and a horizontal
// gap wider than wordGapRatio of the font size becomes a single space.
func pageText(glyphs []pdf.Text) string {
	var b strings.Builder
	var prev *pdf.Text
	for i := range glyphs {
		g := &glyphs[i]
		if isControl(g.S) {
			continue
		}
		if prev != nil {
			size := math.Max(prev.FontSize, g.FontSize)
			if size <= 0 {
				size = 1
			}
			switch {
			case math.Abs(g.Y-prev.Y) > size*lineTolerance:
				b.WriteByte('\n')
			case g.X-(prev.X+prev.W) > size*wordGapRatio && !isSpace(prev.S) && !isSpace(g.S):
				b.WriteByte(' ')
			}
		}
		b.WriteString(g.S)
		prev = g
	}
	return b.String()
}

// isControl reports whether s carries no printable rune. The pdf package
// emits a "\n" glyph after every TJ array.
func isControl(s string) bool {
	return strings.IndexFunc(s, func(r rune) bool { return r == '\t' || !unicode.IsControl(r) }) < 0
}

func isSpace(s string) bool {
	return strings.TrimSpace(s) == ""
}

// joinPages trims every page, drops the empty ones and terminates each
// remaining page with a newline.
func joinPages(pages []string) string {
	var b strings.Builder
	for _, p := range pages {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		b.WriteString(p)
		b.WriteByte('\n')
	}
	return b.String()
}
