// fixtures.go - Document fixtures generated in memory for tests
package testutil

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"strings"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// BuildPDF returns a minimal, valid PDF with one page per argument. Each page
// draws its text with Helvetica, one line per "\n". An empty string produces
// a page with no content stream, like a scanned page without a text layer.
func BuildPDF(pages ...string) []byte {
	streams := make([]string, len(pages))
	for i, text := range pages {
		streams[i] = pageContent(text)
	}
	return BuildPDFStreams(streams...)
}

// BuildPDFStreams is BuildPDF with raw content streams, one per page. The
// font resource is named F1. An empty stream produces a page with no content.
func BuildPDFStreams(streams ...string) []byte {
	// 1: catalog, 2: page tree, 3: font, then a page and a content stream per page.
	total := 3 + 2*len(streams)
	offsets := make([]int, total+1)

	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")

	writeObj := func(num int, body string) {
		offsets[num] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", num, body)
	}

	kids := make([]string, len(streams))
	for i := range streams {
		kids[i] = fmt.Sprintf("%d 0 R", 4+2*i)
	}

	writeObj(1, "<< /Type /Catalog /Pages 2 0 R >>")
	writeObj(2, fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>", strings.Join(kids, " "), len(streams)))
	writeObj(3, "<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica /Encoding /WinAnsiEncoding >>")

	for i, content := range streams {
		pageNum, contentNum := 4+2*i, 5+2*i
		page := "<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Resources << /Font << /F1 3 0 R >> >>"
		if content != "" {
			page += fmt.Sprintf(" /Contents %d 0 R", contentNum)
		}
		writeObj(pageNum, page+" >>")

		writeObj(contentNum, fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(content), content))
	}

	xref := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", total+1)
	buf.WriteString("0000000000 65535 f \n")
	for num := 1; num <= total; num++ {
		fmt.Fprintf(&buf, "%010d %05d n \n", offsets[num], 0)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", total+1, xref)

	return buf.Bytes()
}

func pageContent(text string) string {
	if text == "" {
		return ""
	}
	lines := strings.Split(text, "\n")
	shown := make([]string, len(lines))
	for i, line := range lines {
		shown[i] = "(" + escapePDFString(line) + ") Tj"
	}
	return "BT /F1 12 Tf 14 TL 72 720 Td " + strings.Join(shown, " T* ") + " ET"
}

// MovedLines returns a content stream that places every line with its own
// Td move instead of T*.
func MovedLines(lines ...string) string {
	shown := make([]string, len(lines))
	for i, line := range lines {
		shown[i] = "(" + escapePDFString(line) + ") Tj"
	}
	return "BT /F1 12 Tf 72 720 Td " + strings.Join(shown, " 0 -14 Td ") + " ET"
}

// KernedWords returns a content stream showing words in a single TJ array,
// separated by kerning offsets instead of space characters.
func KernedWords(words ...string) string {
	shown := make([]string, len(words))
	for i, word := range words {
		shown[i] = "(" + escapePDFString(word) + ")"
	}
	return "BT /F1 12 Tf 72 720 Td [" + strings.Join(shown, " -250 ") + "] TJ ET"
}

func escapePDFString(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `(`, `\(`, `)`, `\)`)
	return r.Replace(s)
}

// TextImagePNG renders text in black on a white background, scaled up so
// an OCR engine can read it.
func TextImagePNG(text string) []byte {
	face := basicfont.Face7x13
	const margin = 10
	width := margin*2 + font.MeasureString(face, text).Ceil()
	height := margin*2 + face.Metrics().Height.Ceil()

	small := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(small, small.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	d := &font.Drawer{
		Dst:  small,
		Src:  image.NewUniform(color.Black),
		Face: face,
		Dot:  fixed.P(margin, margin+face.Metrics().Ascent.Ceil()),
	}
	d.DrawString(text)

	const scale = 4
	large := image.NewRGBA(image.Rect(0, 0, width*scale, height*scale))
	draw.NearestNeighbor.Scale(large, large.Bounds(), small, small.Bounds(), draw.Src, nil)

	var buf bytes.Buffer
	if err := png.Encode(&buf, large); err != nil {
		panic(err)
	}
	return buf.Bytes()
}

// BlankImagePNG returns a plain white image of the given size.
func BlankImagePNG(width, height int) []byte {
	img := image.NewGray(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		panic(err)
	}
	return buf.Bytes()
}
