package files

import (
	"fmt"
	"strings"

	pdf "rsc.io/pdf"
)

// ExtractPages opens a PDF at path and returns the plain text of each page in
// order. Pages without a text layer come back as empty strings.
func ExtractPages(path string) ([]string, error) {
	r, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open pdf: %w", err)
	}

	total := r.NumPage()
	pages := make([]string, 0, total)
	for i := 1; i <= total; i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			pages = append(pages, "")
			continue
		}
		pages = append(pages, pageText(p))
	}
	return pages, nil
}

// pageText flattens a page's positioned glyph runs back into readable text.
// A change in vertical position starts a new line; a horizontal gap between
// runs on the same line becomes a space, so words stay whitespace-delimited.
func pageText(p pdf.Page) string {
	var (
		buf   strings.Builder
		lastY float64
		endX  float64
	)
	for i, t := range p.Content().Text {
		switch {
		case i == 0:
		case t.Y != lastY:
			buf.WriteByte('\n')
		case t.X-endX > 1:
			buf.WriteByte(' ')
		}
		buf.WriteString(t.S)
		lastY = t.Y
		endX = t.X + t.W
	}
	return buf.String()
}

// CombinePages joins per-page text with a blank line. This is the form the
// word-count gate and the prompt operate on.
func CombinePages(pages []string) string {
	return strings.Join(pages, "\n\n")
}
