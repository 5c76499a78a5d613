// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// syntheticHeading prefixes the output of the page-text fallback backends,
// which only dump the PDF text layer and produce no headings of their own.
const syntheticHeading = "# Resume - Converted from PDF\n\n"

// PageTextConverter is the first fallback backend. It extracts the embedded
// text layer page by page with github.com/ledongthuc/pdf and concatenates
// pages in order under a synthetic heading. Scanned (image-only) PDFs have
// no text layer and fail here.
type PageTextConverter struct{}

// Name implements Converter.
func (PageTextConverter) Name() string { return "pagetext" }

// Convert implements Converter.
func (PageTextConverter) Convert(pdfPath string) (string, error) {
	f, r, err := pdf.Open(pdfPath)
	if err != nil {
		return "", fmt.Errorf("open pdf %s: %w", pdfPath, err)
	}
	defer func() { _ = f.Close() }()

	numPages := r.NumPage()
	fonts := make(map[string]*pdf.Font)
	var parts []string

	for i := 1; i <= numPages; i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			continue
		}

		for _, name := range p.Fonts() {
			if _, ok := fonts[name]; !ok {
				f2 := p.Font(name)
				fonts[name] = &f2
			}
		}

		text, pageErr := p.GetPlainText(fonts)
		if pageErr != nil {
			return "", fmt.Errorf("read pdf page %d: %w", i, pageErr)
		}
		if trimmed := strings.TrimSpace(text); trimmed != "" {
			parts = append(parts, trimmed)
		}
	}

	if len(parts) == 0 {
		return "", fmt.Errorf("no text layer in %s", pdfPath)
	}
	return syntheticHeading + strings.Join(parts, "\n\n"), nil
}
