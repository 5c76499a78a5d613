// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/dslipak/pdf"
)

// PlainTextConverter is the last fallback backend. It extracts the whole
// text layer in one pass with github.com/dslipak/pdf. Output quality is
// the same class as pagetext; it exists because the two libraries handle
// different sets of malformed PDFs.
type PlainTextConverter struct{}

// Name implements Converter.
func (PlainTextConverter) Name() string { return "plaintext" }

// Convert implements Converter.
func (PlainTextConverter) Convert(pdfPath string) (string, error) {
	r, err := pdf.Open(pdfPath)
	if err != nil {
		return "", fmt.Errorf("open pdf %s: %w", pdfPath, err)
	}

	txt, err := r.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("extract text from %s: %w", pdfPath, err)
	}

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(txt); err != nil {
		return "", fmt.Errorf("read text from %s: %w", pdfPath, err)
	}

	text := strings.TrimSpace(buf.String())
	if text == "" {
		return "", fmt.Errorf("no text layer in %s", pdfPath)
	}
	return syntheticHeading + text, nil
}
