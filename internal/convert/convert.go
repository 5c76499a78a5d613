// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert implements resume PDF-to-Markdown conversion through a
// chain of fallback backends. The primary backend (docling, container-based)
// produces the highest-fidelity Markdown; the pure-Go page-text backends
// exist so conversion still works when no container runtime is available.
package convert

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// ErrUnavailable marks a backend that cannot run in this environment
// (e.g. no container runtime). The chain treats it the same as a
// conversion failure and moves on to the next backend.
var ErrUnavailable = errors.New("conversion backend unavailable")

// Converter transforms a PDF file into Markdown text. Backends (docling,
// pagetext, plaintext) implement this interface.
type Converter interface {
	// Name returns the backend name used in progress output.
	Name() string

	// Convert reads a PDF at pdfPath and returns the Markdown content.
	Convert(pdfPath string) (string, error)
}

// Chain tries a sequence of converters in order until one succeeds.
type Chain struct {
	backends []Converter
}

// NewChain builds a chain over the given backends, tried in argument order.
func NewChain(backends ...Converter) *Chain {
	return &Chain{backends: backends}
}

// DefaultChain returns the standard fallback order: docling, pagetext,
// plaintext.
func DefaultChain() *Chain {
	return NewChain(NewDoclingConverter(nil), PageTextConverter{}, PlainTextConverter{})
}

// Convert runs the chain against pdfPath, reporting each attempt and
// fallback to w. It returns the Markdown from the first backend that
// succeeds. When every backend fails it returns an error telling the
// operator what to install.
func (c *Chain) Convert(pdfPath string, w io.Writer) (string, error) {
	if len(c.backends) == 0 {
		return "", errors.New("conversion chain has no backends")
	}

	for i, b := range c.backends {
		fmt.Fprintf(w, "converting %s with %s...\n", filepath.Base(pdfPath), b.Name())

		md, err := b.Convert(pdfPath)
		if err == nil {
			return md, nil
		}

		if i < len(c.backends)-1 {
			fmt.Fprintf(w, "%s failed (%v), falling back\n", b.Name(), err)
			continue
		}
		fmt.Fprintf(w, "%s failed (%v)\n", b.Name(), err)
	}

	names := make([]string, len(c.backends))
	for i, b := range c.backends {
		names[i] = b.Name()
	}
	return "", fmt.Errorf(
		"no conversion backend succeeded; install one of: %s (docling requires a container runtime with the %s image)",
		strings.Join(names, ", "), imageDocling,
	)
}

// DeriveOutputPath returns the Markdown output path for an input PDF:
// the input path with its extension replaced by .md.
func DeriveOutputPath(inputPath string) string {
	return strings.TrimSuffix(inputPath, filepath.Ext(inputPath)) + ".md"
}

// ConvertFile converts the PDF at inputPath and writes the Markdown to
// outputPath, deriving the output path from the input when outputPath is
// empty. Progress goes to w. It returns the path written.
//
// The write is best-effort: a crash mid-write can leave a partial file.
func ConvertFile(chain *Chain, inputPath, outputPath string, w io.Writer) (string, error) {
	if _, err := os.Stat(inputPath); err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("input file not found: %s", inputPath)
		}
		return "", fmt.Errorf("checking input %s: %w", inputPath, err)
	}

	if outputPath == "" {
		outputPath = DeriveOutputPath(inputPath)
	}

	md, err := chain.Convert(inputPath, w)
	if err != nil {
		return "", err
	}

	if dir := filepath.Dir(outputPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("creating output directory: %w", err)
		}
	}
	if err := os.WriteFile(outputPath, []byte(md), 0o644); err != nil {
		return "", fmt.Errorf("writing %s: %w", outputPath, err)
	}

	fmt.Fprintf(w, "converted: %s\n", outputPath)
	return outputPath, nil
}
