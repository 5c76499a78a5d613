// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"bytes"
	"fmt"
	"os"

	"github.com/pdiddy/resume-intake/internal/container"
)

const imageDocling = "docling:latest"

// doclingArgs asks the containerized docling CLI to read the PDF on stdin
// and emit Markdown on stdout.
var doclingArgs = []string{"--from", "pdf", "--to", "md"}

// DoclingConverter converts PDFs by piping them through the docling
// container image. It is the primary, highest-fidelity backend: docling
// reconstructs document structure (headings, lists, tables) rather than
// dumping the raw text layer.
type DoclingConverter struct {
	runtime container.Runtime
}

// NewDoclingConverter creates the docling backend. Passing a nil runtime
// defers docker/podman detection to the first Convert call, so the chain
// can report unavailability as a fallback instead of failing construction.
func NewDoclingConverter(rt container.Runtime) *DoclingConverter {
	return &DoclingConverter{runtime: rt}
}

// Name implements Converter.
func (d *DoclingConverter) Name() string { return "docling" }

// Convert pipes the PDF at pdfPath through the docling container and
// returns the resulting Markdown. A missing container runtime or missing
// image is reported as ErrUnavailable.
func (d *DoclingConverter) Convert(pdfPath string) (string, error) {
	rt := d.runtime
	if rt == nil {
		detected, err := container.DetectRuntime()
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
		}
		rt = detected
		d.runtime = detected
	}

	if err := rt.ImageExists(imageDocling); err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	f, err := os.Open(pdfPath)
	if err != nil {
		return "", fmt.Errorf("opening PDF %s: %w", pdfPath, err)
	}
	defer f.Close()

	var out bytes.Buffer
	if err := rt.Run(imageDocling, doclingArgs, f, &out); err != nil {
		return "", fmt.Errorf("converting %s with docling: %w", pdfPath, err)
	}

	if out.Len() == 0 {
		return "", fmt.Errorf("docling produced empty output for %s", pdfPath)
	}

	return out.String(), nil
}
