// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package scaffold stamps out boilerplate pytest files from fixed templates
// parameterized by a module name and an architectural layer.
package scaffold

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode"
	"unicode/utf8"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/resume-intake/pkg/types"
)

// Valid layer names.
const (
	LayerDAO     = "dao"
	LayerService = "service"
	LayerRouter  = "router"
)

// Layers lists the valid layer names in display order.
var Layers = []string{LayerDAO, LayerService, LayerRouter}

// ErrUnknownLayer is returned when the requested layer has no template.
var ErrUnknownLayer = errors.New("unknown layer")

// Generate writes the test file for req and returns the path written.
//
// When the target file already exists and req.AssumeYes is false, the user
// is prompted on w and the answer read from prompt; any answer other than
// "y" aborts with no write and a nil error, and the returned path is empty.
func Generate(req types.ScaffoldRequest, prompt io.Reader, w io.Writer) (string, error) {
	tmpl, ok := req.Templates[req.Layer]
	if !ok {
		tmpl, ok = builtinTemplates[req.Layer]
	}
	if !ok {
		return "", fmt.Errorf("%w %q: choose from: %s", ErrUnknownLayer, req.Layer, strings.Join(Layers, ", "))
	}

	content := substitute(tmpl, req.Module)
	outPath := filepath.Join(req.OutputDir, fmt.Sprintf("test_%s_%s.py", req.Module, req.Layer))

	if _, err := os.Stat(outPath); err == nil && !req.AssumeYes {
		fmt.Fprintf(w, "Warning: %s already exists. Overwrite? (y/n): ", outPath)
		if !confirmed(prompt) {
			fmt.Fprintln(w, "Aborted.")
			return "", nil
		}
	}

	if err := os.MkdirAll(req.OutputDir, 0o755); err != nil {
		return "", fmt.Errorf("creating output directory: %w", err)
	}
	if err := os.WriteFile(outPath, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("writing %s: %w", outPath, err)
	}

	fmt.Fprintf(w, "Generated test file: %s\n", outPath)
	return outPath, nil
}

// confirmed reads one line from r and reports whether it is "y" (case-
// insensitive). Read errors count as a declined prompt.
func confirmed(r io.Reader) bool {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	return strings.EqualFold(strings.TrimSpace(line), "y")
}

// substitute fills the template placeholders from the module name.
func substitute(tmpl, module string) string {
	return strings.NewReplacer(
		"{module}", module,
		"{module_title}", titleIdent(module),
		"{table_name}", strings.ToLower(module),
	).Replace(tmpl)
}

// titleIdent derives the class-name identifier from a module name:
// underscore-separated words are capitalized and joined, so "invoice"
// becomes "Invoice" and "user_account" becomes "UserAccount".
func titleIdent(module string) string {
	var b strings.Builder
	for _, part := range strings.Split(module, "_") {
		if part == "" {
			continue
		}
		r, size := utf8.DecodeRuneInString(part)
		b.WriteRune(unicode.ToUpper(r))
		b.WriteString(strings.ToLower(part[size:]))
	}
	return b.String()
}

// LoadTemplates reads a YAML file mapping layer names to template bodies.
// Loaded entries override the built-in templates for the same layer.
func LoadTemplates(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading templates file: %w", err)
	}
	var templates map[string]string
	if err := yaml.Unmarshal(data, &templates); err != nil {
		return nil, fmt.Errorf("parsing templates file %s: %w", path, err)
	}
	return templates, nil
}
