// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/pdiddy/resume-intake/internal/convert"
	"github.com/pdiddy/resume-intake/internal/sections"
	"github.com/pdiddy/resume-intake/pkg/types"
)

var convertCmd = &cobra.Command{
	Use:   "convert <source> [output.md]",
	Short: "Convert a resume PDF to Markdown",
	Long: `Convert transforms a resume PDF into Markdown. Backends are tried in
order until one succeeds: docling (container-based, highest fidelity), then
pagetext and plaintext (pure-Go text-layer extraction under a synthetic
heading). The source may be a local path or an http(s) URL; URLs are
downloaded first.

When no output path is given, the input path with a .md extension is used.
After a successful conversion the extracted resume sections are previewed.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().String("backend", "", "restrict conversion to one backend: docling, pagetext, or plaintext")
	convertCmd.Flags().Duration("timeout", 60*time.Second, "HTTP timeout when the source is a URL")

	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	source := args[0]
	var outputPath string
	if len(args) == 2 {
		outputPath = args[1]
	}

	cfg := conversionConfig(cmd)
	chain, err := buildChain(cfg.Backend)
	if err != nil {
		return err
	}

	inputPath := source
	if convert.IsURL(source) {
		tmpDir, err := os.MkdirTemp("", "resume-intake-*")
		if err != nil {
			return fmt.Errorf("creating temp directory: %w", err)
		}
		defer os.RemoveAll(tmpDir)

		client := &http.Client{Timeout: cfg.Timeout}
		inputPath, err = convert.Fetch(cmd.Context(), client, source, tmpDir, cfg.HTTPConfig)
		if err != nil {
			return err
		}

		// The download lives in a temp dir; default the Markdown output
		// next to the working directory instead.
		if outputPath == "" {
			outputPath = filepath.Base(convert.DeriveOutputPath(inputPath))
		}
	}

	mdPath, err := convert.ConvertFile(chain, inputPath, outputPath, os.Stderr)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(mdPath)
	if err != nil {
		return fmt.Errorf("reading converted output: %w", err)
	}

	secs := sections.ExtractWith(string(data), sectionsConfig())
	fmt.Println("\nExtracted sections:")
	printSectionPreviews(os.Stdout, secs)
	return nil
}

// conversionConfig resolves the conversion stage settings, flags winning
// over config file values.
func conversionConfig(cmd *cobra.Command) types.ConversionConfig {
	timeout, _ := cmd.Flags().GetDuration("timeout")
	return types.ConversionConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   timeout,
			UserAgent: "resume-intake/" + version,
		},
		Backend: types.ConversionBackend(stringSetting(cmd, "backend", "conversion.backend")),
	}
}

// buildChain returns the full fallback chain, or a single-backend chain
// when backend names one.
func buildChain(backend types.ConversionBackend) (*convert.Chain, error) {
	switch backend {
	case "":
		return convert.DefaultChain(), nil
	case types.BackendDocling:
		return convert.NewChain(convert.NewDoclingConverter(nil)), nil
	case types.BackendPageText:
		return convert.NewChain(convert.PageTextConverter{}), nil
	case types.BackendPlainText:
		return convert.NewChain(convert.PlainTextConverter{}), nil
	}
	return nil, fmt.Errorf("unknown backend %q: choose from: docling, pagetext, plaintext", backend)
}
