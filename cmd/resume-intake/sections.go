// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/resume-intake/internal/sections"
	"github.com/pdiddy/resume-intake/pkg/types"
)

var sectionsCmd = &cobra.Command{
	Use:   "sections <file>",
	Short: "Extract resume sections from converted Markdown",
	Long: `Sections scans a Markdown or plain-text resume for the seven logical
sections (contact, experience, education, skills, languages, certifications,
projects) using keyword-driven heading matching. Matching is heuristic:
sections without a recognizable heading come back empty, and unusual
layouts can produce overlapping spans.

Additional heading keywords per section can be configured under
sections.extra_keywords in the config file.`,
	Args: cobra.ExactArgs(1),
	RunE: runSections,
}

func init() {
	sectionsCmd.Flags().String("format", "text", "output format: text, json, or yaml")

	rootCmd.AddCommand(sectionsCmd)
}

func runSections(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading %s: %w", args[0], err)
	}

	secs := sections.ExtractWith(string(data), sectionsConfig())

	format, _ := cmd.Flags().GetString("format")
	switch format {
	case "text":
		printSectionPreviews(os.Stdout, secs)
		return nil
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(secs)
	case "yaml":
		out, err := yaml.Marshal(secs)
		if err != nil {
			return fmt.Errorf("encoding sections: %w", err)
		}
		_, err = os.Stdout.Write(out)
		return err
	}
	return fmt.Errorf("unknown format %q: choose from: text, json, yaml", format)
}

// sectionsConfig resolves the section extraction settings from config.
func sectionsConfig() types.SectionsConfig {
	return types.SectionsConfig{
		ExtraKeywords: viper.GetStringMapStringSlice("sections.extra_keywords"),
	}
}

// printSectionPreviews lists the non-empty sections with a short content
// preview, in canonical section order.
func printSectionPreviews(w io.Writer, secs types.Sections) {
	for _, name := range types.SectionNames {
		content := secs.Get(name)
		if content == "" {
			continue
		}
		fmt.Fprintf(w, "  - %s: %s\n", name, preview(content, 50))
	}
}

// preview truncates content to max runes, appending an ellipsis when cut.
func preview(content string, max int) string {
	runes := []rune(content)
	if len(runes) <= max {
		return content
	}
	return string(runes[:max]) + "..."
}
