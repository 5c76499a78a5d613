// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package sections heuristically extracts logical resume sections from
// converted Markdown or plain text. Matching is keyword-driven: for each
// section a fixed list of heading keywords (English plus ad hoc Portuguese
// variants) is tried in order against three heading conventions, and the
// first hit wins. There is no ground truth for section boundaries, so
// overlapping or incorrect spans on unusual input are accepted.
package sections

import (
	"regexp"
	"strings"

	"github.com/pdiddy/resume-intake/pkg/types"
)

// sectionKeywords maps each section to its ordered heading keyword list.
var sectionKeywords = map[string][]string{
	"contact":        {"contact", "contato", "email", "phone"},
	"experience":     {"experience", "experiência", "work", "trabalho", "professional"},
	"education":      {"education", "educação", "formação", "academic"},
	"skills":         {"skills", "habilidades", "competências", "technologies", "ferramentas"},
	"languages":      {"languages", "idiomas", "línguas"},
	"certifications": {"certifications", "certificações", "certificates"},
	"projects":       {"projects", "projetos", "portfolio"},
}

// Extract returns the section texts found in text using the built-in
// keyword lists. Sections with no matching heading are empty strings.
func Extract(text string) types.Sections {
	return ExtractWith(text, types.SectionsConfig{})
}

// ExtractWith extracts sections using the built-in keyword lists extended
// per section by cfg.ExtraKeywords (section name -> additional keywords).
// Extra keywords are tried after the built-ins, in their given order.
func ExtractWith(text string, cfg types.SectionsConfig) types.Sections {
	var s types.Sections
	for _, name := range types.SectionNames {
		keywords := sectionKeywords[name]
		if more := cfg.ExtraKeywords[name]; len(more) > 0 {
			keywords = append(append([]string{}, keywords...), more...)
		}
		s.Set(name, extractSection(text, keywords))
	}
	return s
}

// extractSection returns the body of the first heading matching any of
// keywords, trying for each keyword the Markdown-heading form, then the
// underlined form, then the colon form. The returned span preserves the
// original casing and is trimmed of surrounding whitespace.
func extractSection(text string, keywords []string) string {
	for _, kw := range keywords {
		for _, p := range patternsFor(kw) {
			if body, ok := p.find(text); ok {
				return strings.TrimSpace(body)
			}
		}
	}
	return ""
}

// headingPattern locates a section: start matches the heading line (the
// body begins where the match ends) and boundary matches the next heading
// of the same class (the body ends where it begins, or at end of input).
// RE2 has no lookahead, so the boundary is a second search over the tail.
type headingPattern struct {
	start    *regexp.Regexp
	boundary *regexp.Regexp
}

// patternsFor builds the three heading patterns for a keyword, in match
// precedence order. Markdown headings come first: they are the most
// reliable signal in converter output. The underline and colon forms
// tolerate backends that emit plain or semi-structured text.
func patternsFor(keyword string) []headingPattern {
	kw := regexp.QuoteMeta(keyword)
	return []headingPattern{
		// ## Experience
		{
			start:    regexp.MustCompile(`(?im)^#{1,3}[ \t]*` + kw + `[^\n]*\n?`),
			boundary: regexp.MustCompile(`(?m)^#{1,3}`),
		},
		// Experience\n----------
		{
			start:    regexp.MustCompile(`(?im)^` + kw + `[^\n]*\n[-=]+[ \t]*\n?`),
			boundary: regexp.MustCompile(`(?m)^\w[^\n]*\n[-=]+[ \t]*$`),
		},
		// Experience:
		{
			start:    regexp.MustCompile(`(?im)^` + kw + `[^\n]*:[ \t]*\n`),
			boundary: regexp.MustCompile(`(?m)^\w[^\n]*:[ \t]*$`),
		},
	}
}

func (p headingPattern) find(text string) (string, bool) {
	loc := p.start.FindStringIndex(text)
	if loc == nil {
		return "", false
	}
	body := text[loc[1]:]
	if b := p.boundary.FindStringIndex(body); b != nil {
		body = body[:b[0]]
	}
	return body, true
}
