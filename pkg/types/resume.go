// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the shared data types for the resume-intake tools.
package types

// Sections holds the text extracted for each logical resume section.
// A field is the empty string when no heading for that section was found.
// Field declaration order is the canonical output order.
type Sections struct {
	Contact        string `json:"contact" yaml:"contact"`
	Experience     string `json:"experience" yaml:"experience"`
	Education      string `json:"education" yaml:"education"`
	Skills         string `json:"skills" yaml:"skills"`
	Languages      string `json:"languages" yaml:"languages"`
	Certifications string `json:"certifications" yaml:"certifications"`
	Projects       string `json:"projects" yaml:"projects"`
}

// SectionNames lists the section names in canonical order.
var SectionNames = []string{
	"contact",
	"experience",
	"education",
	"skills",
	"languages",
	"certifications",
	"projects",
}

// Get returns the extracted text for a section name, or the empty string
// for an unknown name.
func (s Sections) Get(name string) string {
	switch name {
	case "contact":
		return s.Contact
	case "experience":
		return s.Experience
	case "education":
		return s.Education
	case "skills":
		return s.Skills
	case "languages":
		return s.Languages
	case "certifications":
		return s.Certifications
	case "projects":
		return s.Projects
	}
	return ""
}

// Set stores the extracted text for a section name. Unknown names are ignored.
func (s *Sections) Set(name, value string) {
	switch name {
	case "contact":
		s.Contact = value
	case "experience":
		s.Experience = value
	case "education":
		s.Education = value
	case "skills":
		s.Skills = value
	case "languages":
		s.Languages = value
	case "certifications":
		s.Certifications = value
	case "projects":
		s.Projects = value
	}
}
