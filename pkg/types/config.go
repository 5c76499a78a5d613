package types

import "time"

// HTTPConfig holds shared HTTP settings for stages that fetch remote sources.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "resume-intake/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// ConversionBackend identifies one backend in the conversion fallback chain.
type ConversionBackend string

const (
	BackendDocling   ConversionBackend = "docling"
	BackendPageText  ConversionBackend = "pagetext"
	BackendPlainText ConversionBackend = "plaintext"
)

// ConversionConfig holds settings for the conversion stage.
type ConversionConfig struct {
	HTTPConfig `yaml:",inline"`

	// Backend restricts conversion to a single backend. Empty means the full
	// fallback chain: docling, then pagetext, then plaintext.
	Backend ConversionBackend `json:"backend,omitempty" yaml:"backend,omitempty"`
}

// SectionsConfig holds settings for the section extraction stage.
type SectionsConfig struct {
	// ExtraKeywords maps a section name (contact, experience, education,
	// skills, languages, certifications, projects) to additional heading
	// keywords tried after the built-in list for that section.
	ExtraKeywords map[string][]string `json:"extra_keywords,omitempty" yaml:"extra_keywords,omitempty"`
}

// ScaffoldRequest describes one test-scaffold generation run.
type ScaffoldRequest struct {
	// Module is the module under test (e.g. "user", "invoice", "user_account").
	Module string

	// Layer selects the template: dao, service, or router.
	Layer string

	// OutputDir is the directory the test file is written to.
	OutputDir string

	// Templates optionally adds or overrides layer template bodies.
	Templates map[string]string

	// AssumeYes skips the interactive overwrite prompt.
	AssumeYes bool
}

// ScaffoldConfig holds settings for the scaffold stage.
type ScaffoldConfig struct {
	// OutputDir is the default directory for generated test files.
	OutputDir string `json:"output_dir" yaml:"output_dir"`

	// TemplatesFile is an optional YAML file mapping layer names to
	// template bodies.
	TemplatesFile string `json:"templates_file,omitempty" yaml:"templates_file,omitempty"`
}
