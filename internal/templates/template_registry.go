package templates

import (
	"embed"
	"fmt"
	"path"
	"sort"
	"strings"
	"text/template"

	"golang.org/x/mod/semver"

	"github.com/toyz/scaffold/internal/errors"
)

//go:embed sets
var setsFS embed.FS

// Style selects one of the registered template sets
type Style string

const (
	// StyleExtended carries conflict, extension and plain-style sections
	StyleExtended Style = "extended"
	// StyleSimple is the reduced layout without conflict handling
	StyleSimple Style = "simple"

	// DefaultStyle is the canonical template set
	DefaultStyle = StyleExtended
)

// Output file names, in the order they are written
const (
	SourceUnderstandingFile = "source-understanding.md"
	APIDiffFile             = "api-diff.md"
	RewritePlanFile         = "rewrite-plan.md"
	PreviewCoverageFile     = "preview-coverage.md"
)

// FileNames returns the fixed set of generated file names in write order
func FileNames() []string {
	return []string{SourceUnderstandingFile, APIDiffFile, RewritePlanFile, PreviewCoverageFile}
}

// TemplateSet is one versioned collection of the four document templates
type TemplateSet struct {
	Style       Style
	Version     string // semver, e.g. v2.0.0
	Description string
	templates   map[string]*template.Template
}

// Template returns the parsed template for a file name
func (ts *TemplateSet) Template(fileName string) (*template.Template, bool) {
	tmpl, ok := ts.templates[fileName]
	return tmpl, ok
}

// TemplateRegistry holds every registered template set keyed by style
type TemplateRegistry struct {
	sets map[Style]*TemplateSet
}

// NewTemplateRegistry parses the embedded template sets
func NewTemplateRegistry() (*TemplateRegistry, error) {
	registry := &TemplateRegistry{
		sets: make(map[Style]*TemplateSet),
	}

	if err := registry.register(StyleExtended, "v2.0.0",
		"conflict decisions, ArgusX plain extensions and plain-style alignment"); err != nil {
		return nil, err
	}
	if err := registry.register(StyleSimple, "v1.0.0",
		"evidence tables, API matrix and rewrite checklist only"); err != nil {
		return nil, err
	}

	return registry, nil
}

// register loads sets/<style>/<file>.tmpl for each output file
func (tr *TemplateRegistry) register(style Style, version, description string) error {
	if !semver.IsValid(version) {
		return errors.TemplateError(string(style), "register", fmt.Sprintf("invalid version %q", version))
	}

	set := &TemplateSet{
		Style:       style,
		Version:     version,
		Description: description,
		templates:   make(map[string]*template.Template),
	}

	for _, name := range FileNames() {
		file := path.Join("sets", string(style), name+".tmpl")
		body, err := setsFS.ReadFile(file)
		if err != nil {
			return errors.WrapTemplateError(file, "read", err)
		}

		tmpl, err := template.New(name).Option("missingkey=error").Parse(string(body))
		if err != nil {
			return errors.WrapTemplateError(file, "parse", err)
		}
		set.templates[name] = tmpl
	}

	tr.sets[style] = set
	return nil
}

// Get retrieves a template set by style
func (tr *TemplateRegistry) Get(style Style) (*TemplateSet, bool) {
	set, exists := tr.sets[style]
	return set, exists
}

// Lookup resolves a style name, returning a configuration error for unknown styles
func (tr *TemplateRegistry) Lookup(name string) (*TemplateSet, error) {
	style := Style(strings.ToLower(strings.TrimSpace(name)))
	if style == "" {
		style = DefaultStyle
	}

	set, ok := tr.Get(style)
	if !ok {
		return nil, errors.ConfigurationError("template-style",
			fmt.Sprintf("unknown style %q", name)).
			WithSuggestion("available styles: " + strings.Join(tr.StyleNames(), ", "))
	}
	return set, nil
}

// Sets returns all template sets, newest version first
func (tr *TemplateRegistry) Sets() []*TemplateSet {
	sets := make([]*TemplateSet, 0, len(tr.sets))
	for _, set := range tr.sets {
		sets = append(sets, set)
	}
	sort.Slice(sets, func(i, j int) bool {
		if c := semver.Compare(sets[i].Version, sets[j].Version); c != 0 {
			return c > 0
		}
		return sets[i].Style < sets[j].Style
	})
	return sets
}

// StyleNames returns the registered style names, newest version first
func (tr *TemplateRegistry) StyleNames() []string {
	var names []string
	for _, set := range tr.Sets() {
		names = append(names, string(set.Style))
	}
	return names
}
