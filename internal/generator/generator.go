package generator

import (
	"os"
	"path/filepath"

	"github.com/fatih/color"

	"github.com/toyz/scaffold/internal/models"
	"github.com/toyz/scaffold/internal/templates"
	"github.com/toyz/scaffold/internal/utils"
	"github.com/toyz/scaffold/internal/utils/fileops"
)

const (
	dirPerm  os.FileMode = 0755
	filePerm os.FileMode = 0644
)

// Options controls a single scaffold run
type Options struct {
	Component  models.Component
	OutputRoot string
	Force      bool // overwrite existing files
	DryRun     bool // report only, no filesystem mutation
}

// Generator renders a template set and writes it under <output-root>/<component>
type Generator struct {
	set         *templates.TemplateSet
	files       *fileops.FileOps
	diagnostics *utils.DiagnosticSystem
}

var _ ScaffoldGenerator = (*Generator)(nil)

// NewGenerator creates a generator for the given template set
func NewGenerator(set *templates.TemplateSet, diagnostics *utils.DiagnosticSystem) *Generator {
	return &Generator{
		set:         set,
		files:       fileops.NewFileOps(),
		diagnostics: diagnostics,
	}
}

// OutputDir resolves the directory the documents are written to
func OutputDir(outputRoot string, component models.Component) string {
	return filepath.Join(outputRoot, component.Name)
}

// Generate renders all documents and either reports or writes them
func (g *Generator) Generate(opts Options) (*models.Result, error) {
	docs, err := g.set.RenderAll(opts.Component)
	if err != nil {
		return nil, err
	}

	outputDir := OutputDir(opts.OutputRoot, opts.Component)
	result := models.NewResult(outputDir, opts.DryRun)

	g.diagnostics.Field("component", opts.Component.Name)
	g.diagnostics.Field("zardui component", opts.Component.ZardUIName)
	g.diagnostics.Field("shadcn item", opts.Component.ShadcnItem)
	g.diagnostics.Field("output directory", outputDir)
	g.diagnostics.Verbose("template set: %s %s", g.set.Style, g.set.Version)

	if opts.DryRun {
		for _, doc := range docs {
			path := filepath.Join(outputDir, doc.FileName)
			g.diagnostics.Action("[dry-run] write", color.FgCyan, path)
			result.Planned = append(result.Planned, path)
		}
		return result, nil
	}

	for _, dir := range []string{opts.OutputRoot, outputDir} {
		if err := g.files.CheckDir(dir); err != nil {
			return nil, err
		}
	}
	if err := g.files.EnsureDir(outputDir, dirPerm); err != nil {
		return nil, err
	}

	for _, doc := range docs {
		path := filepath.Join(outputDir, doc.FileName)

		exists, err := g.files.Exists(path)
		if err != nil {
			return nil, err
		}
		if exists && !opts.Force {
			g.diagnostics.Action("skip existing:", color.FgYellow, path)
			result.Skipped = append(result.Skipped, path)
			continue
		}

		if err := g.files.WriteFile(path, []byte(doc.Content), filePerm); err != nil {
			return nil, err
		}
		if exists {
			g.diagnostics.Warn("overwriting existing: %s", path)
		}
		g.diagnostics.Action("wrote:", color.FgGreen, path)
		g.diagnostics.Verbose("%d bytes", len(doc.Content))
		result.Written = append(result.Written, path)
	}

	g.diagnostics.Line("done")
	return result, nil
}
