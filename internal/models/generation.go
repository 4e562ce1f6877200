package models

// Document is one rendered markdown skeleton
type Document struct {
	FileName string // fixed file name, e.g. api-diff.md
	Content  string // rendered markdown
}

// Result records what a single scaffold run did
type Result struct {
	OutputDir string   // <output-root>/<component>
	DryRun    bool     // no filesystem mutation happened
	Planned   []string // paths reported in dry-run mode
	Written   []string // paths written (created or overwritten)
	Skipped   []string // existing paths left untouched
}

// NewResult creates an empty result for the given output directory
func NewResult(outputDir string, dryRun bool) *Result {
	return &Result{
		OutputDir: outputDir,
		DryRun:    dryRun,
		Planned:   make([]string, 0),
		Written:   make([]string, 0),
		Skipped:   make([]string, 0),
	}
}
