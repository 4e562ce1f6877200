package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/toyz/scaffold/internal/errors"
	"github.com/toyz/scaffold/internal/generator"
	"github.com/toyz/scaffold/internal/models"
	"github.com/toyz/scaffold/internal/templates"
	"github.com/toyz/scaffold/internal/utils"
)

// Execute runs the scaffold command against the process stdio
func Execute() error {
	return ExecuteArgs(os.Args[1:], os.Stdout, os.Stderr)
}

// ExecuteArgs runs the command tree with explicit arguments and writers,
// reporting any failure on errOut
func ExecuteArgs(args []string, out, errOut io.Writer) error {
	root := NewRootCommand(out, errOut)
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		reportError(errOut, err)
		return err
	}
	return nil
}

// NewRootCommand builds the command tree
func NewRootCommand(out, errOut io.Writer) *cobra.Command {
	cfg := DefaultConfig()

	cmd := &cobra.Command{
		Use:   "scaffold",
		Short: "Create component-comparisons skeleton files for the rewrite workflow",
		Long: `Generates source-understanding.md, api-diff.md, rewrite-plan.md and
preview-coverage.md under <output-root>/<component>/.

Existing files are left untouched unless --force is given. --dry-run prints the
paths that would be written without touching the filesystem.`,
		Example: `  scaffold --component button
  scaffold --component input-otp --zardui-component input --shadcn-item input-otp
  scaffold --component card --dry-run
  scaffold --component card --force --template-style simple`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			component, err := models.NewComponent(cfg.Component, cfg.ZardUIComponent, cfg.ShadcnItem)
			if err != nil {
				return err
			}
			registry, err := templates.NewTemplateRegistry()
			if err != nil {
				return err
			}
			if err := resolveSettings(&cfg, cmd.Flags(), registry.StyleNames()); err != nil {
				return err
			}
			set, err := registry.Lookup(cfg.TemplateStyle)
			if err != nil {
				return err
			}
			return runScaffold(cfg, set, component, out, errOut)
		},
	}
	cmd.SetOut(out)
	cmd.SetErr(errOut)

	flags := cmd.Flags()
	addComponentFlags(flags, &cfg.Component, &cfg.ZardUIComponent, &cfg.ShadcnItem)
	flags.String(keyOutputRoot, DefaultOutputRoot, "Output root directory.")
	flags.Bool(keyForce, false, "Overwrite existing files.")
	flags.BoolVar(&cfg.DryRun, "dry-run", false, "Print intended file operations without writing files.")
	flags.String(keyTemplateStyle, string(templates.DefaultStyle), "Template set to render (extended, simple).")
	_ = cmd.MarkFlagRequired("component")

	persistent := cmd.PersistentFlags()
	persistent.StringVar(&cfg.ConfigFile, "config", "", "Optional YAML file with output-root, template-style and force defaults.")
	persistent.BoolVarP(&cfg.Verbose, "verbose", "v", false, "Enable verbose output.")
	persistent.BoolVarP(&cfg.Quiet, "quiet", "q", false, "Only show errors.")
	cmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	cmd.AddCommand(newTemplatesCommand(&cfg, out, errOut))
	cmd.AddCommand(newShowCommand(&cfg, out))

	return cmd
}

// addComponentFlags registers the identity flags shared by scaffold and show
func addComponentFlags(flags *pflag.FlagSet, component, zarduiComponent, shadcnItem *string) {
	flags.StringVar(component, "component", "", "Local component directory name.")
	flags.StringVar(zarduiComponent, "zardui-component", "", "ZardUI component directory name. Defaults to --component.")
	flags.StringVar(shadcnItem, "shadcn-item", "", "Shadcn item/preview slug. Defaults to --component.")
}

func runScaffold(cfg Config, set *templates.TemplateSet, component models.Component, out, errOut io.Writer) error {
	diagnostics := newDiagnostics(cfg, out, errOut)
	var gen generator.ScaffoldGenerator = generator.NewGenerator(set, diagnostics)

	result, err := gen.Generate(generator.Options{
		Component:  component,
		OutputRoot: cfg.OutputRoot,
		Force:      cfg.Force,
		DryRun:     cfg.DryRun,
	})
	if err != nil {
		return err
	}

	diagnostics.Summary("Summary", []string{"Written", "Skipped", "Planned"}, map[string]interface{}{
		"Written": len(result.Written),
		"Skipped": len(result.Skipped),
		"Planned": len(result.Planned),
	})
	return nil
}

func newDiagnostics(cfg Config, out, errOut io.Writer) *utils.DiagnosticSystem {
	level := utils.DiagnosticInfo
	switch {
	case cfg.Quiet:
		level = utils.DiagnosticError
	case cfg.Verbose:
		level = utils.DiagnosticVerbose
	}
	return utils.NewDiagnosticSystemWithWriters(level, out, errOut, useColors(out))
}

// useColors enables color only when writing to a terminal-backed file
func useColors(w io.Writer) bool {
	if color.NoColor {
		return false
	}
	f, ok := w.(*os.File)
	return ok && (f == os.Stdout || f == os.Stderr)
}

// reportError prints the error and any suggestions attached to it
func reportError(errOut io.Writer, err error) {
	diagnostics := utils.NewDiagnosticSystemWithWriters(utils.DiagnosticError, io.Discard, errOut, useColors(errOut))
	diagnostics.Error("%v", err)
	fmt.Fprint(errOut, errors.FormatSuggestions(errors.SuggestionsOf(err)))
}
