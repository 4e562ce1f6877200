package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/toyz/scaffold/internal/errors"
	"github.com/toyz/scaffold/internal/models"
	"github.com/toyz/scaffold/internal/templates"
)

const showWordWrap = 100

func newShowCommand(root *Config, out io.Writer) *cobra.Command {
	var (
		component, zarduiComponent, shadcnItem string
		fileName                               string
		raw                                    bool
	)

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Render one generated document to stdout without writing it",
		Example: `  scaffold show --component button --file api-diff.md
  scaffold show --component button --file preview-coverage.md --raw`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := models.NewComponent(component, zarduiComponent, shadcnItem)
			if err != nil {
				return err
			}

			registry, err := templates.NewTemplateRegistry()
			if err != nil {
				return err
			}

			cfg := *root
			if err := resolveSettings(&cfg, cmd.Flags(), registry.StyleNames()); err != nil {
				return err
			}
			set, err := registry.Lookup(cfg.TemplateStyle)
			if err != nil {
				return err
			}

			content, err := set.Render(fileName, c)
			if err != nil {
				return err
			}
			if raw {
				_, err = io.WriteString(out, content)
				return err
			}

			rendered, err := renderMarkdown(content)
			if err != nil {
				return err
			}
			_, err = io.WriteString(out, rendered)
			return err
		},
	}

	flags := cmd.Flags()
	addComponentFlags(flags, &component, &zarduiComponent, &shadcnItem)
	flags.StringVar(&fileName, "file", templates.APIDiffFile, fmt.Sprintf("Document to render, one of %v.", templates.FileNames()))
	flags.BoolVar(&raw, "raw", false, "Print the markdown source instead of terminal output.")
	flags.String(keyTemplateStyle, string(templates.DefaultStyle), "Template set to render (extended, simple).")
	_ = cmd.MarkFlagRequired("component")

	return cmd
}

// renderMarkdown formats markdown for the terminal. The notty style keeps
// output free of escape sequences so it can be piped.
func renderMarkdown(md string) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("notty"),
		glamour.WithWordWrap(showWordWrap),
	)
	if err != nil {
		return "", errors.WrapTemplateError("markdown", "load", err)
	}

	rendered, err := r.Render(md)
	if err != nil {
		return "", errors.WrapTemplateError("markdown", "render", err)
	}
	return rendered, nil
}
