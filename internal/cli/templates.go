package cli

import (
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/toyz/scaffold/internal/templates"
)

func newTemplatesCommand(cfg *Config, out, errOut io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "templates",
		Short: "List the available template styles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			registry, err := templates.NewTemplateRegistry()
			if err != nil {
				return err
			}

			diagnostics := newDiagnostics(*cfg, out, errOut)
			for _, set := range registry.Sets() {
				marker := ""
				if set.Style == templates.DefaultStyle {
					marker = " (default)"
				}
				diagnostics.Section(string(set.Style) + " " + set.Version + marker)
				diagnostics.Indent()
				diagnostics.Line("%s", set.Description)
				diagnostics.Verbose("files: %s", strings.Join(templates.FileNames(), ", "))
				diagnostics.Unindent()
			}
			return nil
		},
	}
}
