package templates

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toyz/scaffold/internal/errors"
	"github.com/toyz/scaffold/internal/models"
)

func newRegistry(t *testing.T) *TemplateRegistry {
	t.Helper()
	registry, err := NewTemplateRegistry()
	require.NoError(t, err)
	return registry
}

func component(t *testing.T, name, zardui, shadcn string) models.Component {
	t.Helper()
	c, err := models.NewComponent(name, zardui, shadcn)
	require.NoError(t, err)
	return c
}

func TestTemplateRegistrySets(t *testing.T) {
	registry := newRegistry(t)

	sets := registry.Sets()
	require.Len(t, sets, 2)
	assert.Equal(t, StyleExtended, sets[0].Style)
	assert.Equal(t, "v2.0.0", sets[0].Version)
	assert.Equal(t, StyleSimple, sets[1].Style)
	assert.Equal(t, "v1.0.0", sets[1].Version)
	assert.Equal(t, []string{"extended", "simple"}, registry.StyleNames())

	for _, set := range sets {
		for _, name := range FileNames() {
			_, ok := set.Template(name)
			assert.True(t, ok, "%s missing %s", set.Style, name)
		}
	}
}

func TestTemplateRegistryLookup(t *testing.T) {
	registry := newRegistry(t)

	tests := []struct {
		name     string
		input    string
		expected Style
		fail     bool
	}{
		{name: "empty selects default", input: "", expected: DefaultStyle},
		{name: "extended", input: "extended", expected: StyleExtended},
		{name: "case and space insensitive", input: " Simple ", expected: StyleSimple},
		{name: "unknown style", input: "fancy", fail: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set, err := registry.Lookup(tt.input)
			if tt.fail {
				require.Error(t, err)
				assert.Equal(t, errors.ConfigurationErrorCode, errors.CodeOf(err))
				assert.Contains(t, err.Error(), `unknown style "fancy"`)
				assert.Equal(t, []string{"available styles: extended, simple"}, errors.SuggestionsOf(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, set.Style)
		})
	}
}

func TestRenderAllOrderAndSubstitution(t *testing.T) {
	registry := newRegistry(t)
	set, ok := registry.Get(StyleExtended)
	require.True(t, ok)

	docs, err := set.RenderAll(component(t, "button", "", ""))
	require.NoError(t, err)
	require.Len(t, docs, 4)

	var names []string
	for _, doc := range docs {
		names = append(names, doc.FileName)
		assert.Contains(t, doc.Content, "button")
		assert.True(t, strings.HasSuffix(doc.Content, "\n"), "%s should end with a newline", doc.FileName)
		assert.NotContains(t, doc.Content, "{{")
	}
	assert.Equal(t, FileNames(), names)

	assert.True(t, strings.HasPrefix(docs[0].Content, "# button Source Understanding\n"))
	assert.True(t, strings.HasPrefix(docs[1].Content, "# button API Diff\n"))
	assert.True(t, strings.HasPrefix(docs[2].Content, "# button Rewrite Plan\n"))
	assert.True(t, strings.HasPrefix(docs[3].Content, "# button Preview Coverage\n"))

	assert.Contains(t, docs[3].Content, "- main: `/preview?component=button`\n")
	assert.Contains(t, docs[3].Content, "- reference: `https://ui.shadcn.com/preview/radix/button-example`\n")
}

func TestRenderSourceUnderstandingAliases(t *testing.T) {
	registry := newRegistry(t)
	set, err := registry.Lookup("extended")
	require.NoError(t, err)

	content, err := set.Render(SourceUnderstandingFile, component(t, "input-otp", "input", "input-otp-demo"))
	require.NoError(t, err)

	expected := "# input-otp Source Understanding\n" +
		"\n" +
		"## Mapping\n" +
		"- local: `input-otp`\n" +
		"- zardui: `input`\n" +
		"- shadcn: `input-otp-demo`\n" +
		"- rationale:\n"
	assert.True(t, strings.HasPrefix(content, expected), "got:\n%s", content)
	assert.Contains(t, content, "| Z1 |  |  |  |\n| Z2 |  |  |  |\n")
	assert.Contains(t, content, "| L1 |  |  |  |\n| L2 |  |  |  |\n")
}

func TestRenderPreviewCoverageUsesShadcnItem(t *testing.T) {
	registry := newRegistry(t)
	set, _ := registry.Get(StyleSimple)

	content, err := set.Render(PreviewCoverageFile, component(t, "dialog", "", "alert-dialog"))
	require.NoError(t, err)
	assert.Contains(t, content, "/preview?component=dialog")
	assert.Contains(t, content, "https://ui.shadcn.com/preview/radix/alert-dialog-example")
}

func TestRewritePlanFilePaths(t *testing.T) {
	registry := newRegistry(t)
	set, _ := registry.Get(StyleExtended)

	content, err := set.Render(RewritePlanFile, component(t, "card", "", ""))
	require.NoError(t, err)
	assert.Contains(t, content, "1. `src/app/shared/ui/card/...`\n")
	assert.Contains(t, content, "2. `src/app/shared/ui/card/index.ts`\n")
	assert.Contains(t, content, "3. `src/app/preview/card-preview.component.ts`\n")
}

func TestSimpleStyleOmitsConflictSections(t *testing.T) {
	registry := newRegistry(t)
	extended, _ := registry.Get(StyleExtended)
	simple, _ := registry.Get(StyleSimple)
	c := component(t, "button", "", "")

	sections := []string{
		"## Conflict Decisions (Must Adopt shadcn)",
		"## Non-conflict Extensions (ArgusX Plain)",
		"## Conflict Resolution (Must Adopt shadcn)",
		"## Plain Style Alignment",
		"conflict?",
	}

	extendedDocs, err := extended.RenderAll(c)
	require.NoError(t, err)
	simpleDocs, err := simple.RenderAll(c)
	require.NoError(t, err)

	joinedExtended := joinDocs(extendedDocs)
	joinedSimple := joinDocs(simpleDocs)
	for _, section := range sections {
		assert.Contains(t, joinedExtended, section)
		assert.NotContains(t, joinedSimple, section)
	}
	assert.Equal(t, extendedDocs[0], simpleDocs[0], "source understanding is shared")
}

func TestRenderUnknownFile(t *testing.T) {
	registry := newRegistry(t)
	set, _ := registry.Get(StyleExtended)

	_, err := set.Render("notes.md", component(t, "button", "", ""))
	require.Error(t, err)
	assert.Equal(t, errors.ValidationErrorCode, errors.CodeOf(err))
	assert.Contains(t, err.Error(), "--file must be one of")
}

func TestRenderIsDeterministic(t *testing.T) {
	registry := newRegistry(t)
	set, _ := registry.Get(StyleExtended)
	c := component(t, "tabs", "", "")

	first, err := set.RenderAll(c)
	require.NoError(t, err)
	second, err := set.RenderAll(c)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func joinDocs(docs []models.Document) string {
	var b strings.Builder
	for _, doc := range docs {
		b.WriteString(doc.Content)
	}
	return b.String()
}
