package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplatesCommand(t *testing.T) {
	r := execute("templates")
	require.NoError(t, r.err)

	expected := "extended v2.0.0 (default)\n" +
		"  conflict decisions, ArgusX plain extensions and plain-style alignment\n" +
		"simple v1.0.0\n" +
		"  evidence tables, API matrix and rewrite checklist only\n"
	assert.Equal(t, expected, r.out.String())
}

func TestTemplatesCommandVerboseListsFiles(t *testing.T) {
	r := execute("templates", "--verbose")
	require.NoError(t, r.err)
	assert.Contains(t, r.out.String(),
		"[VERBOSE] files: source-understanding.md, api-diff.md, rewrite-plan.md, preview-coverage.md")
}
