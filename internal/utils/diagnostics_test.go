package utils

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func newBuffered(level DiagnosticLevel) (*DiagnosticSystem, *bytes.Buffer, *bytes.Buffer) {
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
	return NewDiagnosticSystemWithWriters(level, out, errOut, false), out, errOut
}

func TestDiagnosticLevels(t *testing.T) {
	tests := []struct {
		name        string
		level       DiagnosticLevel
		wantLine    bool
		wantVerbose bool
		wantWarn    bool
		wantError   bool
	}{
		{"silent", DiagnosticSilent, false, false, false, false},
		{"error", DiagnosticError, false, false, false, true},
		{"warn", DiagnosticWarn, false, false, true, true},
		{"info", DiagnosticInfo, true, false, true, true},
		{"verbose", DiagnosticVerbose, true, true, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, out, errOut := newBuffered(tt.level)
			d.Line("done")
			d.Verbose("verbose line")
			d.Warn("warn line")
			d.Error("error line")

			assert.Equal(t, tt.wantLine, bytes.Contains(out.Bytes(), []byte("done\n")))
			assert.Equal(t, tt.wantVerbose, bytes.Contains(out.Bytes(), []byte("[VERBOSE] verbose line")))
			assert.Equal(t, tt.wantWarn, bytes.Contains(errOut.Bytes(), []byte("[WARN] warn line")))
			assert.Equal(t, tt.wantError, bytes.Contains(errOut.Bytes(), []byte("[ERROR] error line")))
			assert.NotContains(t, out.String(), "warn line")
			assert.NotContains(t, out.String(), "error line")
		})
	}
}

func TestDiagnosticDecisionLines(t *testing.T) {
	d, out, _ := newBuffered(DiagnosticInfo)

	d.Field("component", "button")
	d.Action("wrote:", color.FgGreen, "component-comparisons/button/api-diff.md")
	d.Action("skip existing:", color.FgYellow, "component-comparisons/button/rewrite-plan.md")
	d.Line("done")

	expected := "component: button\n" +
		"wrote: component-comparisons/button/api-diff.md\n" +
		"skip existing: component-comparisons/button/rewrite-plan.md\n" +
		"done\n"
	assert.Equal(t, expected, out.String())
}

func TestDiagnosticQuietSuppressesDecisions(t *testing.T) {
	d, out, _ := newBuffered(DiagnosticError)

	d.Field("component", "button")
	d.Action("wrote:", color.FgGreen, "x")
	d.Line("done")
	d.Section("extended v2.0.0")
	assert.Empty(t, out.String())
}

func TestDiagnosticIndent(t *testing.T) {
	d, out, _ := newBuffered(DiagnosticInfo)

	d.Section("extended v2.0.0")
	d.Indent()
	d.Line("%s", "evidence tables")
	d.Unindent()
	d.Unindent()
	d.Line("top")

	assert.Equal(t, "extended v2.0.0\n  evidence tables\ntop\n", out.String())
}

func TestDiagnosticSummaryOrder(t *testing.T) {
	d, out, _ := newBuffered(DiagnosticVerbose)
	d.Summary("Summary", []string{"Written", "Skipped"}, map[string]interface{}{"Skipped": 0, "Written": 4})
	assert.Equal(t, "\nSummary\n   Written: 4\n   Skipped: 0\n", out.String())

	quiet, quietOut, _ := newBuffered(DiagnosticInfo)
	quiet.Summary("Summary", []string{"Written"}, map[string]interface{}{"Written": 4})
	assert.Empty(t, quietOut.String())
}

func TestDiagnosticColors(t *testing.T) {
	out := &bytes.Buffer{}
	d := NewDiagnosticSystemWithWriters(DiagnosticInfo, out, out, true)
	d.Action("wrote:", color.FgGreen, "a.md")

	assert.Contains(t, out.String(), "\x1b[32m")
	assert.Contains(t, out.String(), "wrote:")
	assert.Contains(t, out.String(), "a.md\n")
}
