package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/desertwitch/structcheck/internal/orchestrator"
)

const (
	passedHeader          = "✅ Structure validation passed"
	structureFailedHeader = "❌ Structure validation failed:"
	schemaFailedHeader    = "❌ Schema validation failed:"
	errorPrefix           = "❌ Validation error:"
)

type styles struct {
	passed lipgloss.Style
	failed lipgloss.Style
}

// newStyles returns the styles for the headers of a report. Colors are only
// rendered if the writer is a terminal that supports them.
func newStyles(w io.Writer) *styles {
	r := lipgloss.NewRenderer(w)

	return &styles{
		passed: r.NewStyle().Bold(true).Foreground(lipgloss.Color("10")),
		failed: r.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
	}
}

func (app *App) printPassed() {
	fmt.Fprintln(app.stdout, app.styles.passed.Render(passedHeader))
}

func (app *App) printIssues(issues []string) {
	fmt.Fprintln(app.stdout, app.styles.failed.Render(structureFailedHeader))

	for _, issue := range issues {
		fmt.Fprintf(app.stdout, "  - %s\n", issue)
	}
}

func (app *App) printViolations(verr *orchestrator.SchemaViolationError) {
	fmt.Fprintln(app.stdout, app.styles.failed.Render(schemaFailedHeader))

	for _, v := range verr.Violations {
		fmt.Fprintf(app.stdout, "  - %s: %s\n", v.Path(), v.Message)

		if v.HasValue {
			fmt.Fprintf(app.stdout, "\tValue: %s\n", formatValue(v.Value))
		}
	}
}

func formatValue(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}

	return string(data)
}
