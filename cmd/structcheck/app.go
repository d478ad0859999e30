package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/desertwitch/structcheck/internal/orchestrator"
)

const usage = "Usage: structcheck <structure-file> <schema-file>"

// App is the command-line application validating a structure document.
type App struct {
	orchestrationHandler *orchestrator.Handler
	stdout               io.Writer
	stderr               io.Writer
	styles               *styles
}

// NewApp returns a pointer to a new [App] writing its report to stdout and
// its errors to stderr.
func NewApp(orchestrationHandler *orchestrator.Handler, stdout io.Writer, stderr io.Writer) *App {
	return &App{
		orchestrationHandler: orchestrationHandler,
		stdout:               stdout,
		stderr:               stderr,
		styles:               newStyles(stdout),
	}
}

// Run validates the structure document and the schema given as the first two
// positional arguments and returns the exit code of the application.
func (app *App) Run(ctx context.Context, args []string) int {
	if len(args) < 2 { //nolint:mnd
		fmt.Fprintln(app.stderr, usage)

		return 1
	}

	structurePath, schemaPath := args[0], args[1]

	report, err := app.orchestrationHandler.Validate(ctx, structurePath, schemaPath)
	if err != nil {
		var verr *orchestrator.SchemaViolationError
		if errors.As(err, &verr) {
			app.printViolations(verr)

			return 1
		}

		slog.Debug("Validation failed:",
			"structure", structurePath,
			"schema", schemaPath,
			"err", err,
		)
		fmt.Fprintf(app.stderr, "%s %v\n", errorPrefix, err)

		return 1
	}

	if !report.Valid {
		app.printIssues(report.Issues)

		return 1
	}

	app.printPassed()

	return 0
}
