// Package orchestrator runs the validation pipeline of a structure document:
// the schema and the document are loaded, the document is validated against
// the schema, and only a schema-valid document is reconciled against the
// filesystem. Schema violations and filesystem issues are mutually exclusive
// outcomes of a run.
package orchestrator

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/desertwitch/structcheck/internal/reconcile"
	"github.com/desertwitch/structcheck/internal/structure"
	"github.com/desertwitch/structcheck/internal/validation"
)

type osProvider interface {
	ReadFile(name string) ([]byte, error)
}

type reconcileProvider interface {
	Reconcile(ctx context.Context, doc *structure.Document) (*reconcile.Report, error)
}

// Handler is the principal implementation for the orchestration services.
type Handler struct {
	osHandler        osProvider
	reconcileHandler reconcileProvider

	// OnTransition is called for every [State] a run enters, if set.
	OnTransition func(State)
}

// NewHandler returns a pointer to a new orchestration [Handler].
func NewHandler(osHandler osProvider, reconcileHandler reconcileProvider) *Handler {
	return &Handler{
		osHandler:        osHandler,
		reconcileHandler: reconcileHandler,
	}
}

// Validate validates the structure document at structurePath against the
// schema at schemaPath and, if it satisfies the schema, reconciles it against
// the filesystem. The returned [reconcile.Report] may itself hold issues.
//
// The returned error wraps [ErrSchemaCompile] or [ErrDocumentParse] if either
// input could not be loaded, or is a [*SchemaViolationError] if the document
// does not satisfy the schema, in which case the filesystem is never touched.
// Any other error is one of the reconciliation (e.g. a cancelled context).
func (o *Handler) Validate(ctx context.Context, structurePath string, schemaPath string) (*reconcile.Report, error) {
	o.transition(StateStart)

	schema, err := o.loadSchema(schemaPath)
	if err != nil {
		o.transition(StateParseFailed)

		return nil, err
	}

	raw, doc, err := o.loadDocument(structurePath)
	if err != nil {
		o.transition(StateParseFailed)

		return nil, err
	}

	o.transition(StateParsed)

	if violations := schema.Validate(doc); len(violations) > 0 {
		o.transition(StateSchemaInvalid)

		return nil, &SchemaViolationError{Violations: violations}
	}

	o.transition(StateSchemaValid)

	typed, err := structure.Parse(raw)
	if err != nil {
		o.transition(StateParseFailed)

		return nil, fmt.Errorf("(orchestrator) %w: %w", ErrDocumentParse, err)
	}

	report, err := o.reconcileHandler.Reconcile(ctx, typed)
	if err != nil {
		o.transition(StateReconcileFailed)

		return nil, fmt.Errorf("(orchestrator) %w", err)
	}

	o.transition(StateReportReady)

	return report, nil
}

func (o *Handler) loadSchema(schemaPath string) (*validation.Schema, error) {
	data, err := o.osHandler.ReadFile(schemaPath)
	if err != nil {
		return nil, fmt.Errorf("(orchestrator) %w: %w", ErrSchemaCompile, err)
	}

	schema, err := validation.Compile(schemaPath, data)
	if err != nil {
		return nil, fmt.Errorf("(orchestrator) %w: %w", ErrSchemaCompile, err)
	}

	return schema, nil
}

func (o *Handler) loadDocument(structurePath string) ([]byte, *validation.Document, error) {
	data, err := o.osHandler.ReadFile(structurePath)
	if err != nil {
		return nil, nil, fmt.Errorf("(orchestrator) %w: %w", ErrDocumentParse, err)
	}

	doc, err := validation.DecodeDocument(data)
	if err != nil {
		return nil, nil, fmt.Errorf("(orchestrator) %w: %w", ErrDocumentParse, err)
	}

	return data, doc, nil
}

func (o *Handler) transition(s State) {
	slog.Debug("Validation state:", "state", s.String())

	if o.OnTransition != nil {
		o.OnTransition(s)
	}
}
