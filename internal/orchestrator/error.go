package orchestrator

import (
	"errors"
	"fmt"

	"github.com/desertwitch/structcheck/internal/validation"
)

var (
	// ErrSchemaCompile occurs when the schema file cannot be read, is not
	// well-formed JSON or is not a valid JSON Schema.
	ErrSchemaCompile = errors.New("schema could not be compiled")

	// ErrDocumentParse occurs when the structure file cannot be read, is not
	// well-formed JSON or cannot be converted into a structure document.
	ErrDocumentParse = errors.New("structure document could not be parsed")

	// ErrSchemaViolation is matched by a [SchemaViolationError].
	ErrSchemaViolation = errors.New("document does not satisfy schema")
)

// SchemaViolationError is returned when the structure document does not
// satisfy the schema. It carries all violations that were found.
type SchemaViolationError struct {
	Violations []validation.Violation
}

func (e *SchemaViolationError) Error() string {
	return fmt.Sprintf("%s: %d violation(s)", ErrSchemaViolation, len(e.Violations))
}

// Is allows matching a [SchemaViolationError] against [ErrSchemaViolation].
func (e *SchemaViolationError) Is(target error) bool {
	return target == ErrSchemaViolation //nolint:errorlint
}
