package validation

import "errors"

var (
	// ErrSchemaCompile occurs when a schema cannot be decoded or is not a
	// valid JSON Schema, which is distinct from a document failing a schema.
	ErrSchemaCompile = errors.New("schema could not be compiled")

	// ErrDocumentDecode occurs when a document to be validated is not
	// well-formed JSON.
	ErrDocumentDecode = errors.New("document could not be decoded")
)
