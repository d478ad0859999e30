package structure

import "errors"

var (
	// ErrDocumentNotObject occurs when the document itself is not a JSON
	// object.
	ErrDocumentNotObject = errors.New("document is not an object")

	// ErrMissingStructure occurs when the document has no "structure" member.
	// Member names are matched exactly, a "Structure" member does not count.
	ErrMissingStructure = errors.New("document has no structure member")

	// ErrStructureNotObject occurs when the "structure" member of a document
	// is not a JSON object mapping paths to nodes.
	ErrStructureNotObject = errors.New("structure member is not an object")

	// ErrInvalidNode occurs when a node is malformed, e.g. is missing its
	// type or status or carries attributes of the wrong JSON type.
	ErrInvalidNode = errors.New("invalid node")

	// ErrUnknownType occurs when a node declares a type other than file or
	// directory.
	ErrUnknownType = errors.New("unknown node type")
)
