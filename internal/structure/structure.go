// Package structure holds the typed representation of a structure document,
// the JSON file declaring which paths are expected on the filesystem together
// with their type, status and (for files) content checksum.
package structure

// Type is the declared kind of filesystem element of a [Node].
type Type string

const (
	TypeFile      Type = "file"
	TypeDirectory Type = "directory"
)

// Known returns whether the [Type] is one of the supported types.
func (t Type) Known() bool {
	return t == TypeFile || t == TypeDirectory
}

// Status is the declared state of a [Node]. The set of statuses is open, only
// [StatusExists] is currently acted upon when reconciling.
type Status string

const (
	StatusExists Status = "exists"
	StatusAbsent Status = "absent"
)

// Node describes a single declared path.
type Node struct {
	Type   Type
	Status Status

	// Checksum is the declared content digest, only meaningful for nodes of
	// [TypeFile] with [StatusExists]. It is empty when not declared.
	Checksum string
}

// ExpectsChecksum returns whether the content of the node is to be verified.
func (n Node) ExpectsChecksum() bool {
	return n.Type == TypeFile && n.Status == StatusExists && n.Checksum != ""
}

// Entry is a [Node] together with its declared path.
type Entry struct {
	Path string
	Node Node
}

// Document is a parsed structure document. Its entries are kept in the order
// the paths were declared in, which is also the order issues are reported in.
type Document struct {
	entries []Entry
}

// Entries returns a copy of the declared entries in declaration order.
func (d *Document) Entries() []Entry {
	out := make([]Entry, len(d.entries))
	copy(out, d.entries)

	return out
}

// Len returns the amount of declared paths.
func (d *Document) Len() int {
	return len(d.entries)
}
