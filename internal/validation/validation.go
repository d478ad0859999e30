// Package validation checks documents against a JSON Schema (draft 2020-12 by
// default). A compiled [Schema] is an immutable value that is safe to reuse;
// validating a document never fails with an error, instead all violated rules
// are returned as a list of [Violation].
package validation

import (
	"bytes"
	"cmp"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// RootPath is the printable path of a [Violation] at the document root.
const RootPath = "root"

// Violation is a single rule of a schema that a document does not satisfy.
type Violation struct {
	// InstanceLocation is the JSON pointer to the offending part of the
	// document, empty for the document root.
	InstanceLocation string

	// KeywordLocation is the location of the failed keyword in the schema.
	KeywordLocation string

	Message string

	// Value is the offending part of the document, if HasValue is set.
	Value    any
	HasValue bool
}

// Path returns the instance location, or [RootPath] at the document root.
func (v Violation) Path() string {
	if v.InstanceLocation == "" {
		return RootPath
	}

	return v.InstanceLocation
}

// Schema is a compiled JSON Schema.
type Schema struct {
	compiled *jsonschema.Schema
	printer  *message.Printer
}

// Compile decodes and compiles the schema data. The name identifies the
// schema as a resource (e.g. its file path) and serves as the base for
// resolving relative references. Schemas without a "$schema" keyword are
// treated as draft 2020-12. Format and content keywords are annotations
// only and never asserted.
func Compile(name string, data []byte) (*Schema, error) {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("(validation-compile) %w: %w", ErrSchemaCompile, err)
	}

	c := jsonschema.NewCompiler()
	c.DefaultDraft(jsonschema.Draft2020)

	if err := c.AddResource(name, doc); err != nil {
		return nil, fmt.Errorf("(validation-compile) %w: %w", ErrSchemaCompile, err)
	}

	compiled, err := c.Compile(name)
	if err != nil {
		return nil, fmt.Errorf("(validation-compile) %w: %w", ErrSchemaCompile, err)
	}

	return &Schema{
		compiled: compiled,
		printer:  message.NewPrinter(language.English),
	}, nil
}

// Document is a decoded document together with the declared position of
// each of its values.
type Document struct {
	value any

	// order maps the JSON pointer of every value to its position in the
	// document text, the root being at zero.
	order map[string]int
}

// Value returns the decoded document.
func (d *Document) Value() any {
	return d.value
}

// DecodeDocument decodes the document data into the representation that is
// expected by [Schema.Validate].
func DecodeDocument(data []byte) (*Document, error) {
	value, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("(validation-decode) %w: %w", ErrDocumentDecode, err)
	}

	order := make(map[string]int)
	if err := walkOrder(json.NewDecoder(bytes.NewReader(data)), "", order); err != nil {
		return nil, fmt.Errorf("(validation-decode) %w: %w", ErrDocumentDecode, err)
	}

	return &Document{value: value, order: order}, nil
}

// Validate evaluates all rules of the [Schema] against the decoded document
// and returns every violation, ordered by the position of the offending value
// in the document text. An empty result means that the document satisfies
// the schema.
func (s *Schema) Validate(doc *Document) []Violation {
	err := s.compiled.Validate(doc.value)
	if err == nil {
		return nil
	}

	var verr *jsonschema.ValidationError
	if !errors.As(err, &verr) {
		return []Violation{{Message: err.Error()}}
	}

	var violations []Violation
	for _, leaf := range leaves(verr) {
		violations = append(violations, s.toViolation(leaf, doc.value))
	}

	slices.SortStableFunc(violations, func(a, b Violation) int {
		if c := cmp.Compare(doc.position(a.InstanceLocation), doc.position(b.InstanceLocation)); c != 0 {
			return c
		}

		return strings.Compare(a.KeywordLocation, b.KeywordLocation)
	})

	return violations
}

// position returns the declared position of the value at the JSON pointer.
// Unknown pointers are placed after all known ones.
func (d *Document) position(pointer string) int {
	if pos, ok := d.order[pointer]; ok {
		return pos
	}

	return math.MaxInt
}

// walkOrder records the position of the next value and all values nested in
// it. A key that is declared more than once keeps its first position.
func walkOrder(dec *json.Decoder, pointer string, order map[string]int) error {
	if _, seen := order[pointer]; !seen {
		order[pointer] = len(order)
	}

	tok, err := dec.Token()
	if err != nil {
		return err
	}

	delim, ok := tok.(json.Delim)
	if !ok {
		return nil
	}

	switch delim {
	case '{':
		for dec.More() {
			tok, err := dec.Token()
			if err != nil {
				return err
			}

			key, _ := tok.(string)
			if err := walkOrder(dec, pointer+"/"+pointerEscaper.Replace(key), order); err != nil {
				return err
			}
		}

	case '[':
		for i := 0; dec.More(); i++ {
			if err := walkOrder(dec, pointer+"/"+strconv.Itoa(i), order); err != nil {
				return err
			}
		}
	}

	_, err = dec.Token()

	return err
}

func (s *Schema) toViolation(verr *jsonschema.ValidationError, doc any) Violation {
	v := Violation{
		InstanceLocation: jsonPointer(verr.InstanceLocation),
		KeywordLocation:  keywordLocation(verr),
		Message:          verr.ErrorKind.LocalizedString(s.printer),
	}

	v.Value, v.HasValue = lookup(doc, verr.InstanceLocation)

	return v
}

// leaves flattens the tree of a [jsonschema.ValidationError] into the causes
// that have no further causes themselves.
func leaves(verr *jsonschema.ValidationError) []*jsonschema.ValidationError {
	if len(verr.Causes) == 0 {
		return []*jsonschema.ValidationError{verr}
	}

	var out []*jsonschema.ValidationError
	for _, cause := range verr.Causes {
		out = append(out, leaves(cause)...)
	}

	return out
}

func keywordLocation(verr *jsonschema.ValidationError) string {
	loc := ""
	if _, fragment, found := strings.Cut(verr.SchemaURL, "#"); found {
		loc = fragment
	}

	if kw := verr.ErrorKind.KeywordPath(); len(kw) > 0 {
		loc += "/" + strings.Join(kw, "/")
	}

	return loc
}

var pointerEscaper = strings.NewReplacer("~", "~0", "/", "~1")

func jsonPointer(tokens []string) string {
	var sb strings.Builder
	for _, tok := range tokens {
		sb.WriteString("/")
		sb.WriteString(pointerEscaper.Replace(tok))
	}

	return sb.String()
}

// lookup walks the decoded document along the (unescaped) tokens.
func lookup(doc any, tokens []string) (any, bool) {
	cur := doc
	for _, tok := range tokens {
		switch node := cur.(type) {
		case map[string]any:
			next, ok := node[tok]
			if !ok {
				return nil, false
			}
			cur = next

		case []any:
			i, err := strconv.Atoi(tok)
			if err != nil || i < 0 || i >= len(node) {
				return nil, false
			}
			cur = node[i]

		default:
			return nil, false
		}
	}

	return cur, true
}
