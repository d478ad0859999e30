package structure

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

const (
	structureKey = "structure"
	typeKey      = "type"
	statusKey    = "status"
	checksumKey  = "checksum"
)

type rawNode struct {
	Type     *string
	Status   *string
	Checksum *string
}

// Parse converts the raw bytes of a structure document into a [Document]. The
// declared key order of the "structure" object is preserved. Should a path be
// declared more than once, it keeps its first position and its last value.
//
// Member names are matched exactly, so the typed document always reads the
// same members that a JSON Schema validator sees. Members differing only in
// case (e.g. "Checksum") are ignored.
func Parse(data []byte) (*Document, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	if err := openObject(dec, ErrDocumentNotObject); err != nil {
		return nil, fmt.Errorf("(structure-parse) %w", err)
	}

	var structure json.RawMessage

	err := walkObject(dec, func(key string) error {
		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return err
		}

		if key == structureKey {
			structure = value
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("(structure-parse) %w", err)
	}

	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("(structure-parse) %w: trailing data after document", ErrDocumentNotObject)
	}

	if structure == nil {
		return nil, ErrMissingStructure
	}

	return parseStructure(structure)
}

func parseStructure(data json.RawMessage) (*Document, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	if err := openObject(dec, ErrStructureNotObject); err != nil {
		return nil, fmt.Errorf("(structure-parse) %w", err)
	}

	doc := &Document{}
	seen := make(map[string]int)

	err := walkObject(dec, func(path string) error {
		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return err
		}

		node, err := parseNode(value)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}

		if i, exists := seen[path]; exists {
			doc.entries[i].Node = node

			return nil
		}

		seen[path] = len(doc.entries)
		doc.entries = append(doc.entries, Entry{Path: path, Node: node})

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("(structure-parse) %w", err)
	}

	return doc, nil
}

func parseNode(data json.RawMessage) (Node, error) {
	dec := json.NewDecoder(bytes.NewReader(data))

	if err := openObject(dec, ErrInvalidNode); err != nil {
		return Node{}, err
	}

	var rn rawNode

	err := walkObject(dec, func(key string) error {
		var target **string

		switch key {
		case typeKey:
			target = &rn.Type
		case statusKey:
			target = &rn.Status
		case checksumKey:
			target = &rn.Checksum
		default:
			var skipped json.RawMessage

			return dec.Decode(&skipped)
		}

		if err := dec.Decode(target); err != nil {
			return fmt.Errorf("%w: %s: %w", ErrInvalidNode, key, err)
		}

		return nil
	})
	if err != nil {
		return Node{}, err
	}

	return rn.toNode()
}

// openObject consumes the opening delimiter of an object, or fails with
// notObject if the next value is anything else.
func openObject(dec *json.Decoder, notObject error) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}

	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return notObject
	}

	return nil
}

// walkObject calls member for every key of an opened object, in declared
// order. member must consume the value belonging to the key. The closing
// delimiter is consumed once all members were walked.
func walkObject(dec *json.Decoder, member func(key string) error) error {
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}

		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("unexpected token %v", tok)
		}

		if err := member(key); err != nil {
			return err
		}
	}

	_, err := dec.Token()

	return err
}

func (rn rawNode) toNode() (Node, error) {
	if rn.Type == nil {
		return Node{}, fmt.Errorf("%w: missing type", ErrInvalidNode)
	}

	if rn.Status == nil {
		return Node{}, fmt.Errorf("%w: missing status", ErrInvalidNode)
	}

	node := Node{
		Type:   Type(*rn.Type),
		Status: Status(*rn.Status),
	}

	if !node.Type.Known() {
		return Node{}, fmt.Errorf("%w: %q", ErrUnknownType, *rn.Type)
	}

	if rn.Checksum != nil {
		node.Checksum = *rn.Checksum
	}

	return node, nil
}
