package nftmeta

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// NodeType is the Figma layer type of a node.
type NodeType string

// NodeType constants used by trait extraction. Any other value (GROUP,
// TEXT, VECTOR, ...) is valid input and treated as an opaque leaf.
const (
	NodeTypeDocument  NodeType = "DOCUMENT"
	NodeTypeCanvas    NodeType = "CANVAS"
	NodeTypeFrame     NodeType = "FRAME"
	NodeTypeComponent NodeType = "COMPONENT"
	NodeTypeInstance  NodeType = "INSTANCE"
)

// IsComponent reports whether nodes of this type carry trait properties.
func (t NodeType) IsComponent() bool {
	return t == NodeTypeComponent || t == NodeTypeInstance
}

// File is the response of the Figma "get file" endpoint.
type File struct {
	Name         string `json:"name"`
	LastModified string `json:"lastModified"`
	Version      string `json:"version"`
	Document     *Node  `json:"document"`
}

// Pages returns the top-level pages (canvases) of the file in document order.
func (f *File) Pages() []*Node {
	if f == nil || f.Document == nil {
		return nil
	}
	return f.Document.Children
}

// Page returns the page at the given zero-based index.
// Returns ENOTFOUND if the index does not address an existing page.
func (f *File) Page(index int) (*Node, error) {
	pages := f.Pages()
	if index < 0 || index >= len(pages) || pages[index] == nil {
		return nil, Errorf(ENOTFOUND, "page %d not found in the Figma file (file has %d pages)", index, len(pages))
	}
	return pages[index], nil
}

// Node is a single layer in the Figma document tree.
// The tree is read-only input: nothing in this package mutates it.
type Node struct {
	ID                  string              `json:"id,omitempty"`
	Name                string              `json:"name"`
	Type                NodeType            `json:"type"`
	Children            []*Node             `json:"children,omitempty"`
	ComponentProperties ComponentProperties `json:"componentProperties,omitempty"`
}

// ComponentProperty is one entry of a node's componentProperties object.
type ComponentProperty struct {
	Name  string
	Value PropertyValue
}

// ComponentProperties holds the component properties of a node in the order
// they appear in the API response. Trait extraction reads the first entry,
// so the wire order must survive decoding; a Go map would lose it.
type ComponentProperties []ComponentProperty

// First returns the first property in document order.
func (p ComponentProperties) First() (ComponentProperty, bool) {
	if len(p) == 0 {
		return ComponentProperty{}, false
	}
	return p[0], true
}

// UnmarshalJSON decodes a JSON object while keeping its key order.
func (p *ComponentProperties) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		*p = nil
		return nil
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("componentProperties: expected object, got %v", tok)
	}

	var props ComponentProperties
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		name, ok := tok.(string)
		if !ok {
			return fmt.Errorf("componentProperties: expected key, got %v", tok)
		}

		var value PropertyValue
		if err := dec.Decode(&value); err != nil {
			return fmt.Errorf("componentProperties[%q]: %w", name, err)
		}
		props = append(props, ComponentProperty{Name: name, Value: value})
	}

	if _, err := dec.Token(); err != nil {
		return err
	}

	*p = props
	return nil
}

// MarshalJSON encodes the properties as a JSON object in slice order.
func (p ComponentProperties) MarshalJSON() ([]byte, error) {
	if p == nil {
		return []byte("null"), nil
	}

	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, prop := range p {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(prop.Name)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(prop.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// PropertyValue is the value object of a component property.
// Figma sends strings for VARIANT and TEXT properties and booleans for
// BOOLEAN properties; Value always holds the textual form.
type PropertyValue struct {
	Type  string `json:"type,omitempty"`
	Value string `json:"value"`
}

// UnmarshalJSON accepts any JSON scalar for the value field.
func (v *PropertyValue) UnmarshalJSON(data []byte) error {
	var raw struct {
		Type  string          `json:"type"`
		Value json.RawMessage `json:"value"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	v.Type = raw.Type
	v.Value = ""

	text := strings.TrimSpace(string(raw.Value))
	switch {
	case text == "" || text == "null":
	case strings.HasPrefix(text, `"`):
		if err := json.Unmarshal(raw.Value, &v.Value); err != nil {
			return err
		}
	default:
		v.Value = text
	}
	return nil
}
