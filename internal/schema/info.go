package schema

import "strings"

// Info is a derived, read-only query view over a schema node. All entities
// are constructed fresh per generation run and never mutated.
type Info struct {
	node Node
}

// NewInfo returns the query view for a node.
func NewInfo(node Node) Info {
	return Info{node: node}
}

// Node returns the underlying node.
func (in Info) Node() Node {
	return in.node
}

// Schema returns the raw keyword mapping.
func (in Info) Schema() *Map {
	return in.node.Schema
}

// child wraps a nested fragment, keeping the shared root document.
func (in Info) child(m *Map) Info {
	return Info{node: Node{Schema: m, Root: in.node.Root}}
}

// Description returns the long description, empty when absent.
func (in Info) Description() string {
	s, _ := in.node.Schema.GetString("description")

	return s
}

// Title returns the schema title, empty when absent.
func (in Info) Title() string {
	s, _ := in.node.Schema.GetString("title")

	return s
}

// ShortDescription returns the title when present, else a one-line type
// phrase derived from the constraining keywords.
func (in Info) ShortDescription() string {
	if t := in.Title(); t != "" {
		return t
	}

	return in.typePhrase()
}

func (in Info) typePhrase() string {
	s := in.node.Schema

	if vals, ok := s.GetSlice("enum"); ok {
		parts := make([]string, len(vals))
		for i, v := range vals {
			parts[i] = PyRepr(v)
		}

		return "enum(" + strings.Join(parts, ", ") + ")"
	}

	if ref, ok := s.GetString("$ref"); ok {
		return ref
	}

	switch {
	case s.Has("allOf"):
		return "allOf(...)"
	case s.Has("anyOf"):
		return "anyOf(...)"
	case s.Has("oneOf"):
		return "oneOf(...)"
	}

	if v, ok := s.Get("type"); ok {
		switch t := v.(type) {
		case string:
			return t
		case []any:
			return PyRepr(t)
		}
	}

	if s.Has("properties") {
		return "object"
	}

	return "any"
}

// Property is one declared property with its derived view.
type Property struct {
	Name string
	Info Info
}

// Properties returns the declared properties in document order. A property
// whose schema is not an object is exposed as an empty (permissive) schema.
func (in Info) Properties() []Property {
	props, ok := in.node.Schema.GetMap("properties")
	if !ok {
		return nil
	}

	out := make([]Property, 0, props.Len())

	for _, name := range props.Keys() {
		v, _ := props.Get(name)

		m, ok := v.(*Map)
		if !ok {
			m = &Map{}
		}

		out = append(out, Property{Name: name, Info: in.child(m)})
	}

	return out
}

// Required returns the declared required property names in document order.
// Non-string entries are ignored.
func (in Info) Required() []string {
	arr, ok := in.node.Schema.GetSlice("required")
	if !ok {
		return nil
	}

	out := make([]string, 0, len(arr))

	for _, v := range arr {
		if name, ok := v.(string); ok {
			out = append(out, name)
		}
	}

	return out
}

// AllOf returns the composition branches in document order, nil for
// non-composites. Non-object branches are exposed as empty schemas.
func (in Info) AllOf() []Info {
	arr, ok := in.node.Schema.GetSlice("allOf")
	if !ok {
		return nil
	}

	out := make([]Info, 0, len(arr))

	for _, v := range arr {
		m, ok := v.(*Map)
		if !ok {
			m = &Map{}
		}

		out = append(out, in.child(m))
	}

	return out
}

// AdditionalAllowed reports whether unknown keys may be forwarded through
// the keyword-variadic channel. Only an explicit additionalProperties=false
// disables it; a schema-valued additionalProperties still allows forwarding.
func (in Info) AdditionalAllowed() bool {
	if v, ok := in.node.Schema.Get("additionalProperties"); ok {
		if b, ok := v.(bool); ok {
			return b
		}
	}

	return true
}
