package schema

import "errors"

// Kind classifies a schema node into one of five mutually exclusive shapes.
// Classification is tested in declaration order; the first match wins.
type Kind int

//go:generate go tool stringer -type=Kind -trimprefix=Kind

const (
	// KindAllOf is a non-empty logical-AND composition of sub-schemas.
	KindAllOf Kind = iota
	// KindEmpty has no constraining keyword and is treated permissively.
	KindEmpty
	// KindCompound declares anyOf/oneOf without object semantics; the active
	// branch is not statically known, so it is treated permissively.
	KindCompound
	// KindValue declares a scalar, array, or enum type with no properties.
	KindValue
	// KindObject is everything else; properties and required are read
	// directly.
	KindObject
)

// ErrMalformedSchema reports a schema that matches none of the five shapes.
// No sensible constructor exists for it, so generation of that subtree
// aborts.
var ErrMalformedSchema = errors.New("schema shape not understood")

// constrainingKeywords are the keywords whose absence makes a schema empty.
// An allOf keyword holding an empty array constrains nothing and is not
// counted.
var constrainingKeywords = []string{
	"type", "properties", "enum", "$ref", "anyOf", "oneOf",
}

// Kind classifies the schema. Pure and side-effect-free.
func (in Info) Kind() (Kind, error) {
	s := in.node.Schema

	switch {
	case len(in.AllOf()) > 0:
		return KindAllOf, nil
	case in.isEmpty():
		return KindEmpty, nil
	case s.Has("anyOf") || s.Has("oneOf"):
		return KindCompound, nil
	case in.isValue():
		return KindValue, nil
	case in.isObject():
		return KindObject, nil
	}

	return 0, ErrMalformedSchema
}

func (in Info) isEmpty() bool {
	for _, k := range constrainingKeywords {
		if in.node.Schema.Has(k) {
			return false
		}
	}

	return true
}

// isValue reports a scalar/array/enum schema with no object semantics.
func (in Info) isValue() bool {
	s := in.node.Schema

	if s.Has("properties") || s.Has("required") {
		return false
	}

	if s.Has("enum") {
		return true
	}

	switch v, _ := s.Get("type"); t := v.(type) {
	case string:
		return t != "object"
	case []any:
		return true
	}

	return false
}

// isObject reports object semantics: an explicit object type, declared
// properties or requirements, or an opaque $ref.
func (in Info) isObject() bool {
	s := in.node.Schema

	if v, ok := s.Get("type"); ok {
		t, ok := v.(string)

		return ok && t == "object"
	}

	return s.Has("properties") || s.Has("required") ||
		s.Has("additionalProperties") || s.Has("patternProperties") ||
		s.Has("$ref")
}
