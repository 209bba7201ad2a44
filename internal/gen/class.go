package gen

import (
	"fmt"

	"schema-classgen/internal/schema"
)

// Snippet is raw source text embedded verbatim in place of a schema
// literal, e.g. a reference to a predefined shared object.
type Snippet string

// ClassOptions configures SchemaClass emission.
type ClassOptions struct {
	// BaseName is the base class of the generated definition; defaults to
	// "SchemaBase".
	BaseName string
	// NoDefault names are emitted first as plain required parameters.
	NoDefault []string
	// SchemaRepr overrides how the embedded schema literal renders. It may
	// be a Snippet or any schema value; nil embeds the node's own schema.
	SchemaRepr any
	// RootSchemaRepr overrides the embedded root schema literal. When nil
	// and the node is the document root, the back-reference "_schema" is
	// substituted instead of duplicating the literal.
	RootSchemaRepr any
}

const classTemplate = `
class %s(%s):
    """%s"""
    _schema = %s
    _rootschema = %s

    %s
`

// SchemaClass generates the complete class definition for a schema node:
// embedded schema literals, documentation block, and delegating
// constructor. Emission is all-or-nothing; a shape-resolution failure
// yields no partial source.
func SchemaClass(classname string, node schema.Node, opts ClassOptions) (string, error) {
	basename := opts.BaseName
	if basename == "" {
		basename = "SchemaBase"
	}

	schemaRepr := opts.SchemaRepr
	if schemaRepr == nil {
		schemaRepr = node.Schema
	}

	rootRepr := opts.RootSchemaRepr
	if rootRepr == nil {
		if node.IsRoot() {
			rootRepr = Snippet("_schema")
		} else {
			rootRepr = node.Root
		}
	}

	initCode, err := InitCode(classname, node, 4, opts.NoDefault)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf(classTemplate,
		classname,
		basename,
		Docstring(classname, schema.NewInfo(node), 4),
		repr(schemaRepr),
		repr(rootRepr),
		initCode,
	), nil
}

func repr(v any) string {
	if s, ok := v.(Snippet); ok {
		return string(s)
	}

	return schema.PyRepr(v)
}
