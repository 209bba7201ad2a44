package gen

import (
	"fmt"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"

	"schema-classgen/internal/common"
	"schema-classgen/internal/diagnostic"
	"schema-classgen/internal/schema"
)

// GeneratorConfig holds configuration for module generation.
type GeneratorConfig struct {
	// Filename is the name of the generated file.
	Filename string
	// Header is the first line of the generated file.
	Header string
	// BaseImport is the import statement pulling in the base class and the
	// unset sentinel.
	BaseImport string
	// BaseName is the base class for every generated definition.
	BaseName string
	// RootClass is the classname wrapping the document root.
	RootClass string
	// RootSchemaRef is the snippet embedded as _rootschema in definition
	// classes, referencing the root class's schema instead of inlining the
	// shared document into every class.
	RootSchemaRef string
	// Classes selects and configures the classes to emit; empty means the
	// root class plus every member of the document's "definitions", in
	// document order.
	Classes []ClassSpec
	// Workers bounds parallel class emission; 0 means GOMAXPROCS.
	Workers int
}

// ClassSpec selects one class to generate.
type ClassSpec struct {
	// Classname of the generated class.
	Classname string
	// Definition is the key under the document's "definitions" member; empty
	// means the class wraps the document root.
	Definition string
	// NoDefault names are intercepted by hand-written subclasses and emitted
	// as plain required parameters.
	NoDefault []string
	// SchemaRepr optionally replaces the embedded schema literal with a
	// snippet.
	SchemaRepr string
	// RootSchemaRepr optionally replaces the embedded root schema literal
	// with a snippet.
	RootSchemaRepr string
}

// DefaultGeneratorConfig returns the default generator configuration.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		Filename:      "schema.py",
		Header:        "# Code generated by schema-classgen. DO NOT EDIT.",
		BaseImport:    "from .schemapi import SchemaBase, Undefined",
		BaseName:      "SchemaBase",
		RootClass:     "Root",
		RootSchemaRef: "Root._schema",
	}
}

// GeneratedFile represents a generated source file.
type GeneratedFile struct {
	// Filename is the name of the file (e.g., "schema.py").
	Filename string
	// Content is the assembled source text.
	Content []byte
}

// Generator emits a wrapper-class module for a schema document.
type Generator struct {
	config GeneratorConfig
	diags  diagnostic.Diagnostics
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config GeneratorConfig) *Generator {
	def := DefaultGeneratorConfig()

	if config.Filename == "" {
		config.Filename = def.Filename
	}

	if config.Header == "" {
		config.Header = def.Header
	}

	if config.BaseImport == "" {
		config.BaseImport = def.BaseImport
	}

	if config.BaseName == "" {
		config.BaseName = def.BaseName
	}

	if config.RootClass == "" {
		config.RootClass = def.RootClass
	}

	// The root schema reference follows the root class unless pinned.
	if config.RootSchemaRef == "" {
		config.RootSchemaRef = config.RootClass + "._schema"
	}

	return &Generator{config: config}
}

// Diagnostics returns the findings collected by the last Generate call.
func (g *Generator) Diagnostics() diagnostic.Diagnostics {
	return g.diags
}

// Generate emits the assembled module for the given schema document. Class
// emission runs in parallel across definitions; output ordering follows the
// configuration, independent of scheduling. Generation is all-or-nothing: a
// malformed schema fails the run without emitting a partial file.
func (g *Generator) Generate(doc *schema.Map) (*GeneratedFile, error) {
	g.diags = diagnostic.Diagnostics{}

	specs := g.config.Classes
	if len(specs) == 0 {
		specs = g.defaultSpecs(doc)
	}

	bodies := make([]string, len(specs))
	found := make([]diagnostic.Diagnostics, len(specs))

	workers := g.config.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	eg := new(errgroup.Group)
	eg.SetLimit(workers)

	for i, spec := range specs {
		eg.Go(func() error {
			src, diags, err := g.emitClass(doc, spec)
			if err != nil {
				return err
			}

			bodies[i] = src
			found[i] = diags

			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	for _, diags := range found {
		g.diags.Merge(diags)
	}

	var b strings.Builder
	b.WriteString(g.config.Header)
	b.WriteString("\n\n")
	b.WriteString(g.config.BaseImport)
	b.WriteString("\n")

	for _, body := range bodies {
		b.WriteString(body)
	}

	return &GeneratedFile{
		Filename: g.config.Filename,
		Content:  []byte(b.String()),
	}, nil
}

// defaultSpecs builds the class list for a document with no explicit
// configuration: the root class, then one class per definition in document
// order.
func (g *Generator) defaultSpecs(doc *schema.Map) []ClassSpec {
	specs := []ClassSpec{{Classname: g.config.RootClass}}

	defs, ok := doc.GetMap("definitions")
	if !ok {
		return specs
	}

	for _, name := range defs.Keys() {
		specs = append(specs, ClassSpec{
			Classname:  Classname(name),
			Definition: name,
		})
	}

	return specs
}

// emitClass resolves one spec to a node and generates its class source.
func (g *Generator) emitClass(doc *schema.Map, spec ClassSpec) (string, diagnostic.Diagnostics, error) {
	var diags diagnostic.Diagnostics

	node, err := g.resolveSpec(doc, spec)
	if err != nil {
		return "", diags, err
	}

	opts := ClassOptions{
		BaseName:  g.config.BaseName,
		NoDefault: spec.NoDefault,
	}

	if spec.SchemaRepr != "" {
		opts.SchemaRepr = Snippet(spec.SchemaRepr)
	}

	switch {
	case spec.RootSchemaRepr != "":
		opts.RootSchemaRepr = Snippet(spec.RootSchemaRepr)
	case !node.IsRoot():
		opts.RootSchemaRepr = Snippet(g.config.RootSchemaRef)
	}

	g.inspect(spec.Classname, schema.NewInfo(node), &diags)

	src, err := SchemaClass(spec.Classname, node, opts)
	if err != nil {
		diags.AddError(diagnostic.CodeMalformedSchema, err.Error(), spec.Classname, "")

		return "", diags, fmt.Errorf("generating class %s: %w", spec.Classname, err)
	}

	return src, diags, nil
}

func (g *Generator) resolveSpec(doc *schema.Map, spec ClassSpec) (schema.Node, error) {
	if spec.Definition == "" {
		return schema.NewNode(doc, nil), nil
	}

	defs, ok := doc.GetMap("definitions")
	if !ok {
		return schema.Node{}, fmt.Errorf("document has no definitions member for class %s", spec.Classname)
	}

	def, ok := defs.GetMap(spec.Definition)
	if !ok {
		return schema.Node{}, fmt.Errorf("definition %q not found for class %s", spec.Definition, spec.Classname)
	}

	return schema.NewNode(def, doc), nil
}

// unsupportedKeywords are recognized but do not influence shape resolution.
var unsupportedKeywords = []string{
	"patternProperties", "additionalItems", "dependencies", "propertyNames",
}

// inspect reports the documented degradations for one class: recognized but
// unhandled keywords, and property names excluded from the named argument
// sets. allOf branches are inspected recursively.
func (g *Generator) inspect(classname string, in schema.Info, diags *diagnostic.Diagnostics) {
	for _, kw := range unsupportedKeywords {
		if in.Schema().Has(kw) {
			diags.AddWarning(diagnostic.CodeUnsupportedConstruct,
				fmt.Sprintf("keyword %q is ignored during shape resolution", kw),
				classname, "")
		}
	}

	for _, branch := range in.AllOf() {
		g.inspect(classname, branch, diags)
	}

	flagged := common.NewSet()

	for _, p := range in.Properties() {
		if !common.IsValidIdentifier(p.Name) {
			flagged.Add(p.Name)
			diags.AddWarning(diagnostic.CodeInvalidIdentifier,
				"property is reachable only through **kwds",
				classname, p.Name)
		}
	}

	for _, name := range in.Required() {
		if !common.IsValidIdentifier(name) && !flagged.Has(name) {
			diags.AddWarning(diagnostic.CodeInvalidIdentifier,
				"required name is reachable only through **kwds",
				classname, name)
		}
	}
}

// Classname derives a usable class name from a definition key by dropping
// characters that cannot appear in an identifier.
func Classname(name string) string {
	var b strings.Builder

	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r == '_':
			b.WriteRune(r)
		case r >= '0' && r <= '9':
			if b.Len() == 0 {
				b.WriteByte('_')
			}

			b.WriteRune(r)
		}
	}

	if b.Len() == 0 {
		return "_"
	}

	return b.String()
}
