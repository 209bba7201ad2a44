package gen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schema-classgen/internal/schema"
)

func TestSchemaClass_RootSchemaBackReference(t *testing.T) {
	doc := schema.MustParse([]byte(`{"type": "object", "properties": {"a": {}}, "required": ["a"]}`))

	got, err := SchemaClass("Config", schema.NewNode(doc, nil), ClassOptions{})
	require.NoError(t, err)

	want := strings.Join([]string{
		"",
		"class Config(SchemaBase):",
		`    """Config schema wrapper`,
		"    ",
		"    Attributes",
		"    ----------",
		"    a : any",
		`    """`,
		"    _schema = {'type': 'object', 'properties': {'a': {}}, 'required': ['a']}",
		"    _rootschema = _schema",
		"",
		"    def __init__(self, a=Undefined, **kwds):",
		"        super(Config, self).__init__(a=a, **kwds)",
		"    ",
		"",
	}, "\n")

	assert.Equal(t, want, got)
}

func TestSchemaClass_DefinitionInlinesRootByDefault(t *testing.T) {
	doc := schema.MustParse([]byte(`{"definitions": {"Axis": {"type": "object", "properties": {"grid": {}}}}}`))

	defs, ok := doc.GetMap("definitions")
	require.True(t, ok)

	axis, ok := defs.GetMap("Axis")
	require.True(t, ok)

	got, err := SchemaClass("Axis", schema.NewNode(axis, doc), ClassOptions{})
	require.NoError(t, err)

	assert.Contains(t, got, "_schema = {'type': 'object', 'properties': {'grid': {}}}")
	assert.Contains(t, got,
		"_rootschema = {'definitions': {'Axis': {'type': 'object', 'properties': {'grid': {}}}}}")
}

func TestSchemaClass_SnippetOverrides(t *testing.T) {
	doc := schema.MustParse([]byte(`{"definitions": {"Axis": {"type": "object"}}}`))

	defs, _ := doc.GetMap("definitions")
	axis, _ := defs.GetMap("Axis")

	got, err := SchemaClass("Axis", schema.NewNode(axis, doc), ClassOptions{
		SchemaRepr:     Snippet(`load_schema()['definitions']['Axis']`),
		RootSchemaRepr: Snippet("Root._schema"),
	})
	require.NoError(t, err)

	assert.Contains(t, got, "_schema = load_schema()['definitions']['Axis']")
	assert.Contains(t, got, "_rootschema = Root._schema")
	assert.NotContains(t, got, "_schema = {'type': 'object'}")
}

func TestSchemaClass_CustomBaseName(t *testing.T) {
	doc := schema.MustParse([]byte(`{"type": "string"}`))

	got, err := SchemaClass("Mark", schema.NewNode(doc, nil), ClassOptions{BaseName: "VegaLiteSchema"})
	require.NoError(t, err)

	assert.Contains(t, got, "class Mark(VegaLiteSchema):")
}

func TestSchemaClass_NoDefaultFlowsThrough(t *testing.T) {
	doc := schema.MustParse([]byte(`{"type": "object", "properties": {"data": {}, "mark": {}}}`))

	got, err := SchemaClass("Chart", schema.NewNode(doc, nil), ClassOptions{NoDefault: []string{"data"}})
	require.NoError(t, err)

	assert.Contains(t, got, "def __init__(self, data, mark=Undefined, **kwds):")
	assert.Contains(t, got, "super(Chart, self).__init__(data=data, mark=mark, **kwds)")
}

func TestSchemaClass_Idempotent(t *testing.T) {
	doc := schema.MustParse([]byte(`{
		"description": "A chart definition.",
		"type": "object",
		"properties": {"width": {"type": "number"}, "height": {"type": "number"}}
	}`))

	first, err := SchemaClass("Chart", schema.NewNode(doc, nil), ClassOptions{})
	require.NoError(t, err)

	second, err := SchemaClass("Chart", schema.NewNode(doc, nil), ClassOptions{})
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestSchemaClass_MalformedSchemaEmitsNothing(t *testing.T) {
	doc := schema.MustParse([]byte(`{"type": 5}`))

	got, err := SchemaClass("Broken", schema.NewNode(doc, nil), ClassOptions{})

	assert.ErrorIs(t, err, schema.ErrMalformedSchema)
	assert.Empty(t, got)
}
