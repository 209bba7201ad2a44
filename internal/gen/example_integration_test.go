package gen_test

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schema-classgen/internal/config"
	"schema-classgen/internal/gen"
	"schema-classgen/internal/schema"
)

// Generates the checked-in chart example end to end, the same way the CLI
// does.
func TestGenerate_ChartExample(t *testing.T) {
	exampleDir := filepath.Join("..", "..", "examples", "chart")

	cfg, err := config.LoadFile(filepath.Join(exampleDir, "classgen.yaml"))
	require.NoError(t, err)

	doc, err := schema.LoadFile(filepath.Join(exampleDir, cfg.Schema))
	require.NoError(t, err)

	generator := gen.NewGenerator(cfg.GeneratorConfig())

	file, err := generator.Generate(doc)
	require.NoError(t, err)
	require.False(t, generator.Diagnostics().HasErrors())

	content := string(file.Content)

	assert.Equal(t, "chart_schema.py", cfg.Output)
	assert.Contains(t, content, "class Chart(SchemaBase):")
	assert.Contains(t, content, "def __init__(self, mark, encoding=Undefined, height=Undefined,")
	assert.Contains(t, content, "class Mark(SchemaBase):")
	assert.Contains(t, content, "class Encoding(SchemaBase):")
	assert.Contains(t, content, "class FieldDef(SchemaBase):")
	assert.Contains(t, content, "_rootschema = Chart._schema")
	assert.Contains(t, content, "field : string")
	assert.Contains(t, content, "type : Measurement")

	// Every class delegates exactly what it declares.
	assert.Equal(t, strings.Count(content, "def __init__("), strings.Count(content, ".__init__("))

	// Regeneration is byte-identical.
	again, err := gen.NewGenerator(cfg.GeneratorConfig()).Generate(doc)
	require.NoError(t, err)
	assert.Equal(t, file.Content, again.Content)
}
