package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_AppliesDefaults(t *testing.T) {
	f, err := Parse([]byte(`
schema: vega-lite-schema.json
`))
	require.NoError(t, err)

	assert.Equal(t, "1", f.Version)
	assert.Equal(t, "schema.py", f.Output)
	assert.Empty(t, f.Classes)
}

func TestParse_FullConfig(t *testing.T) {
	f, err := Parse([]byte(`
version: "1"
schema: vega-lite-schema.json
output: generated/schema.py
basename: VegaLiteSchema
root_class: TopLevel
root_schema_ref: TopLevel._schema
workers: 4
classes:
  - classname: Chart
    nodefault: [data]
  - definition: Axis
  - definition: Box-Plot
    classname: BoxPlot
    schema_repr: "load_schema()['definitions']['Box-Plot']"
`))
	require.NoError(t, err)

	cfg := f.GeneratorConfig()

	assert.Equal(t, "VegaLiteSchema", cfg.BaseName)
	assert.Equal(t, "TopLevel", cfg.RootClass)
	assert.Equal(t, 4, cfg.Workers)

	require.Len(t, cfg.Classes, 3)
	assert.Equal(t, "Chart", cfg.Classes[0].Classname)
	assert.Equal(t, []string{"data"}, cfg.Classes[0].NoDefault)

	// A missing classname is derived from the definition key.
	assert.Equal(t, "Axis", cfg.Classes[1].Classname)
	assert.Equal(t, "Axis", cfg.Classes[1].Definition)

	assert.Equal(t, "BoxPlot", cfg.Classes[2].Classname)
	assert.Equal(t, "load_schema()['definitions']['Box-Plot']", cfg.Classes[2].SchemaRepr)
}

func TestParse_RejectsMissingSchema(t *testing.T) {
	_, err := Parse([]byte(`output: out.py`))

	assert.ErrorContains(t, err, "schema path is required")
}

func TestParse_RejectsAnonymousClassRule(t *testing.T) {
	_, err := Parse([]byte(`
schema: s.json
classes:
  - nodefault: [data]
`))

	assert.ErrorContains(t, err, "needs a definition or a classname")
}

func TestParse_RejectsDuplicateClassnames(t *testing.T) {
	_, err := Parse([]byte(`
schema: s.json
classes:
  - definition: Axis
  - definition: Axis
`))

	assert.ErrorContains(t, err, "duplicate class")
}

func TestParse_RejectsInvalidYAML(t *testing.T) {
	_, err := Parse([]byte(`schema: [unclosed`))

	assert.Error(t, err)
}
