package config

import (
	"fmt"
	"path/filepath"

	"schema-classgen/internal/gen"
)

// File is the root of the YAML generation config.
type File struct {
	// Version of the config schema.
	Version string `yaml:"version"`
	// Schema is the path of the JSON schema document.
	Schema string `yaml:"schema"`
	// Output is the path of the generated module.
	Output string `yaml:"output"`
	// Header is the first line of the generated module.
	Header string `yaml:"header,omitempty"`
	// BaseImport pulls in the base class and the unset sentinel.
	BaseImport string `yaml:"base_import,omitempty"`
	// Basename is the base class of every generated class.
	Basename string `yaml:"basename,omitempty"`
	// RootClass is the classname wrapping the document root.
	RootClass string `yaml:"root_class,omitempty"`
	// RootSchemaRef is the snippet referencing the shared root schema from
	// definition classes.
	RootSchemaRef string `yaml:"root_schema_ref,omitempty"`
	// Workers bounds parallel class emission; 0 means one per CPU.
	Workers int `yaml:"workers,omitempty"`
	// Classes selects and configures the classes to generate; empty means
	// everything in the document.
	Classes []ClassRule `yaml:"classes,omitempty"`
}

// ClassRule pins generation options for one class.
type ClassRule struct {
	// Definition is the key under the document's "definitions"; empty means
	// the document root.
	Definition string `yaml:"definition,omitempty"`
	// Classname overrides the derived class name.
	Classname string `yaml:"classname,omitempty"`
	// NoDefault names are emitted first as plain required parameters.
	NoDefault []string `yaml:"nodefault,omitempty"`
	// SchemaRepr replaces the embedded schema literal with a snippet.
	SchemaRepr string `yaml:"schema_repr,omitempty"`
	// RootSchemaRepr replaces the embedded root schema literal with a
	// snippet.
	RootSchemaRepr string `yaml:"root_schema_repr,omitempty"`
}

// Validate checks the config for contradictions before generation starts.
func (f *File) Validate() error {
	if f.Schema == "" {
		return fmt.Errorf("config: schema path is required")
	}

	seen := map[string]bool{}

	for i, rule := range f.Classes {
		name := rule.Classname
		if name == "" && rule.Definition == "" {
			return fmt.Errorf("config: classes[%d] needs a definition or a classname", i)
		}

		if name == "" {
			name = gen.Classname(rule.Definition)
		}

		if seen[name] {
			return fmt.Errorf("config: duplicate class %q", name)
		}

		seen[name] = true
	}

	return nil
}

// GeneratorConfig translates the file into the generator's configuration.
func (f *File) GeneratorConfig() gen.GeneratorConfig {
	cfg := gen.GeneratorConfig{
		Header:        f.Header,
		BaseImport:    f.BaseImport,
		BaseName:      f.Basename,
		RootClass:     f.RootClass,
		RootSchemaRef: f.RootSchemaRef,
		Workers:       f.Workers,
	}

	if f.Output != "" {
		cfg.Filename = filepath.Base(f.Output)
	}

	for _, rule := range f.Classes {
		name := rule.Classname
		if name == "" {
			name = gen.Classname(rule.Definition)
		}

		cfg.Classes = append(cfg.Classes, gen.ClassSpec{
			Classname:      name,
			Definition:     rule.Definition,
			NoDefault:      rule.NoDefault,
			SchemaRepr:     rule.SchemaRepr,
			RootSchemaRepr: rule.RootSchemaRepr,
		})
	}

	return cfg
}
