// Package main provides the CLI entrypoint for schema-classgen.
//
// schema-classgen is a schema-driven source synthesis tool that:
//   - Loads a JSON-Schema document and a YAML generation config
//   - Resolves each definition's constructor argument shape
//   - Emits wrapper classes (docstring + delegating constructor) into one
//     deterministic module
//   - Reports degradations (ignored keywords, dropped names) as diagnostics
package main

import (
	"bytes"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"schema-classgen/internal/config"
	"schema-classgen/internal/gen"
	"schema-classgen/internal/schema"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "classgen.yaml", "path of the YAML generation config")
	outPath := flag.String("out", "", "override the output path from the config")
	check := flag.Bool("check", false, "verify the output is up to date instead of writing it")
	quiet := flag.Bool("quiet", false, "suppress warning diagnostics")
	flag.Parse()

	cfg, err := config.LoadFile(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "load config:", err)

		return 1
	}

	schemaPath := cfg.Schema
	if !filepath.IsAbs(schemaPath) {
		schemaPath = filepath.Join(filepath.Dir(*configPath), schemaPath)
	}

	doc, err := schema.LoadFile(schemaPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "load schema:", err)

		return 1
	}

	generator := gen.NewGenerator(cfg.GeneratorConfig())

	file, err := generator.Generate(doc)
	if err != nil {
		fmt.Fprintln(os.Stderr, "generate:", err)

		return 1
	}

	diags := generator.Diagnostics()
	if !*quiet {
		for _, d := range diags.All() {
			fmt.Fprintln(os.Stderr, d)
		}
	}

	if diags.HasErrors() {
		return 1
	}

	output := cfg.Output
	if *outPath != "" {
		output = *outPath
	}

	if *check {
		existing, err := os.ReadFile(output)
		if err != nil {
			fmt.Fprintln(os.Stderr, "check:", err)

			return 1
		}

		if !bytes.Equal(existing, file.Content) {
			fmt.Fprintf(os.Stderr, "check: %s is out of date, rerun schema-classgen\n", output)

			return 1
		}

		return 0
	}

	if err := os.WriteFile(output, file.Content, 0o644); err != nil {
		fmt.Fprintln(os.Stderr, "write output:", err)

		return 1
	}

	return 0
}
