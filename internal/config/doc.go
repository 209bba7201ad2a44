// Package config provides the YAML generation config: which schema document
// to read, where the generated module goes, and per-class overrides.
//
// YAML is a first-class feature that turns a generation run into a pinned,
// reviewable artifact: regeneration with the same config and schema is
// byte-identical.
package config
