// Package gen provides deterministic source generation for schema wrapper
// classes.
//
// Each class is a documentation block plus a delegating constructor wrapped
// around an embedded schema literal. Generation is pure text assembly:
// identical input and configuration always produce byte-identical output.
//
// Emission across independent definitions is embarrassingly parallel; the
// generator fans out over an errgroup and reassembles results in
// configuration order.
package gen
