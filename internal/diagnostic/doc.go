// Package diagnostic collects non-fatal findings from schema generation.
//
// Recognized-but-unhandled keywords and dropped property names degrade the
// generated constructor instead of failing the run; diagnostics keep those
// degradations visible to the driving tool.
package diagnostic
