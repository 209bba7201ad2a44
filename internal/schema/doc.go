// Package schema provides JSON-Schema document loading and introspection.
//
// It builds a canonical in-memory model of a schema document with member
// order preserved, and classifies each node into one of five mutually
// exclusive shapes that drive constructor generation.
//
// Key types:
//   - Map: immutable keyword->value mapping in document order
//   - Node: a schema fragment paired with its root document
//   - Info: read-only query view (properties, required, descriptions, allOf)
//   - Kind: the five-way shape classification
package schema
