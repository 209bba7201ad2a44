// Package shape reduces a classified schema to its constructor argument
// shape.
//
// Resolution is recursive over the five schema kinds. Composites combine
// their branches with logical AND for the variadic channels and union for
// the named-argument sets; permissive kinds accept anything; value kinds
// accept a single positional value; object kinds read properties/required
// directly. Non-identifier property names are dropped from the named sets
// and stay reachable only through the additional-properties channel.
package shape
