package schema

// Node pairs a schema fragment with the root document it belongs to. Both
// sides are immutable after construction and safe to share across
// concurrent emissions.
type Node struct {
	Schema *Map
	Root   *Map
}

// NewNode returns a Node for the given fragment. A nil root means the
// fragment is its own root document.
func NewNode(s, root *Map) Node {
	if root == nil {
		root = s
	}

	return Node{Schema: s, Root: root}
}

// IsRoot reports whether the fragment is the root document itself.
func (n Node) IsRoot() bool {
	return n.Schema == n.Root
}
