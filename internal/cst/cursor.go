// Package cst exposes Expr source text as a concrete syntax tree.
//
// The grammar itself is defined in grammar.go; consumers are expected to walk
// the tree through a Cursor and never depend on the grammar structs. Node
// kinds are plain strings so that downstream reducers can dispatch on them
// without importing grammar internals.
package cst

// Node is a single concrete-syntax node. From and To are byte offsets into
// the original source text; the node's text is source[From:To] unless the
// lowering stored a normalized form (dotted selectors, whose source extent
// may contain whitespace around the dots).
type Node struct {
	Kind     string
	From     int
	To       int
	Children []*Node

	text   string
	parent *Node
}

// AddChild appends a child and records the parent link.
func (n *Node) AddChild(child *Node) {
	child.parent = n
	n.Children = append(n.Children, child)
}

// Tree is a parsed expression together with the source it was parsed from.
type Tree struct {
	Root   *Node
	Source string
}

// Cursor walks a Tree one node at a time. All navigation methods report
// whether the move succeeded; a failed move leaves the cursor in place.
type Cursor struct {
	tree *Tree
	node *Node
}

// NewCursor returns a cursor positioned at the root of the tree.
func (t *Tree) NewCursor() *Cursor {
	return &Cursor{tree: t, node: t.Root}
}

// Kind returns the kind string of the current node.
func (c *Cursor) Kind() string {
	return c.node.Kind
}

// From returns the start offset of the current node.
func (c *Cursor) From() int {
	return c.node.From
}

// To returns the end offset of the current node.
func (c *Cursor) To() int {
	return c.node.To
}

// Text returns the source text covered by the current node, or the node's
// normalized text when the lowering stored one.
func (c *Cursor) Text() string {
	if c.node.text != "" {
		return c.node.text
	}
	return c.tree.Source[c.node.From:c.node.To]
}

// FirstChild moves to the first child of the current node.
func (c *Cursor) FirstChild() bool {
	if len(c.node.Children) == 0 {
		return false
	}
	c.node = c.node.Children[0]
	return true
}

// NextSibling moves to the next sibling of the current node.
func (c *Cursor) NextSibling() bool {
	p := c.node.parent
	if p == nil {
		return false
	}
	for i, child := range p.Children {
		if child == c.node {
			if i+1 >= len(p.Children) {
				return false
			}
			c.node = p.Children[i+1]
			return true
		}
	}
	return false
}

// Parent moves to the parent of the current node.
func (c *Cursor) Parent() bool {
	if c.node.parent == nil {
		return false
	}
	c.node = c.node.parent
	return true
}

// Clone returns an independent cursor at the same position.
func (c *Cursor) Clone() *Cursor {
	return &Cursor{tree: c.tree, node: c.node}
}
