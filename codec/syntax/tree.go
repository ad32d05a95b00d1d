// Package syntax implements the hierarchical tree model that glues the
// H.264 bit codec to its human-readable text representation: an ordered
// forest of named fields, nodes, and opaque payloads.
package syntax

// Element is a SyntaxElement: a Field, a Node, or a Payload.
type Element interface {
	isElement()
}

// Field is a single named signed 32-bit value.
type Field struct {
	Name  string
	Value int32
}

func (*Field) isElement() {}

// Node is a named, ordered sequence of child elements. The root of each
// NAL unit's tree is a Node named "nalu".
type Node struct {
	Name     string
	Children []Element
}

func (*Node) isElement() {}

// NewNode returns an empty Node with the given name.
func NewNode(name string) *Node {
	return &Node{Name: name}
}

// Append adds a child to the end of the node's children, preserving
// bitstream order.
func (n *Node) Append(e Element) {
	n.Children = append(n.Children, e)
}

// PopFront removes and returns the first child, or nil if the node is
// empty. Used by the writer side, which consumes children strictly FIFO.
func (n *Node) PopFront() Element {
	if len(n.Children) == 0 {
		return nil
	}
	e := n.Children[0]
	n.Children = n.Children[1:]
	return e
}

// PeekFront returns the first child without removing it, or nil if empty.
func (n *Node) PeekFront() Element {
	if len(n.Children) == 0 {
		return nil
	}
	return n.Children[0]
}

// Empty reports whether the node has no remaining children. Encode-side
// traversal must leave every consumed node empty; a non-empty node after
// processing means the input tree disagreed with the syntax.
func (n *Node) Empty() bool {
	return len(n.Children) == 0
}

// Payload is a named opaque byte sequence, used for slice bodies, VUI
// parameters, and unparsed/unknown NALU bodies.
type Payload struct {
	Name string
	Data []byte
}

func (*Payload) isElement() {}
