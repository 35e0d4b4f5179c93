package usbdesc

import (
	"fmt"
	"io"
	"strings"
)

// Descriptor is implemented by every typed record payload this package
// recognizes. Serialize returns the record's full wire encoding,
// including its own {bLength, bDescriptorType[, subtype]} header;
// bLength is always computed from the payload at call time.
type Descriptor interface {
	Serialize() []byte
}

// Node is one element of the parsed descriptor tree: a payload plus its
// ordered children. Order is semantically significant — it is the wire
// order of records within the node's span and controls re-serialization.
type Node struct {
	Parsed   Descriptor
	Children []*Node
}

// rootMarker is the synthetic payload at the top of every tree. It
// carries no bytes of its own; Serialize is only ever called on it by
// accident-proofing code, never in the normal depth-first walk.
type rootMarker struct{}

func (rootMarker) Serialize() []byte { return nil }

func newRoot() *Node {
	return &Node{Parsed: rootMarker{}}
}

func (n *Node) isRoot() bool {
	_, ok := n.Parsed.(rootMarker)
	return ok
}

// shallowClone copies the node's payload but not its children, mirroring
// the clone-then-truncate step each pivot pass performs before
// re-attaching a node under a new parent.
func (n *Node) shallowClone() *Node {
	return &Node{Parsed: n.Parsed}
}

// String renders the tree as a deterministic, indented, depth-first
// dump: one node per line, tab-indented by depth, payload rendered with
// %+v. Used as a golden comparison in tests.
func (n *Node) String() string {
	var sb strings.Builder
	n.Dump(&sb)
	return sb.String()
}

// Dump writes the textual debug form described by String to w.
func (n *Node) Dump(w io.Writer) {
	n.recursiveDump(w, 0)
}

func (n *Node) recursiveDump(w io.Writer, depth int) {
	fmt.Fprintf(w, "%s%+v\n", strings.Repeat("\t", depth), n.Parsed)
	childDepth := depth
	if !n.isRoot() {
		childDepth = depth + 1
	}
	for _, child := range n.Children {
		child.recursiveDump(w, childDepth)
	}
}

// walk visits every node in the subtree, depth-first, pre-order.
func (n *Node) walk(visit func(*Node)) {
	visit(n)
	for _, child := range n.Children {
		child.walk(visit)
	}
}
