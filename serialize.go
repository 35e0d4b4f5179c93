package usbdesc

// Serialize encodes the subtree rooted at n back to its wire form: this
// node's own record bytes, if any (the synthetic root emits none),
// followed by each child's bytes in order. Order is significant — it is
// the same depth-first order Parse reconstructs from wTotalLength
// spans, and is what makes round-tripping byte-exact.
func (n *Node) Serialize() []byte {
	var out []byte
	if !n.isRoot() {
		out = append(out, n.Parsed.Serialize()...)
	}
	for _, child := range n.Children {
		out = append(out, child.Serialize()...)
	}
	return out
}
