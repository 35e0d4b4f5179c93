package usbdesc

// The six pivot passes below turn the flat record list parseList
// produces into the nested tree the rest of this package operates on.
// Order matters: each pass assumes the grouping the previous one
// established. A record's nesting is never present on the wire — it is
// entirely reconstructed from length fields (wTotalLength) and
// positional conventions (an alternate setting immediately follows its
// interface's primary descriptor, an association's member interfaces
// immediately follow it, a frame descriptor immediately follows the
// format it belongs to).

// pivotCfgDesc gathers every record following a Configuration
// descriptor, up to wTotalLength bytes, as that Config node's children.
func pivotCfgDesc(flat *Node) *Node {
	newRoot := newRoot()
	spanIdx := -1
	bytesRemaining := 0

	for _, child := range flat.Children {
		if cfg, ok := child.Parsed.(Config); ok {
			newRoot.Children = append(newRoot.Children, child)
			spanIdx = len(newRoot.Children) - 1
			bytesRemaining = int(cfg.WTotalLength)
			continue
		}
		if spanIdx >= 0 && bytesRemaining > 0 {
			newRoot.Children[spanIdx].Children = append(newRoot.Children[spanIdx].Children, child)
			bytesRemaining -= len(child.Parsed.Serialize())
			continue
		}
		newRoot.Children = append(newRoot.Children, child)
	}
	return newRoot
}

// pivotIfaceChildren gathers the class-specific interface/endpoint
// descriptors that belong to each Interface under that Interface node.
// An InterfaceAssociation never gathers children at this stage
// (pivotIfaceAssoc handles that, once whole Interface subtrees exist to
// group); it only ends whatever Interface span was open.
func pivotIfaceChildren(node *Node) *Node {
	newNode := node.shallowClone()
	spanIdx := -1

	for _, raw := range node.Children {
		child := pivotIfaceChildren(raw)
		switch child.Parsed.(type) {
		case Interface:
			newNode.Children = append(newNode.Children, child)
			spanIdx = len(newNode.Children) - 1
		case InterfaceAssociation:
			newNode.Children = append(newNode.Children, child)
			spanIdx = -1
		default:
			if spanIdx >= 0 {
				newNode.Children[spanIdx].Children = append(newNode.Children[spanIdx].Children, child)
			} else {
				newNode.Children = append(newNode.Children, child)
			}
		}
	}
	return newNode
}

// pivotAltSettings folds an interface's alternate settings (additional
// Interface records sharing its InterfaceNumber) under the first
// (primary, AlternateSetting 0) occurrence.
func pivotAltSettings(node *Node) *Node {
	newNode := node.shallowClone()
	spanIdx := -1
	var spanIfaceNum uint8

	for _, raw := range node.Children {
		child := pivotAltSettings(raw)
		if iface, ok := child.Parsed.(Interface); ok {
			if spanIdx >= 0 && iface.InterfaceNumber == spanIfaceNum {
				newNode.Children[spanIdx].Children = append(newNode.Children[spanIdx].Children, child)
				continue
			}
			newNode.Children = append(newNode.Children, child)
			spanIdx = len(newNode.Children) - 1
			spanIfaceNum = iface.InterfaceNumber
			continue
		}
		if _, ok := child.Parsed.(InterfaceAssociation); ok {
			spanIdx = -1
		}
		newNode.Children = append(newNode.Children, child)
	}
	return newNode
}

// pivotUvcInputHdr gathers the format/frame descriptors that follow a
// UVC input header, up to its own wTotalLength, as that header's
// children.
func pivotUvcInputHdr(node *Node) *Node {
	children := make([]*Node, len(node.Children))
	for i, c := range node.Children {
		children[i] = pivotUvcInputHdr(c)
	}

	newNode := node.shallowClone()
	spanIdx := -1
	bytesRemaining := 0

	for _, child := range children {
		if hdr, ok := child.Parsed.(UvcInputHeader); ok {
			newNode.Children = append(newNode.Children, child)
			spanIdx = len(newNode.Children) - 1
			bytesRemaining = int(hdr.WTotalLength) - hdr.size()
			continue
		}
		if spanIdx >= 0 && bytesRemaining > 0 {
			newNode.Children[spanIdx].Children = append(newNode.Children[spanIdx].Children, child)
			bytesRemaining -= len(child.Parsed.Serialize())
			continue
		}
		newNode.Children = append(newNode.Children, child)
	}
	return newNode
}

// pivotIfaceAssoc gathers the member interfaces of an
// InterfaceAssociation (by this point fully-formed Interface subtrees,
// sitting as flat siblings) under that association, as long as their
// interface number falls within [FirstInterface, LastInterface].
func pivotIfaceAssoc(node *Node) *Node {
	newNode := node.shallowClone()
	spanIdx := -1

	for _, raw := range node.Children {
		child := pivotIfaceAssoc(raw)

		if _, ok := child.Parsed.(InterfaceAssociation); ok {
			newNode.Children = append(newNode.Children, child)
			spanIdx = len(newNode.Children) - 1
			continue
		}

		if spanIdx >= 0 {
			assoc := newNode.Children[spanIdx].Parsed.(InterfaceAssociation)
			if iface, ok := child.Parsed.(Interface); ok && iface.InterfaceNumber >= assoc.FirstInterface && iface.InterfaceNumber <= assoc.LastInterface() {
				newNode.Children[spanIdx].Children = append(newNode.Children[spanIdx].Children, child)
				continue
			}
			spanIdx = -1
		}
		newNode.Children = append(newNode.Children, child)
	}
	return newNode
}

// pivotUvcFmtHdr gathers the frame descriptors following a UVC format
// descriptor (and any opaque VideoStreaming record riding along with
// them) under that format, stopping at the first child that isn't one
// of its frames.
func pivotUvcFmtHdr(node *Node) *Node {
	children := make([]*Node, len(node.Children))
	for i, c := range node.Children {
		children[i] = pivotUvcFmtHdr(c)
	}

	newNode := node.shallowClone()
	spanIdx := -1

	for _, child := range children {
		if spanIdx >= 0 && isUvcFormatChild(child.Parsed) {
			newNode.Children[spanIdx].Children = append(newNode.Children[spanIdx].Children, child)
			continue
		}
		spanIdx = -1
		newNode.Children = append(newNode.Children, child)
		if isUvcFormat(child.Parsed) {
			spanIdx = len(newNode.Children) - 1
		}
	}
	return newNode
}

func isUvcFormat(d Descriptor) bool {
	switch d.(type) {
	case FormatMjpeg, FormatUncompressed, UvcFormatFrameBased:
		return true
	default:
		return false
	}
}

func isUvcFormatChild(d Descriptor) bool {
	switch d.(type) {
	case FrameMjpeg, FrameUncompressed, UvcFrameFrameBased, DescriptorUvcVsInterfaceUnknown:
		return true
	default:
		return false
	}
}
