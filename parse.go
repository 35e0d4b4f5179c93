package usbdesc

// Parse decodes a complete USB configuration descriptor blob (the
// concatenation of a Configuration descriptor with every Interface,
// Endpoint and class-specific descriptor that follows it) into a
// Node tree. Parsing never fails outright: a truncated trailing record
// is logged and dropped, yielding a partial tree, and unrecognized
// descriptor types/subtypes are preserved as opaque records rather
// than rejected.
func Parse(data []byte) *Node {
	flat := parseList(data)
	root := pivotCfgDesc(flat)
	root = pivotIfaceChildren(root)
	root = pivotAltSettings(root)
	root = pivotUvcInputHdr(root)
	root = pivotIfaceAssoc(root)
	root = pivotUvcFmtHdr(root)
	return root
}

// parseList tokenizes the flat byte stream into a single level of leaf
// nodes (no nesting yet; that is reconstructed by the pivot passes in
// pivot.go). class/subclass track the most recently parsed Interface's
// classification so class-specific records can be classified correctly.
func parseList(data []byte) *Node {
	root := newRoot()
	var class, subclass uint8

	for len(data) > 0 {
		if len(data) < headerSize {
			logTruncated(headerSize, len(data), 0)
			break
		}
		hdr := decodeHeader(data)
		if hdr.Length < headerSize {
			logTruncated(headerSize, len(data), hdr.Type)
			break
		}
		payloadLen := int(hdr.Length) - headerSize
		if len(data) < headerSize+payloadLen {
			logTruncated(headerSize+payloadLen, len(data), hdr.Type)
			break
		}

		payload := data[headerSize : headerSize+payloadLen]
		data = data[headerSize+payloadLen:]

		c := &cursor{b: payload}
		parsed := nodeFactory(c, payload, hdr.Type, &class, &subclass)
		if c.len() > 0 {
			logTrailingBytes(c.len(), hdr.Type)
		}

		root.Children = append(root.Children, &Node{Parsed: parsed})
	}

	return root
}
