package usbdesc

// nodeFactory builds the typed payload for one flat record. class and
// subclass are threaded in/out by the caller (parseList in parse.go):
// they carry the most recently seen Interface's class/subclass forward
// so that class-specific records (CsInterface/CsEndpoint/9-byte
// Endpoint) can be classified without re-walking the tree, and are
// updated in place whenever this call parses a new Interface record.
func nodeFactory(c *cursor, payload []byte, descType uint8, class, subclass *uint8) Descriptor {
	switch descType {
	case DescTypeCsDevice:
		logUnknownDescriptorType(descType)
		return CsDevice{Bytes: append([]byte(nil), payload...)}

	case DescTypeConfig:
		return parseConfig(c)

	case DescTypeInterfaceAssociation:
		return parseInterfaceAssociation(c)

	case DescTypeInterface:
		iface := parseInterface(c)
		*class = iface.InterfaceClass
		*subclass = iface.InterfaceSubClass
		return iface

	case DescTypeCsInterface:
		switch *class {
		case ClassVideo:
			return uvcIfaceFactory(c, *subclass)
		case ClassAudio:
			return uacIfaceFactory(c, *subclass)
		default:
			logUnknownSubtype("CsInterface", *class, *subclass, 0)
			return CsInterfaceOpaque{Bytes: append([]byte(nil), payload...)}
		}

	case DescTypeCsEndpoint:
		if *class == ClassAudio {
			return uacEpFactory(c, *subclass)
		}
		logUnknownSubtype("CsEndpoint", *class, *subclass, 0)
		return CsEndpointOpaque{Bytes: append([]byte(nil), payload...)}

	case DescTypeEndpoint:
		if *class == ClassAudio && len(payload)+headerSize == 9 {
			return parseUacEndpoint(c)
		}
		return parseEndpoint(c)

	case DescTypeSuperSpeedEpComp:
		return parseSsEpComp(c)

	case DescTypeSuperSpeedPlusIsoComp:
		return parseSspIsochEpComp(c)

	default:
		logUnknownDescriptorType(descType)
		return Unknown{DescType: descType, Bytes: append([]byte(nil), payload...)}
	}
}

// uvcIfaceFactory dispatches a VideoControl/VideoStreaming
// class-specific interface record on the UVC descriptor subtype byte,
// which is read here (not by the caller) since it belongs to the
// class-specific payload, not the generic record header.
func uvcIfaceFactory(c *cursor, subclass uint8) Descriptor {
	ifaceSubtype := c.u8()
	switch subclass {
	case UvcSubclassVideoStreaming:
		switch ifaceSubtype {
		case uvcVsSubtypeInputHeader:
			return parseUvcInputHeader(c)
		case uvcVsSubtypeFormatUncompressed:
			return parseFormatUncompressed(c)
		case uvcVsSubtypeFormatMjpeg:
			return parseFormatMjpeg(c)
		case uvcVsSubtypeFrameUncompressed:
			return parseFrameUncompressed(c)
		case uvcVsSubtypeFrameMjpeg:
			return parseFrameMjpeg(c)
		case uvcVsSubtypeFormatFrameBased:
			return parseUvcFormatFrameBased(c)
		case uvcVsSubtypeFrameFrameBased:
			return parseUvcFrameFrameBased(c)
		default:
			logUnknownSubtype("UvcVideoStreaming", ClassVideo, subclass, ifaceSubtype)
			return DescriptorUvcVsInterfaceUnknown{IfaceSubclass: ifaceSubtype, Bytes: append([]byte(nil), c.rest()...)}
		}

	case UvcSubclassVideoControl:
		switch ifaceSubtype {
		case uvcVcSubtypeHeader:
			return parseUvcHeader(c)
		case uvcVcSubtypeInputTerminal:
			return parseUvcVcInputTerminal(c)
		case uvcVcSubtypeProcessingUnit:
			return parseUvcVcProcessingUnit(c)
		case uvcVcSubtypeExtensionUnit:
			return parseUvcVcExtensionUnit(c)
		case uvcVcSubtypeOutputTerminal:
			return parseUvcVcOutputTerminal(c)
		default:
			logUnknownSubtype("UvcVideoControl", ClassVideo, subclass, ifaceSubtype)
			return DescriptorUvcVcInterfaceUnknown{IfaceSubclass: ifaceSubtype, Bytes: append([]byte(nil), c.rest()...)}
		}

	default:
		logUnknownSubtype("CsInterface", ClassVideo, subclass, ifaceSubtype)
		return CsInterfaceOpaque{Bytes: append([]byte{ifaceSubtype}, c.rest()...)}
	}
}

// uacIfaceFactory dispatches an AudioControl/AudioStreaming
// class-specific interface record on the UAC descriptor subtype byte.
func uacIfaceFactory(c *cursor, subclass uint8) Descriptor {
	switch subclass {
	case UacSubclassAudioControl:
		ifaceSubtype := c.u8()
		switch ifaceSubtype {
		case uacSubtypeHeader:
			return parseUacAcHeader(c)
		case uacSubtypeInputTerminal:
			return parseUacInputTerminal(c)
		case uacSubtypeFeatureUnit:
			return parseUacFeatureUnit(c)
		case uacSubtypeOutputTerminal:
			return parseUacOutputTerminal(c)
		default:
			logUnknownSubtype("UacAudioControl", ClassAudio, subclass, ifaceSubtype)
			return DescriptorUacInterfaceUnknown{IfaceSubclass: ifaceSubtype, Bytes: append([]byte(nil), c.rest()...)}
		}

	case UacSubclassAudioStreaming:
		ifaceSubtype := c.u8()
		switch ifaceSubtype {
		case uacIfaceSubtypeGeneral:
			return parseUacAsGeneral(c)
		case uacIfaceSubtypeFormatType:
			return uacFmtFactory(c)
		default:
			logUnknownSubtype("UacAudioStreaming", ClassAudio, subclass, ifaceSubtype)
			return DescriptorUacInterfaceUnknown{IfaceSubclass: ifaceSubtype, Bytes: append([]byte(nil), c.rest()...)}
		}

	default:
		logUnknownSubtype("CsInterface", ClassAudio, subclass, 0)
		return CsInterfaceOpaque{Bytes: append([]byte(nil), c.rest()...)}
	}
}

// uacFmtFactory dispatches a format-type descriptor on its leading
// format-tag byte.
func uacFmtFactory(c *cursor) Descriptor {
	formatType := c.u8()
	if formatType == uacFormatTypePCM {
		return parseUacFormatTypeI(c)
	}
	return UacFormatTypeUnknown{FormatType: formatType, Bytes: append([]byte(nil), c.rest()...)}
}

// uacEpFactory dispatches a class-specific endpoint descriptor. Only
// AudioStreaming endpoints get a dedicated family; this does not check
// that the underlying endpoint is actually isochronous before treating
// it as one.
func uacEpFactory(c *cursor, subclass uint8) Descriptor {
	if subclass == UacSubclassAudioStreaming {
		return parseUacIsoEndpointDescriptor(c)
	}
	logUnknownSubtype("CsEndpoint", ClassAudio, subclass, 0)
	return CsEndpointOpaque{Bytes: append([]byte(nil), c.rest()...)}
}
