package usbdesc

// buildCompositeConfig assembles a synthetic configuration descriptor
// the way a real UAC1.0 microphone + UVC camera composite device would
// lay one out: an audio function (AudioControl interface 0 plus
// AudioStreaming interface 1, two alternate settings) and a video
// function (VideoControl interface 2 plus VideoStreaming interface 3,
// two alternate settings), each wrapped in its own
// InterfaceAssociation, under one Configuration descriptor.
//
// Every wTotalLength field is derived from the actual serialized size of
// its children rather than hand-computed; bNumInterfaces and
// bNumFrameDescriptors are set by hand to match the records built here.
func buildCompositeConfig() []byte {
	// --- AudioControl interface (0, alt 0) ---
	acHeader := UacAcHeader{BcdADC: 0x0100, BaInterfaceNr: []uint8{1}}
	inputTerm := UacInputTerminal{TerminalID: 1, TerminalType: 0x0201, NrChannels: 1, Terminal: 0}
	featureUnit := UacFeatureUnit{UnitID: 2, SourceID: 1, ControlSize: 1, BmaControls: []uint8{0x03, 0x00}}
	outputTerm := UacOutputTerminal{TerminalID: 3, TerminalType: 0x0101, SourceID: 2, Terminal: 0}
	acHeader.WTotalLength = uint16(len(acHeader.Serialize()) + len(inputTerm.Serialize()) + len(featureUnit.Serialize()) + len(outputTerm.Serialize()))

	acIface := Interface{InterfaceNumber: 0, AlternateSetting: 0, NumEndpoints: 0, InterfaceClass: ClassAudio, InterfaceSubClass: UacSubclassAudioControl}
	acBytes := concatBytes(acIface.Serialize(), acHeader.Serialize(), inputTerm.Serialize(), featureUnit.Serialize(), outputTerm.Serialize())

	// --- AudioStreaming interface (1, alt 0 zero-bandwidth / alt 1 active) ---
	asAlt0 := Interface{InterfaceNumber: 1, AlternateSetting: 0, NumEndpoints: 0, InterfaceClass: ClassAudio, InterfaceSubClass: UacSubclassAudioStreaming}
	asAlt1Iface := Interface{InterfaceNumber: 1, AlternateSetting: 1, NumEndpoints: 1, InterfaceClass: ClassAudio, InterfaceSubClass: UacSubclassAudioStreaming}
	asGeneral := UacAsGeneral{TerminalLink: 1, Delay: 1, FormatTag: 1}
	formatI := UacFormatTypeI{NrChannels: 1, SubframeSize: 2, BitResolution: 16, TSamFreq: []uint32{48000}}
	uacEp := UacEndpoint{EndpointAddress: 0x81, Attributes: 0x05, MaxPacketSize: 96, Interval: 1}
	isoEp := UacIsoEndpointDescriptor{Subtype: 1, Attributes: 1}

	asAlt0Bytes := asAlt0.Serialize()
	asAlt1Bytes := concatBytes(asAlt1Iface.Serialize(), asGeneral.Serialize(), formatI.Serialize(), uacEp.Serialize(), isoEp.Serialize())

	audioAssoc := InterfaceAssociation{FirstInterface: 0, InterfaceCount: 2, FunctionClass: ClassAudio}
	audioBytes := concatBytes(audioAssoc.Serialize(), acBytes, asAlt0Bytes, asAlt1Bytes)

	// --- VideoControl interface (2, alt 0) ---
	uvcHeader := UvcHeader{BcdUVC: 0x0150, DwClockFrequency: 48000000, BaInterfaceNr: []uint8{3}}
	vcInTerm := UvcVcInputTerminal{TerminalID: 1, TerminalType: 0x0201, Terminal: 0}
	vcOutTerm := UvcVcOutputTerminal{TerminalID: 2, TerminalType: 0x0101, SourceID: 1, Terminal: 0}
	uvcHeader.WTotalLength = uint16(len(uvcHeader.Serialize()) + len(vcInTerm.Serialize()) + len(vcOutTerm.Serialize()))

	vcIface := Interface{InterfaceNumber: 2, AlternateSetting: 0, NumEndpoints: 0, InterfaceClass: ClassVideo, InterfaceSubClass: UvcSubclassVideoControl}
	vcBytes := concatBytes(vcIface.Serialize(), uvcHeader.Serialize(), vcInTerm.Serialize(), vcOutTerm.Serialize())

	// --- VideoStreaming interface (3, alt 0 zero-bandwidth / alt 1 active) ---
	vsAlt0 := Interface{InterfaceNumber: 3, AlternateSetting: 0, NumEndpoints: 0, InterfaceClass: ClassVideo, InterfaceSubClass: UvcSubclassVideoStreaming}
	vsAlt1Iface := Interface{InterfaceNumber: 3, AlternateSetting: 1, NumEndpoints: 1, InterfaceClass: ClassVideo, InterfaceSubClass: UvcSubclassVideoStreaming}

	formatYUY2 := FormatUncompressed{FormatIndex: 1, NumFrameDescriptors: 2, GUIDFormat: GUIDYUY2, BitsPerPixel: 16, DefaultFrameIndex: 1}
	frame1 := FrameUncompressed{FrameIndex: 1, Width: 1920, Height: 1080, DefaultFrameInterval: 333333, FrameIntervals: []uint32{333333}}
	frame2 := FrameUncompressed{FrameIndex: 2, Width: 640, Height: 480, DefaultFrameInterval: 166666, FrameIntervals: []uint32{166666, 333333}}
	formatMjpeg := FormatMjpeg{FormatIndex: 2, NumFrameDescriptors: 1, DefaultFrameIndex: 1}
	mjpegFrame := FrameMjpeg{FrameIndex: 1, Width: 1280, Height: 720, DefaultFrameInterval: 333333, FrameIntervals: []uint32{333333}}

	inputHeader := UvcInputHeader{EndpointAddress: 0x82, TerminalLink: 1, ControlSize: 1, BmaControls: []uint8{0x00, 0x00}}
	inputHeader.WTotalLength = uint16(len(inputHeader.Serialize()) + len(formatYUY2.Serialize()) + len(frame1.Serialize()) +
		len(frame2.Serialize()) + len(formatMjpeg.Serialize()) + len(mjpegFrame.Serialize()))

	videoEp := Endpoint{EndpointAddress: 0x82, Attributes: 0x05, MaxPacketSize: 1024, Interval: 1}

	vsAlt0Bytes := vsAlt0.Serialize()
	vsAlt1Bytes := concatBytes(vsAlt1Iface.Serialize(), inputHeader.Serialize(), formatYUY2.Serialize(), frame1.Serialize(),
		frame2.Serialize(), formatMjpeg.Serialize(), mjpegFrame.Serialize(), videoEp.Serialize())

	videoAssoc := InterfaceAssociation{FirstInterface: 2, InterfaceCount: 2, FunctionClass: ClassVideo}
	videoBytes := concatBytes(videoAssoc.Serialize(), vcBytes, vsAlt0Bytes, vsAlt1Bytes)

	// --- Configuration wrapper ---
	body := concatBytes(audioBytes, videoBytes)
	cfg := Config{ConfigurationValue: 1, ConfigurationIndex: 0, Attributes: 0x80, MaxPower: 50, NumInterfaces: 4}
	cfg.WTotalLength = uint16(len(cfg.Serialize()) + len(body))

	return concatBytes(cfg.Serialize(), body)
}

func concatBytes(parts ...[]byte) []byte {
	var out []byte
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}
