package usbdesc

import "testing"

func TestUvcFrameHeaderRoundTrip(t *testing.T) {
	h := NewUvcFrameHeader(true, false)
	h.PresentationTime = 0x11223344
	h.SourceClock = 0x0000AABBCCDDEEFF

	encoded := h.Serialize()
	if len(encoded) != uvcFrameHeaderSize {
		t.Fatalf("Serialize() length = %d, want %d", len(encoded), uvcFrameHeaderSize)
	}

	decoded, err := ParseUvcFrameHeader(encoded)
	if err != nil {
		t.Fatalf("ParseUvcFrameHeader error: %v", err)
	}
	if decoded != h {
		t.Fatalf("round trip mismatch: got %+v, want %+v", decoded, h)
	}
	if decoded.HeaderInfo&0x80 == 0 {
		t.Fatal("header-present bit should always be set")
	}
	if decoded.HeaderInfo&(1<<1) == 0 {
		t.Fatal("EOF bit should be set")
	}
}

func TestParseUvcFrameHeaderRejectsShortInput(t *testing.T) {
	if _, err := ParseUvcFrameHeader([]byte{0x01, 0x02}); err == nil {
		t.Fatal("expected error for a too-short frame header")
	}
}

func TestUvcStreamingControlFps(t *testing.T) {
	raw := make([]byte, 0, 26)
	sc := UvcStreamingControl{FrameInterval: 333333}
	raw = appendU16(raw, sc.BmHint)
	raw = append(raw, sc.FormatIndex, sc.FrameIndex)
	raw = appendU32(raw, sc.FrameInterval)
	raw = appendU16(raw, sc.KeyFrameRate)
	raw = appendU16(raw, sc.PFrameRate)
	raw = appendU16(raw, sc.CompQuality)
	raw = appendU16(raw, sc.CompWindowSize)
	raw = appendU16(raw, sc.Delay)
	raw = appendU32(raw, sc.MaxVideoFrameSize)
	raw = appendU32(raw, sc.MaxPayloadTransferSize)

	parsed, err := ParseUvcStreamingControl(raw)
	if err != nil {
		t.Fatalf("ParseUvcStreamingControl error: %v", err)
	}
	if parsed.FrameInterval != 333333 {
		t.Fatalf("FrameInterval = %d, want 333333", parsed.FrameInterval)
	}
	if fps := parsed.Fps(); fps != 30 {
		t.Fatalf("Fps() = %d, want 30", fps)
	}
}

func TestParseUvcStreamingControlRejectsShortInput(t *testing.T) {
	if _, err := ParseUvcStreamingControl(make([]byte, 10)); err == nil {
		t.Fatal("expected error for a too-short streaming control block")
	}
}

func TestGuidWireFieldRoundTrip(t *testing.T) {
	d1, d2, d3, d4 := guidToWireFields(GUIDYUY2)
	got := guidFromWireFields(d1, d2, d3, d4[:])
	if got != GUIDYUY2 {
		t.Fatalf("guidFromWireFields(guidToWireFields(YUY2)) = %s, want %s", got, GUIDYUY2)
	}
}

func TestFormatUncompressedGuidRoundTrip(t *testing.T) {
	f := FormatUncompressed{FormatIndex: 1, NumFrameDescriptors: 1, GUIDFormat: GUIDNV12, BitsPerPixel: 12, DefaultFrameIndex: 1}
	encoded := f.Serialize()

	c := &cursor{b: encoded[3:]} // skip bLength, bDescriptorType, bDescriptorSubtype
	decoded := parseFormatUncompressed(c)
	if decoded.GUIDFormat != GUIDNV12 {
		t.Fatalf("GUIDFormat = %s, want %s", decoded.GUIDFormat, GUIDNV12)
	}
	if decoded != f {
		t.Fatalf("round trip mismatch: got %+v, want %+v", decoded, f)
	}
}

func TestUvcFactoryDispatchesOnSubtype(t *testing.T) {
	hdr := UvcHeader{BcdUVC: 0x0150, DwClockFrequency: 6000000, BaInterfaceNr: []uint8{1}}
	encoded := hdr.Serialize()

	c := &cursor{b: encoded[2:]} // skip bLength, bDescriptorType; subtype byte is read by uvcIfaceFactory
	parsed := uvcIfaceFactory(c, UvcSubclassVideoControl)
	decoded, ok := parsed.(UvcHeader)
	if !ok {
		t.Fatalf("uvcIfaceFactory returned %T, want UvcHeader", parsed)
	}
	if decoded.DwClockFrequency != 6000000 {
		t.Fatalf("DwClockFrequency = %d, want 6000000", decoded.DwClockFrequency)
	}
}

func TestUvcFactoryPreservesUnknownSubtype(t *testing.T) {
	raw := withSubtype(DescTypeCsInterface, 0x7F, []byte{0x01, 0x02, 0x03})
	c := &cursor{b: raw[2:]}
	parsed := uvcIfaceFactory(c, UvcSubclassVideoControl)
	unk, ok := parsed.(DescriptorUvcVcInterfaceUnknown)
	if !ok {
		t.Fatalf("uvcIfaceFactory returned %T, want DescriptorUvcVcInterfaceUnknown", parsed)
	}
	if unk.IfaceSubclass != 0x7F {
		t.Fatalf("IfaceSubclass = 0x%02x, want 0x7F", unk.IfaceSubclass)
	}
}
