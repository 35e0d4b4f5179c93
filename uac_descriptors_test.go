package usbdesc

import (
	"reflect"
	"testing"
)

func TestUacFeatureUnitRoundTrip(t *testing.T) {
	fu := UacFeatureUnit{UnitID: 2, SourceID: 1, ControlSize: 1, BmaControls: []uint8{0x01, 0x02, 0x03}}
	encoded := fu.Serialize()

	c := &cursor{b: encoded[3:]} // skip bLength, bDescriptorType, bDescriptorSubtype
	decoded := parseUacFeatureUnit(c)
	if decoded.UnitID != fu.UnitID || decoded.SourceID != fu.SourceID || decoded.ControlSize != fu.ControlSize {
		t.Fatalf("round trip mismatch: got %+v, want %+v", decoded, fu)
	}
	if string(decoded.BmaControls) != string(fu.BmaControls) {
		t.Fatalf("BmaControls = % x, want % x", decoded.BmaControls, fu.BmaControls)
	}
}

func TestUacFormatTypeIRoundTrip(t *testing.T) {
	ft := UacFormatTypeI{NrChannels: 2, SubframeSize: 2, BitResolution: 16, TSamFreq: []uint32{44100, 48000}}
	encoded := ft.Serialize()

	c := &cursor{b: encoded[4:]} // skip bLength, bDescriptorType, bDescriptorSubtype, bFormatType
	decoded := parseUacFormatTypeI(c)
	if !reflect.DeepEqual(decoded, ft.clone()) {
		t.Fatalf("round trip mismatch: got %+v, want %+v", decoded, ft)
	}
}

func (d UacFormatTypeI) clone() UacFormatTypeI {
	return UacFormatTypeI{NrChannels: d.NrChannels, SubframeSize: d.SubframeSize, BitResolution: d.BitResolution, TSamFreq: append([]uint32(nil), d.TSamFreq...)}
}

func TestUacIfaceFactoryDispatchesOnSubtype(t *testing.T) {
	hdr := UacAcHeader{BcdADC: 0x0100, WTotalLength: 0x002A, BaInterfaceNr: []uint8{1}}
	encoded := hdr.Serialize()

	c := &cursor{b: encoded[2:]} // subtype byte is read by uacIfaceFactory
	parsed := uacIfaceFactory(c, UacSubclassAudioControl)
	decoded, ok := parsed.(UacAcHeader)
	if !ok {
		t.Fatalf("uacIfaceFactory returned %T, want UacAcHeader", parsed)
	}
	if decoded.BcdADC != 0x0100 {
		t.Fatalf("BcdADC = 0x%04x, want 0x0100", decoded.BcdADC)
	}
}

func TestUacIfaceFactoryPreservesUnknownSubtype(t *testing.T) {
	raw := withSubtype(DescTypeCsInterface, 0x7F, []byte{0x01, 0x02})
	c := &cursor{b: raw[2:]}
	parsed := uacIfaceFactory(c, UacSubclassAudioControl)
	unk, ok := parsed.(DescriptorUacInterfaceUnknown)
	if !ok {
		t.Fatalf("uacIfaceFactory returned %T, want DescriptorUacInterfaceUnknown", parsed)
	}
	if unk.IfaceSubclass != 0x7F {
		t.Fatalf("IfaceSubclass = 0x%02x, want 0x7F", unk.IfaceSubclass)
	}
}

func TestUacFmtFactoryDispatchesOnFormatTag(t *testing.T) {
	c := &cursor{b: append([]byte{uacFormatTypePCM, 2, 2, 16, 1}, appendU24(nil, 48000)...)}
	parsed := uacFmtFactory(c)
	if _, ok := parsed.(UacFormatTypeI); !ok {
		t.Fatalf("uacFmtFactory returned %T, want UacFormatTypeI", parsed)
	}
}

func TestUacFmtFactoryPreservesUnknownFormatTag(t *testing.T) {
	c := &cursor{b: []byte{0xFF, 0x01, 0x02}}
	parsed := uacFmtFactory(c)
	unk, ok := parsed.(UacFormatTypeUnknown)
	if !ok {
		t.Fatalf("uacFmtFactory returned %T, want UacFormatTypeUnknown", parsed)
	}
	if unk.FormatType != 0xFF {
		t.Fatalf("FormatType = 0x%02x, want 0xFF", unk.FormatType)
	}
}

func TestUacEpFactoryDispatchesOnSubclass(t *testing.T) {
	d := UacIsoEndpointDescriptor{Subtype: 1, Attributes: 0x01, LockDelayUnits: 2, LockDelay: 10}
	encoded := d.Serialize()

	c := &cursor{b: encoded[headerSize:]}
	parsed := uacEpFactory(c, UacSubclassAudioStreaming)
	decoded, ok := parsed.(UacIsoEndpointDescriptor)
	if !ok {
		t.Fatalf("uacEpFactory returned %T, want UacIsoEndpointDescriptor", parsed)
	}
	if decoded != d {
		t.Fatalf("round trip mismatch: got %+v, want %+v", decoded, d)
	}
}

func TestUacEpFactoryOpaqueFallback(t *testing.T) {
	c := &cursor{b: []byte{0x01, 0x02}}
	parsed := uacEpFactory(c, UacSubclassAudioControl)
	if _, ok := parsed.(CsEndpointOpaque); !ok {
		t.Fatalf("uacEpFactory returned %T, want CsEndpointOpaque", parsed)
	}
}
