package usbdesc

// UacAcHeader is the Audio Control interface header (UAC 1.0 §4.3.2):
// it lists the streaming interfaces collected under this AudioControl
// interface via BaInterfaceNr.
type UacAcHeader struct {
	BcdADC         uint16
	WTotalLength   uint16
	BaInterfaceNr  []uint8
}

func parseUacAcHeader(c *cursor) UacAcHeader {
	bcdADC := c.u16()
	wTotalLength := c.u16()
	n := c.u8()
	ba := make([]uint8, n)
	for i := range ba {
		ba[i] = c.u8()
	}
	return UacAcHeader{BcdADC: bcdADC, WTotalLength: wTotalLength, BaInterfaceNr: ba}
}

func (d UacAcHeader) Serialize() []byte {
	var p []byte
	p = appendU16(p, d.BcdADC)
	p = appendU16(p, d.WTotalLength)
	p = append(p, uint8(len(d.BaInterfaceNr)))
	p = append(p, d.BaInterfaceNr...)
	return withSubtype(DescTypeCsInterface, uacSubtypeHeader, p)
}

// UacInputTerminal describes a UAC input terminal (microphone, line in, ...).
type UacInputTerminal struct {
	TerminalID     uint8
	TerminalType   uint16
	AssocTerminal  uint8
	NrChannels     uint8
	ChannelConfig  uint16
	ChannelNames   uint8
	Terminal       uint8
}

func parseUacInputTerminal(c *cursor) UacInputTerminal {
	return UacInputTerminal{
		TerminalID:    c.u8(),
		TerminalType:  c.u16(),
		AssocTerminal: c.u8(),
		NrChannels:    c.u8(),
		ChannelConfig: c.u16(),
		ChannelNames:  c.u8(),
		Terminal:      c.u8(),
	}
}

func (d UacInputTerminal) Serialize() []byte {
	var p []byte
	p = append(p, d.TerminalID)
	p = appendU16(p, d.TerminalType)
	p = append(p, d.AssocTerminal, d.NrChannels)
	p = appendU16(p, d.ChannelConfig)
	p = append(p, d.ChannelNames, d.Terminal)
	return withSubtype(DescTypeCsInterface, uacSubtypeInputTerminal, p)
}

// UacOutputTerminal describes a UAC output terminal (speaker, line out, ...).
type UacOutputTerminal struct {
	TerminalID    uint8
	TerminalType  uint16
	AssocTerminal uint8
	SourceID      uint8
	Terminal      uint8
}

func parseUacOutputTerminal(c *cursor) UacOutputTerminal {
	return UacOutputTerminal{
		TerminalID:    c.u8(),
		TerminalType:  c.u16(),
		AssocTerminal: c.u8(),
		SourceID:      c.u8(),
		Terminal:      c.u8(),
	}
}

func (d UacOutputTerminal) Serialize() []byte {
	var p []byte
	p = append(p, d.TerminalID)
	p = appendU16(p, d.TerminalType)
	p = append(p, d.AssocTerminal, d.SourceID, d.Terminal)
	return withSubtype(DescTypeCsInterface, uacSubtypeOutputTerminal, p)
}

// UacFeatureUnit carries the per-channel control bitmap for a mixer
// feature (mute, volume, bass, ...). BmaControls is BControlSize bytes
// per channel (channel 0 = master); the final byte can double as
// iTerminal on some devices, which this package does not special-case.
type UacFeatureUnit struct {
	UnitID      uint8
	SourceID    uint8
	ControlSize uint8
	BmaControls []uint8
}

func parseUacFeatureUnit(c *cursor) UacFeatureUnit {
	unitID := c.u8()
	sourceID := c.u8()
	controlSize := c.u8()
	bma := c.rest()
	return UacFeatureUnit{UnitID: unitID, SourceID: sourceID, ControlSize: controlSize, BmaControls: bma}
}

func (d UacFeatureUnit) Serialize() []byte {
	var p []byte
	p = append(p, d.UnitID, d.SourceID, d.ControlSize)
	p = append(p, d.BmaControls...)
	return withSubtype(DescTypeCsInterface, uacSubtypeFeatureUnit, p)
}

// UacAsGeneral is the AudioStreaming interface's general descriptor.
type UacAsGeneral struct {
	TerminalLink uint8
	Delay        uint8
	FormatTag    uint16
}

func parseUacAsGeneral(c *cursor) UacAsGeneral {
	return UacAsGeneral{TerminalLink: c.u8(), Delay: c.u8(), FormatTag: c.u16()}
}

func (d UacAsGeneral) Serialize() []byte {
	var p []byte
	p = append(p, d.TerminalLink, d.Delay)
	p = appendU16(p, d.FormatTag)
	return withSubtype(DescTypeCsInterface, uacIfaceSubtypeGeneral, p)
}

// UacFormatTypeI is a Type I (PCM/PCM8/IEEE float/A-law/mu-law) format
// descriptor with a discrete tSamFreq sample-rate table. This package
// only recognizes the PCM format tag; anything else falls back to
// UacFormatTypeUnknown.
type UacFormatTypeI struct {
	NrChannels    uint8
	SubframeSize  uint8
	BitResolution uint8
	TSamFreq      []uint32
}

func parseUacFormatTypeI(c *cursor) UacFormatTypeI {
	nrChannels := c.u8()
	subframeSize := c.u8()
	bitResolution := c.u8()
	n := c.u8()
	freqs := make([]uint32, n)
	for i := range freqs {
		freqs[i] = c.u24()
	}
	return UacFormatTypeI{NrChannels: nrChannels, SubframeSize: subframeSize, BitResolution: bitResolution, TSamFreq: freqs}
}

func (d UacFormatTypeI) Serialize() []byte {
	p := []byte{uacFormatTypePCM, d.NrChannels, d.SubframeSize, d.BitResolution, uint8(len(d.TSamFreq))}
	for _, freq := range d.TSamFreq {
		p = appendU24(p, freq)
	}
	return withSubtype(DescTypeCsInterface, uacIfaceSubtypeFormatType, p)
}

// UacFormatTypeUnknown preserves a format-type record this package
// doesn't have a dedicated layout for, keyed by its format tag byte.
type UacFormatTypeUnknown struct {
	FormatType uint8
	Bytes      []byte
}

func (d UacFormatTypeUnknown) Serialize() []byte {
	p := append([]byte{d.FormatType}, d.Bytes...)
	return withSubtype(DescTypeCsInterface, uacIfaceSubtypeFormatType, p)
}

// UacIsoEndpointDescriptor is the class-specific isochronous audio
// endpoint descriptor (sample-rate adjustment support, lock delay).
type UacIsoEndpointDescriptor struct {
	Subtype        uint8
	Attributes     uint8
	LockDelayUnits uint8
	LockDelay      uint16
}

func parseUacIsoEndpointDescriptor(c *cursor) UacIsoEndpointDescriptor {
	return UacIsoEndpointDescriptor{
		Subtype:        c.u8(),
		Attributes:     c.u8(),
		LockDelayUnits: c.u8(),
		LockDelay:      c.u16(),
	}
}

func (d UacIsoEndpointDescriptor) Serialize() []byte {
	var p []byte
	p = append(p, d.Subtype, d.Attributes, d.LockDelayUnits)
	p = appendU16(p, d.LockDelay)
	return withHeader(DescTypeCsEndpoint, p)
}

// DescriptorUacInterfaceUnknown preserves a class-specific interface
// record under an audio subclass this package has no family for.
type DescriptorUacInterfaceUnknown struct {
	IfaceSubclass uint8
	Bytes         []byte
}

func (d DescriptorUacInterfaceUnknown) Serialize() []byte {
	p := append([]byte{d.IfaceSubclass}, d.Bytes...)
	return withHeader(DescTypeCsInterface, p)
}
