package usbdesc

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/google/uuid"
)

// guidFromWireFields reconstructs a GUID from the mixed-endian encoding
// UVC uses for format identification: the first three fields are
// little-endian integers that become the GUID's big-endian time_low/
// time_mid/time_hi_and_version, and the trailing 8 bytes are copied
// through unchanged.
func guidFromWireFields(d1 uint32, d2, d3 uint16, d4 []byte) uuid.UUID {
	var u uuid.UUID
	binary.BigEndian.PutUint32(u[0:4], d1)
	binary.BigEndian.PutUint16(u[4:6], d2)
	binary.BigEndian.PutUint16(u[6:8], d3)
	copy(u[8:16], d4)
	return u
}

func guidToWireFields(u uuid.UUID) (d1 uint32, d2, d3 uint16, d4 [8]byte) {
	d1 = binary.BigEndian.Uint32(u[0:4])
	d2 = binary.BigEndian.Uint16(u[4:6])
	d3 = binary.BigEndian.Uint16(u[6:8])
	copy(d4[:], u[8:16])
	return
}

// YUY2 and NV12 are the two uncompressed-format GUIDs this package
// recognizes by value; anything else surfaces as ErrUnrecognizedGUID.
var (
	GUIDYUY2 = uuid.UUID{0x32, 0x59, 0x55, 0x59, 0x00, 0x00, 0x00, 0x10, 0x80, 0x00, 0x00, 0xAA, 0x00, 0x38, 0x9B, 0x71}
	GUIDNV12 = uuid.UUID{0x32, 0x31, 0x56, 0x4E, 0x00, 0x00, 0x00, 0x10, 0x80, 0x00, 0x00, 0xAA, 0x00, 0x38, 0x9B, 0x71}
)

// UvcFrameHeader is the UVC payload header prefixing every video
// transfer packet, not a configuration-descriptor record. It packs a
// 48-bit SCR source clock as {u32 low, u16 high}.
type UvcFrameHeader struct {
	HeaderLength     uint8
	HeaderInfo       uint8
	PresentationTime uint32
	SourceClock      uint64
}

const uvcFrameHeaderSize = 12

// NewUvcFrameHeader builds a frame header with the EOF/FrameID bits set
// as requested; bit 7 (header-present) is always set.
func NewUvcFrameHeader(eof, frameID bool) UvcFrameHeader {
	var flags uint8 = 0x80
	if eof {
		flags |= 1 << 1
	}
	if frameID {
		flags |= 1
	}
	return UvcFrameHeader{HeaderLength: uvcFrameHeaderSize, HeaderInfo: flags}
}

func (h UvcFrameHeader) Serialize() []byte {
	clk1 := uint16(h.SourceClock >> 32)
	clk2 := uint32(h.SourceClock)
	var p []byte
	p = append(p, h.HeaderLength, h.HeaderInfo)
	p = appendU32(p, h.PresentationTime)
	p = appendU32(p, clk2)
	p = appendU16(p, clk1)
	return p
}

// ParseUvcFrameHeader decodes a payload header from the front of a
// video transfer packet.
func ParseUvcFrameHeader(b []byte) (UvcFrameHeader, error) {
	if len(b) < uvcFrameHeaderSize {
		return UvcFrameHeader{}, fmt.Errorf("usbdesc: short UVC frame header: %d bytes", len(b))
	}
	c := &cursor{b: b}
	length := c.u8()
	info := c.u8()
	pt := c.u32()
	clk2 := c.u32()
	clk1 := c.u16()
	scr := uint64(clk1)<<32 | uint64(clk2)
	return UvcFrameHeader{HeaderLength: length, HeaderInfo: info, PresentationTime: pt, SourceClock: scr}, nil
}

// UvcStreamingControl is the UVC Probe/Commit control block negotiated
// with SET_CUR/GET_CUR before starting a video stream.
type UvcStreamingControl struct {
	BmHint                     uint16
	FormatIndex                uint8
	FrameIndex                 uint8
	FrameInterval              uint32
	KeyFrameRate               uint16
	PFrameRate                 uint16
	CompQuality                uint16
	CompWindowSize             uint16
	Delay                      uint16
	MaxVideoFrameSize          uint32
	MaxPayloadTransferSize     uint32
}

// ParseUvcStreamingControl decodes a 26-byte Probe/Commit block.
func ParseUvcStreamingControl(b []byte) (UvcStreamingControl, error) {
	const size = 26
	if len(b) < size {
		return UvcStreamingControl{}, fmt.Errorf("usbdesc: short UVC streaming control: %d bytes", len(b))
	}
	c := &cursor{b: b}
	return UvcStreamingControl{
		BmHint:                 c.u16(),
		FormatIndex:            c.u8(),
		FrameIndex:             c.u8(),
		FrameInterval:          c.u32(),
		KeyFrameRate:           c.u16(),
		PFrameRate:             c.u16(),
		CompQuality:            c.u16(),
		CompWindowSize:         c.u16(),
		Delay:                  c.u16(),
		MaxVideoFrameSize:      c.u32(),
		MaxPayloadTransferSize: c.u32(),
	}, nil
}

// Fps derives the approximate frame rate from the negotiated frame interval.
func (s UvcStreamingControl) Fps() int32 {
	return int32(math.Round(1.0 / (float64(s.FrameInterval) / 10000000.0)))
}

// UvcHeader is the VideoControl interface header, analogous to
// UacAcHeader: it lists the VideoStreaming interfaces collected under
// this VideoControl interface.
type UvcHeader struct {
	BcdUVC           uint16
	WTotalLength     uint16
	DwClockFrequency uint32
	BaInterfaceNr    []uint8
}

func parseUvcHeader(c *cursor) UvcHeader {
	bcdUVC := c.u16()
	wTotalLength := c.u16()
	clock := c.u32()
	n := c.u8()
	ba := make([]uint8, n)
	for i := range ba {
		ba[i] = c.u8()
	}
	return UvcHeader{BcdUVC: bcdUVC, WTotalLength: wTotalLength, DwClockFrequency: clock, BaInterfaceNr: ba}
}

func (d UvcHeader) Serialize() []byte {
	var p []byte
	p = appendU16(p, d.BcdUVC)
	p = appendU16(p, d.WTotalLength)
	p = appendU32(p, d.DwClockFrequency)
	p = append(p, uint8(len(d.BaInterfaceNr)))
	p = append(p, d.BaInterfaceNr...)
	return withSubtype(DescTypeCsInterface, uvcVcSubtypeHeader, p)
}

// UvcVcInputTerminal describes a VideoControl input terminal (camera
// sensor). Xtra preserves any terminal-specific trailing bytes (e.g. a
// camera terminal's control bitmap) this package doesn't model field by
// field.
type UvcVcInputTerminal struct {
	TerminalID    uint8
	TerminalType  uint16
	AssocTerminal uint8
	Terminal      uint8
	Xtra          []byte
}

func parseUvcVcInputTerminal(c *cursor) UvcVcInputTerminal {
	terminalID := c.u8()
	terminalType := c.u16()
	assoc := c.u8()
	terminal := c.u8()
	xtra := append([]byte(nil), c.rest()...)
	return UvcVcInputTerminal{TerminalID: terminalID, TerminalType: terminalType, AssocTerminal: assoc, Terminal: terminal, Xtra: xtra}
}

func (d UvcVcInputTerminal) Serialize() []byte {
	var p []byte
	p = append(p, d.TerminalID)
	p = appendU16(p, d.TerminalType)
	p = append(p, d.AssocTerminal, d.Terminal)
	p = append(p, d.Xtra...)
	return withSubtype(DescTypeCsInterface, uvcVcSubtypeInputTerminal, p)
}

// UvcVcProcessingUnit describes the VideoControl processing unit
// (brightness/contrast/etc. controls between input terminal and output).
type UvcVcProcessingUnit struct {
	UnitID         uint8
	SourceID       uint8
	MaxMultiplier  uint16
	ControlSize    uint8
	BmControls     uint16
	Processing     uint8
	Xtra           []byte
}

func parseUvcVcProcessingUnit(c *cursor) UvcVcProcessingUnit {
	unitID := c.u8()
	sourceID := c.u8()
	maxMultiplier := c.u16()
	controlSize := c.u8()
	bmControls := c.u16()
	processing := c.u8()
	xtra := append([]byte(nil), c.rest()...)
	return UvcVcProcessingUnit{UnitID: unitID, SourceID: sourceID, MaxMultiplier: maxMultiplier, ControlSize: controlSize, BmControls: bmControls, Processing: processing, Xtra: xtra}
}

func (d UvcVcProcessingUnit) Serialize() []byte {
	var p []byte
	p = append(p, d.UnitID, d.SourceID)
	p = appendU16(p, d.MaxMultiplier)
	p = append(p, d.ControlSize)
	p = appendU16(p, d.BmControls)
	p = append(p, d.Processing)
	p = append(p, d.Xtra...)
	return withSubtype(DescTypeCsInterface, uvcVcSubtypeProcessingUnit, p)
}

// UvcVcExtensionUnit describes a vendor-defined VideoControl extension
// unit. GUIDExtensionCode is copied through byte-for-byte (unlike the
// UVC format GUIDs, it is not mixed-endian).
type UvcVcExtensionUnit struct {
	UnitID            uint8
	GUIDExtensionCode uuid.UUID
	NumControls       uint8
	NrInPins          uint8
	SourceID          []uint8
	ControlSize       uint8
	BmControls        []uint8
	Extension         uint8
}

func parseUvcVcExtensionUnit(c *cursor) UvcVcExtensionUnit {
	unitID := c.u8()
	var guid uuid.UUID
	copy(guid[:], c.take(16))
	numControls := c.u8()
	nrInPins := c.u8()
	sourceID := make([]uint8, nrInPins)
	for i := range sourceID {
		sourceID[i] = c.u8()
	}
	controlSize := c.u8()
	bmControls := make([]uint8, controlSize)
	for i := range bmControls {
		bmControls[i] = c.u8()
	}
	extension := c.u8()
	return UvcVcExtensionUnit{
		UnitID: unitID, GUIDExtensionCode: guid, NumControls: numControls, NrInPins: nrInPins,
		SourceID: sourceID, ControlSize: controlSize, BmControls: bmControls, Extension: extension,
	}
}

func (d UvcVcExtensionUnit) Serialize() []byte {
	var p []byte
	p = append(p, d.UnitID)
	p = append(p, d.GUIDExtensionCode[:]...)
	p = append(p, d.NumControls, d.NrInPins)
	p = append(p, d.SourceID...)
	p = append(p, d.ControlSize)
	p = append(p, d.BmControls...)
	p = append(p, d.Extension)
	return withSubtype(DescTypeCsInterface, uvcVcSubtypeExtensionUnit, p)
}

// UvcVcOutputTerminal describes a VideoControl output terminal.
type UvcVcOutputTerminal struct {
	TerminalID    uint8
	TerminalType  uint16
	AssocTerminal uint8
	SourceID      uint8
	Terminal      uint8
}

func parseUvcVcOutputTerminal(c *cursor) UvcVcOutputTerminal {
	return UvcVcOutputTerminal{
		TerminalID:    c.u8(),
		TerminalType:  c.u16(),
		AssocTerminal: c.u8(),
		SourceID:      c.u8(),
		Terminal:      c.u8(),
	}
}

func (d UvcVcOutputTerminal) Serialize() []byte {
	var p []byte
	p = append(p, d.TerminalID)
	p = appendU16(p, d.TerminalType)
	p = append(p, d.AssocTerminal, d.SourceID, d.Terminal)
	return withSubtype(DescTypeCsInterface, uvcVcSubtypeOutputTerminal, p)
}

// DescriptorUvcVcInterfaceUnknown preserves a VideoControl
// class-specific interface record under a subtype this package has no
// family for.
type DescriptorUvcVcInterfaceUnknown struct {
	IfaceSubclass uint8
	Bytes         []byte
}

func (d DescriptorUvcVcInterfaceUnknown) Serialize() []byte {
	p := append([]byte{d.IfaceSubclass}, d.Bytes...)
	return withHeader(DescTypeCsInterface, p)
}

// UvcInputHeader is the VideoStreaming input header. It declares
// WTotalLength bytes belonging to it (consumed by the pivot pass in
// pivot.go) and a packed bmaControls table, ControlSize bytes per
// format, indexed positionally by format child order.
type UvcInputHeader struct {
	WTotalLength       uint16
	EndpointAddress    uint8
	BmInfo             uint8
	TerminalLink       uint8
	StillCaptureMethod uint8
	TriggerSupport     uint8
	TriggerUsage       uint8
	ControlSize        uint8
	BmaControls        []uint8
}

// NumFormats derives bNumFormats from the packed control table length.
func (d UvcInputHeader) NumFormats() uint8 {
	if d.ControlSize == 0 {
		return 0
	}
	return uint8(len(d.BmaControls)) / d.ControlSize
}

func parseUvcInputHeader(c *cursor) UvcInputHeader {
	numFormats := c.u8()
	wTotalLength := c.u16()
	epAddr := c.u8()
	bmInfo := c.u8()
	terminalLink := c.u8()
	stillCapture := c.u8()
	triggerSupport := c.u8()
	triggerUsage := c.u8()
	controlSize := c.u8()
	sz := int(controlSize) * int(numFormats)
	bma := append([]uint8(nil), c.take(sz)...)
	return UvcInputHeader{
		WTotalLength: wTotalLength, EndpointAddress: epAddr, BmInfo: bmInfo, TerminalLink: terminalLink,
		StillCaptureMethod: stillCapture, TriggerSupport: triggerSupport, TriggerUsage: triggerUsage,
		ControlSize: controlSize, BmaControls: bma,
	}
}

func (d UvcInputHeader) Serialize() []byte {
	var p []byte
	p = append(p, d.NumFormats())
	p = appendU16(p, d.WTotalLength)
	p = append(p, d.EndpointAddress, d.BmInfo, d.TerminalLink, d.StillCaptureMethod, d.TriggerSupport, d.TriggerUsage, d.ControlSize)
	p = append(p, d.BmaControls...)
	return withSubtype(DescTypeCsInterface, uvcVsSubtypeInputHeader, p)
}

// size returns the header's own serialized length (header size, used by
// pivotUvcInputHdr to compute the remaining byte budget for children).
func (d UvcInputHeader) size() int {
	return len(d.Serialize())
}

// FormatUncompressed describes an uncompressed pixel format (YUY2,
// NV12, ...) identified by a 16-byte GUID.
type FormatUncompressed struct {
	FormatIndex         uint8
	NumFrameDescriptors uint8
	GUIDFormat          uuid.UUID
	BitsPerPixel        uint8
	DefaultFrameIndex   uint8
	AspectRatioX        uint8
	AspectRatioY        uint8
	InterfaceFlags      uint8
	CopyProtect         uint8
}

func parseFormatUncompressed(c *cursor) FormatUncompressed {
	formatIndex := c.u8()
	numFrames := c.u8()
	d1 := c.u32()
	d2 := c.u16()
	d3 := c.u16()
	d4 := c.take(8)
	guid := guidFromWireFields(d1, d2, d3, d4)
	return FormatUncompressed{
		FormatIndex: formatIndex, NumFrameDescriptors: numFrames, GUIDFormat: guid,
		BitsPerPixel: c.u8(), DefaultFrameIndex: c.u8(), AspectRatioX: c.u8(), AspectRatioY: c.u8(),
		InterfaceFlags: c.u8(), CopyProtect: c.u8(),
	}
}

func (d FormatUncompressed) Serialize() []byte {
	d1, d2, d3, d4 := guidToWireFields(d.GUIDFormat)
	var p []byte
	p = append(p, d.FormatIndex, d.NumFrameDescriptors)
	p = appendU32(p, d1)
	p = appendU16(p, d2)
	p = appendU16(p, d3)
	p = append(p, d4[:]...)
	p = append(p, d.BitsPerPixel, d.DefaultFrameIndex, d.AspectRatioX, d.AspectRatioY, d.InterfaceFlags, d.CopyProtect)
	return withSubtype(DescTypeCsInterface, uvcVsSubtypeFormatUncompressed, p)
}

// UvcFormatFrameBased describes a frame-based compressed format (e.g.
// H.264), distinguished from FormatUncompressed by VariableSize.
type UvcFormatFrameBased struct {
	FormatIndex         uint8
	NumFrameDescriptors uint8
	GUIDFormat          uuid.UUID
	BitsPerPixel        uint8
	DefaultFrameIndex   uint8
	AspectRatioX        uint8
	AspectRatioY        uint8
	InterfaceFlags      uint8
	CopyProtect         uint8
	VariableSize        uint8
}

func parseUvcFormatFrameBased(c *cursor) UvcFormatFrameBased {
	formatIndex := c.u8()
	numFrames := c.u8()
	d1 := c.u32()
	d2 := c.u16()
	d3 := c.u16()
	d4 := c.take(8)
	guid := guidFromWireFields(d1, d2, d3, d4)
	return UvcFormatFrameBased{
		FormatIndex: formatIndex, NumFrameDescriptors: numFrames, GUIDFormat: guid,
		BitsPerPixel: c.u8(), DefaultFrameIndex: c.u8(), AspectRatioX: c.u8(), AspectRatioY: c.u8(),
		InterfaceFlags: c.u8(), CopyProtect: c.u8(), VariableSize: c.u8(),
	}
}

func (d UvcFormatFrameBased) Serialize() []byte {
	d1, d2, d3, d4 := guidToWireFields(d.GUIDFormat)
	var p []byte
	p = append(p, d.FormatIndex, d.NumFrameDescriptors)
	p = appendU32(p, d1)
	p = appendU16(p, d2)
	p = appendU16(p, d3)
	p = append(p, d4[:]...)
	p = append(p, d.BitsPerPixel, d.DefaultFrameIndex, d.AspectRatioX, d.AspectRatioY, d.InterfaceFlags, d.CopyProtect, d.VariableSize)
	return withSubtype(DescTypeCsInterface, uvcVsSubtypeFormatFrameBased, p)
}

// FormatMjpeg describes the MJPEG compressed format.
type FormatMjpeg struct {
	FormatIndex         uint8
	NumFrameDescriptors uint8
	BmFlags             uint8
	DefaultFrameIndex   uint8
	AspectRatioX        uint8
	AspectRatioY        uint8
	InterfaceFlags      uint8
	CopyProtect         uint8
}

func parseFormatMjpeg(c *cursor) FormatMjpeg {
	return FormatMjpeg{
		FormatIndex: c.u8(), NumFrameDescriptors: c.u8(), BmFlags: c.u8(), DefaultFrameIndex: c.u8(),
		AspectRatioX: c.u8(), AspectRatioY: c.u8(), InterfaceFlags: c.u8(), CopyProtect: c.u8(),
	}
}

func (d FormatMjpeg) Serialize() []byte {
	p := []byte{d.FormatIndex, d.NumFrameDescriptors, d.BmFlags, d.DefaultFrameIndex, d.AspectRatioX, d.AspectRatioY, d.InterfaceFlags, d.CopyProtect}
	return withSubtype(DescTypeCsInterface, uvcVsSubtypeFormatMjpeg, p)
}

// FrameUncompressed describes one resolution + frame-interval table
// under an uncompressed format.
type FrameUncompressed struct {
	FrameIndex              uint8
	Capabilities            uint8
	Width                   uint16
	Height                  uint16
	MinBitRate              uint32
	MaxBitRate              uint32
	MaxVideoFrameBufferSize uint32
	DefaultFrameInterval    uint32
	FrameIntervals          []uint32
}

func parseFrameUncompressed(c *cursor) FrameUncompressed {
	frameIndex := c.u8()
	caps := c.u8()
	w := c.u16()
	h := c.u16()
	minBitRate := c.u32()
	maxBitRate := c.u32()
	maxBufSize := c.u32()
	defaultInterval := c.u32()
	n := c.u8()
	intervals := make([]uint32, n)
	for i := range intervals {
		intervals[i] = c.u32()
	}
	return FrameUncompressed{
		FrameIndex: frameIndex, Capabilities: caps, Width: w, Height: h, MinBitRate: minBitRate,
		MaxBitRate: maxBitRate, MaxVideoFrameBufferSize: maxBufSize, DefaultFrameInterval: defaultInterval,
		FrameIntervals: intervals,
	}
}

func (d FrameUncompressed) Serialize() []byte {
	var p []byte
	p = append(p, d.FrameIndex, d.Capabilities)
	p = appendU16(p, d.Width)
	p = appendU16(p, d.Height)
	p = appendU32(p, d.MinBitRate)
	p = appendU32(p, d.MaxBitRate)
	p = appendU32(p, d.MaxVideoFrameBufferSize)
	p = appendU32(p, d.DefaultFrameInterval)
	p = append(p, uint8(len(d.FrameIntervals)))
	for _, interval := range d.FrameIntervals {
		p = appendU32(p, interval)
	}
	return withSubtype(DescTypeCsInterface, uvcVsSubtypeFrameUncompressed, p)
}

// FrameMjpeg describes one resolution + frame-interval table under the
// MJPEG format. Field shape mirrors FrameUncompressed exactly.
type FrameMjpeg struct {
	FrameIndex              uint8
	Capabilities            uint8
	Width                   uint16
	Height                  uint16
	MinBitRate              uint32
	MaxBitRate              uint32
	MaxVideoFrameBufferSize uint32
	DefaultFrameInterval    uint32
	FrameIntervals          []uint32
}

func parseFrameMjpeg(c *cursor) FrameMjpeg {
	f := parseFrameUncompressed(c)
	return FrameMjpeg(f)
}

func (d FrameMjpeg) Serialize() []byte {
	var p []byte
	p = append(p, d.FrameIndex, d.Capabilities)
	p = appendU16(p, d.Width)
	p = appendU16(p, d.Height)
	p = appendU32(p, d.MinBitRate)
	p = appendU32(p, d.MaxBitRate)
	p = appendU32(p, d.MaxVideoFrameBufferSize)
	p = appendU32(p, d.DefaultFrameInterval)
	p = append(p, uint8(len(d.FrameIntervals)))
	for _, interval := range d.FrameIntervals {
		p = appendU32(p, interval)
	}
	return withSubtype(DescTypeCsInterface, uvcVsSubtypeFrameMjpeg, p)
}

// UvcFrameFrameBased describes one resolution + frame-interval table
// under a frame-based (H.264) format. Field order on the wire differs
// from FrameUncompressed/FrameMjpeg: the interval count precedes
// BytesPerLine, and there is no MaxVideoFrameBufferSize field.
type UvcFrameFrameBased struct {
	FrameIndex           uint8
	Capabilities         uint8
	Width                uint16
	Height               uint16
	MinBitRate           uint32
	MaxBitRate           uint32
	DefaultFrameInterval uint32
	BytesPerLine         uint32
	FrameIntervals       []uint32
}

func parseUvcFrameFrameBased(c *cursor) UvcFrameFrameBased {
	frameIndex := c.u8()
	caps := c.u8()
	w := c.u16()
	h := c.u16()
	minBitRate := c.u32()
	maxBitRate := c.u32()
	defaultInterval := c.u32()
	n := c.u8()
	bytesPerLine := c.u32()
	intervals := make([]uint32, n)
	for i := range intervals {
		intervals[i] = c.u32()
	}
	return UvcFrameFrameBased{
		FrameIndex: frameIndex, Capabilities: caps, Width: w, Height: h, MinBitRate: minBitRate,
		MaxBitRate: maxBitRate, DefaultFrameInterval: defaultInterval, BytesPerLine: bytesPerLine,
		FrameIntervals: intervals,
	}
}

func (d UvcFrameFrameBased) Serialize() []byte {
	var p []byte
	p = append(p, d.FrameIndex, d.Capabilities)
	p = appendU16(p, d.Width)
	p = appendU16(p, d.Height)
	p = appendU32(p, d.MinBitRate)
	p = appendU32(p, d.MaxBitRate)
	p = appendU32(p, d.DefaultFrameInterval)
	p = append(p, uint8(len(d.FrameIntervals)))
	p = appendU32(p, d.BytesPerLine)
	for _, interval := range d.FrameIntervals {
		p = appendU32(p, interval)
	}
	return withSubtype(DescTypeCsInterface, uvcVsSubtypeFrameFrameBased, p)
}

// DescriptorUvcVsInterfaceUnknown preserves a VideoStreaming
// class-specific interface record under a subtype this package has no
// family for.
type DescriptorUvcVsInterfaceUnknown struct {
	IfaceSubclass uint8
	Bytes         []byte
}

func (d DescriptorUvcVsInterfaceUnknown) Serialize() []byte {
	p := append([]byte{d.IfaceSubclass}, d.Bytes...)
	return withHeader(DescTypeCsInterface, p)
}

// VideoFormat names the pixel/compression family a VideoConfig resolves to.
type VideoFormat uint8

const (
	VideoFormatYUY2 VideoFormat = iota
	VideoFormatMjpeg
	VideoFormatNV12
)

// VideoConfig summarizes a resolved (format, frame, fps) triple for
// external consumers, the return type of GetVideoConfig (tree.go).
type VideoConfig struct {
	Width  uint32
	Height uint32
	Fps    int32
	Format VideoFormat
}
