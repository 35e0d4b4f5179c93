package usbdesc

import "fmt"

// Device is the standard device descriptor. It never appears inside a
// configuration descriptor blob on its own but shares the record
// catalogue with everything else this package understands.
type Device struct {
	BcdUSB            uint16
	DeviceClass       uint8
	DeviceSubClass    uint8
	DeviceProtocol    uint8
	MaxPacketSize0    uint8
	VendorID          uint16
	ProductID         uint16
	BcdDevice         uint16
	Manufacturer      uint8
	Product           uint8
	SerialNumber      uint8
	NumConfigurations uint8
}

func parseDevice(c *cursor) Device {
	return Device{
		BcdUSB:            c.u16(),
		DeviceClass:       c.u8(),
		DeviceSubClass:    c.u8(),
		DeviceProtocol:    c.u8(),
		MaxPacketSize0:    c.u8(),
		VendorID:          c.u16(),
		ProductID:         c.u16(),
		BcdDevice:         c.u16(),
		Manufacturer:      c.u8(),
		Product:           c.u8(),
		SerialNumber:      c.u8(),
		NumConfigurations: c.u8(),
	}
}

func (d Device) Serialize() []byte {
	var p []byte
	p = appendU16(p, d.BcdUSB)
	p = append(p, d.DeviceClass, d.DeviceSubClass, d.DeviceProtocol, d.MaxPacketSize0)
	p = appendU16(p, d.VendorID)
	p = appendU16(p, d.ProductID)
	p = appendU16(p, d.BcdDevice)
	p = append(p, d.Manufacturer, d.Product, d.SerialNumber, d.NumConfigurations)
	return withHeader(DescTypeDevice, p)
}

// CsDevice is an opaque class-specific device descriptor; this package
// has no known layout for any subtype so it preserves raw bytes.
type CsDevice struct {
	Bytes []byte
}

func (d CsDevice) Serialize() []byte {
	return withHeader(DescTypeCsDevice, d.Bytes)
}

// Config is the configuration descriptor. WTotalLength and
// NumInterfaces are stale the instant the tree is mutated; FixTree (see
// fixup.go) recomputes both from the subtree.
type Config struct {
	WTotalLength       uint16
	NumInterfaces      uint8
	ConfigurationValue uint8
	ConfigurationIndex uint8
	Attributes         uint8
	MaxPower           uint8
}

func parseConfig(c *cursor) Config {
	return Config{
		WTotalLength:       c.u16(),
		NumInterfaces:      c.u8(),
		ConfigurationValue: c.u8(),
		ConfigurationIndex: c.u8(),
		Attributes:         c.u8(),
		MaxPower:           c.u8(),
	}
}

func (d Config) Serialize() []byte {
	var p []byte
	p = appendU16(p, d.WTotalLength)
	p = append(p, d.NumInterfaces, d.ConfigurationValue, d.ConfigurationIndex, d.Attributes, d.MaxPower)
	return withHeader(DescTypeConfig, p)
}

// Interface is a standard interface descriptor (one alternate setting).
type Interface struct {
	InterfaceNumber   uint8
	AlternateSetting  uint8
	NumEndpoints      uint8
	InterfaceClass    uint8
	InterfaceSubClass uint8
	InterfaceProtocol uint8
	InterfaceIndex    uint8
}

func parseInterface(c *cursor) Interface {
	return Interface{
		InterfaceNumber:   c.u8(),
		AlternateSetting:  c.u8(),
		NumEndpoints:      c.u8(),
		InterfaceClass:    c.u8(),
		InterfaceSubClass: c.u8(),
		InterfaceProtocol: c.u8(),
		InterfaceIndex:    c.u8(),
	}
}

func (d Interface) Serialize() []byte {
	p := []byte{d.InterfaceNumber, d.AlternateSetting, d.NumEndpoints, d.InterfaceClass, d.InterfaceSubClass, d.InterfaceProtocol, d.InterfaceIndex}
	return withHeader(DescTypeInterface, p)
}

func (d Interface) IsAudio() bool {
	return d.InterfaceClass == ClassAudio
}

func (d Interface) IsAudioControl() bool {
	return d.IsAudio() && d.InterfaceSubClass == UacSubclassAudioControl
}

func (d Interface) IsAudioStreaming() bool {
	return d.IsAudio() && d.InterfaceSubClass == UacSubclassAudioStreaming
}

func (d Interface) IsVideoStreaming() bool {
	return d.InterfaceClass == ClassVideo && d.InterfaceSubClass == UvcSubclassVideoStreaming
}

// InterfaceAssociation groups a contiguous run of interfaces into one
// logical function (e.g. the AC+AS pair making up a UAC microphone).
type InterfaceAssociation struct {
	FirstInterface  uint8
	InterfaceCount  uint8
	FunctionClass   uint8
	FunctionSubClass uint8
	FunctionProtocol uint8
	Function        uint8
}

func parseInterfaceAssociation(c *cursor) InterfaceAssociation {
	return InterfaceAssociation{
		FirstInterface:   c.u8(),
		InterfaceCount:   c.u8(),
		FunctionClass:    c.u8(),
		FunctionSubClass: c.u8(),
		FunctionProtocol: c.u8(),
		Function:         c.u8(),
	}
}

func (d InterfaceAssociation) Serialize() []byte {
	p := []byte{d.FirstInterface, d.InterfaceCount, d.FunctionClass, d.FunctionSubClass, d.FunctionProtocol, d.Function}
	return withHeader(DescTypeInterfaceAssociation, p)
}

// LastInterface returns the highest interface number this association covers.
func (d InterfaceAssociation) LastInterface() uint8 {
	return d.FirstInterface + d.InterfaceCount - 1
}

// Endpoint is a standard (non-UAC) endpoint descriptor.
type Endpoint struct {
	EndpointAddress uint8
	Attributes      uint8
	MaxPacketSize   uint16
	Interval        uint8
}

func parseEndpoint(c *cursor) Endpoint {
	return Endpoint{
		EndpointAddress: c.u8(),
		Attributes:      c.u8(),
		MaxPacketSize:   c.u16(),
		Interval:        c.u8(),
	}
}

func (d Endpoint) Serialize() []byte {
	var p []byte
	p = append(p, d.EndpointAddress, d.Attributes)
	p = appendU16(p, d.MaxPacketSize)
	p = append(p, d.Interval)
	return withHeader(DescTypeEndpoint, p)
}

func (d Endpoint) EndpointNumber() uint8 { return d.EndpointAddress & EndpointAddrMask }
func (d Endpoint) IsIn() bool            { return d.EndpointAddress&EndpointDirIn != 0 }
func (d Endpoint) IsOut() bool           { return !d.IsIn() }

func (d Endpoint) TransferType() TransferType {
	return TransferType(d.Attributes & endpointTransferTypeMask)
}

func (d Endpoint) isIso() bool { return d.TransferType() == TransferIsochronous }

func (d Endpoint) SyncType() (SyncType, error) {
	if !d.isIso() {
		return 0, fmt.Errorf("usbdesc: endpoint is not isochronous")
	}
	return SyncType((d.Attributes & endpointSyncTypeMask) >> endpointSyncTypeShift), nil
}

func (d Endpoint) UsageType() (UsageType, error) {
	if !d.isIso() {
		return 0, fmt.Errorf("usbdesc: endpoint is not isochronous")
	}
	return UsageType((d.Attributes & endpointUsageTypeMask) >> endpointUsageTypeShift), nil
}

// IsSpeaker reports whether this is an isochronous, OUT, async, data
// endpoint — the shape a UAC speaker endpoint always has.
func (d Endpoint) IsSpeaker() bool {
	sync, err := d.SyncType()
	if err != nil {
		return false
	}
	usage, err := d.UsageType()
	if err != nil {
		return false
	}
	return d.isIso() && d.IsOut() && sync == SyncAsync && usage == UsageData
}

// IsMic reports whether this is an isochronous, IN, async, data
// endpoint — the shape a UAC microphone endpoint always has.
func (d Endpoint) IsMic() bool {
	sync, err := d.SyncType()
	if err != nil {
		return false
	}
	usage, err := d.UsageType()
	if err != nil {
		return false
	}
	return d.isIso() && d.IsIn() && sync == SyncAsync && usage == UsageData
}

// UacEndpoint is the 9-byte audio-class endpoint descriptor variant:
// standard endpoint fields plus bRefresh/bSynchAddress.
type UacEndpoint struct {
	EndpointAddress uint8
	Attributes      uint8
	MaxPacketSize   uint16
	Interval        uint8
	Refresh         uint8
	SynchAddress    uint8
}

func parseUacEndpoint(c *cursor) UacEndpoint {
	return UacEndpoint{
		EndpointAddress: c.u8(),
		Attributes:      c.u8(),
		MaxPacketSize:   c.u16(),
		Interval:        c.u8(),
		Refresh:         c.u8(),
		SynchAddress:    c.u8(),
	}
}

func (d UacEndpoint) Serialize() []byte {
	var p []byte
	p = append(p, d.EndpointAddress, d.Attributes)
	p = appendU16(p, d.MaxPacketSize)
	p = append(p, d.Interval, d.Refresh, d.SynchAddress)
	return withHeader(DescTypeEndpoint, p)
}

func (d UacEndpoint) IsIn() bool  { return d.EndpointAddress&EndpointDirIn != 0 }
func (d UacEndpoint) IsOut() bool { return !d.IsIn() }

// CsInterfaceOpaque is a class-specific interface descriptor under a
// class the factory has no dedicated family for.
type CsInterfaceOpaque struct {
	Bytes []byte
}

func (d CsInterfaceOpaque) Serialize() []byte {
	return withHeader(DescTypeCsInterface, d.Bytes)
}

// CsEndpointOpaque is a class-specific endpoint descriptor under a
// class the factory has no dedicated family for.
type CsEndpointOpaque struct {
	Bytes []byte
}

func (d CsEndpointOpaque) Serialize() []byte {
	return withHeader(DescTypeCsEndpoint, d.Bytes)
}

// SsEpComp is the SuperSpeed Endpoint Companion descriptor.
type SsEpComp struct {
	MaxBurst         uint8
	Attributes       uint8
	BytesPerInterval uint16
}

func parseSsEpComp(c *cursor) SsEpComp {
	return SsEpComp{MaxBurst: c.u8(), Attributes: c.u8(), BytesPerInterval: c.u16()}
}

func (d SsEpComp) Serialize() []byte {
	var p []byte
	p = append(p, d.MaxBurst, d.Attributes)
	p = appendU16(p, d.BytesPerInterval)
	return withHeader(DescTypeSuperSpeedEpComp, p)
}

func (d SsEpComp) MaxBurstValue() uint8 { return d.MaxBurst + 1 }
func (d SsEpComp) Mult() uint8          { return (d.Attributes & 0x03) + 1 }

// SspIsochEpComp is the SuperSpeedPlus Isochronous Endpoint Companion descriptor.
type SspIsochEpComp struct {
	Reserved         uint16
	BytesPerInterval uint32
}

func parseSspIsochEpComp(c *cursor) SspIsochEpComp {
	return SspIsochEpComp{Reserved: c.u16(), BytesPerInterval: c.u32()}
}

func (d SspIsochEpComp) Serialize() []byte {
	var p []byte
	p = appendU16(p, d.Reserved)
	p = appendU32(p, d.BytesPerInterval)
	return withHeader(DescTypeSuperSpeedPlusIsoComp, p)
}

// Unknown preserves any top-level descriptor type this package does not
// recognize, verbatim, so round-tripping never loses data.
type Unknown struct {
	DescType uint8
	Bytes    []byte
}

func (d Unknown) Serialize() []byte {
	return withHeader(d.DescType, d.Bytes)
}
