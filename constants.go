package usbdesc

// Descriptor types recognized on the wire. Values come from the USB 2.0
// specification table 9-5 plus the class-specific and SuperSpeed
// extensions this parser understands.
const (
	DescTypeDevice               = 0x01
	DescTypeConfig               = 0x02
	DescTypeString                = 0x03
	DescTypeInterface             = 0x04
	DescTypeEndpoint              = 0x05
	DescTypeInterfaceAssociation  = 0x0B
	DescTypeCsDevice              = 0x21
	DescTypeCsInterface           = 0x24
	DescTypeCsEndpoint            = 0x25
	DescTypeSuperSpeedEpComp      = 0x30
	DescTypeSuperSpeedPlusIsoComp = 0x31
)

// Interface classes relevant to UAC/UVC composite devices.
const (
	ClassAudio = 0x01
	ClassHID   = 0x03
	ClassVideo = 0x0E
)

// UAC interface subclasses.
const (
	UacSubclassAudioControl   = 0x01
	UacSubclassAudioStreaming = 0x02
)

// UAC class-specific interface and format-type subtypes.
const (
	uacSubtypeHeader         = 0x01
	uacSubtypeInputTerminal  = 0x02
	uacSubtypeOutputTerminal = 0x03
	uacSubtypeFeatureUnit    = 0x06

	uacIfaceSubtypeGeneral    = 0x01
	uacIfaceSubtypeFormatType = 0x02

	uacFormatTypePCM = 0x01
)

// UVC interface subclasses.
const (
	UvcSubclassVideoControl   = 0x01
	UvcSubclassVideoStreaming = 0x02
)

// UVC VideoControl class-specific subtypes.
const (
	uvcVcSubtypeHeader          = 0x01
	uvcVcSubtypeInputTerminal   = 0x02
	uvcVcSubtypeOutputTerminal  = 0x03
	uvcVcSubtypeProcessingUnit  = 0x05
	uvcVcSubtypeExtensionUnit   = 0x06
)

// UVC VideoStreaming class-specific subtypes.
const (
	uvcVsSubtypeInputHeader       = 0x01
	uvcVsSubtypeFormatUncompressed = 0x04
	uvcVsSubtypeFrameUncompressed  = 0x05
	uvcVsSubtypeFormatMjpeg        = 0x06
	uvcVsSubtypeFrameMjpeg         = 0x07
	uvcVsSubtypeFormatFrameBased   = 0x10
	uvcVsSubtypeFrameFrameBased    = 0x11
)

// Endpoint attribute masks and shifts (USB 2.0 table 9-13).
const (
	EndpointDirIn   = 0x80
	EndpointAddrMask = 0x0F

	endpointTransferTypeMask = 0x03
	endpointSyncTypeMask     = 0x0C
	endpointSyncTypeShift    = 2
	endpointUsageTypeMask    = 0x30
	endpointUsageTypeShift   = 4
)

// TransferType is the low two bits of an endpoint's bmAttributes.
type TransferType uint8

const (
	TransferControl TransferType = iota
	TransferIsochronous
	TransferBulk
	TransferInterrupt
	TransferBulkStream
)

// SyncType is the isochronous synchronization type, valid only for
// isochronous endpoints.
type SyncType uint8

const (
	SyncNone SyncType = iota
	SyncAsync
	SyncAdaptive
	SyncSync
)

// UsageType is the isochronous usage type, valid only for isochronous
// endpoints.
type UsageType uint8

const (
	UsageData UsageType = iota
	UsageFeedback
	UsageImplicit
)

// HighFpsIntervalFloor is the minimum dwFrameInterval (100ns units) that
// survives RemoveHighFps; roughly 30fps. Anything faster is dropped.
const HighFpsIntervalFloor = 333333

// MaxResolutionPixels is the w*h cap enforced by RemoveHighResolution.
const MaxResolutionPixels = 1280 * 720
