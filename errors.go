package usbdesc

import "errors"

// Sentinel errors returned by mutators and lookup helpers. Parsing itself
// is best-effort and never returns one of these for malformed-but-self-
// consistent input; see logging.go for the diagnostics path instead.
var (
	// ErrNotInputHeader is returned by RemoveH264 when called on a node
	// that is not a UvcInputHeader.
	ErrNotInputHeader = errors.New("usbdesc: node is not a UVC input header")

	// ErrNotInterfaceNode is returned by the interface-only classifiers
	// (IsAudioControl, IsAudioStreaming, IsSpeakerInterface, ...) when
	// called on a node whose payload is not an Interface.
	ErrNotInterfaceNode = errors.New("usbdesc: node is not an interface")

	// ErrFormatNotFound is returned by GetVideoConfig when no format with
	// the requested index exists (GetFormatByIdx itself returns nil).
	ErrFormatNotFound = errors.New("usbdesc: format index not found")

	// ErrFrameNotFound is returned by GetVideoConfig when no frame with
	// the requested index exists under the resolved format
	// (GetFrameByIdx itself returns nil).
	ErrFrameNotFound = errors.New("usbdesc: frame index not found")

	// ErrUnrecognizedGUID is returned by GetVideoConfig when an
	// uncompressed format's GUID is not YUY2 or NV12.
	ErrUnrecognizedGUID = errors.New("usbdesc: unrecognized uncompressed format GUID")

	// ErrUnsupportedFrameSize is returned by frameSize when called against
	// a payload that carries no width/height fields.
	ErrUnsupportedFrameSize = errors.New("usbdesc: node has no frame dimensions")

	// ErrNoAssociatedInterface is returned by IsVideoStreaming when the
	// requested interface/alt-setting pair does not resolve to any node.
	ErrNoAssociatedInterface = errors.New("usbdesc: no interface for the given setting")
)
