package usbdesc

import "fmt"

// IfaceAltSetting identifies one (interface number, alternate setting) pair.
type IfaceAltSetting struct {
	Iface uint8
	Alt   uint8
}

// HasAudio reports whether this subtree contains an audio interface.
func (n *Node) HasAudio() bool {
	if iface, ok := n.Parsed.(Interface); ok && iface.IsAudio() {
		return true
	}
	for _, c := range n.Children {
		if c.HasAudio() {
			return true
		}
	}
	return false
}

// HasVideo reports whether this subtree contains a VideoStreaming interface.
func (n *Node) HasVideo() bool {
	if iface, ok := n.Parsed.(Interface); ok && iface.IsVideoStreaming() {
		return true
	}
	for _, c := range n.Children {
		if c.HasVideo() {
			return true
		}
	}
	return false
}

// getNode returns the first node in this subtree (pre-order, self
// included) satisfying match.
func (n *Node) getNode(match func(*Node) bool) *Node {
	if match(n) {
		return n
	}
	for _, c := range n.Children {
		if found := c.getNode(match); found != nil {
			return found
		}
	}
	return nil
}

// GetEndpoint finds a generic endpoint by address.
func (n *Node) GetEndpoint(addr uint8) *Node {
	return n.getNode(func(node *Node) bool {
		ep, ok := node.Parsed.(Endpoint)
		return ok && ep.EndpointAddress == addr
	})
}

// GetUacEndpoint finds a UAC (9-byte) endpoint by address.
func (n *Node) GetUacEndpoint(addr uint8) *Node {
	return n.getNode(func(node *Node) bool {
		ep, ok := node.Parsed.(UacEndpoint)
		return ok && ep.EndpointAddress == addr
	})
}

// GetSsEpComp finds the first SuperSpeed Endpoint Companion descriptor.
func (n *Node) GetSsEpComp() *Node {
	return n.getNode(func(node *Node) bool {
		_, ok := node.Parsed.(SsEpComp)
		return ok
	})
}

// GetUacFormat finds the first UAC Type I format descriptor.
func (n *Node) GetUacFormat() *Node {
	return n.getNode(func(node *Node) bool {
		_, ok := node.Parsed.(UacFormatTypeI)
		return ok
	})
}

// GetIfaceByNum finds the Interface node for a given interface number
// and alternate setting.
func (n *Node) GetIfaceByNum(setting IfaceAltSetting) *Node {
	return n.getNode(func(node *Node) bool {
		iface, ok := node.Parsed.(Interface)
		return ok && iface.InterfaceNumber == setting.Iface && iface.AlternateSetting == setting.Alt
	})
}

// GetIfaceByEp returns the interface an endpoint belongs to. Only
// generic Endpoint records are matched. As recursion unwinds, each frame
// passes up an Interface found below it, otherwise its own node, so the
// result is the nearest Interface ancestor of the first matching
// endpoint. When no Interface encloses that endpoint, the node the call
// was made on is returned instead, whatever its type.
func (n *Node) GetIfaceByEp(ep uint8) *Node {
	if e, ok := n.Parsed.(Endpoint); ok && e.EndpointAddress == ep {
		return n
	}
	for _, child := range n.Children {
		res := child.GetIfaceByEp(ep)
		if res == nil {
			continue
		}
		if _, ok := res.Parsed.(Interface); ok {
			return res
		}
		return n
	}
	return nil
}

// GetUvcInputHdr finds the first UVC input header.
func (n *Node) GetUvcInputHdr() *Node {
	return n.getNode(func(node *Node) bool {
		_, ok := node.Parsed.(UvcInputHeader)
		return ok
	})
}

// GetFormatByIdx finds a MJPEG or uncompressed format by its format
// index. Frame-based formats are not addressable this way, matching
// this package's UVC format-resolution scope.
func (n *Node) GetFormatByIdx(idx uint8) *Node {
	return n.getNode(func(node *Node) bool {
		switch f := node.Parsed.(type) {
		case FormatMjpeg:
			return f.FormatIndex == idx
		case FormatUncompressed:
			return f.FormatIndex == idx
		default:
			return false
		}
	})
}

// GetFrameByIdx finds a MJPEG or uncompressed frame by its frame index.
func (n *Node) GetFrameByIdx(idx uint8) *Node {
	return n.getNode(func(node *Node) bool {
		switch f := node.Parsed.(type) {
		case FrameMjpeg:
			return f.FrameIndex == idx
		case FrameUncompressed:
			return f.FrameIndex == idx
		default:
			return false
		}
	})
}

func frameSize(d Descriptor) (uint32, uint32, error) {
	switch f := d.(type) {
	case FrameMjpeg:
		return uint32(f.Width), uint32(f.Height), nil
	case FrameUncompressed:
		return uint32(f.Width), uint32(f.Height), nil
	default:
		return 0, 0, fmt.Errorf("usbdesc: %s node: %w", fmt.Sprintf("%T", d), ErrUnsupportedFrameSize)
	}
}

// GetVideoConfig resolves a (format index, frame index, fps) triple
// against this subtree into a VideoConfig, the shape a caller would
// actually want to negotiate over UvcStreamingControl.
func (n *Node) GetVideoConfig(formatIdx, frameIdx uint8, fps int32) (VideoConfig, error) {
	fmtNode := n.GetFormatByIdx(formatIdx)
	if fmtNode == nil {
		return VideoConfig{}, fmt.Errorf("usbdesc: format index %d: %w", formatIdx, ErrFormatNotFound)
	}

	var format VideoFormat
	switch f := fmtNode.Parsed.(type) {
	case FormatMjpeg:
		format = VideoFormatMjpeg
	case FormatUncompressed:
		switch f.GUIDFormat {
		case GUIDYUY2:
			format = VideoFormatYUY2
		case GUIDNV12:
			format = VideoFormatNV12
		default:
			return VideoConfig{}, fmt.Errorf("usbdesc: GUID %s: %w", f.GUIDFormat, ErrUnrecognizedGUID)
		}
	default:
		return VideoConfig{}, fmt.Errorf("usbdesc: format index %d: %w", formatIdx, ErrFormatNotFound)
	}

	frameNode := fmtNode.GetFrameByIdx(frameIdx)
	if frameNode == nil {
		return VideoConfig{}, fmt.Errorf("usbdesc: frame index %d under format %d: %w", frameIdx, formatIdx, ErrFrameNotFound)
	}
	width, height, err := frameSize(frameNode.Parsed)
	if err != nil {
		return VideoConfig{}, err
	}
	return VideoConfig{Width: width, Height: height, Fps: fps, Format: format}, nil
}

// NumUvcFormats counts every UVC format descriptor (MJPEG, uncompressed
// or frame-based) in this subtree.
func (n *Node) NumUvcFormats() int {
	count := 0
	if isUvcFormat(n.Parsed) {
		count = 1
	}
	for _, c := range n.Children {
		count += c.NumUvcFormats()
	}
	return count
}

// FindIfaces collects the interface numbers of every primary (alternate
// setting 0) interface in this subtree.
func (n *Node) FindIfaces() []uint8 {
	return n.findIfacesMatching(func(Interface) bool { return true })
}

// FindUacIfaces collects primary audio interfaces.
func (n *Node) FindUacIfaces() []uint8 {
	return n.findIfacesMatching(func(i Interface) bool { return i.IsAudio() })
}

// FindNonUacIfaces collects primary non-audio interfaces.
func (n *Node) FindNonUacIfaces() []uint8 {
	return n.findIfacesMatching(func(i Interface) bool { return !i.IsAudio() })
}

// FindUvcIfaces collects primary video-class interfaces (VideoControl
// and VideoStreaming).
func (n *Node) FindUvcIfaces() []uint8 {
	return n.findIfacesMatching(func(i Interface) bool { return i.InterfaceClass == ClassVideo })
}

// FindNonUvcIfaces collects primary non-video-class interfaces.
func (n *Node) FindNonUvcIfaces() []uint8 {
	return n.findIfacesMatching(func(i Interface) bool { return i.InterfaceClass != ClassVideo })
}

func (n *Node) findIfacesMatching(match func(Interface) bool) []uint8 {
	var ids []uint8
	if iface, ok := n.Parsed.(Interface); ok && iface.AlternateSetting == 0 && match(iface) {
		ids = append(ids, iface.InterfaceNumber)
	}
	for _, c := range n.Children {
		ids = append(ids, c.findIfacesMatching(match)...)
	}
	return ids
}

// findIfaceFor walks the subtree pre-order, threading the most
// recently seen interface number forward, and reports that interface's
// number the first time match is satisfied.
func (n *Node) findIfaceFor(match func(Descriptor) bool) (uint8, bool) {
	var currentIface uint8
	var haveIface bool
	var result uint8
	var found bool

	var walk func(*Node)
	walk = func(node *Node) {
		if found {
			return
		}
		if iface, ok := node.Parsed.(Interface); ok {
			currentIface = iface.InterfaceNumber
			haveIface = true
		}
		if haveIface && match(node.Parsed) {
			result = currentIface
			found = true
			return
		}
		for _, c := range node.Children {
			walk(c)
			if found {
				return
			}
		}
	}
	walk(n)
	return result, found
}

// FindMicIface returns the interface number owning the first UAC
// microphone (isochronous IN) endpoint found.
func (n *Node) FindMicIface() (uint8, bool) {
	return n.findIfaceFor(func(d Descriptor) bool {
		ep, ok := d.(UacEndpoint)
		return ok && ep.IsIn()
	})
}

// FindSpkrIface returns the interface number owning the first UAC
// speaker (isochronous OUT) endpoint found.
func (n *Node) FindSpkrIface() (uint8, bool) {
	return n.findIfaceFor(func(d Descriptor) bool {
		ep, ok := d.(UacEndpoint)
		return ok && ep.IsOut()
	})
}

// FindMicEp returns the endpoint address of the first UAC microphone endpoint.
func (n *Node) FindMicEp() (uint8, bool) {
	var result uint8
	var found bool
	n.walk(func(node *Node) {
		if found {
			return
		}
		if ep, ok := node.Parsed.(UacEndpoint); ok && ep.IsIn() {
			result = ep.EndpointAddress
			found = true
		}
	})
	return result, found
}

// FindSpkrEp returns the endpoint address of the first UAC speaker endpoint.
func (n *Node) FindSpkrEp() (uint8, bool) {
	var result uint8
	var found bool
	n.walk(func(node *Node) {
		if found {
			return
		}
		if ep, ok := node.Parsed.(UacEndpoint); ok && ep.IsOut() {
			result = ep.EndpointAddress
			found = true
		}
	})
	return result, found
}

// FindHidIface returns the interface number of the first HID-class interface.
func (n *Node) FindHidIface() (uint8, bool) {
	var result uint8
	var found bool
	n.walk(func(node *Node) {
		if found {
			return
		}
		if iface, ok := node.Parsed.(Interface); ok && iface.InterfaceClass == ClassHID {
			result = iface.InterfaceNumber
			found = true
		}
	})
	return result, found
}

// FindHidEp returns the address of the first OUT endpoint under a
// HID-class interface. This package's record catalogue has no
// dedicated HID endpoint family, so this matches on the generic
// Endpoint type rather than a class-specific one.
func (n *Node) FindHidEp() (uint8, bool) {
	var inHidIface bool
	var result uint8
	var found bool
	n.walk(func(node *Node) {
		if found {
			return
		}
		if iface, ok := node.Parsed.(Interface); ok {
			inHidIface = iface.InterfaceClass == ClassHID
		}
		if ep, ok := node.Parsed.(Endpoint); ok && inHidIface && ep.IsOut() {
			result = ep.EndpointAddress
			found = true
		}
	})
	return result, found
}

// IsAudioControl reports whether this node is an AudioControl interface.
func (n *Node) IsAudioControl() (bool, error) {
	iface, ok := n.Parsed.(Interface)
	if !ok {
		return false, ErrNotInterfaceNode
	}
	return iface.IsAudioControl(), nil
}

// IsAudioStreaming reports whether this node is an AudioStreaming interface.
func (n *Node) IsAudioStreaming() (bool, error) {
	iface, ok := n.Parsed.(Interface)
	if !ok {
		return false, ErrNotInterfaceNode
	}
	return iface.IsAudioStreaming(), nil
}

// IsVideoStreaming reports whether the named interface/alt-setting is a
// VideoStreaming interface.
func (n *Node) IsVideoStreaming(setting IfaceAltSetting) (bool, error) {
	node := n.GetIfaceByNum(setting)
	if node == nil {
		return false, fmt.Errorf("usbdesc: interface %d alt %d: %w", setting.Iface, setting.Alt, ErrNoAssociatedInterface)
	}
	iface, ok := node.Parsed.(Interface)
	if !ok {
		return false, ErrNotInterfaceNode
	}
	return iface.IsVideoStreaming(), nil
}

// IsSpeakerInterface reports whether this Interface node owns a speaker-shaped endpoint.
func (n *Node) IsSpeakerInterface() (bool, error) {
	if _, ok := n.Parsed.(Interface); !ok {
		return false, ErrNotInterfaceNode
	}
	for _, c := range n.Children {
		if ep, ok := c.Parsed.(Endpoint); ok && ep.IsSpeaker() {
			return true, nil
		}
	}
	return false, nil
}

// IsMicInterface reports whether this Interface node owns a mic-shaped endpoint.
func (n *Node) IsMicInterface() (bool, error) {
	if _, ok := n.Parsed.(Interface); !ok {
		return false, ErrNotInterfaceNode
	}
	for _, c := range n.Children {
		if ep, ok := c.Parsed.(Endpoint); ok && ep.IsMic() {
			return true, nil
		}
	}
	return false, nil
}
