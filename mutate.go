package usbdesc

import (
	"fmt"

	"github.com/google/uuid"
)

// RemoveHighFps drops every frame-interval entry faster than
// HighFpsIntervalFloor from every frame descriptor in this subtree,
// recursing unconditionally regardless of node type.
func (n *Node) RemoveHighFps() {
	switch d := n.Parsed.(type) {
	case UvcFrameFrameBased:
		d.FrameIntervals = filterU32(d.FrameIntervals, func(v uint32) bool { return v >= HighFpsIntervalFloor })
		n.Parsed = d
	case FrameMjpeg:
		d.FrameIntervals = filterU32(d.FrameIntervals, func(v uint32) bool { return v >= HighFpsIntervalFloor })
		n.Parsed = d
	case FrameUncompressed:
		d.FrameIntervals = filterU32(d.FrameIntervals, func(v uint32) bool { return v >= HighFpsIntervalFloor })
		n.Parsed = d
	}
	for _, c := range n.Children {
		c.RemoveHighFps()
	}
}

func filterU32(in []uint32, keep func(uint32) bool) []uint32 {
	out := in[:0:0]
	for _, v := range in {
		if keep(v) {
			out = append(out, v)
		}
	}
	return out
}

// RemoveIfaces drops every direct-child Interface whose number appears
// in ids, then recurses into whatever remains.
func (n *Node) RemoveIfaces(ids []uint8) {
	kept := n.Children[:0:0]
	for _, c := range n.Children {
		if iface, ok := c.Parsed.(Interface); ok && containsU8(ids, iface.InterfaceNumber) {
			continue
		}
		kept = append(kept, c)
	}
	n.Children = kept
	for _, c := range n.Children {
		c.RemoveIfaces(ids)
	}
}

func containsU8(xs []uint8, v uint8) bool {
	for _, x := range xs {
		if x == v {
			return true
		}
	}
	return false
}

// RemoveIfaceAssoc drops every direct-child InterfaceAssociation whose
// [FirstInterface, LastInterface] range overlaps any id in ids, then
// recurses into whatever remains.
func (n *Node) RemoveIfaceAssoc(ids []uint8) {
	kept := n.Children[:0:0]
	for _, c := range n.Children {
		if assoc, ok := c.Parsed.(InterfaceAssociation); ok && rangeOverlapsAny(assoc.FirstInterface, assoc.LastInterface(), ids) {
			continue
		}
		kept = append(kept, c)
	}
	n.Children = kept
	for _, c := range n.Children {
		c.RemoveIfaceAssoc(ids)
	}
}

func rangeOverlapsAny(first, last uint8, ids []uint8) bool {
	for _, id := range ids {
		if id >= first && id <= last {
			return true
		}
	}
	return false
}

// RemoveH264 strips every frame-based (H.264) format from a UVC input
// header, rebuilding its packed bmaControls table to match the
// remaining formats. It only operates on a UvcInputHeader node — call
// it on the node GetUvcInputHdr returns.
func (n *Node) RemoveH264() error {
	hdr, ok := n.Parsed.(UvcInputHeader)
	if !ok {
		return ErrNotInputHeader
	}

	var bmaCtrls []uint8
	for idx, child := range n.Children {
		switch child.Parsed.(type) {
		case UvcFormatFrameBased:
			continue
		case FormatMjpeg, FormatUncompressed:
			start := idx * int(hdr.ControlSize)
			end := start + int(hdr.ControlSize)
			if end > len(hdr.BmaControls) {
				return fmt.Errorf("usbdesc: bmaControls too short for format at child index %d", idx)
			}
			bmaCtrls = append(bmaCtrls, hdr.BmaControls[start:end]...)
		default:
			return fmt.Errorf("usbdesc: unknown child type for UVC input header")
		}
	}

	kept := n.Children[:0:0]
	for _, c := range n.Children {
		if _, ok := c.Parsed.(UvcFormatFrameBased); ok {
			continue
		}
		kept = append(kept, c)
	}
	n.Children = kept

	hdr.BmaControls = bmaCtrls
	n.Parsed = hdr
	return nil
}

// RemoveHighResolution drops every frame whose pixel count exceeds
// MaxResolutionPixels, with one exception per format family so the
// format is never left with zero frames: if every frame in that family
// exceeds the cap, MJPEG and frame-based families keep only their
// smallest frame(s), while an uncompressed family keeps all of its
// frames. Uncompressed frames are segmented by pixel format GUID (YUY2
// and NV12 tracked separately); uncompressed frames under any other GUID
// are always kept. Frame-based (H.264) frames are NOT segmented by codec
// profile — they share one undifferentiated minimum, same as MJPEG.
func (n *Node) RemoveHighResolution() {
	const maxPixels = uint64(MaxResolutionPixels)

	var frameMin, mjpegMin, yuy2Min, nv12Min uint64
	var hasFrameMin, hasMjpegMin, hasYuy2Min, hasNv12Min bool

	var uncompressedPixFmt uuid.UUID
	var haveUncompressedPixFmt bool
	if f, ok := n.Parsed.(FormatUncompressed); ok {
		uncompressedPixFmt = f.GUIDFormat
		haveUncompressedPixFmt = true
	}

	for _, c := range n.Children {
		switch f := c.Parsed.(type) {
		case UvcFrameFrameBased:
			px := uint64(f.Width) * uint64(f.Height)
			if !hasFrameMin || px < frameMin {
				frameMin, hasFrameMin = px, true
			}
		case FrameMjpeg:
			px := uint64(f.Width) * uint64(f.Height)
			if !hasMjpegMin || px < mjpegMin {
				mjpegMin, hasMjpegMin = px, true
			}
		case FrameUncompressed:
			if !haveUncompressedPixFmt {
				continue
			}
			px := uint64(f.Width) * uint64(f.Height)
			switch uncompressedPixFmt {
			case GUIDYUY2:
				if !hasYuy2Min || px < yuy2Min {
					yuy2Min, hasYuy2Min = px, true
				}
			case GUIDNV12:
				if !hasNv12Min || px < nv12Min {
					nv12Min, hasNv12Min = px, true
				}
			}
		}
	}

	if hasFrameMin && frameMin > maxPixels {
		logResolutionCapExceeded("frame-based")
	}
	if hasMjpegMin && mjpegMin > maxPixels {
		logResolutionCapExceeded("mjpeg")
	}
	if hasYuy2Min && yuy2Min > maxPixels {
		logResolutionCapExceeded("uncompressed/yuy2")
	}
	if hasNv12Min && nv12Min > maxPixels {
		logResolutionCapExceeded("uncompressed/nv12")
	}

	kept := n.Children[:0:0]
	for _, c := range n.Children {
		switch f := c.Parsed.(type) {
		case UvcFrameFrameBased:
			px := uint64(f.Width) * uint64(f.Height)
			minPixels := uint64(0)
			if hasFrameMin {
				minPixels = frameMin
			}
			if px <= maxPixels || (minPixels > maxPixels && px == minPixels) || minPixels == 0 {
				kept = append(kept, c)
			}
		case FrameMjpeg:
			px := uint64(f.Width) * uint64(f.Height)
			minPixels := uint64(0)
			if hasMjpegMin {
				minPixels = mjpegMin
			}
			if px <= maxPixels || (minPixels > maxPixels && px == minPixels) || minPixels == 0 {
				kept = append(kept, c)
			}
		case FrameUncompressed:
			px := uint64(f.Width) * uint64(f.Height)
			var minPixels uint64
			if haveUncompressedPixFmt {
				switch uncompressedPixFmt {
				case GUIDYUY2:
					if hasYuy2Min {
						minPixels = yuy2Min
					}
				case GUIDNV12:
					if hasNv12Min {
						minPixels = nv12Min
					}
				}
			}
			if px <= maxPixels || minPixels > maxPixels || minPixels == 0 {
				kept = append(kept, c)
			}
		default:
			kept = append(kept, c)
		}
	}
	n.Children = kept

	for _, c := range n.Children {
		c.RemoveHighResolution()
	}
}
