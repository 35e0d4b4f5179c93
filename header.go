package usbdesc

// Header is the universal 2-byte prefix every descriptor record begins
// with: bLength (total record size, including itself) and
// bDescriptorType. It is read once per record during the flat tokenize
// pass and never stored on the parsed payload; bLength is recomputed
// from the payload on every serialize instead of trusted after mutation.
type Header struct {
	Length uint8
	Type   uint8
}

const headerSize = 2

func decodeHeader(b []byte) Header {
	return Header{Length: b[0], Type: b[1]}
}

// le24 reads a 24-bit little-endian unsigned integer, used for
// tSamFreq entries in UAC Type I format descriptors.
func le24(b []byte) uint32 {
	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16
}

func putLe24(b []byte, v uint32) {
	b[0] = byte(v)
	b[1] = byte(v >> 8)
	b[2] = byte(v >> 16)
}

// cursor walks a record's payload left to right. Fixed-field decoders in
// usb_descriptors.go/uac_descriptors.go/uvc_descriptors.go all read
// through one of these rather than indexing the slice by hand, since
// most of those payloads mix fixed fields with a variable-length tail.
type cursor struct {
	b []byte
}

func (c *cursor) u8() uint8 {
	v := c.b[0]
	c.b = c.b[1:]
	return v
}

func (c *cursor) u16() uint16 {
	v := uint16(c.b[0]) | uint16(c.b[1])<<8
	c.b = c.b[2:]
	return v
}

func (c *cursor) u32() uint32 {
	v := uint32(c.b[0]) | uint32(c.b[1])<<8 | uint32(c.b[2])<<16 | uint32(c.b[3])<<24
	c.b = c.b[4:]
	return v
}

func (c *cursor) u24() uint32 {
	v := le24(c.b)
	c.b = c.b[3:]
	return v
}

// take consumes and returns the next n bytes verbatim.
func (c *cursor) take(n int) []byte {
	v := c.b[:n]
	c.b = c.b[n:]
	return v
}

// rest consumes and returns everything left in the cursor.
func (c *cursor) rest() []byte {
	v := c.b
	c.b = nil
	return v
}

func (c *cursor) len() int {
	return len(c.b)
}

// appendU16/appendU32/appendU24 append little-endian integers to a
// growing payload buffer. Serialize methods build their payload this
// way, then header.go's withHeader/withSubtype prepend the record
// header once the final length is known.
func appendU16(b []byte, v uint16) []byte {
	return append(b, byte(v), byte(v>>8))
}

func appendU32(b []byte, v uint32) []byte {
	return append(b, byte(v), byte(v>>8), byte(v>>16), byte(v>>24))
}

func appendU24(b []byte, v uint32) []byte {
	return append(b, byte(v), byte(v>>8), byte(v>>16))
}

// withHeader prepends {bLength, bDescriptorType} to payload, computing
// bLength from the payload's actual length rather than any stored field.
func withHeader(descType uint8, payload []byte) []byte {
	out := make([]byte, 0, len(payload)+headerSize)
	out = append(out, uint8(len(payload)+headerSize), descType)
	return append(out, payload...)
}

// withSubtype prepends {bLength, bDescriptorType, bDescriptorSubtype} to
// payload, used by every class-specific (CsInterface/CsEndpoint) record.
func withSubtype(descType, subtype uint8, payload []byte) []byte {
	out := make([]byte, 0, len(payload)+headerSize+1)
	out = append(out, uint8(len(payload)+headerSize+1), descType, subtype)
	return append(out, payload...)
}
