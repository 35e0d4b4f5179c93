package usbdesc

import (
	"bytes"
	"testing"
)

func TestCursorPrimitives(t *testing.T) {
	c := &cursor{b: []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0x09}}
	if v := c.u8(); v != 0x01 {
		t.Fatalf("u8() = 0x%02x, want 0x01", v)
	}
	if v := c.u16(); v != 0x0302 {
		t.Fatalf("u16() = 0x%04x, want 0x0302", v)
	}
	if v := c.u24(); v != 0x060504 {
		t.Fatalf("u24() = 0x%06x, want 0x060504", v)
	}
	rest := c.take(2)
	if !bytes.Equal(rest, []byte{0x07, 0x08}) {
		t.Fatalf("take(2) = % x, want 07 08", rest)
	}
	if c.len() != 1 {
		t.Fatalf("len() = %d, want 1", c.len())
	}
}

func TestLe24RoundTrip(t *testing.T) {
	b := make([]byte, 3)
	putLe24(b, 48000)
	if got := le24(b); got != 48000 {
		t.Fatalf("le24(putLe24(48000)) = %d, want 48000", got)
	}
}

func TestWithHeaderComputesLength(t *testing.T) {
	payload := []byte{0xAA, 0xBB, 0xCC}
	out := withHeader(DescTypeDevice, payload)
	if out[0] != 5 || out[1] != DescTypeDevice {
		t.Fatalf("withHeader header = % x, want [05 %02x]", out[:2], DescTypeDevice)
	}
	if !bytes.Equal(out[2:], payload) {
		t.Fatalf("withHeader payload = % x, want % x", out[2:], payload)
	}
}

func TestWithSubtypeComputesLength(t *testing.T) {
	payload := []byte{0xAA, 0xBB}
	out := withSubtype(DescTypeCsInterface, uacSubtypeHeader, payload)
	if out[0] != 5 || out[1] != DescTypeCsInterface || out[2] != uacSubtypeHeader {
		t.Fatalf("withSubtype header = % x, want [05 %02x %02x]", out[:3], DescTypeCsInterface, uacSubtypeHeader)
	}
}

func TestDecodeHeader(t *testing.T) {
	h := decodeHeader([]byte{0x09, 0x02, 0xFF})
	if h.Length != 9 || h.Type != 0x02 {
		t.Fatalf("decodeHeader = %+v, want {9 2}", h)
	}
}
