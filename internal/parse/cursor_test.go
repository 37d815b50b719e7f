package parse

import (
	"bytes"
	"io"
	"testing"
)

func TestCursorFields(t *testing.T) {
	c := NewCursor([]byte{0x0B, 0x34, 0x12, 0x78, 0x56, 0x34, 0x12, 0xFF})
	if v := c.Uint8(); v != 0x0B {
		t.Fatalf("uint8: %#x", v)
	}
	if v := c.Uint16(); v != 0x1234 {
		t.Fatalf("uint16: %#x", v)
	}
	if v := c.Uint32(); v != 0x12345678 {
		t.Fatalf("uint32: %#x", v)
	}
	if c.Remaining() != 1 {
		t.Fatalf("remaining: %d", c.Remaining())
	}
	if err := c.Err(); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
}

func TestCursorTruncated(t *testing.T) {
	c := NewCursor([]byte{0x01, 0x02})
	if v := c.Uint32(); v != 0 {
		t.Fatalf("overrun must yield zero, got %#x", v)
	}
	if c.Err() != io.ErrUnexpectedEOF {
		t.Fatalf("err: %v", c.Err())
	}
	// the error is sticky and later reads stay zero
	if v := c.Uint8(); v != 0 || c.Err() != io.ErrUnexpectedEOF {
		t.Fatalf("sticky error violated: %#x %v", v, c.Err())
	}
}

func TestCursorCString(t *testing.T) {
	c := NewCursor([]byte{'a', 'b', 'c', 0, 0, 'x'})
	if s := c.CString(); !bytes.Equal(s, []byte("abc")) {
		t.Fatalf("cstring: %q", s)
	}
	if s := c.CString(); len(s) != 0 || c.Err() != nil {
		t.Fatalf("empty cstring: %q %v", s, c.Err())
	}
	if c.Remaining() != 1 {
		t.Fatalf("remaining: %d", c.Remaining())
	}
}

func TestCursorCStringMissingTerminator(t *testing.T) {
	c := NewCursor([]byte{'a', 'b'})
	if s := c.CString(); s != nil {
		t.Fatalf("unterminated cstring must fail, got %q", s)
	}
	if c.Err() != io.ErrUnexpectedEOF {
		t.Fatalf("err: %v", c.Err())
	}
}

func TestCursorBytes(t *testing.T) {
	c := NewCursor([]byte{1, 2, 3})
	if b := c.Bytes(2); !bytes.Equal(b, []byte{1, 2}) {
		t.Fatalf("bytes: %v", b)
	}
	if b := c.Bytes(2); b != nil || c.Err() != io.ErrUnexpectedEOF {
		t.Fatalf("overrun: %v %v", b, c.Err())
	}
	c2 := NewCursor([]byte{1})
	if b := c2.Bytes(-1); b != nil || c2.Err() != io.ErrUnexpectedEOF {
		t.Fatalf("negative length: %v %v", b, c2.Err())
	}
}
