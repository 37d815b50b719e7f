package parse

import (
	"bytes"
	"io"
)

// Cursor walks the little-endian fields of an in-memory header block.
// Reads past the end of the block set a sticky io.ErrUnexpectedEOF and
// return zero values, so a run of field reads needs a single Err check.
type Cursor struct {
	b   []byte
	off int
	err error
}

func NewCursor(b []byte) *Cursor { return &Cursor{b: b} }

// Err returns the first error encountered by the cursor, if any.
func (c *Cursor) Err() error { return c.err }

// Remaining reports how many unread bytes are left in the block.
func (c *Cursor) Remaining() int { return len(c.b) - c.off }

func (c *Cursor) take(n int) []byte {
	if c.err != nil {
		return nil
	}
	if n < 0 || n > len(c.b)-c.off {
		c.err = io.ErrUnexpectedEOF
		return nil
	}
	b := c.b[c.off : c.off+n]
	c.off += n
	return b
}

func (c *Cursor) Uint8() uint8 {
	b := c.take(1)
	if b == nil {
		return 0
	}
	return b[0]
}

func (c *Cursor) Uint16() uint16 {
	b := c.take(2)
	if b == nil {
		return 0
	}
	return uint16(b[0]) | uint16(b[1])<<8
}

func (c *Cursor) Uint32() uint32 {
	b := c.take(4)
	if b == nil {
		return 0
	}
	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
}

// Bytes consumes and returns the next n bytes of the block.
func (c *Cursor) Bytes(n int) []byte { return c.take(n) }

// CString consumes bytes up to and including the next NUL and returns
// them without the terminator. A block ending before the terminator is
// a truncation error.
func (c *Cursor) CString() []byte {
	if c.err != nil {
		return nil
	}
	i := bytes.IndexByte(c.b[c.off:], 0)
	if i < 0 {
		c.err = io.ErrUnexpectedEOF
		return nil
	}
	b := c.b[c.off : c.off+i]
	c.off += i + 1
	return b
}
