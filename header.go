package arjstream

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"hash/crc32"
	"io"
	"os"
)

var debugEnabled = os.Getenv("ARJSTREAM_DEBUG") != ""

func debugf(format string, a ...any) {
	if debugEnabled {
		fmt.Fprintf(os.Stderr, "[arjstream] "+format+"\n", a...)
	}
}

// countingReader provides the little-endian primitive reads used by the
// header decoders and tracks how many bytes have been consumed from the
// outer stream. Payload views also read through it, so the count stays
// exact for the whole session.
type countingReader struct {
	br *bufio.Reader
	n  int64
}

func newCountingReader(r io.Reader) *countingReader {
	return &countingReader{br: bufio.NewReader(r)}
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.br.Read(p)
	c.n += int64(n)
	return n, err
}

func (c *countingReader) readByte() (byte, error) {
	b, err := c.br.ReadByte()
	if err == nil {
		c.n++
	}
	return b, err
}

// readFull fills p or fails with io.ErrUnexpectedEOF on a short stream.
func (c *countingReader) readFull(p []byte) error {
	n, err := io.ReadFull(c.br, p)
	c.n += int64(n)
	if err == io.EOF {
		err = io.ErrUnexpectedEOF
	}
	return err
}

func (c *countingReader) readUint16() (uint16, error) {
	var b [2]byte
	if err := c.readFull(b[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b[:]), nil
}

func (c *countingReader) readUint32() (uint32, error) {
	var b [4]byte
	if err := c.readFull(b[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b[:]), nil
}

// findHeader scans the stream for the next basic header. It returns the
// CRC-verified header body, or nil when the zero-length end-of-archive
// marker is found.
//
// The scan slides one byte at a time and stops as soon as the previous
// byte is 0x60 or the current byte is 0xEA. This is deliberately looser
// than requiring the full pair in sequence: a run like 0x60 0x60 0xEA
// anchors at the second 0x60, with the 0xEA consumed as part of the
// length field. Candidates with a declared length over the format
// ceiling, or whose trailing CRC32 does not match the body, are dropped
// and the scan resumes from the following byte.
func (r *Reader) findHeader() ([]byte, error) {
	for {
		second, err := r.in.readByte()
		if err != nil {
			return nil, fmt.Errorf("scanning for header: %w", eofIsTruncation(err))
		}
		for {
			first := second
			second, err = r.in.readByte()
			if err != nil {
				return nil, fmt.Errorf("scanning for header: %w", eofIsTruncation(err))
			}
			if first == arjMagic1 || second == arjMagic2 {
				break
			}
		}
		size, err := r.in.readUint16()
		if err != nil {
			return nil, fmt.Errorf("reading basic header length: %w", err)
		}
		if size == 0 {
			// end of archive
			return nil, nil
		}
		if size > maxBasicHeaderSize {
			debugf("spurious basic header length %d at offset %d, rescanning", size, r.in.n)
			continue
		}
		body := make([]byte, size)
		if err := r.in.readFull(body); err != nil {
			return nil, fmt.Errorf("reading basic header body: %w", err)
		}
		want, err := r.in.readUint32()
		if err != nil {
			return nil, fmt.Errorf("reading basic header crc32: %w", err)
		}
		if got := crc32.ChecksumIEEE(body); got == want {
			return body, nil
		}
		debugf("basic header crc32 mismatch at offset %d, resynchronizing", r.in.n)
	}
}

// eofIsTruncation maps a bare io.EOF to io.ErrUnexpectedEOF: running out
// of bytes while still searching for a header means the archive was cut
// off before its end-of-archive marker.
func eofIsTruncation(err error) error {
	if err == io.EOF {
		return io.ErrUnexpectedEOF
	}
	return err
}
