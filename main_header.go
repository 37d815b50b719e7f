package arjstream

import (
	"fmt"
	"hash/crc32"

	"github.com/javi11/arjstream/internal/parse"
)

// splitBasicHeader splits a verified basic header body into the
// length-prefixed first header block and a cursor positioned at the
// null-terminated name/comment that follow it.
func splitBasicHeader(body []byte) ([]byte, *parse.Cursor, error) {
	c := parse.NewCursor(body)
	firstLen := int(c.Uint8())
	first := c.Bytes(firstLen - 1)
	if err := c.Err(); err != nil {
		return nil, nil, fmt.Errorf("first header length %d exceeds basic header: %w", firstLen, err)
	}
	return first, c, nil
}

// readMainHeader decodes the archive-level header. It must be called
// exactly once, before any local file header is read.
func (r *Reader) readMainHeader() (*MainHeader, error) {
	body, err := r.findHeader()
	if err != nil {
		return nil, err
	}
	if body == nil {
		return nil, ErrNoHeaders
	}

	first, tail, err := splitBasicHeader(body)
	if err != nil {
		return nil, fmt.Errorf("main header: %w", err)
	}

	fc := parse.NewCursor(first)
	h := &MainHeader{
		ArchiverVersion:     fc.Uint8(),
		MinVersion:          fc.Uint8(),
		HostOS:              fc.Uint8(),
		Flags:               fc.Uint8(),
		SecurityVersion:     fc.Uint8(),
		FileType:            fc.Uint8(),
		Reserved:            fc.Uint8(),
		DateTimeCreated:     fc.Uint32(),
		DateTimeModified:    fc.Uint32(),
		ArchiveSize:         fc.Uint32(),
		SecurityEnvelopePos: fc.Uint32(),
		FileSpecPos:         fc.Uint16(),
		SecurityEnvelopeLen: fc.Uint16(),
		EncryptionVersion:   fc.Uint8(),
		LastChapter:         fc.Uint8(),
	}
	if len(first)+1 >= 33 {
		h.ProtectionFactor = fc.Uint8()
		h.Flags2 = fc.Uint8()
		fc.Bytes(2) // reserved
	}
	if err := fc.Err(); err != nil {
		return nil, fmt.Errorf("main header fields: %w", err)
	}

	if h.Name, err = r.decodeText(tail.CString()); err != nil {
		return nil, fmt.Errorf("main header name: %w", err)
	}
	if h.Comment, err = r.decodeText(tail.CString()); err != nil {
		return nil, fmt.Errorf("main header comment: %w", err)
	}
	if err := tail.Err(); err != nil {
		return nil, fmt.Errorf("main header name/comment: %w", err)
	}

	// At most one extended header follows, read straight off the outer
	// stream. Unlike the basic header scan, a bad CRC here is fatal.
	extLen, err := r.in.readUint16()
	if err != nil {
		return nil, fmt.Errorf("main extended header length: %w", err)
	}
	if extLen > 0 {
		ext := make([]byte, extLen)
		if err := r.in.readFull(ext); err != nil {
			return nil, fmt.Errorf("main extended header body: %w", err)
		}
		want, err := r.in.readUint32()
		if err != nil {
			return nil, fmt.Errorf("main extended header crc32: %w", err)
		}
		if crc32.ChecksumIEEE(ext) != want {
			return nil, fmt.Errorf("main extended header: %w", ErrChecksum)
		}
		h.ExtendedHeader = ext
	}

	return h, nil
}
