package arjstream

import (
	"fmt"
	"hash/crc32"

	"github.com/javi11/arjstream/internal/parse"
)

// readLocalFileHeader decodes the header of the next entry. A nil header
// with nil error means the end-of-archive marker was reached.
func (r *Reader) readLocalFileHeader() (*LocalFileHeader, error) {
	body, err := r.findHeader()
	if err != nil {
		return nil, err
	}
	if body == nil {
		return nil, nil
	}

	first, tail, err := splitBasicHeader(body)
	if err != nil {
		return nil, fmt.Errorf("local header: %w", err)
	}

	fc := parse.NewCursor(first)
	h := &LocalFileHeader{
		ArchiverVersion:  fc.Uint8(),
		MinVersion:       fc.Uint8(),
		HostOS:           fc.Uint8(),
		Flags:            fc.Uint8(),
		Method:           fc.Uint8(),
		FileType:         fc.Uint8(),
		Reserved:         fc.Uint8(),
		DateTimeModified: fc.Uint32(),
		CompressedSize:   fc.Uint32(),
		OriginalSize:     fc.Uint32(),
		OriginalCRC32:    fc.Uint32(),
		FileSpecPos:      fc.Uint16(),
		AccessMode:       fc.Uint16(),
		FirstChapter:     fc.Uint8(),
		LastChapter:      fc.Uint8(),
	}
	firstLen := len(first) + 1
	if firstLen >= 33 {
		h.ExtendedFilePos = fc.Uint32()
		if firstLen >= 45 {
			h.DateTimeAccessed = fc.Uint32()
			h.DateTimeCreated = fc.Uint32()
			h.OriginalSizeAlt = fc.Uint32()
		}
	}
	// Longer first headers are accepted; bytes beyond the known fields
	// are ignored.
	if err := fc.Err(); err != nil {
		return nil, fmt.Errorf("local header fields: %w", err)
	}

	if h.Name, err = r.decodeText(tail.CString()); err != nil {
		return nil, fmt.Errorf("local header name: %w", err)
	}
	if h.Comment, err = r.decodeText(tail.CString()); err != nil {
		return nil, fmt.Errorf("local header comment: %w", err)
	}
	if err := tail.Err(); err != nil {
		return nil, fmt.Errorf("local header name/comment: %w", err)
	}

	// Zero or more extended headers follow on the outer stream, chained
	// until a zero length. Each carries its own CRC32; a mismatch is
	// fatal, there is no resynchronization past the basic header scan.
	for {
		extLen, err := r.in.readUint16()
		if err != nil {
			return nil, fmt.Errorf("extended header length: %w", err)
		}
		if extLen == 0 {
			break
		}
		ext := make([]byte, extLen)
		if err := r.in.readFull(ext); err != nil {
			return nil, fmt.Errorf("extended header body: %w", err)
		}
		want, err := r.in.readUint32()
		if err != nil {
			return nil, fmt.Errorf("extended header crc32: %w", err)
		}
		if crc32.ChecksumIEEE(ext) != want {
			return nil, fmt.Errorf("extended header: %w", ErrChecksum)
		}
		h.ExtendedHeaders = append(h.ExtendedHeaders, ext)
	}

	return h, nil
}
