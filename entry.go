package arjstream

import (
	"io/fs"
	"strings"
	"time"

	"github.com/javi11/arjstream/internal/dostime"
)

// Entry is the public metadata view over one archived file, returned by
// Reader.Next. It stays valid after advancing, but its payload can only
// be read while it is the reader's current entry.
type Entry struct {
	h *LocalFileHeader
}

// Name returns the entry name with '/' path separators. Archivers on
// DOS-family hosts wrote '\' unless the PATHSYM flag says otherwise.
func (e *Entry) Name() string {
	if e.h.Flags&FlagPathSym != 0 {
		return e.h.Name
	}
	return strings.ReplaceAll(e.h.Name, "\\", "/")
}

// Comment returns the entry's comment, empty for most archives.
func (e *Entry) Comment() string { return e.h.Comment }

// Size returns the original (uncompressed) size in bytes.
func (e *Entry) Size() int64 { return int64(e.h.OriginalSize) }

// CompressedSize returns the size of the entry's payload in the archive.
func (e *Entry) CompressedSize() int64 { return int64(e.h.CompressedSize) }

// Method returns the entry's compression method value.
func (e *Entry) Method() int { return int(e.h.Method) }

// HostOS returns the host OS value recorded for the entry.
func (e *Entry) HostOS() int { return int(e.h.HostOS) }

// IsDirectory reports whether the entry describes a directory.
func (e *Entry) IsDirectory() bool { return e.h.FileType == FileTypeDirectory }

// ModTime returns the entry's modification time.
func (e *Entry) ModTime() time.Time { return dostime.Time(e.h.DateTimeModified) }

// AccessTime returns the last-access time, or the zero time when the
// header did not carry one (first header shorter than 45 bytes).
func (e *Entry) AccessTime() time.Time { return dostime.Time(e.h.DateTimeAccessed) }

// CreateTime returns the creation time, or the zero time when the header
// did not carry one.
func (e *Entry) CreateTime() time.Time { return dostime.Time(e.h.DateTimeCreated) }

// Mode returns the entry's file mode. Permission bits are only
// meaningful for entries written on Unix hosts; other hosts yield 0o644
// (0o755 for directories).
func (e *Entry) Mode() fs.FileMode {
	var m fs.FileMode
	if e.h.HostOS == HostOSUnix {
		m = fs.FileMode(e.h.AccessMode) & fs.ModePerm
	} else if e.IsDirectory() {
		m = 0o755
	} else {
		m = 0o644
	}
	if e.IsDirectory() {
		m |= fs.ModeDir
	}
	return m
}

// Header exposes the decoded local file header, including raw extended
// header blocks.
func (e *Entry) Header() *LocalFileHeader { return e.h }
