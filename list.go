package arjstream

import (
	"errors"
	"fmt"
	"io"
	"time"
)

// EntryInfo summarizes one archive entry without exposing its payload.
type EntryInfo struct {
	Name           string    `json:"name"`
	Comment        string    `json:"comment,omitempty"`
	CompressedSize int64     `json:"compressedSize"`
	OriginalSize   int64     `json:"originalSize"`
	Method         int       `json:"method"`
	Stored         bool      `json:"stored"`
	Directory      bool      `json:"directory"`
	ModTime        time.Time `json:"modTime"`
}

// ArchiveInfo is the result of listing a whole archive.
type ArchiveInfo struct {
	Name    string      `json:"name"`
	Comment string      `json:"comment,omitempty"`
	Entries []EntryInfo `json:"entries"`
}

// ListFS walks the archive at path via the provided FileSystem and
// returns a summary of every entry. The archive is a linear stream, so
// listing still consumes each entry's payload; a stored entry with a bad
// payload CRC32 fails the listing.
func ListFS(fsys FileSystem, path string, opts ...Option) (*ArchiveInfo, error) {
	r, err := OpenFS(fsys, path, opts...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = r.Close() }()

	info := &ArchiveInfo{Name: r.Name(), Comment: r.Comment()}
	for {
		e, err := r.Next()
		if errors.Is(err, io.EOF) {
			return info, nil
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		info.Entries = append(info.Entries, EntryInfo{
			Name:           e.Name(),
			Comment:        e.Comment(),
			CompressedSize: e.CompressedSize(),
			OriginalSize:   e.Size(),
			Method:         e.Method(),
			Stored:         e.Method() == MethodStored,
			Directory:      e.IsDirectory(),
			ModTime:        e.ModTime(),
		})
	}
}

// List is a convenience over ListFS using the default filesystem.
func List(path string, opts ...Option) (*ArchiveInfo, error) {
	return ListFS(defaultFS, path, opts...)
}
