// Package arjstream reads legacy ARJ archives as a forward-only stream:
// the main header is decoded at open time, entries are visited in order
// with Next, and the payload of stored (uncompressed) entries can be read
// back with CRC32 verification. Encrypted and multi-volume archives are
// rejected, and compressed entries are enumerable but not extractable.
package arjstream

import (
	"errors"
	"fmt"
	"hash/crc32"
	"io"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

// Reader decodes one ARJ archive from an io.Reader. It is not safe for
// concurrent use; exactly one goroutine may drive it at a time.
type Reader struct {
	in     *countingReader
	closer io.Closer
	enc    encoding.Encoding

	main      *MainHeader
	cur       *LocalFileHeader
	data      io.Reader
	exhausted bool
}

type options struct {
	enc encoding.Encoding
}

// Option configures New/Open.
type Option func(*options)

// WithEncoding sets the character encoding used to decode names and
// comments. The default is code page 437, the encoding DOS-era archivers
// wrote. Pass nil to take the bytes as-is.
func WithEncoding(enc encoding.Encoding) Option {
	return func(o *options) { o.enc = enc }
}

// New reads the main header from r and returns a Reader positioned
// before the first entry. Ownership of r is taken: if r is an io.Closer
// it will be closed by Close. New fails if the archive is encrypted or
// spans multiple volumes; the caller still owns closing r in that case.
func New(r io.Reader, opts ...Option) (*Reader, error) {
	o := options{enc: charmap.CodePage437}
	for _, opt := range opts {
		opt(&o)
	}

	ar := &Reader{in: newCountingReader(r), enc: o.enc}
	if c, ok := r.(io.Closer); ok {
		ar.closer = c
	}

	main, err := ar.readMainHeader()
	if err != nil {
		return nil, err
	}
	if main.Flags&FlagGarbled != 0 {
		return nil, ErrEncrypted
	}
	if main.Flags&FlagVolume != 0 {
		return nil, ErrMultiVolume
	}
	ar.main = main
	return ar, nil
}

// Open opens the archive at path using the default filesystem.
func Open(path string, opts ...Option) (*Reader, error) {
	return OpenFS(defaultFS, path, opts...)
}

// OpenFS opens the archive at path via the provided FileSystem. The file
// is closed on error.
func OpenFS(fsys FileSystem, path string, opts ...Option) (*Reader, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return nil, err
	}
	ar, err := New(f, opts...)
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return ar, nil
}

func (r *Reader) decodeText(b []byte) (string, error) {
	if r.enc == nil || len(b) == 0 {
		return string(b), nil
	}
	out, err := r.enc.NewDecoder().Bytes(b)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// MainHeader returns the archive-level header decoded at open time.
func (r *Reader) MainHeader() *MainHeader { return r.main }

// Name returns the archive's recorded name.
func (r *Reader) Name() string { return r.main.Name }

// Comment returns the archive's recorded comment.
func (r *Reader) Comment() string { return r.main.Comment }

// BytesRead reports how many bytes have been consumed from the
// underlying stream. Diagnostic only.
func (r *Reader) BytesRead() int64 { return r.in.n }

// Next advances to the next entry. Any unread payload of the current
// entry is drained first; a CRC32 failure detected while draining a
// stored entry surfaces here. Next returns io.EOF once the end-of-archive
// marker is reached, and keeps returning io.EOF without touching the
// stream afterwards.
func (r *Reader) Next() (*Entry, error) {
	if r.exhausted {
		return nil, io.EOF
	}
	if r.data != nil {
		// The format has no index: the next header starts right after
		// the current entry's compressed bytes, so they must be consumed.
		if _, err := io.Copy(io.Discard, r.data); err != nil {
			return nil, fmt.Errorf("draining entry %q: %w", r.cur.Name, err)
		}
		r.cur, r.data = nil, nil
	}

	h, err := r.readLocalFileHeader()
	if err != nil {
		return nil, err
	}
	if h == nil {
		r.exhausted = true
		return nil, io.EOF
	}

	r.cur = h
	var view io.Reader = &io.LimitedReader{R: r.in, N: int64(h.CompressedSize)}
	if h.Method == MethodStored {
		view = &crc32Verifier{r: view, remaining: int64(h.OriginalSize), want: h.OriginalCRC32}
	}
	r.data = view
	return &Entry{h: h}, nil
}

// CanReadEntryData reports whether the current entry's payload can be
// read, i.e. whether its compression method is stored.
func (r *Reader) CanReadEntryData() bool {
	return r.cur != nil && r.cur.Method == MethodStored
}

var errNoEntry = errors.New("no current entry")

// Read reads payload bytes of the current entry. It returns 0, io.EOF at
// the end of the entry's data; call Next to move on. Entries with a
// non-stored method fail with ErrUnsupportedMethod on every call.
func (r *Reader) Read(p []byte) (int, error) {
	if r.cur == nil {
		return 0, errNoEntry
	}
	if r.cur.Method != MethodStored {
		return 0, fmt.Errorf("%w: %d", ErrUnsupportedMethod, r.cur.Method)
	}
	return r.data.Read(p)
}

// Close releases the underlying stream. It is safe to call in any state;
// operations after Close fail with the source's error.
func (r *Reader) Close() error {
	if r.closer == nil {
		return nil
	}
	return r.closer.Close()
}

// crc32Verifier delivers at most remaining bytes from a bounded view and
// checks the running CRC32 against the header's declared value once the
// declared size has been read. The mismatch error replays on every read
// at end-of-data.
type crc32Verifier struct {
	r         io.Reader
	remaining int64
	sum       uint32
	want      uint32
}

func (v *crc32Verifier) Read(p []byte) (int, error) {
	if v.remaining <= 0 {
		if v.sum != v.want {
			return 0, fmt.Errorf("entry payload: %w", ErrChecksum)
		}
		return 0, io.EOF
	}
	if int64(len(p)) > v.remaining {
		p = p[:v.remaining]
	}
	n, err := v.r.Read(p)
	if n > 0 {
		v.sum = crc32.Update(v.sum, crc32.IEEETable, p[:n])
		v.remaining -= int64(n)
	}
	if err == io.EOF {
		if v.remaining > 0 {
			err = io.ErrUnexpectedEOF
		} else {
			// Hold the EOF back so the next read performs verification.
			err = nil
		}
	}
	return n, err
}
