package arjstream

import "errors"

// Compression method values stored in a local file header. Only
// MethodStored payloads can be read back through this package; entries
// using the other methods are still enumerable.
const (
	MethodStored            = 0
	MethodCompressedMost    = 1
	MethodCompressed        = 2
	MethodCompressedFaster  = 3
	MethodCompressedFastest = 4
	MethodNoDataNoCRC       = 8
	MethodNoData            = 9
)

// Flag bits shared by the main and local header flag byte.
const (
	FlagGarbled = 0x01 // archive/entry is encrypted
	FlagAnsiPag = 0x02
	FlagVolume  = 0x04 // archive continues in another volume
	FlagArjProt = 0x08
	FlagPathSym = 0x10 // name uses '/' path separators
	FlagBackup  = 0x20
	FlagSecured = 0x40
	FlagAltName = 0x80
)

// Host OS values recorded in headers.
const (
	HostOSMSDOS   = 0
	HostOSPrimos  = 1
	HostOSUnix    = 2
	HostOSAmiga   = 3
	HostOSMacOS   = 4
	HostOSOS2     = 5
	HostOSAppleGS = 6
	HostOSAtariST = 7
	HostOSNext    = 8
	HostOSVaxVMS  = 9
	HostOSWin95   = 10
	HostOSWin32   = 11
)

// File type values recorded in headers.
const (
	FileTypeBinary       = 0
	FileTypeText         = 1
	FileTypeCommentHdr   = 2
	FileTypeDirectory    = 3
	FileTypeVolumeLabel  = 4
	FileTypeChapterLabel = 5
)

// MainHeader holds the archive-level metadata decoded once at open time.
type MainHeader struct {
	ArchiverVersion     byte
	MinVersion          byte
	HostOS              byte
	Flags               byte
	SecurityVersion     byte
	FileType            byte
	Reserved            byte
	DateTimeCreated     uint32 // packed DOS time
	DateTimeModified    uint32 // packed DOS time
	ArchiveSize         uint32
	SecurityEnvelopePos uint32
	FileSpecPos         uint16
	SecurityEnvelopeLen uint16
	EncryptionVersion   byte
	LastChapter         byte

	// Present only when the first header is at least 33 bytes long.
	ProtectionFactor byte
	Flags2           byte

	Name    string
	Comment string

	// Raw bytes of the optional extended header, nil when absent.
	ExtendedHeader []byte
}

// LocalFileHeader holds the metadata of a single archived entry.
type LocalFileHeader struct {
	ArchiverVersion  byte
	MinVersion       byte
	HostOS           byte
	Flags            byte
	Method           byte
	FileType         byte
	Reserved         byte
	DateTimeModified uint32 // packed DOS time
	CompressedSize   uint32
	OriginalSize     uint32
	OriginalCRC32    uint32
	FileSpecPos      uint16
	AccessMode       uint16
	FirstChapter     byte
	LastChapter      byte

	// Present only when the first header is at least 33 bytes long.
	ExtendedFilePos uint32
	// Present only when the first header is at least 45 bytes long.
	DateTimeAccessed uint32
	DateTimeCreated  uint32
	OriginalSizeAlt  uint32

	Name    string
	Comment string

	// Raw extended header blocks in stream order, empty for most archives.
	ExtendedHeaders [][]byte
}

// Sentinel errors surfaced by New/Open, Next and Read.
var (
	ErrNoHeaders         = errors.New("archive ends without any headers")
	ErrEncrypted         = errors.New("encrypted archives are unsupported")
	ErrMultiVolume       = errors.New("multi-volume archives are unsupported")
	ErrUnsupportedMethod = errors.New("unsupported compression method")
	ErrChecksum          = errors.New("crc32 mismatch")
)
