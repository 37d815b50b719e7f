package arjstream

import (
	"io/fs"
	"os"
)

// FileSystem abstracts the minimal operations needed to open archives by
// path (useful for virtual / in-memory tests).
type FileSystem interface {
	Open(path string) (fs.File, error)
}

type osFS struct{}

func (osFS) Open(p string) (fs.File, error) { return os.Open(p) }

var defaultFS osFS
