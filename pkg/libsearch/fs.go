package libsearch

import (
	"io/fs"
	"os"
)

// FileSystem abstracts the existence checks for testability.
type FileSystem interface {
	Stat(name string) (fs.FileInfo, error)
}

// RealFileSystem implements FileSystem using the actual file system.
type RealFileSystem struct{}

// Stat returns file info for the given path.
func (r *RealFileSystem) Stat(name string) (fs.FileInfo, error) {
	return os.Stat(name)
}
