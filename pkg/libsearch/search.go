// Package libsearch locates the preload library in a fixed list of
// candidate directories.
package libsearch

import (
	"fmt"
	"path/filepath"
	"strings"
)

// SearchDirs returns the candidate directories in probe order. The order is
// the contract: the first directory containing the library wins, there is no
// notion of a better match. The two home entries are omitted when home is
// empty rather than degenerating to paths under "/lib".
func SearchDirs(home string) []string {
	dirs := []string{"."}
	if home != "" {
		dirs = append(dirs, filepath.Join(home, "lib", "arf"), filepath.Join(home, "lib"))
	}
	return append(dirs, "/root", "/tmp", "/usr/local/lib", "/usr/lib")
}

// NotFoundError reports that no search directory contained the library.
type NotFoundError struct {
	File string
	Dirs []string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("cannot find %s in any of: %s", e.File, strings.Join(e.Dirs, " "))
}

// Locate probes dirs in order for a regular file named file and returns the
// path of the first hit. A miss in every directory returns *NotFoundError.
func Locate(fsys FileSystem, dirs []string, file string) (string, error) {
	for _, dir := range dirs {
		path := filepath.Join(dir, file)
		if dir == "." {
			// Keep the explicit ./ prefix: a bare file name in a preload
			// variable is resolved against the loader's library paths, not
			// the working directory.
			path = "./" + file
		}
		info, err := fsys.Stat(path)
		if err != nil || info.IsDir() {
			continue
		}
		return path, nil
	}
	return "", &NotFoundError{File: file, Dirs: dirs}
}
