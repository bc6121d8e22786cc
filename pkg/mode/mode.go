// Package mode resolves the launcher's invocation identity.
//
// The launcher is a multicall binary: the same program behaves as one of
// three tools depending on the name it was invoked as (typically via
// symlinks named arf, ero and mtero).
package mode

import (
	"fmt"
	"path/filepath"
)

// Mode identifies which instrumentation library the launcher injects.
type Mode int

const (
	// Unknown is the zero value; Resolve never returns it without an error.
	Unknown Mode = iota
	// Debug injects the arf debugging library (invoked as "arf").
	Debug
	// Profile injects the single-threaded profiling library (invoked as "ero").
	Profile
	// ProfileMT injects the multi-threaded profiling library (invoked as "mtero").
	ProfileMT
)

// Resolve maps the launcher's own invocation string (argv[0], possibly with
// a leading directory path) to a Mode. An unrecognized basename is an error:
// without a mode there is no flag table and no library to look for, so
// failing here beats a doomed library search later.
func Resolve(invocation string) (Mode, error) {
	switch filepath.Base(invocation) {
	case "arf":
		return Debug, nil
	case "ero":
		return Profile, nil
	case "mtero":
		return ProfileMT, nil
	}
	return Unknown, fmt.Errorf("unrecognized invocation name %q: must be invoked as arf, ero or mtero", filepath.Base(invocation))
}

// Token returns the library name token for the mode.
func (m Mode) Token() string {
	switch m {
	case Debug:
		return "arf"
	case Profile:
		return "ero"
	case ProfileMT:
		return "ero_mt"
	}
	return ""
}

// LibraryFile returns the file name of the preload library, lib<token>.so.
func (m Mode) LibraryFile() string {
	return "lib" + m.Token() + ".so"
}

func (m Mode) String() string {
	switch m {
	case Debug:
		return "arf"
	case Profile:
		return "ero"
	case ProfileMT:
		return "mtero"
	}
	return "unknown"
}
