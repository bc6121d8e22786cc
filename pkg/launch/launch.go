// Package launch replaces the launcher process with the target program.
package launch

import (
	"os/exec"
)

// Executor performs the final process replacement. On success the call
// never returns: the current process image becomes the target program and
// the assembled environment is all it inherits.
type Executor interface {
	// Exec replaces the current process with name and args, using env as
	// the complete environment. On Unix this uses syscall.Exec. On Windows,
	// returns an error.
	Exec(name string, args []string, env []string) error
}

// RealExecutor is the production implementation.
type RealExecutor struct{}

// lookPath resolves the target like execvp: names containing a separator
// are used as-is, bare names are searched in PATH.
func lookPath(name string) (string, error) {
	return exec.LookPath(name)
}
