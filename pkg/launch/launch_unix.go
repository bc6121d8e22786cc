//go:build unix

package launch

import (
	"syscall"
)

// execFunc is swapped out in tests; syscall.Exec never returns on success.
var execFunc = syscall.Exec

// Exec replaces the current process with the target program. argv[0] is the
// name the target was asked for, by convention.
func (e *RealExecutor) Exec(name string, args []string, env []string) error {
	binary, err := lookPath(name)
	if err != nil {
		return err
	}

	argv := append([]string{name}, args...)
	// #nosec G204 -- launching an arbitrary target is the whole point:
	// the command comes from the launcher's own argument list.
	return execFunc(binary, argv, env)
}
