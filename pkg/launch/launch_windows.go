//go:build windows

package launch

import "errors"

// ErrExecNotSupported indicates process replacement is not available on
// Windows, which has no exec syscall.
var ErrExecNotSupported = errors.New("process replacement not supported on Windows")

// Exec is not supported on Windows.
func (e *RealExecutor) Exec(name string, args []string, env []string) error {
	return ErrExecNotSupported
}
