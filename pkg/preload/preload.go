// Package preload builds the preload chain variables consumed by the dynamic
// loader and by the sandbox wrapper.
//
// Both builders are pure: they take the inherited chain value and the new
// entry and return the extended chain. An inherited value is always treated
// as a chain to extend, never replaced.
package preload

import "strings"

const (
	// LoaderVar is the dynamic loader's preload list.
	LoaderVar = "LD_PRELOAD"
	// SandboxVar is the preload list read by the sandbox wrapper for
	// restricted targets. Its delimiter convention differs from the
	// loader's, see AppendSandbox.
	SandboxVar = "SBOX_PRELOAD"
)

// Append extends a colon-separated loader chain with entry. An empty chain
// becomes just the entry.
func Append(chain, entry string) string {
	if chain == "" {
		return entry
	}
	return chain + ":" + entry
}

// AppendSandbox extends a sandbox preload chain with entry. The sandbox
// wrapper's convention is two-tier: the first entry joins a comma-free value
// with a comma, and every later entry joins with a colon. The wrapper parses
// on exactly this shape, so the inherited value is kept byte for byte and
// only the separator choice depends on it.
func AppendSandbox(chain, entry string) string {
	if chain == "" {
		return entry
	}
	if strings.Contains(chain, ",") {
		return chain + ":" + entry
	}
	return chain + "," + entry
}
