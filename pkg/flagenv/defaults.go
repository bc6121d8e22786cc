package flagenv

import (
	"os"

	"github.com/arf-tools/arf/pkg/mode"
)

// EnvGetter provides environment lookups, injected for testing.
type EnvGetter interface {
	LookupEnv(key string) (string, bool)
}

// RealEnvGetter reads the process environment.
type RealEnvGetter struct{}

func (r *RealEnvGetter) LookupEnv(key string) (string, bool) {
	return os.LookupEnv(key)
}

// Defaults returns the mode's default assignments, honoring caller overrides:
// a default is emitted only when the variable is unset or empty.
//
// The profiling modes default G_SLICE=always-malloc so that glib's slice
// allocator caching does not show up as phantom leaks in the profile.
func Defaults(m mode.Mode, env EnvGetter) []Assignment {
	if m != mode.Profile && m != mode.ProfileMT {
		return nil
	}
	if v, ok := env.LookupEnv("G_SLICE"); ok && v != "" {
		return nil
	}
	return []Assignment{{Name: "G_SLICE", Value: "always-malloc"}}
}
