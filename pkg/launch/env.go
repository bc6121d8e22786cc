package launch

import (
	"os"
	"strings"
)

// Environ is the assignment set handed to the launched program. It is seeded
// from the inherited environment and mutated only through Set; the final
// slice is produced once, at exec time. Later Sets for the same name
// overwrite earlier ones.
type Environ struct {
	keys   []string
	values map[string]string
}

// System returns an Environ seeded from the current process environment.
func System() *Environ {
	return FromSlice(os.Environ())
}

// FromSlice returns an Environ seeded from "KEY=value" entries. For
// duplicate keys the last entry wins, matching exec semantics.
func FromSlice(env []string) *Environ {
	e := &Environ{values: make(map[string]string, len(env))}
	for _, entry := range env {
		key, value, _ := strings.Cut(entry, "=")
		e.Set(key, value)
	}
	return e
}

// Get returns the value for key, or "" if unset.
func (e *Environ) Get(key string) string {
	return e.values[key]
}

// LookupEnv reports the value for key and whether it is set.
func (e *Environ) LookupEnv(key string) (string, bool) {
	v, ok := e.values[key]
	return v, ok
}

// Set assigns value to key. A new key keeps insertion order; an existing key
// keeps its position and takes the new value.
func (e *Environ) Set(key, value string) {
	if _, ok := e.values[key]; !ok {
		e.keys = append(e.keys, key)
	}
	e.values[key] = value
}

// Slice renders the assignment set as "KEY=value" entries in insertion
// order, suitable for exec.
func (e *Environ) Slice() []string {
	out := make([]string, 0, len(e.keys))
	for _, key := range e.keys {
		out = append(out, key+"="+e.values[key])
	}
	return out
}
