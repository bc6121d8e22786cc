// Package flagenv translates the launcher's leading flags into environment
// variable assignments for the injected library.
//
// The argument contract is deliberately not pflag-shaped: flags are consumed
// strictly left to right, and the first token that matches nothing in the
// active mode's table is the target program. Everything from that token on
// is passed through verbatim, even if it looks like a flag.
package flagenv

import (
	"strings"

	"github.com/arf-tools/arf/pkg/mode"
)

// Assignment is a single environment variable assignment produced by flag
// translation or defaulting.
type Assignment struct {
	Name  string
	Value string
}

// rule is one entry in a mode's flag table. A rule either matches the flag
// literal exactly and assigns a fixed value, or matches "<flag>=<value>" and
// assigns the (optionally mapped) value.
type rule struct {
	flag     string
	env      string
	value    string              // fixed value for literal rules
	hasValue bool                // true for -name=value rules
	mapValue func(string) string // optional value rewrite, e.g. signal names
}

var debugTable = []rule{
	{flag: "-mangled", env: "ARF_MANGLED", value: "1"},
	{flag: "-printvars", env: "ARF_PRINTVARS", value: "1"},
	{flag: "-maxpath", env: "ARF_MAXPATH", hasValue: true},
	{flag: "-maxary", env: "ARF_MAXARRAY", hasValue: true},
	{flag: "-maxstr", env: "ARF_MAXSTRING", hasValue: true},
}

// Both profiling modes share one table; only the library token differs.
var profileTable = []rule{
	{flag: "-maxpath", env: "ARF_MAXPATH", hasValue: true},
	{flag: "-start", env: "LIBERO_START", value: "1"},
	{flag: "-signal", env: "LIBERO_SIGNAL", hasValue: true, mapValue: MapSignal},
	{flag: "-tick", env: "LIBERO_TICK", hasValue: true},
	{flag: "-karmas", env: "LIBERO_KARMA_DEPTH", hasValue: true},
	{flag: "-depth", env: "LIBERO_DEPTH", hasValue: true},
	{flag: "-terse", env: "LIBERO_TERSE", value: "1"},
}

func tableFor(m mode.Mode) []rule {
	switch m {
	case mode.Debug:
		return debugTable
	case mode.Profile, mode.ProfileMT:
		return profileTable
	}
	return nil
}

// Translate consumes recognized flags from the front of args and returns the
// resulting assignments plus the remainder: the target program and its
// arguments, untouched and in original order. A repeated flag produces a
// repeated assignment; last write wins when applied.
func Translate(m mode.Mode, args []string) (assigns []Assignment, remainder []string) {
	table := tableFor(m)

	for i, arg := range args {
		a, ok := translateOne(table, arg)
		if !ok {
			return assigns, args[i:]
		}
		assigns = append(assigns, a)
	}
	return assigns, nil
}

func translateOne(table []rule, arg string) (Assignment, bool) {
	for _, r := range table {
		if r.hasValue {
			if v, ok := strings.CutPrefix(arg, r.flag+"="); ok {
				if r.mapValue != nil {
					v = r.mapValue(v)
				}
				return Assignment{Name: r.env, Value: v}, true
			}
			continue
		}
		if arg == r.flag {
			return Assignment{Name: r.env, Value: r.value}, true
		}
	}
	return Assignment{}, false
}

// Flags returns the flag spellings recognized in the given mode, in table
// order, for help text.
func Flags(m mode.Mode) []string {
	table := tableFor(m)
	out := make([]string, 0, len(table))
	for _, r := range table {
		if r.hasValue {
			out = append(out, r.flag+"=<value>")
		} else {
			out = append(out, r.flag)
		}
	}
	return out
}
