package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arf-tools/arf/pkg/flagenv"
	"github.com/arf-tools/arf/pkg/mode"
)

// newRootCmd builds the command for the resolved invocation identity. Flag
// parsing is disabled: the launcher's own translator owns the argument list,
// so that the first unrecognized token and everything after it reach the
// target program untouched. Help and version are only recognized when they
// are the sole argument; anywhere else they belong to the target.
func newRootCmd(m mode.Mode, l *launcher) *cobra.Command {
	cmd := &cobra.Command{
		Use:                m.String() + " [flags] <program> [args...]",
		Short:              shortFor(m),
		Long:               longFor(m),
		Version:            Version,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
	}

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		if len(args) == 1 {
			switch args[0] {
			case "--help", "-h":
				return cmd.Help()
			case "--version":
				fmt.Fprintf(cmd.OutOrStdout(), "%s version %s\n", m, Version)
				return nil
			}
		}

		err := l.run(m, args)
		if errors.Is(err, errNoProgram) {
			_ = cmd.Usage()
		}
		return err
	}

	return cmd
}

// exitCode distinguishes usage mistakes from launch failures.
func exitCode(err error) int {
	if errors.Is(err, errNoProgram) {
		return 2
	}
	return 1
}

func shortFor(m mode.Mode) string {
	switch m {
	case mode.Debug:
		return "Run a program with the arf debugging library preloaded"
	case mode.Profile:
		return "Run a program with the libero leak profiler preloaded"
	case mode.ProfileMT:
		return "Run a program with the multi-threaded libero leak profiler preloaded"
	}
	return ""
}

func longFor(m mode.Mode) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s locates %s, arranges for the dynamic loader to preload it,\n", m, m.LibraryFile())
	b.WriteString("and replaces itself with the given program.\n\n")
	b.WriteString("Recognized flags, translated to environment variables for the library:\n")
	for _, f := range flagenv.Flags(m) {
		fmt.Fprintf(&b, "  %s\n", f)
	}
	b.WriteString("\nThe first argument not recognized as a flag names the program to run;\n")
	b.WriteString("it and everything after it are passed through unchanged.")
	return b.String()
}
