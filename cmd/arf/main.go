package main

import (
	"os"
	"path/filepath"

	"github.com/arf-tools/arf/pkg/mode"
	"github.com/arf-tools/arf/pkg/output"
)

// Version is set at build time via ldflags
var Version = "dev"

func main() {
	m, err := mode.Resolve(os.Args[0])
	if err != nil {
		output.Error(filepath.Base(os.Args[0]), err)
		os.Exit(2)
	}

	rootCmd := newRootCmd(m, newLauncher())
	rootCmd.SetArgs(os.Args[1:])
	if err := rootCmd.Execute(); err != nil {
		output.Error(m.String(), err)
		os.Exit(exitCode(err))
	}
}
