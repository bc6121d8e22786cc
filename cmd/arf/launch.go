package main

import (
	"errors"
	"fmt"

	"github.com/arf-tools/arf/pkg/flagenv"
	"github.com/arf-tools/arf/pkg/launch"
	"github.com/arf-tools/arf/pkg/libsearch"
	"github.com/arf-tools/arf/pkg/mode"
	"github.com/arf-tools/arf/pkg/preload"
)

// errNoProgram is returned when the argument list holds no target program.
var errNoProgram = errors.New("no target program specified")

// launcher holds the pipeline's injectable dependencies.
type launcher struct {
	env  *launch.Environ
	fs   libsearch.FileSystem
	exec launch.Executor
}

func newLauncher() *launcher {
	return &launcher{
		env:  launch.System(),
		fs:   &libsearch.RealFileSystem{},
		exec: &launch.RealExecutor{},
	}
}

// run is the whole pipeline: defaults, flag translation, library search,
// preload chain construction, process replacement. On success it never
// returns; every error is terminal.
func (l *launcher) run(m mode.Mode, args []string) error {
	for _, a := range flagenv.Defaults(m, l.env) {
		l.env.Set(a.Name, a.Value)
	}

	assigns, rest := flagenv.Translate(m, args)
	for _, a := range assigns {
		l.env.Set(a.Name, a.Value)
	}
	if len(rest) == 0 {
		return errNoProgram
	}

	lib, err := libsearch.Locate(l.fs, libsearch.SearchDirs(l.env.Get("HOME")), m.LibraryFile())
	if err != nil {
		return err
	}

	l.env.Set(preload.LoaderVar, preload.Append(l.env.Get(preload.LoaderVar), lib))
	l.env.Set(preload.SandboxVar, preload.AppendSandbox(l.env.Get(preload.SandboxVar), lib))

	if err := l.exec.Exec(rest[0], rest[1:], l.env.Slice()); err != nil {
		return fmt.Errorf("cannot execute %s: %w", rest[0], err)
	}
	return nil
}
