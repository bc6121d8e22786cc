package main

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arf-tools/arf/pkg/launch"
	"github.com/arf-tools/arf/pkg/libsearch"
	"github.com/arf-tools/arf/pkg/mode"
)

// fakeFS serves a fixed set of file paths.
type fakeFS struct {
	files map[string]bool
}

func (f *fakeFS) Stat(name string) (fs.FileInfo, error) {
	if f.files[name] {
		return &fakeFileInfo{name: filepath.Base(name)}, nil
	}
	return nil, os.ErrNotExist
}

type fakeFileInfo struct{ name string }

func (f *fakeFileInfo) Name() string       { return f.name }
func (f *fakeFileInfo) Size() int64        { return 0 }
func (f *fakeFileInfo) Mode() fs.FileMode  { return 0o644 }
func (f *fakeFileInfo) IsDir() bool        { return false }
func (f *fakeFileInfo) Sys() interface{}   { return nil }
func (f *fakeFileInfo) ModTime() time.Time { return time.Unix(0, 0) }

// capturingExecutor records the exec request instead of replacing the process.
type capturingExecutor struct {
	name string
	args []string
	env  map[string]string
	err  error
}

func (c *capturingExecutor) Exec(name string, args []string, env []string) error {
	c.name = name
	c.args = args
	c.env = make(map[string]string, len(env))
	for _, entry := range env {
		for i := 0; i < len(entry); i++ {
			if entry[i] == '=' {
				c.env[entry[:i]] = entry[i+1:]
				break
			}
		}
	}
	return c.err
}

func newTestLauncher(env []string, files map[string]bool) (*launcher, *capturingExecutor) {
	exec := &capturingExecutor{}
	return &launcher{
		env:  launch.FromSlice(env),
		fs:   &fakeFS{files: files},
		exec: exec,
	}, exec
}

func TestRun_ProfileFlagsAndDefaults(t *testing.T) {
	l, exec := newTestLauncher(
		[]string{"HOME=/home/dev", "PATH=/usr/bin"},
		map[string]bool{"./libero.so": true},
	)

	err := l.run(mode.Profile, []string{"-start", "-tick=5", "myprog", "a", "b"})
	require.NoError(t, err)

	assert.Equal(t, "myprog", exec.name)
	assert.Equal(t, []string{"a", "b"}, exec.args)
	assert.Equal(t, "1", exec.env["LIBERO_START"])
	assert.Equal(t, "5", exec.env["LIBERO_TICK"])
	assert.Equal(t, "always-malloc", exec.env["G_SLICE"])
	assert.Equal(t, "./libero.so", exec.env["LD_PRELOAD"])
	assert.Equal(t, "./libero.so", exec.env["SBOX_PRELOAD"])
}

func TestRun_DebugMode(t *testing.T) {
	l, exec := newTestLauncher(
		[]string{"HOME=/home/dev"},
		map[string]bool{"/home/dev/lib/arf/libarf.so": true},
	)

	err := l.run(mode.Debug, []string{"-maxpath=2", "-printvars", "prog"})
	require.NoError(t, err)

	assert.Equal(t, "prog", exec.name)
	assert.Empty(t, exec.args)
	assert.Equal(t, "2", exec.env["ARF_MAXPATH"])
	assert.Equal(t, "1", exec.env["ARF_PRINTVARS"])
	assert.Equal(t, "/home/dev/lib/arf/libarf.so", exec.env["LD_PRELOAD"])

	// Debug mode never defaults G_SLICE.
	_, ok := exec.env["G_SLICE"]
	assert.False(t, ok)
}

func TestRun_MultiThreadedToken(t *testing.T) {
	l, exec := newTestLauncher(
		[]string{"HOME=/home/dev"},
		map[string]bool{"/usr/lib/libero_mt.so": true},
	)

	err := l.run(mode.ProfileMT, []string{"-signal=usr1", "prog"})
	require.NoError(t, err)

	assert.Equal(t, "10", exec.env["LIBERO_SIGNAL"])
	assert.Equal(t, "/usr/lib/libero_mt.so", exec.env["LD_PRELOAD"])
}

func TestRun_PreloadChainsExtendInheritedValues(t *testing.T) {
	l, exec := newTestLauncher(
		[]string{
			"HOME=/home/dev",
			"LD_PRELOAD=/usr/lib/libother.so",
			"SBOX_PRELOAD=opts,/usr/lib/libother.so",
		},
		map[string]bool{"./libero.so": true},
	)

	err := l.run(mode.Profile, []string{"prog"})
	require.NoError(t, err)

	assert.Equal(t, "/usr/lib/libother.so:./libero.so", exec.env["LD_PRELOAD"])
	assert.Equal(t, "opts,/usr/lib/libother.so:./libero.so", exec.env["SBOX_PRELOAD"])
}

func TestRun_GSliceNotOverwritten(t *testing.T) {
	l, exec := newTestLauncher(
		[]string{"HOME=/home/dev", "G_SLICE=debug-blocks"},
		map[string]bool{"./libero.so": true},
	)

	err := l.run(mode.Profile, []string{"prog"})
	require.NoError(t, err)

	assert.Equal(t, "debug-blocks", exec.env["G_SLICE"])
}

func TestRun_UnknownTokenBecomesProgram(t *testing.T) {
	l, exec := newTestLauncher(
		[]string{"HOME=/home/dev"},
		map[string]bool{"./libero.so": true},
	)

	err := l.run(mode.Profile, []string{"-bogus", "prog"})
	require.NoError(t, err)

	assert.Equal(t, "-bogus", exec.name)
	assert.Equal(t, []string{"prog"}, exec.args)
}

func TestRun_LibraryNotFound(t *testing.T) {
	l, exec := newTestLauncher([]string{"HOME=/home/dev"}, map[string]bool{})

	err := l.run(mode.Profile, []string{"prog"})

	var notFound *libsearch.NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "libero.so", notFound.File)

	// No exec attempt after a failed search.
	assert.Empty(t, exec.name)
}

func TestRun_NoProgram(t *testing.T) {
	l, _ := newTestLauncher([]string{"HOME=/home/dev"}, map[string]bool{"./libero.so": true})

	err := l.run(mode.Profile, []string{"-start"})
	assert.ErrorIs(t, err, errNoProgram)
}

func TestRun_ExecFailureNamesTarget(t *testing.T) {
	exec := &capturingExecutor{err: errors.New("permission denied")}
	l := &launcher{
		env:  launch.FromSlice([]string{"HOME=/home/dev"}),
		fs:   &fakeFS{files: map[string]bool{"./libero.so": true}},
		exec: exec,
	}

	err := l.run(mode.Profile, []string{"myprog"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot execute myprog")
	assert.ErrorContains(t, err, "permission denied")
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, 2, exitCode(errNoProgram))
	assert.Equal(t, 1, exitCode(errors.New("anything else")))
	assert.Equal(t, 1, exitCode(&libsearch.NotFoundError{File: "libarf.so"}))
}
