package cmdfs

import (
	"io/fs"
	"log/slog"

	"github.com/jmgilman/go/cmdfs/env"
	"github.com/jmgilman/go/cmdfs/exec"
	"github.com/jmgilman/go/cmdfs/fsys"
)

// Option configures a Shell at construction.
type Option func(*Shell)

// WithSeparator sets the separator injected between concatenated and
// appended content. Defaults to "\n".
func WithSeparator(sep string) Option {
	return func(s *Shell) {
		s.sep = sep
	}
}

// WithWorkingDir sets the initial working directory.
// Defaults to the process working directory.
func WithWorkingDir(dir string) Option {
	return func(s *Shell) {
		s.workdir = dir
	}
}

// WithDefaultEncoding sets the encoding assumed when detection is not
// possible, such as for new files and empty input. Defaults to "utf-8".
func WithDefaultEncoding(name string) Option {
	return func(s *Shell) {
		s.defaultEnc = name
	}
}

// WithFS sets the backing filesystem. Defaults to the local disk.
// Pass fsys.NewMemory() to run entirely in memory.
func WithFS(fs fsys.FS) Option {
	return func(s *Shell) {
		s.fs = fs
	}
}

// WithGlobals injects the process-wide variable scope.
// Defaults to env.DefaultGlobals().
func WithGlobals(globals *env.Globals) Option {
	return func(s *Shell) {
		s.globals = globals
	}
}

// WithLogger sets the logger for debug-level operation tracing.
// Defaults to a discarding logger.
func WithLogger(log *slog.Logger) Option {
	return func(s *Shell) {
		s.log = log
	}
}

// WithEditor sets the external editor program used by Edit.
// Defaults to $EDITOR, falling back to "nano".
func WithEditor(editor string) Option {
	return func(s *Shell) {
		s.editor = editor
	}
}

// WithExecutor sets the process launcher used by Edit.
// Primarily useful for substituting a mock in tests.
func WithExecutor(ex exec.Executor) Option {
	return func(s *Shell) {
		s.exec = ex
	}
}

// CallOption adjusts a single Shell or transfer operation.
type CallOption func(*callSettings)

type callSettings struct {
	ignoreErrors bool
	perm         fs.FileMode
	asFile       *bool
	owner        string
	group        string
}

func applyCallOptions(opts []CallOption) callSettings {
	cs := callSettings{perm: 0o755}
	for _, opt := range opts {
		opt(&cs)
	}
	return cs
}

// IgnoreErrors makes the operation swallow any failure and leave the
// receiver unchanged instead of recording or returning the error.
func IgnoreErrors() CallOption {
	return func(cs *callSettings) {
		cs.ignoreErrors = true
	}
}

// Perm sets the permission bits used when the operation creates files or
// directories. Defaults to 0o755 for directories.
func Perm(perm fs.FileMode) CallOption {
	return func(cs *callSettings) {
		cs.perm = perm
	}
}

// AsFile forces Make to treat the path as a file.
func AsFile() CallOption {
	return func(cs *callSettings) {
		v := true
		cs.asFile = &v
	}
}

// AsDir forces Make to treat the path as a directory.
func AsDir() CallOption {
	return func(cs *callSettings) {
		v := false
		cs.asFile = &v
	}
}

// Owner records the given owner name in archive entries.
// Honored by the tar formats, ignored by zip.
func Owner(name string) CallOption {
	return func(cs *callSettings) {
		cs.owner = name
	}
}

// Group records the given group name in archive entries.
// Honored by the tar formats, ignored by zip.
func Group(name string) CallOption {
	return func(cs *callSettings) {
		cs.group = name
	}
}
