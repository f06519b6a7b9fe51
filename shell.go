package cmdfs

import (
	"io"
	"log/slog"
	"os"

	"github.com/jmgilman/go/cmdfs/env"
	"github.com/jmgilman/go/cmdfs/errors"
	"github.com/jmgilman/go/cmdfs/exec"
	"github.com/jmgilman/go/cmdfs/fsys"
)

// Shell is the fluent entry point of the toolkit.
//
// A Shell owns a per-instance working directory and local variable scope,
// a content separator, a default encoding, and a backing filesystem. All
// of its operations are synchronous and blocking. A Shell is not safe for
// concurrent use; the global variable scope underneath carries its own
// locking.
type Shell struct {
	sep        string
	workdir    string
	defaultEnc string
	editor     string

	fs       fsys.FS
	globals  *env.Globals
	store    *env.Store
	resolver *env.Resolver
	exec     exec.Executor
	log      *slog.Logger

	// err holds the first unignored failure of a chained operation.
	err error
}

// New creates a Shell with the given options.
func New(opts ...Option) *Shell {
	s := &Shell{
		sep:        "\n",
		defaultEnc: "utf-8",
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.fs == nil {
		s.fs = fsys.NewLocal()
	}
	if s.globals == nil {
		s.globals = env.DefaultGlobals()
	}
	if s.exec == nil {
		s.exec = exec.New()
	}
	if s.log == nil {
		s.log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	s.store = env.NewStore(s.globals)
	s.resolver = env.NewResolver(s.store, s.fs, s.workdir)
	return s
}

// Err returns the first error recorded by a chained operation, or nil.
func (s *Shell) Err() error {
	return s.err
}

// ResetErr clears the recorded chain error so the Shell can be reused
// after a failure has been handled.
func (s *Shell) ResetErr() *Shell {
	s.err = nil
	return s
}

// Getwd returns the current working directory.
func (s *Shell) Getwd() string {
	return s.resolver.Getwd()
}

// Separator returns the configured content separator.
func (s *Shell) Separator() string {
	return s.sep
}

// Resolve expands path tokens and returns the absolute form of path.
func (s *Shell) Resolve(path string) (string, error) {
	return s.resolver.Resolve(path)
}

// finish folds an operation result into the chain: nil passes through,
// ignored errors are logged and dropped, and the first real error sticks.
func (s *Shell) finish(op string, err error, cs callSettings) *Shell {
	if err == nil {
		return s
	}
	if cs.ignoreErrors {
		s.log.Debug("error ignored", "op", op, "error", err)
		return s
	}
	if s.err == nil {
		s.err = err
	}
	return s
}

// coerce maps an OS-level failure onto the toolkit's error taxonomy.
// Errors that already carry a code pass through untouched.
func coerce(err error, op, path string) error {
	if err == nil {
		return nil
	}
	var coded errors.Error
	if errors.As(err, &coded) {
		return err
	}

	code := errors.CodeIO
	switch {
	case os.IsNotExist(err):
		code = errors.CodePathNotFound
	case os.IsExist(err):
		code = errors.CodeAlreadyExists
	case os.IsPermission(err):
		code = errors.CodePermission
	case errors.Is(err, fsys.ErrUnsupported):
		code = errors.CodeInvalidOperation
	}
	return errors.Wrapf(err, code, "%s %q", op, path)
}

// Cd resolves path and makes it the working directory. The target must
// exist and be a directory; otherwise the old directory stays in effect.
func (s *Shell) Cd(path string, opts ...CallOption) *Shell {
	cs := applyCallOptions(opts)
	if s.err != nil {
		return s
	}
	err := s.resolver.Cd(path)
	if err == nil {
		s.log.Debug("cd", "dir", s.resolver.Getwd())
	}
	return s.finish("cd", err, cs)
}

// SetLocal registers a fixed-value variable in the Shell's local scope.
func (s *Shell) SetLocal(name, value string) *Shell {
	s.store.SetLocal(name, value)
	return s
}

// SetLocalFunc registers a lazy-reference variable in the Shell's local
// scope. The function is re-evaluated on every lookup.
func (s *Shell) SetLocalFunc(name string, fn func() string) *Shell {
	s.store.SetLocalFunc(name, fn)
	return s
}

// DeleteLocal removes a local variable. Absent names are a no-op.
func (s *Shell) DeleteLocal(name string) *Shell {
	s.store.DeleteLocal(name)
	return s
}

// SetGlobal registers a fixed-value variable in the process-wide scope.
func (s *Shell) SetGlobal(name, value string) *Shell {
	s.globals.Set(name, value)
	return s
}

// SetGlobalFunc registers a lazy-reference variable in the process-wide
// scope. The function is re-evaluated on every lookup.
func (s *Shell) SetGlobalFunc(name string, fn func() string) *Shell {
	s.globals.SetFunc(name, fn)
	return s
}

// DeleteGlobal removes a process-wide variable. Absent names are a no-op.
func (s *Shell) DeleteGlobal(name string) *Shell {
	s.globals.Delete(name)
	return s
}

// Mkdir creates a directory. It fails if the directory exists or the
// parent is missing.
func (s *Shell) Mkdir(path string, opts ...CallOption) *Shell {
	cs := applyCallOptions(opts)
	if s.err != nil {
		return s
	}
	err := s.withResolved("mkdir", path, func(p string) error {
		return s.fs.Mkdir(p, cs.perm)
	})
	return s.finish("mkdir", err, cs)
}

// MkdirAll creates a directory along with any missing parents.
// An existing directory is not an error.
func (s *Shell) MkdirAll(path string, opts ...CallOption) *Shell {
	cs := applyCallOptions(opts)
	if s.err != nil {
		return s
	}
	err := s.withResolved("mkdir", path, func(p string) error {
		return s.fs.MkdirAll(p, cs.perm)
	})
	return s.finish("mkdir", err, cs)
}

// MkFile creates an empty file if none exists. An existing file is left
// untouched.
func (s *Shell) MkFile(path string, opts ...CallOption) *Shell {
	cs := applyCallOptions(opts)
	if s.err != nil {
		return s
	}
	err := s.withResolved("mkfile", path, func(p string) error {
		ok, err := s.fs.Exists(p)
		if err != nil || ok {
			return err
		}
		f, err := s.fs.OpenFile(p, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if err != nil {
			return err
		}
		return f.Close()
	})
	return s.finish("mkfile", err, cs)
}

// Touch is an alias for MkFile.
func (s *Shell) Touch(path string, opts ...CallOption) *Shell {
	return s.MkFile(path, opts...)
}

// Make creates every missing directory in path and, when the path names a
// file, the file itself. Whether the path is a file is inferred from the
// presence of an extension; AsFile and AsDir override the inference.
func (s *Shell) Make(path string, opts ...CallOption) *Shell {
	cs := applyCallOptions(opts)
	if s.err != nil {
		return s
	}
	err := s.withResolved("make", path, func(p string) error {
		isFile := hasExt(p)
		if cs.asFile != nil {
			isFile = *cs.asFile
		}
		if !isFile {
			return s.fs.MkdirAll(p, cs.perm)
		}
		if err := s.fs.MkdirAll(parentDir(p), cs.perm); err != nil {
			return err
		}
		ok, err := s.fs.Exists(p)
		if err != nil || ok {
			return err
		}
		f, err := s.fs.OpenFile(p, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if err != nil {
			return err
		}
		return f.Close()
	})
	return s.finish("make", err, cs)
}

// RmFile removes a single file.
func (s *Shell) RmFile(path string, opts ...CallOption) *Shell {
	cs := applyCallOptions(opts)
	if s.err != nil {
		return s
	}
	err := s.withResolved("rmfile", path, func(p string) error {
		return s.fs.Remove(p)
	})
	return s.finish("rmfile", err, cs)
}

// RmDir removes a directory and everything beneath it.
func (s *Shell) RmDir(path string, opts ...CallOption) *Shell {
	cs := applyCallOptions(opts)
	if s.err != nil {
		return s
	}
	err := s.withResolved("rmdir", path, func(p string) error {
		return s.fs.RemoveAll(p)
	})
	return s.finish("rmdir", err, cs)
}

// RmTree is an alias for RmDir.
func (s *Shell) RmTree(path string, opts ...CallOption) *Shell {
	return s.RmDir(path, opts...)
}

// Remove removes a file or a directory tree. A missing path is an error.
func (s *Shell) Remove(path string, opts ...CallOption) *Shell {
	cs := applyCallOptions(opts)
	if s.err != nil {
		return s
	}
	err := s.withResolved("remove", path, func(p string) error {
		info, err := s.fs.Stat(p)
		if err != nil {
			return err
		}
		if info.IsDir() {
			return s.fs.RemoveAll(p)
		}
		return s.fs.Remove(p)
	})
	return s.finish("remove", err, cs)
}

// Rm is an alias for Remove.
func (s *Shell) Rm(path string, opts ...CallOption) *Shell {
	return s.Remove(path, opts...)
}

// Copy copies a file or directory tree. Parent directories of the
// destination are created as needed; existing files are overwritten.
func (s *Shell) Copy(from, to string, opts ...CallOption) *Shell {
	cs := applyCallOptions(opts)
	if s.err != nil {
		return s
	}

	src, err := s.resolver.Resolve(from)
	if err == nil {
		var dst string
		if dst, err = s.resolver.Resolve(to); err == nil {
			s.log.Debug("copy", "from", src, "to", dst)
			err = coerce(fsys.CopyAll(s.fs, src, dst), "copy", src)
		}
	}
	return s.finish("copy", err, cs)
}

// Chmod changes the permission bits of a file or directory.
func (s *Shell) Chmod(path string, mode os.FileMode, opts ...CallOption) *Shell {
	cs := applyCallOptions(opts)
	if s.err != nil {
		return s
	}
	err := s.withResolved("chmod", path, func(p string) error {
		return s.fs.Chmod(p, mode)
	})
	return s.finish("chmod", err, cs)
}

// Recode rewrites a file in another encoding. An empty target selects the
// minimal encoding of the file's content; an empty source uses the file's
// pinned or detected encoding.
func (s *Shell) Recode(path, to, from string, opts ...CallOption) *Shell {
	cs := applyCallOptions(opts)
	if s.err != nil {
		return s
	}
	err := s.File(path).Recode(to, from)
	return s.finish("recode", err, cs)
}

// Edit opens a file in the configured external editor and blocks until
// the editor exits. The file must exist.
func (s *Shell) Edit(path string, opts ...CallOption) *Shell {
	cs := applyCallOptions(opts)
	if s.err != nil {
		return s
	}
	err := s.withResolved("edit", path, func(p string) error {
		ok, err := s.fs.Exists(p)
		if err != nil {
			return err
		}
		if !ok {
			return errors.Newf(errors.CodePathNotFound, "edit %q: no such file", p)
		}

		editor := s.editor
		if editor == "" {
			editor = os.Getenv("EDITOR")
		}
		if editor == "" {
			editor = "nano"
		}
		s.log.Debug("edit", "editor", editor, "path", p)
		return s.exec.WithDir(s.Getwd()).Run(editor, p)
	})
	return s.finish("edit", err, cs)
}

// withResolved resolves path and applies fn to the result, mapping any
// failure onto the error taxonomy.
func (s *Shell) withResolved(op, path string, fn func(resolved string) error) error {
	p, err := s.resolver.Resolve(path)
	if err != nil {
		return err
	}
	s.log.Debug(op, "path", p)
	return coerce(fn(p), op, p)
}
