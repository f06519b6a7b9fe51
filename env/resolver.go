package env

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/jmgilman/go/cmdfs/errors"
	"github.com/jmgilman/go/cmdfs/fsys"
)

// Resolver expands path tokens against a variable store and normalizes the
// result to an absolute path. Each Resolver owns its working directory;
// only an explicit, validated Cd mutates it.
type Resolver struct {
	store *Store
	fs    fsys.FS
	cwd   string
	home  func() (string, error)
}

// NewResolver creates a Resolver over the given store and filesystem.
// An empty workdir defaults to the process working directory. The resolver
// registers CURRENTDIR and HOME producer bindings in the store's local
// scope so paths can reference them as %CURRENTDIR% and %HOME%.
func NewResolver(store *Store, fs fsys.FS, workdir string) *Resolver {
	if workdir == "" {
		if wd, err := os.Getwd(); err == nil {
			workdir = wd
		} else {
			workdir = "/"
		}
	}
	r := &Resolver{
		store: store,
		fs:    fs,
		cwd:   filepath.Clean(workdir),
		home:  os.UserHomeDir,
	}
	store.SetLocalFunc("CURRENTDIR", func() string { return r.cwd })
	store.SetLocalFunc("HOME", func() string {
		h, err := r.home()
		if err != nil {
			return ""
		}
		return h
	})
	return r
}

// Store returns the variable store backing this resolver.
func (r *Resolver) Store() *Store {
	return r.store
}

// Getwd returns the resolver's current working directory.
func (r *Resolver) Getwd() string {
	return r.cwd
}

// Resolve expands every token in raw exactly once, left to right, and
// returns the cleaned absolute path. Substituted values are not re-scanned
// for further tokens, so resolution is idempotent on already-resolved
// paths. An unresolvable %name% token fails with an undefined-variable
// error naming the token and the raw path; no partial result is returned.
func (r *Resolver) Resolve(raw string) (string, error) {
	if raw == "" {
		return r.cwd, nil
	}

	p := raw
	if p == "~" || strings.HasPrefix(p, "~/") || strings.HasPrefix(p, `~\`) {
		home, err := r.home()
		if err != nil {
			return "", errors.Wrap(err, errors.CodePathNotFound, "home directory unavailable")
		}
		p = home + p[1:]
	}

	expanded, err := r.expand(p, raw)
	if err != nil {
		return "", err
	}

	if !filepath.IsAbs(expanded) {
		expanded = filepath.Join(r.cwd, expanded)
	}
	return filepath.Clean(expanded), nil
}

// expand substitutes %name% tokens in a single left-to-right pass.
func (r *Resolver) expand(p, raw string) (string, error) {
	var b strings.Builder
	for i := 0; i < len(p); {
		if p[i] == '%' {
			j := strings.IndexByte(p[i+1:], '%')
			// A token needs a closing marker and a non-empty name.
			if j > 0 {
				name := p[i+1 : i+1+j]
				value, err := r.store.Resolve(name)
				if err != nil {
					return "", errors.Newf(errors.CodeUndefinedVariable,
						"undefined variable %q in %q", name, raw)
				}
				b.WriteString(value)
				i += j + 2
				continue
			}
		}
		b.WriteByte(p[i])
		i++
	}
	return b.String(), nil
}

// Cd resolves path and makes it the working directory. The target must
// exist and be a directory; otherwise Cd fails with a path-not-found error
// and the old working directory stays in effect.
func (r *Resolver) Cd(path string) error {
	p, err := r.Resolve(path)
	if err != nil {
		return err
	}

	info, err := r.fs.Stat(p)
	if err != nil {
		return errors.Wrapf(err, errors.CodePathNotFound, "cd %q", p)
	}
	if !info.IsDir() {
		return errors.Newf(errors.CodePathNotFound, "cd %q: not a directory", p)
	}

	r.cwd = p
	return nil
}
