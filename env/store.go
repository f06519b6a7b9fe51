package env

import "github.com/jmgilman/go/cmdfs/errors"

// Store is a per-session variable scope layered over a Globals.
//
// Lookup checks the local scope first and falls back to the global scope,
// so a local binding shadows a global one of the same name. A Store is
// owned by a single resolver and is not safe for concurrent use; the
// Globals underneath carries its own locking.
type Store struct {
	globals *Globals
	local   map[string]Binding
}

// NewStore creates a Store over the given global scope.
// A nil globals uses the process-wide default.
func NewStore(globals *Globals) *Store {
	if globals == nil {
		globals = DefaultGlobals()
	}
	return &Store{
		globals: globals,
		local:   make(map[string]Binding),
	}
}

// Globals returns the global scope this store falls back to.
func (s *Store) Globals() *Globals {
	return s.globals
}

// SetLocal registers a fixed-value local binding, overwriting any prior
// local binding of the same name.
func (s *Store) SetLocal(name, value string) {
	s.local[name] = Value(value)
}

// SetLocalFunc registers a producer local binding. The function is
// re-evaluated on every lookup, once per token occurrence.
func (s *Store) SetLocalFunc(name string, fn func() string) {
	s.local[name] = Producer(fn)
}

// DeleteLocal removes a local binding. Deleting an absent name is a no-op.
func (s *Store) DeleteLocal(name string) {
	delete(s.local, name)
}

// Resolve looks a name up in the local scope, then the global scope.
// A name absent from both scopes fails with an undefined-variable error.
func (s *Store) Resolve(name string) (string, error) {
	if b, ok := s.local[name]; ok {
		return b.Resolve(), nil
	}
	if v, ok := s.globals.Lookup(name); ok {
		return v, nil
	}
	return "", errors.Newf(errors.CodeUndefinedVariable, "undefined variable %q", name)
}
