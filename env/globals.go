package env

import "sync"

// Globals is the process-wide variable scope.
//
// A Globals is shared across resolver instances, so all access goes through
// one mutex. The lock is held across producer invocation: producers may do
// arbitrary work, and serializing them avoids torn reads when several
// resolvers share the store.
type Globals struct {
	mu       sync.Mutex
	bindings map[string]Binding
}

// NewGlobals creates an empty global scope.
func NewGlobals() *Globals {
	return &Globals{bindings: make(map[string]Binding)}
}

// defaultGlobals backs resolvers that are not handed an explicit store.
var defaultGlobals = NewGlobals()

// DefaultGlobals returns the shared process-wide scope used when no
// explicit Globals is injected.
func DefaultGlobals() *Globals {
	return defaultGlobals
}

// Set registers a fixed-value binding, overwriting any prior binding of the
// same name.
func (g *Globals) Set(name, value string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.bindings[name] = Value(value)
}

// SetFunc registers a producer binding, overwriting any prior binding of
// the same name. The function is re-evaluated on every lookup.
func (g *Globals) SetFunc(name string, fn func() string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.bindings[name] = Producer(fn)
}

// Delete removes a binding. Deleting an absent name is a no-op.
func (g *Globals) Delete(name string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.bindings, name)
}

// Lookup resolves a name in the global scope.
func (g *Globals) Lookup(name string) (string, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	b, ok := g.bindings[name]
	if !ok {
		return "", false
	}
	return b.Resolve(), true
}
