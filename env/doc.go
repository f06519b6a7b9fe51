// Package env provides the variable store and environment-aware path
// resolver used by the cmdfs toolkit.
//
// Variables live in two scopes. The global scope is process-wide, created
// once and injected into resolver instances; its mutation is guarded by a
// single mutex. The local scope belongs to one Store and needs no
// synchronization. A variable binds a name either to a fixed value or to a
// zero-argument producer that is re-evaluated on every lookup, once per
// token occurrence, never cached.
//
// The Resolver expands special tokens in raw paths — a leading "~",
// "%name%" variables, and "."/".." segments — and normalizes the result to
// an absolute path against its own working directory:
//
//	store := env.NewStore(nil)
//	store.SetLocal("build", "/opt/build")
//	r := env.NewResolver(store, fsys.NewLocal(), "/home/user")
//	p, err := r.Resolve("%build%/out.txt") // "/opt/build/out.txt"
//
// Resolution substitutes every token exactly once, left to right, and never
// re-scans substituted values, so it is idempotent on token-free paths.
package env
