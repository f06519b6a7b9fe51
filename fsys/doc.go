// Package fsys provides the filesystem abstraction backing the cmdfs
// toolkit, built on go-billy.
//
// A single adapter type implements the FS interface over billy's osfs
// (local disk, rooted at "/") and memfs (in-memory) backends. The in-memory
// backend exists so the rest of the toolkit can be exercised in tests
// without touching the real disk.
//
// Usage:
//
//	fs := fsys.NewLocal()
//	data, err := fs.ReadFile("/etc/hostname")
//
//	mem := fsys.NewMemory()
//	err := mem.WriteFile("/tmp/scratch.txt", []byte("data"), 0o644)
//
// Unwrap exposes the underlying billy.Filesystem for interoperability with
// other billy-based libraries.
//
// # Thread Safety
//
// FS instances are safe for concurrent use by multiple goroutines. File
// handles are not.
package fsys
