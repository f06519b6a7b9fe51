package fsys

import (
	"io"
	"io/fs"
)

// Type identifies the backing store of a filesystem.
type Type int

const (
	// TypeLocal indicates a disk-backed filesystem.
	TypeLocal Type = iota
	// TypeMemory indicates an in-memory filesystem.
	TypeMemory
)

// String returns a string representation of the Type.
func (t Type) String() string {
	switch t {
	case TypeLocal:
		return "local"
	case TypeMemory:
		return "memory"
	default:
		return "unknown"
	}
}

// FS is the filesystem surface the toolkit operates on.
//
// Paths are absolute, forward-slash separated. Read operations follow the
// io/fs conventions; failed operations return *fs.PathError values where
// the backend provides them.
type FS interface {
	// Open opens the named file for reading.
	Open(name string) (fs.File, error)

	// Stat returns metadata for the named file.
	Stat(name string) (fs.FileInfo, error)

	// ReadDir reads the named directory and returns its entries sorted by
	// filename.
	ReadDir(name string) ([]fs.DirEntry, error)

	// ReadFile reads the named file and returns its contents.
	ReadFile(name string) ([]byte, error)

	// Exists reports whether the named file or directory exists. A false
	// result with a non-nil error means existence could not be determined.
	Exists(name string) (bool, error)

	// Create creates or truncates the named file for writing.
	Create(name string) (File, error)

	// OpenFile opens a file with the specified flags and permissions.
	OpenFile(name string, flag int, perm fs.FileMode) (File, error)

	// WriteFile writes data to the named file, creating it if necessary
	// and truncating it otherwise.
	WriteFile(name string, data []byte, perm fs.FileMode) error

	// Mkdir creates a new directory. It fails if the directory exists or
	// the parent is missing.
	Mkdir(name string, perm fs.FileMode) error

	// MkdirAll creates a directory along with any missing parents.
	// An existing directory is not an error.
	MkdirAll(path string, perm fs.FileMode) error

	// Remove removes the named file or empty directory.
	Remove(name string) error

	// RemoveAll removes path and any children it contains. A missing path
	// is not an error.
	RemoveAll(path string) error

	// Rename moves oldpath to newpath.
	Rename(oldpath, newpath string) error

	// Walk walks the tree rooted at root in lexical order, calling walkFn
	// for each file or directory including root.
	Walk(root string, walkFn fs.WalkDirFunc) error

	// Chmod changes the permission bits of the named file. Backends
	// without permission support return ErrUnsupported.
	Chmod(name string, mode fs.FileMode) error

	// Type returns the backing store of the filesystem.
	Type() Type
}

// File is an open file handle supporting both reads and writes.
type File interface {
	fs.File
	io.Writer

	// Name returns the name the file was opened with.
	Name() string
}
