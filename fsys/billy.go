package fsys

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/osfs"
)

// BillyFS adapts a billy.Filesystem to the FS interface.
// Construct instances with NewLocal or NewMemory.
type BillyFS struct {
	bfs billy.Filesystem
	typ Type
}

// NewLocal creates a disk-backed filesystem rooted at "/".
func NewLocal() *BillyFS {
	return &BillyFS{bfs: osfs.New("/"), typ: TypeLocal}
}

// NewMemory creates an empty in-memory filesystem.
func NewMemory() *BillyFS {
	return &BillyFS{bfs: memfs.New(), typ: TypeMemory}
}

// Unwrap returns the underlying billy.Filesystem for use with other
// billy-based libraries.
func (b *BillyFS) Unwrap() billy.Filesystem {
	return b.bfs
}

// normalize converts paths to slash-separated cleaned form.
func normalize(path string) string {
	return filepath.ToSlash(filepath.Clean(path))
}

// dirEntry wraps fs.FileInfo to implement fs.DirEntry.
type dirEntry struct {
	info fs.FileInfo
}

func (d *dirEntry) Name() string               { return d.info.Name() }
func (d *dirEntry) IsDir() bool                { return d.info.IsDir() }
func (d *dirEntry) Type() fs.FileMode          { return d.info.Mode().Type() }
func (d *dirEntry) Info() (fs.FileInfo, error) { return d.info, nil }

// Open opens the named file for reading.
func (b *BillyFS) Open(name string) (fs.File, error) {
	name = normalize(name)
	f, err := b.bfs.Open(name)
	if err != nil {
		return nil, err
	}
	return &billyFile{file: f, fs: b.bfs, name: name}, nil
}

// Stat returns metadata for the named file.
func (b *BillyFS) Stat(name string) (fs.FileInfo, error) {
	return b.bfs.Stat(normalize(name))
}

// ReadDir reads the named directory and returns its entries sorted by
// filename.
func (b *BillyFS) ReadDir(name string) ([]fs.DirEntry, error) {
	infos, err := b.bfs.ReadDir(normalize(name))
	if err != nil {
		return nil, err
	}
	entries := make([]fs.DirEntry, len(infos))
	for i, info := range infos {
		entries[i] = &dirEntry{info: info}
	}
	return entries, nil
}

// ReadFile reads the named file and returns its contents.
func (b *BillyFS) ReadFile(name string) ([]byte, error) {
	f, err := b.bfs.Open(normalize(name))
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()
	return io.ReadAll(f)
}

// Exists reports whether the named file or directory exists.
func (b *BillyFS) Exists(name string) (bool, error) {
	_, err := b.bfs.Stat(normalize(name))
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

// Create creates or truncates the named file for writing.
func (b *BillyFS) Create(name string) (File, error) {
	name = normalize(name)
	f, err := b.bfs.Create(name)
	if err != nil {
		return nil, err
	}
	return &billyFile{file: f, fs: b.bfs, name: name}, nil
}

// OpenFile opens a file with the specified flags and permissions.
func (b *BillyFS) OpenFile(name string, flag int, perm fs.FileMode) (File, error) {
	name = normalize(name)
	f, err := b.bfs.OpenFile(name, flag, perm)
	if err != nil {
		return nil, err
	}
	return &billyFile{file: f, fs: b.bfs, name: name}, nil
}

// WriteFile writes data to the named file, creating it if necessary.
func (b *BillyFS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	f, err := b.bfs.OpenFile(normalize(name), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()
	_, err = f.Write(data)
	return err
}

// Mkdir creates a new directory. Unlike MkdirAll it fails when the
// directory exists or the parent is missing.
func (b *BillyFS) Mkdir(name string, perm fs.FileMode) error {
	name = normalize(name)
	if _, err := b.bfs.Stat(name); err == nil {
		return &fs.PathError{Op: "mkdir", Path: name, Err: fs.ErrExist}
	}
	// Billy only offers MkdirAll, so check the parent ourselves.
	parent := filepath.Dir(name)
	if parent != "." && parent != "/" {
		if _, err := b.bfs.Stat(parent); err != nil {
			return err
		}
	}
	return b.bfs.MkdirAll(name, perm)
}

// MkdirAll creates a directory along with any missing parents.
func (b *BillyFS) MkdirAll(path string, perm fs.FileMode) error {
	return b.bfs.MkdirAll(normalize(path), perm)
}

// Remove removes the named file or empty directory.
func (b *BillyFS) Remove(name string) error {
	return b.bfs.Remove(normalize(name))
}

// RemoveAll removes path and any children it contains.
// A missing path is not an error.
func (b *BillyFS) RemoveAll(path string) error {
	path = normalize(path)
	info, err := b.bfs.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	if !info.IsDir() {
		return b.bfs.Remove(path)
	}

	entries, err := b.bfs.ReadDir(path)
	if err != nil {
		return err
	}
	for _, entry := range entries {
		if err := b.RemoveAll(normalize(filepath.Join(path, entry.Name()))); err != nil {
			return err
		}
	}
	return b.bfs.Remove(path)
}

// Rename moves oldpath to newpath.
func (b *BillyFS) Rename(oldpath, newpath string) error {
	return b.bfs.Rename(normalize(oldpath), normalize(newpath))
}

// Walk walks the tree rooted at root in lexical order.
func (b *BillyFS) Walk(root string, walkFn fs.WalkDirFunc) error {
	root = normalize(root)
	info, err := b.bfs.Stat(root)
	if err != nil {
		err = walkFn(root, nil, err)
	} else {
		err = b.walk(root, &dirEntry{info: info}, walkFn)
	}
	if errors.Is(err, fs.SkipDir) || errors.Is(err, fs.SkipAll) {
		return nil
	}
	return err
}

func (b *BillyFS) walk(path string, d fs.DirEntry, walkFn fs.WalkDirFunc) error {
	if err := walkFn(path, d, nil); err != nil || !d.IsDir() {
		if errors.Is(err, fs.SkipDir) && d.IsDir() {
			err = nil
		}
		return err
	}

	entries, err := b.bfs.ReadDir(path)
	if err != nil {
		if err := walkFn(path, d, err); err != nil {
			return err
		}
	}

	for _, entry := range entries {
		child := normalize(filepath.Join(path, entry.Name()))
		if err := b.walk(child, &dirEntry{info: entry}, walkFn); err != nil {
			if errors.Is(err, fs.SkipDir) {
				continue
			}
			return err
		}
	}
	return nil
}

// Chmod changes the permission bits of the named file.
// Only the local backend supports permissions; the in-memory backend
// returns ErrUnsupported.
func (b *BillyFS) Chmod(name string, mode fs.FileMode) error {
	if b.typ != TypeLocal {
		return ErrUnsupported
	}
	return os.Chmod(normalize(name), mode)
}

// Type returns the backing store of the filesystem.
func (b *BillyFS) Type() Type {
	return b.typ
}

// Compile-time interface check.
var _ FS = (*BillyFS)(nil)
