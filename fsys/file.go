package fsys

import (
	"io"
	"io/fs"

	"github.com/go-git/go-billy/v5"
)

// billyFile wraps billy.File to implement File.
// The name is stored because billy.File.Name() formats differ between
// backends, and billy files carry no Stat of their own.
type billyFile struct {
	file billy.File
	fs   billy.Basic
	name string
}

// Read implements io.Reader.
func (f *billyFile) Read(p []byte) (int, error) {
	return f.file.Read(p)
}

// Write implements io.Writer.
func (f *billyFile) Write(p []byte) (int, error) {
	return f.file.Write(p)
}

// Close implements io.Closer.
func (f *billyFile) Close() error {
	return f.file.Close()
}

// Stat returns metadata by asking the owning filesystem, since billy files
// do not support Stat directly.
func (f *billyFile) Stat() (fs.FileInfo, error) {
	return f.fs.Stat(f.name)
}

// Name returns the name the file was opened with.
func (f *billyFile) Name() string {
	return f.name
}

// Seek implements io.Seeker.
func (f *billyFile) Seek(offset int64, whence int) (int64, error) {
	return f.file.Seek(offset, whence)
}

// Compile-time interface checks.
var (
	_ File      = (*billyFile)(nil)
	_ fs.File   = (*billyFile)(nil)
	_ io.Seeker = (*billyFile)(nil)
)
