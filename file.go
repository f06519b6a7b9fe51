package cmdfs

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/jmgilman/go/cmdfs/charset"
)

// File is a content source backed by a single file on the Shell's
// filesystem. The path is resolved once, when the File is created; the
// content is read lazily on every access and never cached, so a File
// always reflects the bytes currently on disk.
//
// The encoding used to decode the content is detected on first need and
// remembered for the life of the File. Pin overrides detection.
type File struct {
	streamer

	path string
	// err holds a path resolution failure, surfaced on first use.
	err error

	// enc is the encoding the content is known to be in, either pinned or
	// remembered from detection. Empty until first determined.
	enc    string
	pinned bool
}

// File creates a content source for the file at path. Variable tokens in
// the path are expanded immediately; a resolution failure is deferred and
// reported by the first operation on the File. The file itself need not
// exist yet.
func (s *Shell) File(path string) *File {
	f := &File{}
	f.streamer = streamer{self: f, sh: s}
	f.path, f.err = s.resolver.Resolve(path)
	return f
}

// Path returns the resolved absolute path.
func (f *File) Path() string {
	return f.path
}

// Pin fixes the encoding used to read and write the file, bypassing
// detection. It returns the File for chaining.
func (f *File) Pin(encoding string) *File {
	f.enc = encoding
	f.pinned = true
	return f
}

// Exists reports whether the file exists.
func (f *File) Exists() (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	return f.sh.fs.Exists(f.path)
}

// Stat returns the file's metadata.
func (f *File) Stat() (os.FileInfo, error) {
	if f.err != nil {
		return nil, f.err
	}
	info, err := f.sh.fs.Stat(f.path)
	return info, coerce(err, "stat", f.path)
}

// Bytes returns the raw content of the file.
func (f *File) Bytes() ([]byte, error) {
	if f.err != nil {
		return nil, f.err
	}
	data, err := f.sh.fs.ReadFile(f.path)
	return data, coerce(err, "read", f.path)
}

// Encoding reports the encoding of the file's content. The first call
// detects it from the bytes on disk; later calls reuse the detected name
// until a write changes it. An empty file reports the Shell's default
// encoding.
func (f *File) Encoding() (string, error) {
	if f.err != nil {
		return "", f.err
	}
	if f.enc != "" {
		return f.enc, nil
	}

	data, err := f.Bytes()
	if err != nil {
		return "", err
	}
	if len(data) == 0 {
		f.enc = f.sh.defaultEnc
		return f.enc, nil
	}

	res, err := charset.Detect(data)
	if err != nil {
		return "", err
	}
	f.enc = res.Charset
	return f.enc, nil
}

// Text returns the content decoded from the file's encoding.
func (f *File) Text() (string, error) {
	data, err := f.Bytes()
	if err != nil {
		return "", err
	}
	enc, err := f.Encoding()
	if err != nil {
		return "", err
	}
	codec, err := charset.Lookup(enc)
	if err != nil {
		return "", err
	}
	return codec.Decode(data)
}

// Create creates the file empty, along with any missing parent
// directories. An existing file is left untouched.
func (f *File) Create(opts ...CallOption) *Shell {
	cs := applyCallOptions(opts)
	if f.sh.err != nil {
		return f.sh
	}
	err := f.err
	if err == nil {
		err = coerce(f.create(cs.perm), "mkfile", f.path)
	}
	return f.sh.finish("mkfile", err, cs)
}

// Remove deletes the file.
func (f *File) Remove(opts ...CallOption) *Shell {
	cs := applyCallOptions(opts)
	if f.sh.err != nil {
		return f.sh
	}
	err := f.err
	if err == nil {
		err = coerce(f.sh.fs.Remove(f.path), "rmfile", f.path)
	}
	return f.sh.finish("rmfile", err, cs)
}

// Chmod changes the file's permission bits.
func (f *File) Chmod(mode os.FileMode, opts ...CallOption) *Shell {
	cs := applyCallOptions(opts)
	if f.sh.err != nil {
		return f.sh
	}
	err := f.err
	if err == nil {
		err = coerce(f.sh.fs.Chmod(f.path, mode), "chmod", f.path)
	}
	return f.sh.finish("chmod", err, cs)
}

// Clear replaces the content with the empty string. A missing file is
// created.
func (f *File) Clear(opts ...CallOption) *Shell {
	cs := applyCallOptions(opts)
	if f.sh.err != nil {
		return f.sh
	}
	err := f.err
	if err == nil {
		err = f.setText("")
	}
	return f.sh.finish("clear", err, cs)
}

// Recode rewrites the file's bytes in another encoding. An empty from
// uses the file's current encoding; an empty to selects the minimal
// encoding able to represent the content.
func (f *File) Recode(to, from string) error {
	if f.err != nil {
		return f.err
	}
	data, err := f.Bytes()
	if err != nil {
		return err
	}

	if from == "" {
		if from, err = f.Encoding(); err != nil {
			return err
		}
	}
	if to == "" {
		srcCodec, err := charset.Lookup(from)
		if err != nil {
			return err
		}
		text, err := srcCodec.Decode(data)
		if err != nil {
			return err
		}
		to = charset.Minimal(text)
	}

	out, err := charset.Recode(data, from, to)
	if err != nil {
		return err
	}
	if err := f.write(out); err != nil {
		return err
	}
	if !f.pinned {
		f.enc = to
	}
	return nil
}

// setText overwrites the file with text. Unpinned files are written in
// the minimal encoding of the new content; pinned files keep their
// encoding. Missing parent directories are created.
func (f *File) setText(text string) error {
	if f.err != nil {
		return f.err
	}
	enc := f.enc
	if !f.pinned {
		enc = charset.Minimal(text)
	}
	codec, err := charset.Lookup(enc)
	if err != nil {
		return err
	}
	data, err := codec.Encode(text)
	if err != nil {
		return err
	}
	if err := f.write(data); err != nil {
		return err
	}
	if !f.pinned {
		// Empty content carries no encoding of its own; leave it for the
		// default to decide.
		if text == "" {
			f.enc = ""
		} else {
			f.enc = enc
		}
	}
	return nil
}

// appendText extends the file with text, separated from the existing
// content by sep. The existing content is read in full before anything
// is written; a missing file counts as empty and is created.
func (f *File) appendText(text, sep string) error {
	if f.err != nil {
		return f.err
	}
	existing := ""
	ok, err := f.Exists()
	if err != nil {
		return err
	}
	if ok {
		if existing, err = f.Text(); err != nil {
			return err
		}
	}
	return f.setText(joinSep(existing, text, sep))
}

func (f *File) create(perm os.FileMode) error {
	ok, err := f.sh.fs.Exists(f.path)
	if err != nil || ok {
		return err
	}
	if err := f.sh.fs.MkdirAll(parentDir(f.path), perm); err != nil {
		return err
	}
	h, err := f.sh.fs.OpenFile(f.path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return err
	}
	return h.Close()
}

func (f *File) write(data []byte) error {
	if err := f.sh.fs.MkdirAll(parentDir(f.path), 0o755); err != nil {
		return coerce(err, "mkdir", parentDir(f.path))
	}
	return coerce(f.sh.fs.WriteFile(f.path, data, 0o644), "write", f.path)
}

// parentDir returns the directory containing path.
func parentDir(path string) string {
	return filepath.Dir(path)
}

// hasExt reports whether the final path element carries an extension.
func hasExt(path string) bool {
	base := filepath.Base(path)
	return !strings.HasPrefix(base, ".") && filepath.Ext(base) != "" ||
		strings.HasPrefix(base, ".") && strings.Count(base, ".") > 1
}

var _ Source = (*File)(nil)
