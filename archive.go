package cmdfs

import (
	"archive/tar"
	"archive/zip"
	"bytes"
	"io"
	"io/fs"
	"path"
	"path/filepath"
	"strings"

	"github.com/dsnet/compress/bzip2"
	"github.com/klauspost/compress/flate"
	"github.com/klauspost/compress/gzip"
	"github.com/ulikunitz/xz"

	"github.com/jmgilman/go/cmdfs/errors"
	"github.com/jmgilman/go/cmdfs/fsys"
)

// Archive formats.
const (
	FormatZip   = "zip"
	FormatTar   = "tar"
	FormatGzTar = "gztar"
	FormatBzTar = "bztar"
	FormatXzTar = "xztar"
)

// archiveExts maps archive filename suffixes to formats, longest first.
var archiveExts = []struct {
	suffix string
	format string
}{
	{".tar.gz", FormatGzTar},
	{".tar.bz2", FormatBzTar},
	{".tar.xz", FormatXzTar},
	{".tgz", FormatGzTar},
	{".tbz2", FormatBzTar},
	{".txz", FormatXzTar},
	{".tar", FormatTar},
	{".zip", FormatZip},
}

// inferFormat derives the archive format from a filename. It returns an
// invalid-operation error when no known suffix matches.
func inferFormat(name string) (string, error) {
	lower := strings.ToLower(name)
	for _, e := range archiveExts {
		if strings.HasSuffix(lower, e.suffix) {
			return e.format, nil
		}
	}
	return "", errors.Newf(errors.CodeInvalidOperation,
		"cannot infer archive format from %q", name)
}

// MakeArchive packs the file or directory at src into an archive at dst.
// An empty format is inferred from dst's extension. Parent directories of
// dst are created as needed.
func (s *Shell) MakeArchive(src, dst, format string, opts ...CallOption) *Shell {
	cs := applyCallOptions(opts)
	if s.err != nil {
		return s
	}
	err := s.makeArchive(src, dst, format, cs)
	return s.finish("archive", err, cs)
}

// ExtractArchive unpacks the archive at src into the directory dst,
// creating it if needed. An empty format is inferred from src's
// extension. Entries that would escape dst are rejected.
func (s *Shell) ExtractArchive(src, dst, format string, opts ...CallOption) *Shell {
	cs := applyCallOptions(opts)
	if s.err != nil {
		return s
	}
	err := s.extractArchive(src, dst, format, cs)
	return s.finish("extract", err, cs)
}

func (s *Shell) makeArchive(src, dst, format string, cs callSettings) error {
	srcPath, err := s.resolver.Resolve(src)
	if err != nil {
		return err
	}
	dstPath, err := s.resolver.Resolve(dst)
	if err != nil {
		return err
	}
	if format == "" {
		if format, err = inferFormat(dstPath); err != nil {
			return err
		}
	}
	if _, err := s.fs.Stat(srcPath); err != nil {
		return coerce(err, "archive", srcPath)
	}
	s.log.Debug("archive", "src", srcPath, "dst", dstPath, "format", format)

	var buf bytes.Buffer
	switch format {
	case FormatZip:
		err = writeZip(&buf, s.fs, srcPath)
	case FormatTar:
		err = writeTar(&buf, s.fs, srcPath, cs)
	case FormatGzTar:
		gz := gzip.NewWriter(&buf)
		if err = writeTar(gz, s.fs, srcPath, cs); err == nil {
			err = gz.Close()
		}
	case FormatBzTar:
		var bz *bzip2.Writer
		if bz, err = bzip2.NewWriter(&buf, nil); err == nil {
			if err = writeTar(bz, s.fs, srcPath, cs); err == nil {
				err = bz.Close()
			}
		}
	case FormatXzTar:
		var xw *xz.Writer
		if xw, err = xz.NewWriter(&buf); err == nil {
			if err = writeTar(xw, s.fs, srcPath, cs); err == nil {
				err = xw.Close()
			}
		}
	default:
		return errors.Newf(errors.CodeInvalidOperation, "unknown archive format %q", format)
	}
	if err != nil {
		return errors.Wrapf(err, errors.CodeIO, "archive %q", srcPath)
	}

	if err := s.fs.MkdirAll(parentDir(dstPath), 0o755); err != nil {
		return coerce(err, "mkdir", parentDir(dstPath))
	}
	return coerce(s.fs.WriteFile(dstPath, buf.Bytes(), 0o644), "write", dstPath)
}

func (s *Shell) extractArchive(src, dst, format string, cs callSettings) error {
	srcPath, err := s.resolver.Resolve(src)
	if err != nil {
		return err
	}
	dstPath, err := s.resolver.Resolve(dst)
	if err != nil {
		return err
	}
	if format == "" {
		if format, err = inferFormat(srcPath); err != nil {
			return err
		}
	}
	s.log.Debug("extract", "src", srcPath, "dst", dstPath, "format", format)

	data, err := s.fs.ReadFile(srcPath)
	if err != nil {
		return coerce(err, "read", srcPath)
	}
	if err := s.fs.MkdirAll(dstPath, 0o755); err != nil {
		return coerce(err, "mkdir", dstPath)
	}

	switch format {
	case FormatZip:
		err = extractZip(s.fs, data, dstPath)
	case FormatTar:
		err = extractTar(s.fs, bytes.NewReader(data), dstPath)
	case FormatGzTar:
		var gz *gzip.Reader
		if gz, err = gzip.NewReader(bytes.NewReader(data)); err == nil {
			err = extractTar(s.fs, gz, dstPath)
		}
	case FormatBzTar:
		var bz *bzip2.Reader
		if bz, err = bzip2.NewReader(bytes.NewReader(data), nil); err == nil {
			err = extractTar(s.fs, bz, dstPath)
		}
	case FormatXzTar:
		var xr *xz.Reader
		if xr, err = xz.NewReader(bytes.NewReader(data)); err == nil {
			err = extractTar(s.fs, xr, dstPath)
		}
	default:
		return errors.Newf(errors.CodeInvalidOperation, "unknown archive format %q", format)
	}
	if err != nil {
		return err
	}
	return nil
}

// archiveEntries walks src and yields each member with its archive-relative
// name. A src that names a single file yields one entry under its base name.
func archiveEntries(fsx fsys.FS, src string, fn func(rel string, info fs.FileInfo) error) error {
	info, err := fsx.Stat(src)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fn(info.Name(), info)
	}
	return fsx.Walk(src, func(p string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if p == src {
			return nil
		}
		rel, err := filepath.Rel(src, p)
		if err != nil {
			return err
		}
		fi, err := d.Info()
		if err != nil {
			return err
		}
		return fn(filepath.ToSlash(rel), fi)
	})
}

func writeZip(w io.Writer, fsx fsys.FS, src string) error {
	zw := zip.NewWriter(w)
	zw.RegisterCompressor(zip.Deflate, func(out io.Writer) (io.WriteCloser, error) {
		return flate.NewWriter(out, flate.DefaultCompression)
	})

	srcIsDir := false
	if info, err := fsx.Stat(src); err == nil {
		srcIsDir = info.IsDir()
	}
	err := archiveEntries(fsx, src, func(rel string, info fs.FileInfo) error {
		hdr, err := zip.FileInfoHeader(info)
		if err != nil {
			return err
		}
		hdr.Name = rel
		if info.IsDir() {
			hdr.Name += "/"
			_, err = zw.CreateHeader(hdr)
			return err
		}
		hdr.Method = zip.Deflate
		f, err := zw.CreateHeader(hdr)
		if err != nil {
			return err
		}
		p := src
		if srcIsDir {
			p = filepath.Join(src, filepath.FromSlash(rel))
		}
		data, err := fsx.ReadFile(p)
		if err != nil {
			return err
		}
		_, err = f.Write(data)
		return err
	})
	if err != nil {
		zw.Close()
		return err
	}
	return zw.Close()
}

func writeTar(w io.Writer, fsx fsys.FS, src string, cs callSettings) error {
	tw := tar.NewWriter(w)

	srcIsDir := false
	if info, err := fsx.Stat(src); err == nil {
		srcIsDir = info.IsDir()
	}
	err := archiveEntries(fsx, src, func(rel string, info fs.FileInfo) error {
		hdr, err := tar.FileInfoHeader(info, "")
		if err != nil {
			return err
		}
		hdr.Name = rel
		if info.IsDir() {
			hdr.Name += "/"
		}
		hdr.Uname = cs.owner
		hdr.Gname = cs.group
		if err := tw.WriteHeader(hdr); err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		p := src
		if srcIsDir {
			p = filepath.Join(src, filepath.FromSlash(rel))
		}
		data, err := fsx.ReadFile(p)
		if err != nil {
			return err
		}
		_, err = tw.Write(data)
		return err
	})
	if err != nil {
		tw.Close()
		return err
	}
	return tw.Close()
}

// safeJoin joins an archive member name onto dst, rejecting names that
// would escape dst.
func safeJoin(dst, name string) (string, error) {
	cleaned := path.Clean(strings.ReplaceAll(name, `\`, "/"))
	if path.IsAbs(cleaned) || cleaned == ".." || strings.HasPrefix(cleaned, "../") {
		return "", errors.Newf(errors.CodeInvalidOperation,
			"archive member %q escapes the extraction directory", name)
	}
	return filepath.Join(dst, filepath.FromSlash(cleaned)), nil
}

func extractZip(fsx fsys.FS, data []byte, dst string) error {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return errors.Wrapf(err, errors.CodeIO, "read zip archive")
	}
	for _, zf := range zr.File {
		target, err := safeJoin(dst, zf.Name)
		if err != nil {
			return err
		}
		if zf.FileInfo().IsDir() {
			if err := fsx.MkdirAll(target, 0o755); err != nil {
				return coerce(err, "mkdir", target)
			}
			continue
		}
		rc, err := zf.Open()
		if err != nil {
			return errors.Wrapf(err, errors.CodeIO, "open zip member %q", zf.Name)
		}
		content, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return errors.Wrapf(err, errors.CodeIO, "read zip member %q", zf.Name)
		}
		if err := fsx.MkdirAll(parentDir(target), 0o755); err != nil {
			return coerce(err, "mkdir", parentDir(target))
		}
		if err := fsx.WriteFile(target, content, zf.Mode().Perm()); err != nil {
			return coerce(err, "write", target)
		}
	}
	return nil
}

func extractTar(fsx fsys.FS, r io.Reader, dst string) error {
	tr := tar.NewReader(r)
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return errors.Wrapf(err, errors.CodeIO, "read tar archive")
		}
		target, err := safeJoin(dst, hdr.Name)
		if err != nil {
			return err
		}
		switch hdr.Typeflag {
		case tar.TypeDir:
			if err := fsx.MkdirAll(target, 0o755); err != nil {
				return coerce(err, "mkdir", target)
			}
		case tar.TypeReg:
			content, err := io.ReadAll(tr)
			if err != nil {
				return errors.Wrapf(err, errors.CodeIO, "read tar member %q", hdr.Name)
			}
			if err := fsx.MkdirAll(parentDir(target), 0o755); err != nil {
				return coerce(err, "mkdir", parentDir(target))
			}
			mode := fs.FileMode(hdr.Mode).Perm()
			if mode == 0 {
				mode = 0o644
			}
			if err := fsx.WriteFile(target, content, mode); err != nil {
				return coerce(err, "write", target)
			}
		}
	}
}
