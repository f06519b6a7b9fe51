package fsys

import (
	"io/fs"
	"path"
	"strings"
)

// CopyAll copies the file or directory tree at src to dst within a single
// filesystem, creating parent directories as needed and preserving file
// permissions. Existing destination files are overwritten.
func CopyAll(fsx FS, src, dst string) error {
	info, err := fsx.Stat(src)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return copyFile(fsx, src, dst, info.Mode().Perm())
	}

	return fsx.Walk(src, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		rel := strings.TrimPrefix(strings.TrimPrefix(p, src), "/")
		target := dst
		if rel != "" {
			target = path.Join(dst, rel)
		}

		if d.IsDir() {
			return fsx.MkdirAll(target, 0o755)
		}

		di, err := d.Info()
		if err != nil {
			return err
		}
		return copyFile(fsx, p, target, di.Mode().Perm())
	})
}

func copyFile(fsx FS, src, dst string, perm fs.FileMode) error {
	data, err := fsx.ReadFile(src)
	if err != nil {
		return err
	}
	if dir := path.Dir(dst); dir != "." && dir != "" {
		if err := fsx.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return fsx.WriteFile(dst, data, perm)
}
