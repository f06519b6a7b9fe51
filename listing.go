package cmdfs

import (
	"fmt"
	"io/fs"
	"strings"
)

// Entry describes one directory member as reported by LsLong.
type Entry struct {
	Name    string
	Size    int64
	Mode    string
	ModTime string
	IsDir   bool
}

// String renders the entry in a long-listing row.
func (e Entry) String() string {
	return fmt.Sprintf("%s %8d %s %s", e.Mode, e.Size, e.ModTime, e.Name)
}

// Ls returns the names of the entries in a directory, in directory order.
// An empty path lists the working directory.
func (s *Shell) Ls(path string) ([]string, error) {
	if s.err != nil {
		return nil, s.err
	}
	p, err := s.resolver.Resolve(path)
	if err != nil {
		return nil, err
	}

	entries, err := s.fs.ReadDir(p)
	if err != nil {
		return nil, coerce(err, "ls", p)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names, nil
}

// LsLong returns the entries of a directory with their metadata.
func (s *Shell) LsLong(path string) ([]Entry, error) {
	if s.err != nil {
		return nil, s.err
	}
	p, err := s.resolver.Resolve(path)
	if err != nil {
		return nil, err
	}

	dirents, err := s.fs.ReadDir(p)
	if err != nil {
		return nil, coerce(err, "ls", p)
	}
	out := make([]Entry, 0, len(dirents))
	for _, de := range dirents {
		info, err := de.Info()
		if err != nil {
			return nil, coerce(err, "stat", p+"/"+de.Name())
		}
		out = append(out, Entry{
			Name:    de.Name(),
			Size:    info.Size(),
			Mode:    info.Mode().String(),
			ModTime: info.ModTime().Format("2006-01-02 15:04"),
			IsDir:   de.IsDir(),
		})
	}
	return out, nil
}

// Tree renders the directory structure beneath path, one entry per line,
// indented two spaces per depth level.
func (s *Shell) Tree(path string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	root, err := s.resolver.Resolve(path)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	err = s.fs.Walk(root, func(p string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if p == root {
			return nil
		}
		rel := strings.TrimPrefix(p, root+"/")
		depth := strings.Count(rel, "/")
		b.WriteString(strings.Repeat("  ", depth))
		b.WriteString(d.Name())
		if d.IsDir() {
			b.WriteByte('/')
		}
		b.WriteByte('\n')
		return nil
	})
	if err != nil {
		return "", coerce(err, "tree", root)
	}
	return b.String(), nil
}
