package fsys

import (
	"io/fs"
	"os"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMemory(t *testing.T) {
	m := NewMemory()
	require.NotNil(t, m)
	require.Equal(t, TypeMemory, m.Type())
	require.NotNil(t, m.Unwrap())
}

func TestNewLocal(t *testing.T) {
	l := NewLocal()
	require.NotNil(t, l)
	require.Equal(t, TypeLocal, l.Type())
}

func TestTypeString(t *testing.T) {
	assert.Equal(t, "local", TypeLocal.String())
	assert.Equal(t, "memory", TypeMemory.String())
	assert.Equal(t, "unknown", Type(99).String())
}

func TestWriteReadFile(t *testing.T) {
	m := NewMemory()

	require.NoError(t, m.WriteFile("/a/b.txt", []byte("payload"), 0o644))

	data, err := m.ReadFile("/a/b.txt")
	require.NoError(t, err)
	require.Equal(t, []byte("payload"), data)
}

func TestReadFile_Missing(t *testing.T) {
	m := NewMemory()

	_, err := m.ReadFile("/missing.txt")
	require.Error(t, err)
	require.True(t, os.IsNotExist(err))
}

func TestExists(t *testing.T) {
	m := NewMemory()
	require.NoError(t, m.WriteFile("/present.txt", []byte("x"), 0o644))

	ok, err := m.Exists("/present.txt")
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = m.Exists("/absent.txt")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestMkdir_FailsOnExisting(t *testing.T) {
	m := NewMemory()
	require.NoError(t, m.MkdirAll("/dir", 0o755))

	err := m.Mkdir("/dir", 0o755)
	require.Error(t, err)
	require.ErrorIs(t, err, fs.ErrExist)
}

func TestMkdirAll_Idempotent(t *testing.T) {
	m := NewMemory()
	require.NoError(t, m.MkdirAll("/x/y/z", 0o755))
	require.NoError(t, m.MkdirAll("/x/y/z", 0o755))
}

func TestRemoveAll(t *testing.T) {
	m := NewMemory()
	require.NoError(t, m.WriteFile("/tree/a.txt", []byte("a"), 0o644))
	require.NoError(t, m.WriteFile("/tree/sub/b.txt", []byte("b"), 0o644))

	require.NoError(t, m.RemoveAll("/tree"))

	ok, err := m.Exists("/tree")
	require.NoError(t, err)
	require.False(t, ok)

	// Missing path is not an error.
	require.NoError(t, m.RemoveAll("/tree"))
}

func TestRename(t *testing.T) {
	m := NewMemory()
	require.NoError(t, m.WriteFile("/old.txt", []byte("x"), 0o644))

	require.NoError(t, m.Rename("/old.txt", "/new.txt"))

	data, err := m.ReadFile("/new.txt")
	require.NoError(t, err)
	require.Equal(t, []byte("x"), data)
}

func TestReadDir(t *testing.T) {
	m := NewMemory()
	require.NoError(t, m.WriteFile("/d/b.txt", []byte("b"), 0o644))
	require.NoError(t, m.WriteFile("/d/a.txt", []byte("a"), 0o644))

	entries, err := m.ReadDir("/d")
	require.NoError(t, err)
	require.Len(t, entries, 2)

	names := []string{entries[0].Name(), entries[1].Name()}
	sort.Strings(names)
	require.Equal(t, []string{"a.txt", "b.txt"}, names)
}

func TestWalk(t *testing.T) {
	m := NewMemory()
	require.NoError(t, m.WriteFile("/root/a.txt", []byte("a"), 0o644))
	require.NoError(t, m.WriteFile("/root/sub/b.txt", []byte("b"), 0o644))

	var files []string
	err := m.Walk("/root", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			files = append(files, p)
		}
		return nil
	})
	require.NoError(t, err)
	sort.Strings(files)
	require.Equal(t, []string{"/root/a.txt", "/root/sub/b.txt"}, files)
}

func TestFileHandle(t *testing.T) {
	m := NewMemory()

	f, err := m.Create("/h.txt")
	require.NoError(t, err)
	require.Equal(t, "/h.txt", f.Name())

	n, err := f.Write([]byte("hello"))
	require.NoError(t, err)
	require.Equal(t, 5, n)
	require.NoError(t, f.Close())

	data, err := m.ReadFile("/h.txt")
	require.NoError(t, err)
	require.Equal(t, []byte("hello"), data)
}

func TestChmod_MemoryUnsupported(t *testing.T) {
	m := NewMemory()
	require.NoError(t, m.WriteFile("/f.txt", []byte("x"), 0o644))

	err := m.Chmod("/f.txt", 0o600)
	require.ErrorIs(t, err, ErrUnsupported)
}

func TestChmod_Local(t *testing.T) {
	dir := t.TempDir()
	l := NewLocal()
	path := dir + "/f.txt"
	require.NoError(t, l.WriteFile(path, []byte("x"), 0o644))

	require.NoError(t, l.Chmod(path, 0o600))

	info, err := l.Stat(path)
	require.NoError(t, err)
	require.Equal(t, fs.FileMode(0o600), info.Mode().Perm())
}

func TestCopyAll_File(t *testing.T) {
	m := NewMemory()
	require.NoError(t, m.WriteFile("/src.txt", []byte("content"), 0o644))

	require.NoError(t, CopyAll(m, "/src.txt", "/deep/dst.txt"))

	data, err := m.ReadFile("/deep/dst.txt")
	require.NoError(t, err)
	require.Equal(t, []byte("content"), data)
}

func TestCopyAll_Tree(t *testing.T) {
	m := NewMemory()
	require.NoError(t, m.WriteFile("/src/a.txt", []byte("a"), 0o644))
	require.NoError(t, m.WriteFile("/src/sub/b.txt", []byte("b"), 0o644))

	require.NoError(t, CopyAll(m, "/src", "/dst"))

	a, err := m.ReadFile("/dst/a.txt")
	require.NoError(t, err)
	require.Equal(t, []byte("a"), a)

	b, err := m.ReadFile("/dst/sub/b.txt")
	require.NoError(t, err)
	require.Equal(t, []byte("b"), b)
}

func TestCopyAll_MissingSource(t *testing.T) {
	m := NewMemory()
	err := CopyAll(m, "/nope", "/dst")
	require.Error(t, err)
	require.True(t, os.IsNotExist(err))
}
