package cmdfs

import (
	"github.com/jmgilman/go/cmdfs/charset"
	"github.com/jmgilman/go/cmdfs/errors"
)

// FileGroup is a content source spanning an ordered set of files. Reading
// joins the members' text with the Shell's separator, in declaration
// order. A FileGroup cannot be written to as a single unit: when it is
// the destination of a transfer, the payload is delivered to every member
// instead.
type FileGroup struct {
	streamer
	members []*File
}

// Files creates a content source spanning the files at the given paths,
// in order. Variable tokens are expanded immediately; failures are
// deferred and reported by the first operation on the group.
func (s *Shell) Files(paths ...string) *FileGroup {
	g := &FileGroup{members: make([]*File, 0, len(paths))}
	g.streamer = streamer{self: g, sh: s}
	for _, p := range paths {
		g.members = append(g.members, s.File(p))
	}
	return g
}

// Add appends an already-constructed File to the group and returns the
// group for chaining.
func (g *FileGroup) Add(files ...*File) *FileGroup {
	g.members = append(g.members, files...)
	return g
}

// Members returns the group's files in order.
func (g *FileGroup) Members() []*File {
	out := make([]*File, len(g.members))
	copy(out, g.members)
	return out
}

// Text returns the members' content joined with the Shell's separator.
// Empty members contribute nothing, so the separator never leads, trails
// or doubles up.
func (g *FileGroup) Text() (string, error) {
	joined := ""
	for _, m := range g.members {
		text, err := m.Text()
		if err != nil {
			return "", err
		}
		joined = joinSep(joined, text, g.sh.sep)
	}
	return joined, nil
}

// Bytes returns the joined content encoded in its minimal encoding.
func (g *FileGroup) Bytes() ([]byte, error) {
	text, err := g.Text()
	if err != nil {
		return nil, err
	}
	codec, err := charset.Lookup(charset.Minimal(text))
	if err != nil {
		return nil, err
	}
	return codec.Encode(text)
}

// Encoding returns the minimal encoding able to represent the joined
// content.
func (g *FileGroup) Encoding() (string, error) {
	text, err := g.Text()
	if err != nil {
		return "", err
	}
	return charset.Minimal(text), nil
}

// Clear replaces every member's content with the empty string.
func (g *FileGroup) Clear(opts ...CallOption) *Shell {
	cs := applyCallOptions(opts)
	if g.sh.err != nil {
		return g.sh
	}
	// Every member is attempted; the first failure is the one reported.
	var first error
	for _, m := range g.members {
		if err := m.setText(""); err != nil && first == nil {
			first = err
		}
	}
	return g.sh.finish("clear", first, cs)
}

// A group has no single storage location to overwrite; only the transfer
// engine may write to it, by fanning out to the members.
func (g *FileGroup) setText(string) error {
	return errors.New(errors.CodeInvalidOperation, "cannot write to a file group as a unit")
}

func (g *FileGroup) appendText(string, string) error {
	return errors.New(errors.CodeInvalidOperation, "cannot write to a file group as a unit")
}

var _ Source = (*FileGroup)(nil)
