package cmdfs

// Source is a readable, writable unit of text content. The three
// implementations are Text (in-memory), File (one file on the backing
// filesystem) and FileGroup (an ordered set of files read as one joined
// stream).
//
// Reads surface the content as already-decoded text; writes accept text
// and let the implementation choose its byte representation. The
// interface is closed: only the package's own types implement it.
type Source interface {
	// Text returns the decoded content.
	Text() (string, error)

	// Bytes returns the raw encoded content.
	Bytes() ([]byte, error)

	// Encoding reports the encoding the content is stored in.
	Encoding() (string, error)

	// Clear replaces the content with the empty string.
	Clear(opts ...CallOption) *Shell

	// CopyTo overwrites dst with this source's content.
	CopyTo(dst Source, opts ...CallOption) *Shell

	// AppendTo appends this source's content to dst, separated from any
	// existing content by the Shell's separator.
	AppendTo(dst Source, opts ...CallOption) *Shell

	// CopyFrom overwrites this source with src's content.
	CopyFrom(src Source, opts ...CallOption) *Shell

	// AppendFrom appends src's content to this source.
	AppendFrom(src Source, opts ...CallOption) *Shell

	// setText overwrites the content, appendText extends it with sep in
	// between. Both complete only after their argument has been fully
	// materialized, so a source can feed itself.
	setText(text string) error
	appendText(text, sep string) error
}

// Equal reports whether two sources hold byte-identical content. Content
// in different encodings compares unequal even when the decoded text
// matches.
func Equal(a, b Source) (bool, error) {
	ab, err := a.Bytes()
	if err != nil {
		return false, err
	}
	bb, err := b.Bytes()
	if err != nil {
		return false, err
	}
	return string(ab) == string(bb), nil
}

// EqualText reports whether two sources decode to the same text.
func EqualText(a, b Source) (bool, error) {
	at, err := a.Text()
	if err != nil {
		return false, err
	}
	bt, err := b.Text()
	if err != nil {
		return false, err
	}
	return at == bt, nil
}

// streamer supplies the four transfer methods shared by every Source
// implementation. self points back at the embedding value.
type streamer struct {
	self Source
	sh   *Shell
}

func (st *streamer) CopyTo(dst Source, opts ...CallOption) *Shell {
	return st.sh.transfer(st.self, dst, false, opts)
}

func (st *streamer) AppendTo(dst Source, opts ...CallOption) *Shell {
	return st.sh.transfer(st.self, dst, true, opts)
}

func (st *streamer) CopyFrom(src Source, opts ...CallOption) *Shell {
	return st.sh.transfer(src, st.self, false, opts)
}

func (st *streamer) AppendFrom(src Source, opts ...CallOption) *Shell {
	return st.sh.transfer(src, st.self, true, opts)
}
