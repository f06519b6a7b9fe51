package cmdfs

import (
	"github.com/jmgilman/go/cmdfs/charset"
)

// Text is an in-memory content source. Its value lives in the Shell's
// process, not on the filesystem, so it can seed files with literal
// content or collect the result of a transfer.
type Text struct {
	streamer
	value string
}

// Text creates an in-memory content source holding value.
func (s *Shell) Text(value string) *Text {
	t := &Text{value: value}
	t.streamer = streamer{self: t, sh: s}
	return t
}

// Text returns the current value.
func (t *Text) Text() (string, error) {
	return t.value, nil
}

// Bytes returns the value encoded in its minimal encoding.
func (t *Text) Bytes() ([]byte, error) {
	codec, err := charset.Lookup(charset.Minimal(t.value))
	if err != nil {
		return nil, err
	}
	return codec.Encode(t.value)
}

// Encoding returns the minimal encoding able to represent the value.
func (t *Text) Encoding() (string, error) {
	return charset.Minimal(t.value), nil
}

// String returns the current value. It allows a Text to be printed
// directly.
func (t *Text) String() string {
	return t.value
}

// Clear resets the value to the empty string.
func (t *Text) Clear(opts ...CallOption) *Shell {
	t.value = ""
	return t.sh
}

func (t *Text) setText(text string) error {
	t.value = text
	return nil
}

func (t *Text) appendText(text, sep string) error {
	t.value = joinSep(t.value, text, sep)
	return nil
}

// joinSep joins two chunks with sep, omitting the separator when either
// side is empty so it never leads or trails the result.
func joinSep(existing, added, sep string) string {
	if existing == "" {
		return added
	}
	if added == "" {
		return existing
	}
	return existing + sep + added
}

var _ Source = (*Text)(nil)
