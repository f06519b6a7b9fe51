package charset

import (
	"bytes"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"

	"github.com/jmgilman/go/cmdfs/errors"
)

// Codec converts between a named character encoding and UTF-8 text.
// The zero value is not usable; obtain instances through Lookup.
type Codec struct {
	name string
	// enc is nil for encodings handled natively (ascii, utf-8 variants).
	enc encoding.Encoding
}

// aliases maps common alternative spellings to canonical names.
var aliases = map[string]string{
	"utf8":      "utf-8",
	"utf-8-sig": "utf-8-sig",
	"cp1251":    "windows-1251",
	"cp1252":    "windows-1252",
	"latin1":    "iso-8859-1",
	"latin-1":   "iso-8859-1",
	"utf16":     "utf-16",
	"utf16le":   "utf-16le",
	"utf16be":   "utf-16be",
	"us-ascii":  "ascii",
}

// utf8BOM is the UTF-8 byte order mark.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// normalizeName lowercases a name and resolves known aliases.
func normalizeName(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	n = strings.ReplaceAll(n, "_", "-")
	if canonical, ok := aliases[n]; ok {
		return canonical
	}
	return n
}

// Lookup resolves an encoding name to a Codec.
// Names are matched case-insensitively against the IANA index and a set of
// common aliases. Unknown names fail with an encoding error.
func Lookup(name string) (*Codec, error) {
	n := normalizeName(name)

	switch n {
	case "ascii", "utf-8", "utf-8-sig":
		return &Codec{name: n}, nil
	case "utf-16":
		return &Codec{name: n, enc: unicode.UTF16(unicode.LittleEndian, unicode.UseBOM)}, nil
	case "utf-16le":
		return &Codec{name: n, enc: unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)}, nil
	case "utf-16be":
		return &Codec{name: n, enc: unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)}, nil
	}

	enc, err := ianaindex.IANA.Encoding(n)
	if err != nil || enc == nil {
		return nil, errors.Newf(errors.CodeEncoding, "unsupported encoding %q", name)
	}
	return &Codec{name: n, enc: enc}, nil
}

// Name returns the canonical name of the codec's encoding.
func (c *Codec) Name() string {
	return c.name
}

// Decode converts data from the codec's encoding to a UTF-8 string.
// Bytes that are not valid under the encoding fail with an encoding error,
// signalling that the caller named the wrong source encoding.
func (c *Codec) Decode(data []byte) (string, error) {
	switch c.name {
	case "ascii":
		for i, b := range data {
			if b >= utf8.RuneSelf {
				return "", errors.Newf(errors.CodeEncoding, "byte 0x%02x at offset %d is not ascii", b, i)
			}
		}
		return string(data), nil
	case "utf-8":
		if !utf8.Valid(data) {
			return "", errors.New(errors.CodeEncoding, "invalid utf-8 sequence")
		}
		return string(data), nil
	case "utf-8-sig":
		data = bytes.TrimPrefix(data, utf8BOM)
		if !utf8.Valid(data) {
			return "", errors.New(errors.CodeEncoding, "invalid utf-8 sequence")
		}
		return string(data), nil
	}

	decoded, err := c.enc.NewDecoder().Bytes(data)
	if err != nil {
		return "", errors.Wrapf(err, errors.CodeEncoding, "decode as %s failed", c.name)
	}
	// x/text decoders substitute U+FFFD for unmapped bytes instead of
	// failing. Unmapped input means the source encoding was wrong.
	if bytes.ContainsRune(decoded, utf8.RuneError) && !bytes.Contains(data, []byte(string(utf8.RuneError))) {
		return "", errors.Newf(errors.CodeEncoding, "input is not valid %s", c.name)
	}
	return string(decoded), nil
}

// Encode converts a UTF-8 string to the codec's encoding.
// Runes that the encoding cannot represent fail with an encoding error.
func (c *Codec) Encode(text string) ([]byte, error) {
	switch c.name {
	case "ascii":
		for i, r := range text {
			if r >= utf8.RuneSelf {
				return nil, errors.Newf(errors.CodeEncoding, "rune %q at offset %d is not ascii", r, i)
			}
		}
		return []byte(text), nil
	case "utf-8":
		return []byte(text), nil
	case "utf-8-sig":
		out := make([]byte, 0, len(utf8BOM)+len(text))
		out = append(out, utf8BOM...)
		return append(out, text...), nil
	}

	encoded, err := c.enc.NewEncoder().Bytes([]byte(text))
	if err != nil {
		return nil, errors.Wrapf(err, errors.CodeEncoding, "encode as %s failed", c.name)
	}
	return encoded, nil
}
