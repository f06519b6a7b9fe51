package charset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmgilman/go/cmdfs/errors"
)

func TestLookup_Aliases(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"UTF8", "utf-8"},
		{"utf-8", "utf-8"},
		{"cp1251", "windows-1251"},
		{"Windows-1251", "windows-1251"},
		{"latin1", "iso-8859-1"},
		{"US-ASCII", "ascii"},
		{"UTF_16LE", "utf-16le"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			codec, err := Lookup(tt.name)
			require.NoError(t, err)
			require.Equal(t, tt.want, codec.Name())
		})
	}
}

func TestLookup_Unknown(t *testing.T) {
	_, err := Lookup("no-such-encoding")
	require.Error(t, err)
	require.Equal(t, errors.CodeEncoding, errors.GetCode(err))
}

func TestCodec_DecodeWindows1251(t *testing.T) {
	codec, err := Lookup("windows-1251")
	require.NoError(t, err)

	// "Привет" in windows-1251.
	text, err := codec.Decode([]byte{0xCF, 0xF0, 0xE8, 0xE2, 0xE5, 0xF2})
	require.NoError(t, err)
	require.Equal(t, "Привет", text)
}

func TestCodec_DecodeAsciiRejectsHighBytes(t *testing.T) {
	codec, err := Lookup("ascii")
	require.NoError(t, err)

	_, err = codec.Decode([]byte{'a', 0xC3, 0xA9})
	require.Error(t, err)
	require.Equal(t, errors.CodeEncoding, errors.GetCode(err))
}

func TestCodec_DecodeInvalidUTF8(t *testing.T) {
	codec, err := Lookup("utf-8")
	require.NoError(t, err)

	_, err = codec.Decode([]byte{0xFF, 0xFE, 0xFD})
	require.Error(t, err)
	require.Equal(t, errors.CodeEncoding, errors.GetCode(err))
}

func TestCodec_EncodeUnrepresentable(t *testing.T) {
	codec, err := Lookup("windows-1251")
	require.NoError(t, err)

	_, err = codec.Encode("日本語")
	require.Error(t, err)
	require.Equal(t, errors.CodeEncoding, errors.GetCode(err))
}

func TestCodec_UTF8SigRoundTrip(t *testing.T) {
	codec, err := Lookup("utf-8-sig")
	require.NoError(t, err)

	data, err := codec.Encode("hello")
	require.NoError(t, err)
	require.Equal(t, []byte{0xEF, 0xBB, 0xBF, 'h', 'e', 'l', 'l', 'o'}, data)

	text, err := codec.Decode(data)
	require.NoError(t, err)
	require.Equal(t, "hello", text)
}

func TestMinimal(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"plain ascii", "abc123", "ascii"},
		{"empty string", "", "ascii"},
		{"cyrillic", "Привет", "windows-1251"},
		{"japanese", "日本語", "utf-8"},
		{"mixed cyrillic and emoji", "Привет 😊", "utf-8"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Minimal(tt.text))
		})
	}
}

// TestMinimal_IsMinimal verifies that no earlier candidate than the chosen
// one can represent the text.
func TestMinimal_IsMinimal(t *testing.T) {
	for _, text := range []string{"abc", "Привет", "日本語"} {
		chosen := Minimal(text)

		for _, name := range Candidates() {
			if name == chosen {
				break
			}
			codec, err := Lookup(name)
			require.NoError(t, err)
			_, err = codec.Encode(text)
			assert.Error(t, err, "candidate %s precedes %s but encodes %q", name, chosen, text)
		}

		codec, err := Lookup(chosen)
		require.NoError(t, err)
		encoded, err := codec.Encode(text)
		require.NoError(t, err)
		decoded, err := codec.Decode(encoded)
		require.NoError(t, err)
		assert.Equal(t, text, decoded, "chosen encoding %s must round-trip", chosen)
	}
}

func TestRecode_RoundTrip(t *testing.T) {
	original := []byte("Привет, мир")

	cp1251, err := Recode(original, "utf-8", "windows-1251")
	require.NoError(t, err)
	require.NotEqual(t, original, cp1251)

	back, err := Recode(cp1251, "windows-1251", "utf-8")
	require.NoError(t, err)
	require.Equal(t, original, back)
}

func TestRecode_WrongSourceEncoding(t *testing.T) {
	// Valid windows-1251 bytes that are not valid utf-8.
	data := []byte{0xCF, 0xF0, 0xE8}

	_, err := Recode(data, "utf-8", "windows-1251")
	require.Error(t, err)
	require.Equal(t, errors.CodeEncoding, errors.GetCode(err))
}

func TestDetectBOM(t *testing.T) {
	tests := []struct {
		name   string
		data   []byte
		want   string
		wantOK bool
	}{
		{"utf-8 bom", []byte{0xEF, 0xBB, 0xBF, 'h', 'i'}, "utf-8-sig", true},
		{"utf-16 le bom", []byte{0xFF, 0xFE, 'h', 0x00}, "utf-16", true},
		{"utf-16 be bom", []byte{0xFE, 0xFF, 0x00, 'h'}, "utf-16", true},
		{"no bom", []byte("hello"), "", false},
		{"empty", nil, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := DetectBOM(tt.data)
			require.Equal(t, tt.wantOK, ok)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestDetect_EmptyInput(t *testing.T) {
	_, err := Detect(nil)
	require.Error(t, err)
	require.Equal(t, errors.CodeEncoding, errors.GetCode(err))
}

func TestDetect_BOMWins(t *testing.T) {
	res, err := Detect([]byte{0xEF, 0xBB, 0xBF, 'h', 'i'})
	require.NoError(t, err)
	require.Equal(t, "utf-8-sig", res.Charset)
	require.Equal(t, 100, res.Confidence)
}

func TestDetect_ASCIIText(t *testing.T) {
	res, err := Detect([]byte("seven-bit input only"))
	require.NoError(t, err)
	require.Equal(t, "ascii", res.Charset)
	require.Equal(t, 100, res.Confidence)
}

func TestDetect_UTF8Text(t *testing.T) {
	res, err := Detect([]byte("Привет, мир! Это довольно длинный текст для детектора."))
	require.NoError(t, err)
	require.Equal(t, "utf-8", res.Charset)
	require.Greater(t, res.Confidence, 0)
}

// Detection decodes usable text even when the detector is unsure: low
// confidence falls back to utf-8 rather than failing.
func TestDetect_NeverFailsOnAmbiguousInput(t *testing.T) {
	res, err := Detect([]byte{0x01, 0x02, 0x03})
	require.NoError(t, err)
	require.NotEmpty(t, res.Charset)
}
