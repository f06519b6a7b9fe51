package charset

// candidates is the fixed minimal-encoding ranking, most restrictive first.
// The final entry is universal, so Minimal always terminates with a result.
var candidates = []string{"ascii", "windows-1251", "utf-8"}

// Candidates returns the minimal-encoding ranking in order.
func Candidates() []string {
	out := make([]string, len(candidates))
	copy(out, candidates)
	return out
}

// Minimal returns the narrowest encoding from the candidate ranking that can
// represent text without loss.
func Minimal(text string) string {
	for _, name := range candidates {
		codec, err := Lookup(name)
		if err != nil {
			continue
		}
		if _, err := codec.Encode(text); err == nil {
			return name
		}
	}
	// Unreachable: utf-8 encodes any Go string.
	return "utf-8"
}

// Recode converts data from one named encoding to another.
// A decode failure under the source encoding signals that the caller named
// the wrong encoding and fails with an encoding error, as does a target
// encoding that cannot represent the decoded text.
func Recode(data []byte, from, to string) ([]byte, error) {
	src, err := Lookup(from)
	if err != nil {
		return nil, err
	}
	dst, err := Lookup(to)
	if err != nil {
		return nil, err
	}

	text, err := src.Decode(data)
	if err != nil {
		return nil, err
	}
	return dst.Encode(text)
}
