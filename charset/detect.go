package charset

import (
	"bytes"
	"strings"

	"github.com/saintfish/chardet"

	"github.com/jmgilman/go/cmdfs/errors"
)

// Result describes a detection outcome.
type Result struct {
	// Charset is the canonical name of the detected encoding.
	Charset string

	// Confidence is the detector's confidence in the result, 0-100.
	// BOM-based results carry confidence 100.
	Confidence int
}

// confidenceThreshold is the minimum chardet confidence accepted before
// falling back to utf-8.
const confidenceThreshold = 70

// DetectBOM inspects the leading bytes for a byte order mark.
// It returns the implied encoding name and true when a BOM is present.
func DetectBOM(data []byte) (string, bool) {
	switch {
	case bytes.HasPrefix(data, utf8BOM):
		return "utf-8-sig", true
	case bytes.HasPrefix(data, []byte{0xFF, 0xFE}):
		return "utf-16", true
	case bytes.HasPrefix(data, []byte{0xFE, 0xFF}):
		return "utf-16", true
	}
	return "", false
}

// Detect determines the most likely encoding of data.
//
// A BOM, when present, decides the result outright. Otherwise statistical
// detection runs over the bytes; ambiguous input never fails — the best
// guess is returned together with its confidence, and results below the
// confidence threshold fall back to utf-8. Empty input fails with an
// encoding error: there is nothing to measure, so the caller must supply a
// default.
func Detect(data []byte) (Result, error) {
	if len(data) == 0 {
		return Result{}, errors.New(errors.CodeEncoding, "cannot detect encoding of empty input")
	}

	if name, ok := DetectBOM(data); ok {
		return Result{Charset: name, Confidence: 100}, nil
	}

	if isASCII(data) {
		return Result{Charset: "ascii", Confidence: 100}, nil
	}

	best, err := chardet.NewTextDetector().DetectBest(data)
	if err != nil {
		// No charset matched at all. Still a best guess, not a failure.
		return Result{Charset: "utf-8", Confidence: 0}, nil
	}

	name := normalizeName(strings.ToLower(best.Charset))
	if best.Confidence < confidenceThreshold {
		return Result{Charset: "utf-8", Confidence: best.Confidence}, nil
	}
	return Result{Charset: name, Confidence: best.Confidence}, nil
}

// isASCII reports whether every byte is below 0x80. Pure seven-bit input
// is classified as ascii directly; statistical detectors label it with a
// superset encoding, which would widen the minimal-encoding ranking.
func isASCII(data []byte) bool {
	for _, b := range data {
		if b >= 0x80 {
			return false
		}
	}
	return true
}
