// Package charset provides text-encoding detection, minimal-encoding
// selection, and recoding between named character encodings.
//
// Detection combines BOM sniffing with statistical detection
// (github.com/saintfish/chardet). Recoding is backed by golang.org/x/text;
// encoding names are resolved through the IANA index plus common aliases
// (cp1251, utf8, latin1, ...).
//
// Minimal-encoding selection ranks a fixed list of candidates from most to
// least restrictive (ascii, windows-1251, utf-8) and returns the first that
// can represent a text losslessly. The final candidate is universal, so
// selection always succeeds.
//
// All functions are pure: they operate on the bytes and strings they are
// given and touch no external state.
package charset
