// Package cmdfs provides a Unix-flavored fluent API over file, directory,
// and text operations with automatic text-encoding detection and recoding.
//
// A Shell is the entry point. It owns a variable-aware path resolver, a
// content separator, and a backing filesystem:
//
//	sh := cmdfs.New(cmdfs.WithWorkingDir("/tmp"))
//	sh.SetLocal("logs", "/var/log")
//
//	dst := sh.File("%logs%/combined.txt")
//
//	// Concatenate a.log and b.log (separator between them) into the
//	// destination, then append an in-memory note.
//	sh.Files("a.log", "b.log").CopyTo(dst)
//	sh.Text("rotated").AppendTo(dst)
//	if err := sh.Err(); err != nil {
//		// handle the first failure of the chain
//	}
//
// # Content sources and sinks
//
// Three variants implement the Source interface: Text (in-memory), File
// (disk-backed, read fresh on every access), and FileGroup (an ordered
// collection of Files). Every variant supports the four transfer
// operations CopyTo, AppendTo, CopyFrom, and AppendFrom. Transfers read
// all source material before writing, and inject the configured separator
// between group members and before appended content — never at the start
// or end of a single write.
//
// # Encoding
//
// File content is decoded through a pinned encoding, or through an
// encoding detected on first read and cached on the object. Written text
// is stored in its minimal encoding: the narrowest of a fixed candidate
// ranking (ascii, windows-1251, utf-8) that represents the text losslessly.
//
// # Error handling
//
// One-shot Shell operations (Mkdir, RmFile, Copy, ...) are chainable and
// hold the first error for inspection via Err. Passing IgnoreErrors to any
// operation swallows its failure and leaves the chain usable. Transfer and
// read operations on content objects return errors directly.
package cmdfs
