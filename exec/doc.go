// Package exec provides the small process-launching surface the cmdfs
// toolkit needs to hand files to an external editor.
//
// The Executor interface abstracts the launch so callers can substitute a
// mock in tests; the default implementation runs the program in the
// foreground attached to the caller's terminal and blocks until it exits.
//
// Usage:
//
//	ex := exec.New()
//	err := ex.WithDir("/tmp").Run("nano", "/tmp/notes.txt")
package exec
