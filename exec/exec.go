package exec

import (
	"context"
	"fmt"
	"os"
	osexec "os/exec"
)

// Executor runs external programs in the foreground.
// It provides a small fluent API for configuring the launch.
type Executor interface {
	// WithDir sets the working directory for the program.
	WithDir(dir string) Executor

	// WithContext sets the context for the launch.
	// The program is killed if the context is canceled.
	WithContext(ctx context.Context) Executor

	// Run executes the program with the given arguments, attached to the
	// caller's stdin/stdout/stderr, and blocks until it exits.
	Run(name string, args ...string) error
}

// RunError describes a program that started but exited with a failure.
type RunError struct {
	// Command is the full command line that was executed.
	Command []string

	// ExitCode is the exit code returned by the program, or -1 if the
	// program did not run to completion.
	ExitCode int

	// Err is the underlying error from the launch.
	Err error
}

// Error implements the error interface.
func (e *RunError) Error() string {
	return fmt.Sprintf("command %v failed with exit code %d: %v", e.Command, e.ExitCode, e.Err)
}

// Unwrap returns the underlying error.
func (e *RunError) Unwrap() error {
	return e.Err
}

// Local is the default Executor implementation backed by os/exec.
type Local struct {
	dir string
	ctx context.Context
}

// New creates a Local executor.
func New() *Local {
	return &Local{ctx: context.Background()}
}

// WithDir sets the working directory for the program.
func (l *Local) WithDir(dir string) Executor {
	l.dir = dir
	return l
}

// WithContext sets the context for the launch.
func (l *Local) WithContext(ctx context.Context) Executor {
	l.ctx = ctx
	return l
}

// Run executes the program attached to the caller's terminal and blocks
// until it exits.
func (l *Local) Run(name string, args ...string) error {
	cmd := osexec.CommandContext(l.ctx, name, args...)
	cmd.Dir = l.dir
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		exitCode := -1
		if exitErr, ok := err.(*osexec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		}
		return &RunError{
			Command:  append([]string{name}, args...),
			ExitCode: exitCode,
			Err:      err,
		}
	}
	return nil
}

// Compile-time interface check.
var _ Executor = (*Local)(nil)
