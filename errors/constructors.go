package errors

import "fmt"

// New creates a new Error with the given code and message.
//
// Example:
//
//	err := errors.New(errors.CodePathNotFound, "no such file")
func New(code Code, message string) Error {
	return &codedError{
		code:    code,
		message: message,
	}
}

// Newf creates a new Error with a formatted message.
//
// Example:
//
//	err := errors.Newf(errors.CodeUndefinedVariable, "undefined variable %q in %q", name, path)
func Newf(code Code, format string, args ...any) Error {
	return &codedError{
		code:    code,
		message: fmt.Sprintf(format, args...),
	}
}
