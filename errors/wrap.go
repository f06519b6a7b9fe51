package errors

import "fmt"

// Wrap wraps an error with additional context while preserving the original
// error. The wrapped error is accessible via Unwrap() and compatible with
// errors.Is and errors.As.
//
// Returns nil if err is nil.
//
// Example:
//
//	data, err := fsys.ReadFile(path)
//	if err != nil {
//	    return errors.Wrap(err, errors.CodePathNotFound, "read failed")
//	}
func Wrap(err error, code Code, message string) Error {
	if err == nil {
		return nil
	}
	return &codedError{
		code:    code,
		message: message,
		cause:   err,
	}
}

// Wrapf wraps an error with a formatted message while preserving the
// original error.
//
// Returns nil if err is nil.
//
// Example:
//
//	if err := enc.decode(data); err != nil {
//	    return errors.Wrapf(err, errors.CodeEncoding, "decode as %s failed", name)
//	}
func Wrapf(err error, code Code, format string, args ...any) Error {
	if err == nil {
		return nil
	}
	return Wrap(err, code, fmt.Sprintf(format, args...))
}
