package errors

import (
	stderrors "errors"
)

// Is reports whether any error in err's chain matches target.
// This is a convenience wrapper around the standard library errors.Is.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
// This is a convenience wrapper around the standard library errors.As.
func As(err error, target any) bool {
	return stderrors.As(err, target)
}

// GetCode extracts the Code from an error.
// Returns CodeUnknown if the error is nil or carries no code.
//
// This function handles the error chain and will extract the code from the
// outermost Error in the chain.
//
// Example:
//
//	if errors.GetCode(err) == errors.CodePathNotFound {
//	    // handle missing path
//	}
func GetCode(err error) Code {
	if err == nil {
		return CodeUnknown
	}

	var coded Error
	if stderrors.As(err, &coded) {
		return coded.Code()
	}

	return CodeUnknown
}

// HasCode reports whether any error in err's chain carries the given code.
func HasCode(err error, code Code) bool {
	return GetCode(err) == code
}
