// Package errors provides the structured error taxonomy for the cmdfs toolkit.
//
// It extends Go's standard error handling with error codes and context
// metadata while maintaining full compatibility with the standard library
// errors package (errors.Is, errors.As, errors.Unwrap).
//
// # Quick Start
//
// Creating errors:
//
//	err := errors.New(errors.CodePathNotFound, "no such file")
//	err := errors.Newf(errors.CodeUndefinedVariable, "undefined variable %q", name)
//
// Wrapping errors:
//
//	data, err := fsys.ReadFile(path)
//	if err != nil {
//	    return errors.Wrap(err, errors.CodePathNotFound, "read failed")
//	}
//
// Adding context:
//
//	err = errors.WithContext(err, "path", path)
//
// Inspecting errors:
//
//	if errors.GetCode(err) == errors.CodeEncoding {
//	    // fall back to the default encoding
//	}
//
// # Design Principles
//
//   - Standard library compatibility (errors.Is, errors.As, errors.Unwrap)
//   - Immutability (errors are never mutated after construction)
//   - Type safety (strong types for codes)
//   - Minimal API surface
package errors
