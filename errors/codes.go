package errors

// Code identifies a specific error condition.
// Codes are string-based for debuggability and natural log output.
type Code string

const (
	// CodePathNotFound indicates a resolved path does not exist where
	// existence was required (reads, cd, archive sources).
	CodePathNotFound Code = "PATH_NOT_FOUND"

	// CodeUndefinedVariable indicates a path token could not be resolved
	// against either the local or the global variable scope.
	CodeUndefinedVariable Code = "UNDEFINED_VARIABLE"

	// CodeEncoding indicates a decode or encode failure: the bytes are not
	// valid under the stated source encoding, or the text is not
	// representable in the target encoding.
	CodeEncoding Code = "ENCODING_ERROR"

	// CodePermission indicates the operation was denied by the OS.
	CodePermission Code = "PERMISSION_DENIED"

	// CodeAlreadyExists indicates a file or directory already exists and
	// cannot be created again.
	CodeAlreadyExists Code = "ALREADY_EXISTS"

	// CodeInvalidOperation indicates the operation is not defined for the
	// receiver, such as writing directly to a file group.
	CodeInvalidOperation Code = "INVALID_OPERATION"

	// CodeIO indicates an OS-level I/O failure that does not map to a more
	// specific code.
	CodeIO Code = "IO_ERROR"

	// CodeUnknown indicates an unclassified error, typically a foreign
	// error promoted into this package.
	CodeUnknown Code = "UNKNOWN"
)

// String returns the string representation of the code.
func (c Code) String() string {
	return string(c)
}
