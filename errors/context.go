package errors

import "errors"

// WithContext adds a single context field to an error.
// Returns a new Error with the context field added; existing fields are
// preserved. If err is not an Error, it is promoted to one with CodeUnknown.
//
// Returns nil if err is nil.
//
// Example:
//
//	err := errors.New(errors.CodeEncoding, "decode failed")
//	err = errors.WithContext(err, "path", path)
func WithContext(err error, key string, value any) Error {
	if err == nil {
		return nil
	}

	var coded Error
	if !errors.As(err, &coded) {
		coded = &codedError{
			code:    CodeUnknown,
			message: err.Error(),
			cause:   err,
		}
	}

	ctx := make(map[string]any)
	for k, v := range coded.Context() {
		ctx[k] = v
	}
	ctx[key] = value

	return &codedError{
		code:    coded.Code(),
		message: coded.Message(),
		context: ctx,
		cause:   coded.Unwrap(),
	}
}
