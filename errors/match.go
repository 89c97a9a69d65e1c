package errors

import (
	stderrors "errors"
)

// AsError converts an error to an *Error if possible.
func AsError(err error) (*Error, bool) {
	var e *Error
	if stderrors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// CodeOf returns the code of the first *Error in err's chain, or "" if there is none.
func CodeOf(err error) ErrorCode {
	if e, ok := AsError(err); ok {
		return e.Code
	}
	return ""
}

// Wrap converts any error into an *Error. A nil error stays nil, an *Error
// anywhere in the chain is returned as is, anything else becomes INTERNAL_ERROR.
func Wrap(op string, err error) *Error {
	if err == nil {
		return nil
	}
	if e, ok := AsError(err); ok {
		return e
	}
	return Internal(op, err)
}
