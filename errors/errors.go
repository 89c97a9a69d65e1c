package errors

import (
	"fmt"
)

// Error is the unified rangekit error type.
type Error struct {
	// Code is a machine-readable error code.
	Code ErrorCode `json:"code"`
	// Op is the operation that failed, e.g. "TakeExactly".
	Op string `json:"op,omitempty"`
	// Message is a human-readable error message.
	Message string `json:"message"`
	// Details contains additional context for the error.
	Details map[string]any `json:"details,omitempty"`
	// Cause is the underlying error that caused this error.
	Cause error `json:"-"`
}

// Error returns the string representation of the error.
func (e *Error) Error() string {
	prefix := string(e.Code)
	if e.Op != "" {
		prefix = e.Op + ": " + prefix
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", prefix, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", prefix, e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *Error) Unwrap() error { return e.Cause }

// Is reports whether target is an *Error with the same code.
// Sentinels created by this package carry only a code, so
// errors.Is(err, ErrOutOfRange) matches any out-of-range failure.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// WithCause sets the underlying cause of the error and returns the receiver.
func (e *Error) WithCause(cause error) *Error {
	e.Cause = cause
	return e
}

// WithDetails merges the provided details into the error and returns the receiver.
func (e *Error) WithDetails(details map[string]any) *Error {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// WithDetail sets a single detail key-value pair and returns the receiver.
func (e *Error) WithDetail(key string, value any) *Error {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// New creates a new Error.
func New(code ErrorCode, op, message string) *Error {
	return &Error{Code: code, Op: op, Message: message}
}

// Sentinels for errors.Is matching.
var (
	ErrContractViolation = &Error{Code: ErrCodeContractViolation}
	ErrCategoryMismatch  = &Error{Code: ErrCodeCategoryMismatch}
	ErrSinglePassReused  = &Error{Code: ErrCodeSinglePassReused}
	ErrInvalidArgument   = &Error{Code: ErrCodeInvalidArgument}
	ErrOutOfRange        = &Error{Code: ErrCodeOutOfRange}
	ErrNotFound          = &Error{Code: ErrCodeNotFound}
	ErrInvalidConfig     = &Error{Code: ErrCodeInvalidConfig}
	ErrInternal          = &Error{Code: ErrCodeInternal}
)

// --- Common Error Constructors ---

// ContractViolation creates an Error for an unmet precondition.
func ContractViolation(op, reason string) *Error {
	return &Error{Code: ErrCodeContractViolation, Op: op, Message: reason}
}

// ShortInput creates a ContractViolation for an input that ended before the
// operation received the number of elements it requires.
func ShortInput(op string, want, got int) *Error {
	return &Error{
		Code: ErrCodeContractViolation, Op: op,
		Message: fmt.Sprintf("input has %d elements, at least %d required", got, want),
		Details: map[string]any{"want": want, "got": got},
	}
}

// CategoryMismatch creates an Error for a sequence that lacks a traversal capability.
func CategoryMismatch(op, have, need string) *Error {
	return &Error{
		Code: ErrCodeCategoryMismatch, Op: op,
		Message: fmt.Sprintf("requires a %s sequence, got %s", need, have),
		Details: map[string]any{"have": have, "need": need},
	}
}

// SinglePassReused creates an Error for a second traversal of a single-pass sequence.
func SinglePassReused(op string) *Error {
	return &Error{
		Code: ErrCodeSinglePassReused, Op: op,
		Message: "single-pass sequence has already been traversed",
	}
}

// InvalidArgument creates an Error for an argument outside its valid domain.
func InvalidArgument(op, arg, reason string) *Error {
	details := make(map[string]any)
	if arg != "" {
		details["arg"] = arg
	}
	return &Error{
		Code: ErrCodeInvalidArgument, Op: op,
		Message: fmt.Sprintf("invalid %s: %s", arg, reason), Details: details,
	}
}

// OutOfRange creates an Error for a position outside [0, size).
func OutOfRange(op string, index, size int) *Error {
	return &Error{
		Code: ErrCodeOutOfRange, Op: op,
		Message: fmt.Sprintf("index %d out of range [0, %d)", index, size),
		Details: map[string]any{"index": index, "size": size},
	}
}

// NotFound creates an Error for a lookup without result.
func NotFound(what string) *Error {
	return &Error{
		Code: ErrCodeNotFound, Message: fmt.Sprintf("%s not found", what),
		Details: map[string]any{"what": what},
	}
}

// InvalidConfig creates an Error for configuration that failed validation.
func InvalidConfig(message string) *Error {
	return &Error{Code: ErrCodeInvalidConfig, Message: message}
}

// Internal creates an Error wrapping an unexpected failure.
func Internal(op string, cause error) *Error {
	return &Error{
		Code: ErrCodeInternal, Op: op, Message: "unexpected failure", Cause: cause,
	}
}
