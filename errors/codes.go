package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Caller contract errors
const (
	// ErrCodeContractViolation indicates a precondition of the operation was not met,
	// such as TakeExactly over a shorter input.
	ErrCodeContractViolation ErrorCode = "CONTRACT_VIOLATION"
	// ErrCodeCategoryMismatch indicates the sequence lacks a required traversal capability.
	ErrCodeCategoryMismatch ErrorCode = "CATEGORY_MISMATCH"
	// ErrCodeSinglePassReused indicates a single-pass sequence was traversed twice.
	ErrCodeSinglePassReused ErrorCode = "SINGLE_PASS_REUSED"
	// ErrCodeInvalidArgument indicates an argument outside its valid domain.
	ErrCodeInvalidArgument ErrorCode = "INVALID_ARGUMENT"
	// ErrCodeOutOfRange indicates a position outside the bounds of a sequence or container.
	ErrCodeOutOfRange ErrorCode = "OUT_OF_RANGE"
)

// Lookup errors
const (
	// ErrCodeNotFound indicates a lookup produced no result.
	ErrCodeNotFound ErrorCode = "NOT_FOUND"
)

// Configuration errors
const (
	// ErrCodeInvalidConfig indicates configuration failed validation.
	ErrCodeInvalidConfig ErrorCode = "INVALID_CONFIG"
)

// Internal errors
const (
	// ErrCodeInternal indicates an unexpected failure, usually wrapping a foreign error.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)
