// Package errors provides the structured error type returned by rangekit.
//
// Every failure surfaced by a sequence traversal, an action or the seqctl
// configuration layer is an [*Error] carrying a machine-readable [ErrorCode],
// the operation that failed and optional details. Sentinel values such as
// [ErrContractViolation] match any error with the same code through the
// standard library's errors.Is:
//
//	if errors.Is(err, rerrors.ErrContractViolation) { ... }
package errors
