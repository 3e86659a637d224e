package entity

import "fmt"

// The closed error set. The transport layer maps it exhaustively to response
// codes; anything it does not recognize is a generic internal failure.

// ValidationError reports a request rejected by field validation before any
// store access happened.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return "validation error: " + e.Message
}

// NotFoundError is a normal business outcome, not a storage fault: the store
// reported absence for the given id.
type NotFoundError struct {
	ID int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("order with id %d not found", e.ID)
}

// RepositoryError wraps a genuine storage fault. The cause is logged, never
// exposed to the caller.
type RepositoryError struct {
	Cause error
}

func (e *RepositoryError) Error() string {
	return "repository error: " + e.Cause.Error()
}

func (e *RepositoryError) Unwrap() error {
	return e.Cause
}

// ReportError wraps a status report delivery failure. It never leaves the
// reporter; it exists only for its diagnostics.
type ReportError struct {
	Cause error
}

func (e *ReportError) Error() string {
	return "status report failed: " + e.Cause.Error()
}

func (e *ReportError) Unwrap() error {
	return e.Cause
}
