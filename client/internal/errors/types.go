// Package errors provides the single error kind surfaced by SDK operations.
// Every failed operation yields an *OperationError whose text is the message
// a caller can show to a user.
package errors

import stderrors "errors"

// ErrUnauthorized matches (via errors.Is) any OperationError produced from a
// 401 response. The session has already been cleared when callers see it.
var ErrUnauthorized = stderrors.New("unauthorized")

// OperationError reports that an operation failed.
type OperationError struct {
	Op         string // operation name, e.g. "get soil health"
	Message    string // server message or the operation's fallback
	StatusCode int    // HTTP status code (0 for transport failures)
	Underlying error  // transport error or a status error
}

// Error returns the normalized message only.
func (e *OperationError) Error() string {
	return e.Message
}

// Unwrap returns the underlying error for error chain compatibility.
func (e *OperationError) Unwrap() error {
	return e.Underlying
}

// Is lets errors.Is(err, ErrUnauthorized) detect authentication failures.
func (e *OperationError) Is(target error) bool {
	return target == ErrUnauthorized && e.StatusCode == 401
}

// IsUnauthorized returns true if err came from a 401 response.
func IsUnauthorized(err error) bool {
	var oe *OperationError
	if !stderrors.As(err, &oe) {
		return false
	}
	return oe.StatusCode == 401
}
