package client

import (
	apierrors "github.com/agrismart/agrismart-client/client/internal/errors"
)

// Error is returned by every failing operation. Error() is the message to
// show a user: the server's "message" field, or the operation's fallback.
type Error = apierrors.OperationError

// ErrUnauthorized matches, via errors.Is, errors caused by a 401 response.
var ErrUnauthorized = apierrors.ErrUnauthorized

// IsUnauthorized reports whether err came from a 401 response.
func IsUnauthorized(err error) bool { return apierrors.IsUnauthorized(err) }
