package errors

import (
	"encoding/json"
	"fmt"
)

// errorBody is the optional shape of a failure response.
type errorBody struct {
	Message any `json:"message"`
}

// FromResponse builds the error for a non-2xx response. The server's
// "message" field wins when it is a non-empty string; otherwise fallback.
func FromResponse(op string, statusCode int, body []byte, fallback string) *OperationError {
	return &OperationError{
		Op:         op,
		Message:    MessageOr(body, fallback),
		StatusCode: statusCode,
		Underlying: fmt.Errorf("%s failed: HTTP %d", op, statusCode),
	}
}

// NewTransportError creates the error for a request that never produced a
// response (connection failure, timeout, cancelled context).
func NewTransportError(op, fallback string, err error) *OperationError {
	return &OperationError{
		Op:         op,
		Message:    fallback,
		StatusCode: 0,
		Underlying: fmt.Errorf("%s network error: %w", op, err),
	}
}

// MessageOr extracts the "message" field from a JSON object body.
func MessageOr(body []byte, fallback string) string {
	if len(body) == 0 {
		return fallback
	}
	var eb errorBody
	if err := json.Unmarshal(body, &eb); err != nil {
		return fallback
	}
	if msg, ok := eb.Message.(string); ok && msg != "" {
		return msg
	}
	return fallback
}
