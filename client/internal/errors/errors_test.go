package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessageOr(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name string
		body string
		want string
	}{
		{"message field", `{"message":"db down"}`, "db down"},
		{"empty body", ``, "fallback"},
		{"empty message", `{"message":""}`, "fallback"},
		{"no message", `{"error":"x"}`, "fallback"},
		{"non-string message", `{"message":42}`, "fallback"},
		{"not json", `<html>oops</html>`, "fallback"},
		{"json array", `["message"]`, "fallback"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, MessageOr([]byte(c.body), "fallback"))
		})
	}
}

func TestFromResponse(t *testing.T) {
	t.Parallel()
	err := FromResponse("get soil health", 500, []byte(`{"message":"db down"}`), "Failed to fetch soil health data")
	assert.Equal(t, "db down", err.Error())
	assert.Equal(t, 500, err.StatusCode)
	assert.False(t, stderrors.Is(err, ErrUnauthorized))
	assert.False(t, IsUnauthorized(err))
}

func TestUnauthorizedMatching(t *testing.T) {
	t.Parallel()
	err := FromResponse("get reports", 401, nil, "Failed to fetch reports")
	assert.Equal(t, "Failed to fetch reports", err.Error())
	assert.True(t, stderrors.Is(err, ErrUnauthorized))

	wrapped := fmt.Errorf("cli: %w", err)
	assert.True(t, IsUnauthorized(wrapped))
	assert.True(t, stderrors.Is(wrapped, ErrUnauthorized))
}

func TestNewTransportError(t *testing.T) {
	t.Parallel()
	cause := fmt.Errorf("dial tcp: connection refused")
	err := NewTransportError("get market prices", "Failed to fetch market prices", cause)
	require.Equal(t, "Failed to fetch market prices", err.Error())
	assert.Equal(t, 0, err.StatusCode)
	assert.True(t, stderrors.Is(err, cause))
	assert.False(t, IsUnauthorized(err))
}
