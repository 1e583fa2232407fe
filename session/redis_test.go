package session_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/agrismart/agrismart-client/session"
)

func TestNewRedisStore_BadURL(t *testing.T) {
	_, err := session.NewRedisStore(context.Background(), "not-a-redis-url", "p:")
	require.Error(t, err)
}
