package factory

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agrismart/agrismart-client/internal/config"
	"github.com/agrismart/agrismart-client/session"
)

func TestNewSessionStore(t *testing.T) {
	ctx := context.Background()

	cfg := config.NewForTesting()
	s, err := NewSessionStore(ctx, cfg, zerolog.Nop())
	require.NoError(t, err)
	assert.IsType(t, &session.MemoryStore{}, s)
	_ = s.Close()

	cfg.SessionStore = config.StoreSQLite
	cfg.SQLitePath = filepath.Join(t.TempDir(), "s.db")
	s, err = NewSessionStore(ctx, cfg, zerolog.Nop())
	require.NoError(t, err)
	assert.IsType(t, &session.SQLiteStore{}, s)
	_ = s.Close()

	cfg.SessionStore = "etcd"
	_, err = NewSessionStore(ctx, cfg, zerolog.Nop())
	require.Error(t, err)
}

func TestNewSessionStore_RedisUnreachable(t *testing.T) {
	cfg := config.NewForTesting()
	cfg.SessionStore = config.StoreRedis
	cfg.RedisURL = "redis://127.0.0.1:1/0"
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewSessionStore(ctx, cfg, zerolog.Nop())
	require.Error(t, err)
}
