package factory

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/agrismart/agrismart-client/internal/config"
	"github.com/agrismart/agrismart-client/session"
)

// NewSessionStore returns the session.Store selected by cfg.SessionStore.
func NewSessionStore(ctx context.Context, cfg *config.Config, log zerolog.Logger) (session.Store, error) {
	switch cfg.SessionStore {
	case config.StoreMemory:
		log.Debug().Str("store", cfg.SessionStore).Msg("session store opened")
		return session.NewMemoryStore(), nil
	case config.StoreSQLite:
		s, err := session.NewSQLiteStore(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		log.Debug().Str("store", cfg.SessionStore).Str("path", cfg.SQLitePath).Msg("session store opened")
		return s, nil
	case config.StoreRedis:
		s, err := session.NewRedisStore(ctx, cfg.RedisURL, cfg.RedisPrefix)
		if err != nil {
			return nil, err
		}
		log.Debug().Str("store", cfg.SessionStore).Str("prefix", cfg.RedisPrefix).Msg("session store opened")
		return s, nil
	default:
		return nil, fmt.Errorf("unknown SESSION_STORE: %s", cfg.SessionStore)
	}
}
