package session_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agrismart/agrismart-client/session"
	"github.com/agrismart/agrismart-client/session/sessiontest"
)

func TestMemoryStore(t *testing.T) {
	sessiontest.Run(t, func(t *testing.T) session.Store {
		return session.NewMemoryStore()
	})
}

func TestSQLiteStore(t *testing.T) {
	sessiontest.Run(t, func(t *testing.T) session.Store {
		s, err := session.NewSQLiteStore(context.Background(), filepath.Join(t.TempDir(), "session.db"))
		require.NoError(t, err)
		return s
	})
}

func TestSQLiteStore_PersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "session.db")

	s, err := session.NewSQLiteStore(ctx, path)
	require.NoError(t, err)
	require.NoError(t, session.SaveLogin(ctx, s, "persisted"))
	require.NoError(t, s.Close())

	s2, err := session.NewSQLiteStore(ctx, path)
	require.NoError(t, err)
	defer func() { _ = s2.Close() }()
	tok, err := session.Token(ctx, s2)
	require.NoError(t, err)
	assert.Equal(t, "persisted", tok)
}

// failingStore fails every Delete.
type failingStore struct {
	*session.MemoryStore
	deletes int
}

func (f *failingStore) Delete(ctx context.Context, key string) error {
	f.deletes++
	return errors.New("delete failed")
}

func TestClear_AttemptsBothKeys(t *testing.T) {
	f := &failingStore{MemoryStore: session.NewMemoryStore()}
	err := session.Clear(context.Background(), f)
	require.Error(t, err)
	assert.Equal(t, 2, f.deletes)
}
