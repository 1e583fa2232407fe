// Package session persists the authentication state shared by every request
// the SDK makes: the bearer token and the authenticated flag.
//
// A Store is the Go counterpart of browser local storage. Backends:
//   - MemoryStore: process-local, the default
//   - SQLiteStore: a single file, survives restarts (CLI sessions)
//   - RedisStore: shared between processes
package session

import "context"

// Well-known keys.
const (
	KeyToken         = "authToken"
	KeyAuthenticated = "isAuthenticated"
)

// Store is a string key/value store. Implementations must be safe for
// concurrent use; concurrent writes to one key resolve last-writer-wins.
type Store interface {
	// Get returns the value for key and whether it was present.
	Get(ctx context.Context, key string) (value string, found bool, err error)
	// Set stores value under key, overwriting any previous value.
	Set(ctx context.Context, key, value string) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	// Close releases backend resources.
	Close() error
}

// Token returns the stored bearer token, or "" when none is stored.
func Token(ctx context.Context, s Store) (string, error) {
	v, ok, err := s.Get(ctx, KeyToken)
	if err != nil || !ok {
		return "", err
	}
	return v, nil
}

// SaveLogin records a successful login.
func SaveLogin(ctx context.Context, s Store, token string) error {
	if err := s.Set(ctx, KeyToken, token); err != nil {
		return err
	}
	return s.Set(ctx, KeyAuthenticated, "true")
}

// Clear removes the token and the authenticated flag. Both deletes are
// attempted even if the first fails.
func Clear(ctx context.Context, s Store) error {
	errToken := s.Delete(ctx, KeyToken)
	errFlag := s.Delete(ctx, KeyAuthenticated)
	if errToken != nil {
		return errToken
	}
	return errFlag
}
