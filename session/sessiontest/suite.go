// Package sessiontest holds a compliance suite for session.Store backends.
package sessiontest

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/google/uuid"

	"github.com/agrismart/agrismart-client/session"
)

// Run exercises a session.Store implementation. makeStore must return a
// clean, isolated store; Run closes it.
func Run(t *testing.T, makeStore func(t *testing.T) session.Store) {
	t.Helper()

	s := makeStore(t)
	defer func() { _ = s.Close() }()
	ctx := context.Background()

	key := "k-" + uuid.NewString()

	if _, ok, err := s.Get(ctx, key); err != nil || ok {
		t.Fatalf("Get missing: ok=%v err=%v", ok, err)
	}
	if err := s.Set(ctx, key, "v1"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if v, ok, err := s.Get(ctx, key); err != nil || !ok || v != "v1" {
		t.Fatalf("Get: v=%q ok=%v err=%v", v, ok, err)
	}
	if err := s.Set(ctx, key, "v2"); err != nil {
		t.Fatalf("Set overwrite: %v", err)
	}
	if v, _, _ := s.Get(ctx, key); v != "v2" {
		t.Fatalf("Get after overwrite: %q", v)
	}
	if err := s.Delete(ctx, key); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, ok, err := s.Get(ctx, key); err != nil || ok {
		t.Fatalf("Get after delete: ok=%v err=%v", ok, err)
	}
	if err := s.Delete(ctx, key); err != nil {
		t.Fatalf("Delete missing key: %v", err)
	}

	// Login/clear helpers
	if err := session.SaveLogin(ctx, s, "T"); err != nil {
		t.Fatalf("SaveLogin: %v", err)
	}
	if tok, err := session.Token(ctx, s); err != nil || tok != "T" {
		t.Fatalf("Token: %q err=%v", tok, err)
	}
	if v, ok, _ := s.Get(ctx, session.KeyAuthenticated); !ok || v != "true" {
		t.Fatalf("authenticated flag: %q ok=%v", v, ok)
	}
	if err := session.Clear(ctx, s); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if tok, err := session.Token(ctx, s); err != nil || tok != "" {
		t.Fatalf("Token after clear: %q err=%v", tok, err)
	}
	if _, ok, _ := s.Get(ctx, session.KeyAuthenticated); ok {
		t.Fatalf("authenticated flag survived Clear")
	}

	// Concurrent writers: last writer wins, no errors.
	var wg sync.WaitGroup
	errs := make(chan error, 8)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if err := s.Set(ctx, key, fmt.Sprintf("w%d", i)); err != nil {
				errs <- err
			}
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Fatalf("concurrent Set: %v", err)
	}
	if _, ok, err := s.Get(ctx, key); err != nil || !ok {
		t.Fatalf("Get after concurrent writes: ok=%v err=%v", ok, err)
	}
}
