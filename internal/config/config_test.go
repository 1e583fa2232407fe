package config

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Defaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	cfg, err := New()
	require.NoError(t, err)

	assert.Equal(t, DefaultBaseURL, cfg.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
	assert.Equal(t, "/login", cfg.LoginView)
	assert.Equal(t, StoreSQLite, cfg.SessionStore)
	assert.True(t, strings.HasSuffix(cfg.SQLitePath, filepath.Join(".agrismart", "session.db")))
	assert.Equal(t, zerolog.InfoLevel, cfg.Level())
}

func TestNew_FromEnv(t *testing.T) {
	t.Setenv("AGRISMART_BASE_URL", "http://127.0.0.1:9999")
	t.Setenv("AGRISMART_TIMEOUT", "2s")
	t.Setenv("AGRISMART_SESSION_STORE", "memory")
	t.Setenv("AGRISMART_LOG_LEVEL", "warn")

	cfg, err := New()
	require.NoError(t, err)
	assert.Equal(t, "http://127.0.0.1:9999", cfg.BaseURL)
	assert.Equal(t, 2*time.Second, cfg.Timeout)
	assert.Equal(t, StoreMemory, cfg.SessionStore)
	assert.Empty(t, cfg.SQLitePath)
	assert.Equal(t, zerolog.WarnLevel, cfg.Level())
}

func TestNew_Invalid(t *testing.T) {
	cases := map[string][2]string{
		"bad store":   {"AGRISMART_SESSION_STORE", "etcd"},
		"bad url":     {"AGRISMART_BASE_URL", "not a url"},
		"bad timeout": {"AGRISMART_TIMEOUT", "soon"},
		"zero":        {"AGRISMART_TIMEOUT", "0s"},
		"bad level":   {"AGRISMART_LOG_LEVEL", "loud"},
	}
	for name, kv := range cases {
		t.Run(name, func(t *testing.T) {
			t.Setenv("AGRISMART_SESSION_STORE", "memory")
			t.Setenv(kv[0], kv[1])
			_, err := New()
			require.Error(t, err)
		})
	}
}

func TestLevel_DebugOverrides(t *testing.T) {
	cfg := NewForTesting()
	cfg.LogLevel = "error"
	cfg.Debug = true
	assert.Equal(t, zerolog.DebugLevel, cfg.Level())
	require.NoError(t, cfg.ResolveDefaults())
}
